package util

// Collection names
const (
	LoginCollection         = "LOGIN"
	AdminCollection         = "ADMIN"
	DoctorCollection        = "DOCTOR"
	PatientCollection       = "PATIENT"
	ClinicCollection        = "CLINIC"
	LabCollection           = "LAB"
	AvailabilityCollection  = "DOCTOR_AVAILABILITY"
	BookingCollection       = "BOOKING"
	MedicalRecordCollection = "MEDICAL_RECORD"
	PrescriptionCollection  = "PRESCRIPTION"
	LabTestCollection       = "LAB_TEST"
	LabPackageCollection    = "LAB_PACKAGE"
	LabBookingCollection    = "LAB_BOOKING"
	ChatMessageCollection   = "CHAT_MESSAGE"
	CounterCollection       = "COUNTERS"
)

// Cache key prefixes
const (
	DoctorKey       = "doctor:"
	PatientKey      = "patient:"
	ClinicKey       = "clinic:"
	LabKey          = "lab:"
	BookingKey      = "booking:"
	AvailabilityKey = "availability:"
)

// Error messages
const (
	UNABLE_TO_FETCH_CODE_FROM_CONTEXT          = "UNABLE_TO_FETCH_CODE_FROM_CONTEXT"
	PLEASE_PROVIDE_EMAIL_OR_PHONE_OR_CODE      = "PLEASE_PROVIDE_EMAIL_OR_PHONE_OR_CODE"
	PASSWORD_NOT_PROVIDED                      = "PASSWORD_NOT_PROVIDED"
	EMAIL_NOT_PROVIDED                         = "EMAIL_NOT_PROVIDED"
	PHONE_NUMBER_NOT_PROVIDED                  = "PHONE_NUMBER_NOT_PROVIDED"
	CODE_NOT_PROVIDED                          = "CODE_NOT_PROVIDED"
	INVALID_CREDENTIALS                        = "INVALID_CREDENTIALS"
	USER_NOT_FOUND                             = "USER_NOT_FOUND"
	USER_IS_BLOCKED                            = "USER_IS_BLOCKED"
	USER_NOT_APPROVED_YET                      = "USER_NOT_APPROVED_YET"
	EMAIL_ALREADY_REGISTERED                   = "EMAIL_ALREADY_REGISTERED"
	PHONE_ALREADY_REGISTERED                   = "PHONE_ALREADY_REGISTERED"
	INVALID_USER_TO_ACCESS                     = "INVALID_USER_TO_ACCESS"
	RECORD_NOT_FOUND                           = "RECORD_NOT_FOUND"
	NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE       = "NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE"
	SLOT_NOT_FOUND                             = "SLOT_NOT_FOUND"
	SLOT_UNAVAILABLE                           = "SLOT_UNAVAILABLE"
	WORKING_HOURS_NOT_PROVIDED                 = "WORKING_HOURS_NOT_PROVIDED"
	BOOKING_NOT_FOUND                          = "BOOKING_NOT_FOUND"
	MEDICAL_RECORD_NOT_FOUND                   = "MEDICAL_RECORD_NOT_FOUND"
	PRESCRIPTION_NOT_FOUND                     = "PRESCRIPTION_NOT_FOUND"
	LAB_TEST_NOT_FOUND                         = "LAB_TEST_NOT_FOUND"
	LAB_BOOKING_NOT_FOUND                      = "LAB_BOOKING_NOT_FOUND"
	DOCTOR_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD  = "DOCTOR_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD"
	PATIENT_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD = "PATIENT_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD"
	LAB_DOESNOT_HAVE_ACCESS_TO_THIS_BOOKING    = "LAB_DOESNOT_HAVE_ACCESS_TO_THIS_BOOKING"
	INVALID_BOOKING_STATUS                     = "INVALID_BOOKING_STATUS"
	INVALID_APPROVAL_STATUS                    = "INVALID_APPROVAL_STATUS"
)
