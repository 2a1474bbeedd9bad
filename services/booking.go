package services

import (
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	db "DoctorZ/config/db"
	redis "DoctorZ/config/redis"
	"DoctorZ/models"
	"DoctorZ/role"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingInput struct {
	DoctorId string  `json:"doctorId"`
	SlotId   string  `json:"slotId"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Mode     string  `json:"mode"`
	Fee      float64 `json:"fee"`
}

type EMRInput struct {
	Symptoms  string            `json:"symptoms"`
	History   string            `json:"history"`
	Allergies string            `json:"allergies"`
	Vitals    map[string]string `json:"vitals"`
}

/*
* Filter and update for closing the one entry carrying this slotId
* The filter does not require the entry to still be active,so two
* concurrent bookings of the same slot both match
 */
func slotDeactivationQuery(doctorId string, slotId string) (bson.M, bson.M) {
	filter := bson.M{"doctorId": doctorId, "slots.id": slotId}
	update := bson.M{"$set": bson.M{"slots.$.isActive": false, "updatedAt": time.Now()}}
	return filter, update
}

/*
* The booking reconciler
* Locates the day holding the entry with this slotId and closes that entry only
 */
func DeactivateSlot(c *gin.Context, doctorId string, slotId string) error {
	coll := db.OpenCollections(util.AvailabilityCollection)
	filter, update := slotDeactivationQuery(doctorId, slotId)

	updated, err := db.UpdateOne(c, coll, filter, update)
	if err != nil {
		log.Println("Error while deactivating slot:", err)
		return err
	}
	if updated.MatchedCount == 0 {
		return errors.New(util.SLOT_NOT_FOUND)
	}
	invalidateAvailabilityCache(c, doctorId)
	return nil
}

/*
* Save uploaded attachments and hand their paths around as opaque strings
 */
func SaveAttachments(c *gin.Context, files []*multipart.FileHeader) ([]string, error) {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}
	paths := []string{}
	for _, file := range files {
		dest := filepath.Join(uploadDir, uuid.NewString()+"_"+filepath.Base(file.Filename))
		if err := c.SaveUploadedFile(file, dest); err != nil {
			log.Println("Error while saving attachment:", err)
			return nil, err
		}
		paths = append(paths, dest)
	}
	return paths, nil
}

/*
* Validate the slot,close it,then create the medical record and the booking
* The slot flip and the booking insert are two independent writes,a failure
* in between is not rolled back
 */
func CreateBooking(c *gin.Context, input BookingInput, emr EMRInput, attachments []string) (models.Booking, error) {
	booking := models.Booking{}
	patientId := c.GetString("code")
	if patientId == "" {
		return booking, errors.New(util.UNABLE_TO_FETCH_CODE_FROM_CONTEXT)
	}
	patient := models.Patient{}
	patColl := db.OpenCollections(util.PatientCollection)
	if err := db.FindOne(c, patColl, bson.M{"code": patientId}, &patient); err != nil {
		log.Println("Error while fetching patient for booking:", err)
		return booking, errors.New(util.USER_NOT_FOUND)
	}

	if input.Mode != "online" && input.Mode != "offline" {
		return booking, errors.New("mode must be online or offline")
	}

	if err := DeactivateSlot(c, input.DoctorId, input.SlotId); err != nil {
		return booking, err
	}

	code, err := GenerateCode(c, util.BookingCollection)
	if err != nil {
		log.Println("Error while generating booking code:", err)
		return booking, err
	}

	medicalRecordId, err := CreateMedicalRecord(c, models.MedicalRecord{
		BookingId:   code,
		PatientId:   patientId,
		DoctorId:    input.DoctorId,
		Symptoms:    emr.Symptoms,
		History:     emr.History,
		Allergies:   emr.Allergies,
		Vitals:      emr.Vitals,
		Attachments: attachments,
	})
	if err != nil {
		return booking, err
	}

	booking = models.Booking{
		Code:            code,
		DoctorId:        input.DoctorId,
		PatientId:       patientId,
		PatientName:     patient.Name,
		PatientMail:     patient.Mail,
		PatientPhone:    patient.PhoneNo,
		SlotId:          input.SlotId,
		Date:            input.Date,
		Time:            input.Time,
		Mode:            input.Mode,
		Fee:             input.Fee,
		Status:          "pending",
		MedicalRecordId: medicalRecordId,
		Attachments:     attachments,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	coll := db.OpenCollections(util.BookingCollection)
	if _, err := db.CreateOne(c, coll, booking); err != nil {
		log.Println("Error while inserting booking:", err)
		return booking, err
	}

	if err := appendBookingToPatient(c, patientId, code); err != nil {
		log.Println("Error while updating patient bookings:", err)
		return booking, err
	}

	if err := redis.SetCache(c, util.BookingKey+code, booking); err != nil {
		log.Println("Error while caching booking:", err)
	}
	return booking, nil
}

func appendBookingToPatient(c *gin.Context, patientId string, bookingCode string) error {
	coll := db.OpenCollections(util.PatientCollection)
	filter := bson.M{"code": patientId}
	update := bson.M{
		"$push": bson.M{"bookings": bookingCode},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	if _, err := db.UpdateOne(c, coll, filter, update); err != nil {
		return err
	}
	if err := redis.DeleteCache(c, util.PatientKey+patientId); err != nil {
		log.Println("Error while invalidating patient cache:", err)
	}
	return nil
}

func FetchBookingByCode(c *gin.Context, code string) (models.Booking, error) {
	booking := models.Booking{}
	key := util.BookingKey + code
	if redis.GetCache(c, key, &booking) {
		return booking, nil
	}
	coll := db.OpenCollections(util.BookingCollection)
	if err := db.FindOne(c, coll, bson.M{"code": code}, &booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return booking, errors.New(util.BOOKING_NOT_FOUND)
		}
		return booking, err
	}
	if err := redis.SetCache(c, key, booking); err != nil {
		log.Println("Error while caching booking:", err)
	}
	return booking, nil
}

/*
* Doctors see their own bookings,patients theirs
* Anyone else is rejected
 */
func FetchMyBookings(c *gin.Context) ([]models.Booking, error) {
	code := c.GetString("code")
	userRole := c.GetString("role")

	filter := bson.M{}
	switch userRole {
	case role.Doctor:
		filter = bson.M{"doctorId": code}
	case role.Patient:
		filter = bson.M{"patientId": code}
	case role.Admin:
		filter = bson.M{}
	default:
		return nil, errors.New(util.INVALID_USER_TO_ACCESS)
	}

	coll := db.OpenCollections(util.BookingCollection)
	cursor, err := coll.Find(c, filter)
	if err != nil {
		log.Println("Error while fetching bookings:", err)
		return nil, err
	}
	defer cursor.Close(c)

	bookings := []models.Booking{}
	if err := cursor.All(c, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

/*
* pending to completed,done by the doctor who owns the booking
 */
func UpdateBookingStatus(c *gin.Context, code string, status string) (models.Booking, error) {
	booking, err := FetchBookingByCode(c, code)
	if err != nil {
		return booking, err
	}
	if status != "pending" && status != "completed" {
		return booking, errors.New(util.INVALID_BOOKING_STATUS)
	}
	doctorId := c.GetString("code")
	if c.GetString("role") == role.Doctor && booking.DoctorId != doctorId {
		return booking, errors.New(util.DOCTOR_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
	}

	coll := db.OpenCollections(util.BookingCollection)
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": code}, update); err != nil {
		log.Println("Error while updating booking status:", err)
		return booking, err
	}
	booking.Status = status
	if err := redis.DeleteCache(c, util.BookingKey+code); err != nil {
		log.Println("Error while invalidating booking cache:", err)
	}
	if err := redis.SetCache(c, util.BookingKey+code, booking); err != nil {
		log.Println("Error while caching updated booking:", err)
	}
	return booking, nil
}

/*
* Decode the multipart JSON blobs the booking form carries
 */
func ParseBookingForm(dataField string, emrField string) (BookingInput, EMRInput, error) {
	input := BookingInput{}
	emr := EMRInput{}
	if err := json.Unmarshal([]byte(dataField), &input); err != nil {
		return input, emr, errors.New("invalid booking payload: " + err.Error())
	}
	if emrField != "" {
		if err := json.Unmarshal([]byte(emrField), &emr); err != nil {
			return input, emr, errors.New("invalid emr payload: " + err.Error())
		}
	}
	if input.DoctorId == "" || input.SlotId == "" {
		return input, emr, errors.New("doctorId and slotId are required")
	}
	return input, emr, nil
}
