package services

import (
	"errors"
	"log"
	"time"

	db "DoctorZ/config/db"
	"DoctorZ/models"
	"DoctorZ/role"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func validatePrescriptionItems(items []models.PrescriptionItem) error {
	if len(items) == 0 {
		return errors.New("a prescription needs at least one item")
	}
	for _, item := range items {
		if item.Medicine == "" {
			return errors.New("medicine name cannot be empty")
		}
		if item.Dosage == "" {
			return errors.New("dosage cannot be empty")
		}
		if item.NoOfDays <= 0 {
			return errors.New("noOfDays must be positive")
		}
	}
	return nil
}

/*
* Written by the doctor who owns the booking
 */
func CreatePrescription(c *gin.Context, bookingCode string, items []models.PrescriptionItem, notes string) (models.Prescription, error) {
	prescription := models.Prescription{}
	doctorId := c.GetString("code")

	booking, err := FetchBookingByCode(c, bookingCode)
	if err != nil {
		return prescription, err
	}
	if booking.DoctorId != doctorId {
		return prescription, errors.New(util.DOCTOR_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
	}
	if err := validatePrescriptionItems(items); err != nil {
		log.Println("Error while validating prescription items:", err)
		return prescription, err
	}

	code, err := GenerateCode(c, util.PrescriptionCollection)
	if err != nil {
		log.Println("Error while generating prescription code:", err)
		return prescription, err
	}

	prescription = models.Prescription{
		Code:      code,
		BookingId: bookingCode,
		DoctorId:  doctorId,
		PatientId: booking.PatientId,
		Items:     items,
		Notes:     notes,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	coll := db.OpenCollections(util.PrescriptionCollection)
	if _, err := db.CreateOne(c, coll, prescription); err != nil {
		log.Println("Error while creating prescription:", err)
		return prescription, err
	}
	return prescription, nil
}

func FetchPrescriptionByCode(c *gin.Context, code string) (models.Prescription, error) {
	prescription := models.Prescription{}
	coll := db.OpenCollections(util.PrescriptionCollection)
	if err := db.FindOne(c, coll, bson.M{"code": code}, &prescription); err != nil {
		if err == mongo.ErrNoDocuments {
			return prescription, errors.New(util.PRESCRIPTION_NOT_FOUND)
		}
		return prescription, err
	}

	userCode := c.GetString("code")
	switch c.GetString("role") {
	case role.Patient:
		if prescription.PatientId != userCode {
			return models.Prescription{}, errors.New(util.PATIENT_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
		}
	case role.Doctor:
		if prescription.DoctorId != userCode {
			return models.Prescription{}, errors.New(util.DOCTOR_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
		}
	}
	return prescription, nil
}

func FetchPrescriptionsForPatient(c *gin.Context, patientId string) ([]models.Prescription, error) {
	userCode := c.GetString("code")
	if c.GetString("role") == role.Patient && patientId != userCode {
		return nil, errors.New(util.PATIENT_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
	}

	coll := db.OpenCollections(util.PrescriptionCollection)
	cursor, err := coll.Find(c, bson.M{"patientId": patientId})
	if err != nil {
		log.Println("Error while fetching prescriptions:", err)
		return nil, err
	}
	defer cursor.Close(c)

	prescriptions := []models.Prescription{}
	if err := cursor.All(c, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}
