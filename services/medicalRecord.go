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

/*
* One medical record per booking,created alongside it
 */
func CreateMedicalRecord(c *gin.Context, record models.MedicalRecord) (string, error) {
	code, err := GenerateCode(c, util.MedicalRecordCollection)
	if err != nil {
		log.Println("Error while generating medicalRecord code:", err)
		return "", err
	}
	record.Code = code
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	coll := db.OpenCollections(util.MedicalRecordCollection)
	if _, err := db.CreateOne(c, coll, record); err != nil {
		log.Println("Error while creating medicalRecord:", err)
		return "", err
	}
	return code, nil
}

func FetchMedicalRecordByCode(c *gin.Context, code string) (models.MedicalRecord, error) {
	record := models.MedicalRecord{}
	coll := db.OpenCollections(util.MedicalRecordCollection)
	if err := db.FindOne(c, coll, bson.M{"code": code}, &record); err != nil {
		if err == mongo.ErrNoDocuments {
			return record, errors.New(util.MEDICAL_RECORD_NOT_FOUND)
		}
		return record, err
	}

	userCode := c.GetString("code")
	switch c.GetString("role") {
	case role.Patient:
		if record.PatientId != userCode {
			return models.MedicalRecord{}, errors.New(util.PATIENT_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
		}
	case role.Doctor:
		if record.DoctorId != userCode {
			return models.MedicalRecord{}, errors.New(util.DOCTOR_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
		}
	}
	return record, nil
}

func FetchMedicalRecordsForPatient(c *gin.Context, patientId string) ([]models.MedicalRecord, error) {
	userCode := c.GetString("code")
	if c.GetString("role") == role.Patient && patientId != userCode {
		return nil, errors.New(util.PATIENT_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
	}

	coll := db.OpenCollections(util.MedicalRecordCollection)
	cursor, err := coll.Find(c, bson.M{"patientId": patientId})
	if err != nil {
		log.Println("Error while fetching medicalRecords:", err)
		return nil, err
	}
	defer cursor.Close(c)

	records := []models.MedicalRecord{}
	if err := cursor.All(c, &records); err != nil {
		return nil, err
	}
	return records, nil
}

/*
* Only the doctor who owns the record may amend diagnosis or vitals
 */
func UpdateMedicalRecord(c *gin.Context, code string, data map[string]interface{}) (models.MedicalRecord, error) {
	record, err := FetchMedicalRecordByCode(c, code)
	if err != nil {
		return record, err
	}
	doctorId := c.GetString("code")
	if record.DoctorId != doctorId {
		return record, errors.New(util.DOCTOR_DOESNOT_HAVE_ACCESS_TO_THIS_RECORD)
	}

	allowed := map[string]bool{"symptoms": true, "history": true, "allergies": true, "vitals": true, "diagnosis": true}
	set := bson.M{"updatedAt": time.Now(), "updatedBy": doctorId}
	for field, value := range data {
		if allowed[field] {
			set[field] = value
		}
	}

	coll := db.OpenCollections(util.MedicalRecordCollection)
	if _, err := db.UpdateOne(c, coll, bson.M{"code": code}, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating medicalRecord:", err)
		return record, err
	}
	updated := models.MedicalRecord{}
	if err := db.FindOne(c, coll, bson.M{"code": code}, &updated); err != nil {
		return record, err
	}
	return updated, nil
}
