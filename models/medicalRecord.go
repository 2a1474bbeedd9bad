package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MedicalRecord struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code"`
	BookingId   string             `json:"bookingId" bson:"bookingId"`
	PatientId   string             `json:"patientId" bson:"patientId"`
	DoctorId    string             `json:"doctorId" bson:"doctorId"`
	Symptoms    string             `json:"symptoms" bson:"symptoms"`
	History     string             `json:"history" bson:"history"`
	Allergies   string             `json:"allergies" bson:"allergies"`
	Vitals      map[string]string  `json:"vitals" bson:"vitals"`
	Diagnosis   string             `json:"diagnosis" bson:"diagnosis"`
	Attachments []string           `json:"attachments" bson:"attachments"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy   string             `json:"updatedBy" bson:"updatedBy"`
}
