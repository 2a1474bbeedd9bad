package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PrescriptionItem struct {
	Medicine string `json:"medicine" bson:"medicine"`
	Dosage   string `json:"dosage" bson:"dosage"`
	NoOfDays int    `json:"noOfDays" bson:"noOfDays"`
	Advice   string `json:"advice" bson:"advice"`
}

type Prescription struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	BookingId string             `json:"bookingId" bson:"bookingId"`
	DoctorId  string             `json:"doctorId" bson:"doctorId"`
	PatientId string             `json:"patientId" bson:"patientId"`
	Items     []PrescriptionItem `json:"items" bson:"items"`
	Notes     string             `json:"notes" bson:"notes"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
