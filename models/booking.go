package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code            string             `json:"code" bson:"code"`
	DoctorId        string             `json:"doctorId" bson:"doctorId"`
	PatientId       string             `json:"patientId" bson:"patientId"`
	PatientName     string             `json:"patientName" bson:"patientName"`
	PatientMail     string             `json:"patientMail" bson:"patientMail"`
	PatientPhone    string             `json:"patientPhone" bson:"patientPhone"`
	SlotId          string             `json:"slotId" bson:"slotId"`
	Date            string             `json:"date" bson:"date"`
	Time            string             `json:"time" bson:"time"`
	Mode            string             `json:"mode" bson:"mode"`
	Fee             float64            `json:"fee" bson:"fee"`
	Status          string             `json:"status" bson:"status"`
	MedicalRecordId string             `json:"medicalRecordId" bson:"medicalRecordId"`
	Attachments     []string           `json:"attachments" bson:"attachments"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type LabBooking struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	LabId          string             `json:"labId" bson:"labId"`
	PatientId      string             `json:"patientId" bson:"patientId"`
	TestCode       string             `json:"testCode" bson:"testCode"`
	PackageCode    string             `json:"packageCode" bson:"packageCode"`
	Date           string             `json:"date" bson:"date"`
	HomeCollection bool               `json:"homeCollection" bson:"homeCollection"`
	Price          float64            `json:"price" bson:"price"`
	Status         string             `json:"status" bson:"status"`
	ResultFile     string             `json:"resultFile" bson:"resultFile"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}
