package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkingHours struct {
	Start string `json:"start" bson:"start"`
	End   string `json:"end" bson:"end"`
}

type Doctor struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code                string             `json:"code" bson:"code"`
	Name                string             `json:"name" bson:"name"`
	Mail                string             `json:"mail" bson:"mail"`
	PhoneNo             string             `json:"phoneNo" bson:"phoneNo"`
	Password            string             `json:"password,omitempty" bson:"password,omitempty"`
	Specialization      string             `json:"specialization" bson:"specialization"`
	Qualification       string             `json:"qualification" bson:"qualification"`
	Experience          int                `json:"experience" bson:"experience"`
	ClinicId            string             `json:"clinicId" bson:"clinicId"`
	OnlineFee           float64            `json:"onlineFee" bson:"onlineFee"`
	OfflineFee          float64            `json:"offlineFee" bson:"offlineFee"`
	DefaultWorkingHours *WorkingHours      `json:"defaultWorkingHours,omitempty" bson:"defaultWorkingHours,omitempty"`
	Status              string             `json:"status" bson:"status"`
	LoginAttempts       int                `json:"loginAttempts" bson:"loginAttempts"`
	IsBlocked           bool               `json:"isBlocked" bson:"isBlocked"`
	IsActive            bool               `json:"isActive" bson:"isActive"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}
