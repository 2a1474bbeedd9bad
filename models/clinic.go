package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Clinic struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	Name          string             `json:"name" bson:"name"`
	Mail          string             `json:"mail" bson:"mail"`
	PhoneNo       string             `json:"phoneNo" bson:"phoneNo"`
	Address       string             `json:"address" bson:"address"`
	City          string             `json:"city" bson:"city"`
	Password      string             `json:"password,omitempty" bson:"password,omitempty"`
	Doctors       []string           `json:"doctors" bson:"doctors"`
	Status        string             `json:"status" bson:"status"`
	LoginAttempts int                `json:"loginAttempts" bson:"loginAttempts"`
	IsBlocked     bool               `json:"isBlocked" bson:"isBlocked"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
