package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code          string             `json:"code" bson:"code"`
	Name          string             `json:"name" bson:"name"`
	Mail          string             `json:"mail" bson:"mail"`
	PhoneNo       string             `json:"phoneNo" bson:"phoneNo"`
	Age           int                `json:"age" bson:"age"`
	Gender        string             `json:"gender" bson:"gender"`
	BloodGroup    string             `json:"bloodGroup" bson:"bloodGroup"`
	Address       string             `json:"address" bson:"address"`
	Password      string             `json:"password,omitempty" bson:"password,omitempty"`
	Bookings      []string           `json:"bookings" bson:"bookings"`
	LoginAttempts int                `json:"loginAttempts" bson:"loginAttempts"`
	IsBlocked     bool               `json:"isBlocked" bson:"isBlocked"`
	IsActive      bool               `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}
