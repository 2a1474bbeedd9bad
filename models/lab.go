package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Lab struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	Name           string             `json:"name" bson:"name"`
	Mail           string             `json:"mail" bson:"mail"`
	PhoneNo        string             `json:"phoneNo" bson:"phoneNo"`
	Address        string             `json:"address" bson:"address"`
	City           string             `json:"city" bson:"city"`
	Password       string             `json:"password,omitempty" bson:"password,omitempty"`
	HomeCollection bool               `json:"homeCollection" bson:"homeCollection"`
	Status         string             `json:"status" bson:"status"`
	LoginAttempts  int                `json:"loginAttempts" bson:"loginAttempts"`
	IsBlocked      bool               `json:"isBlocked" bson:"isBlocked"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type LabTest struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code"`
	LabId       string             `json:"labId" bson:"labId"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Turnaround  string             `json:"turnaround" bson:"turnaround"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type LabPackage struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code        string             `json:"code" bson:"code"`
	LabId       string             `json:"labId" bson:"labId"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	TestCodes   []string           `json:"testCodes" bson:"testCodes"`
	Price       float64            `json:"price" bson:"price"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
