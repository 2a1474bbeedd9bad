package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlotEntry is one bookable time label. IsActive means open for booking,
// not booked; the id stays stable across hour edits as long as the same
// time label survives.
type SlotEntry struct {
	ID       string `json:"id" bson:"id"`
	Time     string `json:"time" bson:"time"`
	IsActive bool   `json:"isActive" bson:"isActive"`
}

// TimeSlotDay holds the ordered slot table for one doctor on one date.
// Date is truncated to UTC midnight. (doctorId, date) is unique, see
// db.EnsureIndexes.
type TimeSlotDay struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DoctorId  string             `json:"doctorId" bson:"doctorId"`
	Date      time.Time          `json:"date" bson:"date"`
	Slots     []SlotEntry        `json:"slots" bson:"slots"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
