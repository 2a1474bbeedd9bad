package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ChatMessage struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SenderId   string             `json:"senderId" bson:"senderId"`
	ReceiverId string             `json:"receiverId" bson:"receiverId"`
	Text       string             `json:"text" bson:"text"`
	SentAt     time.Time          `json:"sentAt" bson:"sentAt"`
	Delivered  bool               `json:"delivered" bson:"delivered"`
}
