package migrations

import (
	"context"
	"log"
	"time"

	db "DoctorZ/config/db"
	"DoctorZ/util"

	"go.mongodb.org/mongo-driver/bson"
)

/*
* Early bookings were written without a status field
* Treat them all as pending
 */
func BackfillBookingStatus() {
	ctx := context.Background()
	coll := db.DB.Collection(util.BookingCollection)
	filter := bson.M{"status": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{
		"status":    "pending",
		"updatedAt": time.Now(),
	}}
	updated, err := coll.UpdateMany(ctx, filter, update)
	if err != nil {
		log.Println("Error while backfilling booking status:", err)
		return
	}
	log.Println("Backfilled status on", updated.ModifiedCount, "bookings")
}
