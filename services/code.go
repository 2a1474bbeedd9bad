package services

import (
	"context"
	"fmt"

	db "DoctorZ/config/db"
	"DoctorZ/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var codePrefixes = map[string]string{
	util.AdminCollection:         "A",
	util.DoctorCollection:        "D",
	util.PatientCollection:       "P",
	util.ClinicCollection:        "C",
	util.LabCollection:           "L",
	util.BookingCollection:       "B",
	util.MedicalRecordCollection: "MR",
	util.PrescriptionCollection:  "RX",
	util.LabTestCollection:       "LT",
	util.LabPackageCollection:    "LP",
	util.LabBookingCollection:    "LB",
}

/*
* Sequential per collection codes like D0001,B0042
* Backed by an atomic counter document per collection
 */
func GenerateCode(ctx context.Context, collection string) (string, error) {
	prefix, ok := codePrefixes[collection]
	if !ok {
		prefix = "X"
	}
	counters := db.OpenCollections(util.CounterCollection)
	filter := bson.M{"_id": collection}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	counter := struct {
		Seq int `bson:"seq"`
	}{}
	if err := counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, counter.Seq), nil
}
