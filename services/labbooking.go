package services

import (
	"errors"
	"log"
	"time"

	db "DoctorZ/config/db"
	"DoctorZ/models"
	"DoctorZ/role"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type LabBookingInput struct {
	LabId          string `json:"labId"`
	TestCode       string `json:"testCode"`
	PackageCode    string `json:"packageCode"`
	Date           string `json:"date"`
	HomeCollection bool   `json:"homeCollection"`
}

/*
* Book one test or one package against a lab
* The price is read from the catalog,not from the client
 */
func CreateLabBooking(c *gin.Context, input LabBookingInput) (models.LabBooking, error) {
	booking := models.LabBooking{}
	patientId := c.GetString("code")

	if (input.TestCode == "") == (input.PackageCode == "") {
		return booking, errors.New("provide exactly one of testCode or packageCode")
	}
	if _, err := util.NormalizeDate(input.Date); err != nil {
		return booking, errors.New("invalid booking date: " + input.Date)
	}

	var price float64
	if input.TestCode != "" {
		test := models.LabTest{}
		coll := db.OpenCollections(util.LabTestCollection)
		if err := db.FindOne(c, coll, bson.M{"code": input.TestCode, "labId": input.LabId, "isActive": true}, &test); err != nil {
			if err == mongo.ErrNoDocuments {
				return booking, errors.New(util.LAB_TEST_NOT_FOUND)
			}
			return booking, err
		}
		price = test.Price
	} else {
		pack := models.LabPackage{}
		coll := db.OpenCollections(util.LabPackageCollection)
		if err := db.FindOne(c, coll, bson.M{"code": input.PackageCode, "labId": input.LabId, "isActive": true}, &pack); err != nil {
			if err == mongo.ErrNoDocuments {
				return booking, errors.New(util.LAB_TEST_NOT_FOUND)
			}
			return booking, err
		}
		price = pack.Price
	}

	if input.HomeCollection {
		lab := models.Lab{}
		coll := db.OpenCollections(util.LabCollection)
		if err := db.FindOne(c, coll, bson.M{"code": input.LabId}, &lab); err != nil {
			return booking, errors.New(util.USER_NOT_FOUND)
		}
		if !lab.HomeCollection {
			return booking, errors.New("this lab does not offer home collection")
		}
	}

	code, err := GenerateCode(c, util.LabBookingCollection)
	if err != nil {
		log.Println("Error while generating labBooking code:", err)
		return booking, err
	}

	booking = models.LabBooking{
		Code:           code,
		LabId:          input.LabId,
		PatientId:      patientId,
		TestCode:       input.TestCode,
		PackageCode:    input.PackageCode,
		Date:           input.Date,
		HomeCollection: input.HomeCollection,
		Price:          price,
		Status:         "pending",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	coll := db.OpenCollections(util.LabBookingCollection)
	if _, err := db.CreateOne(c, coll, booking); err != nil {
		log.Println("Error while inserting labBooking:", err)
		return booking, err
	}
	return booking, nil
}

func FetchMyLabBookings(c *gin.Context) ([]models.LabBooking, error) {
	code := c.GetString("code")

	filter := bson.M{}
	switch c.GetString("role") {
	case role.Lab:
		filter = bson.M{"labId": code}
	case role.Patient:
		filter = bson.M{"patientId": code}
	case role.Admin:
		filter = bson.M{}
	default:
		return nil, errors.New(util.INVALID_USER_TO_ACCESS)
	}

	coll := db.OpenCollections(util.LabBookingCollection)
	cursor, err := coll.Find(c, filter)
	if err != nil {
		log.Println("Error while fetching labBookings:", err)
		return nil, err
	}
	defer cursor.Close(c)

	bookings := []models.LabBooking{}
	if err := cursor.All(c, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

var labBookingTransitions = map[string][]string{
	"pending":          {"sample_collected", "cancelled"},
	"sample_collected": {"result_ready"},
	"result_ready":     {},
	"cancelled":        {},
}

/*
* The owning lab moves a booking along its lifecycle and may attach
* the result file path when the result is ready
 */
func UpdateLabBookingStatus(c *gin.Context, code string, status string, resultFile string) (models.LabBooking, error) {
	booking := models.LabBooking{}
	labId := c.GetString("code")

	coll := db.OpenCollections(util.LabBookingCollection)
	if err := db.FindOne(c, coll, bson.M{"code": code}, &booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return booking, errors.New(util.LAB_BOOKING_NOT_FOUND)
		}
		return booking, err
	}
	if booking.LabId != labId {
		return booking, errors.New(util.LAB_DOESNOT_HAVE_ACCESS_TO_THIS_BOOKING)
	}

	allowed := false
	for _, next := range labBookingTransitions[booking.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return booking, errors.New(util.INVALID_BOOKING_STATUS)
	}

	set := bson.M{"status": status, "updatedAt": time.Now()}
	if status == "result_ready" && resultFile != "" {
		set["resultFile"] = resultFile
	}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": code}, bson.M{"$set": set}); err != nil {
		log.Println("Error while updating labBooking status:", err)
		return booking, err
	}
	booking.Status = status
	if resultFile != "" {
		booking.ResultFile = resultFile
	}
	return booking, nil
}
