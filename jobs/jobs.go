package jobs

import (
	"context"
	"log"
	"time"

	db "DoctorZ/config/db"
	"DoctorZ/models"
	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// How far ahead the scheduler keeps availability seeded.
const seedDaysAhead = 7

func StartDailyScheduler() {
	c := cron.New()

	// Runs every day at 00:05 AM
	c.AddFunc("5 0 * * *", func() {
		log.Println("Running daily availability scheduler...")
		RunTodayScheduler()
	})

	c.Start()
}

/*
* For every approved doctor with declared default hours,make sure the
* next few days have an availability record
* Days a doctor already defined by hand are left untouched
 */
func RunTodayScheduler() {
	ctx := context.Background()
	doctors, err := fetchDoctorsWithDefaultHours(ctx)
	if err != nil {
		log.Println("Error while fetching doctors for scheduler:", err)
		return
	}

	for _, doctor := range doctors {
		if doctor.DefaultWorkingHours == nil {
			continue
		}
		for offset := 0; offset < seedDaysAhead; offset++ {
			date := time.Now().UTC().AddDate(0, 0, offset)
			if err := seedAvailability(ctx, doctor, date); err != nil {
				log.Println("Error generating slots for doctor:", doctor.Code, err)
			}
		}
	}
}

func fetchDoctorsWithDefaultHours(ctx context.Context) ([]models.Doctor, error) {
	coll := db.OpenCollections(util.DoctorCollection)
	filter := bson.M{
		"status":              "approved",
		"isActive":            true,
		"defaultWorkingHours": bson.M{"$exists": true, "$ne": nil},
	}
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func seedAvailability(ctx context.Context, doctor models.Doctor, date time.Time) error {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	coll := db.OpenCollections(util.AvailabilityCollection)
	filter := bson.M{"doctorId": doctor.Code, "date": day}
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	record := models.TimeSlotDay{
		DoctorId:  doctor.Code,
		Date:      day,
		Slots:     services.GenerateTimeSlots(doctor.DefaultWorkingHours.Start, doctor.DefaultWorkingHours.End, services.SlotIntervalMinutes),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	_, err = db.CreateOne(ctx, coll, record)
	return err
}
