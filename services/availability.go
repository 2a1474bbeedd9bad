package services

import (
	"errors"
	"log"
	"time"

	db "DoctorZ/config/db"
	redis "DoctorZ/config/redis"
	"DoctorZ/models"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SlotIntervalMinutes is the default width of one bookable slot.
const SlotIntervalMinutes = 15

const timeLayout = "15:04"

/*
* Pure generator for the slot table of one day
* Produces one entry per interval boundary in [start,end)
* Malformed times or end<=start yield an empty table,not an error
 */
func GenerateTimeSlots(start string, end string, interval int) []models.SlotEntry {
	slots := []models.SlotEntry{}
	if interval <= 0 {
		return slots
	}
	startTime, err := time.Parse(timeLayout, start)
	if err != nil {
		return slots
	}
	endTime, err := time.Parse(timeLayout, end)
	if err != nil {
		return slots
	}
	for t := startTime; t.Before(endTime); t = t.Add(time.Duration(interval) * time.Minute) {
		slots = append(slots, models.SlotEntry{
			ID:       uuid.NewString(),
			Time:     t.Format(timeLayout),
			IsActive: true,
		})
	}
	return slots
}

/*
* Reconcile a freshly generated table against the stored one
* Labels that survive keep their id and isActive,so booked slots stay booked
* Labels outside the new range are dropped,together with any booking pointing at them
 */
func MergeSlots(existing []models.SlotEntry, candidates []models.SlotEntry) []models.SlotEntry {
	byTime := make(map[string]models.SlotEntry, len(existing))
	for _, slot := range existing {
		byTime[slot.Time] = slot
	}
	merged := make([]models.SlotEntry, 0, len(candidates))
	for _, candidate := range candidates {
		if old, ok := byTime[candidate.Time]; ok {
			merged = append(merged, old)
		} else {
			merged = append(merged, candidate)
		}
	}
	return merged
}

/*
* Drop every requested date NormalizeDate cannot parse
 */
func normalizeDates(raw []string) []time.Time {
	dates := []time.Time{}
	for _, entry := range raw {
		date, err := util.NormalizeDate(entry)
		if err != nil {
			log.Println("Skipping unparseable date:", entry)
			continue
		}
		dates = append(dates, date)
	}
	return dates
}

/*
* Normalize every requested date
* Unparseable dates are skipped silently,a request of nothing but
* unparseable dates comes back with two empty lists,not an error
* Existing (doctorId,date) records are reported back,not merged
* The rest get a freshly generated table
 */
func CreateTimeSlot(c *gin.Context, doctorId string, dates []string, hours models.WorkingHours) ([]string, []string, error) {
	if hours.Start == "" || hours.End == "" {
		return nil, nil, errors.New(util.WORKING_HOURS_NOT_PROVIDED)
	}
	createdDates := []string{}
	alreadyExistDates := []string{}
	normalized := normalizeDates(dates)
	if len(normalized) == 0 {
		return createdDates, alreadyExistDates, nil
	}
	coll := db.OpenCollections(util.AvailabilityCollection)

	for _, date := range normalized {
		filter := bson.M{"doctorId": doctorId, "date": date}
		existing := models.TimeSlotDay{}
		err := db.FindOne(c, coll, filter, &existing)
		if err == nil {
			alreadyExistDates = append(alreadyExistDates, date.Format("2006-01-02"))
			continue
		}
		if err != mongo.ErrNoDocuments {
			log.Println("Error while looking up availability:", err)
			return nil, nil, err
		}

		day := models.TimeSlotDay{
			DoctorId:  doctorId,
			Date:      date,
			Slots:     GenerateTimeSlots(hours.Start, hours.End, SlotIntervalMinutes),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := db.CreateOne(c, coll, day); err != nil {
			log.Println("Error while inserting availability:", err)
			return nil, nil, err
		}
		createdDates = append(createdDates, date.Format("2006-01-02"))
	}
	invalidateAvailabilityCache(c, doctorId)
	return createdDates, alreadyExistDates, nil
}

/*
* All availability records of one doctor,cache aside
 */
func FetchAvailability(c *gin.Context, doctorId string) ([]models.TimeSlotDay, error) {
	key := util.AvailabilityKey + doctorId
	cached := []models.TimeSlotDay{}
	if redis.GetCache(c, key, &cached) {
		return cached, nil
	}

	coll := db.OpenCollections(util.AvailabilityCollection)
	cursor, err := coll.Find(c, bson.M{"doctorId": doctorId})
	if err != nil {
		log.Println("Error while fetching availability:", err)
		return nil, err
	}
	defer cursor.Close(c)

	days := []models.TimeSlotDay{}
	if err := cursor.All(c, &days); err != nil {
		return nil, err
	}
	if err := redis.SetCache(c, key, days); err != nil {
		log.Println("Error while caching availability:", err)
	}
	return days, nil
}

/*
* Regenerate the table for the new hours and merge with the stored one
* A missing (doctorId,date) record is a not found condition,nothing is created
 */
func EditTimeSlot(c *gin.Context, doctorId string, rawDate string, hours models.WorkingHours) (models.TimeSlotDay, error) {
	day := models.TimeSlotDay{}
	date, err := util.NormalizeDate(rawDate)
	if err != nil {
		log.Println("Error while normalizing date for edit:", err)
		return day, errors.New(util.NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE)
	}
	coll := db.OpenCollections(util.AvailabilityCollection)
	filter := bson.M{"doctorId": doctorId, "date": date}
	if err := db.FindOne(c, coll, filter, &day); err != nil {
		if err == mongo.ErrNoDocuments {
			return day, errors.New(util.NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE)
		}
		log.Println("Error while fetching availability for edit:", err)
		return day, err
	}

	candidates := GenerateTimeSlots(hours.Start, hours.End, SlotIntervalMinutes)
	day.Slots = MergeSlots(day.Slots, candidates)
	day.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{"slots": day.Slots, "updatedAt": day.UpdatedAt}}
	if _, err := db.UpdateOne(c, coll, filter, update); err != nil {
		log.Println("Error while updating availability:", err)
		return day, err
	}
	invalidateAvailabilityCache(c, doctorId)
	return day, nil
}

/*
* Filter and update for flipping one entry,found by its time label
* The positional operator pins exactly the matched array element
 */
func slotToggleQuery(dayId primitive.ObjectID, timeLabel string, isActive bool) (bson.M, bson.M) {
	filter := bson.M{"_id": dayId, "slots.time": timeLabel}
	update := bson.M{"$set": bson.M{"slots.$.isActive": isActive, "updatedAt": time.Now()}}
	return filter, update
}

/*
* Flip a single entry of one day,found by its time label
* Returns the whole updated slots array
 */
func ToggleSlot(c *gin.Context, dayId string, timeLabel string, isActive bool) ([]models.SlotEntry, error) {
	objId, err := primitive.ObjectIDFromHex(dayId)
	if err != nil {
		return nil, errors.New(util.RECORD_NOT_FOUND)
	}
	coll := db.OpenCollections(util.AvailabilityCollection)
	filter, update := slotToggleQuery(objId, timeLabel, isActive)

	updated, err := db.UpdateOne(c, coll, filter, update)
	if err != nil {
		log.Println("Error while toggling slot:", err)
		return nil, err
	}
	if updated.MatchedCount == 0 {
		return nil, errors.New(util.SLOT_NOT_FOUND)
	}

	day := models.TimeSlotDay{}
	if err := db.FindOne(c, coll, bson.M{"_id": objId}, &day); err != nil {
		log.Println("Error while reloading day after toggle:", err)
		return nil, err
	}
	invalidateAvailabilityCache(c, day.DoctorId)
	return day.Slots, nil
}

/*
* Days that still have at least one bookable entry
* Used by the available months view
 */
func ActiveSlotDays(c *gin.Context, doctorId string) ([]models.TimeSlotDay, error) {
	coll := db.OpenCollections(util.AvailabilityCollection)
	filter := bson.M{"doctorId": doctorId, "slots.isActive": true}

	cursor, err := coll.Find(c, filter)
	if err != nil {
		log.Println("Error while fetching active availability:", err)
		return nil, err
	}
	defer cursor.Close(c)

	days := []models.TimeSlotDay{}
	if err := cursor.All(c, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func invalidateAvailabilityCache(c *gin.Context, doctorId string) {
	if err := redis.DeleteCache(c, util.AvailabilityKey+doctorId); err != nil {
		log.Println("Error while invalidating availability cache:", err)
	}
}
