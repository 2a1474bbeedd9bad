package services

import (
	"net/http/httptest"
	"testing"

	"DoctorZ/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func slotTimes(slots []models.SlotEntry) []string {
	times := make([]string, 0, len(slots))
	for _, s := range slots {
		times = append(times, s.Time)
	}
	return times
}

func TestGenerateTimeSlots_Boundary(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "09:45", 15)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, slotTimes(slots))
	for _, s := range slots {
		assert.True(t, s.IsActive)
		assert.NotEmpty(t, s.ID)
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	first := GenerateTimeSlots("10:00", "12:00", 15)
	second := GenerateTimeSlots("10:00", "12:00", 15)
	assert.Equal(t, slotTimes(first), slotTimes(second))
	assert.Len(t, first, 8)
}

func TestGenerateTimeSlots_EndBeforeStart(t *testing.T) {
	assert.Empty(t, GenerateTimeSlots("10:00", "09:00", 15))
	assert.Empty(t, GenerateTimeSlots("10:00", "10:00", 15))
}

func TestGenerateTimeSlots_MalformedInputs(t *testing.T) {
	assert.Empty(t, GenerateTimeSlots("banana", "10:00", 15))
	assert.Empty(t, GenerateTimeSlots("09:00", "25:99", 15))
	assert.Empty(t, GenerateTimeSlots("09:00", "10:00", 0))
	assert.Empty(t, GenerateTimeSlots("09:00", "10:00", -5))
}

func TestGenerateTimeSlots_NoPartialFinalSlot(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "09:50", 15)
	assert.Equal(t, []string{"09:00", "09:15", "09:30", "09:45"}, slotTimes(slots))
}

func TestMergeSlots_PreservesBookedState(t *testing.T) {
	existing := []models.SlotEntry{
		{ID: "slot-a", Time: "09:00", IsActive: false},
		{ID: "slot-b", Time: "09:15", IsActive: true},
	}
	candidates := GenerateTimeSlots("09:00", "09:30", 15)

	merged := MergeSlots(existing, candidates)
	require.Len(t, merged, 2)
	assert.Equal(t, existing[0], merged[0])
	assert.Equal(t, existing[1], merged[1])
}

func TestMergeSlots_WidensHours(t *testing.T) {
	existing := []models.SlotEntry{
		{ID: "slot-a", Time: "09:00", IsActive: false},
		{ID: "slot-b", Time: "09:15", IsActive: true},
	}
	candidates := GenerateTimeSlots("09:00", "09:45", 15)

	merged := MergeSlots(existing, candidates)
	require.Len(t, merged, 3)
	assert.Equal(t, existing[0], merged[0])
	assert.Equal(t, existing[1], merged[1])
	assert.Equal(t, "09:30", merged[2].Time)
	assert.True(t, merged[2].IsActive)
	assert.NotEqual(t, "slot-a", merged[2].ID)
	assert.NotEqual(t, "slot-b", merged[2].ID)
}

// Narrowing the hours drops entries whose label left the range. A booking
// holding the dropped slot id now dangles; this mirrors the production
// behavior on purpose, nothing repoints or rejects the edit.
func TestMergeSlots_NarrowsHoursDropsEntries(t *testing.T) {
	existing := []models.SlotEntry{
		{ID: "slot-a", Time: "09:00", IsActive: false},
		{ID: "slot-b", Time: "09:15", IsActive: false}, // booked
	}
	candidates := GenerateTimeSlots("09:00", "09:15", 15)

	merged := MergeSlots(existing, candidates)
	require.Len(t, merged, 1)
	assert.Equal(t, "slot-a", merged[0].ID)
	for _, s := range merged {
		assert.NotEqual(t, "slot-b", s.ID)
	}
}

func TestMergeSlots_EmptyExisting(t *testing.T) {
	candidates := GenerateTimeSlots("08:00", "08:30", 15)
	merged := MergeSlots(nil, candidates)
	assert.Equal(t, candidates, merged)
}

func TestNormalizeDates_SkipsMalformed(t *testing.T) {
	dates := normalizeDates([]string{"2026-09-01", "banana", "2026-09-02"})
	require.Len(t, dates, 2)
	assert.Equal(t, "2026-09-01", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2026-09-02", dates[1].Format("2006-01-02"))
}

func TestNormalizeDates_AllMalformed(t *testing.T) {
	assert.Empty(t, normalizeDates([]string{"banana", "31-31-2026", ""}))
}

// A request of nothing but unparseable dates is not an error, the caller
// gets two empty lists back and no record is written.
func TestCreateTimeSlot_AllDatesUnparseable(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	hours := models.WorkingHours{Start: "09:00", End: "17:00"}

	created, alreadyExist, err := CreateTimeSlot(c, "D0001", []string{"banana", "31-31-2026"}, hours)
	require.NoError(t, err)
	assert.Empty(t, created)
	assert.Empty(t, alreadyExist)
}

func TestCreateTimeSlot_MissingHours(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, _, err := CreateTimeSlot(c, "D0001", []string{"2026-09-01"}, models.WorkingHours{})
	assert.Error(t, err)
}

// The positional operator addresses the single array element the filter
// matched, so a toggle touches exactly one entry of the day.
func TestSlotToggleQuery_TargetsSingleEntry(t *testing.T) {
	dayId := primitive.NewObjectID()
	filter, update := slotToggleQuery(dayId, "09:15", false)

	assert.Equal(t, dayId, filter["_id"])
	assert.Equal(t, "09:15", filter["slots.time"])

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, false, set["slots.$.isActive"])
	assert.Contains(t, set, "updatedAt")
	assert.NotContains(t, set, "slots.$[].isActive")
}
