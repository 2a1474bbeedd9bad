package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// Known gap, kept on purpose: the deactivation filter has no condition on
// the entry's current state, so two concurrent bookings against the same
// slotId both match and both succeed. The query test below pins that shape;
// exercising the race itself needs a live database.

func TestSlotDeactivationQuery_ClosesOneEntryUnconditionally(t *testing.T) {
	filter, update := slotDeactivationQuery("D0001", "slot-a")

	assert.Equal(t, "D0001", filter["doctorId"])
	assert.Equal(t, "slot-a", filter["slots.id"])
	assert.NotContains(t, filter, "slots.isActive")

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, false, set["slots.$.isActive"])
	assert.NotContains(t, set, "slots.$[].isActive")
}

func TestParseBookingForm_Valid(t *testing.T) {
	data := `{"doctorId":"D0001","slotId":"slot-a","date":"2026-09-01","time":"09:15","mode":"online","fee":500}`
	emr := `{"symptoms":"fever","vitals":{"bp":"120/80"}}`

	input, emrInput, err := ParseBookingForm(data, emr)
	require.NoError(t, err)
	assert.Equal(t, "D0001", input.DoctorId)
	assert.Equal(t, "slot-a", input.SlotId)
	assert.Equal(t, "online", input.Mode)
	assert.Equal(t, 500.0, input.Fee)
	assert.Equal(t, "fever", emrInput.Symptoms)
	assert.Equal(t, "120/80", emrInput.Vitals["bp"])
}

func TestParseBookingForm_EmptyEMR(t *testing.T) {
	data := `{"doctorId":"D0001","slotId":"slot-a"}`
	input, emrInput, err := ParseBookingForm(data, "")
	require.NoError(t, err)
	assert.Equal(t, "D0001", input.DoctorId)
	assert.Empty(t, emrInput.Symptoms)
	assert.Nil(t, emrInput.Vitals)
}

func TestParseBookingForm_MissingRequiredFields(t *testing.T) {
	_, _, err := ParseBookingForm(`{"doctorId":"D0001"}`, "")
	assert.Error(t, err)

	_, _, err = ParseBookingForm(`{"slotId":"slot-a"}`, "")
	assert.Error(t, err)
}

func TestParseBookingForm_InvalidJSON(t *testing.T) {
	_, _, err := ParseBookingForm(`not json`, "")
	assert.Error(t, err)

	_, _, err = ParseBookingForm(`{"doctorId":"D0001","slotId":"s"}`, `broken`)
	assert.Error(t, err)
}
