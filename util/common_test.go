package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate_PlainDate(t *testing.T) {
	date, err := NormalizeDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), date)
}

func TestNormalizeDate_ISOWithTime(t *testing.T) {
	date, err := NormalizeDate("2026-09-01T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), date)

	date, err = NormalizeDate("2026-09-01T14:30:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), date)
}

func TestNormalizeDate_Unparseable(t *testing.T) {
	_, err := NormalizeDate("not a date")
	assert.Error(t, err)

	_, err = NormalizeDate("")
	assert.Error(t, err)
}

func TestGetTrimmedString(t *testing.T) {
	data := map[string]interface{}{"name": "  Alice  "}
	require.NoError(t, GetTrimmedString(data, "name"))
	assert.Equal(t, "Alice", data["name"])

	assert.Error(t, GetTrimmedString(data, "missing"))
	assert.Error(t, GetTrimmedString(map[string]interface{}{"name": 42}, "name"))
	assert.Error(t, GetTrimmedString(map[string]interface{}{"name": "   "}, "name"))
}
