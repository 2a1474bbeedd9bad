package util

import (
	"errors"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"02-01-2006",
}

/*
* Accepts both plain dates and ISO strings with a time part
* Truncates to the date and returns it at UTC midnight
 */
func NormalizeDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, errors.New("unable to parse date: " + raw)
}

/*
* Check the field exists,is a string and non empty after trimming
* Write the trimmed value back into the map
 */
func GetTrimmedString(data map[string]interface{}, field string) error {
	raw, exists := data[field]
	if !exists {
		return errors.New(field + " not provided")
	}
	value, ok := raw.(string)
	if !ok {
		return errors.New(field + " must be a string")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New(field + " cannot be empty")
	}
	data[field] = value
	return nil
}
