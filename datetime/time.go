package datetime

import (
	"fmt"
	"time"
)

// ShortDateFormat is the layout for a DATE (no time) value such as 2042-11-12
const ShortDateFormat = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Epoch is the reference date for epoch day values
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// ShortDateToTime parses a yyyy-mm-dd string as midnight UTC of that calendar date
func ShortDateToTime(date string) (time.Time, error) {
	return time.ParseInLocation(ShortDateFormat, date, time.UTC)
}

// ShortDateFromTime will return a short date from a time, using the calendar date of tv in its own location
func ShortDateFromTime(tv time.Time) string {
	return tv.Format(ShortDateFormat)
}

// TimeToEpochDays returns the signed number of days between the epoch and the calendar date of tv.
// The wall clock and location of tv are ignored, only the year, month and day are used.
func TimeToEpochDays(tv time.Time) int64 {
	y, m, d := tv.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	// midnight UTC is always a whole number of days from the epoch
	return midnight.Unix() / secondsPerDay
}

// ShortDateToEpochDays converts a yyyy-mm-dd string into epoch days
func ShortDateToEpochDays(date string) (int64, error) {
	tv, err := ShortDateToTime(date)
	if err != nil {
		return 0, fmt.Errorf("error parsing date: %s. %w", date, err)
	}
	return TimeToEpochDays(tv), nil
}

// DateFromEpochDays returns midnight UTC of the calendar date days after the epoch
func DateFromEpochDays(days int64) time.Time {
	return time.Unix(days*secondsPerDay, 0).UTC()
}

// ShortDateFromEpochDays returns the yyyy-mm-dd string for an epoch day value
func ShortDateFromEpochDays(days int64) string {
	return ShortDateFromTime(DateFromEpochDays(days))
}
