package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The upstream flight API reports each airport's schedule in that airport's own
// local time, with the airport's UTC offset appended. Converting those stamps
// through the device timezone shifts them to the wrong wall clock, so the
// functions here read the literal digits out of the string and ignore the
// offset suffix entirely.

// ExtractLiteralTime returns the wall-clock time embedded in an ISO-8601-like
// timestamp as a 12-hour "h:mm AM/PM" string. The offset suffix is discarded,
// not applied. Returns ok=false when the string does not carry a parseable
// date-T-time shape.
func ExtractLiteralTime(iso string) (string, bool) {
	parts := strings.Split(iso, "T")
	if len(parts) != 2 {
		return "", false
	}

	timePart := stripOffset(parts[1])

	fields := strings.Split(timePart, ":")
	if len(fields) < 2 {
		return "", false
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return "", false
	}
	minute, err := strconv.Atoi(fields[1])
	if err != nil {
		return "", false
	}

	return formatClock12(hour, minute), true
}

// ExtractLiteralDate returns the calendar day embedded in the date part of the
// timestamp, at midnight UTC. The time part, if any, is ignored.
func ExtractLiteralDate(iso string) (time.Time, bool) {
	datePart := iso
	if idx := strings.Index(iso, "T"); idx >= 0 {
		datePart = iso[:idx]
	}

	fields := strings.Split(datePart, "-")
	if len(fields) != 3 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// ArrivalDayOffset returns the whole-day distance between the literal departure
// and arrival dates. A negative difference is a data anomaly and is clamped to
// zero; unparseable input on either side also yields zero.
func ArrivalDayOffset(departureISO, arrivalISO string) int {
	dep, ok := ExtractLiteralDate(departureISO)
	if !ok {
		return 0
	}
	arr, ok := ExtractLiteralDate(arrivalISO)
	if !ok {
		return 0
	}

	days := int(arr.Sub(dep).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// TruncateToDay drops the time-of-day portion, keeping the calendar date in UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// stripOffset cuts the UTC-offset suffix off a time segment. A "+" always
// starts an offset; a "-" only does when it appears past position 5, so the
// check never misfires on the leading hh:mm:ss digits.
func stripOffset(timePart string) string {
	if idx := strings.Index(timePart, "+"); idx >= 0 {
		return timePart[:idx]
	}
	if idx := strings.LastIndex(timePart, "-"); idx > 5 {
		return timePart[:idx]
	}
	return timePart
}

func formatClock12(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour
	if hour == 0 {
		displayHour = 12
	} else if hour > 12 {
		displayHour = hour - 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}
