package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date part of a note key.
const DateLayout = "2006-01-02"

// Key builds the note key for a calendar date and an hour of day.
// The hour is not zero-padded: Key(d, 5) == "2024-01-01-5".
func Key(date time.Time, hour int) string {
	return date.Format(DateLayout) + "-" + strconv.Itoa(hour)
}

// ParseKey splits a note key into its date (midnight, in loc) and hour.
func ParseKey(key string, loc *time.Location) (time.Time, int, error) {
	idx := strings.LastIndexByte(key, '-')
	if idx <= 0 || idx == len(key)-1 {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	hourPart := key[idx+1:]
	if len(hourPart) > 1 && hourPart[0] == '0' {
		return time.Time{}, 0, fmt.Errorf("%w: %q has a zero-padded hour", ErrInvalidKey, key)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if err := ValidateHour(hour); err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %q: %w", ErrInvalidKey, key, err)
	}
	if loc == nil {
		loc = time.Local
	}
	date, err := time.ParseInLocation(DateLayout, key[:idx], loc)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %q: %v", ErrInvalidKey, key, err)
	}
	return date, hour, nil
}

// ValidateHour reports whether hour is a valid hour of day.
func ValidateHour(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: got %d", ErrInvalidHour, hour)
	}
	return nil
}
