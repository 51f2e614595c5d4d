// Package clock computes the geometry of the clock face from a point in time.
package clock

import (
	"math"
	"time"
)

const (
	// FaceSize is the side of the square face, in face units.
	FaceSize = 800.0
	// Center is the x and y coordinate of the face center.
	Center = FaceSize / 2
	// DotRadius is the distance of the minute dot from the center.
	DotRadius = 230.0
	// MarkerRadius is the distance of the hour markers from the center.
	MarkerRadius = 195.0
	// SecondsPerDay is the length of a day without DST transitions.
	SecondsPerDay = 86400.0
)

// Face is a snapshot of every time-derived value drawn on the clock.
type Face struct {
	Time time.Time

	// Hand angles in degrees, clockwise from twelve o'clock.
	SecondDeg float64
	MinuteDeg float64
	HourDeg   float64

	// Experience is the number of seconds elapsed since local midnight,
	// including the fractional part of the current second.
	Experience float64
	// DayProgress is Experience as a fraction of the day, in [0, 1).
	DayProgress float64
	// MinuteProgress is the position within the current hour, in [0, 1).
	MinuteProgress float64

	// DotX and DotY locate the minute dot on the face.
	DotX float64
	DotY float64
}

// Sample computes the face for t.
func Sample(t time.Time) Face {
	sec := float64(t.Second())
	subSecond := float64(t.Nanosecond()) / 1e9
	min := float64(t.Minute())

	f := Face{Time: t}
	f.SecondDeg = (sec + subSecond) * 6
	f.MinuteDeg = (min + sec/60) * 6
	f.HourDeg = float64(t.Hour()%12)*30 + min/2

	f.Experience = float64(t.Hour()*3600+t.Minute()*60+t.Second()) + subSecond
	f.DayProgress = f.Experience / SecondsPerDay
	f.MinuteProgress = (min + sec/60) / 60

	angle := f.MinuteProgress * 2 * math.Pi
	f.DotX = Center + DotRadius*math.Sin(angle)
	f.DotY = Center - DotRadius*math.Cos(angle)
	return f
}

// DisplayHour maps an hour of day to the label shown in the editor title.
// Midnight shows as 12; every other hour is shown as is.
func DisplayHour(hour int) int {
	if hour == 0 {
		return 12
	}
	return hour
}

// MarkerAngle is the angle, in degrees, of the marker for hour on the
// twelve-marker dial. Hours h and h+12 share a marker.
func MarkerAngle(hour int) float64 {
	return float64(hour%12) * 30
}

// Active reports whether hour's marker is the one the hour hand points at.
func Active(t time.Time, hour int) bool {
	return t.Hour()%12 == hour%12
}

// Polar converts an angle in degrees (clockwise from twelve) and a radius
// into x and y offsets from the center, with y growing downwards.
func Polar(deg, radius float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return radius * math.Sin(rad), -radius * math.Cos(rad)
}
