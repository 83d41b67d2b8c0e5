package analytics

import (
	"fmt"
	"time"
)

// Quadrant-of-day buckets shared by the order and item analyzers.
const (
	QuadrantMorning   = "morning"
	QuadrantAfternoon = "afternoon"
	QuadrantEvening   = "evening"
	QuadrantNight     = "night"
)

// Quadrant classifies an hour of day into the fixed dashboard buckets:
// morning [6,12), afternoon [12,17), evening [17,22), night otherwise.
func Quadrant(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return QuadrantMorning
	case hour >= 12 && hour < 17:
		return QuadrantAfternoon
	case hour >= 17 && hour < 22:
		return QuadrantEvening
	default:
		return QuadrantNight
	}
}

// DayStart returns midnight of t's calendar day in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Sunday beginning t's week.
func WeekStart(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, -int(t.Weekday()))
}

// MonthStart returns midnight of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// HourLabel formats an hour of day as the zero-padded "HH:00" chart label.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func dayLabel(t time.Time) string {
	return t.Format("Jan 02")
}
