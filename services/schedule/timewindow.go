// Package schedule contains the pure scheduling core: wall-clock parsing,
// slot generation from weekly availability windows, and conflict checks
// against existing reservations. It performs no I/O.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ClockTime is a naive wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// Minutes returns the time as minutes from midnight.
func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String formats the time back to "HH:MM".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseDate accepts only "YYYY-MM-DD" strings and returns the date anchored at
// local midnight.
func ParseDate(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// ParseTime accepts only "HH:MM" strings. Beyond the two-digit shape it does
// not bound-check hour or minute ranges; callers relying on valid wall-clock
// values get that from the slot arithmetic staying within window bounds.
func ParseTime(s string) (ClockTime, error) {
	if !timeRe.MatchString(s) {
		return ClockTime{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return ClockTime{Hour: h, Minute: m}, nil
}

// IsClockTime reports whether s matches the "HH:MM" shape.
func IsClockTime(s string) bool {
	return timeRe.MatchString(s)
}

var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayName maps a date to the lowercase English weekday name used as the
// join key against availability windows.
func WeekdayName(d time.Time) string {
	return weekdayNames[int(d.Weekday())]
}

// IsWeekdayName reports whether s is a valid lowercase-comparable weekday name.
func IsWeekdayName(s string) bool {
	s = strings.ToLower(s)
	for _, n := range weekdayNames {
		if s == n {
			return true
		}
	}
	return false
}

func minutesToClock(m int) string {
	return ClockTime{Hour: m / 60, Minute: m % 60}.String()
}
