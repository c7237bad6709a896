// Package slottime normalizes appointment times between the 12-hour clock
// used at the API boundary ("04:00 PM") and the 24-hour "16:00" form used
// for storage and comparison, and expands a daily window into slot times.
package slottime

import (
	"errors"
	"time"
)

const (
	// LayoutDate is the calendar-date form used for availability keys and
	// appointment dates at the boundary and in storage.
	LayoutDate = "2006-01-02"

	// Layout12h is the display/input form with meridiem marker.
	Layout12h = "03:04 PM"

	// Layout24h is the canonical stored form.
	Layout24h = "15:04"
)

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time, expected hh:mm AM/PM")
)

// ParseDate parses a boundary date string into a UTC-midnight time.Time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutDate, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a stored date back to its boundary form.
func FormatDate(t time.Time) string {
	return t.Format(LayoutDate)
}

// Parse accepts a boundary time string in either the 12-hour form
// ("04:00 PM") or the already-normalized 24-hour form ("16:00"), and
// returns the canonical 24-hour representation.
func Parse(s string) (string, error) {
	if t, err := time.Parse(Layout12h, s); err == nil {
		return t.Format(Layout24h), nil
	}
	if t, err := time.Parse(Layout24h, s); err == nil {
		return t.Format(Layout24h), nil
	}
	return "", ErrInvalidTime
}

// Format12h renders a canonical 24-hour time in the display form.
// Input is trusted to be a value previously produced by Parse or Window.
func Format12h(slot string) string {
	t, err := time.Parse(Layout24h, slot)
	if err != nil {
		return slot
	}
	return t.Format(Layout12h)
}

// Window expands a daily window into ordered slot start times in canonical
// 24-hour form. Slots begin at startHour and run up to, but not including,
// endHour at a stride of slotMinutes.
func Window(startHour, endHour, slotMinutes int) []string {
	if endHour <= startHour || slotMinutes <= 0 {
		return nil
	}

	// Counting minutes keeps the bound correct for endHour == 24, where a
	// wall-clock cursor would wrap past midnight and never stop.
	var slots []string
	for m := startHour * 60; m < endHour*60; m += slotMinutes {
		cur := time.Date(0, time.January, 1, m/60, m%60, 0, 0, time.UTC)
		slots = append(slots, cur.Format(Layout24h))
	}
	return slots
}
