package booking

import "github.com/klubbsidan/klubbctl/internal/api"

// datePart extracts the YYYY-MM-DD prefix of an ISO 8601 string, or "" when
// the string is too short to contain one.
func datePart(s string) string {
	if len(s) < 10 {
		return ""
	}
	return s[:10]
}

// timePart extracts the HH:MM component of an ISO 8601 datetime string such
// as "2026-03-15T09:00:00", or "" for date-only or malformed values.
func timePart(s string) string {
	if len(s) < 16 {
		return ""
	}
	return s[11:16]
}

// IsFullDayOccupied reports whether a heldag or helg booking covers the given
// date. A heldag booking covers only its start date; a helg booking covers
// the half-open interval [start, end). ISO date strings compare correctly as
// plain strings.
func (c *Cache) IsFullDayOccupied(date string) bool {
	for _, b := range c.Snapshot() {
		if b.BookingType != api.BookingTypeFullDay && b.BookingType != api.BookingTypeWeekend {
			continue
		}
		start := datePart(b.Start)
		if start == "" {
			continue
		}
		if start == date {
			return true
		}
		if end := datePart(b.End); end != "" && date >= start && date < end {
			return true
		}
	}
	return false
}

// TakenSlots returns the slot keys already occupied by 2h bookings on the
// given date. The result is always a subset of SlotKeys; bookings with
// malformed or unknown start times are ignored.
func (c *Cache) TakenSlots(date string) map[string]bool {
	taken := make(map[string]bool)
	for _, b := range c.Snapshot() {
		if b.BookingType != api.BookingType2H {
			continue
		}
		if datePart(b.Start) != date {
			continue
		}
		if t := timePart(b.Start); IsSlotKey(t) {
			taken[t] = true
		}
	}
	return taken
}

// HasSlotBookings reports whether at least one 2h booking exists on the given
// date. Used for the advisory warning when a whole-day or weekend booking
// targets a date that already has timed bookings.
func (c *Cache) HasSlotBookings(date string) bool {
	for _, b := range c.Snapshot() {
		if b.BookingType == api.BookingType2H && datePart(b.Start) == date {
			return true
		}
	}
	return false
}

// SlotOption is one entry of the slot picker.
type SlotOption struct {
	Key      string
	Label    string
	Taken    bool
	Selected bool
}

// Availability is the presentation decision for a selected date: either the
// date is fully booked and the form is suppressed, or the picker shows all
// four slots with taken ones visible but unavailable and the first free one
// preselected.
type Availability struct {
	Date        string
	FullyBooked bool
	Slots       []SlotOption
}

// Availability computes the picker state for the given date.
func (c *Cache) Availability(date string) Availability {
	av := Availability{Date: date}

	taken := c.TakenSlots(date)
	if c.IsFullDayOccupied(date) || len(taken) == len(SlotKeys) {
		av.FullyBooked = true
		return av
	}

	selected := false
	for _, key := range SlotKeys {
		opt := SlotOption{
			Key:   key,
			Label: SlotLabels[key],
			Taken: taken[key],
		}
		if !opt.Taken && !selected {
			opt.Selected = true
			selected = true
		}
		av.Slots = append(av.Slots, opt)
	}
	return av
}

// Warning returns the advisory message for choosing a whole-day or weekend
// booking on a date that already has 2h bookings, or "" when none applies.
// The warning never blocks a submission; the server has the final word and
// this cache may be stale.
func (c *Cache) Warning(date, bookingType string) string {
	if bookingType != api.BookingType2H && c.HasSlotBookings(date) {
		return "Obs: Det finns 2h-bokningar detta datum. Heldag/helg kan inte bokas."
	}
	return ""
}
