// Package render builds the terminal presentation of the club data: the
// month calendar with occupancy markers, the slot picker panel, and the list
// views used by the admin commands. It only produces strings; all I/O stays
// with the caller.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/klubbsidan/klubbctl/internal/booking"
)

// Occupancy markers in the month grid.
const (
	markerFullDay = "X" // heldag/helg blocks the day
	markerFree    = " "
)

// MonthGrid renders a Monday-first month calendar. Each day carries a marker:
// "X" when a whole-day or weekend booking blocks it, the number of taken 2h
// slots (1-4) otherwise, blank when fully free.
func MonthGrid(year int, month time.Month, c *booking.Cache) string {
	var b strings.Builder

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	fmt.Fprintf(&b, "%s %d\n", monthName(month), year)
	b.WriteString("  må   ti   on   to   fr   lö   sö\n")

	// Monday-first offset of the 1st. Weekday() has Sunday = 0.
	offset := int(first.Weekday()+6) % 7
	b.WriteString(strings.Repeat("     ", offset))

	daysInMonth := first.AddDate(0, 1, -1).Day()
	column := offset
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		fmt.Fprintf(&b, " %2d%s ", day, dayMarker(c, date))
		column++
		if column%7 == 0 {
			b.WriteString("\n")
		}
	}
	if column%7 != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\nX = heldag/helg bokad, 1-4 = antal bokade 2h-pass\n")
	return b.String()
}

func dayMarker(c *booking.Cache, date string) string {
	if c.IsFullDayOccupied(date) {
		return markerFullDay
	}
	if n := len(c.TakenSlots(date)); n > 0 {
		return fmt.Sprintf("%d", n)
	}
	return markerFree
}

// AvailabilityPanel renders the slot picker state for a selected date, the
// terminal counterpart of the booking modal. warning may be empty.
func AvailabilityPanel(av booking.Availability, warning string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Boka %s\n", av.Date)

	if av.FullyBooked {
		b.WriteString("Datumet är fullbokat.\n")
		return b.String()
	}

	for _, slot := range av.Slots {
		switch {
		case slot.Taken:
			fmt.Fprintf(&b, "  [x] %s (bokad)\n", slot.Label)
		case slot.Selected:
			fmt.Fprintf(&b, "  [*] %s\n", slot.Label)
		default:
			fmt.Fprintf(&b, "  [ ] %s\n", slot.Label)
		}
	}

	if warning != "" {
		fmt.Fprintf(&b, "%s\n", warning)
	}
	return b.String()
}

func monthName(m time.Month) string {
	names := [...]string{
		"januari", "februari", "mars", "april", "maj", "juni",
		"juli", "augusti", "september", "oktober", "november", "december",
	}
	return names[m-1]
}
