package render

import (
	"strings"
	"testing"
	"time"

	"github.com/klubbsidan/klubbctl/internal/api"
	"github.com/klubbsidan/klubbctl/internal/booking"
)

func cacheWith(t *testing.T, bookings ...api.Booking) *booking.Cache {
	t.Helper()
	c := booking.NewCache()
	if !c.Apply(bookings, c.Begin()) {
		t.Fatal("Apply rejected a fresh generation")
	}
	return c
}

func TestMonthGridMarkers(t *testing.T) {
	c := cacheWith(t,
		api.Booking{BookingType: api.BookingTypeFullDay, Start: "2026-03-07"},
		api.Booking{BookingType: api.BookingType2H, Start: "2026-03-15T09:00:00"},
		api.Booking{BookingType: api.BookingType2H, Start: "2026-03-15T12:00:00"},
	)

	grid := MonthGrid(2026, time.March, c)

	if !strings.HasPrefix(grid, "mars 2026\n") {
		t.Errorf("missing month heading:\n%s", grid)
	}
	if !strings.Contains(grid, "må") || !strings.Contains(grid, "sö") {
		t.Errorf("missing weekday header:\n%s", grid)
	}
	if !strings.Contains(grid, " 7X ") {
		t.Errorf("full-day marker missing for the 7th:\n%s", grid)
	}
	if !strings.Contains(grid, "152 ") {
		t.Errorf("slot count marker missing for the 15th:\n%s", grid)
	}
}

func TestMonthGridMondayFirst(t *testing.T) {
	// June 2026 starts on a Monday, so day 1 sits in the first column.
	grid := MonthGrid(2026, time.June, cacheWith(t))

	lines := strings.Split(grid, "\n")
	if len(lines) < 3 {
		t.Fatalf("unexpected grid:\n%s", grid)
	}
	if !strings.HasPrefix(lines[2], "  1") {
		t.Errorf("June 1st 2026 should start the first row:\n%s", grid)
	}
}

func TestAvailabilityPanelFullyBooked(t *testing.T) {
	c := cacheWith(t, api.Booking{BookingType: api.BookingTypeFullDay, Start: "2026-03-15"})

	panel := AvailabilityPanel(c.Availability("2026-03-15"), "")

	if !strings.Contains(panel, "Datumet är fullbokat.") {
		t.Errorf("missing fully-booked notice:\n%s", panel)
	}
	if strings.Contains(panel, "[") {
		t.Errorf("a fully booked date must not show the slot picker:\n%s", panel)
	}
}

func TestAvailabilityPanelSlots(t *testing.T) {
	c := cacheWith(t, api.Booking{BookingType: api.BookingType2H, Start: "2026-03-15T09:00:00"})

	panel := AvailabilityPanel(c.Availability("2026-03-15"), "")

	if !strings.Contains(panel, "[x] 09:00–11:00 (bokad)") {
		t.Errorf("taken slot must stay visible and be marked booked:\n%s", panel)
	}
	if !strings.Contains(panel, "[*] 12:00–14:00") {
		t.Errorf("first free slot must be preselected:\n%s", panel)
	}
	if !strings.Contains(panel, "[ ] 15:00–17:00") || !strings.Contains(panel, "[ ] 18:00–20:00") {
		t.Errorf("free slots missing:\n%s", panel)
	}
}

func TestAvailabilityPanelWarning(t *testing.T) {
	c := cacheWith(t, api.Booking{BookingType: api.BookingType2H, Start: "2026-03-15T09:00:00"})

	warning := c.Warning("2026-03-15", api.BookingTypeFullDay)
	panel := AvailabilityPanel(c.Availability("2026-03-15"), warning)

	if !strings.Contains(panel, "Obs:") {
		t.Errorf("advisory warning missing:\n%s", panel)
	}
	if !strings.Contains(panel, "[*]") {
		t.Errorf("the warning must not suppress the picker:\n%s", panel)
	}
}
