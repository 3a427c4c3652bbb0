package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emersion/go-ical"

	"github.com/klubbsidan/klubbctl/internal/api"
)

func findEvent(t *testing.T, cal *ical.Calendar, uid string) *ical.Component {
	t.Helper()
	for _, child := range cal.Children {
		if child.Name != ical.CompEvent {
			continue
		}
		if prop := child.Props.Get(ical.PropUID); prop != nil && prop.Value == uid {
			return child
		}
	}
	t.Fatalf("no event with uid %s", uid)
	return nil
}

func propValue(t *testing.T, event *ical.Component, name string) string {
	t.Helper()
	prop := event.Props.Get(name)
	if prop == nil {
		t.Fatalf("missing property %s", name)
	}
	return prop.Value
}

func TestBuildTimedSlotEvent(t *testing.T) {
	cal := Build([]api.Booking{{
		ID:          1,
		Title:       "Styrelsemöte",
		Start:       "2026-03-15T09:00:00",
		BookingType: api.BookingType2H,
	}})

	event := findEvent(t, cal, "booking-1@klubbctl")
	if got := propValue(t, event, ical.PropSummary); got != "Styrelsemöte" {
		t.Errorf("summary = %q", got)
	}

	start := propValue(t, event, ical.PropDateTimeStart)
	end := propValue(t, event, ical.PropDateTimeEnd)
	if !strings.HasPrefix(start, "20260315T09") {
		t.Errorf("DTSTART = %q", start)
	}
	if !strings.HasPrefix(end, "20260315T11") {
		t.Errorf("a 2h slot must end two hours after start, DTEND = %q", end)
	}
}

func TestBuildFullDayEvent(t *testing.T) {
	cal := Build([]api.Booking{{
		ID:          2,
		Start:       "2026-03-15",
		BookingType: api.BookingTypeFullDay,
	}})

	event := findEvent(t, cal, "booking-2@klubbctl")
	if got := propValue(t, event, ical.PropDateTimeStart); got != "20260315" {
		t.Errorf("DTSTART = %q, want an all-day date", got)
	}
	if got := propValue(t, event, ical.PropDateTimeEnd); got != "20260316" {
		t.Errorf("DTEND = %q, want the next day", got)
	}
	if got := propValue(t, event, ical.PropSummary); got != "Bokning" {
		t.Errorf("untitled bookings get a fallback summary, got %q", got)
	}
}

func TestBuildWeekendEventKeepsExclusiveEnd(t *testing.T) {
	cal := Build([]api.Booking{{
		ID:          3,
		Title:       "Helguthyrning",
		Start:       "2026-03-14",
		End:         "2026-03-16",
		BookingType: api.BookingTypeWeekend,
	}})

	event := findEvent(t, cal, "booking-3@klubbctl")
	if got := propValue(t, event, ical.PropDateTimeStart); got != "20260314" {
		t.Errorf("DTSTART = %q", got)
	}
	if got := propValue(t, event, ical.PropDateTimeEnd); got != "20260316" {
		t.Errorf("the stored end date is already exclusive and maps straight to DTEND, got %q", got)
	}
}

func TestBuildSkipsMalformedBookings(t *testing.T) {
	cal := Build([]api.Booking{
		{ID: 1, Start: "not-a-date", BookingType: api.BookingType2H},
		{ID: 2, Start: "2026-03-15", BookingType: api.BookingTypeFullDay},
	})

	if len(cal.Children) != 1 {
		t.Fatalf("expected the malformed booking to be skipped, got %d events", len(cal.Children))
	}
	findEvent(t, cal, "booking-2@klubbctl")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bokningar.ics")

	err := WriteFile(path, []api.Booking{
		{ID: 1, Title: "Möte", Start: "2026-03-15T09:00:00", BookingType: api.BookingType2H},
	})
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output failed: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "BEGIN:VEVENT") {
		t.Errorf("output is not an iCalendar file:\n%s", content)
	}
	if !strings.Contains(content, "SUMMARY:Möte") {
		t.Errorf("missing event summary:\n%s", content)
	}
}
