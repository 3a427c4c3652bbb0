// Package export turns the booking calendar into an iCalendar file so the
// venue schedule can be subscribed to from a regular calendar app.
package export

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/klubbsidan/klubbctl/internal/api"
)

const slotDuration = 2 * time.Hour

// Build converts bookings to an iCalendar. 2h bookings become timed two-hour
// events, heldag bookings all-day events, helg bookings all-day spans with
// the exclusive end date as DTEND. Bookings whose dates cannot be parsed are
// skipped with a warning rather than aborting the export.
func Build(bookings []api.Booking) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//klubbctl//EN")

	now := time.Now()

	for _, b := range bookings {
		vevent, err := buildEvent(b, now)
		if err != nil {
			log.Printf("Warning: skipping booking %d in export: %v", b.ID, err)
			continue
		}
		cal.Children = append(cal.Children, vevent)
	}

	return cal
}

func buildEvent(b api.Booking, now time.Time) (*ical.Component, error) {
	vevent := ical.NewComponent(ical.CompEvent)

	uid := uuid.NewString() + "@klubbctl"
	if b.ID != 0 {
		uid = fmt.Sprintf("booking-%d@klubbctl", b.ID)
	}
	vevent.Props.SetText(ical.PropUID, uid)

	summary := b.Title
	if summary == "" {
		summary = "Bokning"
	}
	vevent.Props.SetText(ical.PropSummary, summary)

	switch b.BookingType {
	case api.BookingType2H:
		start, err := time.Parse("2006-01-02T15:04:05", b.Start)
		if err != nil {
			return nil, fmt.Errorf("invalid 2h start %q: %w", b.Start, err)
		}
		vevent.Props.SetDateTime(ical.PropDateTimeStart, start)
		vevent.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(slotDuration))

	case api.BookingTypeWeekend:
		start, err := time.Parse("2006-01-02", datePrefix(b.Start))
		if err != nil {
			return nil, fmt.Errorf("invalid helg start %q: %w", b.Start, err)
		}
		end := start.AddDate(0, 0, 1)
		if b.End != "" {
			end, err = time.Parse("2006-01-02", datePrefix(b.End))
			if err != nil {
				return nil, fmt.Errorf("invalid helg end %q: %w", b.End, err)
			}
		}
		setDate(vevent, ical.PropDateTimeStart, start)
		// The booking's end date is already exclusive, matching DTEND.
		setDate(vevent, ical.PropDateTimeEnd, end)

	default:
		// heldag, and any unknown type, exports as a single all-day event.
		start, err := time.Parse("2006-01-02", datePrefix(b.Start))
		if err != nil {
			return nil, fmt.Errorf("invalid start %q: %w", b.Start, err)
		}
		setDate(vevent, ical.PropDateTimeStart, start)
		setDate(vevent, ical.PropDateTimeEnd, start.AddDate(0, 0, 1))
	}

	vevent.Props.SetDateTime(ical.PropDateTimeStamp, now)
	return vevent, nil
}

// WriteFile encodes the bookings and writes the calendar to path.
func WriteFile(path string, bookings []api.Booking) error {
	cal := Build(bookings)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write calendar file: %w", err)
	}

	return nil
}

func setDate(vevent *ical.Component, name string, date time.Time) {
	prop := ical.NewProp(name)
	prop.SetDate(date)
	vevent.Props.Set(prop)
}

func datePrefix(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
