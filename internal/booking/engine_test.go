package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/klubbsidan/klubbctl/internal/api"
)

type fakeSource struct {
	bookings  []api.Booking
	listErr   error
	listCalls int

	message    string
	submitErr  error
	lastSubmit api.BookingRequest
}

func (f *fakeSource) ListBookings(ctx context.Context) ([]api.Booking, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeSource) SubmitBooking(ctx context.Context, req api.BookingRequest) (string, error) {
	f.lastSubmit = req
	if f.submitErr != nil {
		return "", f.submitErr
	}
	return f.message, nil
}

func TestRefreshFillsCache(t *testing.T) {
	source := &fakeSource{bookings: []api.Booking{
		{ID: 1, BookingType: api.BookingTypeFullDay, Start: "2026-03-15"},
	}}
	engine := NewEngine(source)

	if err := engine.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if !engine.Cache().IsFullDayOccupied("2026-03-15") {
		t.Error("cache does not reflect the fetched bookings")
	}
}

func TestRefreshErrorLeavesCacheUntouched(t *testing.T) {
	source := &fakeSource{bookings: []api.Booking{{ID: 1, BookingType: api.BookingTypeFullDay, Start: "2026-03-15"}}}
	engine := NewEngine(source)
	if err := engine.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	source.listErr = errors.New("network down")
	if err := engine.Refresh(context.Background()); err == nil {
		t.Fatal("expected an error from the failed refresh")
	}

	if !engine.Cache().IsFullDayOccupied("2026-03-15") {
		t.Error("a failed refresh must not clear the previous snapshot")
	}
}

func TestSubmitStripsTimeSlotForWholeDay(t *testing.T) {
	source := &fakeSource{message: "Bokning bekräftad!"}
	engine := NewEngine(source)

	_, err := engine.Submit(context.Background(), api.BookingRequest{
		Name:        "Anna",
		Date:        "2026-03-15",
		BookingType: api.BookingTypeFullDay,
		TimeSlot:    "09:00",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if source.lastSubmit.TimeSlot != "" {
		t.Errorf("heldag submission must not carry a time slot, got %q", source.lastSubmit.TimeSlot)
	}
}

func TestSubmitKeepsTimeSlotFor2H(t *testing.T) {
	source := &fakeSource{message: "Bokning bekräftad!"}
	engine := NewEngine(source)

	_, err := engine.Submit(context.Background(), api.BookingRequest{
		Name:        "Anna",
		Date:        "2026-03-15",
		BookingType: api.BookingType2H,
		TimeSlot:    "12:00",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if source.lastSubmit.TimeSlot != "12:00" {
		t.Errorf("2h submission must carry its time slot, got %q", source.lastSubmit.TimeSlot)
	}
}

func TestSubmitRefetchesAfterSuccess(t *testing.T) {
	source := &fakeSource{message: "ok"}
	engine := NewEngine(source)

	if _, err := engine.Submit(context.Background(), api.BookingRequest{BookingType: api.BookingType2H, TimeSlot: "09:00"}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if source.listCalls != 1 {
		t.Errorf("expected one refetch after a successful submit, got %d", source.listCalls)
	}
}

func TestSubmitReturnsServerRejectionVerbatim(t *testing.T) {
	rejection := &api.APIError{Message: "Tiden är redan bokad"}
	source := &fakeSource{submitErr: rejection}
	engine := NewEngine(source)

	_, err := engine.Submit(context.Background(), api.BookingRequest{BookingType: api.BookingType2H, TimeSlot: "09:00"})

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != rejection.Message {
		t.Errorf("expected the server rejection verbatim, got %v", err)
	}
	if source.listCalls != 0 {
		t.Error("a rejected submission must not trigger a refetch")
	}
}
