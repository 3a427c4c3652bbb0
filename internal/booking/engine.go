package booking

import (
	"context"
	"log"

	"github.com/klubbsidan/klubbctl/internal/api"
)

// Source is the remote side of the booking calendar: it lists the bookings
// for the visible range and accepts new booking submissions. *api.Client
// satisfies it.
type Source interface {
	ListBookings(ctx context.Context) ([]api.Booking, error)
	SubmitBooking(ctx context.Context, req api.BookingRequest) (string, error)
}

// Engine drives the availability cache against a booking source.
type Engine struct {
	source Source
	cache  *Cache
}

// NewEngine creates a new Engine with an empty cache.
func NewEngine(source Source) *Engine {
	return &Engine{
		source: source,
		cache:  NewCache(),
	}
}

// Cache exposes the engine's availability cache for queries.
func (e *Engine) Cache() *Cache {
	return e.cache
}

// Refresh fetches the current bookings and replaces the cache. When several
// refreshes overlap, only the newest one's result is applied.
func (e *Engine) Refresh(ctx context.Context) error {
	gen := e.cache.Begin()

	bookings, err := e.source.ListBookings(ctx)
	if err != nil {
		return err
	}

	e.cache.Apply(bookings, gen)
	return nil
}

// Submit sends a booking request and returns the server's confirmation
// message. The time slot is only included for 2h bookings. On success the
// cache is discarded and refetched rather than patched locally — the server's
// collision check is authoritative and the view must reflect what it
// accepted, not what the client predicted.
func (e *Engine) Submit(ctx context.Context, req api.BookingRequest) (string, error) {
	if req.BookingType != api.BookingType2H {
		req.TimeSlot = ""
	}

	message, err := e.source.SubmitBooking(ctx, req)
	if err != nil {
		return "", err
	}

	if err := e.Refresh(ctx); err != nil {
		log.Printf("Warning: failed to refresh bookings after submit: %v", err)
	}

	return message, nil
}
