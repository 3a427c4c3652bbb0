package api

import (
	"context"
	"fmt"
	"net/http"
)

// Booking types. A 2h booking occupies one of four fixed time slots; heldag
// blocks a whole day; helg blocks a contiguous span of days.
const (
	BookingType2H      = "2h"
	BookingTypeFullDay = "heldag"
	BookingTypeWeekend = "helg"
)

// Booking statuses used by the admin panel.
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusDenied   = "denied"
)

// Booking is one reservation of the venue. The public calendar feed only
// fills id, title, start, end and booking_type; the admin list carries the
// requester fields as well.
type Booking struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	BookingType string `json:"booking_type,omitempty"`
	Status      string `json:"status,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Message     string `json:"message,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// BookingRequest is the payload for POST /api/book. TimeSlot is only sent for
// 2h bookings.
type BookingRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Date        string `json:"date"`
	BookingType string `json:"booking_type"`
	TimeSlot    string `json:"time_slot,omitempty"`
}

// ListBookings fetches the public calendar feed (GET /api/bookings).
func (c *Client) ListBookings(ctx context.Context) ([]Booking, error) {
	var out struct {
		envelope
		Events []Booking `json:"events"`
	}
	if err := c.getJSON(ctx, "/api/bookings", &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// SubmitBooking submits a new booking request (POST /api/book) and returns
// the server's confirmation message. The server performs the authoritative
// collision check.
func (c *Client) SubmitBooking(ctx context.Context, req BookingRequest) (string, error) {
	var out struct {
		envelope
		Message string `json:"message"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/book", req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ListAdminBookings fetches all bookings regardless of status
// (GET /api/admin/bookings). Requires an admin session.
func (c *Client) ListAdminBookings(ctx context.Context) ([]Booking, error) {
	var out struct {
		envelope
		Items []Booking `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/admin/bookings", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// DeleteBooking permanently removes a booking (DELETE /api/admin/bookings/{id}).
func (c *Client) DeleteBooking(ctx context.Context, id int64) error {
	var out struct {
		envelope
	}
	return c.deleteJSON(ctx, fmt.Sprintf("/api/admin/bookings/%d", id), &out)
}

// SetBookingStatus transitions a booking to approved, pending or denied
// (POST /api/admin/set-status).
func (c *Client) SetBookingStatus(ctx context.Context, id int64, status string) error {
	payload := map[string]any{"id": id, "status": status}
	var out struct {
		envelope
	}
	return c.sendJSON(ctx, http.MethodPost, "/api/admin/set-status", payload, &out)
}

// AddBooking creates a manual, pre-approved booking (POST /api/admin/add).
// end may be empty for single-day bookings.
func (c *Client) AddBooking(ctx context.Context, title, start, end string) error {
	payload := map[string]string{"title": title, "start": start, "end": end}
	var out struct {
		envelope
	}
	return c.sendJSON(ctx, http.MethodPost, "/api/admin/add", payload, &out)
}
