package api

import (
	"context"
	"fmt"
	"net/http"
)

// Event is one club event shown on the events page.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	ImagePath   string `json:"image_path,omitempty"`
}

// ListEvents fetches the events (GET /api/events). Public endpoint, also used
// by the admin panel.
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var out struct {
		envelope
		Events []Event `json:"events"`
	}
	if err := c.getJSON(ctx, "/api/events", &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// CreateEvent adds an event (POST /api/admin/events). date and description
// may be empty.
func (c *Client) CreateEvent(ctx context.Context, title, date, description string) error {
	payload := map[string]string{"title": title, "date": date, "description": description}
	var out struct {
		envelope
	}
	return c.sendJSON(ctx, http.MethodPost, "/api/admin/events", payload, &out)
}

// UpdateEvent edits an event (PUT /api/admin/events/{id}).
func (c *Client) UpdateEvent(ctx context.Context, id int64, title, date, description string) error {
	payload := map[string]string{"title": title, "date": date, "description": description}
	var out struct {
		envelope
	}
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/events/%d", id), payload, &out)
}

// DeleteEvent removes an event (DELETE /api/admin/events/{id}).
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	var out struct {
		envelope
	}
	return c.deleteJSON(ctx, fmt.Sprintf("/api/admin/events/%d", id), &out)
}

// UploadEventImage sets an event's photo
// (POST /api/admin/events/{id}/image, multipart field "image").
func (c *Client) UploadEventImage(ctx context.Context, id int64, filePath string) error {
	var out struct {
		envelope
	}
	return c.postImage(ctx, fmt.Sprintf("/api/admin/events/%d/image", id), filePath, &out)
}
