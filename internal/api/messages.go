package api

import (
	"context"
	"fmt"
	"net/http"
)

// ContactMessage is one message submitted through the public contact form.
type ContactMessage struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ListMessages fetches all contact messages (GET /api/admin/messages).
func (c *Client) ListMessages(ctx context.Context) ([]ContactMessage, error) {
	var out struct {
		envelope
		Items []ContactMessage `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/admin/messages", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// DeleteMessage permanently removes a contact message
// (DELETE /api/admin/messages/{id}).
func (c *Client) DeleteMessage(ctx context.Context, id int64) error {
	var out struct {
		envelope
	}
	return c.deleteJSON(ctx, fmt.Sprintf("/api/admin/messages/%d", id), &out)
}

// SendContactMessage submits the public contact form (POST /api/contact) and
// returns the server's confirmation message.
func (c *Client) SendContactMessage(ctx context.Context, name, email, message string) (string, error) {
	payload := map[string]string{"name": name, "email": email, "message": message}
	var out struct {
		envelope
		Message string `json:"message"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/contact", payload, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
