package api

import (
	"context"
	"fmt"
	"net/http"
)

// MemberSignup is one membership application. The member number is assigned
// by the server.
type MemberSignup struct {
	ID           int64  `json:"id"`
	MemberNumber string `json:"member_number,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// ListMembers fetches all member signups (GET /api/admin/members).
func (c *Client) ListMembers(ctx context.Context) ([]MemberSignup, error) {
	var out struct {
		envelope
		Items []MemberSignup `json:"items"`
	}
	if err := c.getJSON(ctx, "/api/admin/members", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// DeleteMember permanently removes a member signup, the GDPR erasure path
// (DELETE /api/admin/members/{id}).
func (c *Client) DeleteMember(ctx context.Context, id int64) error {
	var out struct {
		envelope
	}
	return c.deleteJSON(ctx, fmt.Sprintf("/api/admin/members/%d", id), &out)
}

// SignupMember submits a membership application (POST /api/members). The
// returned message includes the assigned member number.
func (c *Client) SignupMember(ctx context.Context, name, email, phone string) (string, error) {
	payload := map[string]string{"name": name, "email": email, "phone": phone}
	var out struct {
		envelope
		Message string `json:"message"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/members", payload, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
