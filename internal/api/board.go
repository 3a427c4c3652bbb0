package api

import (
	"context"
	"fmt"
	"net/http"
)

// BoardMember is one member of the club board (chair, treasurer, ...).
type BoardMember struct {
	ID        int64  `json:"id"`
	Role      string `json:"role"`
	Name      string `json:"name"`
	Contact   string `json:"contact,omitempty"`
	ImagePath string `json:"image_path,omitempty"`
}

// ListBoard fetches the board members (GET /api/board). Public endpoint.
func (c *Client) ListBoard(ctx context.Context) ([]BoardMember, error) {
	var out struct {
		envelope
		Members []BoardMember `json:"members"`
	}
	if err := c.getJSON(ctx, "/api/board", &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}

// CreateBoardMember adds a board member (POST /api/admin/board).
func (c *Client) CreateBoardMember(ctx context.Context, role, name, contact string) error {
	payload := map[string]string{"role": role, "name": name, "contact": contact}
	var out struct {
		envelope
	}
	return c.sendJSON(ctx, http.MethodPost, "/api/admin/board", payload, &out)
}

// UpdateBoardMember edits a board member (PUT /api/admin/board/{id}).
func (c *Client) UpdateBoardMember(ctx context.Context, id int64, role, name, contact string) error {
	payload := map[string]string{"role": role, "name": name, "contact": contact}
	var out struct {
		envelope
	}
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/board/%d", id), payload, &out)
}

// DeleteBoardMember removes a board member (DELETE /api/admin/board/{id}).
func (c *Client) DeleteBoardMember(ctx context.Context, id int64) error {
	var out struct {
		envelope
	}
	return c.deleteJSON(ctx, fmt.Sprintf("/api/admin/board/%d", id), &out)
}

// UploadBoardImage sets a board member's photo
// (POST /api/admin/board/{id}/image, multipart field "image").
func (c *Client) UploadBoardImage(ctx context.Context, id int64, filePath string) error {
	var out struct {
		envelope
	}
	return c.postImage(ctx, fmt.Sprintf("/api/admin/board/%d/image", id), filePath, &out)
}
