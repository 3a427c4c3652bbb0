package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// PageSection is one CMS section of a public page. For the home-links page
// the title is the link text and the content is the URL.
type PageSection struct {
	ID      int64  `json:"id"`
	Page    string `json:"page,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListSections fetches the sections of a page (GET /api/page-sections/{page}).
func (c *Client) ListSections(ctx context.Context, page string) ([]PageSection, error) {
	var out struct {
		envelope
		Sections []PageSection `json:"sections"`
	}
	if err := c.getJSON(ctx, "/api/page-sections/"+url.PathEscape(page), &out); err != nil {
		return nil, err
	}
	return out.Sections, nil
}

// CreateSection adds a section to a page (POST /api/admin/page-sections).
func (c *Client) CreateSection(ctx context.Context, page, title, content string) error {
	payload := map[string]string{"page": page, "title": title, "content": content}
	var out struct {
		envelope
	}
	return c.sendJSON(ctx, http.MethodPost, "/api/admin/page-sections", payload, &out)
}

// UpdateSection edits a section (PUT /api/admin/page-sections/{id}).
func (c *Client) UpdateSection(ctx context.Context, id int64, title, content string) error {
	payload := map[string]string{"title": title, "content": content}
	var out struct {
		envelope
	}
	return c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/api/admin/page-sections/%d", id), payload, &out)
}

// DeleteSection removes a section (DELETE /api/admin/page-sections/{id}).
func (c *Client) DeleteSection(ctx context.Context, id int64) error {
	var out struct {
		envelope
	}
	return c.deleteJSON(ctx, fmt.Sprintf("/api/admin/page-sections/%d", id), &out)
}
