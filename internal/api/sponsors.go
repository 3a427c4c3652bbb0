package api

import "context"

// Sponsor is one club sponsor shown on the sponsors page.
type Sponsor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	ImagePath   string `json:"image_path,omitempty"`
}

// ListSponsors fetches the sponsors (GET /api/sponsors).
func (c *Client) ListSponsors(ctx context.Context) ([]Sponsor, error) {
	var out struct {
		envelope
		Sponsors []Sponsor `json:"sponsors"`
	}
	if err := c.getJSON(ctx, "/api/sponsors", &out); err != nil {
		return nil, err
	}
	return out.Sponsors, nil
}
