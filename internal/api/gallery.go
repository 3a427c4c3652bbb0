package api

import (
	"context"
	"log"
	"net/url"
)

// GalleryImage is one uploaded gallery image.
type GalleryImage struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// ListGallery fetches the gallery images (GET /api/gallery).
func (c *Client) ListGallery(ctx context.Context) ([]GalleryImage, error) {
	var out struct {
		envelope
		Images []GalleryImage `json:"images"`
	}
	if err := c.getJSON(ctx, "/api/gallery", &out); err != nil {
		return nil, err
	}
	return out.Images, nil
}

// UploadGalleryImage uploads a single image to the gallery
// (POST /api/admin/gallery, multipart field "image").
func (c *Client) UploadGalleryImage(ctx context.Context, filePath string) error {
	var out struct {
		envelope
	}
	return c.postImage(ctx, "/api/admin/gallery", filePath, &out)
}

// UploadGalleryImages uploads a batch of images one at a time, paced so the
// server is never hit with a burst. Failures are counted and the upload
// continues with the next file; successful uploads are never rolled back.
// Returns the number of files that failed.
func (c *Client) UploadGalleryImages(ctx context.Context, filePaths []string) (int, error) {
	failed := 0
	for _, filePath := range filePaths {
		if err := c.uploadLimiter.Wait(ctx); err != nil {
			return failed, err
		}
		if err := c.UploadGalleryImage(ctx, filePath); err != nil {
			log.Printf("Warning: failed to upload %s: %v", filePath, err)
			failed++
		}
	}
	return failed, nil
}

// DeleteGalleryImage removes an image by filename
// (DELETE /api/admin/gallery/{filename}).
func (c *Client) DeleteGalleryImage(ctx context.Context, filename string) error {
	var out struct {
		envelope
	}
	return c.deleteJSON(ctx, "/api/admin/gallery/"+url.PathEscape(filename), &out)
}
