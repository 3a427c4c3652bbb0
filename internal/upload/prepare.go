// Package upload prepares local image files for multipart upload.
package upload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// DefaultMaxWidth is the widest an uploaded image needs to be for the site's
// layouts.
const DefaultMaxWidth = 1600

// Task ties an image file to the entity it belongs to. The target id travels
// with the task through the whole upload so a second upload started before
// the first finishes can never be misdirected to the wrong entity.
type Task struct {
	ID   int64
	Path string
}

// Prepare downscales an image to at most maxWidth pixels wide, preserving
// aspect ratio, and returns the path of the file to upload. Images that
// already fit are returned unchanged — never upscaled, never re-encoded.
func Prepare(path string, maxWidth int) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}

	if img.Bounds().Dx() <= maxWidth {
		return path, nil
	}

	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	out := filepath.Join(os.TempDir(), "klubbctl-"+filepath.Base(path))
	if err := imaging.Save(resized, out); err != nil {
		return "", fmt.Errorf("failed to save resized image: %w", err)
	}

	return out, nil
}
