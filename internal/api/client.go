// Package api is a typed client for the club website's REST API.
//
// Every JSON endpoint answers with an {ok: bool, error?: string} envelope
// plus payload fields. A response with ok=false becomes an *APIError whose
// message is the server's error string, verbatim; transport and parse
// failures become wrapped errors that callers should replace with a generic
// connectivity message before showing them to a user. The server is the
// authority on all business rules — this client never enforces them.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// APIError is a validation or business rejection reported by the server
// through the {ok:false, error} envelope. Its message is shown to the user
// as-is.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrConnectivity marks failures where no usable server response arrived:
// the request could not be sent, or the body was not the JSON envelope.
// Callers show a generic message for these instead of the raw detail.
var ErrConnectivity = errors.New("server unreachable")

// envelope is embedded in every response struct so the shared request path
// can check the ok flag uniformly.
type envelope struct {
	Ok       bool   `json:"ok"`
	ErrorMsg string `json:"error"`
}

func (e *envelope) apiError() error {
	if e.Ok {
		return nil
	}
	msg := e.ErrorMsg
	if msg == "" {
		msg = "okänt serverfel"
	}
	return &APIError{Message: msg}
}

type responder interface {
	apiError() error
}

// Client talks to the club website API. It keeps the admin session cookie in
// its jar and, when a session store is configured, persists it across runs.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	sessions      *SessionStore
	uploadLimiter *rate.Limiter
}

// NewClient creates a new API client for the given base URL. store may be nil
// to disable session persistence.
func NewClient(baseURL string, store *SessionStore, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		sessions: store,
		// Gallery uploads run one at a time; the limiter keeps a pause
		// between files so a batch doesn't hammer the server.
		uploadLimiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}

	if store != nil {
		cookies, err := store.Load()
		if err != nil {
			return nil, err
		}
		if len(cookies) > 0 {
			u, err := url.Parse(c.baseURL)
			if err != nil {
				return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
			}
			jar.SetCookies(u, cookies)
		}
	}

	return c, nil
}

// BaseURL returns the normalized base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends a request and decodes the JSON envelope response into out.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out responder) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w (%w)", err, ErrConnectivity)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w (%w)", err, ErrConnectivity)
	}

	// Error responses carry the same envelope with ok=false, so the body is
	// decoded regardless of status code. A body that is not valid JSON is a
	// transport-level failure, never shown raw to the user.
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse server response: %w (%w)", err, ErrConnectivity)
	}

	return out.apiError()
}

// getJSON performs a GET request.
func (c *Client) getJSON(ctx context.Context, path string, out responder) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// sendJSON performs a request with a JSON body (POST, PUT).
func (c *Client) sendJSON(ctx context.Context, method, path string, payload any, out responder) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// deleteJSON performs a DELETE request.
func (c *Client) deleteJSON(ctx context.Context, path string, out responder) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

// postImage uploads a file as multipart/form-data under the field name
// "image", which is what every image endpoint expects.
func (c *Client) postImage(ctx context.Context, path, filePath string, out responder) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to read image file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out)
}
