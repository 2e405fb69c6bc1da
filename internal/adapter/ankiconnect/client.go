// Package ankiconnect is a client for the AnkiConnect add-on HTTP API, used
// as the note store.
package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/sentencemine/internal/domain"
)

const (
	// DefaultURL is where the add-on listens by default.
	DefaultURL     = "http://127.0.0.1:8765"
	defaultVersion = 6
	defaultTimeout = 30 * time.Second
)

// APIError is an error reported by AnkiConnect in the response envelope.
type APIError struct {
	Action  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ankiconnect %s: %s", e.Action, e.Message)
}

// Unwrap classifies the error. AnkiConnect reports rejected duplicates only as
// message text ("cannot create note because it is a duplicate"), so the
// substring check is the single place that text is interpreted.
func (e *APIError) Unwrap() error {
	if strings.Contains(strings.ToLower(e.Message), "duplicate") {
		return domain.ErrDuplicateEntry
	}
	return nil
}

// Client talks to AnkiConnect.
type Client struct {
	url        string
	version    int
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. Zero values select the defaults.
func NewClient(url string, version int, timeout time.Duration, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if version == 0 {
		version = defaultVersion
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url:        url,
		version:    version,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "ankiconnect"),
	}
}

type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// invoke runs one action and decodes its result into out (if non-nil).
func (c *Client) invoke(ctx context.Context, action string, params, out any) error {
	body, err := json.Marshal(request{Action: action, Version: c.version, Params: params})
	if err != nil {
		return fmt.Errorf("ankiconnect %s: encode request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ankiconnect %s: create request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "ankiconnect request", slog.String("action", action))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ankiconnect %s: request failed: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ankiconnect %s: unexpected status %d", action, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ankiconnect %s: read body: %w", action, err)
	}

	var env response
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("ankiconnect %s: decode response: %w", action, err)
	}
	if env.Error != nil {
		return &APIError{Action: action, Message: *env.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("ankiconnect %s: decode result: %w", action, err)
	}
	return nil
}

// IsDuplicate reports whether err means the note already exists.
func IsDuplicate(err error) bool {
	return errors.Is(err, domain.ErrDuplicateEntry)
}
