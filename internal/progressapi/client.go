// Package progressapi is the HTTP client of the remote progress and
// statistics backend.
package progressapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mrlokans/quranreader/internal/entities"
)

const (
	DefaultBaseURL = "http://localhost:3001/api"
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 512
)

// Client talks to the progress backend. Failed calls are not retried.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the backend at baseURL.
// A zero timeout means DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// GetProgress returns every progress record of the user.
func (c *Client) GetProgress(ctx context.Context, userID string) ([]entities.ProgressRecord, error) {
	var records []entities.ProgressRecord
	if err := c.do(ctx, http.MethodGet, "/progress/"+url.PathEscape(userID), nil, &records); err != nil {
		return nil, err
	}
	for _, r := range records {
		if r.ChapterNumber == 0 || r.EditionID == "" {
			return nil, fmt.Errorf("%w: record without chapter or edition", ErrMalformedResponse)
		}
	}
	return records, nil
}

// SaveProgress creates or replaces the record for the request's triple.
func (c *Client) SaveProgress(ctx context.Context, req entities.SaveProgressRequest) (*entities.ProgressRecord, error) {
	var record entities.ProgressRecord
	if err := c.do(ctx, http.MethodPost, "/progress", req, &record); err != nil {
		return nil, err
	}
	if record.ChapterNumber == 0 || record.EditionID == "" {
		return nil, fmt.Errorf("%w: saved record without chapter or edition", ErrMalformedResponse)
	}
	return &record, nil
}

// DeleteProgress removes the record for the triple.
func (c *Client) DeleteProgress(ctx context.Context, userID string, chapter int, edition entities.Edition) error {
	path := "/progress/" + url.PathEscape(userID) + "/" + strconv.Itoa(chapter) + "/" + url.PathEscape(string(edition))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// GetStats returns the user's statistics, or nil when the backend has none.
func (c *Client) GetStats(ctx context.Context, userID string) (*entities.StatsRecord, error) {
	var record *entities.StatsRecord
	if err := c.do(ctx, http.MethodGet, "/stats/"+url.PathEscape(userID), nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// UpdateStats applies a partial statistics update.
func (c *Client) UpdateStats(ctx context.Context, req entities.UpdateStatsRequest) (*entities.StatsRecord, error) {
	var record entities.StatsRecord
	if err := c.do(ctx, http.MethodPost, "/stats", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// do sends a JSON request and decodes the JSON response into out.
// A nil out discards the body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(text))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
