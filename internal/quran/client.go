// Package quran fetches chapter metadata and verse text from the
// alquran.cloud text provider.
package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mrlokans/quranreader/internal/entities"
)

const (
	DefaultBaseURL = "https://api.alquran.cloud/v1"
	DefaultTimeout = 10 * time.Second
)

type metaResponse struct {
	Data struct {
		Surahs struct {
			References []entities.Chapter `json:"references"`
		} `json:"surahs"`
	} `json:"data"`
}

type surahResponse struct {
	Data entities.SurahData `json:"data"`
}

type surahKey struct {
	number  int
	edition entities.Edition
}

// Client reads from the text provider. Responses are immutable, so the
// chapter list and every fetched chapter are kept in memory after the first
// successful request.
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu       sync.RWMutex
	chapters []entities.Chapter
	surahs   map[surahKey]*entities.SurahData
}

// NewClient creates a text provider client. Empty or zero arguments fall
// back to the defaults.
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
		surahs:     make(map[surahKey]*entities.SurahData),
	}
}

// GetSurahList returns the metadata of all chapters.
func (c *Client) GetSurahList(ctx context.Context) ([]entities.Chapter, error) {
	c.mu.RLock()
	cached := c.chapters
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	var resp metaResponse
	if err := c.get(ctx, "/meta", &resp); err != nil {
		return nil, fmt.Errorf("fetch surah list: %w", err)
	}

	chapters := resp.Data.Surahs.References
	if len(chapters) == 0 {
		return nil, fmt.Errorf("fetch surah list: empty response")
	}

	c.mu.Lock()
	c.chapters = chapters
	c.mu.Unlock()
	return chapters, nil
}

// GetSurah returns a chapter with its verses in the given edition.
func (c *Client) GetSurah(ctx context.Context, number int, edition entities.Edition) (*entities.SurahData, error) {
	if !entities.ValidChapter(number) {
		return nil, fmt.Errorf("%w: %d", ErrChapterNotFound, number)
	}

	key := surahKey{number: number, edition: edition}
	c.mu.RLock()
	cached, ok := c.surahs[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var resp surahResponse
	if err := c.get(ctx, fmt.Sprintf("/surah/%d/%s", number, edition), &resp); err != nil {
		return nil, fmt.Errorf("fetch surah %d (%s): %w", number, edition, err)
	}

	surah := resp.Data
	c.mu.Lock()
	c.surahs[key] = &surah
	c.mu.Unlock()
	return &surah, nil
}

// GetSurahInfo returns the metadata of one chapter.
func (c *Client) GetSurahInfo(ctx context.Context, number int) (*entities.Chapter, error) {
	chapters, err := c.GetSurahList(ctx)
	if err != nil {
		return nil, err
	}
	chapter, ok := FindChapter(chapters, number)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrChapterNotFound, number)
	}
	return &chapter, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrChapterNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &ProviderError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
