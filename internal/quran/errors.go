package quran

import (
	"errors"
	"fmt"
)

// ErrChapterNotFound indicates the requested chapter does not exist.
var ErrChapterNotFound = errors.New("surah not found")

// ProviderError represents a non-2xx response from the text provider.
type ProviderError struct {
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("text provider error: HTTP %d", e.StatusCode)
}
