// Package transfer moves a user's local reading progress in and out of a
// portable JSON document.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mrlokans/quranreader/internal/entities"
	"github.com/mrlokans/quranreader/internal/progress"
)

// FormatVersion is written into every exported document.
const FormatVersion = "1.0"

// Import failure messages.
const (
	ErrMsgInvalidJSON   = "invalid JSON format"
	ErrMsgInvalidFormat = "invalid data format"
)

// Document is the exported form of a user's progress.
type Document struct {
	UserID     string                    `json:"userId"`
	Progress   []entities.ProgressRecord `json:"progress"`
	ExportedAt time.Time                 `json:"exportedAt"`
	Version    string                    `json:"version"`
}

// Result reports the outcome of an import.
type Result struct {
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Imported int    `json:"imported,omitempty"`
}

// Exporter reads from and writes to the local progress tier.
type Exporter struct {
	local *progress.LocalStore
	now   func() time.Time
}

func NewExporter(local *progress.LocalStore) *Exporter {
	return &Exporter{local: local, now: time.Now}
}

// SetClock replaces the time source used for exportedAt.
func (e *Exporter) SetClock(now func() time.Time) {
	e.now = now
}

// Export returns the user's local records as an indented JSON document.
func (e *Exporter) Export(userID string) (string, error) {
	doc := Document{
		UserID:     userID,
		Progress:   e.local.All(userID),
		ExportedAt: e.now().UTC(),
		Version:    FormatVersion,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	return string(data), nil
}

// Import writes every record of the document into local storage under the
// document's user, replacing existing records for the same chapter and
// edition. Record fields are stored as given.
func (e *Exporter) Import(text string) Result {
	data := []byte(text)
	if !json.Valid(data) {
		return Result{Error: ErrMsgInvalidJSON}
	}

	var envelope struct {
		UserID   string          `json:"userId"`
		Progress json.RawMessage `json:"progress"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return Result{Error: ErrMsgInvalidFormat}
		}
		return Result{Error: ErrMsgInvalidJSON}
	}
	if envelope.UserID == "" || isEmptyValue(envelope.Progress) {
		return Result{Error: ErrMsgInvalidFormat}
	}

	var records []entities.ProgressRecord
	if err := json.Unmarshal(envelope.Progress, &records); err != nil {
		return Result{Error: ErrMsgInvalidJSON}
	}

	for _, record := range records {
		e.local.SaveFor(envelope.UserID, record)
	}

	return Result{Success: true, Imported: len(records)}
}

// isEmptyValue reports whether a field is missing or holds a value that
// counts as absent: null, false, 0 or "".
func isEmptyValue(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
