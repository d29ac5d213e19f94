// Package trend persists quality run history.
//
// History lives in a single JSON array file appended to by successive
// runs. Runs are developer-invoked one at a time, so the file is
// read-modify-written without locking. A corrupt file degrades to an
// empty history with a warning rather than blocking quality runs.
package trend

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded quality run.
type Entry struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// Timestamp is the run time, UTC RFC3339.
	Timestamp string `json:"timestamp"`

	// LintErrors is the lint/format finding count.
	LintErrors int `json:"lint_errors"`

	// TypeErrors is the type-check finding count.
	TypeErrors int `json:"type_errors"`

	// TestsFailed reports whether the test suite failed.
	TestsFailed bool `json:"tests_failed"`

	// GatePassed reports whether the gate passed (only meaningful for
	// gate runs).
	GatePassed bool `json:"gate_passed"`

	// Targets lists which services were checked.
	Targets []string `json:"targets,omitempty"`
}

// Total returns the combined error count for the entry.
func (e Entry) Total() int {
	return e.LintErrors + e.TypeErrors
}

// Store reads and appends trend entries in a JSON file.
type Store struct {
	// path is the trend file location.
	path string

	// maxEntries caps retained history (0 = unlimited).
	maxEntries int
}

// ErrCorrupt indicates the trend file exists but is not valid JSON.
var ErrCorrupt = errors.New("trend file is corrupt")

// NewStore creates a store for the given file path.
//
// Parameters:
//   - path: The trend file path
//   - maxEntries: Retention cap, 0 for unlimited
//
// Returns:
//   - *Store: A new store
func NewStore(path string, maxEntries int) *Store {
	return &Store{path: path, maxEntries: maxEntries}
}

// NewEntry builds an entry for the current moment with a fresh id.
//
// Returns:
//   - Entry: An entry with ID and Timestamp populated
func NewEntry() Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Load reads all entries, oldest first. A missing file yields an empty
// history. A corrupt file yields an empty history and ErrCorrupt so
// callers can warn without aborting.
//
// Returns:
//   - []Entry: The history, oldest first
//   - error: nil, or ErrCorrupt (wrapped) for unparsable files
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read trend file %s: %w", s.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, s.path)
	}

	return entries, nil
}

// Append adds an entry to the history, enforcing the retention cap.
// A corrupt existing file is replaced rather than appended to.
//
// Parameters:
//   - entry: The entry to append
//
// Returns:
//   - error: Any filesystem error
func (s *Store) Append(entry Entry) error {
	entries, err := s.Load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}

	entries = append(entries, entry)
	if s.maxEntries > 0 && len(entries) > s.maxEntries {
		entries = entries[len(entries)-s.maxEntries:]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal trend entries: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create trend directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write trend file %s: %w", s.path, err)
	}

	return nil
}

// Last returns up to n newest entries, oldest first. n <= 0 returns
// everything.
//
// Parameters:
//   - n: Maximum number of entries
//
// Returns:
//   - []Entry: The newest entries, oldest first
//   - error: nil, or ErrCorrupt for unparsable files
func (s *Store) Last(n int) ([]Entry, error) {
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

// Delta describes the change between two consecutive entries.
type Delta struct {
	// Lint is the lint error count change (negative = improvement).
	Lint int

	// Type is the type error count change.
	Type int
}

// DeltaFrom computes the change from a previous entry to this one.
//
// Parameters:
//   - prev: The earlier entry
//
// Returns:
//   - Delta: The per-category change
func (e Entry) DeltaFrom(prev Entry) Delta {
	return Delta{
		Lint: e.LintErrors - prev.LintErrors,
		Type: e.TypeErrors - prev.TypeErrors,
	}
}
