// Package ledger models the sparse per-learner progress record.
// Concepts the learner has never been diagnosed on simply have no entry.
package ledger

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status represents a concept's diagnosed status for a learner.
type Status string

const (
	StatusPassed      Status = "passed"
	StatusNeedsReview Status = "needs_review"
	StatusNotStarted  Status = "not_started"
)

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusPassed:
		return "Passed"
	case StatusNeedsReview:
		return "Needs Review"
	case StatusNotStarted:
		return "Not Started"
	default:
		return "Unknown"
	}
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusPassed:
		return "✅"
	case StatusNeedsReview:
		return "🔄"
	case StatusNotStarted:
		return "○"
	default:
		return "?"
	}
}

// ProgressEntry records the diagnosed status of one concept.
type ProgressEntry struct {
	ConceptID   string     `json:"concept_id"`
	Status      Status     `json:"status"`
	DiagnosedAt *time.Time `json:"diagnosed_at,omitempty"`
}

// Ledger maps concept IDs to progress entries. Entries referencing concept
// IDs the catalog no longer knows stay in the map; the aggregation just
// never looks them up.
type Ledger map[string]ProgressEntry

// Resolve returns the entry for a concept ID, defaulting to a not-started
// entry when the ledger has none.
func (l Ledger) Resolve(conceptID string) ProgressEntry {
	if e, ok := l[conceptID]; ok {
		if e.Status == "" {
			e.Status = StatusNotStarted
		}
		return e
	}
	return ProgressEntry{ConceptID: conceptID, Status: StatusNotStarted}
}

// progressDoc mirrors the progress API payload.
type progressDoc struct {
	Progress map[string]struct {
		Status      Status     `json:"status"`
		DiagnosedAt *time.Time `json:"diagnosed_at"`
	} `json:"progress"`
}

// Decode parses the progress API payload into a Ledger.
// An absent or empty progress map is a valid, empty ledger.
func Decode(raw []byte) (Ledger, error) {
	var doc progressDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}

	l := make(Ledger, len(doc.Progress))
	for id, e := range doc.Progress {
		status := e.Status
		if status == "" {
			status = StatusNotStarted
		}
		l[id] = ProgressEntry{ConceptID: id, Status: status, DiagnosedAt: e.DiagnosedAt}
	}
	return l, nil
}
