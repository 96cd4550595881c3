// Package prefs holds the learner's client-side preference state: which
// subjects are visible on the dashboard, and the recently viewed concepts.
// State is loaded from the durable store once at session start and written
// back on every mutation; the in-memory copy is the source of truth for
// the running session.
package prefs

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/abhisek/sikshya/internal/catalog"
	"github.com/abhisek/sikshya/internal/store"
)

// Namespace is the KV namespace for all client preference keys.
const Namespace = "sikshya"

const (
	keySubjects = "subjects"
	keyRecent   = "recent"

	// recencyCap bounds the recently-viewed list.
	recencyCap = 10
)

// defaultSubjects is the selection used on first run or after corruption.
func defaultSubjects() []catalog.Subject {
	return []catalog.Subject{catalog.SubjectPhysics}
}

// Service owns subject selection and recency state.
// All mutation happens on the UI thread; persistence is best-effort and
// only consulted again at the next session start.
type Service struct {
	kv       store.KV
	subjects []catalog.Subject
	recent   []string
}

// NewService loads preference state from the store. A missing or
// unparseable stored value falls back to its default; loading never fails.
func NewService(ctx context.Context, kv store.KV) *Service {
	s := &Service{
		kv:       kv,
		subjects: defaultSubjects(),
	}
	if kv == nil {
		return s
	}

	if raw, ok, err := kv.Get(ctx, Namespace, keySubjects); err == nil && ok {
		var subjects []catalog.Subject
		if json.Unmarshal([]byte(raw), &subjects) == nil {
			s.subjects = dedupeSubjects(subjects)
		}
	}
	if raw, ok, err := kv.Get(ctx, Namespace, keyRecent); err == nil && ok {
		var recent []string
		if json.Unmarshal([]byte(raw), &recent) == nil {
			if len(recent) > recencyCap {
				recent = recent[:recencyCap]
			}
			s.recent = recent
		}
	}
	return s
}

// Subjects returns the selected subjects in insertion order.
func (s *Service) Subjects() []catalog.Subject {
	return slices.Clone(s.subjects)
}

// Toggle removes the subject if selected, otherwise appends it.
// The selection may become empty; that is a valid "show nothing" state.
func (s *Service) Toggle(subject catalog.Subject) {
	idx := slices.Index(s.subjects, subject)
	if idx >= 0 {
		s.subjects = slices.Delete(s.subjects, idx, idx+1)
	} else {
		s.subjects = append(s.subjects, subject)
	}
	s.persistSubjects()
}

// AddNextAvailable appends the first subject from order that is not
// already selected. Returns false when every subject is selected.
func (s *Service) AddNextAvailable(order []catalog.Subject) bool {
	for _, subject := range order {
		if !slices.Contains(s.subjects, subject) {
			s.subjects = append(s.subjects, subject)
			s.persistSubjects()
			return true
		}
	}
	return false
}

// Recent returns the recently viewed concept IDs, most recent first.
// Entries may reference concepts outside the current catalog view; the
// renderer resolves and skips those.
func (s *Service) Recent() []string {
	return slices.Clone(s.recent)
}

// MarkViewed moves a concept ID to the front of the recency list, removing
// any prior occurrence and truncating to the cap. Marking the front entry
// again changes nothing in memory but still re-persists.
func (s *Service) MarkViewed(conceptID string) {
	next := make([]string, 0, len(s.recent)+1)
	next = append(next, conceptID)
	for _, id := range s.recent {
		if id != conceptID {
			next = append(next, id)
		}
	}
	if len(next) > recencyCap {
		next = next[:recencyCap]
	}
	s.recent = next
	s.persistRecent()
}

// Reset clears persisted preference state and restores defaults.
func (s *Service) Reset(ctx context.Context) error {
	s.subjects = defaultSubjects()
	s.recent = nil
	if s.kv == nil {
		return nil
	}
	if err := s.kv.Delete(ctx, Namespace, keySubjects); err != nil {
		return err
	}
	return s.kv.Delete(ctx, Namespace, keyRecent)
}

// persistSubjects writes the selection through to the store. The write is
// best-effort: in-memory state stays authoritative for this session.
func (s *Service) persistSubjects() {
	if s.kv == nil {
		return
	}
	if b, err := json.Marshal(s.subjects); err == nil {
		_ = s.kv.Set(context.Background(), Namespace, keySubjects, string(b))
	}
}

func (s *Service) persistRecent() {
	if s.kv == nil {
		return
	}
	if b, err := json.Marshal(s.recent); err == nil {
		_ = s.kv.Set(context.Background(), Namespace, keyRecent, string(b))
	}
}

// dedupeSubjects drops repeated entries while preserving first occurrence
// order. Stored state normally has no duplicates; this guards against
// hand-edited values.
func dedupeSubjects(subjects []catalog.Subject) []catalog.Subject {
	seen := make(map[catalog.Subject]bool, len(subjects))
	out := subjects[:0]
	for _, s := range subjects {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
