// Package progress merges the concept catalog with the learner's progress
// ledger into the display-ready view the dashboard renders.
package progress

import (
	"math"
	"time"

	"github.com/abhisek/sikshya/internal/catalog"
	"github.com/abhisek/sikshya/internal/ledger"
)

// Row is the merged view of one concept: catalog fields plus resolved
// progress status. Rows are recomputed on every aggregation, never stored.
type Row struct {
	catalog.ConceptRecord
	Status      ledger.Status
	DiagnosedAt *time.Time
}

// TopicGroup holds the rows of a single topic.
type TopicGroup struct {
	Topic string
	Rows  []Row
}

// Summary holds the status counts over the filtered catalog.
type Summary struct {
	Passed      int
	NeedsReview int
	NotStarted  int
	Total       int
}

// Coverage returns the diagnosed-coverage percentage, rounded.
// ok is false when the filtered catalog is empty: that is a distinct
// "no data" condition, not a 0% value.
func (s Summary) Coverage() (pct int, ok bool) {
	if s.Total == 0 {
		return 0, false
	}
	return int(math.Round(float64(s.Passed+s.NeedsReview) / float64(s.Total) * 100)), true
}

// View is the result of one aggregation pass.
type View struct {
	Rows    []Row
	Topics  []TopicGroup
	Summary Summary

	byID map[string]*Row
}

// Aggregate merges the catalog and ledger, restricted to the selected
// subjects. Exactly one row is produced per catalog concept in a selected
// subject; concepts absent from the ledger resolve to not_started. Topic
// groups are created lazily in order of first encounter during catalog
// traversal — that ordering is an observable contract.
func Aggregate(cat *catalog.Catalog, led ledger.Ledger, selected []catalog.Subject) *View {
	selectedSet := make(map[catalog.Subject]bool, len(selected))
	for _, s := range selected {
		selectedSet[s] = true
	}

	v := &View{byID: make(map[string]*Row)}
	topicIndex := make(map[string]int)

	for _, record := range cat.Concepts() {
		if !selectedSet[record.Subject] {
			continue
		}

		entry := led.Resolve(record.ID)
		row := Row{
			ConceptRecord: record,
			Status:        entry.Status,
			DiagnosedAt:   entry.DiagnosedAt,
		}
		v.Rows = append(v.Rows, row)

		idx, ok := topicIndex[record.Topic]
		if !ok {
			idx = len(v.Topics)
			topicIndex[record.Topic] = idx
			v.Topics = append(v.Topics, TopicGroup{Topic: record.Topic})
		}
		v.Topics[idx].Rows = append(v.Topics[idx].Rows, row)

		switch entry.Status {
		case ledger.StatusPassed:
			v.Summary.Passed++
		case ledger.StatusNeedsReview:
			v.Summary.NeedsReview++
		default:
			v.Summary.NotStarted++
		}
		v.Summary.Total++
	}

	for i := range v.Rows {
		v.byID[v.Rows[i].ID] = &v.Rows[i]
	}

	return v
}

// Lookup returns the row for a concept ID within this view, if present.
func (v *View) Lookup(id string) (Row, bool) {
	r, ok := v.byID[id]
	if !ok {
		return Row{}, false
	}
	return *r, true
}

// RecentRows resolves recency-ordered concept IDs against this view,
// returning up to n rows. IDs that no longer resolve (deleted concepts, or
// concepts outside the current subject filter) are skipped silently; slots
// are not backfilled from further down the list.
func (v *View) RecentRows(ids []string, n int) []Row {
	if n <= 0 {
		return nil
	}
	// Only the first n slots are considered: an id that fails to resolve
	// leaves a gap rather than pulling older entries forward.
	if n < len(ids) {
		ids = ids[:n]
	}
	var rows []Row
	for _, id := range ids {
		if r, ok := v.Lookup(id); ok {
			rows = append(rows, r)
		}
	}
	return rows
}
