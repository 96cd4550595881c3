package progress

import (
	"testing"
	"time"

	"github.com/abhisek/sikshya/internal/catalog"
	"github.com/abhisek/sikshya/internal/ledger"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.ConceptRecord{
		{ID: "vectors_components", Subject: catalog.SubjectPhysics, Topic: "Mechanics", Name: "Vectors & Components", Class: 11},
		{ID: "newtons_laws", Subject: catalog.SubjectPhysics, Topic: "Mechanics", Name: "Newton's Laws", Class: 11},
		{ID: "energy_work", Subject: catalog.SubjectPhysics, Topic: "Energy", Name: "Energy & Work", Class: 11},
		{ID: "angular_kinematics", Subject: catalog.SubjectPhysics, Topic: "Mechanics", Name: "Angular Kinematics", Class: 12},
		{ID: "trigonometry", Subject: catalog.SubjectMath, Topic: "Geometry", Name: "Trigonometry", Class: 10},
	})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestAggregate_OneRowPerFilteredConcept(t *testing.T) {
	cat := testCatalog(t)
	led := ledger.Ledger{
		"newtons_laws": {ConceptID: "newtons_laws", Status: ledger.StatusPassed},
		"unknown_id":   {ConceptID: "unknown_id", Status: ledger.StatusPassed},
	}

	v := Aggregate(cat, led, []catalog.Subject{catalog.SubjectPhysics})
	if len(v.Rows) != 4 {
		t.Fatalf("rows = %d, want 4 (physics only, unknown ledger ids ignored)", len(v.Rows))
	}
	for _, r := range v.Rows {
		want := ledger.StatusNotStarted
		if r.ID == "newtons_laws" {
			want = ledger.StatusPassed
		}
		if r.Status != want {
			t.Errorf("row %s status = %q, want %q", r.ID, r.Status, want)
		}
	}
}

func TestAggregate_CountsSumToTotal(t *testing.T) {
	cat := testCatalog(t)
	diagnosed := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	led := ledger.Ledger{
		"newtons_laws":       {ConceptID: "newtons_laws", Status: ledger.StatusPassed, DiagnosedAt: &diagnosed},
		"vectors_components": {ConceptID: "vectors_components", Status: ledger.StatusNeedsReview},
	}

	v := Aggregate(cat, led, []catalog.Subject{catalog.SubjectPhysics})
	s := v.Summary
	if s.Passed != 1 || s.NeedsReview != 1 || s.NotStarted != 2 || s.Total != 4 {
		t.Errorf("summary = %+v, want {1 1 2 4}", s)
	}
	if s.Passed+s.NeedsReview+s.NotStarted != s.Total {
		t.Errorf("counts do not sum to total: %+v", s)
	}

	pct, ok := s.Coverage()
	if !ok {
		t.Fatal("Coverage ok = false, want true")
	}
	if pct != 50 {
		t.Errorf("coverage = %d, want 50", pct)
	}
}

func TestAggregate_TopicsInFirstSeenOrder(t *testing.T) {
	cat := testCatalog(t)
	v := Aggregate(cat, ledger.Ledger{}, []catalog.Subject{catalog.SubjectPhysics})

	if len(v.Topics) != 2 {
		t.Fatalf("topics = %d, want 2", len(v.Topics))
	}
	if v.Topics[0].Topic != "Mechanics" || v.Topics[1].Topic != "Energy" {
		t.Errorf("topic order = [%s %s], want [Mechanics Energy]", v.Topics[0].Topic, v.Topics[1].Topic)
	}
	// angular_kinematics appears after energy_work in the catalog but joins
	// the existing Mechanics bucket.
	mech := v.Topics[0].Rows
	if len(mech) != 3 {
		t.Errorf("Mechanics rows = %d, want 3", len(mech))
	}
}

func TestAggregate_EmptySelection(t *testing.T) {
	cat := testCatalog(t)
	v := Aggregate(cat, ledger.Ledger{}, nil)

	if len(v.Rows) != 0 {
		t.Errorf("rows = %d, want 0", len(v.Rows))
	}
	if _, ok := v.Summary.Coverage(); ok {
		t.Error("Coverage ok = true for empty view, want false (no data)")
	}
}

func TestRecentRows_SkipsWithoutBackfill(t *testing.T) {
	cat := testCatalog(t)
	v := Aggregate(cat, ledger.Ledger{}, []catalog.Subject{catalog.SubjectPhysics})

	// trigonometry is outside the physics filter, deleted_concept is gone
	// entirely; neither may pull newtons_laws into the first three slots.
	ids := []string{"energy_work", "trigonometry", "deleted_concept", "newtons_laws"}
	rows := v.RecentRows(ids, 3)
	if len(rows) != 1 {
		t.Fatalf("recent rows = %d, want 1 (no backfill past slot 3)", len(rows))
	}
	if rows[0].ID != "energy_work" {
		t.Errorf("recent[0] = %s, want energy_work", rows[0].ID)
	}
}

func TestRecentRows_CapsAtN(t *testing.T) {
	cat := testCatalog(t)
	v := Aggregate(cat, ledger.Ledger{}, []catalog.Subject{catalog.SubjectPhysics})

	ids := []string{"energy_work", "newtons_laws", "vectors_components", "angular_kinematics"}
	rows := v.RecentRows(ids, 2)
	if len(rows) != 2 {
		t.Fatalf("recent rows = %d, want 2", len(rows))
	}
	if rows[0].ID != "energy_work" || rows[1].ID != "newtons_laws" {
		t.Errorf("recent order = [%s %s], want [energy_work newtons_laws]", rows[0].ID, rows[1].ID)
	}
}

func TestCoverage_Rounding(t *testing.T) {
	cases := []struct {
		summary Summary
		want    int
	}{
		{Summary{Passed: 1, NeedsReview: 1, NotStarted: 2, Total: 4}, 50},
		{Summary{Passed: 1, NotStarted: 2, Total: 3}, 33},
		{Summary{Passed: 2, NotStarted: 1, Total: 3}, 67},
		{Summary{Passed: 3, Total: 3}, 100},
	}
	for _, tc := range cases {
		pct, ok := tc.summary.Coverage()
		if !ok {
			t.Fatalf("Coverage ok = false for %+v", tc.summary)
		}
		if pct != tc.want {
			t.Errorf("coverage(%+v) = %d, want %d", tc.summary, pct, tc.want)
		}
	}
}
