package ledger

import (
	"testing"
	"time"
)

func TestResolve_PresentEntry(t *testing.T) {
	diagnosed := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	l := Ledger{
		"newtons_laws": {ConceptID: "newtons_laws", Status: StatusPassed, DiagnosedAt: &diagnosed},
	}

	e := l.Resolve("newtons_laws")
	if e.Status != StatusPassed {
		t.Errorf("Status = %q, want passed", e.Status)
	}
	if e.DiagnosedAt == nil || !e.DiagnosedAt.Equal(diagnosed) {
		t.Errorf("DiagnosedAt = %v, want %v", e.DiagnosedAt, diagnosed)
	}
}

func TestResolve_AbsentDefaultsToNotStarted(t *testing.T) {
	l := Ledger{}
	e := l.Resolve("trigonometry")
	if e.Status != StatusNotStarted {
		t.Errorf("Status = %q, want not_started", e.Status)
	}
	if e.DiagnosedAt != nil {
		t.Errorf("DiagnosedAt = %v, want nil", e.DiagnosedAt)
	}
}

func TestDecode(t *testing.T) {
	raw := []byte(`{"progress": {
		"newtons_laws": {"status": "passed", "diagnosed_at": "2026-03-14T09:00:00Z"},
		"trigonometry": {"status": "needs_review"},
		"ghost_concept": {"status": "passed"}
	}}`)

	l, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(l) != 3 {
		t.Fatalf("entries = %d, want 3 (unknown ids are kept, not errors)", len(l))
	}
	if l.Resolve("newtons_laws").Status != StatusPassed {
		t.Errorf("newtons_laws status = %q, want passed", l.Resolve("newtons_laws").Status)
	}
	if l.Resolve("trigonometry").DiagnosedAt != nil {
		t.Error("trigonometry DiagnosedAt should be nil")
	}
}

func TestDecode_EmptyPayload(t *testing.T) {
	l, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(l) != 0 {
		t.Errorf("entries = %d, want 0", len(l))
	}
}

func TestStatusLabels(t *testing.T) {
	cases := map[Status]string{
		StatusPassed:      "Passed",
		StatusNeedsReview: "Needs Review",
		StatusNotStarted:  "Not Started",
		Status("bogus"):   "Unknown",
	}
	for status, want := range cases {
		if got := status.Label(); got != want {
			t.Errorf("Label(%q) = %q, want %q", status, got, want)
		}
	}
}
