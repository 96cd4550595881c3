package diagnose

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhisek/sikshya/internal/api"
)

const conceptsDoc = `[
	{"id": "kinematics-2", "subject": "physics", "topic": "Mechanics", "name": "Projectiles", "class": 11}
]`

func catalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/concepts", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(conceptsDoc))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestEmptyIDStartsGeneralDiagnostic(t *testing.T) {
	d := New(nil, "")
	if cmd := d.Init(); cmd != nil {
		t.Error("expected no lookup for a general diagnostic")
	}
	if got := d.View(60, 10); !strings.Contains(got, "your gaps") {
		t.Errorf("view = %q, want the general prompt", got)
	}
}

func TestResolvesConceptNameFromCatalog(t *testing.T) {
	srv := catalogServer(t)
	d := New(api.NewClient(srv.URL, "tok"), "kinematics-2")

	cmd := d.Init()
	if cmd == nil {
		t.Fatal("expected a name lookup command")
	}
	msg := cmd()
	if msg == nil {
		t.Fatal("expected a concept message")
	}
	d.Update(msg)

	if got := d.View(60, 10); !strings.Contains(got, "Projectiles") {
		t.Errorf("view = %q, want the resolved concept name", got)
	}
}

func TestUnknownIDFallsBackToID(t *testing.T) {
	srv := catalogServer(t)
	d := New(api.NewClient(srv.URL, "tok"), "deleted-concept")

	cmd := d.Init()
	if cmd == nil {
		t.Fatal("expected a name lookup command")
	}
	// Lookup fails silently; the raw id stays on screen.
	if msg := cmd(); msg != nil {
		t.Fatalf("msg = %v, want nil on failed lookup", msg)
	}
	if got := d.View(60, 10); !strings.Contains(got, "deleted-concept") {
		t.Errorf("view = %q, want the raw id", got)
	}
}
