package catalog

// Subject represents a curriculum subject area.
type Subject string

const (
	SubjectPhysics Subject = "physics"
	SubjectMath    Subject = "math"
)

// AllSubjects returns the known subjects in display order.
// Catalogs may carry additional subjects; they render with their raw name.
func AllSubjects() []Subject {
	return []Subject{
		SubjectPhysics,
		SubjectMath,
	}
}

// DisplayName returns a human-readable name for a subject.
func (s Subject) DisplayName() string {
	switch s {
	case SubjectPhysics:
		return "Physics"
	case SubjectMath:
		return "Mathematics"
	default:
		return string(s)
	}
}

// ConceptRecord represents a single concept in the catalog.
// Records are immutable once loaded; the catalog owns them.
type ConceptRecord struct {
	ID            string   `json:"id"`
	Subject       Subject  `json:"subject"`
	Topic         string   `json:"topic"`
	Name          string   `json:"name"`
	Class         int      `json:"class"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}
