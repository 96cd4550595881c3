package catalog

import (
	"fmt"
	"slices"
)

// Catalog holds the full concept list with precomputed indices.
// It is read-only after construction; traversal order is the order the
// records arrived in, which is the order UIs render them in.
type Catalog struct {
	records   []ConceptRecord
	byID      map[string]*ConceptRecord
	bySubject map[Subject][]ConceptRecord
	subjects  []Subject
}

// New constructs a Catalog from a slice of records.
// Duplicate concept IDs are a construction error.
func New(records []ConceptRecord) (*Catalog, error) {
	c := &Catalog{
		records:   records,
		byID:      make(map[string]*ConceptRecord, len(records)),
		bySubject: make(map[Subject][]ConceptRecord),
	}

	for i := range c.records {
		r := &c.records[i]
		if _, ok := c.byID[r.ID]; ok {
			return nil, fmt.Errorf("duplicate concept id: %q", r.ID)
		}
		c.byID[r.ID] = r
	}

	// Group by subject, subjects in first-seen catalog order.
	for i := range c.records {
		r := c.records[i]
		if _, ok := c.bySubject[r.Subject]; !ok {
			c.subjects = append(c.subjects, r.Subject)
		}
		c.bySubject[r.Subject] = append(c.bySubject[r.Subject], r)
	}

	return c, nil
}

// Concepts returns all records in catalog order.
func (c *Catalog) Concepts() []ConceptRecord {
	return slices.Clone(c.records)
}

// Get returns a record by ID, or error if not found.
func (c *Catalog) Get(id string) (ConceptRecord, error) {
	r, ok := c.byID[id]
	if !ok {
		return ConceptRecord{}, fmt.Errorf("concept not found: %q", id)
	}
	return *r, nil
}

// Has reports whether the catalog contains the given concept ID.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// BySubject returns all records for a subject in catalog order.
func (c *Catalog) BySubject(subject Subject) []ConceptRecord {
	return slices.Clone(c.bySubject[subject])
}

// Subjects returns the distinct subjects present, in first-seen catalog
// order. This is the enumeration order "add next subject" walks.
func (c *Catalog) Subjects() []Subject {
	return slices.Clone(c.subjects)
}

// Prerequisites returns the direct prerequisite records for a concept ID.
// Prerequisite IDs that resolve to nothing are skipped.
func (c *Catalog) Prerequisites(id string) []ConceptRecord {
	r, ok := c.byID[id]
	if !ok {
		return nil
	}
	result := make([]ConceptRecord, 0, len(r.Prerequisites))
	for _, prereqID := range r.Prerequisites {
		if p, ok := c.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Len returns the number of concepts in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}
