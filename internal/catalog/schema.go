package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema defines the JSON schema for the concept catalog document
// served by the API. Unknown extra fields are tolerated; the shape of the
// fields we consume is not.
var catalogSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":      map[string]any{"type": "string", "minLength": 1},
			"subject": map[string]any{"type": "string", "minLength": 1},
			"topic":   map[string]any{"type": "string"},
			"name":    map[string]any{"type": "string"},
			"class":   map[string]any{"type": "integer"},
			"prerequisites": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"id", "subject", "topic", "name"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://concept-catalog.json", catalogSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://concept-catalog.json")
	})
	return compiledSchema, compileErr
}

// Decode validates a raw catalog document against the schema and builds a
// Catalog from it. A document that fails validation is a fetch failure at
// the boundary; callers must not fall back to partial data.
func Decode(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var records []ConceptRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(records)
}
