package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	log "github.com/sirupsen/logrus"
)

// documentSchema describes the on-disk / on-wire catalog document.
// Structural problems fail the whole load; per-question semantic
// problems are handled by Parse with a log-and-skip policy.
const documentSchema = `{
	"type": "object",
	"required": ["terms"],
	"properties": {
		"terms": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "name", "category", "subcategory"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"name": {"type": "string", "minLength": 1},
					"category": {"type": "string", "minLength": 1},
					"subcategory": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"content": {"type": "string"},
					"quiz": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["question", "options", "correctAnswer"],
							"properties": {
								"question": {"type": "string", "minLength": 1},
								"options": {
									"type": "array",
									"items": {"type": "string"},
									"minItems": 2
								},
								"correctAnswer": {"type": "string"}
							}
						}
					}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// document is the top-level catalog file layout.
type document struct {
	Terms []Term `json:"terms"`
}

// Parse validates and decodes a catalog document.
//
// Structural validation (JSON Schema) is strict: a malformed document
// is rejected as a whole. Semantic validation is lenient: a question
// whose correctAnswer is not one of its options is unanswerable, so it
// is dropped with a warning while the term itself is kept; a term
// whose id duplicates an earlier one is dropped with a warning.
func Parse(data []byte) ([]Term, error) {
	schema, err := catalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.Terms))
	terms := make([]Term, 0, len(doc.Terms))
	for _, t := range doc.Terms {
		if seen[t.ID] {
			log.WithField("id", t.ID).Warn("duplicate term id, dropping later entry")
			continue
		}
		seen[t.ID] = true
		t.Quiz = validQuestions(t)
		terms = append(terms, t)
	}

	return terms, nil
}

// validQuestions filters a term's question bank down to answerable
// questions.
func validQuestions(t Term) []Question {
	if len(t.Quiz) == 0 {
		return nil
	}
	out := make([]Question, 0, len(t.Quiz))
	for _, q := range t.Quiz {
		if !containsOption(q.Options, q.CorrectAnswer) {
			log.WithFields(log.Fields{
				"term":     t.ID,
				"question": q.Question,
			}).Warn("correctAnswer not among options, dropping question")
			continue
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}

// catalogSchema compiles the document schema once.
func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(documentSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://catalog.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}
