package catalog

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseValidDocument(t *testing.T) {
	data := []byte(`{
		"terms": [
			{
				"id": "tcp", "name": "TCP", "category": "ネットワーク", "subcategory": "プロトコル",
				"description": "d", "content": "<p>c</p>",
				"quiz": [
					{"question": "Q1", "options": ["A", "B"], "correctAnswer": "B"}
				]
			}
		]
	}`)

	terms, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(terms) != 1 {
		t.Fatalf("expected 1 term, got %d", len(terms))
	}
	if len(terms[0].Quiz) != 1 || terms[0].Quiz[0].CorrectAnswer != "B" {
		t.Fatalf("unexpected quiz: %v", terms[0].Quiz)
	}
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{`},
		{"missing terms", `{}`},
		{"term without id", `{"terms": [{"name": "x", "category": "c", "subcategory": "s"}]}`},
		{"empty name", `{"terms": [{"id": "x", "name": "", "category": "c", "subcategory": "s"}]}`},
		{"single option quiz", `{"terms": [{"id": "x", "name": "x", "category": "c", "subcategory": "s",
			"quiz": [{"question": "q", "options": ["only"], "correctAnswer": "only"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Fatal("expected parse error")
			}
		})
	}
}

func TestParseDropsUnanswerableQuestions(t *testing.T) {
	data := []byte(`{
		"terms": [
			{
				"id": "x", "name": "x", "category": "c", "subcategory": "s",
				"quiz": [
					{"question": "good", "options": ["A", "B"], "correctAnswer": "A"},
					{"question": "bad", "options": ["A", "B"], "correctAnswer": "Z"}
				]
			}
		]
	}`)

	terms, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(terms[0].Quiz) != 1 || terms[0].Quiz[0].Question != "good" {
		t.Fatalf("expected only the answerable question, got %v", terms[0].Quiz)
	}
}

func TestParseAllQuestionsDroppedLeavesEmptyBank(t *testing.T) {
	data := []byte(`{
		"terms": [
			{
				"id": "x", "name": "x", "category": "c", "subcategory": "s",
				"quiz": [{"question": "bad", "options": ["A", "B"], "correctAnswer": "Z"}]
			}
		]
	}`)

	terms, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if terms[0].HasQuiz() {
		t.Fatal("expected empty question bank after dropping all questions")
	}
}

func TestParseDropsDuplicateIDs(t *testing.T) {
	data := []byte(`{
		"terms": [
			{"id": "dup", "name": "first", "category": "c", "subcategory": "s"},
			{"id": "dup", "name": "second", "category": "c", "subcategory": "s"}
		]
	}`)

	terms, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(terms) != 1 || terms[0].Name != "first" {
		t.Fatalf("expected first entry to win, got %v", terms)
	}
}

func TestEmbeddedDatasetParses(t *testing.T) {
	terms, err := Parse(embeddedTerms)
	if err != nil {
		t.Fatalf("embedded dataset must parse: %v", err)
	}
	if len(terms) == 0 {
		t.Fatal("embedded dataset is empty")
	}

	c := New(terms)
	if len(c.Categories()) == 0 {
		t.Fatal("embedded dataset has no categories")
	}

	// Every embedded quiz question must be answerable as authored,
	// i.e. nothing should have been silently dropped during Parse.
	var raw document
	if err := json.Unmarshal(embeddedTerms, &raw); err != nil {
		t.Fatalf("decode raw dataset: %v", err)
	}
	for i, term := range raw.Terms {
		if len(terms[i].Quiz) != len(term.Quiz) {
			t.Errorf("term %s: %d of %d questions dropped", term.ID, len(term.Quiz)-len(terms[i].Quiz), len(term.Quiz))
		}
		if strings.TrimSpace(term.Description) == "" {
			t.Errorf("term %s: missing description", term.ID)
		}
	}
}
