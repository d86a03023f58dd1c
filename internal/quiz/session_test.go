package quiz

import (
	"math/rand"
	"testing"

	"github.com/ayumu/zukan/internal/catalog"
)

func singleQuestionBank() []catalog.Question {
	return []catalog.Question{
		{Question: "Q1", Options: []string{"A", "B", "C"}, CorrectAnswer: "B"},
	}
}

func seededSession(bank []catalog.Question) *Session {
	return NewSession(bank, rand.New(rand.NewSource(1)))
}

func TestStartOnEmptyBankIsNoOp(t *testing.T) {
	s := seededSession(nil)

	if s.Start() {
		t.Fatal("Start on empty bank must report false")
	}
	if s.Phase() != PhaseUnstarted {
		t.Fatalf("phase = %v, want PhaseUnstarted", s.Phase())
	}
	if s.Asked() != 0 {
		t.Fatal("no question must have been drawn")
	}
}

func TestStartShowsQuestion(t *testing.T) {
	s := seededSession(singleQuestionBank())

	if !s.Start() {
		t.Fatal("Start must succeed on a non-empty bank")
	}
	if s.Phase() != PhaseShowing {
		t.Fatalf("phase = %v, want PhaseShowing", s.Phase())
	}
	if s.Current().Question != "Q1" {
		t.Fatalf("current = %q, want Q1", s.Current().Question)
	}
	if s.Result() != nil {
		t.Fatal("result must be nil before answering")
	}
}

func TestAnswerScoring(t *testing.T) {
	tests := []struct {
		name   string
		choice string
		want   bool
	}{
		{"correct answer", "B", true},
		{"wrong option", "A", false},
		{"not even an option", "Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seededSession(singleQuestionBank())
			s.Start()

			if !s.Answer(tt.choice) {
				t.Fatal("Answer must be accepted from PhaseShowing")
			}

			r := s.Result()
			if r == nil {
				t.Fatal("result missing after answer")
			}
			if r.IsCorrect != tt.want {
				t.Errorf("IsCorrect = %v, want %v", r.IsCorrect, tt.want)
			}
			if r.UserAnswer != tt.choice {
				t.Errorf("UserAnswer = %q, want %q", r.UserAnswer, tt.choice)
			}
			if r.CorrectAnswer != "B" {
				t.Errorf("CorrectAnswer = %q, want B", r.CorrectAnswer)
			}
			if s.Phase() != PhaseAnswered {
				t.Errorf("phase = %v, want PhaseAnswered", s.Phase())
			}
		})
	}
}

func TestDoubleSubmitIsIdempotent(t *testing.T) {
	s := seededSession(singleQuestionBank())
	s.Start()
	s.Answer("B")

	if s.Answer("A") {
		t.Fatal("second submit must be rejected")
	}

	r := s.Result()
	if r.UserAnswer != "B" || !r.IsCorrect {
		t.Fatalf("result overwritten by double submit: %+v", r)
	}
	if s.Correct() != 1 {
		t.Fatalf("Correct() = %d, scored twice", s.Correct())
	}
}

func TestAnswerBeforeStartRejected(t *testing.T) {
	s := seededSession(singleQuestionBank())
	if s.Answer("B") {
		t.Fatal("Answer must be rejected before Start")
	}
}

func TestNextOnlyFromAnswered(t *testing.T) {
	s := seededSession(singleQuestionBank())
	s.Start()

	if s.Next() {
		t.Fatal("Next must be rejected from PhaseShowing")
	}

	s.Answer("A")
	if !s.Next() {
		t.Fatal("Next must be accepted from PhaseAnswered")
	}
	if s.Phase() != PhaseShowing {
		t.Fatalf("phase = %v, want PhaseShowing", s.Phase())
	}
	if s.Result() != nil {
		t.Fatal("result must be cleared by Next")
	}
}

func TestSelectionWithReplacementDegeneratesOnSingleBank(t *testing.T) {
	// With one question, drawing with replacement must keep showing it.
	s := seededSession(singleQuestionBank())
	s.Start()
	for i := 0; i < 5; i++ {
		s.Answer("A")
		s.Next()
		if s.Current().Question != "Q1" {
			t.Fatalf("draw %d: got %q, want Q1", i, s.Current().Question)
		}
	}
	if s.Asked() != 6 {
		t.Fatalf("Asked() = %d, want 6", s.Asked())
	}
}

func TestSelectionCoversBank(t *testing.T) {
	bank := []catalog.Question{
		{Question: "Q1", Options: []string{"A", "B"}, CorrectAnswer: "A"},
		{Question: "Q2", Options: []string{"A", "B"}, CorrectAnswer: "B"},
		{Question: "Q3", Options: []string{"A", "B"}, CorrectAnswer: "A"},
	}
	s := seededSession(bank)
	s.Start()

	seen := map[string]bool{s.Current().Question: true}
	for i := 0; i < 100; i++ {
		s.Answer(s.Current().CorrectAnswer)
		s.Next()
		seen[s.Current().Question] = true
	}
	if len(seen) != len(bank) {
		t.Fatalf("uniform selection never drew some questions: %v", seen)
	}
}

func TestEndFromAnyPhase(t *testing.T) {
	s := seededSession(singleQuestionBank())
	s.End()
	if s.Phase() != PhaseEnded {
		t.Fatal("End must work from PhaseUnstarted")
	}

	s = seededSession(singleQuestionBank())
	s.Start()
	s.Answer("B")
	s.End()
	if s.Phase() != PhaseEnded || s.Result() != nil {
		t.Fatal("End must clear the result")
	}
	if s.Answer("B") || s.Next() {
		t.Fatal("an ended session accepts no further transitions")
	}
}

func TestScoreTally(t *testing.T) {
	s := seededSession(singleQuestionBank())
	s.Start()
	s.Answer("B")
	s.Next()
	s.Answer("A")

	if s.Asked() != 2 || s.Correct() != 1 {
		t.Fatalf("asked=%d correct=%d, want 2/1", s.Asked(), s.Correct())
	}
}
