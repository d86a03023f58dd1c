// Package quiz runs a single-question-at-a-time session over one
// term's question bank.
package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ayumu/zukan/internal/catalog"
)

// Phase is the session's lifecycle phase.
type Phase int

const (
	// PhaseUnstarted is the phase before Start succeeds.
	PhaseUnstarted Phase = iota
	// PhaseShowing presents a question awaiting an answer.
	PhaseShowing
	// PhaseAnswered shows the scored result of the current question.
	PhaseAnswered
	// PhaseEnded is terminal; the session is discarded by its owner.
	PhaseEnded
)

// Result records the scoring of one answered question.
type Result struct {
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
}

// Session is the quiz state machine. It exists only while the owner
// is on a term with a non-empty question bank, and is discarded whole
// when the owner navigates away.
//
// Question selection is uniform random with replacement: the same
// question may repeat on consecutive draws. The single-question bank
// degenerates to always showing that question.
type Session struct {
	id      string
	bank    []catalog.Question
	rng     *rand.Rand
	phase   Phase
	current catalog.Question
	result  *Result
	asked   int
	correct int
}

// NewSession creates a session over the given bank. A nil rng gets a
// time-seeded one; tests inject a fixed seed.
func NewSession(bank []catalog.Question, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		id:   uuid.New().String(),
		bank: bank,
		rng:  rng,
	}
}

// ID returns the session's unique id, used for view-event correlation.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Current returns the question being shown or just answered. Only
// meaningful in PhaseShowing and PhaseAnswered.
func (s *Session) Current() catalog.Question {
	return s.current
}

// Result returns the scoring of the current question, or nil before an
// answer is submitted.
func (s *Session) Result() *Result {
	return s.result
}

// Asked returns the number of questions presented so far.
func (s *Session) Asked() int {
	return s.asked
}

// Correct returns the number answered correctly so far.
func (s *Session) Correct() int {
	return s.correct
}

// Start draws the first question. On an empty bank it is a silent
// no-op and reports false: some terms legitimately have no quiz.
func (s *Session) Start() bool {
	if s.phase != PhaseUnstarted || len(s.bank) == 0 {
		return false
	}
	s.draw()
	return true
}

// Answer scores the choice against the current question by exact
// string equality. It is only legal from PhaseShowing; a resubmission
// after the question is already answered is a no-op, not a second
// scoring event.
func (s *Session) Answer(choice string) bool {
	if s.phase != PhaseShowing {
		return false
	}

	correct := choice == s.current.CorrectAnswer
	s.result = &Result{
		UserAnswer:    choice,
		CorrectAnswer: s.current.CorrectAnswer,
		IsCorrect:     correct,
	}
	if correct {
		s.correct++
	}
	s.phase = PhaseAnswered
	return true
}

// Next clears the result and draws again, with replacement. Only legal
// from PhaseAnswered.
func (s *Session) Next() bool {
	if s.phase != PhaseAnswered {
		return false
	}
	s.draw()
	return true
}

// End terminates the session from any phase.
func (s *Session) End() {
	s.phase = PhaseEnded
	s.result = nil
}

func (s *Session) draw() {
	s.current = s.bank[s.rng.Intn(len(s.bank))]
	s.result = nil
	s.asked++
	s.phase = PhaseShowing
}
