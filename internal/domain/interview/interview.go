package interview

import (
	"time"

	"github.com/google/uuid"
)

// Question is one interview question with the answer we grade against.
// Questions are loaded once at startup and never change afterwards.
type Question struct {
	Text           string `json:"question" yaml:"question"`
	ExpectedAnswer string `json:"answer" yaml:"answer"`
}

// Evaluation is the scored verdict for a single answer.
// The score is always a normalized number in [0,100]; range strings from the
// model ("70-89") are resolved before an Evaluation is ever constructed.
type Evaluation struct {
	Score           float64  `json:"score"`
	Feedback        string   `json:"feedback"`
	RelatedConcepts []string `json:"related_concepts"`
}

// Session tracks one candidate's progress through the question sequence.
//
// Invariant: len(Answers) == len(Evaluations) == CurrentIndex after every
// successful advance.
type Session struct {
	ID           string
	CurrentIndex int
	Answers      []string
	Evaluations  []Evaluation
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSession creates an empty session positioned at the first question.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.NewString(),
		CurrentIndex: 0,
		Answers:      []string{},
		Evaluations:  []Evaluation{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Advance records an answer/evaluation pair and moves to the next question.
func (s *Session) Advance(answer string, eval Evaluation) {
	s.Answers = append(s.Answers, answer)
	s.Evaluations = append(s.Evaluations, eval)
	s.CurrentIndex++
	s.UpdatedAt = time.Now()
}

// Done reports whether the session has answered every question.
func (s *Session) Done(totalQuestions int) bool {
	return s.CurrentIndex >= totalQuestions
}

// Clone returns a deep copy so callers can read a session without holding
// the store's lock.
func (s *Session) Clone() *Session {
	c := *s
	c.Answers = append([]string(nil), s.Answers...)
	c.Evaluations = make([]Evaluation, len(s.Evaluations))
	for i, e := range s.Evaluations {
		e.RelatedConcepts = append([]string(nil), e.RelatedConcepts...)
		c.Evaluations[i] = e
	}
	return &c
}
