package interview_test

import (
	"testing"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
)

func TestNewSession(t *testing.T) {
	s := interview.NewSession()

	if s.ID == "" {
		t.Error("expected session to have an ID")
	}

	if s.CurrentIndex != 0 {
		t.Errorf("expected index 0, got %d", s.CurrentIndex)
	}

	if len(s.Answers) != 0 || len(s.Evaluations) != 0 {
		t.Error("expected empty answers and evaluations")
	}
}

func TestNewSession_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := interview.NewSession()
		if seen[s.ID] {
			t.Fatalf("duplicate session ID %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestAdvance_MaintainsInvariant(t *testing.T) {
	s := interview.NewSession()

	for i := 0; i < 5; i++ {
		s.Advance("answer", interview.Evaluation{Score: 80, Feedback: "ok"})

		if len(s.Answers) != i+1 {
			t.Fatalf("expected %d answers, got %d", i+1, len(s.Answers))
		}
		if len(s.Evaluations) != i+1 {
			t.Fatalf("expected %d evaluations, got %d", i+1, len(s.Evaluations))
		}
		if s.CurrentIndex != i+1 {
			t.Fatalf("expected index %d, got %d", i+1, s.CurrentIndex)
		}
	}
}

func TestDone(t *testing.T) {
	s := interview.NewSession()

	if s.Done(2) {
		t.Error("fresh session should not be done")
	}

	s.Advance("a", interview.Evaluation{})
	s.Advance("b", interview.Evaluation{})

	if !s.Done(2) {
		t.Error("expected session to be done after answering all questions")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	s := interview.NewSession()
	s.Advance("original", interview.Evaluation{
		Score:           90,
		Feedback:        "good",
		RelatedConcepts: []string{"VLOOKUP"},
	})

	c := s.Clone()
	c.Advance("extra", interview.Evaluation{Score: 10})
	c.Evaluations[0].RelatedConcepts[0] = "changed"

	if s.CurrentIndex != 1 {
		t.Errorf("clone mutation leaked into original index: %d", s.CurrentIndex)
	}
	if len(s.Answers) != 1 {
		t.Errorf("clone mutation leaked into original answers: %d", len(s.Answers))
	}
	if s.Evaluations[0].RelatedConcepts[0] != "VLOOKUP" {
		t.Error("clone shares related_concepts backing array with original")
	}
}
