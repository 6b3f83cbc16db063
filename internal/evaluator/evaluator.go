package evaluator

import (
	"context"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
)

// Evaluator scores a candidate's answer against the expected answer.
// Implementations may call an LLM, use heuristics, or return canned results
// (for tests and the simulation harness).
//
// Contract: anticipated failures (unparseable model output, unreachable
// service, gamed answers) never surface as errors. They degrade to a
// zero-score Evaluation with explanatory feedback.
type Evaluator interface {
	Evaluate(ctx context.Context, question, expectedAnswer, candidateAnswer string) (interview.Evaluation, error)
}

// Static always returns the same evaluation. Used by tests and the simulation.
type Static struct {
	Result interview.Evaluation
}

var _ Evaluator = (*Static)(nil)

func (s *Static) Evaluate(context.Context, string, string, string) (interview.Evaluation, error) {
	return s.Result, nil
}
