// simulation/simulation.go
package simulation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coding-ninjas-ai/backend/internal/service"
	"github.com/coding-ninjas-ai/backend/internal/worker"
)

// answerOutcome is what one simulated submission produced.
type answerOutcome struct {
	Answer string
	Result service.AnswerResult
	Err    error
}

// Run drives one scripted interview through the service: start a session,
// push every canned answer through the worker pool, then log the summary.
// Used as a smoke harness against a configured evaluator.
func Run(ctx context.Context, svc *service.InterviewService, answers []string, logger *slog.Logger) error {
	started, err := svc.Start(ctx)
	if err != nil {
		return fmt.Errorf("simulation: start failed: %w", err)
	}
	logger.Info("simulation started",
		"session_id", started.SessionID,
		"total_questions", started.TotalQuestions,
	)

	pool := worker.NewPool[answerOutcome](3, 10)
	defer pool.Close()

	for _, answer := range answers {
		answer := answer
		pool.Submit(started.SessionID, func() answerOutcome {
			result, err := svc.Answer(ctx, started.SessionID, answer)
			return answerOutcome{Answer: answer, Result: result, Err: err}
		})
	}

	for range answers {
		outcome := (<-pool.Results()).Output
		if outcome.Err != nil {
			logger.Error("simulated answer failed",
				"answer", outcome.Answer,
				"error", outcome.Err,
			)
			continue
		}
		logger.Info("simulated answer evaluated",
			"score", outcome.Result.Evaluation.Score,
			"feedback", outcome.Result.Evaluation.Feedback,
			"done", outcome.Result.Done,
		)
	}

	summary, err := svc.Summary(ctx, started.SessionID)
	if err != nil {
		return fmt.Errorf("simulation: summary failed: %w", err)
	}

	logger.Info("simulation complete",
		"session_id", started.SessionID,
		"final_score", summary.Summary.FinalScore,
		"band", summary.Summary.Band,
	)
	return nil
}
