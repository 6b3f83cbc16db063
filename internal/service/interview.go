// internal/service/interview.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
	"github.com/coding-ninjas-ai/backend/internal/evaluator"
	"github.com/coding-ninjas-ai/backend/internal/questions"
	"github.com/coding-ninjas-ai/backend/internal/report"
	"github.com/coding-ninjas-ai/backend/internal/store"
)

// ErrInterviewComplete is returned when an answer arrives for a session that
// has already gone through every question.
var ErrInterviewComplete = errors.New("interview already complete")

// InterviewService runs interviews: it hands out questions, sends answers to
// the evaluator, and records the results. It owns the per-session locks so
// the store stays a pure persistence layer.
type InterviewService struct {
	questions *questions.List
	store     store.Store
	evaluator evaluator.Evaluator
	logger    *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex // sessionID → answer serialization lock
}

// NewInterviewService creates an InterviewService.
func NewInterviewService(q *questions.List, s store.Store, e evaluator.Evaluator, logger *slog.Logger) *InterviewService {
	return &InterviewService{
		questions: q,
		store:     s,
		evaluator: e,
		logger:    logger,
		locks:     make(map[string]*sync.Mutex),
	}
}

// StartResult is returned when an interview begins.
type StartResult struct {
	SessionID      string
	Question       string
	TotalQuestions int
}

// Start creates a session and returns the first question.
func (s *InterviewService) Start(ctx context.Context) (StartResult, error) {
	first, ok := s.questions.At(0)
	if !ok {
		return StartResult{}, fmt.Errorf("no questions configured")
	}

	session, err := s.store.Create(ctx)
	if err != nil {
		return StartResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("interview started", "session_id", session.ID)

	return StartResult{
		SessionID:      session.ID,
		Question:       first.Text,
		TotalQuestions: s.questions.Len(),
	}, nil
}

// AnswerResult carries the evaluation of one answer and what comes next.
type AnswerResult struct {
	Evaluation   interview.Evaluation
	NextQuestion string
	Done         bool
}

// Answer evaluates one submitted answer and advances the session.
// Answers for the same session are serialized: two concurrent submissions
// cannot interleave on one session's state.
func (s *InterviewService) Answer(ctx context.Context, sessionID, answer string) (AnswerResult, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return AnswerResult{}, err
	}

	if session.Done(s.questions.Len()) {
		return AnswerResult{}, ErrInterviewComplete
	}

	question, ok := s.questions.At(session.CurrentIndex)
	if !ok {
		return AnswerResult{}, ErrInterviewComplete
	}

	eval, err := s.evaluator.Evaluate(ctx, question.Text, question.ExpectedAnswer, answer)
	if err != nil {
		// The evaluator degrades anticipated failures itself; anything that
		// still surfaces here gets the same zero-score treatment.
		s.logger.Error("evaluation error", "session_id", sessionID, "error", err)
		eval = interview.Evaluation{
			Score:           0,
			Feedback:        "Could not process evaluation",
			RelatedConcepts: []string{},
		}
	}

	updated, err := s.store.Advance(ctx, sessionID, answer, eval)
	if err != nil {
		return AnswerResult{}, fmt.Errorf("failed to record answer: %w", err)
	}

	s.logger.Info("answer evaluated",
		"session_id", sessionID,
		"question_index", session.CurrentIndex,
		"score", eval.Score,
	)

	if updated.Done(s.questions.Len()) {
		return AnswerResult{Evaluation: eval, Done: true}, nil
	}

	next, _ := s.questions.At(updated.CurrentIndex)
	return AnswerResult{Evaluation: eval, NextQuestion: next.Text}, nil
}

// SummaryResult is the full report for a session.
type SummaryResult struct {
	Answers     []string
	Evaluations []interview.Evaluation
	Summary     report.Summary
}

// Summary recomputes the aggregated report for a session.
func (s *InterviewService) Summary(ctx context.Context, sessionID string) (SummaryResult, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return SummaryResult{}, err
	}

	return SummaryResult{
		Answers:     session.Answers,
		Evaluations: session.Evaluations,
		Summary:     report.Summarize(session),
	}, nil
}

// QuestionCount returns how many questions the interview asks.
func (s *InterviewService) QuestionCount() int {
	return s.questions.Len()
}

// sessionLock returns the mutex serializing answers for one session.
func (s *InterviewService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	return lock
}
