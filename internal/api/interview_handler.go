package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/coding-ninjas-ai/backend/internal/domain/interview"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartInterviewResponse struct {
	SessionID      string `json:"session_id"`
	Question       string `json:"question"`
	TotalQuestions int    `json:"total_questions"`
}

type AnswerRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

func (r *AnswerRequest) Validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return errors.New("session_id is required")
	}
	if r.Answer == "" {
		return errors.New("answer is required")
	}
	return nil
}

type AnswerResponse struct {
	Evaluation   interview.Evaluation `json:"evaluation"`
	NextQuestion string               `json:"next_question,omitempty"`
	Done         bool                 `json:"done,omitempty"`
}

type SummaryResponse struct {
	Answers         []string               `json:"answers"`
	Evaluations     []interview.Evaluation `json:"evaluations"`
	FinalScore      float64                `json:"final_score"`
	OverallFeedback string                 `json:"overall_feedback"`
}

type QuestionCountResponse struct {
	Count int `json:"count"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /start-interview
//
//	@Summary	Start a new interview session
//	@Produce	json
//	@Success	200	{object}	StartInterviewResponse
//	@Router		/start-interview [post]
func (h *Handler) startInterview(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Start(r.Context())
	if err != nil {
		h.logger.Error("failed to start interview", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to start interview")
		return
	}

	respondJSON(w, http.StatusOK, StartInterviewResponse{
		SessionID:      res.SessionID,
		Question:       res.Question,
		TotalQuestions: res.TotalQuestions,
	})
}

// POST /answer
//
//	@Summary	Submit an answer for evaluation
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AnswerRequest	true	"session id and answer text"
//	@Success	200		{object}	AnswerResponse
//	@Router		/answer [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.service.Answer(r.Context(), req.SessionID, req.Answer)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, AnswerResponse{
		Evaluation:   res.Evaluation,
		NextQuestion: res.NextQuestion,
		Done:         res.Done,
	})
}

// GET /summary/{sessionID}
//
//	@Summary	Final report for a session
//	@Produce	json
//	@Param		sessionID	path		string	true	"session id"
//	@Success	200			{object}	SummaryResponse
//	@Router		/summary/{sessionID} [get]
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	res, err := h.service.Summary(r.Context(), sessionID)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SummaryResponse{
		Answers:         res.Answers,
		Evaluations:     res.Evaluations,
		FinalScore:      res.Summary.FinalScore,
		OverallFeedback: res.Summary.OverallFeedback,
	})
}

// GET /questions/count
//
//	@Summary	Number of questions in the interview
//	@Produce	json
//	@Success	200	{object}	QuestionCountResponse
//	@Router		/questions/count [get]
func (h *Handler) questionCount(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, QuestionCountResponse{
		Count: h.service.QuestionCount(),
	})
}
