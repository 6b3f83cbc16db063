// internal/api/routes.go
package api

import "net/http"

// RegisterRoutes attaches the interview endpoints to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /start-interview", h.startInterview)
	mux.HandleFunc("POST /answer", h.submitAnswer)
	mux.HandleFunc("GET /summary/{sessionID}", h.getSummary)
	mux.HandleFunc("GET /questions/count", h.questionCount)
}
