package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/coding-ninjas-ai/backend/internal/api"
	"github.com/coding-ninjas-ai/backend/internal/evaluator"
	"github.com/coding-ninjas-ai/backend/internal/infrastructure/config"
	"github.com/coding-ninjas-ai/backend/internal/questions"
	"github.com/coding-ninjas-ai/backend/internal/retrieval"
	"github.com/coding-ninjas-ai/backend/internal/service"
	"github.com/coding-ninjas-ai/backend/internal/store"

	_ "github.com/coding-ninjas-ai/backend/docs" // generated swagger docs
)

// @title           Coding Ninjas AI Interview API
// @version         1.0
// @description     Interview-practice backend — serves a fixed question sequence, evaluates answers with an LLM, and aggregates a final report.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	qs, err := questions.Load(cfg.QuestionsPath)
	if err != nil {
		logger.Error("failed to load questions", "error", err)
		os.Exit(1)
	}
	logger.Info("questions loaded", "path", cfg.QuestionsPath, "count", qs.Len())

	var sessions store.Store
	if cfg.StoreDSN != "" {
		sqlite, err := store.NewSQLite(cfg.StoreDSN)
		if err != nil {
			logger.Error("failed to open session database", "error", err)
			os.Exit(1)
		}
		sessions = sqlite
	} else {
		sessions = store.NewMemoryStore(cfg.SessionTTL)
	}
	defer sessions.Close()

	var retriever retrieval.Retriever = retrieval.Noop{}
	if cfg.RetrieverURL != "" {
		retriever = retrieval.NewHTTPRetriever(cfg.RetrieverURL)
	}

	llm := evaluator.NewLLMEvaluator(evaluator.LLMConfig{
		URL:     cfg.LLMURL,
		Model:   cfg.LLMModel,
		APIKey:  cfg.LLMAPIKey,
		Timeout: cfg.LLMTimeout,
	}, retriever, logger)

	svc := service.NewInterviewService(qs, sessions, llm, logger)
	handler := api.NewHandler(svc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORSOrigins)(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
