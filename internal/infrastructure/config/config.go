package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// LLM evaluation
	LLMURL     string        // OpenAI-compatible endpoint, e.g. "https://api.groq.com/openai"
	LLMModel   string        // model name, e.g. "llama-3.1-8b-instant"
	LLMAPIKey  string        // optional bearer token
	LLMTimeout time.Duration // per-evaluation deadline

	// Knowledge retrieval (optional grounding context)
	RetrieverURL string // empty = evaluate without retrieval

	// Questions and sessions
	QuestionsPath string
	StoreDSN      string        // empty = in-memory store, otherwise a SQLite path
	SessionTTL    time.Duration // 0 = sessions live for the whole process

	CORSOrigins []string
}

// defaultCORSOrigins matches the deployed frontend hosts.
var defaultCORSOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://0.0.0.0:5173",
	"capacitor://localhost",
	"http://localhost",
	"http://coding-ninjas-ai.vercel.app",
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		LLMURL:          getenvDefault("LLM_URL", "https://api.groq.com/openai"),
		LLMModel:        getenvDefault("LLM_MODEL", "llama-3.1-8b-instant"),
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
		LLMTimeout:      getDurationDefault("LLM_TIMEOUT", 30*time.Second),
		RetrieverURL:    os.Getenv("RETRIEVER_URL"),
		QuestionsPath:   getenvDefault("QUESTIONS_PATH", "questions.json"),
		StoreDSN:        os.Getenv("STORE_DSN"),
		SessionTTL:      getDurationDefault("SESSION_TTL", 0),
		CORSOrigins:     getenvList("CORS_ORIGINS", defaultCORSOrigins),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvList(k string, fallback []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
