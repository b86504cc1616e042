package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/triviabank/trivia-api/internal/config"
	"github.com/triviabank/trivia-api/internal/trivia"
)

// NewHTTPServer wires the trivia API routes plus health and metrics
// endpoints. healthcheck pings the backing dependencies.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handler *trivia.HTTPHandler, healthcheck func(context.Context) error) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if healthcheck != nil {
			if err := healthcheck(r.Context()); err != nil {
				logger.Error().Err(err).Msg("dependency ping failed")
				http.Error(w, "upstream error", http.StatusBadGateway)
				return
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/categories", handler.ListCategories)
	mux.HandleFunc("GET /api/categories/{id}/questions", handler.ListCategoryQuestions)
	mux.HandleFunc("GET /api/questions", handler.ListQuestions)
	mux.HandleFunc("POST /api/questions", handler.CreateQuestion)
	mux.HandleFunc("DELETE /api/questions/{id}", handler.DeleteQuestion)
	mux.HandleFunc("POST /api/quizzes", handler.NextQuizQuestion)

	chain := withRequestLogging(logger, withCORS(cfg.CORS, withMetrics(mux)))

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: chain,
	}
}
