package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"finchat-server/src/handlers"
	"finchat-server/src/middleware"
)

func NewRouter(pool *pgxpool.Pool, classifier handlers.Classifier, generator handlers.AdviceGenerator, jwtSecret string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/", handlers.ServeUI())

	r.Post("/nlu", handlers.AnalyzeText(classifier))
	r.Post("/generate", handlers.GenerateAdvice(generator))

	// Budget summaries belong to an identified user; insights accept an
	// anonymous caller but persist the profile when a token is present.
	r.With(middleware.RequireAuth(jwtSecret)).Post("/budget-summary", handlers.BudgetSummary(generator, pool))
	r.With(middleware.OptionalAuth(jwtSecret)).Post("/spending-insights", handlers.SpendingInsights(generator, pool))

	return r
}
