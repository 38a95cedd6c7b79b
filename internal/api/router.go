package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SkillSync/aiq/internal/aiq"
	"github.com/SkillSync/aiq/internal/cache"
	"github.com/SkillSync/aiq/internal/config"
	"github.com/SkillSync/aiq/internal/hermes"
	"github.com/SkillSync/aiq/internal/store"
)

// Deps are the collaborators of the API. Cache, Hermes and Metrics may be nil.
type Deps struct {
	Engine  *aiq.Engine
	Store   store.Store
	Cache   cache.AssessmentCache
	Hermes  hermes.Client
	Metrics *Metrics
	Config  *config.Config
	Logger  *slog.Logger
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	if d.Config.Server.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(d.Logger))
	r.Use(d.Metrics.Middleware)
	r.Use(RateLimitMiddleware(d.Config.Server.RateLimitPerMinute))

	catalog := NewCatalogHandler(d.Engine)
	assessments := NewAssessmentsHandler(d.Engine, d.Store, d.Cache, d.Hermes, d.Metrics, d.Config.Assessment.ListLimit, d.Logger)

	r.Route("/api/v1/aiq", func(r chi.Router) {
		r.Get("/questions", catalog.Questions)
		r.Get("/dimensions", catalog.Dimensions)
		r.Get("/types", catalog.Types)
		r.Get("/types/{type}", catalog.Type)
		r.Post("/score", catalog.Score)

		r.Post("/assessments", assessments.Create)
		r.Get("/assessments", assessments.List)
		r.Get("/assessments/{id}", assessments.Get)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(d.Config.Server.AdminToken))
			r.Get("/stats", assessments.Stats)
		})
	})

	return r
}

func NewMetricsRouter(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}
