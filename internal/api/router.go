package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/noctura/circadian-api/docs"
	"github.com/noctura/circadian-api/internal/api/handler"
	"github.com/noctura/circadian-api/internal/api/middleware"
	"go.uber.org/zap"
)

type Router struct {
	logger           *zap.Logger
	userHandler      *handler.UserHandler
	vitalsHandler    *handler.VitalsHandler
	circadianHandler *handler.CircadianHandler
	balanceHandler   *handler.BalanceHandler
	energyHandler    *handler.EnergyHandler
	insightsHandler  *handler.InsightsHandler
}

func NewRouter(
	logger *zap.Logger,
	userHandler *handler.UserHandler,
	vitalsHandler *handler.VitalsHandler,
	circadianHandler *handler.CircadianHandler,
	balanceHandler *handler.BalanceHandler,
	energyHandler *handler.EnergyHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		logger:           logger,
		userHandler:      userHandler,
		vitalsHandler:    vitalsHandler,
		circadianHandler: circadianHandler,
		balanceHandler:   balanceHandler,
		energyHandler:    energyHandler,
		insightsHandler:  insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Tracing)
	r.Use(middleware.Metrics)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)

			// Per-user resources
			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", rt.userHandler.GetByID)

				// Vitals ingestion
				r.Route("/vitals", func(r chi.Router) {
					r.Put("/", rt.vitalsHandler.Upsert)
					r.Post("/", rt.vitalsHandler.Upsert)
					r.Get("/", rt.vitalsHandler.List)
					r.Get("/{date}", rt.vitalsHandler.GetByDate)
				})

				// Circadian profile
				r.Route("/circadian", func(r chi.Router) {
					r.Get("/chronotype", rt.circadianHandler.GetChronotype)
					r.Get("/day-classification", rt.circadianHandler.GetDayClassification)
				})

				// Sleep balance
				r.Get("/sleep-need", rt.balanceHandler.GetSleepNeed)
				r.Get("/sleep-need/today", rt.balanceHandler.TodayNeed)
				r.Post("/sleep-need/today", rt.balanceHandler.TodayNeed)
				r.Get("/sleep-debt", rt.balanceHandler.GetSleepDebt)

				// Energy curve
				r.Get("/energy-curve", rt.energyHandler.GetCurve)

				// LLM insights
				r.Route("/insights", func(r chi.Router) {
					r.Get("/", rt.insightsHandler.GetInsights)
					r.Post("/feedback", rt.insightsHandler.PostFeedback)
				})
			})
		})
	})

	return r
}
