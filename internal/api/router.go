package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	_ "github.com/sleepitron/sleepitron/docs"
	"github.com/sleepitron/sleepitron/internal/api/handler"
	"github.com/sleepitron/sleepitron/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	sleepRecordHandler *handler.SleepRecordHandler
	personalityHandler *handler.PersonalityHandler
	doctorVisitHandler *handler.DoctorVisitHandler
	analyticsHandler   *handler.AnalyticsHandler
}

func NewRouter(
	sleepRecordHandler *handler.SleepRecordHandler,
	personalityHandler *handler.PersonalityHandler,
	doctorVisitHandler *handler.DoctorVisitHandler,
	analyticsHandler *handler.AnalyticsHandler,
) *Router {
	return &Router{
		sleepRecordHandler: sleepRecordHandler,
		personalityHandler: personalityHandler,
		doctorVisitHandler: doctorVisitHandler,
		analyticsHandler:   analyticsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Sleep records
		r.Route("/sleep-records", func(r chi.Router) {
			r.Post("/", rt.sleepRecordHandler.Create)
			r.Get("/", rt.sleepRecordHandler.List)
			r.Get("/{recordId}", rt.sleepRecordHandler.GetByID)
			r.Patch("/{recordId}", rt.sleepRecordHandler.Update)
			r.Delete("/{recordId}", rt.sleepRecordHandler.Delete)

			// Personality intervals (nested under sleep records)
			r.Post("/{recordId}/personalities", rt.personalityHandler.Create)
		})

		// Personality intervals addressed directly
		r.Route("/personalities", func(r chi.Router) {
			r.Patch("/{intervalId}", rt.personalityHandler.Update)
			r.Delete("/{intervalId}", rt.personalityHandler.Delete)
		})

		// Doctor visits
		r.Route("/doctor-visits", func(r chi.Router) {
			r.Post("/", rt.doctorVisitHandler.Create)
			r.Get("/", rt.doctorVisitHandler.List)
			r.Get("/{visitId}", rt.doctorVisitHandler.GetByID)
			r.Patch("/{visitId}", rt.doctorVisitHandler.Update)
			r.Delete("/{visitId}", rt.doctorVisitHandler.Delete)
		})

		// Analytics
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/summary", rt.analyticsHandler.Summary)
			r.Get("/duration-chart", rt.analyticsHandler.DurationChart)
			r.Get("/quality-chart", rt.analyticsHandler.QualityChart)
			r.Get("/insights", rt.analyticsHandler.Insights)
		})
	})

	return r
}
