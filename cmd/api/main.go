// Sleepitron API
//
// REST API for a personal sleep and wellbeing diary.
//
//	@title			Sleepitron API
//	@version		1.0
//	@description	Track sleep sessions, personality intervals, and doctor visits, with aggregate analytics and AI-generated insights.
//
//	@BasePath	/v1
//
//	@tag.name			sleep-records
//	@tag.description	Sleep diary endpoints
//
//	@tag.name			personalities
//	@tag.description	Personality interval endpoints
//
//	@tag.name			doctor-visits
//	@tag.description	Doctor visit endpoints
//
//	@tag.name			analytics
//	@tag.description	Aggregate statistics and insights
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/sleepitron/sleepitron/internal/api"
	"github.com/sleepitron/sleepitron/internal/api/handler"
	"github.com/sleepitron/sleepitron/internal/config"
	"github.com/sleepitron/sleepitron/internal/domain"
	"github.com/sleepitron/sleepitron/internal/llm"
	"github.com/sleepitron/sleepitron/internal/repository"
	"github.com/sleepitron/sleepitron/internal/seed"
	"github.com/sleepitron/sleepitron/internal/service"
	"github.com/sleepitron/sleepitron/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "sleepitron-api")
	if err != nil {
		log.Printf("Warning: failed to initialize tracing: %v", err)
	} else {
		defer shutdownTracer(context.Background())
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.SleepRecord{}, &domain.PersonalityInterval{}, &domain.DoctorVisit{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	recordRepo := repository.NewSleepRecordRepository(db)
	intervalRepo := repository.NewPersonalityIntervalRepository(db)
	visitRepo := repository.NewDoctorVisitRepository(db)

	// Initialize services
	recordService := service.NewSleepRecordService(recordRepo)
	personalityService := service.NewPersonalityService(intervalRepo, recordRepo)
	visitService := service.NewDoctorVisitService(visitRepo)
	analyticsService := service.NewAnalyticsService(recordRepo, visitRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize insights service
	insightsService := service.NewInsightsService(analyticsService, openaiClient, visitRepo)

	// Initialize handlers
	sleepRecordHandler := handler.NewSleepRecordHandler(recordService)
	personalityHandler := handler.NewPersonalityHandler(personalityService)
	doctorVisitHandler := handler.NewDoctorVisitHandler(visitService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, insightsService)

	// Setup router
	router := api.NewRouter(sleepRecordHandler, personalityHandler, doctorVisitHandler, analyticsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
