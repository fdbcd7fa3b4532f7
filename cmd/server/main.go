package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecoleludique/internal/config"
	"ecoleludique/internal/content"
	"ecoleludique/internal/database"
	"ecoleludique/internal/handlers"
	"ecoleludique/internal/repository"
	"ecoleludique/internal/security"
	"ecoleludique/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	studentRepo := repository.NewStudentRepository(db)
	periodRepo := repository.NewPeriodRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)

	// Initialize services
	catalog := content.NewCatalog()
	rosterService := service.NewRosterService(studentRepo, periodRepo)
	playService := service.NewPlayService(catalog, rosterService, attemptRepo)
	statsService := service.NewStatsService(catalog, attemptRepo, rosterService)

	// Seed school periods on first start
	if err := rosterService.EnsureDefaultPeriods(); err != nil {
		log.Fatalf("Failed to seed periods: %v", err)
	}

	// Initialize handlers
	studentHandler := handlers.NewStudentHandler(rosterService)
	periodHandler := handlers.NewPeriodHandler(rosterService)
	playHandler := handlers.NewPlayHandler(playService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Setup routes
	mux := http.NewServeMux()

	// Roster routes
	mux.HandleFunc("POST /api/students", studentHandler.CreateStudent)
	mux.HandleFunc("GET /api/students", studentHandler.ListStudents)
	mux.HandleFunc("GET /api/students/{id}", studentHandler.GetStudent)
	mux.HandleFunc("PUT /api/students/{id}", studentHandler.UpdateStudent)
	mux.HandleFunc("DELETE /api/students/{id}", studentHandler.DeleteStudent)
	mux.HandleFunc("POST /api/students/{id}/password", studentHandler.RegeneratePassword)

	// Period routes
	mux.HandleFunc("GET /api/periods", periodHandler.ListPeriods)
	mux.HandleFunc("POST /api/periods/activate", periodHandler.ActivatePeriod)

	// Play routes
	mux.HandleFunc("GET /api/games", playHandler.ListGames)
	mux.HandleFunc("POST /api/play", playHandler.StartSession)
	mux.HandleFunc("GET /api/play/{id}", playHandler.GetState)
	mux.HandleFunc("POST /api/play/{id}/move", playHandler.Move)
	mux.HandleFunc("POST /api/play/{id}/text", playHandler.SetText)
	mux.HandleFunc("POST /api/play/{id}/connect", playHandler.Connect)
	mux.HandleFunc("DELETE /api/play/{id}/connections", playHandler.ClearConnections)
	mux.HandleFunc("POST /api/play/{id}/submit", playHandler.Submit)
	mux.HandleFunc("DELETE /api/play/{id}", playHandler.EndSession)

	// Stats routes
	mux.HandleFunc("GET /api/students/{id}/stats", statsHandler.GetSubjectStats)

	// Wrap with rate limiting and logging middleware
	limiter := security.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	handler := handlers.Logging(handlers.RateLimit(limiter)(mux))

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	stopCleanup := make(chan struct{})
	go cleanupIdleSessions(playService, cfg, stopCleanup)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	close(stopCleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

// cleanupIdleSessions periodically reaps abandoned play sessions
func cleanupIdleSessions(playService *service.PlayService, cfg *config.Config, stop <-chan struct{}) {
	ticker := time.NewTicker(cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := playService.CleanupIdle(cfg.SessionIdleTimeout); n > 0 {
				log.Printf("Cleaned up %d idle play sessions", n)
			}
		case <-stop:
			return
		}
	}
}
