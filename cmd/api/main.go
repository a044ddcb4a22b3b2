package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"notekeeper/internal/config"
	"notekeeper/internal/database"
	"notekeeper/internal/database/models"
	"notekeeper/internal/database/repositories"
	"notekeeper/internal/logging"
	"notekeeper/internal/server"

	"github.com/gofiber/fiber/v2/log"
)

func gracefulShutdown(fiberServer *server.FiberServer, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Info("shutting down gracefully, press Ctrl+C again to force")
	stop()

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fiberServer.ShutdownWithContext(ctx); err != nil {
		log.Errorf("Server forced to shutdown with error: %v", err)
	}

	log.Info("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

// openStore picks the note store for the configured driver. db is nil for
// the in-memory store.
func openStore(cfg config.Database) (repositories.NoteRepository, database.Service, error) {
	if cfg.Driver == config.DriverMemory {
		return repositories.NewMemoryNoteRepository(models.SeedNotes()), nil, nil
	}
	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewNoteRepository(db.DB(), db.Driver()), db, nil
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	notes, db, err := openStore(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.Database.Driver, err)
	}

	srv := server.New(cfg, notes, db)
	srv.RegisterFiberRoutes()

	// Create a done channel to signal when the shutdown is complete
	done := make(chan bool, 1)

	go func() {
		log.Infof("Server running on port %s", cfg.Port)
		if err := srv.Listen(":" + cfg.Port); err != nil {
			panic(fmt.Sprintf("http server error: %s", err))
		}
	}()

	// Run graceful shutdown in a separate goroutine
	go gracefulShutdown(srv, done)

	// Wait for the graceful shutdown to complete
	<-done
	if db != nil {
		if err := db.Close(); err != nil {
			log.Errorf("close database: %v", err)
		}
	}
	log.Info("Graceful shutdown complete.")
}
