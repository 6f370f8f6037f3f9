// MED-SAFE serves drug-drug interaction lookups over HTTP. It loads a CSV
// interaction dataset into an in-memory table at startup, reloads it on a
// schedule, and answers pairwise and single-drug queries.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/ericjunior52/MED-SAFE/config"
	"github.com/ericjunior52/MED-SAFE/data"
	"github.com/ericjunior52/MED-SAFE/health"
	"github.com/ericjunior52/MED-SAFE/interactions"
	"github.com/ericjunior52/MED-SAFE/logging"
	"github.com/ericjunior52/MED-SAFE/scheduler"
	"github.com/ericjunior52/MED-SAFE/server"
	"github.com/ericjunior52/MED-SAFE/validation"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment variables win either way
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs", cfg.LogLevel, cfg.LogRetentionWeeks, cfg.MaxLogFileSize)
	defer logging.Close()

	container := data.NewContainer()
	container.SetServerStartTime(time.Now())

	loader := interactions.FileLoader{Path: cfg.DataFile}

	sched := scheduler.NewScheduler(container, loader)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	checker := health.NewHealthChecker(container)
	validator := validation.NewDataValidator()

	srv := server.NewServer(cfg, container, checker, validator)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}
}
