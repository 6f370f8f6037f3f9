// Package scheduler provides automated dataset reloads and staleness
// monitoring for the MED-SAFE API. It handles cron-based reloads of the
// interaction table and coordinates the swap with the table store using
// dependency injection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/ericjunior52/MED-SAFE/interfaces"
	"github.com/ericjunior52/MED-SAFE/logging"
	"github.com/ericjunior52/MED-SAFE/validation"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements the Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// Scheduler handles dataset reloads and staleness monitoring
type Scheduler struct {
	store     interfaces.TableStore
	loader    interfaces.TableLoader
	scheduler *gocron.Scheduler
	stopCh    chan struct{}
}

// NewScheduler creates a new scheduler instance with injected dependencies
func NewScheduler(store interfaces.TableStore, loader interfaces.TableLoader) *Scheduler {
	return &Scheduler{
		store:     store,
		loader:    loader,
		scheduler: gocron.NewScheduler(time.Local),
		stopCh:    make(chan struct{}),
	}
}

// Start performs the initial dataset load and schedules periodic reloads.
// The initial load is fatal on error: without a table there is nothing to
// serve.
func (s *Scheduler) Start() error {
	if err := s.reload(); err != nil {
		logging.Error("Failed to perform initial dataset load", "error", err)
		return fmt.Errorf("initial dataset load failed: %w", err)
	}

	// Schedule reloads at 06:00 and 18:00 daily
	_, err := s.scheduler.Every(1).Days().At("06:00;18:00").Do(func() {
		if err := s.reload(); err != nil {
			logging.Error("Failed to reload dataset", "error", err)
		}
	})

	if err != nil {
		logging.Error("Failed to schedule reloads", "error", err)
		return fmt.Errorf("failed to schedule reloads: %w", err)
	}

	s.scheduler.StartAsync()

	s.startStalenessMonitoring()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.scheduler.Stop()
}

// reload loads the dataset and atomically swaps it into the store
func (s *Scheduler) reload() error {
	// Prevent concurrent reloads
	if !s.store.BeginUpdate() {
		logging.Info("Reload already in progress, skipping...")
		return nil
	}
	defer s.store.EndUpdate()

	logging.Info("Starting dataset reload", "at", time.Now().Format(time.RFC3339))
	start := time.Now()

	table, err := s.loader.Load()
	if err != nil {
		logging.Error("Failed to load interaction table", "error", err)
		return fmt.Errorf("failed to load interaction table: %w", err)
	}

	validator := validation.NewDataValidator()
	report := validator.ReportDataQuality(table)
	validation.LogDataQuality(report)

	// Atomic swap (zero downtime replacement)
	s.store.UpdateTable(table)

	logging.Info("Dataset reload completed",
		"duration", time.Since(start).String(),
		"interaction_count", table.Len())

	return nil
}

// startStalenessMonitoring warns hourly when the table has not been
// refreshed across two reload windows
func (s *Scheduler) startStalenessMonitoring() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				lastUpdate := s.store.GetLastUpdated()
				if time.Since(lastUpdate) > 25*time.Hour {
					logging.Warn("Dataset hasn't been reloaded in over 25 hours")
				}
			}
		}
	}()
}
