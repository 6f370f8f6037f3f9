// Package interfaces defines core abstractions for the MED-SAFE API
// to improve testability, maintainability, and separation of concerns.
package interfaces

import (
	"time"

	"github.com/ericjunior52/MED-SAFE/interactions"
)

// DataQualityReport summarizes issues found in a loaded interaction table.
type DataQualityReport struct {
	DuplicatePairs      int // pairs (order-insensitive) appearing more than once
	SelfInteractionRows int // rows where both drug columns hold the same drug
	RowsWithEmptyLevel  int // rows whose level cell is blank
	RowsWithEmptyDrug   int // rows missing one or both drug names
	TotalRecords        int
}

// TableStore defines the contract for interaction table storage. It provides
// thread-safe access to the current table with atomic swap semantics so a
// reload never disturbs in-flight readers.
type TableStore interface {
	// Data retrieval methods
	GetTable() *interactions.Table
	GetLastUpdated() time.Time
	IsUpdating() bool
	GetServerStartTime() time.Time

	// Data update methods
	UpdateTable(table *interactions.Table)
	BeginUpdate() bool
	EndUpdate()
}

// TableLoader defines the contract for loading an interaction table from an
// external tabular source.
type TableLoader interface {
	// Load reads the source and builds a fully normalized table.
	Load() (*interactions.Table, error)
}

// Scheduler defines the contract for job scheduling and health monitoring.
// It manages automated dataset reloads and staleness checks.
type Scheduler interface {
	// Lifecycle management
	Start() error
	Stop()
}

// HealthChecker defines the contract for health check functionality.
type HealthChecker interface {
	// HealthCheck returns current system health status
	HealthCheck() (status string, details map[string]any, httpStatus int)

	// CalculateNextUpdate returns the next scheduled reload time
	CalculateNextUpdate() time.Time
}

// InputValidator defines the contract for validating untrusted user input
// and reporting dataset quality.
type InputValidator interface {
	// ValidateInput validates user-supplied strings before they reach the core
	ValidateInput(input string) error

	// ReportDataQuality generates a quality report for a loaded table
	ReportDataQuality(table *interactions.Table) *DataQualityReport
}
