// Package data provides thread-safe storage for the loaded interaction table.
// It includes the Container struct with atomic operations for zero-downtime
// reloads and thread-safe access to the current table.
package data

import (
	"sync/atomic"
	"time"

	"github.com/ericjunior52/MED-SAFE/interactions"
	"github.com/ericjunior52/MED-SAFE/interfaces"
	"github.com/ericjunior52/MED-SAFE/logging"
)

// Compile-time check to ensure Container implements TableStore
var _ interfaces.TableStore = (*Container)(nil)

// Container holds the current interaction table behind atomic pointers so a
// reload swaps the whole table without disturbing concurrent readers.
type Container struct {
	table           atomic.Value // *interactions.Table
	lastUpdated     atomic.Value // time.Time
	updating        atomic.Bool
	serverStartTime atomic.Value // time.Time
}

// NewContainer creates a new Container holding an empty table
func NewContainer() *Container {
	c := &Container{}
	c.table.Store(&interactions.Table{})
	c.lastUpdated.Store(time.Time{})
	c.serverStartTime.Store(time.Time{})
	return c
}

// Thread-safe getters with type check

// GetTable returns the current interaction table
func (c *Container) GetTable() *interactions.Table {
	if v := c.table.Load(); v != nil {
		if table, ok := v.(*interactions.Table); ok {
			return table
		}
	}

	logging.Warn("Interaction table is empty or invalid")
	return &interactions.Table{}
}

// GetLastUpdated returns the timestamp of the last table load
func (c *Container) GetLastUpdated() time.Time {
	if v := c.lastUpdated.Load(); v != nil {
		if lastUpdated, ok := v.(time.Time); ok {
			return lastUpdated
		}
	}

	logging.Warn("Could not get the last updated value")
	return time.Time{}
}

// IsUpdating returns true if a table reload is currently in progress
func (c *Container) IsUpdating() bool {
	return c.updating.Load()
}

// SetServerStartTime sets the server start time
func (c *Container) SetServerStartTime(startTime time.Time) {
	c.serverStartTime.Store(startTime)
}

// GetServerStartTime returns the server start time
func (c *Container) GetServerStartTime() time.Time {
	if v := c.serverStartTime.Load(); v != nil {
		if startTime, ok := v.(time.Time); ok {
			return startTime
		}
	}

	logging.Warn("Could not get the server start time value")
	return time.Time{}
}

// UpdateTable atomically replaces the current table
func (c *Container) UpdateTable(table *interactions.Table) {
	// Atomic swap (zero downtime replacement)
	c.table.Store(table)
	c.lastUpdated.Store(time.Now())
}

// BeginUpdate marks the start of a reload operation.
// Returns true if the reload can proceed, false if another is in progress
func (c *Container) BeginUpdate() bool {
	return c.updating.CompareAndSwap(false, true)
}

// EndUpdate marks the end of a reload operation
func (c *Container) EndUpdate() {
	c.updating.Store(false)
}
