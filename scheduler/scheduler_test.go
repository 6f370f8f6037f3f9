package scheduler

import (
	"errors"
	"testing"

	"github.com/ericjunior52/MED-SAFE/data"
	"github.com/ericjunior52/MED-SAFE/interactions"
)

type memDataset struct {
	headers []string
	rows    [][]string
}

func (d *memDataset) Headers() []string { return d.headers }
func (d *memDataset) Rows() [][]string  { return d.rows }

// stubLoader returns a fixed table or a fixed error
type stubLoader struct {
	table *interactions.Table
	err   error
	calls int
}

func (l *stubLoader) Load() (*interactions.Table, error) {
	l.calls++
	if l.err != nil {
		return nil, l.err
	}
	return l.table, nil
}

func stubTable(t *testing.T) *interactions.Table {
	t.Helper()

	table, err := interactions.NewTable(&memDataset{
		headers: []string{"id", "Drug_A", "notes", "Drug_B", "Level"},
		rows:    [][]string{{"1", "aspirin", "x", "warfarin", "Major"}},
	})
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}
	return table
}

func TestStartLoadsInitialTable(t *testing.T) {
	container := data.NewContainer()
	loader := &stubLoader{table: stubTable(t)}

	s := NewScheduler(container, loader)
	if err := s.Start(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer s.Stop()

	if loader.calls == 0 {
		t.Error("Expected loader to be called on Start")
	}
	if container.GetTable().Len() != 1 {
		t.Errorf("Expected 1 record in store, got %d", container.GetTable().Len())
	}
	if container.GetLastUpdated().IsZero() {
		t.Error("Expected last-updated to be set after initial load")
	}
}

func TestStartFailsWhenLoaderFails(t *testing.T) {
	container := data.NewContainer()
	loader := &stubLoader{err: errors.New("boom")}

	s := NewScheduler(container, loader)
	if err := s.Start(); err == nil {
		s.Stop()
		t.Fatal("Expected error when initial load fails, got nil")
	}

	if container.GetTable().Len() != 0 {
		t.Error("Expected store to stay empty after failed load")
	}
	if container.IsUpdating() {
		t.Error("Expected updating flag cleared after failed load")
	}
}

func TestReloadSkippedWhileUpdating(t *testing.T) {
	container := data.NewContainer()
	loader := &stubLoader{table: stubTable(t)}

	s := NewScheduler(container, loader)

	// Simulate another reload in progress
	if !container.BeginUpdate() {
		t.Fatal("Failed to mark update in progress")
	}
	defer container.EndUpdate()

	if err := s.reload(); err != nil {
		t.Errorf("Expected skip without error, got %v", err)
	}
	if loader.calls != 0 {
		t.Errorf("Expected loader not to be called, got %d calls", loader.calls)
	}
}
