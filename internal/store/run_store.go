// internal/store/run_store.go
package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/unclebandit/leadsegment-backend/internal/service"
)

// RunStore keeps finished run results in memory so their artifacts can be
// downloaded after processing. Process-lifetime only; nothing survives a
// restart.
type RunStore struct {
	mu   sync.Mutex
	runs map[string]*service.RunResult
}

// NewRunStore creates an empty store.
func NewRunStore() *RunStore {
	return &RunStore{runs: make(map[string]*service.RunResult)}
}

// Save stores a result and returns its run id.
func (s *RunStore) Save(result *service.RunResult) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.runs[id] = result
	s.mu.Unlock()
	return id
}

// Get returns the result for a run id, or nil when unknown.
func (s *RunStore) Get(id string) *service.RunResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs[id]
}

// Delete drops a finished run.
func (s *RunStore) Delete(id string) {
	s.mu.Lock()
	delete(s.runs, id)
	s.mu.Unlock()
}
