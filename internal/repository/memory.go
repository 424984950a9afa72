// internal/repository/memory.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"career-assessment-workers/internal/assessment"
	"career-assessment-workers/internal/models"

	"github.com/google/uuid"
)

// MemoryStore keeps progress in process. It backs offline scoring in the CLI
// and worker tests, and applies the same version guard as Postgres.
type MemoryStore struct {
	mu          sync.Mutex
	records     map[string][]byte
	submissions []models.Submission
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, individualID string) (*models.AssessmentProgress, error) {
	m.mu.Lock()
	raw, ok := m.records[individualID]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("progress %s: %w", individualID, assessment.ErrNotFound)
	}

	var p models.AssessmentProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode progress %s: %w", individualID, err)
	}
	return &p, nil
}

// Save stores p and its submissions together, applying the same version
// guard as Postgres.
func (m *MemoryStore) Save(_ context.Context, p *models.AssessmentProgress, subs ...*models.Submission) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress %s: %w", p.IndividualID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.records[p.IndividualID]; ok {
		var stored struct {
			Version int64 `json:"version"`
		}
		if err := json.Unmarshal(prev, &stored); err == nil && stored.Version >= p.Version {
			return fmt.Errorf("save progress %s at version %d: %w", p.IndividualID, p.Version, assessment.ErrConflict)
		}
	}
	m.records[p.IndividualID] = raw
	for _, s := range subs {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		m.submissions = append(m.submissions, *s)
	}
	return nil
}

// Submissions returns the recorded batches for individualID in arrival order.
func (m *MemoryStore) Submissions(individualID string) []models.Submission {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Submission
	for _, s := range m.submissions {
		if s.IndividualID == individualID {
			out = append(out, s)
		}
	}
	return out
}
