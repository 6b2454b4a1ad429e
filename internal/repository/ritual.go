package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// CeremonialRitualRepository stores the ritual catalog, pre-seeded with
// the five codex ceremonies. Only the activation status mutates.
type CeremonialRitualRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.CeremonialRitual
	order []string
}

func NewCeremonialRitualRepository() *CeremonialRitualRepository {
	r := &CeremonialRitualRepository{rows: make(map[string]model.CeremonialRitual)}
	for _, rit := range ritualFixtures {
		rit.ID = uuid.NewString()
		r.rows[rit.ID] = rit
		r.order = append(r.order, rit.ID)
	}
	return r
}

func (r *CeremonialRitualRepository) GetAll(ctx context.Context) ([]*model.CeremonialRitual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.CeremonialRitual, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *CeremonialRitualRepository) GetByID(ctx context.Context, id string) (*model.CeremonialRitual, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// UpdateStatus replaces the stored record with one carrying the new
// activation status. A nil record with nil error means the ritual does
// not exist.
func (r *CeremonialRitualRepository) UpdateStatus(ctx context.Context, id, status string) (*model.CeremonialRitual, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	row.ActivationStatus = status
	r.rows[id] = row
	return &row, nil
}
