package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// HiddenSocietyRepository stores the hidden society registry, pre-seeded
// with the canonical set. Additional societies arrive through CSV seeding.
type HiddenSocietyRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.HiddenSociety
	order []string
}

func NewHiddenSocietyRepository() *HiddenSocietyRepository {
	r := &HiddenSocietyRepository{rows: make(map[string]model.HiddenSociety)}
	for _, s := range societyFixtures {
		r.insert(s)
	}
	return r
}

func (r *HiddenSocietyRepository) insert(s model.HiddenSociety) string {
	s.ID = uuid.NewString()
	r.rows[s.ID] = s
	r.order = append(r.order, s.ID)
	return s.ID
}

func (r *HiddenSocietyRepository) GetAll(ctx context.Context) ([]*model.HiddenSociety, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.HiddenSociety, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *HiddenSocietyRepository) GetByID(ctx context.Context, id string) (*model.HiddenSociety, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// GetByName matches the society name case-insensitively.
func (r *HiddenSocietyRepository) GetByName(ctx context.Context, name string) (*model.HiddenSociety, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].Name, name) {
			row := r.rows[id]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *HiddenSocietyRepository) Create(ctx context.Context, society *model.HiddenSociety) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	society.ID = r.insert(*society)
	return nil
}

// UpdateStatus replaces the stored record with one carrying the new
// status. A nil return with nil error means the society does not exist.
func (r *HiddenSocietyRepository) UpdateStatus(ctx context.Context, id, status string) (*model.HiddenSociety, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	row.Status = status
	r.rows[id] = row
	return &row, nil
}
