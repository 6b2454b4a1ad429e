package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// WarActorRepository stores the war codex roster, pre-seeded with the
// canonical six actors. The roster is read-only after construction.
type WarActorRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.WarActor
	order []string
}

func NewWarActorRepository() *WarActorRepository {
	r := &WarActorRepository{rows: make(map[string]model.WarActor)}
	for _, a := range actorFixtures {
		a.ID = uuid.NewString()
		r.rows[a.ID] = a
		r.order = append(r.order, a.ID)
	}
	return r
}

func (r *WarActorRepository) GetAll(ctx context.Context) ([]*model.WarActor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.WarActor, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *WarActorRepository) GetByID(ctx context.Context, id string) (*model.WarActor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// GetByCodename matches the codename case-insensitively.
func (r *WarActorRepository) GetByCodename(ctx context.Context, codename string) (*model.WarActor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].Codename, codename) {
			row := r.rows[id]
			return &row, nil
		}
	}
	return nil, nil
}
