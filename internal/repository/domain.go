package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// OverscaleDomainRepository stores the overscale matrix rows. The table
// starts empty; rows arrive through CSV seeding.
type OverscaleDomainRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.OverscaleDomain
	order []string
}

func NewOverscaleDomainRepository() *OverscaleDomainRepository {
	return &OverscaleDomainRepository{rows: make(map[string]model.OverscaleDomain)}
}

func (r *OverscaleDomainRepository) GetAll(ctx context.Context) ([]*model.OverscaleDomain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.OverscaleDomain, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *OverscaleDomainRepository) GetByID(ctx context.Context, id string) (*model.OverscaleDomain, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *OverscaleDomainRepository) Create(ctx context.Context, domain *model.OverscaleDomain) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	domain.ID = uuid.NewString()
	r.rows[domain.ID] = *domain
	r.order = append(r.order, domain.ID)
	return nil
}
