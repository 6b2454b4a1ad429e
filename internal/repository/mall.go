package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// MallNodeRepository stores treasury mall installations, pre-seeded with
// the four founding nodes. New nodes arrive through the registration API.
type MallNodeRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.MallNode
	order []string
}

func NewMallNodeRepository() *MallNodeRepository {
	r := &MallNodeRepository{rows: make(map[string]model.MallNode)}
	for _, m := range mallFixtures {
		m.ID = uuid.NewString()
		r.rows[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	return r
}

func (r *MallNodeRepository) GetAll(ctx context.Context) ([]*model.MallNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MallNode, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *MallNodeRepository) GetByID(ctx context.Context, id string) (*model.MallNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *MallNodeRepository) Create(ctx context.Context, mall *model.MallNode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mall.ID = uuid.NewString()
	r.rows[mall.ID] = *mall
	r.order = append(r.order, mall.ID)
	return nil
}
