package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// MarketProductRepository stores the market intelligence table. Sector
// filtering is a case-insensitive substring match, so "Healing" and
// "healing, medicine" both hit the same rows.
type MarketProductRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.MarketProduct
	order []string
}

func NewMarketProductRepository() *MarketProductRepository {
	r := &MarketProductRepository{rows: make(map[string]model.MarketProduct)}
	for _, p := range productFixtures {
		p.ID = uuid.NewString()
		r.rows[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *MarketProductRepository) GetAll(ctx context.Context) ([]*model.MarketProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MarketProduct, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *MarketProductRepository) GetByID(ctx context.Context, id string) (*model.MarketProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *MarketProductRepository) GetBySector(ctx context.Context, sector string) ([]*model.MarketProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(sector)
	out := make([]*model.MarketProduct, 0)
	for _, id := range r.order {
		if strings.Contains(strings.ToLower(r.rows[id].Sector), needle) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}
