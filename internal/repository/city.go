package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// EnvironmentalCityRepository stores the safe-haven city network. Region
// filters are case-insensitive exact matches; biome filters match on
// substring so "Crystal" hits both crystal biomes.
type EnvironmentalCityRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.EnvironmentalCity
	order []string
}

func NewEnvironmentalCityRepository() *EnvironmentalCityRepository {
	r := &EnvironmentalCityRepository{rows: make(map[string]model.EnvironmentalCity)}
	for _, c := range cityFixtures {
		c.ID = uuid.NewString()
		r.rows[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

func (r *EnvironmentalCityRepository) GetAll(ctx context.Context) ([]*model.EnvironmentalCity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.EnvironmentalCity, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *EnvironmentalCityRepository) GetByID(ctx context.Context, id string) (*model.EnvironmentalCity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *EnvironmentalCityRepository) GetByRegion(ctx context.Context, region string) ([]*model.EnvironmentalCity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.EnvironmentalCity, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].Region, region) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}

func (r *EnvironmentalCityRepository) GetByBiome(ctx context.Context, biome string) ([]*model.EnvironmentalCity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(biome)
	out := make([]*model.EnvironmentalCity, 0)
	for _, id := range r.order {
		if strings.Contains(strings.ToLower(r.rows[id].Biome), needle) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}
