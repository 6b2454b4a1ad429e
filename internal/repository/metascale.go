package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// MetaSchoolRepository stores the observatory's school catalog.
type MetaSchoolRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.MetaSchool
	order []string
}

func NewMetaSchoolRepository() *MetaSchoolRepository {
	r := &MetaSchoolRepository{rows: make(map[string]model.MetaSchool)}
	for _, s := range schoolFixtures {
		s.ID = uuid.NewString()
		r.rows[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	return r
}

func (r *MetaSchoolRepository) GetAll(ctx context.Context) ([]*model.MetaSchool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MetaSchool, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *MetaSchoolRepository) GetByID(ctx context.Context, id string) (*model.MetaSchool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *MetaSchoolRepository) GetByStatus(ctx context.Context, status string) ([]*model.MetaSchool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MetaSchool, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].Status, status) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}

// MetaNationRepository stores the nation-state table.
type MetaNationRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.MetaNation
	order []string
}

func NewMetaNationRepository() *MetaNationRepository {
	r := &MetaNationRepository{rows: make(map[string]model.MetaNation)}
	for _, n := range nationFixtures {
		n.ID = uuid.NewString()
		r.rows[n.ID] = n
		r.order = append(r.order, n.ID)
	}
	return r
}

func (r *MetaNationRepository) GetAll(ctx context.Context) ([]*model.MetaNation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MetaNation, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *MetaNationRepository) GetByID(ctx context.Context, id string) (*model.MetaNation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *MetaNationRepository) GetByDiplomaticStatus(ctx context.Context, status string) ([]*model.MetaNation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MetaNation, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].DiplomaticStatus, status) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}

// MetaGalaxyRepository stores the galaxy-scale structures.
type MetaGalaxyRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.MetaGalaxy
	order []string
}

func NewMetaGalaxyRepository() *MetaGalaxyRepository {
	r := &MetaGalaxyRepository{rows: make(map[string]model.MetaGalaxy)}
	for _, g := range galaxyFixtures {
		g.ID = uuid.NewString()
		r.rows[g.ID] = g
		r.order = append(r.order, g.ID)
	}
	return r
}

func (r *MetaGalaxyRepository) GetAll(ctx context.Context) ([]*model.MetaGalaxy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MetaGalaxy, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *MetaGalaxyRepository) GetByID(ctx context.Context, id string) (*model.MetaGalaxy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *MetaGalaxyRepository) GetByConsciousnessLevel(ctx context.Context, level string) ([]*model.MetaGalaxy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MetaGalaxy, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].ConsciousnessLevel, level) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}
