package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// MythologyDeityRepository stores the deity protocol mappings. Name lookups
// are case-insensitive.
type MythologyDeityRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.MythologyDeity
	order []string
}

func NewMythologyDeityRepository() *MythologyDeityRepository {
	r := &MythologyDeityRepository{rows: make(map[string]model.MythologyDeity)}
	for _, d := range deityFixtures {
		d.ID = uuid.NewString()
		r.rows[d.ID] = d
		r.order = append(r.order, d.ID)
	}
	return r
}

func (r *MythologyDeityRepository) GetAll(ctx context.Context) ([]*model.MythologyDeity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.MythologyDeity, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *MythologyDeityRepository) GetByID(ctx context.Context, id string) (*model.MythologyDeity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *MythologyDeityRepository) GetByName(ctx context.Context, name string) (*model.MythologyDeity, error) {
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

// CodexLayerRepository stores the ten-layer codex. Listings come back
// ordered by layer number.
type CodexLayerRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.CodexLayer
	order []string
}

func NewCodexLayerRepository() *CodexLayerRepository {
	r := &CodexLayerRepository{rows: make(map[string]model.CodexLayer)}
	for _, l := range codexLayerFixtures {
		l.ID = uuid.NewString()
		r.rows[l.ID] = l
		r.order = append(r.order, l.ID)
	}
	return r
}

func (r *CodexLayerRepository) GetAll(ctx context.Context) ([]*model.CodexLayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.CodexLayer, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LayerNumber < out[j].LayerNumber })
	return out, nil
}

func (r *CodexLayerRepository) GetByID(ctx context.Context, id string) (*model.CodexLayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *CodexLayerRepository) GetByNumber(ctx context.Context, layerNumber int) (*model.CodexLayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.rows[id].LayerNumber == layerNumber {
			row := r.rows[id]
			return &row, nil
		}
	}
	return nil, nil
}
