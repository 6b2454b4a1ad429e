package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// ShowcaseProductRepository stores the physical product showcase. Category
// filtering is a case-insensitive exact match.
type ShowcaseProductRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.ShowcaseProduct
	order []string
}

func NewShowcaseProductRepository() *ShowcaseProductRepository {
	r := &ShowcaseProductRepository{rows: make(map[string]model.ShowcaseProduct)}
	for _, p := range showcaseFixtures {
		p.ID = uuid.NewString()
		r.rows[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *ShowcaseProductRepository) GetAll(ctx context.Context) ([]*model.ShowcaseProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ShowcaseProduct, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *ShowcaseProductRepository) GetByID(ctx context.Context, id string) (*model.ShowcaseProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *ShowcaseProductRepository) GetByCategory(ctx context.Context, category string) ([]*model.ShowcaseProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ShowcaseProduct, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].Category, category) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}

// StudioProjectRepository stores the studio production slate. Type and
// status filters are case-insensitive exact matches.
type StudioProjectRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.StudioProject
	order []string
}

func NewStudioProjectRepository() *StudioProjectRepository {
	r := &StudioProjectRepository{rows: make(map[string]model.StudioProject)}
	for _, p := range studioFixtures {
		p.ID = uuid.NewString()
		r.rows[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *StudioProjectRepository) GetAll(ctx context.Context) ([]*model.StudioProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.StudioProject, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	return out, nil
}

func (r *StudioProjectRepository) GetByID(ctx context.Context, id string) (*model.StudioProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *StudioProjectRepository) GetByType(ctx context.Context, projectType string) ([]*model.StudioProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.StudioProject, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].ProjectType, projectType) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}

func (r *StudioProjectRepository) GetByStatus(ctx context.Context, status string) ([]*model.StudioProject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.StudioProject, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].Status, status) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	return out, nil
}
