package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// ImageAuditRepository stores the ENFT image audit ledger. Listings come
// back sorted by density score, highest first; file name lookups are
// case-insensitive.
type ImageAuditRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.ImageAudit
	order []string
}

func NewImageAuditRepository() *ImageAuditRepository {
	r := &ImageAuditRepository{rows: make(map[string]model.ImageAudit)}
	for _, a := range auditFixtures {
		a.ID = uuid.NewString()
		r.rows[a.ID] = a
		r.order = append(r.order, a.ID)
	}
	return r
}

func density(a *model.ImageAudit) float64 {
	f, _ := strconv.ParseFloat(a.DensityScore, 64)
	return f
}

func (r *ImageAuditRepository) GetAll(ctx context.Context) ([]*model.ImageAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ImageAudit, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return density(out[i]) > density(out[j]) })
	return out, nil
}

func (r *ImageAuditRepository) GetByID(ctx context.Context, id string) (*model.ImageAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

func (r *ImageAuditRepository) GetByFileName(ctx context.Context, fileName string) (*model.ImageAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].FileName, fileName) {
			row := r.rows[id]
			return &row, nil
		}
	}
	return nil, nil
}

// GetByMinDensity returns audits scoring at or above minScore, highest
// first.
func (r *ImageAuditRepository) GetByMinDensity(ctx context.Context, minScore float64) ([]*model.ImageAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ImageAudit, 0)
	for _, id := range r.order {
		row := r.rows[id]
		if density(&row) >= minScore {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return density(out[i]) > density(out[j]) })
	return out, nil
}
