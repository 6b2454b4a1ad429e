package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/evolverse/api/internal/model"
)

// StoryChapterRepository stores the story mode narrative. Listings come
// back ordered by chapter number regardless of insertion order.
type StoryChapterRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.StoryChapter
	order []string
}

func NewStoryChapterRepository() *StoryChapterRepository {
	r := &StoryChapterRepository{rows: make(map[string]model.StoryChapter)}
	for _, c := range chapterFixtures {
		c.ID = uuid.NewString()
		r.rows[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

func (r *StoryChapterRepository) GetAll(ctx context.Context) ([]*model.StoryChapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.StoryChapter, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ChapterNumber < out[j].ChapterNumber })
	return out, nil
}

func (r *StoryChapterRepository) GetByID(ctx context.Context, id string) (*model.StoryChapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// EvolversSceneRepository stores the screenplay scene table. The table has
// no seed content yet; listings come back ordered by scene number.
type EvolversSceneRepository struct {
	mu    sync.RWMutex
	rows  map[string]model.EvolversScene
	order []string
}

func NewEvolversSceneRepository() *EvolversSceneRepository {
	return &EvolversSceneRepository{rows: make(map[string]model.EvolversScene)}
}

func (r *EvolversSceneRepository) GetAll(ctx context.Context) ([]*model.EvolversScene, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.EvolversScene, 0, len(r.order))
	for _, id := range r.order {
		row := r.rows[id]
		out = append(out, &row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SceneNumber < out[j].SceneNumber })
	return out, nil
}

// GetByAct matches the act label case-insensitively.
func (r *EvolversSceneRepository) GetByAct(ctx context.Context, act string) ([]*model.EvolversScene, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.EvolversScene, 0)
	for _, id := range r.order {
		if strings.EqualFold(r.rows[id].Act, act) {
			row := r.rows[id]
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SceneNumber < out[j].SceneNumber })
	return out, nil
}
