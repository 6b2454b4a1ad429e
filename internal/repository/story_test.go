package repository

import (
	"context"
	"testing"
)

func TestStoryChapterRepository_GetAll_SortedByChapterNumber(t *testing.T) {
	t.Parallel()

	repo := NewStoryChapterRepository()

	chapters, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(chapters) != 13 {
		t.Fatalf("expected 13 chapters, got %d", len(chapters))
	}
	for i, ch := range chapters {
		if ch.ChapterNumber != i+1 {
			t.Errorf("position %d: expected chapter %d, got %d", i, i+1, ch.ChapterNumber)
		}
	}
}

func TestEvolversSceneRepository_StartsEmpty(t *testing.T) {
	t.Parallel()

	repo := NewEvolversSceneRepository()

	scenes, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("expected no seeded scenes, got %d", len(scenes))
	}

	byAct, err := repo.GetByAct(context.Background(), "Act I")
	if err != nil {
		t.Fatalf("GetByAct failed: %v", err)
	}
	if len(byAct) != 0 {
		t.Errorf("expected empty act filter, got %d", len(byAct))
	}
}
