package repository

import (
	"context"
	"testing"
)

func TestWarActorRepository_Seeded(t *testing.T) {
	t.Parallel()

	repo := NewWarActorRepository()

	all, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("expected 6 war actors, got %d", len(all))
	}
}

func TestWarActorRepository_GetByCodename_CaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewWarActorRepository()

	actor, err := repo.GetByCodename(context.Background(), "evolynn")
	if err != nil {
		t.Fatalf("GetByCodename failed: %v", err)
	}
	if actor == nil {
		t.Fatal("expected case-insensitive codename match")
	}
	if actor.Codename != "EVOLYNN" {
		t.Errorf("expected codename 'EVOLYNN', got %q", actor.Codename)
	}

	miss, err := repo.GetByCodename(context.Background(), "UNKNOWN")
	if err != nil {
		t.Fatalf("GetByCodename failed: %v", err)
	}
	if miss != nil {
		t.Error("expected nil for unknown codename")
	}
}
