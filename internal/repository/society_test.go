package repository

import (
	"context"
	"testing"

	"github.com/evolverse/api/internal/model"
)

func TestHiddenSocietyRepository_Seeded(t *testing.T) {
	t.Parallel()

	repo := NewHiddenSocietyRepository()

	all, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 24 {
		t.Errorf("expected 24 seeded societies, got %d", len(all))
	}
	for _, s := range all {
		if s.ID == "" {
			t.Error("seeded society missing ID")
		}
	}
}

func TestHiddenSocietyRepository_GetByName_CaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewHiddenSocietyRepository()

	got, err := repo.GetByName(context.Background(), "freemasons")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected case-insensitive match for 'freemasons'")
	}
	if got.Name != "Freemasons" {
		t.Errorf("expected name 'Freemasons', got %q", got.Name)
	}
	if got.Status != "Active" {
		t.Errorf("expected status 'Active', got %q", got.Status)
	}
}

func TestHiddenSocietyRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	repo := NewHiddenSocietyRepository()

	target, err := repo.GetByName(context.Background(), "Thule Society")
	if err != nil || target == nil {
		t.Fatalf("fixture lookup failed: %v", err)
	}

	updated, err := repo.UpdateStatus(context.Background(), target.ID, model.SocietyStatusCoreActivated)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != model.SocietyStatusCoreActivated {
		t.Errorf("expected updated status, got %q", updated.Status)
	}

	// Persisted, not just returned
	reread, err := repo.GetByID(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if reread.Status != model.SocietyStatusCoreActivated {
		t.Errorf("status not persisted, got %q", reread.Status)
	}
}

func TestHiddenSocietyRepository_UpdateStatus_Absent(t *testing.T) {
	t.Parallel()

	repo := NewHiddenSocietyRepository()

	updated, err := repo.UpdateStatus(context.Background(), "no-such-id", model.SocietyStatusActive)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated != nil {
		t.Error("expected nil for absent society")
	}
}

func TestHiddenSocietyRepository_Create_Appends(t *testing.T) {
	t.Parallel()

	repo := NewHiddenSocietyRepository()

	society := &model.HiddenSociety{
		Name:        "Order of the Azure Flame",
		Symbol:      "🔥",
		Status:      model.SocietyStatusDormant,
		AccessLevel: "High",
	}
	if err := repo.Create(context.Background(), society); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if society.ID == "" {
		t.Error("expected Create to assign an ID")
	}

	all, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 25 {
		t.Errorf("expected 25 societies after create, got %d", len(all))
	}
	if all[len(all)-1].Name != "Order of the Azure Flame" {
		t.Errorf("expected new society last in order, got %q", all[len(all)-1].Name)
	}
}
