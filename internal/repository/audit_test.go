package repository

import (
	"context"
	"strconv"
	"testing"
)

func TestImageAuditRepository_GetAll_SortedByDensityDesc(t *testing.T) {
	t.Parallel()

	repo := NewImageAuditRepository()

	audits, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(audits) != 5 {
		t.Fatalf("expected 5 audits, got %d", len(audits))
	}

	for i := 1; i < len(audits); i++ {
		prev, _ := strconv.ParseFloat(audits[i-1].DensityScore, 64)
		cur, _ := strconv.ParseFloat(audits[i].DensityScore, 64)
		if cur > prev {
			t.Errorf("audits out of order at %d: %s before %s", i, audits[i-1].DensityScore, audits[i].DensityScore)
		}
	}
	if audits[0].DensityScore != "0.475" {
		t.Errorf("expected densest audit first, got score %s", audits[0].DensityScore)
	}
}

func TestImageAuditRepository_GetByFileName_CaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewImageAuditRepository()

	audit, err := repo.GetByFileName(context.Background(), "0fb58f40-2606-4228-a7d0-217d2b2e77ea.jpeg")
	if err != nil {
		t.Fatalf("GetByFileName failed: %v", err)
	}
	if audit == nil {
		t.Fatal("expected case-insensitive file name match")
	}
	if audit.EnftTokenID != "ENFT-001" {
		t.Errorf("expected ENFT-001, got %q", audit.EnftTokenID)
	}

	miss, err := repo.GetByFileName(context.Background(), "missing.jpeg")
	if err != nil {
		t.Fatalf("GetByFileName failed: %v", err)
	}
	if miss != nil {
		t.Error("expected nil for unknown file name")
	}
}

func TestImageAuditRepository_GetByMinDensity(t *testing.T) {
	t.Parallel()

	repo := NewImageAuditRepository()

	audits, err := repo.GetByMinDensity(context.Background(), 0.25)
	if err != nil {
		t.Fatalf("GetByMinDensity failed: %v", err)
	}
	if len(audits) != 3 {
		t.Errorf("expected 3 audits at density >= 0.25, got %d", len(audits))
	}

	none, err := repo.GetByMinDensity(context.Background(), 0.9)
	if err != nil {
		t.Fatalf("GetByMinDensity failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no audits at density >= 0.9, got %d", len(none))
	}
}
