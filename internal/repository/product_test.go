package repository

import (
	"context"
	"testing"
)

func TestMarketProductRepository_GetBySector_SubstringMatch(t *testing.T) {
	t.Parallel()

	repo := NewMarketProductRepository()

	products, err := repo.GetBySector(context.Background(), "healing")
	if err != nil {
		t.Fatalf("GetBySector failed: %v", err)
	}
	if len(products) != 4 {
		t.Errorf("expected 4 healing-sector products, got %d", len(products))
	}
	for _, p := range products {
		if p.Sector != "Healing, Medicine & Biology" {
			t.Errorf("unexpected sector %q", p.Sector)
		}
	}
}

func TestMarketProductRepository_GetBySector_NoMatch(t *testing.T) {
	t.Parallel()

	repo := NewMarketProductRepository()

	products, err := repo.GetBySector(context.Background(), "quantum warfare")
	if err != nil {
		t.Fatalf("GetBySector failed: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty slice for unmatched sector, got %d", len(products))
	}
}

func TestMarketProductRepository_GetAll(t *testing.T) {
	t.Parallel()

	repo := NewMarketProductRepository()

	all, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 10 {
		t.Errorf("expected 10 market products, got %d", len(all))
	}
}
