package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
)

func writeAsset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing asset: %v", err)
	}
}

func newSeedFixture(t *testing.T) (*SeedService, *repository.OverscaleDomainRepository, *repository.HiddenSocietyRepository, string) {
	t.Helper()
	dir := t.TempDir()
	domainRepo := repository.NewOverscaleDomainRepository()
	societyRepo := repository.NewHiddenSocietyRepository()
	svc := NewSeedService(SeedServiceConfig{
		DomainRepo:  domainRepo,
		SocietyRepo: societyRepo,
		AssetsDir:   dir,
		DomainsFile: "domains.csv",
		SocietyFile: "societies.csv",
	})
	return svc, domainRepo, societyRepo, dir
}

const domainsHeader = "Domain,Owner/Founder,Incumbent Strength,EV0L Attack Surface,Hardball Move,Coin Flow,Vault,Guard,Metric Lift\n"

func TestSeedService_SeedOverscaleDomains(t *testing.T) {
	svc, domainRepo, _, dir := newSeedFixture(t)

	writeAsset(t, dir, "domains.csv", domainsHeader+
		"Music,Universal,High,Sonic rights reclaim,Buy the masters,HydroCoin,Witness,EVOLYNN,3x\n"+
		`"Film, TV & Streaming",Disney,High,Narrative control,Fund rival studios,E.COIN,Branch,DR. SOSA,4x`+"\n")

	result, err := svc.SeedOverscaleDomains(context.Background())
	if err != nil {
		t.Fatalf("SeedOverscaleDomains failed: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("expected 2 created, got %d", result.Created)
	}
	if result.Skipped != 0 {
		t.Errorf("expected 0 skipped, got %d", result.Skipped)
	}

	domains, err := domainRepo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(domains) != 2 {
		t.Fatalf("expected 2 stored domains, got %d", len(domains))
	}
	// Quoted field with embedded comma survives parsing intact
	if domains[1].Domain != "Film, TV & Streaming" {
		t.Errorf("expected quoted domain name, got %q", domains[1].Domain)
	}
	if domains[0].MetricLift != "3x" {
		t.Errorf("expected metric lift '3x', got %q", domains[0].MetricLift)
	}
}

func TestSeedService_SeedOverscaleDomains_SkipsMalformedRows(t *testing.T) {
	svc, domainRepo, _, dir := newSeedFixture(t)

	writeAsset(t, dir, "domains.csv", domainsHeader+
		"Music,Universal,High,Sonic rights reclaim,Buy the masters,HydroCoin,Witness,EVOLYNN,3x\n"+
		"Short,Row\n"+
		"Fashion,LVMH,Medium,Textile codes,Own the supply,E.COIN,Frozen,PHIYAH,2x\n")

	result, err := svc.SeedOverscaleDomains(context.Background())
	if err != nil {
		t.Fatalf("SeedOverscaleDomains failed: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("expected 2 created, got %d", result.Created)
	}
	if result.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", result.Skipped)
	}

	domains, _ := domainRepo.GetAll(context.Background())
	if len(domains) != 2 {
		t.Errorf("malformed row must not be stored, got %d domains", len(domains))
	}
}

func TestSeedService_SeedOverscaleDomains_MissingFile(t *testing.T) {
	svc, _, _, _ := newSeedFixture(t)

	_, err := svc.SeedOverscaleDomains(context.Background())
	if !errors.Is(err, ErrSeedSourceUnavailable) {
		t.Errorf("expected ErrSeedSourceUnavailable, got %v", err)
	}
}

func TestSeedService_SeedHiddenSocieties_Persists(t *testing.T) {
	svc, _, societyRepo, dir := newSeedFixture(t)

	writeAsset(t, dir, "societies.csv", "Name,Symbol,Status,Access Level\n"+
		"The Quiet Table,🪑,Dormant,High\n"+
		"Tiny\n"+
		"Order of Glass,🔮,Active,Medium\n")

	before, _ := societyRepo.GetAll(context.Background())

	result, err := svc.SeedHiddenSocieties(context.Background())
	if err != nil {
		t.Fatalf("SeedHiddenSocieties failed: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("expected 2 created, got %d", result.Created)
	}
	if result.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", result.Skipped)
	}

	// Seeded rows land in the repository, not just the response
	after, err := societyRepo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(after) != len(before)+2 {
		t.Errorf("expected %d societies after seed, got %d", len(before)+2, len(after))
	}

	stored, err := societyRepo.GetByName(context.Background(), "Order of Glass")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if stored == nil {
		t.Fatal("seeded society not retrievable")
	}
	if stored.Status != model.SocietyStatusActive {
		t.Errorf("expected status 'Active', got %q", stored.Status)
	}
}

func TestSeedService_SeedHiddenSocieties_MissingFile(t *testing.T) {
	svc, _, _, _ := newSeedFixture(t)

	_, err := svc.SeedHiddenSocieties(context.Background())
	if !errors.Is(err, ErrSeedSourceUnavailable) {
		t.Errorf("expected ErrSeedSourceUnavailable, got %v", err)
	}
}
