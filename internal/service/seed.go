package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/evolverse/api/internal/model"
)

// OverscaleDomainRepository defines the interface for matrix row storage.
type OverscaleDomainRepository interface {
	Create(ctx context.Context, domain *model.OverscaleDomain) error
}

// HiddenSocietyRepository defines the interface for society inserts.
type HiddenSocietyRepository interface {
	Create(ctx context.Context, society *model.HiddenSociety) error
}

// SeedResult reports the outcome of one bulk load.
type SeedResult struct {
	Created int
	Skipped int
}

// SeedService bulk-loads repository tables from the CSV assets shipped
// with the server. Files are read fully before any record is inserted, so
// repository locks are never held across file I/O.
type SeedService struct {
	domainRepo  OverscaleDomainRepository
	societyRepo HiddenSocietyRepository
	assetsDir   string
	domainsFile string
	societyFile string
}

// SeedServiceConfig holds configuration for the seed service.
type SeedServiceConfig struct {
	DomainRepo  OverscaleDomainRepository
	SocietyRepo HiddenSocietyRepository
	AssetsDir   string
	DomainsFile string
	SocietyFile string
}

// NewSeedService creates a new seed service.
func NewSeedService(cfg SeedServiceConfig) *SeedService {
	return &SeedService{
		domainRepo:  cfg.DomainRepo,
		societyRepo: cfg.SocietyRepo,
		assetsDir:   cfg.AssetsDir,
		domainsFile: cfg.DomainsFile,
		societyFile: cfg.SocietyFile,
	}
}

// readRecords parses the named CSV asset. Rows are allowed to vary in
// width; the caller decides which widths are usable. The first record is
// the header.
func (s *SeedService) readRecords(name string) (header []string, rows [][]string, err error) {
	path := filepath.Join(s.assetsDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrSeedSourceUnavailable, path, err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrSeedSourceUnavailable, path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%w: %s: empty file", ErrSeedSourceUnavailable, path)
	}
	return records[0], records[1:], nil
}

// SeedOverscaleDomains loads the overscale matrix CSV into the domain
// table. Rows whose column count does not match the header are skipped
// and counted, not fatal.
func (s *SeedService) SeedOverscaleDomains(ctx context.Context) (*SeedResult, error) {
	header, rows, err := s.readRecords(s.domainsFile)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{}
	for i, row := range rows {
		if len(row) != len(header) || len(row) < 9 {
			slog.Warn("skipping malformed matrix row",
				"file", s.domainsFile, "row", i+2, "columns", len(row), "expected", len(header))
			result.Skipped++
			continue
		}
		domain := &model.OverscaleDomain{
			Domain:            row[0],
			OwnerOrFounder:    row[1],
			IncumbentStrength: row[2],
			Ev0lAttackSurface: row[3],
			HardballMove:      row[4],
			CoinFlow:          row[5],
			Vault:             row[6],
			Guard:             row[7],
			MetricLift:        row[8],
		}
		if err := s.domainRepo.Create(ctx, domain); err != nil {
			return nil, err
		}
		result.Created++
	}
	return result, nil
}

// SeedHiddenSocieties loads the society chart CSV into the registry. Rows
// need at least the four name/symbol/status/access columns; anything
// narrower is skipped and counted.
func (s *SeedService) SeedHiddenSocieties(ctx context.Context) (*SeedResult, error) {
	_, rows, err := s.readRecords(s.societyFile)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{}
	for i, row := range rows {
		if len(row) < 4 {
			slog.Warn("skipping malformed society row",
				"file", s.societyFile, "row", i+2, "columns", len(row))
			result.Skipped++
			continue
		}
		society := &model.HiddenSociety{
			Name:        row[0],
			Symbol:      row[1],
			Status:      row[2],
			AccessLevel: row[3],
		}
		if err := s.societyRepo.Create(ctx, society); err != nil {
			return nil, err
		}
		result.Created++
	}
	return result, nil
}
