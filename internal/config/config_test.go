package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Assets: AssetsConfig{
			Dir:         "./attached_assets",
			DomainsFile: "overscale_matrix_full.csv",
			SocietyFile: "hidden_societies_chart.csv",
		},
		IPFS: IPFSConfig{
			Endpoint: "https://api.nft.storage",
			Timeout:  30 * time.Second,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_EmptyAllowedOrigins(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.AllowedOrigins = []string{}

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for empty CORS_ALLOWED_ORIGINS")
	}
	if !strings.Contains(err.Error(), "CORS_ALLOWED_ORIGINS") {
		t.Errorf("expected error to mention CORS_ALLOWED_ORIGINS, got: %v", err)
	}
}

func TestConfig_Validate_MissingAssetsDir(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Assets.Dir = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing ASSETS_DIR")
	}
	if !strings.Contains(err.Error(), "ASSETS_DIR") {
		t.Errorf("expected error to mention ASSETS_DIR, got: %v", err)
	}
}

func TestConfig_Validate_MissingSeedFiles(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Assets.DomainsFile = ""
	cfg.Assets.SocietyFile = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing seed file names")
	}
	if !strings.Contains(err.Error(), "ASSETS_DOMAINS_FILE") {
		t.Errorf("expected error to mention ASSETS_DOMAINS_FILE, got: %v", err)
	}
	if !strings.Contains(err.Error(), "ASSETS_SOCIETIES_FILE") {
		t.Errorf("expected error to mention ASSETS_SOCIETIES_FILE, got: %v", err)
	}
}

func TestConfig_Validate_MissingIPFSEndpoint(t *testing.T) {
	cfg := validBaseConfig()
	cfg.IPFS.Endpoint = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing NFT_STORAGE_ENDPOINT")
	}
	if !strings.Contains(err.Error(), "NFT_STORAGE_ENDPOINT") {
		t.Errorf("expected error to mention NFT_STORAGE_ENDPOINT, got: %v", err)
	}
}

func TestConfig_Validate_NonPositiveIPFSTimeout(t *testing.T) {
	cfg := validBaseConfig()
	cfg.IPFS.Timeout = 0

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for zero NFT_STORAGE_TIMEOUT")
	}
	if !strings.Contains(err.Error(), "NFT_STORAGE_TIMEOUT") {
		t.Errorf("expected error to mention NFT_STORAGE_TIMEOUT, got: %v", err)
	}
}

func TestConfig_Validate_MultipleErrors_JoinsAll(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""
	cfg.Assets.Dir = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple invalid fields")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
	if !strings.Contains(err.Error(), "ASSETS_DIR") {
		t.Errorf("expected error to mention ASSETS_DIR, got: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port '8080', got %q", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default read timeout 15s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Assets.DomainsFile != "overscale_matrix_full.csv" {
		t.Errorf("unexpected default domains file: %q", cfg.Assets.DomainsFile)
	}
	if cfg.Assets.SocietyFile != "hidden_societies_chart.csv" {
		t.Errorf("unexpected default societies file: %q", cfg.Assets.SocietyFile)
	}
	if cfg.IPFS.Endpoint != "https://api.nft.storage" {
		t.Errorf("unexpected default IPFS endpoint: %q", cfg.IPFS.Endpoint)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("ASSETS_DIR", "/srv/assets")
	t.Setenv("NFT_STORAGE_API_KEY", "test-key")
	t.Setenv("NFT_STORAGE_TIMEOUT", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port '9090', got %q", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %d", len(cfg.Server.AllowedOrigins))
	}
	if cfg.Assets.Dir != "/srv/assets" {
		t.Errorf("expected assets dir '/srv/assets', got %q", cfg.Assets.Dir)
	}
	if cfg.IPFS.APIKey != "test-key" {
		t.Errorf("expected API key 'test-key', got %q", cfg.IPFS.APIKey)
	}
	if cfg.IPFS.Timeout != 45*time.Second {
		t.Errorf("expected timeout 45s, got %v", cfg.IPFS.Timeout)
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	cfg := validBaseConfig()

	if !cfg.IsDevelopment() {
		t.Error("expected development mode")
	}
	if cfg.IsProduction() {
		t.Error("did not expect production mode")
	}
}
