// Package config manages application configuration for the treasury API.
//
// The config package loads and validates configuration from environment
// variables via caarlos0/env. All configuration is centralized here to
// provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// Load never fails on missing optional values; Validate reports every
// problem at once via errors.Join.
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - AssetsConfig: Location of the CSV seed files
//   - IPFSConfig: NFT.Storage upload settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT            - HTTP server port (default: 8080)
//	SERVER_ENV             - development, production, or test
//	CORS_ALLOWED_ORIGINS   - Comma-separated origin allow list
//	ASSETS_DIR             - Directory holding the seed CSVs
//	NFT_STORAGE_API_KEY    - NFT.Storage key; uploads are disabled without it
//	NFT_STORAGE_ENDPOINT   - NFT.Storage API base URL
//	NFT_STORAGE_TIMEOUT    - Upload HTTP client timeout
package config
