package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here so handlers can
// map them to HTTP statuses in one place.

// ===== User Errors =====
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUsernameTaken    = errors.New("username already exists")
)

// ===== Seed Errors =====
var (
	ErrSeedSourceUnavailable = errors.New("seed source unavailable")
)

// ===== IPFS Errors =====
var (
	ErrIPFSNotConfigured = errors.New("IPFS API key not configured")
	ErrIPFSUpload        = errors.New("failed to upload to IPFS")
)
