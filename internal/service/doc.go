// Package service implements the business logic layer for the treasury API.
//
// The service package contains domain logic, validation rules, and
// orchestration of repository operations. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from the in-memory store implementation
//   - Clear contracts for data access requirements
//
// # Error Handling
//
// Services return domain-specific errors defined in errors.go:
//
//	var (
//	    ErrUsernameTaken     = errors.New("username already exists")
//	    ErrIPFSNotConfigured = errors.New("ipfs service not configured")
//	)
//
// Handlers map these onto HTTP status codes with errors.Is.
package service
