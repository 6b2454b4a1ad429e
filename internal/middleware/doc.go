// Package middleware provides HTTP middleware for the treasury API.
//
// The middleware package contains reusable components for request
// processing: request identification, structured request logging, panic
// recovery, CORS, and gzip compression.
//
// # Available Middleware
//
//   - RequestID: Attaches a UUID to each request (honoring X-Request-ID)
//   - Logger: Structured request logging via log/slog
//   - Recovery: Recovers panics and returns a JSON 500
//   - CORS: Origin allow-listing with preflight handling
//   - Compress: gzip response compression
//
// # Composition
//
// Middleware is composed with Chain, which applies wrappers in order:
//
//	handler := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//		middleware.CORS(cfg.Server.CORSAllowedOrigins),
//	)
//
// # Context Values
//
// RequestID stores the request identifier in the request context;
// GetRequestID(ctx) retrieves it for log correlation.
package middleware
