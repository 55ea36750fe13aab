// Package middleware provides HTTP middleware for the Activities API.
//
// The middleware package contains reusable components for request
// identification, logging, panic recovery, CORS, rate limiting, idempotent
// replay, and response compression.
//
// # Available Middleware
//
//   - RequestID: tags each request with a unique identifier
//   - Logger: structured request logging via slog
//   - Recovery: converts panics into 500 Problem Details responses
//   - CORS: origin allow-listing with preflight handling
//   - RateLimit: token-bucket limiting keyed by client address
//   - Idempotency: replays cached responses for repeated POSTs carrying an
//     Idempotency-Key header
//   - Compress: gzip response compression
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): returns the unique request identifier
//
// Since the API has no authenticated principal, rate limiting and
// idempotency are keyed by the client's remote address.
package middleware
