// Package handler provides HTTP request handlers for the Activities API.
//
// The handler package contains all HTTP endpoint implementations. Each
// handler struct encapsulates the dependencies needed to serve requests for
// a specific feature area.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Success bodies are written unwrapped: the activity listing is a JSON
// object keyed by activity name, and signup/unregister confirmations are a
// bare {"message": ...} object. Errors go through WriteError as Problem
// Details; their detail field carries the caller-facing message.
//
// # Example Usage
//
//	handler := NewActivityHandler(activityService)
//	handler.RegisterRoutes(mux)
package handler
