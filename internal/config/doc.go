// Package config manages application configuration for the Activities API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Environment Variables
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	SERVER_READ_TIMEOUT   - request read timeout (default: 15s)
//	SERVER_WRITE_TIMEOUT  - response write timeout (default: 15s)
//	CORS_ALLOWED_ORIGINS  - comma-separated origin allow-list
//	RATE_LIMIT_RPM        - requests per minute per client (default: 100)
//	RATE_LIMIT_BURST      - extra burst allowance (default: 20)
//
// Sensible defaults are provided for development; Validate reports every
// problem at once via errors.Join.
package config
