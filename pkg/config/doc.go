// Package config provides configuration management for Inkwell.
//
// This package handles loading and validating Inkwell server configuration
// from environment variables and configuration files.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - Configuration files (optional)
//
// # Key Configuration Options
//
//   - INKWELL_SETTLE_DELAY_MS: Cascade settle delay
//   - INKWELL_TOKEN_SECRET: API token signing secret
//   - INKWELL_LOG_LEVEL: Logging verbosity
//   - DATABASE_URL: Database connection
//   - PORT: Server listen port
package config
