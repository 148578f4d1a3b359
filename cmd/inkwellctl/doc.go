// Package main provides inkwellctl, the CLI for the Inkwell document vault.
//
// Inkwell is a self-hosted document vault for tabletop campaigns. Documents
// live in folders of a uniform kind (journals, handouts, scenes), and an
// ownership change on a folder cascades to every document in its subtree.
//
// # Quick Start
//
//	# Generate a token secret for API authentication
//	export INKWELL_TOKEN_SECRET=$(head -c 32 /dev/urandom | base64)
//
//	# Run database migrations
//	inkwellctl db migrate
//
//	# Start the server
//	inkwellctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - AUDIT_DATABASE_URL: optional separate database for audit messages
//   - INKWELL_TOKEN_SECRET: HMAC secret for API tokens
//   - INKWELL_CONFIG_PATH: config directory (default /etc/inkwell/config)
//   - INKWELL_LOG_LEVEL: log level (debug enables SQL logging)
//   - INKWELL_AUDIT_ENABLED: set to "false" to disable audit logging
//   - PORT: server port (default: 8000)
package main
