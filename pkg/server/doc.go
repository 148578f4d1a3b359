// Package server provides the HTTP server for the Inkwell API.
//
// This package implements the core HTTP server that handles all Inkwell
// REST API requests. It uses gorilla/mux for routing and provides
// middleware for authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, "0.0.0.0", "8000")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - POST /folders/{kind}/{identifier}/ownership - ownership cascade
//   - GET /folders/{kind}/{identifier} - folder subtree summary
//   - GET /status - server status
package server
