// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package defines the
// configuration structure (port, API key, upload size limit) embedded by core/config.
package server
