// Package server holds the HTTP server configuration.
//
// The serve command handles the server startup; this package only defines
// the configuration structure for its settings.
//
// # Configuration
//
// The Config struct defines the HTTP port and the Cache-Control max-age
// applied to catalog responses.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the catalog handler for response caching.
package server
