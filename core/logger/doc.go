// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with both the CLI pipeline and
// the Fiber catalog server.
//
// # Correlation
//
// Two helpers attach correlation ids to log entries. WithRunID stamps every
// entry of one sync or compare run with a shared id. WithRayID extracts the
// per-request ray id from a Fiber context, ensuring that all logs related to
// a specific request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (interactive runs)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Sync started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
