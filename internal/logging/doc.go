// Package logging provides structured logging for the flochat wizard.
//
// This package wraps a global zap logger with convenience functions for the
// events the wizard cares about: configuration edits, preview server traffic,
// and clipboard writes.
//
// # Log Levels
//
//   - Debug: Configuration edits, WebSocket frames, picker cancellations
//   - Info: Preview server requests and connections
//   - Warn: Clipboard and colour picker failures
//   - Error: Startup failures
//
// # Configuration
//
// Logging is silent unless a level is given or FLOCHAT_LOG_LEVEL is set:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// While the interactive wizard owns the terminal, log to a file instead:
//
//	logging.InitializeTo("debug", "/tmp/flochat-wizard.log")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
