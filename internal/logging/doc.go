// Package logging provides structured logging for plugscan.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used during network scans. It provides both general logging
// functions and specialized functions for scan-specific events.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (probe results, parser output sizes)
//   - Info: Normal operations (scan start/progress/completion, devices found)
//   - Warn: Non-fatal issues (neighbor table unavailable, range fallback)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Device discovered",
//	    zap.String("ip", "192.168.1.50"),
//	    zap.String("vendor", "Tuya"),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// CLI commands normally call InitializeFromEnv, which reads the
// PLUGSCAN_LOG_LEVEL environment variable and stays silent when it is
// unset so interactive output remains clean.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
