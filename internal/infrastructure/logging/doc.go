// Package logging provides structured logging for the smart house.
//
// This package wraps Go's standard log/slog package so every component logs
// the same way.
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr, discard
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	registry.SetLogger(logger.Component("registry"))
//	logger.Info("house seeded", "rooms", 3)
//
// *Logger satisfies the Logger interfaces of the device and house packages.
package logging
