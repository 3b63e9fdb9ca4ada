// Package logger provides structured logging for leaguefetch.
//
// It wraps zerolog behind a small Logger interface so that components can
// attach fields without depending on zerolog directly, and so tests can swap
// in a TestLogger that records every message.
//
// Basic Usage:
//
//	err := logger.Initialize(&cfg.Logging)
//
//	logger.Info("Run started")
//	logger.WithField("id", 42).Debug("Image downloaded")
//	logger.WithError(err).Error("Archive failed")
//
// Console output goes to stderr and is colourised only when stderr is a
// terminal. When Logging.File is set, JSON lines are appended to that file as
// well. Every entry carries the app name and a per-process run_id.
package logger
