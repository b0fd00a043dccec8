// Package logger builds the process-wide slog logger for the session daemon.
// Level and format come from the environment via Config; New accepts options
// for call-site overrides.
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//
//	log := logger.NewFromConfig(cfg)
//	log.Info("sessiond starting")
package logger
