// Package pnplog is a plug-and-play logging facade over rs/zerolog.
//
// One Logger exists per process. It writes colorized lines to the console
// and, when a log directory is configured, to per-severity files that roll
// over daily (plain text and, optionally, JSON).
//
// Key features
//   - Sensible defaults: New(nil) gives an info-level colorized console logger
//   - Per-severity files under <logDir>/{debug,info,warn,error}/
//     named log_<DATE>_plain.log and log_<DATE>_json.log
//   - Human-readable sinks prefix the level with "YYYY-MM-DD HH:MM:SS - "
//   - LEVEL and SILENT environment overrides, resolved once by ConfigFromEnv
//   - Structured events via InfoWith() etc. with error-chain enrichment
//
// Typical usage
//
//	cfg, err := pnplog.ConfigFromEnv()
//	if err != nil { panic(err) }
//	cfg.LogDir = "/var/log/myapp"
//	log, err := pnplog.New(&cfg)
//	if err != nil { panic(err) }
//	defer log.Close()
//
//	log.Info("listening", pnplog.Fields{"port": 8080})
//	log.ErrorWith().Err(err).Msg("request failed")
//
// A second call to New returns *DuplicateInstanceError; use Instance() to
// reach the logger from code that did not construct it.
package pnplog
