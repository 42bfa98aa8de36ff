// Package logger provides structured logging for the food image scraper.
//
// It wraps zerolog behind a small Logger interface so packages can log with
// contextual fields without depending on a concrete implementation. Console
// output is pretty-printed for interactive runs; when a log file is
// configured, output also goes to a lumberjack-rotated file.
//
// Usage:
//
//	logger.Initialize(&cfg.Logging)
//	log := logger.GetLogger()
//
//	log.InfoWithFields("category complete", map[string]interface{}{
//	    "category":   "mohinga",
//	    "downloaded": 27,
//	})
package logger
