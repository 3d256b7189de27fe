// Package logger provides slog attribute helpers with consistent keys.
//
// All helpers return an empty slog.Attr for zero-value inputs (nil errors,
// empty IDs), so call sites never need nil checks:
//
//	log.Info("profile fetched",
//		logger.Component("authapi"),
//		logger.StatusCode(resp.StatusCode),
//		logger.Error(err), // safe when err is nil
//	)
package logger
