// Package logger provides structured logging based on Zap.
//
// New builds a JSON (production) or console (development) logger from Config.
// NewCLI is the console preset used by one-shot commands.
//
// # Context Awareness
//
// WithRayID attaches the request's ray ID to a logger so every line logged while
// serving a request can be correlated. Middleware logs one line per request.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Reconciliation failed", zap.Error(err))
package logger
