// Package httpserver wraps http.Server with graceful shutdown, env-driven
// configuration and structured logging.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, an interrupt signal arrives, or
// the listener fails, and then shuts down gracefully within the configured
// shutdown timeout.
package httpserver
