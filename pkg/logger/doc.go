// Package logger builds configured slog.Logger instances with support for
// injecting request-scoped attributes from context.
//
// The factory supports JSON and text output, per-environment presets and
// static attributes. Context extractors run per log call through a handler
// decorator, so values like the request ID or the negotiated locale land on
// every record without threading them through call sites:
//
//	log := logger.New(
//		logger.WithProduction("localekit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "locale switched")
package logger
