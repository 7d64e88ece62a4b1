// Package logger builds slog loggers with functional options and injects
// request-scoped values from context.Context into every record.
//
// New picks a text or JSON handler and wraps it in a ContextHandler that runs
// the registered ContextExtractor callbacks per record. Config maps APP_ENV,
// SERVICE_NAME, LOG_LEVEL and LOG_FORMAT onto the same options so a binary can
// configure logging from the environment.
//
// Helper constructors in attr.go (Error, Component, SessionName, Backend,
// RequestID, ...) keep attribute keys consistent across packages.
//
// # Usage
//
//	log := logger.New(
//		logger.WithDevelopment("sessions-demo"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "session fetch failed",
//		logger.SessionName("cart"),
//		logger.Error(err),
//	)
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so they can be passed without a nil check.
package logger
