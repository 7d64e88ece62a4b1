// Package requestid tags every request with a correlation id.
//
// Middleware takes the X-Request-ID header when it is 1 to 128 characters of
// [A-Za-z0-9_-] and otherwise generates a UUID. The id is stored in the
// request context, echoed in the response header, and added to log records
// through LogExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LogExtractor()))
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
