// Package httpserver runs an http.Handler with graceful shutdown and serves
// health probes.
//
// Run blocks until its context is canceled or SIGINT/SIGTERM arrives, then
// drains in-flight requests within Config.ShutdownTimeout and runs the stop
// hooks, which is where session store connections get closed.
//
//	srv := httpserver.New(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func(context.Context) { _ = store.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
package httpserver
