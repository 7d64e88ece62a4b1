package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/sessionkit/internal/demo"
	"github.com/dmitrymomot/sessionkit/pkg/backend"
	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/httpserver"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/requestid"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

type appConfig struct {
	Log     logger.Config     `yaml:"log"`
	HTTP    httpserver.Config `yaml:"http"`
	Backend backend.Config    `yaml:"backend"`
	Session session.Config    `envPrefix:"SESSION_" yaml:"session"`
	Cart    session.Config    `envPrefix:"CART_" yaml:"cart"`
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file; environment is used when empty")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		slog.Error("sessiond stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	var cfg appConfig
	if configPath != "" {
		if err := config.LoadFile(configPath, &cfg); err != nil {
			return err
		}
	} else if err := config.Load(&cfg); err != nil {
		return err
	}

	opts, err := cfg.Log.Options()
	if err != nil {
		return err
	}
	log := logger.New(append(opts,
		logger.WithContextExtractors(requestid.LogExtractor()),
	)...)
	logger.SetAsDefault(log)

	store, err := backend.Open(ctx, cfg.Backend, log)
	if err != nil {
		return err
	}
	go store.Run(ctx)

	primary := session.NewFromConfig(cfg.Session,
		session.WithStore(store.Store),
		session.WithLogger(log),
	)
	cart := session.NewFromConfig(demo.CartConfig(cfg.Cart),
		session.WithStore(store.Store),
		session.WithLogger(log),
	)

	srv := httpserver.New(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(func(ctx context.Context) {
			if err := store.Close(); err != nil {
				log.ErrorContext(ctx, "failed to close session store", logger.Error(err))
			}
		}),
	)

	return srv.Run(ctx, demo.NewRouter(store, log, primary, cart))
}
