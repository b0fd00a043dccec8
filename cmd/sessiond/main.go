// Command sessiond serves the session lifecycle operations over HTTP for the
// desktop host's embedded web clients. The store backend is selected by
// configuration; account sessions are registered by the embedding host at
// browsing-context initialization.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.etcd.io/bbolt"

	"github.com/zhhb/electronmail/pkg/config"
	"github.com/zhhb/electronmail/pkg/httpapi"
	"github.com/zhhb/electronmail/pkg/logger"
	"github.com/zhhb/electronmail/pkg/pg"
	"github.com/zhhb/electronmail/pkg/redis"
	"github.com/zhhb/electronmail/pkg/session"
)

type serverConfig struct {
	Addr            string        `env:"SESSIOND_ADDR" envDefault:":8089"`
	ShutdownTimeout time.Duration `env:"SESSIOND_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// StoreBackend selects the saved-session store: memory, bolt, redis or postgres
	StoreBackend string `env:"SESSIOND_STORE" envDefault:"bolt"`
	BoltPath     string `env:"SESSIOND_BOLT_PATH" envDefault:"sessions.db"`
}

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg)

	if err := run(log); err != nil {
		log.Error("sessiond failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var srvCfg serverConfig
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	var sessCfg session.Config
	if err := config.Load(&sessCfg); err != nil {
		return err
	}

	store, closeStore, err := openStore(ctx, srvCfg)
	if err != nil {
		return err
	}
	defer closeStore()

	manager := session.NewFromConfig(sessCfg,
		session.WithStore(store),
		session.WithRegistry(session.NewMemoryRegistry()),
		session.WithLogger(log),
	)

	handler := httpapi.NewHandler(manager, httpapi.WithLogger(log))

	srv := &http.Server{
		Addr:    srvCfg.Addr,
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	log.Info("sessiond listening",
		slog.String("addr", srvCfg.Addr),
		slog.String("store", srvCfg.StoreBackend))

	var runErr error
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return runErr
	}
	return nil
}

func openStore(ctx context.Context, cfg serverConfig) (session.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case "memory":
		return session.NewMemoryStore(), noop, nil

	case "bolt":
		store, err := session.OpenBoltStore(cfg.BoltPath, &bbolt.Options{Timeout: time.Second})
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil

	case "redis":
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return nil, nil, err
		}
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(client), func() { _ = client.Close() }, nil

	case "postgres":
		var pgCfg pg.Config
		if err := config.Load(&pgCfg); err != nil {
			return nil, nil, err
		}
		pool, err := pg.Connect(ctx, pgCfg)
		if err != nil {
			return nil, nil, err
		}
		store, err := session.NewPGStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
