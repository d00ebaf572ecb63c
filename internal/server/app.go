// Package server initializes and runs the application: configuration,
// database, migrations, services and the HTTP gateway, with graceful
// shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/newsgate/internal/logging"
	"github.com/dmitrijs2005/newsgate/internal/server/config"
	"github.com/dmitrijs2005/newsgate/internal/server/httpapi"
	"github.com/dmitrijs2005/newsgate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/newsgate/internal/server/services"
)

// ErrNoSecretKey is returned by NewApp when no signing secret is configured.
// Running without one would make every session token forgeable.
var ErrNoSecretKey = errors.New("configuration error: secret key is not set")

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	if cfg.SecretKey == "" {
		return nil, ErrNoSecretKey
	}

	db, err := repomanager.OpenDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	us := services.NewUserService(db, m, cfg)
	ns := services.NewNewsService(db, m)

	srv := httpapi.NewServer(cfg, us, ns, logger.With("module", "httpapi"))

	return &App{config: cfg, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
