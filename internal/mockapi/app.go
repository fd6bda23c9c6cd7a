// Package mockapi runs an in-memory stand-in for the marketplace backend:
// catalog lookups, accounts, login with HS256 access tokens and orders.
// It is meant for local development and integration tests.
package mockapi

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/vidmarkt/internal/common"
	"github.com/dmitrijs2005/vidmarkt/internal/logging"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/api"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/config"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *api.Server
}

// NewApp seeds a fresh store and builds the HTTP server around it. An empty
// secret key is replaced by a random one, so tokens do not survive a restart.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if c.SecretKey == "" {
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret generation error: %w", err)
		}
		logger.Warn(ctx, "no secret key configured, using a random one")
		c.SecretKey = secret
	}

	s := store.New()
	if err := store.Seed(ctx, s); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}

	h := api.NewHandler(s, c.SecretKey, c.AccessTokenValidityDuration, logger)
	srv := api.NewServer(c.ListenAddr, api.NewRouter(h), logger, c.ShutdownTimeout)

	return &App{config: c, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or ctx is done.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.ListenAddr)

	app.initSignalHandler(cancelFunc)

	return app.server.Run(ctx)
}
