package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/client/client"
	"github.com/dmitrijs2005/vidmarkt/internal/client/config"
	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
	"github.com/dmitrijs2005/vidmarkt/internal/client/services"
	"github.com/dmitrijs2005/vidmarkt/internal/client/session"
	"github.com/dmitrijs2005/vidmarkt/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single reachability probe of the watcher.
const pingTimeout = 3 * time.Second

type App struct {
	config         *config.Config
	log            logging.Logger
	db             *sql.DB
	authService    services.AuthService
	catalogService services.CatalogService
	orderService   services.OrderService
	session        *models.Session
	reader         *bufio.Reader
	out            io.Writer

	modeMu sync.RWMutex
	Mode   Mode
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := session.NewSQLiteStore(db)

	return &App{
		config:         c,
		log:            log,
		db:             db,
		authService:    services.NewAuthService(apiClient, store),
		catalogService: services.NewCatalogService(apiClient),
		orderService:   services.NewOrderService(apiClient, store),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

func (a *App) mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.Mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

// Run starts the shell and blocks until the user leaves it.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)
	a.Root(ctx)
}

func (a *App) close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// checkOnline probes the backend once and updates Mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(ctx)
	cancel()

	if err != nil {
		a.log.Debug(ctx, "ping failed", "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher probes the backend every interval until ctx is
// done, switching between online and offline mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
