package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/credkeeper/internal/client/config"
	"github.com/dmitrijs2005/credkeeper/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/credkeeper/internal/client/services"
	"github.com/dmitrijs2005/credkeeper/internal/client/storage"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
)

type App struct {
	authService services.AuthService
	repo        credentials.Repository
	store       storage.Store
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the configured store and builds the auth service on top of
// it. The store is closed by Run.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c.Storage, c.DSN)
	if err != nil {
		log.Error(ctx, "error opening storage", "storage", c.Storage, "error", err)
		return nil, err
	}

	repo := credentials.NewStoreRepository(store)

	as, err := services.NewAuthService(repo, []byte(c.AppSecret), c.KDF, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &App{
		authService: as,
		repo:        repo,
		store:       store,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Warn(ctx, "error closing storage", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.authService.CurrentUser() != nil
}
