// Package cli implements the interactive terminal application: account
// registration and login, the product catalog, dashboard, reports, and the
// optional AI analysis.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/darazkeeper/internal/config"
	"github.com/dmitrijs2005/darazkeeper/internal/gemini"
	"github.com/dmitrijs2005/darazkeeper/internal/logging"
	"github.com/dmitrijs2005/darazkeeper/internal/models"
	"github.com/dmitrijs2005/darazkeeper/internal/services"
	"github.com/dmitrijs2005/darazkeeper/internal/storage"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	authService    services.AuthService
	productService services.ProductService
	reportService  services.ReportService
	user           *models.User
	reader         *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	analyzer := gemini.NewClient(c.GeminiEndpoint, c.GeminiModel, c.GeminiAPIKey)

	as := services.NewAuthService(db, c.RequestDelay)
	ps := services.NewProductService(db, c.RequestDelay)
	rs := services.NewReportService(db, analyzer, c.LowStockThreshold, c.RequestDelay)

	return &App{
		config:         c,
		logger:         logger,
		authService:    as,
		productService: ps,
		reportService:  rs,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

// restoreSession re-reads the persisted session so a restart keeps the user
// logged in.
func (a *App) restoreSession(ctx context.Context) {
	user, err := a.authService.CurrentUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err)
		return
	}
	a.user = user
}

func (a *App) Run(ctx context.Context) {
	a.restoreSession(ctx)
	a.Root(ctx)
}
