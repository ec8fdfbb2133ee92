package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"

	"github.com/py2dev/repeatermap/internal/config"
	"github.com/py2dev/repeatermap/internal/logging"
	"github.com/py2dev/repeatermap/internal/models"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
	"github.com/py2dev/repeatermap/internal/services"

	_ "modernc.org/sqlite"
)

// App wires the services together and hosts the REPL command handlers.
type App struct {
	config   *config.Config
	sessions services.SessionService
	registry services.Registry
	audit    services.Audit
	db       *sql.DB
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	store, db, err := kv.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	audit := services.NewAuditService(store, logger)
	sessions := services.NewSessionService(store, audit, logger)

	var seed []models.Repeater
	if !c.SeedDisabled {
		seed = models.DefaultSeed()
	}
	registry := services.NewRegistry(store, sessions, audit, logger, seed)

	if err := sessions.Restore(ctx); err != nil {
		log.Printf("error restoring session: %s", err.Error())
	}

	return &App{
		config:   c,
		sessions: sessions,
		registry: registry,
		audit:    audit,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

func (a *App) status() string {
	if u := a.sessions.Current(); u != nil {
		return u.Indicative
	}
	return "anonymous"
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
