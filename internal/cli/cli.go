package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/notely/internal/app"
	"github.com/thenoetrevino/notely/internal/config"
	"github.com/thenoetrevino/notely/internal/database"
	"github.com/thenoetrevino/notely/internal/i18n"
)

// CLI represents the CLI application context
type CLI struct {
	App        *app.App // Application container with services
	Config     *config.Config
	Translator *i18n.Translator

	// shared instances come from the command context and are closed by their owner
	shared bool
}

// NewCLI opens the database in the configured data directory
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	db, err := database.InitDB(ctx, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	tr, err := i18n.New(cfg.Locale)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	return NewCLIWithDB(db, cfg, tr), nil
}

// NewCLIWithDB builds a CLI around an already open database
func NewCLIWithDB(db *sql.DB, cfg *config.Config, tr *i18n.Translator) *CLI {
	return &CLI{
		App:        app.New(db, app.WithLogger(slog.Default().With("component", "cli"))),
		Config:     cfg,
		Translator: tr,
	}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.shared {
		return nil
	}
	return c.App.Close()
}
