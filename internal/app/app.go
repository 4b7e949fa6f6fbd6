package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/notely/internal/database"
	"github.com/thenoetrevino/notely/internal/labels"
	labelservice "github.com/thenoetrevino/notely/internal/services/label"
	noteservice "github.com/thenoetrevino/notely/internal/services/note"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Repository layer (direct database access)
	repo *database.Repository

	// Service layer (business logic)
	LabelService labelservice.Service
	NoteService  noteservice.Service

	logger *slog.Logger
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		ids:    labels.UUIDGenerator,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)
	return &App{
		db:           db,
		repo:         repo,
		LabelService: labelservice.NewService(repo, cfg.ids),
		NoteService:  noteservice.NewService(repo, cfg.ids),
		logger:       cfg.logger,
	}
}

// Repo returns the underlying repository for direct database access.
// The label screen uses it as its store.
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Close closes the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", "error", err)
		return err
	}
	return nil
}
