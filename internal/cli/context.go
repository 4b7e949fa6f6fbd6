package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/notely/internal/config"
)

type cliContextKey struct{}

// WithCLI stores c in ctx. Commands reuse it instead of opening the database
// and leave closing it to the caller.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	c.shared = true
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI, or opens a new one from
// the user's config. Callers must Close the result.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := ctx.Value(cliContextKey{}).(*CLI); ok && c != nil {
		return c, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewCLI(ctx, cfg)
}
