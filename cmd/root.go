// Package cmd wires the notely command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/label"
	"github.com/thenoetrevino/notely/internal/cli/note"
	"github.com/thenoetrevino/notely/internal/cli/styles"
	"github.com/thenoetrevino/notely/internal/cli/terms"
	"github.com/thenoetrevino/notely/internal/config"
	"github.com/thenoetrevino/notely/internal/logging"
	"github.com/thenoetrevino/notely/internal/tui"
)

// NewRootCmd builds the notely command tree. Without a subcommand it opens the
// label management screen.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notely",
		Short: "Notely - terminal notes with labels",
		Long: `Notely keeps notes and labels in a local SQLite database.

Run without arguments to manage labels interactively, or use the label and
note subcommands from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	})

	root.AddCommand(label.LabelCmd())
	root.AddCommand(note.NoteCmd())
	root.AddCommand(terms.TermsCmd())

	return root
}

func runTUI(cmd *cobra.Command, _ []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	return tui.Run(cmd.Context(), c.App.Repo(), c.Translator, c.Config)
}

// Execute loads config, sets up logging and the database, runs the command
// line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		return cli.ExitDataErr
	}

	logFile, err := logging.Init(cfg.DataDir, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	} else {
		defer func() { _ = logFile.Close() }()
	}

	c, err := cli.NewCLI(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		return cli.ExitError
	}
	defer func() {
		if err := c.App.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	styles.Init(cfg.ColorScheme)

	err = NewRootCmd().ExecuteContext(cli.WithCLI(ctx, c))
	return report(err)
}

// report prints errors that were not already shown by the output formatter
func report(err error) int {
	if err == nil {
		return cli.ExitSuccess
	}
	var exitErr *cli.CodedError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
