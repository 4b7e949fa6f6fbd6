package note

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
)

// ShowCmd returns the note show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a note with its labels",
		RunE:  handler.Command(handler.HandlerFunc(runShow), requireID),
	}

	cmd.Flags().String("id", "", "Note ID (required)")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseID("id")
	if err != nil {
		return nil, err
	}

	note, err := c.App.NoteService.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	return &noteResult{Note: note}, nil
}
