package note

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
)

// ListCmd returns the note list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Long: `List notes, newest first, optionally only those carrying a label.

Examples:
  notely note list
  notely note list --label=work --json
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	cmd.Flags().String("label", "", "Only notes with this label (ID or name)")
	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	var labelID string
	if ref := args.GetString("label", ""); ref != "" {
		label, err := c.App.LabelService.ResolveLabel(ctx, ref)
		if err != nil {
			return nil, err
		}
		labelID = label.ID
	}

	notes, err := c.App.NoteService.ListNotes(ctx, labelID)
	if err != nil {
		return nil, err
	}
	return &noteListResult{Notes: notes}, nil
}
