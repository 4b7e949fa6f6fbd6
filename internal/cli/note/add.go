package note

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
	noteservice "github.com/thenoetrevino/notely/internal/services/note"
)

// AddCmd returns the note add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Long: `Add a note, optionally tagged with existing labels (by ID or name).

Examples:
  notely note add --title="Standup" --body="yesterday, today" --label=work
  NOTE_ID=$(notely note add --title="Groceries" --label=home --label=todo --quiet)
`,
		RunE: handler.Command(handler.HandlerFunc(runAdd), parseAddFlags),
	}

	cmd.Flags().String("title", "", "Note title (required)")
	cmd.Flags().String("body", "", "Note body")
	cmd.Flags().StringArray("label", nil, "Label ID or name (repeatable)")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	title, err := args.RequireString("title")
	if err != nil {
		return nil, err
	}

	labelIDs, err := resolveLabels(ctx, c, args.GetStrings("label", nil))
	if err != nil {
		return nil, err
	}

	note, err := c.App.NoteService.CreateNote(ctx, noteservice.CreateNoteRequest{
		Title:    title,
		Body:     args.GetString("body", ""),
		LabelIDs: labelIDs,
	})
	if err != nil {
		return nil, err
	}

	return &noteResult{Note: note}, nil
}

func parseAddFlags(cmd *cobra.Command) error {
	return handler.NewFlagParser(cmd).RequireOne("title")
}
