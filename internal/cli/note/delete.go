package note

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
	"github.com/thenoetrevino/notely/internal/cli/styles"
)

// DeleteCmd returns the note delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a note",
		RunE:  handler.Command(handler.HandlerFunc(runDelete), requireID),
	}

	cmd.Flags().String("id", "", "Note ID (required)")
	handler.AddOutputFlags(cmd, "Minimal output")

	return cmd
}

// noteDeleteResult is the output of `notely note delete`
type noteDeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// Human implements cli.HumanReadable
func (r *noteDeleteResult) Human() string {
	return styles.Success("Note " + r.ID + " deleted")
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	id, err := handler.NewFlagParser(args.GetCmd()).ParseID("id")
	if err != nil {
		return nil, err
	}
	if err := c.App.NoteService.DeleteNote(ctx, id); err != nil {
		return nil, err
	}
	if args.GetBool("quiet") {
		return nil, nil
	}
	return &noteDeleteResult{ID: id, Deleted: true}, nil
}
