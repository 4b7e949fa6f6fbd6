package note

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
)

// TagCmd returns the note tag subcommand
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Attach a label to a note",
		Long: `Attach a label to a note. Attaching a label twice is a no-op.

Examples:
  notely note tag --id=<note-id> --label=work
`,
		RunE: handler.Command(handler.HandlerFunc(runTag), parseLinkFlags),
	}
	addLinkFlags(cmd)
	return cmd
}

// UntagCmd returns the note untag subcommand
func UntagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "untag",
		Short: "Detach a label from a note",
		Long: `Detach a label from a note.

Examples:
  notely note untag --id=<note-id> --label=work
`,
		RunE: handler.Command(handler.HandlerFunc(runUntag), parseLinkFlags),
	}
	addLinkFlags(cmd)
	return cmd
}

func addLinkFlags(cmd *cobra.Command) {
	cmd.Flags().String("id", "", "Note ID (required)")
	cmd.Flags().String("label", "", "Label ID or name (required)")
	handler.AddOutputFlags(cmd, "Minimal output (note ID only)")
}

func parseLinkFlags(cmd *cobra.Command) error {
	if err := requireID(cmd); err != nil {
		return err
	}
	if !cmd.Flags().Changed("label") {
		return errLabelRequired
	}
	return nil
}

func runTag(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	return link(ctx, c, args, c.App.NoteService.AttachLabel)
}

func runUntag(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	return link(ctx, c, args, c.App.NoteService.DetachLabel)
}

func link(
	ctx context.Context,
	c *cli.CLI,
	args *handler.Arguments,
	apply func(ctx context.Context, noteID, labelID string) error,
) (any, error) {
	parser := handler.NewFlagParser(args.GetCmd())
	noteID, err := parser.ParseID("id")
	if err != nil {
		return nil, err
	}
	ref, err := args.RequireString("label")
	if err != nil {
		return nil, err
	}

	label, err := c.App.LabelService.ResolveLabel(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := apply(ctx, noteID, label.ID); err != nil {
		return nil, err
	}

	note, err := c.App.NoteService.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	return &noteResult{Note: note}, nil
}
