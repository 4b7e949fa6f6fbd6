package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
	labelservice "github.com/thenoetrevino/notely/internal/services/label"
)

// RenameCmd returns the label rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a label",
		Long: `Rename a label given its ID or current name. Changing only the case of
a label's own name is allowed.

Examples:
  notely label rename --label="work" --name="Office"
  notely label rename --label=0b5e1c0e-8f4a-4d7e-9c1b-2f6f0f3d9a11 --name="Office" --json
`,
		RunE: handler.Command(handler.HandlerFunc(runRename), parseRenameFlags),
	}

	cmd.Flags().String("label", "", "Label ID or name (required)")
	cmd.Flags().String("name", "", "New label name (required)")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runRename(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	ref, err := args.RequireString("label")
	if err != nil {
		return nil, err
	}
	name, err := args.RequireString("name")
	if err != nil {
		return nil, err
	}

	current, err := resolve(ctx, c, ref)
	if err != nil {
		return nil, err
	}

	label, err := c.App.LabelService.RenameLabel(ctx, labelservice.RenameLabelRequest{
		ID:   current.ID,
		Name: name,
	})
	if err != nil {
		return nil, cli.Localize(c.Translator, err)
	}

	return &labelResult{
		ID:      label.ID,
		Name:    label.Name,
		message: c.Translator.T("screens.labelManage.labelSaved", map[string]any{"Name": label.Name}),
	}, nil
}

func parseRenameFlags(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("label") {
		return errLabelRequired
	}
	if !cmd.Flags().Changed("name") {
		return errNameRequired
	}
	return nil
}
