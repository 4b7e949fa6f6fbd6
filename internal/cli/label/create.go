package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
	labelservice "github.com/thenoetrevino/notely/internal/services/label"
)

// CreateCmd returns the label create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new label",
		Long: `Create a new label. Names are trimmed, must be 2 to 25 characters long
and must not match another label ignoring case.

Examples:
  # Create label (human-readable output)
  notely label create --name="work"

  # JSON output for agents
  notely label create --name="work" --json

  # Quiet mode for bash capture
  LABEL_ID=$(notely label create --name="work" --quiet)
`,
		RunE: handler.Command(handler.HandlerFunc(runCreate), parseCreateFlags),
	}

	cmd.Flags().String("name", "", "Label name (required)")
	handler.AddOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	name, err := args.RequireString("name")
	if err != nil {
		return nil, err
	}

	label, err := c.App.LabelService.CreateLabel(ctx, labelservice.CreateLabelRequest{Name: name})
	if err != nil {
		return nil, cli.Localize(c.Translator, err)
	}

	return &labelResult{
		ID:      label.ID,
		Name:    label.Name,
		message: c.Translator.T("screens.labelManage.labelSaved", map[string]any{"Name": label.Name}),
	}, nil
}

func parseCreateFlags(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("name") {
		return errNameRequired
	}
	return nil
}
