package label

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
)

// ListCmd returns the label list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Long: `List all labels in the order they were created.

Examples:
  # Human-readable list
  notely label list

  # JSON output for agents
  notely label list --json

  # Quiet mode (one ID per line)
  notely label list --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	handler.AddOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.Arguments) (any, error) {
	all, err := c.App.LabelService.GetAllLabels(ctx)
	if err != nil {
		return nil, err
	}
	return &labelListResult{
		Labels: all,
		empty:  c.Translator.T("screens.labelManage.noLabelsFound", nil),
	}, nil
}
