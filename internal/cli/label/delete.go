package label

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
	"github.com/thenoetrevino/notely/internal/labels"
)

// DeleteCmd returns the label delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a label",
		Long: `Delete a label by ID or name. The label is removed from every note.
Asks for confirmation on stdin unless --force, --quiet or --json is given.
JSON output is meant for scripts, so it never prompts.

Examples:
  # Delete with confirmation
  notely label delete --label="work"

  # Skip confirmation
  notely label delete --label="work" --force

  # Skip confirmation and print the deleted label as JSON
  notely label delete --label="work" --json
`,
		RunE: handler.Command(handler.HandlerFunc(runDelete), parseDeleteFlags),
	}

	cmd.Flags().String("label", "", "Label ID or name (required)")
	cmd.Flags().Bool("force", false, "Skip confirmation")
	handler.AddOutputFlags(cmd, "Minimal output (no confirmation)")

	return cmd
}

// labelDeleteResult is the output of `notely label delete`
type labelDeleteResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
	message string
}

// Human implements cli.HumanReadable
func (r *labelDeleteResult) Human() string {
	return labels.TrashIcon + " " + r.message
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	ref, err := args.RequireString("label")
	if err != nil {
		return nil, err
	}

	label, err := resolve(ctx, c, ref)
	if err != nil {
		return nil, err
	}

	cmd := args.GetCmd()
	if !args.GetBool("force") && !args.GetBool("quiet") && !args.GetBool("json") {
		prompt := c.Translator.T("screens.labelManage.deleteLabelMessage", map[string]any{"Name": label.Name})
		fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)
		if !confirmed(cmd) {
			fmt.Fprintln(cmd.OutOrStdout(), c.Translator.T("common.cancel", nil))
			return nil, nil
		}
	}

	if err := c.App.LabelService.DeleteLabel(ctx, label.ID); err != nil {
		return nil, err
	}

	if args.GetBool("quiet") {
		return nil, nil
	}
	return &labelDeleteResult{
		ID:      label.ID,
		Name:    label.Name,
		Deleted: true,
		message: c.Translator.T(labels.KeyLabelDeleted, nil),
	}, nil
}

func confirmed(cmd *cobra.Command) bool {
	response, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

func parseDeleteFlags(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("label") {
		return errLabelRequired
	}
	return nil
}
