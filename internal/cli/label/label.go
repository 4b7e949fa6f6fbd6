// Package label holds all cli commands related to labels
// e.g., notely label ...
package label

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/styles"
	"github.com/thenoetrevino/notely/internal/models"
)

// LabelCmd returns the label parent command
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// labelResult is the output of commands that act on one label
type labelResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	message string
}

// GetID implements the GetID interface for quiet mode output
func (r *labelResult) GetID() string {
	return r.ID
}

// Human implements cli.HumanReadable
func (r *labelResult) Human() string {
	return styles.Success(r.message) + "\n" + styles.RenderLabelRow(&models.Label{ID: r.ID, Name: r.Name})
}

// labelListResult is the output of `notely label list`
type labelListResult struct {
	Labels []*models.Label `json:"labels"`
	empty  string
}

// GetIDs implements quiet mode output, one ID per line
func (r *labelListResult) GetIDs() []string {
	ids := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		ids[i] = l.ID
	}
	return ids
}

// Human implements cli.HumanReadable
func (r *labelListResult) Human() string {
	if len(r.Labels) == 0 {
		return r.empty
	}
	rows := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		rows[i] = styles.RenderLabelRow(l)
	}
	return strings.Join(rows, "\n")
}

// resolve looks a label up by id or name
func resolve(ctx context.Context, c *cli.CLI, ref string) (*models.Label, error) {
	return c.App.LabelService.ResolveLabel(ctx, ref)
}
