// Package note holds all cli commands related to notes
// e.g., notely note ...
package note

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/styles"
	"github.com/thenoetrevino/notely/internal/models"
)

var (
	errIDRequired    = errors.New("--id is required")
	errLabelRequired = errors.New("--label is required")
)

// NoteCmd returns the note parent command
func NoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(TagCmd())
	cmd.AddCommand(UntagCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// noteResult is the output of commands that act on one note
type noteResult struct {
	*models.Note
}

// GetID implements the GetID interface for quiet mode output
func (r *noteResult) GetID() string {
	return r.ID
}

// Human implements cli.HumanReadable
func (r *noteResult) Human() string {
	return styles.RenderNoteCard(r.Note)
}

// noteListResult is the output of `notely note list`
type noteListResult struct {
	Notes []*models.Note `json:"notes"`
}

// GetIDs implements quiet mode output, one ID per line
func (r *noteListResult) GetIDs() []string {
	ids := make([]string, len(r.Notes))
	for i, n := range r.Notes {
		ids[i] = n.ID
	}
	return ids
}

// Human implements cli.HumanReadable
func (r *noteListResult) Human() string {
	if len(r.Notes) == 0 {
		return styles.SubtitleStyle.Render("No notes found")
	}
	cards := make([]string, len(r.Notes))
	for i, n := range r.Notes {
		cards[i] = styles.RenderNoteCard(n)
	}
	return strings.Join(cards, "\n")
}

// resolveLabels maps label ids or names to ids
func resolveLabels(ctx context.Context, c *cli.CLI, refs []string) ([]string, error) {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		label, err := c.App.LabelService.ResolveLabel(ctx, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, label.ID)
	}
	return ids, nil
}

func requireID(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("id") {
		return errIDRequired
	}
	return nil
}
