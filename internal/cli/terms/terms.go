// Package terms holds the command that prints the terms and conditions
package terms

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/notely/internal/cli"
	"github.com/thenoetrevino/notely/internal/cli/handler"
	"github.com/thenoetrevino/notely/internal/legal"
)

const defaultWidth = 80

// TermsCmd returns the terms command
func TermsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Show the terms and conditions",
		Long: `Show the terms and conditions in the configured locale.

Examples:
  notely terms
  notely terms --raw > TERMS.md
  NOTELY_LOCALE=es notely terms --width=60
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runTerms)),
	}

	cmd.Flags().Bool("raw", false, "Print markdown without rendering")
	cmd.Flags().Int("width", defaultWidth, "Wrap rendered text at this width")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

// termsResult is the output of `notely terms`
type termsResult struct {
	Locale   string `json:"locale"`
	Markdown string `json:"markdown"`
	rendered string
}

// Human implements cli.HumanReadable
func (r *termsResult) Human() string {
	return r.rendered
}

func runTerms(_ context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	cmd := args.GetCmd()
	width, err := cmd.Flags().GetInt("width")
	if err != nil || width <= 0 {
		return nil, fmt.Errorf("%w: --width must be positive", cli.ErrUsage)
	}

	result := &termsResult{
		Locale:   c.Translator.Lang(),
		Markdown: legal.TermsMarkdown(c.Translator),
	}

	if args.GetBool("raw") {
		result.rendered = result.Markdown
		return result, nil
	}

	rendered, err := legal.RenderTerms(c.Translator, width)
	if err != nil {
		return nil, err
	}
	result.rendered = rendered
	return result, nil
}
