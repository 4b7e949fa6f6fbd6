// Package legal builds the terms and conditions page from the translation
// catalog and renders it for the terminal.
package legal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Catalog is the subset of the translator the page needs
type Catalog interface {
	T(key string, params map[string]any) string
	Has(key string) bool
}

const prefix = "termsAndConditions"

// TermsMarkdown assembles the terms page as markdown.
// Sections are numbered from 1 up to termsAndConditions.sectionsLength. A
// section holds either a content paragraph or numbered subsections, and a
// subsection may carry a description followed by itemsLength key/value items.
func TermsMarkdown(c Catalog) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.T("common.termsAndConditions", nil))
	fmt.Fprintf(&b, "*%s*\n\n", c.T(prefix+".lastUpdated", nil))
	fmt.Fprintf(&b, "%s\n\n", c.T(prefix+".pleaseReadText", nil))

	sections := count(c, prefix+".sectionsLength")
	for i := 1; i <= sections; i++ {
		section := fmt.Sprintf("%s.section%d", prefix, i)
		if !c.Has(section + ".title") {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", c.T(section+".title", nil))
		paragraph(&b, c, section+".content")

		for j := 1; c.Has(fmt.Sprintf("%s.subSection%d.title", section, j)); j++ {
			sub := fmt.Sprintf("%s.subSection%d", section, j)
			fmt.Fprintf(&b, "### %s\n\n", c.T(sub+".title", nil))
			paragraph(&b, c, sub+".content")
			paragraph(&b, c, sub+".description")
			items(&b, c, sub)
		}
	}

	return b.String()
}

// RenderTerms renders the terms page for a terminal of the given width
func RenderTerms(c Catalog, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(TermsMarkdown(c))
	if err != nil {
		return "", fmt.Errorf("failed to render terms: %w", err)
	}
	return out, nil
}

func paragraph(b *strings.Builder, c Catalog, key string) {
	if c.Has(key) {
		fmt.Fprintf(b, "%s\n\n", c.T(key, nil))
	}
}

func items(b *strings.Builder, c Catalog, sub string) {
	n := count(c, sub+".itemsLength")
	for i := 0; i < n; i++ {
		item := fmt.Sprintf("%s.items.%d", sub, i)
		fmt.Fprintf(b, "- **%s** %s\n", c.T(item+".key", nil), c.T(item+".value", nil))
	}
	if n > 0 {
		b.WriteString("\n")
	}
}

// count reads a numeric catalog entry, treating anything else as zero
func count(c Catalog, key string) int {
	if !c.Has(key) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(c.T(key, nil)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
