package shell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const helpDivider = "-----------------"

type helpStyles struct {
	name    lipgloss.Style
	detail  lipgloss.Style
	divider lipgloss.Style
}

func newHelpStyles(w io.Writer) helpStyles {
	r := lipgloss.NewRenderer(w)
	return helpStyles{
		name:    r.NewStyle().Bold(true),
		detail:  r.NewStyle().PaddingLeft(2), //nolint:mnd // indent below the command name
		divider: r.NewStyle().Faint(true),
	}
}

// printEntry writes one help entry: the command name, its description, one
// line per argument and a divider.
func (e *Engine) printEntry(cmd Command) {
	fmt.Fprintf(e.out, "Command: %s\n", e.styles.name.Render(cmd.Name))
	if cmd.ShortDescription != "" {
		fmt.Fprintln(e.out, e.styles.detail.Render(cmd.ShortDescription))
	}
	for _, arg := range cmd.ArgDescriptions {
		fmt.Fprintln(e.out, e.styles.detail.Render(arg))
	}
	fmt.Fprintln(e.out, e.styles.divider.Render(helpDivider))
}
