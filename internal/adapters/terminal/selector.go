package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	crateerrors "crate/internal/errors"
)

// maxVisibleItems bounds the list height on small or unknown terminals.
const maxVisibleItems = 10

type selectorStyles struct {
	prompt   lipgloss.Style
	cursor   lipgloss.Style
	selected lipgloss.Style
	item     lipgloss.Style
	more     lipgloss.Style
}

func newSelectorStyles(w io.Writer) selectorStyles {
	r := lipgloss.NewRenderer(w)
	return selectorStyles{
		prompt:   r.NewStyle().Bold(true),
		cursor:   r.NewStyle().Foreground(lipgloss.Color("212")),
		selected: r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		item:     r.NewStyle(),
		more:     r.NewStyle().Faint(true),
	}
}

// selectorModel is a single-choice list. chosen stays -1 until the operator
// picks an entry; cancelled is set when the list is dismissed.
type selectorModel struct {
	prompt    string
	items     []string
	cursor    int
	offset    int
	height    int
	chosen    int
	cancelled bool

	keys   selectorKeyMap
	help   help.Model
	styles selectorStyles
}

func newSelectorModel(prompt string, items []string, styles selectorStyles) selectorModel {
	return selectorModel{
		prompt: prompt,
		items:  items,
		height: min(len(items), maxVisibleItems),
		chosen: -1,
		keys:   defaultSelectorKeys,
		help:   help.New(),
		styles: styles,
	}
}

func (m selectorModel) Init() tea.Cmd {
	return nil
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the prompt, the help line and the overflow markers.
		m.height = max(1, min(len(m.items), maxVisibleItems, msg.Height-4))
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.items) - 1
			}
			m.scrollToCursor()
		case key.Matches(msg, m.keys.Down):
			m.cursor++
			if m.cursor >= len(m.items) {
				m.cursor = 0
			}
			m.scrollToCursor()
		case key.Matches(msg, m.keys.Choose):
			m.chosen = m.cursor
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// scrollToCursor keeps the cursor inside the visible window.
func (m *selectorModel) scrollToCursor() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m selectorModel) View() string {
	if m.chosen >= 0 {
		return m.styles.prompt.Render(m.prompt) + " " + m.items[m.chosen] + "\n"
	}
	if m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.prompt.Render(m.prompt))
	b.WriteString("\n")

	end := min(m.offset+m.height, len(m.items))
	if m.offset > 0 {
		b.WriteString(m.styles.more.Render(fmt.Sprintf("  ↑ %d more", m.offset)))
		b.WriteString("\n")
	}
	for i := m.offset; i < end; i++ {
		line := fmt.Sprintf("%d. %s", i+1, m.items[i])
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> "))
			b.WriteString(m.styles.selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(m.styles.item.Render(line))
		}
		b.WriteString("\n")
	}
	if end < len(m.items) {
		b.WriteString(m.styles.more.Render(fmt.Sprintf("  ↓ %d more", len(m.items)-end)))
		b.WriteString("\n")
	}

	b.WriteString(m.help.ShortHelpView(m.keys.bindings()))
	b.WriteString("\n")
	return b.String()
}

// runSelector runs the list on the adapter's terminal until the operator
// chooses or cancels.
func (a *Adapter) runSelector(ctx context.Context, prompt string, items []string) (int, error) {
	program := tea.NewProgram(
		newSelectorModel(prompt, items, a.styles),
		tea.WithContext(ctx),
		tea.WithInput(a.stdin),
		tea.WithOutput(a.stderr),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return -1, crateerrors.ErrPromptCancelled
		}
		return -1, fmt.Errorf("selection failed: %w", err)
	}

	m, ok := final.(selectorModel)
	if !ok || m.chosen < 0 {
		return -1, crateerrors.ErrPromptCancelled
	}
	return m.chosen, nil
}
