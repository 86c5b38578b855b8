package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bodyHeight reserves rows for the header, status line, input line and
// footer.
func bodyHeight(total int) int {
	h := total - 6
	if h < 3 {
		h = 3
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	if m.editing {
		b.WriteString(m.pathInput.View())
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Styles().Frame.Width(m.width - 2).Render(m.body.View()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	name := m.requestName
	if name == "" {
		name = "request"
	}
	parts := []string{
		styles.Title.Render("fetchbind"),
		styles.Muted.Render("·"),
		styles.Text.Render(name),
		styles.Muted.Render(fmt.Sprintf("%s %s", m.base.Method, m.base.URL)),
	}
	if m.watch {
		parts = append(parts, styles.Warning.Render(fmt.Sprintf("[watch %s]", m.watchTick)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, " "))
}

func (m Model) renderStatus() string {
	styles := m.theme.Styles()

	switch {
	case m.snapshot.Loading:
		return m.spin.View() + styles.Muted.Render(" loading")
	case m.snapshot.Err != nil:
		line := styles.Danger.Render("✗ " + m.snapshot.Err.Message)
		if m.snapshot.Err.Status > 0 {
			line += styles.Muted.Render(fmt.Sprintf(" (status %d)", m.snapshot.Err.Status))
		}
		if m.snapshot.Err.Canceled {
			line += styles.Muted.Render(" (cancelled)")
		}
		return line
	case m.snapshot.Data != nil:
		return styles.Success.Render("✓ ok") +
			styles.Muted.Render(" updated "+m.lastUpdated.Format("15:04:05"))
	default:
		return styles.Muted.Render("idle · press r to execute")
	}
}

// refreshBody rewrites the viewport content from the current snapshot.
func (m *Model) refreshBody() {
	if !m.ready {
		return
	}
	styles := m.theme.Styles()

	switch {
	case m.snapshot.Data != nil:
		m.body.SetContent(prettyJSON(*m.snapshot.Data))
	case m.snapshot.Err != nil:
		m.body.SetContent(styles.Danger.Render(m.snapshot.Err.Message))
	case m.snapshot.Loading:
		// Keep whatever was shown; the status line carries the spinner.
	default:
		m.body.SetContent(styles.Muted.Render("no data"))
	}
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	keys := "r run · e edit url · x reset · c cancel · w watch · T theme · ? help · q quit"
	return styles.Muted.Render(keys)
}

type helpItem struct {
	key  string
	desc string
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	items := []helpItem{
		{"r", "Execute the request again"},
		{"e", "Execute once with a different URL"},
		{"x", "Reset to idle (does not cancel an in-flight request)"},
		{"c", "Cancel the in-flight request"},
		{"w", "Toggle periodic re-execution"},
		{"j/k", "Scroll the response"},
		{"T", "Cycle theme"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.Accent.Render(fmt.Sprintf("%-4s", item.key)),
			styles.Text.Render(item.desc)))
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("press any key to close"))
	return b.String()
}
