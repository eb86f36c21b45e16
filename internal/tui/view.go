package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//nolint:gochecknoglobals // Shared footer styles.
var (
	labelStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	footer := m.renderFooter()
	return pinFooter(m.nav.View(), footer, m.height)
}

func (m Model) renderFooter() string {
	var b strings.Builder
	if m.showDebug {
		b.WriteString(m.renderDebug())
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render(m.nav.TriggerLabel()))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderDebug() string {
	st := m.nav.State()
	c := m.nav.Surface().Container()
	height := 0
	if c != nil {
		height = c.Rows()
	}
	return fmt.Sprintf("%s expanded=%t pending=%t height=%d/%d",
		m.progress.ViewAs(m.nav.Progress()), st.IsExpanded, st.IsTogglePending, height, m.nav.Height())
}

// pinFooter places footer on the last rows of a screen of the given height,
// letting the body overflow it when the screen is too small.
func pinFooter(body, footer string, height int) string {
	used := lipgloss.Height(body) + lipgloss.Height(footer)
	if height <= used {
		return body + "\n" + footer
	}
	return body + strings.Repeat("\n", height-used+1) + footer
}
