package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/bestpick/cardnav/internal/surface"
)

// handleKey processes key bindings and returns updated model and command.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.nav.Toggle()
		return m.animate()

	case key.Matches(msg, m.keys.Close):
		if !m.nav.IsHamburgerOpen() {
			return m, nil
		}
		m.nav.Toggle()
		return m.animate()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Debug):
		m.showDebug = !m.showDebug
		return m, nil
	}

	return m, nil
}

// handleMouse resolves a left click against the nav layout. Only the release
// counts, so a click is one activation.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	s := m.nav.Surface()
	target := s.HitTest(msg.X, msg.Y)
	switch target.Kind {
	case surface.TargetHamburger:
		m.nav.Toggle()
		return m.animate()

	case surface.TargetLink:
		view, ok := s.Cards().Get(target.Card)
		if !ok || target.Link >= len(view.Card.Links) {
			return m, nil
		}
		link := view.Card.Links[target.Link]
		m.status = fmt.Sprintf("%s → %s", linkName(view.Card.Label, link.Label, link.AriaLabel), link.Href)
		logrus.WithFields(logrus.Fields{"card": view.Card.Label, "href": link.Href}).Info("link activated")
		return m, nil

	case surface.TargetNone, surface.TargetCard:
	}
	return m, nil
}

func linkName(card, label, aria string) string {
	if aria != "" {
		return aria
	}
	return card + " / " + label
}
