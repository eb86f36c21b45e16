package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bestpick/cardnav/internal/config"
	"github.com/bestpick/cardnav/internal/viewport"
)

const (
	linkGlyph       = "↗"
	hamburgerClosed = "☰"
	hamburgerOpen   = "✕"
	ellipsis        = "…"
)

// Chrome is the controller state the top bar reflects.
type Chrome struct {
	HamburgerOpen bool
}

// NaturalHeight is the stacked height of the card at width: its label, one row
// per link, and never less than MinCardHeight.
func (v *CardView) NaturalHeight(width int) int {
	return len(v.lines(width, 0))
}

// lines lays out the card body. A zero height means natural height; otherwise
// links are pushed to the bottom and anything that does not fit is dropped.
func (v *CardView) lines(width, height int) []string {
	inner := max(width-2, 1)
	label := ansi.Truncate(v.Card.Label, inner, ellipsis)
	links := make([]string, 0, len(v.Card.Links))
	for _, l := range v.Card.Links {
		links = append(links, ansi.Truncate(linkGlyph+" "+l.Label, inner, ellipsis))
	}

	if height <= 0 {
		out := append([]string{label}, links...)
		for len(out) < MinCardHeight {
			out = append(out, "")
		}
		return out
	}

	out := make([]string, height)
	out[0] = label
	links = links[:fittingLinks(len(links), height)]
	copy(out[height-len(links):], links)
	return out
}

// render draws the card into a slot of width x height, shifted down by its
// offset and faded toward navBg by its opacity.
func (v *CardView) render(width, height int, navBg string, fixed bool) []string {
	bodyHeight := 0
	if fixed {
		bodyHeight = height
	}
	body := v.lines(width, bodyHeight)
	style := lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Foreground(fade(v.Card.TextClass, navBg, v.Opacity)).
		Background(fade(v.Card.BgClass, navBg, v.Opacity))
	rendered := strings.Split(style.Render(strings.Join(body, "\n")), "\n")

	blank := lipgloss.NewStyle().Width(width).Background(lipgloss.Color(navBg)).Render("")
	shift := min(offsetRows(v.OffsetY), height)
	out := make([]string, 0, height)
	for range shift {
		out = append(out, blank)
	}
	for _, line := range rendered {
		if len(out) == height {
			break
		}
		out = append(out, line)
	}
	for len(out) < height {
		out = append(out, blank)
	}
	return out
}

// fade blends c toward bg; opacity 1 keeps c, 0 yields bg. Colours that are
// not hex cannot be blended and switch at the halfway point.
func fade(c, bg string, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return lipgloss.Color(c)
	}
	from, err1 := colorful.Hex(c)
	to, err2 := colorful.Hex(bg)
	if err1 != nil || err2 != nil {
		if opacity < 0.5 {
			return lipgloss.Color(bg)
		}
		return lipgloss.Color(c)
	}
	return lipgloss.Color(to.BlendLab(from, max(opacity, 0)).Clamped().Hex())
}

// View renders the nav. It returns an empty string once detached.
func (s *Surface) View(ch Chrome) string {
	l := s.Layout()
	if l.Inner.W == 0 {
		return ""
	}
	bg := lipgloss.Color(s.Style.NavBg)
	blank := lipgloss.NewStyle().Width(l.Inner.W).Background(bg).Render("")

	lines := make([]string, 0, l.Inner.H)
	lines = append(lines, blank, s.topBar(l, ch), blank)
	lines = append(lines, s.contentLines(l, blank)...)
	if len(lines) > l.Inner.H {
		lines = lines[:l.Inner.H]
	}
	for len(lines) < l.Inner.H {
		lines = append(lines, blank)
	}

	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(s.Style.MenuColor)).
		Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().MarginLeft(l.Frame.X).MarginTop(l.Frame.Y).Render(framed)
}

func (s *Surface) topBar(l Layout, ch Chrome) string {
	bg := lipgloss.Color(s.Style.NavBg)
	glyph := hamburgerClosed
	if ch.HamburgerOpen {
		glyph = hamburgerOpen
	}
	left := lipgloss.NewStyle().
		Width(HamburgerWidth).
		Align(lipgloss.Center).
		Background(bg).
		Foreground(lipgloss.Color(s.Style.MenuColor)).
		Bold(true).
		Render(glyph)

	right := ""
	if l.Class == viewport.Wide {
		right = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color(s.Style.CtaBg)).
			Foreground(lipgloss.Color(s.Style.CtaText)).
			Render(config.DefaultCtaLabel)
	}

	centerW := max(l.Inner.W-lipgloss.Width(left)-lipgloss.Width(right), 0)
	brandColor := s.Style.BrandTextClass
	if brandColor == "" {
		brandColor = s.Style.MenuColor
	}
	brand := ansi.Truncate(s.Style.Logo+" "+s.Style.BrandText, centerW, ellipsis)
	center := lipgloss.NewStyle().
		Width(centerW).
		Align(lipgloss.Center).
		Background(bg).
		Foreground(lipgloss.Color(brandColor)).
		Bold(true).
		Render(brand)
	return left + center + right
}

func (s *Surface) contentLines(l Layout, blank string) []string {
	rows := l.Content.H
	out := make([]string, 0, rows)
	if s.content.Visible && len(l.Cards) > 0 {
		views := s.cards.Views()
		if l.Class == viewport.Wide {
			out = append(out, s.wideRow(l, views)...)
		} else {
			out = append(out, s.stack(l, views)...)
		}
	}
	if len(out) > rows {
		out = out[:rows]
	}
	for len(out) < rows {
		out = append(out, blank)
	}
	return out
}

func (s *Surface) stack(l Layout, views []*CardView) []string {
	bg := lipgloss.Color(s.Style.NavBg)
	edge := lipgloss.NewStyle().Width(1).Background(bg).Render("")
	var out []string
	for i, v := range views {
		box := l.Cards[i].Rect
		for _, line := range v.render(box.W, box.H, s.Style.NavBg, false) {
			out = append(out, edge+line+edge)
		}
	}
	return out
}

func (s *Surface) wideRow(l Layout, views []*CardView) []string {
	bg := lipgloss.Color(s.Style.NavBg)
	edge := lipgloss.NewStyle().Width(1).Height(WideCardHeight).Background(bg).Render("")
	gap := lipgloss.NewStyle().Width(cardGap).Height(WideCardHeight).Background(bg).Render("")
	blocks := []string{edge}
	used := 1
	for i, v := range views {
		if i > 0 {
			blocks = append(blocks, gap)
			used += cardGap
		}
		box := l.Cards[i].Rect
		blocks = append(blocks, strings.Join(v.render(box.W, box.H, s.Style.NavBg, true), "\n"))
		used += box.W
	}
	// Fill what the integer split leaves on the right.
	if rest := l.Inner.W - used; rest > 0 {
		blocks = append(blocks, lipgloss.NewStyle().Width(rest).Height(WideCardHeight).Background(bg).Render(""))
	}
	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")
}
