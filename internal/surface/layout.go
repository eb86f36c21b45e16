package surface

import (
	"math"

	"github.com/bestpick/cardnav/internal/viewport"
)

const (
	// MaxNavWidth caps the inner width of the nav on large terminals.
	MaxNavWidth = 100
	// MinNavWidth keeps the top bar legible on tiny terminals.
	MinNavWidth = 24
	// HamburgerWidth is the number of columns the trigger occupies.
	HamburgerWidth = 4
	// NavMarginTop is the gap between the terminal top and the nav frame.
	NavMarginTop = 1

	sideMargin = 2
	cardGap    = 1
	borderSize = 1
)

// Rect is a cell rectangle in terminal coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Bottom is the first row below r.
func (r Rect) Bottom() int { return r.Y + r.H }

// CardBox is the laid-out slot of one card and the rows of its links.
type CardBox struct {
	Index int
	Rect  Rect
	Links []Rect
}

// Layout is the resolved geometry of the nav for the current terminal size
// and tree state.
type Layout struct {
	Class     viewport.Class
	Frame     Rect
	Inner     Rect
	TopBar    Rect
	Hamburger Rect
	// Content is the content region before clipping by the container.
	Content Rect
	Cards   []CardBox
}

// Visible is the part of the content region the container actually shows.
func (l Layout) Visible() Rect {
	r := l.Content
	if bottom := l.Inner.Bottom(); r.Bottom() > bottom {
		r.H = max(bottom-r.Y, 0)
	}
	return r
}

// navWidth is the inner nav width for a terminal width.
func navWidth(termWidth int) int {
	w := termWidth - 2*sideMargin - 2*borderSize
	return min(max(w, MinNavWidth), MaxNavWidth)
}

func (s *Surface) cardWidth() int {
	return navWidth(s.Size().Width) - 2
}

// wideCardWidth splits the row between n cards.
func wideCardWidth(inner, n int) int {
	if n <= 0 {
		return 0
	}
	return max((inner-2-cardGap*(n-1))/n, 1)
}

// Layout resolves geometry. It returns the zero Layout once detached.
func (s *Surface) Layout() Layout {
	if s.container == nil || s.content == nil {
		return Layout{}
	}
	size := s.Size()
	w := navWidth(size.Width)
	rows := s.container.Rows()
	if s.container.Overflow == OverflowVisible {
		rows = max(rows, TopBarHeight+s.content.ScrollHeight())
	}

	l := Layout{Class: s.Class()}
	frameW := w + 2*borderSize
	l.Frame = Rect{X: max((size.Width-frameW)/2, 0), Y: NavMarginTop, W: frameW, H: rows + 2*borderSize}
	l.Inner = Rect{X: l.Frame.X + borderSize, Y: l.Frame.Y + borderSize, W: w, H: rows}
	l.TopBar = Rect{X: l.Inner.X, Y: l.Inner.Y, W: w, H: TopBarHeight}
	l.Hamburger = Rect{X: l.Inner.X, Y: l.Inner.Y, W: HamburgerWidth, H: TopBarHeight}
	l.Content = Rect{X: l.Inner.X, Y: l.Inner.Y + TopBarHeight, W: w, H: s.content.ScrollHeight()}

	views := s.cards.Views()
	switch l.Class {
	case viewport.Wide:
		cw := wideCardWidth(w, len(views))
		for i, v := range views {
			r := Rect{X: l.Inner.X + 1 + i*(cw+cardGap), Y: l.Content.Y, W: cw, H: WideCardHeight}
			box := CardBox{Index: v.Index, Rect: r}
			// Links sit at the bottom of a wide card; those that do not fit
			// under the label are not drawn and get no rect.
			shift := offsetRows(v.OffsetY)
			n := fittingLinks(len(v.Card.Links), r.H)
			first := r.Y + shift + r.H - n
			for j := range n {
				box.Links = append(box.Links, Rect{X: r.X + 1, Y: first + j, W: r.W - 2, H: 1})
			}
			l.Cards = append(l.Cards, box)
		}
	default:
		y := l.Content.Y
		cw := w - 2
		for _, v := range views {
			h := v.NaturalHeight(cw)
			r := Rect{X: l.Inner.X + 1, Y: y, W: cw, H: h}
			box := CardBox{Index: v.Index, Rect: r}
			shift := offsetRows(v.OffsetY)
			for j := range v.Card.Links {
				box.Links = append(box.Links, Rect{X: r.X + 1, Y: r.Y + shift + 1 + j, W: r.W - 2, H: 1})
			}
			l.Cards = append(l.Cards, box)
			y += h
		}
	}
	return l
}

// fittingLinks is how many of n links a fixed-height card body shows: every
// row below the label.
func fittingLinks(n, height int) int {
	return max(min(n, height-1), 0)
}

func offsetRows(offset float64) int {
	return max(int(math.Round(offset)), 0)
}

// TargetKind classifies what a pointer hit landed on.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetHamburger
	TargetCard
	TargetLink
)

// Target is the result of a hit test.
type Target struct {
	Kind TargetKind
	Card int
	Link int
}

// HitTest resolves the cell (x, y). Cards and links only respond while the
// content region is visible and interactive.
func (s *Surface) HitTest(x, y int) Target {
	l := s.Layout()
	if !l.Frame.Contains(x, y) {
		return Target{}
	}
	if l.Hamburger.Contains(x, y) {
		return Target{Kind: TargetHamburger}
	}
	if !s.content.Visible || !s.content.Interactive || !l.Visible().Contains(x, y) {
		return Target{}
	}
	for _, box := range l.Cards {
		if !box.Rect.Contains(x, y) {
			continue
		}
		for j, lr := range box.Links {
			if lr.Contains(x, y) && lr.Y < box.Rect.Bottom() {
				return Target{Kind: TargetLink, Card: box.Index, Link: j}
			}
		}
		return Target{Kind: TargetCard, Card: box.Index}
	}
	return Target{}
}
