// Package surface is the retained render tree the nav animates: a container
// whose height is tweened, a content region holding the card views, and the
// cards themselves. Layout and rendering read the tree; the animation core
// writes to it.
package surface

import (
	"math"
	"sort"

	"github.com/bestpick/cardnav/internal/config"
	"github.com/bestpick/cardnav/internal/viewport"
)

// Geometry in terminal rows.
const (
	// TopBarHeight is the collapsed height of the container.
	TopBarHeight = 3
	// ContentPadding is the gap below the cards when expanded.
	ContentPadding = 1
	// WideHeight is the expanded container height on wide terminals.
	WideHeight = 13
	// WideCardHeight is the fixed card height in the wide row layout.
	WideCardHeight = WideHeight - TopBarHeight - ContentPadding
	// MinCardHeight is the smallest stacked card.
	MinCardHeight = 3
)

// AutoHeight means the element sizes to its content.
const AutoHeight = -1

// SizeSource reports the current terminal size.
type SizeSource interface {
	Size() viewport.Size
}

// Overflow controls whether the container clips its content.
type Overflow int

const (
	OverflowHidden Overflow = iota
	OverflowVisible
)

// Position selects how the content region participates in layout.
type Position int

const (
	// Absolute pins the region under the top bar and sizes it by the
	// container's height; it does not contribute to layout.
	Absolute Position = iota
	// Static puts the region in flow so it takes its natural height.
	Static
)

// Container is the outer nav box.
type Container struct {
	Height   float64
	Overflow Overflow
}

// Rows is the container height rounded to whole rows.
func (c *Container) Rows() int { return int(math.Round(c.Height)) }

// ContentStyle is the set of properties that control the content region's
// visibility and layout.
type ContentStyle struct {
	Visible     bool
	Interactive bool
	Position    Position
	Height      int
}

// Content is the region below the top bar holding the cards.
type Content struct {
	ContentStyle

	surface *Surface
}

// Style snapshots the current properties.
func (c *Content) Style() ContentStyle { return c.ContentStyle }

// Restore puts back a snapshot taken with Style.
func (c *Content) Restore(st ContentStyle) { c.ContentStyle = st }

// ScrollHeight is the laid-out height of the region. Only an in-flow region
// with automatic height reports its natural content height; an absolutely
// positioned one is as tall as the container leaves room for.
func (c *Content) ScrollHeight() int {
	switch {
	case c.Height != AutoHeight:
		return c.Height
	case c.Position == Static:
		return c.surface.naturalContentHeight()
	default:
		if c.surface.container == nil {
			return 0
		}
		return max(c.surface.container.Rows()-TopBarHeight, 0)
	}
}

// CardView is the render node of one card.
type CardView struct {
	Index   int
	Card    config.Card
	OffsetY float64
	Opacity float64
}

// Registry maps card index to its view.
type Registry struct {
	views map[int]*CardView
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{views: make(map[int]*CardView)}
}

// Set installs v at index i, replacing any previous view.
func (r *Registry) Set(i int, v *CardView) {
	v.Index = i
	r.views[i] = v
}

// Get returns the view at index i.
func (r *Registry) Get(i int) (*CardView, bool) {
	v, ok := r.views[i]
	return v, ok
}

// Len is the number of registered views.
func (r *Registry) Len() int { return len(r.views) }

// Views returns the views ordered by index.
func (r *Registry) Views() []*CardView {
	out := make([]*CardView, 0, len(r.views))
	for _, v := range r.views {
		out = append(out, v)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Index < out[b].Index })
	return out
}

// Clear drops every view.
func (r *Registry) Clear() { clear(r.views) }

// Style carries the presentation hints from config. The animation core never
// reads them.
type Style struct {
	Logo           string
	LogoAlt        string
	BrandText      string
	BrandTextClass string
	NavBg          string
	MenuColor      string
	CtaBg          string
	CtaText        string
}

// StyleFrom copies the presentation hints out of c.
func StyleFrom(c *config.Config) Style {
	return Style{
		Logo:           c.Logo,
		LogoAlt:        c.LogoAlt,
		BrandText:      c.BrandText,
		BrandTextClass: c.BrandTextClass,
		NavBg:          c.NavBgClass,
		MenuColor:      c.MenuColorClass,
		CtaBg:          c.CtaBgClass,
		CtaText:        c.CtaTextClass,
	}
}

// Surface is the root of the render tree.
type Surface struct {
	Style      Style
	Breakpoint int

	window    SizeSource
	container *Container
	content   *Content
	cards     *Registry
}

// New builds an attached tree for cfg, sized by window.
func New(window SizeSource, cfg *config.Config) *Surface {
	s := &Surface{
		Style:      StyleFrom(cfg),
		Breakpoint: cfg.Layout.Breakpoint,
		window:     window,
		container:  &Container{Height: TopBarHeight, Overflow: OverflowHidden},
		cards:      NewRegistry(),
	}
	s.content = &Content{
		ContentStyle: ContentStyle{Position: Absolute, Height: AutoHeight},
		surface:      s,
	}
	s.SetCards(cfg.Cards())
	return s
}

// Container returns the container node, or nil once detached.
func (s *Surface) Container() *Container { return s.container }

// Content returns the content region, or nil once detached.
func (s *Surface) Content() *Content { return s.content }

// Cards returns the card arena.
func (s *Surface) Cards() *Registry { return s.cards }

// Attached reports whether the tree can still be laid out.
func (s *Surface) Attached() bool { return s.container != nil }

// Size is the current terminal size.
func (s *Surface) Size() viewport.Size {
	if s.window == nil {
		return viewport.Size{}
	}
	return s.window.Size()
}

// Class classifies the current terminal width.
func (s *Surface) Class() viewport.Class {
	return viewport.Classify(s.Size().Width, s.Breakpoint)
}

// SetCards repopulates the arena from cards, in order.
func (s *Surface) SetCards(cards []config.Card) {
	s.cards.Clear()
	for i, c := range cards {
		s.cards.Set(i, &CardView{Card: c, Opacity: 1})
	}
}

// Detach drops the tree. Lookups return nil afterwards.
func (s *Surface) Detach() {
	s.cards.Clear()
	s.container = nil
	s.content = nil
}

// naturalContentHeight is the height the cards take in flow: stacked card
// heights when narrow, the fixed row when wide.
func (s *Surface) naturalContentHeight() int {
	if s.Class() == viewport.Wide {
		if s.cards.Len() == 0 {
			return 0
		}
		return WideCardHeight
	}
	w := s.cardWidth()
	total := 0
	for _, v := range s.cards.Views() {
		total += v.NaturalHeight(w)
	}
	return total
}
