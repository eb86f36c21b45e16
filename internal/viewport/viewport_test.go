package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		width      int
		breakpoint int
		want       Class
	}{
		{name: "below breakpoint", width: 60, breakpoint: 80, want: Narrow},
		{name: "at breakpoint", width: 80, breakpoint: 80, want: Narrow},
		{name: "above breakpoint", width: 81, breakpoint: 80, want: Wide},
		{name: "default breakpoint", width: 120, breakpoint: 0, want: Wide},
		{name: "custom breakpoint", width: 100, breakpoint: 120, want: Narrow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.width, tt.breakpoint))
		})
	}
}

func TestWindow_ResizeDeliversToSubscribers(t *testing.T) {
	t.Parallel()

	w := NewWindow(Size{Width: 80, Height: 24})
	var got []Size
	sub := w.Subscribe(func(s Size) { got = append(got, s) })
	require.NotEmpty(t, sub.ID())
	assert.Equal(t, 1, w.Subscribers())

	w.Resize(Size{Width: 120, Height: 40})
	assert.Equal(t, []Size{{Width: 120, Height: 40}}, got)
	assert.Equal(t, Size{Width: 120, Height: 40}, w.Size())
}

func TestSubscription_UnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	w := NewWindow(Size{})
	calls := 0
	sub := w.Subscribe(func(Size) { calls++ })
	other := w.Subscribe(func(Size) {})
	assert.NotEqual(t, sub.ID(), other.ID())

	sub.Unsubscribe()
	sub.Unsubscribe()
	w.Resize(Size{Width: 10})

	assert.Zero(t, calls)
	assert.Equal(t, 1, w.Subscribers())
	// Size still tracks the window even with no interested subscriber.
	assert.Equal(t, 10, w.Size().Width)
}

func TestSubscription_HandlerMayUnsubscribeDuringDelivery(t *testing.T) {
	t.Parallel()

	w := NewWindow(Size{})
	var sub *Subscription
	calls := 0
	sub = w.Subscribe(func(Size) {
		calls++
		sub.Unsubscribe()
	})
	w.Resize(Size{Width: 1})
	w.Resize(Size{Width: 2})
	assert.Equal(t, 1, calls)
}
