package simhost

import (
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
)

// Bus is a synchronous event source and client thread. Events reach
// handlers in subscription order. Work passed to InvokeLater runs after the
// current event has been delivered to every handler, in FIFO order,
// including work queued while draining.
type Bus struct {
	subs    []*subscription
	pending []func()
}

type subscription struct {
	h      hostapi.Handlers
	active bool
}

var (
	_ hostapi.EventSource  = (*Bus)(nil)
	_ hostapi.ClientThread = (*Bus)(nil)
)

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(h hostapi.Handlers) func() {
	s := &subscription{h: h, active: true}
	b.subs = append(b.subs, s)
	return func() {
		if !s.active {
			return
		}
		s.active = false
		for i, other := range b.subs {
			if other == s {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				break
			}
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (b *Bus) Subscribers() int { return len(b.subs) }

func (b *Bus) InvokeLater(fn func()) {
	b.pending = append(b.pending, fn)
}

// Drain runs queued client thread work until the queue is empty.
func (b *Bus) Drain() {
	for len(b.pending) > 0 {
		fn := b.pending[0]
		b.pending = b.pending[1:]
		fn()
	}
}

func (b *Bus) each(fn func(h hostapi.Handlers)) {
	// handlers may unsubscribe while we iterate
	subs := append([]*subscription(nil), b.subs...)
	for _, s := range subs {
		if s.active {
			fn(s.h)
		}
	}
	b.Drain()
}

func (b *Bus) ConfigChanged(e hostapi.ConfigChanged) {
	b.each(func(h hostapi.Handlers) {
		if h.ConfigChanged != nil {
			h.ConfigChanged(e)
		}
	})
}

func (b *Bus) GameStateChanged(e hostapi.GameStateChanged) {
	b.each(func(h hostapi.Handlers) {
		if h.GameStateChanged != nil {
			h.GameStateChanged(e)
		}
	})
}

func (b *Bus) WidgetLoaded(e hostapi.WidgetLoaded) {
	b.each(func(h hostapi.Handlers) {
		if h.WidgetLoaded != nil {
			h.WidgetLoaded(e)
		}
	})
}

func (b *Bus) WidgetClosed(e hostapi.WidgetClosed) {
	b.each(func(h hostapi.Handlers) {
		if h.WidgetClosed != nil {
			h.WidgetClosed(e)
		}
	})
}

func (b *Bus) CanvasSizeChanged() {
	b.each(func(h hostapi.Handlers) {
		if h.CanvasSizeChanged != nil {
			h.CanvasSizeChanged()
		}
	})
}

func (b *Bus) FocusChanged(e hostapi.FocusChanged) {
	b.each(func(h hostapi.Handlers) {
		if h.FocusChanged != nil {
			h.FocusChanged(e)
		}
	})
}

func (b *Bus) GameTick() {
	b.each(func(h hostapi.Handlers) {
		if h.GameTick != nil {
			h.GameTick()
		}
	})
}

// MousePressed delivers e until a handler consumes it and reports whether
// one did.
func (b *Bus) MousePressed(e *hostapi.MouseEvent) bool {
	b.each(func(h hostapi.Handlers) {
		if h.MousePressed != nil && !e.Consumed() {
			h.MousePressed(e)
		}
	})
	return e.Consumed()
}

func (b *Bus) KeyPressed(e hostapi.KeyEvent) {
	b.each(func(h hostapi.Handlers) {
		if h.KeyPressed != nil {
			h.KeyPressed(e)
		}
	})
}

func (b *Bus) KeyReleased(e hostapi.KeyEvent) {
	b.each(func(h hostapi.Handlers) {
		if h.KeyReleased != nil {
			h.KeyReleased(e)
		}
	})
}
