package hostapi

import "github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/geom"

// MouseButtonRight is the host's button id for the right mouse button.
const MouseButtonRight = 3

// ConfigChanged is emitted after a settings value changes.
type ConfigChanged struct {
	Group    string
	Key      string
	NewValue string
}

// GameStateChanged is emitted on every lifecycle transition.
type GameStateChanged struct {
	GameState GameState
}

// WidgetLoaded is emitted once a widget group has finished loading.
type WidgetLoaded struct {
	GroupID int
}

// WidgetClosed is emitted when a widget group closes.
type WidgetClosed struct {
	GroupID int
}

// FocusChanged is emitted when the client window gains or loses focus.
type FocusChanged struct {
	Focused bool
}

// MouseEvent is a native pointer event. Handlers that consume it stop the
// host from running its default handling.
type MouseEvent struct {
	Button   int
	Point    geom.Point
	consumed bool
}

// Consume marks the event as handled.
func (e *MouseEvent) Consume() { e.consumed = true }

// Consumed reports whether a handler consumed the event.
func (e *MouseEvent) Consumed() bool { return e.consumed }

// KeyEvent is a native key press or release.
type KeyEvent struct {
	KeyCode   int
	Modifiers int
}

// Handlers is the set of callbacks a plugin registers. Nil fields are
// skipped. The host invokes at most one handler per event, in emission
// order, on its update thread.
type Handlers struct {
	ConfigChanged     func(ConfigChanged)
	GameStateChanged  func(GameStateChanged)
	WidgetLoaded      func(WidgetLoaded)
	WidgetClosed      func(WidgetClosed)
	CanvasSizeChanged func()
	FocusChanged      func(FocusChanged)
	GameTick          func()
	MousePressed      func(*MouseEvent)
	KeyPressed        func(KeyEvent)
	KeyReleased       func(KeyEvent)
}

// EventSource delivers host events to subscribed handlers.
type EventSource interface {
	// Subscribe registers h and returns a function that removes it.
	Subscribe(h Handlers) (unsubscribe func())
}
