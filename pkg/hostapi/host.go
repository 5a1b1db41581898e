// Package hostapi describes the game client the plugin runs inside.
//
// Everything here is owned by the host: it is queried on demand and never
// cached by the plugin beyond a single recomputation.
package hostapi

import (
	"errors"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/geom"
)

// ErrNilHost indicates a required host collaborator was not provided.
var ErrNilHost = errors.New("host collaborator is nil")

// VarbitSidePanels is the varbit that is 1 when the resizable layout uses
// the modern side panels.
const VarbitSidePanels = 4607

// WidgetState is a widget's screen rectangle and visibility.
type WidgetState struct {
	Bounds geom.Rect `json:"bounds" yaml:"bounds"`
	Hidden bool      `json:"hidden" yaml:"hidden"`
}

// Client is the game client.
type Client interface {
	GameState() GameState
	// IsMinimapZoom reports whether the host's minimap zoom feature is on.
	IsMinimapZoom() bool
	SetMinimapZoom(zoom float64)
	// IsResized reports whether a resizable layout is active.
	IsResized() bool
	VarbitValue(varbit int) int
	// Widget returns the widget's state, or false if it does not exist.
	Widget(id Element) (WidgetState, bool)
}

// ClientThread runs work on the host's serialized update thread.
type ClientThread interface {
	InvokeLater(fn func())
}

// ConfigStore is the host's typed key/value settings store.
type ConfigStore interface {
	GetConfiguration(group, key string) (string, bool)
}

// Host bundles the collaborators a plugin is started with.
type Host interface {
	Client() Client
	ClientThread() ClientThread
	ConfigManager() ConfigStore
	EventSource() EventSource
}

// Validate returns ErrNilHost if any collaborator is missing.
func Validate(h Host) error {
	if h == nil || h.Client() == nil || h.ClientThread() == nil ||
		h.ConfigManager() == nil || h.EventSource() == nil {
		return ErrNilHost
	}
	return nil
}
