package simhost

import (
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/geom"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
)

// Host assembles a Client, Bus and Settings into a hostapi.Host.
type Host struct {
	SimClient *Client
	Bus       *Bus
	Settings  *Settings
}

var _ hostapi.Host = (*Host)(nil)

// New returns a host with empty settings.
func New() *Host {
	bus := NewBus()
	return &Host{
		SimClient: NewClient(),
		Bus:       bus,
		Settings:  NewSettings(bus),
	}
}

// WithSettings replaces the settings store, rebinding it to h's bus.
func (h *Host) WithSettings(s *Settings) *Host {
	s.bus = h.Bus
	h.Settings = s
	return h
}

func (h *Host) Client() hostapi.Client             { return h.SimClient }
func (h *Host) ClientThread() hostapi.ClientThread { return h.Bus }
func (h *Host) ConfigManager() hostapi.ConfigStore { return h.Settings }
func (h *Host) EventSource() hostapi.EventSource   { return h.Bus }

// SetGameState changes the client state and emits the transition.
func (h *Host) SetGameState(s hostapi.GameState) {
	h.SimClient.SetGameState(s)
	h.Bus.GameStateChanged(hostapi.GameStateChanged{GameState: s})
}

// RightClick presses the right mouse button at (x, y) and reports whether a
// handler consumed the press.
func (h *Host) RightClick(x, y int) bool {
	e := &hostapi.MouseEvent{Button: hostapi.MouseButtonRight, Point: geom.Point{X: x, Y: y}}
	return h.Bus.MousePressed(e)
}

// Ticks advances n game ticks.
func (h *Host) Ticks(n int) {
	for i := 0; i < n; i++ {
		h.Bus.GameTick()
	}
}
