// Package simhost is an in-memory game client host. The service binary
// replays scripted sessions against it and the plugin tests use it as
// their fake.
package simhost

import (
	"maps"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
)

// Client is a scriptable hostapi.Client.
type Client struct {
	gameState   hostapi.GameState
	minimapZoom bool
	zoom        float64
	resized     bool
	varbits     map[int]int
	widgets     map[hostapi.Element]hostapi.WidgetState

	// ZoomHistory records every SetMinimapZoom call.
	ZoomHistory []float64
}

var _ hostapi.Client = (*Client)(nil)

// NewClient returns a client in the STARTING state with the host's zoom
// feature on and the fixed layout active.
func NewClient() *Client {
	return &Client{
		gameState:   hostapi.GameStateStarting,
		minimapZoom: true,
		zoom:        4.0,
		varbits:     make(map[int]int),
		widgets:     make(map[hostapi.Element]hostapi.WidgetState),
	}
}

func (c *Client) GameState() hostapi.GameState { return c.gameState }
func (c *Client) IsMinimapZoom() bool          { return c.minimapZoom }
func (c *Client) IsResized() bool              { return c.resized }
func (c *Client) VarbitValue(varbit int) int   { return c.varbits[varbit] }

// Zoom returns the last zoom set, by the plugin or the user.
func (c *Client) Zoom() float64 { return c.zoom }

func (c *Client) SetMinimapZoom(zoom float64) {
	c.zoom = zoom
	c.ZoomHistory = append(c.ZoomHistory, zoom)
}

func (c *Client) Widget(id hostapi.Element) (hostapi.WidgetState, bool) {
	w, ok := c.widgets[id]
	return w, ok
}

// Widgets returns a copy of the widget table.
func (c *Client) Widgets() map[hostapi.Element]hostapi.WidgetState {
	return maps.Clone(c.widgets)
}

func (c *Client) SetGameState(s hostapi.GameState) { c.gameState = s }
func (c *Client) SetMinimapZoomEnabled(on bool)    { c.minimapZoom = on }
func (c *Client) SetResized(on bool)               { c.resized = on }
func (c *Client) SetVarbit(varbit, value int)      { c.varbits[varbit] = value }

func (c *Client) SetWidget(id hostapi.Element, w hostapi.WidgetState) {
	c.widgets[id] = w
}

func (c *Client) RemoveWidget(id hostapi.Element) {
	delete(c.widgets, id)
}
