// Package defaultzoom is the Default Minimap Zoom plugin: it forces a chosen
// minimap zoom at start-up, login and world hop, and replaces the host's
// right-click "reset zoom" on the minimap with the chosen zoom.
package defaultzoom

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/minimaparea"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/session"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/zoompolicy"
)

// ErrAlreadyStarted is returned by StartUp on a running plugin.
var ErrAlreadyStarted = errors.New("plugin already started")

// Plugin owns the session state, the zoom policy and the minimap area
// tracker of one plugin instance. All methods run on the host's update
// thread.
type Plugin struct {
	client hostapi.Client
	thread hostapi.ClientThread
	store  hostapi.ConfigStore
	events hostapi.EventSource

	cfg        Config
	dragHotkey hostapi.Keybind
	state      session.State
	policy     *zoompolicy.Policy
	tracker    *minimaparea.Tracker

	unsubscribe func()
	log         zerolog.Logger
}

// New wires a plugin to host without starting it.
func New(host hostapi.Host) (*Plugin, error) {
	if err := hostapi.Validate(host); err != nil {
		return nil, err
	}

	p := &Plugin{
		client: host.Client(),
		thread: host.ClientThread(),
		store:  host.ConfigManager(),
		events: host.EventSource(),
		cfg:    DefaultConfig(),
		log:    dzLog.With().Str("session", uuid.NewString()).Logger(),
	}
	p.policy = zoompolicy.New(p.client, &p.state, p.cfg.Flags())
	p.tracker = minimaparea.NewTracker(p.client)
	return p, nil
}

// StartUp loads the settings and subscribes the plugin's handlers.
func (p *Plugin) StartUp() error {
	if p.unsubscribe != nil {
		return ErrAlreadyStarted
	}

	p.updateConfig()
	p.dragHotkey = LoadDragHotkey(p.store)

	if p.loggedIn() {
		p.policy.MarkLoggedIn()
		if p.cfg.ZoomWhenRightClick {
			// still hopping or on the login screen: a widget event recomputes again shortly
			p.requestRecompute()
		}
	}

	p.unsubscribe = p.events.Subscribe(p.Handlers())
	p.log.Info().
		Stringer("zoom_level", p.cfg.ZoomLevel).
		Stringer("drag_hotkey", p.dragHotkey).
		Bool("logged_in_once", p.state.LoggedInOnce).
		Msg("plugin started")
	return nil
}

// ShutDown unsubscribes the handlers and drops the region. It is a no-op
// on a plugin that is not running.
func (p *Plugin) ShutDown() {
	if p.unsubscribe == nil {
		return
	}
	p.unsubscribe()
	p.unsubscribe = nil
	p.state.InOverlayManagingMode = false
	p.tracker.Clear()
	p.log.Info().Msg("plugin stopped")
}

// Config returns the settings currently in effect.
func (p *Plugin) Config() Config { return p.cfg }

// State returns a copy of the session flags.
func (p *Plugin) State() session.State { return p.state }

// Tracker exposes the minimap area tracker.
func (p *Plugin) Tracker() *minimaparea.Tracker { return p.tracker }

func (p *Plugin) updateConfig() {
	p.cfg = LoadConfig(p.store)
	p.policy.SetFlags(p.cfg.Flags())
}

func (p *Plugin) loggedIn() bool {
	return p.client.GameState() == hostapi.GameStateLoggedIn
}

// dragTracking reports whether drag hotkey and focus events matter: only
// resizable layouts let the user drag the minimap around.
func (p *Plugin) dragTracking() bool {
	return p.cfg.ZoomWhenRightClick && p.loggedIn() &&
		p.client.IsMinimapZoom() && p.client.IsResized()
}

func (p *Plugin) requestRecompute() {
	p.thread.InvokeLater(func() {
		p.tracker.Recompute()
	})
}

func (p *Plugin) requestCheck() {
	p.thread.InvokeLater(func() {
		p.tracker.CheckIfChanged()
	})
}
