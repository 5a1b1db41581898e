// Package zoompolicy decides when the configured minimap zoom is forced.
package zoompolicy

import (
	"github.com/rs/zerolog"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/logging"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/session"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/zoomlevel"
)

// policyLog 是 zoompolicy 模块的子日志器。
// policyLog is the sub-logger for the zoompolicy module.
var policyLog zerolog.Logger = logging.Module("zoompolicy")

// Flags are the user's choices of when to force the zoom.
type Flags struct {
	Level        zoomlevel.Level
	OnStart      bool
	OnLogin      bool
	OnHop        bool
	OnRightClick bool
}

// Zoomer is the part of the client the policy drives.
type Zoomer interface {
	IsMinimapZoom() bool
	SetMinimapZoom(zoom float64)
}

// ShouldApplyOnLogin reports whether a LOGGED_IN transition observed with
// state should force the zoom.
//
// LOGGED_IN fires both on a fresh login and after every hop. HOPPING fires
// only for hops and always before its LOGGED_IN, so CurrentlyHopping tells
// the two apart, and LoggedInOnce marks the first login of the process.
func ShouldApplyOnLogin(f Flags, state session.State) bool {
	return (f.OnHop && state.CurrentlyHopping) ||
		(f.OnLogin && !state.CurrentlyHopping) ||
		(f.OnStart && !state.LoggedInOnce)
}

// Policy applies Flags to lifecycle transitions.
type Policy struct {
	zoomer Zoomer
	state  *session.State
	flags  Flags
}

// New returns a Policy writing its lifecycle flags into state.
func New(zoomer Zoomer, state *session.State, flags Flags) *Policy {
	return &Policy{zoomer: zoomer, state: state, flags: flags}
}

// Flags returns the flags currently in effect.
func (p *Policy) Flags() Flags { return p.flags }

// SetFlags replaces the flags, e.g. after a settings change.
func (p *Policy) SetFlags(f Flags) { p.flags = f }

// HandleGameState advances the lifecycle state and reports whether the
// zoom was applied.
func (p *Policy) HandleGameState(gs hostapi.GameState) bool {
	switch gs {
	case hostapi.GameStateHopping:
		// the host ignores zoom changes mid-hop, wait for LOGGED_IN
		p.state.CurrentlyHopping = true
		return false

	case hostapi.GameStateLoggedIn:
		applied := false
		if p.zoomer.IsMinimapZoom() && ShouldApplyOnLogin(p.flags, *p.state) {
			policyLog.Debug().
				Bool("hopping", p.state.CurrentlyHopping).
				Bool("logged_in_once", p.state.LoggedInOnce).
				Msg("forcing zoom on login")
			applied = p.Apply()
		}
		p.state.LoggedInOnce = true
		p.state.CurrentlyHopping = false
		return applied
	}
	return false
}

// MarkLoggedIn records a session that was already logged in when the
// plugin started, so the start-up zoom is not applied at the next login.
func (p *Policy) MarkLoggedIn() {
	p.state.LoggedInOnce = true
}

// HandleZoomLevelChanged re-applies a live edit of the magnitude while the
// session is logged in, without waiting for the next transition.
func (p *Policy) HandleZoomLevelChanged(gs hostapi.GameState) bool {
	if gs != hostapi.GameStateLoggedIn || !p.zoomer.IsMinimapZoom() {
		return false
	}
	return p.Apply()
}

// Apply sets the configured magnitude unconditionally.
func (p *Policy) Apply() bool {
	zoom := p.flags.Level.Magnitude()
	p.zoomer.SetMinimapZoom(zoom)
	policyLog.Info().Float64("zoom", zoom).Msg("minimap zoom applied")
	return true
}
