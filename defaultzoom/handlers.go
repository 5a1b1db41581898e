package defaultzoom

import (
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/zoomlevel"
)

// Handlers returns the callbacks the plugin subscribes with.
func (p *Plugin) Handlers() hostapi.Handlers {
	return hostapi.Handlers{
		ConfigChanged:     p.onConfigChanged,
		GameStateChanged:  p.onGameStateChanged,
		WidgetLoaded:      p.onWidgetLoaded,
		WidgetClosed:      p.onWidgetClosed,
		CanvasSizeChanged: p.onCanvasSizeChanged,
		FocusChanged:      p.onFocusChanged,
		GameTick:          p.onGameTick,
		MousePressed:      p.onMousePressed,
		KeyPressed:        p.onKeyPressed,
		KeyReleased:       p.onKeyReleased,
	}
}

func (p *Plugin) onConfigChanged(e hostapi.ConfigChanged) {
	switch e.Group {
	case ConfigGroup:
		previous := p.cfg.ZoomLevel
		p.updateConfig()
		p.log.Debug().Str("key", e.Key).Str("value", e.NewValue).Msg("config changed")

		switch e.Key {
		case KeyZoomLevel:
			// 无效值不应用默认缩放，保留上一次的有效值。
			// An invalid value keeps the last valid level and applies nothing.
			if _, err := zoomlevel.Parse(e.NewValue); err != nil {
				p.cfg.ZoomLevel = previous
				p.policy.SetFlags(p.cfg.Flags())
				return
			}
			p.policy.HandleZoomLevelChanged(p.client.GameState())
		case KeyZoomWhenRightClick:
			if !p.cfg.ZoomWhenRightClick {
				p.tracker.Clear()
			} else if p.loggedIn() {
				p.requestRecompute()
			}
		}

	case HostConfigGroup:
		if e.Key == KeyDragHotkey {
			p.dragHotkey = LoadDragHotkey(p.store)
			p.log.Debug().Stringer("drag_hotkey", p.dragHotkey).Msg("drag hotkey reloaded")
		}
	}
}

func (p *Plugin) onGameStateChanged(e hostapi.GameStateChanged) {
	// 登出或跳世界时拖拽热键的释放事件可能丢失。
	// A hotkey release may never arrive once the session leaves LOGGED_IN.
	if e.GameState != hostapi.GameStateLoggedIn {
		p.state.InOverlayManagingMode = false
	}
	p.policy.HandleGameState(e.GameState)
}

// The minimap widget does not exist yet when LOGGED_IN fires, so the region
// is built once its group has loaded.
func (p *Plugin) onWidgetLoaded(e hostapi.WidgetLoaded) {
	if !p.cfg.ZoomWhenRightClick || e.GroupID != hostapi.GroupMinimap {
		return
	}
	p.thread.InvokeLater(p.requestRecompute)
}

// Widget bounds are wrong while the click-to-play screen is up.
func (p *Plugin) onWidgetClosed(e hostapi.WidgetClosed) {
	if !p.cfg.ZoomWhenRightClick || e.GroupID != hostapi.GroupLoginClickToPlay {
		return
	}
	p.requestRecompute()
}

func (p *Plugin) onCanvasSizeChanged() {
	if !p.cfg.ZoomWhenRightClick || !p.loggedIn() {
		return
	}
	p.tracker.ArmSettle()
	p.requestCheck()
}

// Losing focus while the drag hotkey is down swallows its release event.
func (p *Plugin) onFocusChanged(e hostapi.FocusChanged) {
	if e.Focused || !p.state.InOverlayManagingMode {
		return
	}
	p.state.InOverlayManagingMode = false
	if p.dragTracking() {
		p.requestCheck()
	}
}

func (p *Plugin) onGameTick() {
	if !p.cfg.ZoomWhenRightClick || !p.loggedIn() {
		return
	}
	// the minimap may be mid-drag, the hotkey release rechecks it
	if p.state.InOverlayManagingMode {
		return
	}
	p.tracker.Tick()
}

func (p *Plugin) onMousePressed(e *hostapi.MouseEvent) {
	if !p.cfg.ZoomWhenRightClick || !p.client.IsMinimapZoom() ||
		e.Button != hostapi.MouseButtonRight || !p.loggedIn() {
		return
	}
	if !p.tracker.Contains(e.Point) {
		return
	}
	p.policy.Apply()
	e.Consume()
	p.log.Debug().Int("x", e.Point.X).Int("y", e.Point.Y).Msg("minimap right-click intercepted")
}

// Mouse events do not reach the plugin while the drag hotkey is held, so
// the hotkey itself brackets a possible minimap drag.
func (p *Plugin) onKeyPressed(e hostapi.KeyEvent) {
	if !p.dragHotkey.Matches(e) || !p.dragTracking() {
		return
	}
	p.state.InOverlayManagingMode = true
}

// The flag is dropped on every release so a layout or feature change made
// mid-drag cannot leave ticks suppressed.
func (p *Plugin) onKeyReleased(e hostapi.KeyEvent) {
	if !p.dragHotkey.Matches(e) {
		return
	}
	p.state.InOverlayManagingMode = false
	if p.dragTracking() {
		p.requestCheck()
	}
}
