package defaultzoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/geom"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/simhost"
)

var (
	fixedMinimap = geom.Rect{X: 550, Y: 9, Width: 146, Height: 151}
	compass      = geom.Rect{X: 545, Y: 4, Width: 38, Height: 38}

	resizableMinimap = geom.Rect{X: 1100, Y: 8, Width: 156, Height: 156}
	worldMapOrb      = geom.Rect{X: 1220, Y: 130, Width: 30, Height: 30}

	insideFixed   = geom.Point{X: 620, Y: 80}
	onCompass     = geom.Point{X: 560, Y: 20}
	outsideFixed  = geom.Point{X: 300, Y: 300}
	resizedCenter = geom.Point{X: 1178, Y: 86}
)

// newHost returns a logged-out fixed-layout host with the minimap widgets
// in place.
func newHost(t *testing.T, settings map[string]string) *simhost.Host {
	t.Helper()
	h := simhost.New()
	for key, value := range settings {
		h.Settings.SetDefault(ConfigGroup, key, value)
	}
	c := h.SimClient
	c.SetGameState(hostapi.GameStateLoginScreen)
	c.SetWidget(hostapi.ElementFixedMinimapDrawArea, hostapi.WidgetState{Bounds: fixedMinimap})
	c.SetWidget(hostapi.ElementCompass, hostapi.WidgetState{Bounds: compass})
	return h
}

func start(t *testing.T, h *simhost.Host) *Plugin {
	t.Helper()
	p, err := Register(h)
	require.NoError(t, err)
	t.Cleanup(p.ShutDown)
	return p
}

// login walks the host through a fresh login and the minimap load.
func login(h *simhost.Host) {
	h.SetGameState(hostapi.GameStateLoggingIn)
	h.SetGameState(hostapi.GameStateLoggedIn)
	h.Bus.WidgetLoaded(hostapi.WidgetLoaded{GroupID: hostapi.GroupMinimap})
}

func hop(h *simhost.Host) {
	h.SetGameState(hostapi.GameStateHopping)
	h.SetGameState(hostapi.GameStateLoading)
	h.SetGameState(hostapi.GameStateLoggedIn)
	h.Bus.WidgetLoaded(hostapi.WidgetLoaded{GroupID: hostapi.GroupMinimap})
}

func TestNew_NilHost(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, hostapi.ErrNilHost)

	_, err = Register(hostWithoutEvents{simhost.New()})
	assert.ErrorIs(t, err, hostapi.ErrNilHost)
}

type hostWithoutEvents struct{ *simhost.Host }

func (hostWithoutEvents) EventSource() hostapi.EventSource { return nil }

func TestStartUp_Twice(t *testing.T) {
	h := newHost(t, nil)
	p := start(t, h)
	assert.ErrorIs(t, p.StartUp(), ErrAlreadyStarted)
	assert.Equal(t, 1, h.Bus.Subscribers())
}

func TestShutDown_Unsubscribes(t *testing.T) {
	h := newHost(t, nil)
	p := start(t, h)
	login(h)
	require.NotNil(t, p.Tracker().Region())

	p.ShutDown()
	p.ShutDown()
	assert.Equal(t, 0, h.Bus.Subscribers())
	assert.Nil(t, p.Tracker().Region())
	assert.False(t, h.RightClick(insideFixed.X, insideFixed.Y))
}

func TestZoomOnStart(t *testing.T) {
	h := newHost(t, map[string]string{KeyZoomLevel: "Zoom600"})
	p := start(t, h)

	login(h)
	assert.Equal(t, []float64{6.0}, h.SimClient.ZoomHistory)
	assert.True(t, p.State().LoggedInOnce)

	h.SetGameState(hostapi.GameStateLoginScreen)
	login(h)
	hop(h)
	assert.Len(t, h.SimClient.ZoomHistory, 1, "start-up zoom is applied once")
}

func TestZoomOnLoginAndHop(t *testing.T) {
	h := newHost(t, map[string]string{
		KeyZoomWhenStartingClient: "false",
		KeyZoomWhenLogin:          "true",
		KeyZoomWhenHopping:        "false",
	})
	p := start(t, h)

	login(h)
	hop(h)
	h.SetGameState(hostapi.GameStateLoginScreen)
	login(h)
	assert.Equal(t, []float64{4.0, 4.0}, h.SimClient.ZoomHistory, "logins only, not hops")

	h.Settings.Set(ConfigGroup, KeyZoomWhenLogin, "false")
	h.Settings.Set(ConfigGroup, KeyZoomWhenHopping, "true")
	h.SetGameState(hostapi.GameStateHopping)
	assert.True(t, p.State().CurrentlyHopping)
	assert.Len(t, h.SimClient.ZoomHistory, 2, "nothing is applied mid-hop")
	h.SetGameState(hostapi.GameStateLoggedIn)
	assert.Len(t, h.SimClient.ZoomHistory, 3)
	assert.False(t, p.State().CurrentlyHopping)
}

func TestStartUp_AlreadyLoggedIn(t *testing.T) {
	h := newHost(t, nil)
	h.SimClient.SetGameState(hostapi.GameStateLoggedIn)
	p := start(t, h)
	h.Bus.Drain()

	assert.True(t, p.State().LoggedInOnce)
	require.NotNil(t, p.Tracker().Region(), "region is built at start-up when logged in")

	hop(h)
	assert.Empty(t, h.SimClient.ZoomHistory, "start-up zoom belongs to the client start, not the plugin start")
}

func TestZoomLevelLiveEdit(t *testing.T) {
	h := newHost(t, map[string]string{KeyZoomWhenStartingClient: "false"})
	start(t, h)

	h.Settings.Set(ConfigGroup, KeyZoomLevel, "Zoom250")
	assert.Empty(t, h.SimClient.ZoomHistory, "not logged in")

	login(h)
	h.Settings.Set(ConfigGroup, KeyZoomLevel, "Zoom750")
	assert.Equal(t, []float64{7.5}, h.SimClient.ZoomHistory)

	h.SimClient.SetMinimapZoomEnabled(false)
	h.Settings.Set(ConfigGroup, KeyZoomLevel, "Zoom800")
	assert.Len(t, h.SimClient.ZoomHistory, 1, "host zoom disabled")
}

func TestRightClickInterception(t *testing.T) {
	h := newHost(t, map[string]string{
		KeyZoomLevel:              "Zoom525",
		KeyZoomWhenStartingClient: "false",
	})
	p := start(t, h)

	assert.False(t, h.RightClick(insideFixed.X, insideFixed.Y), "logged out")
	login(h)
	require.NotNil(t, p.Tracker().Region())

	assert.True(t, h.RightClick(insideFixed.X, insideFixed.Y))
	assert.Equal(t, []float64{5.25}, h.SimClient.ZoomHistory)

	assert.False(t, h.RightClick(onCompass.X, onCompass.Y), "overlapping compass")
	assert.False(t, h.RightClick(outsideFixed.X, outsideFixed.Y))

	left := &hostapi.MouseEvent{Button: 1, Point: insideFixed}
	assert.False(t, h.Bus.MousePressed(left), "left clicks pass through")

	h.SimClient.SetMinimapZoomEnabled(false)
	assert.False(t, h.RightClick(insideFixed.X, insideFixed.Y), "host zoom disabled")
	assert.Len(t, h.SimClient.ZoomHistory, 1)
}

func TestRightClick_Toggle(t *testing.T) {
	h := newHost(t, nil)
	p := start(t, h)
	login(h)

	h.Settings.Set(ConfigGroup, KeyZoomWhenRightClick, "false")
	assert.Nil(t, p.Tracker().Region())
	assert.False(t, h.RightClick(insideFixed.X, insideFixed.Y))

	h.Bus.WidgetLoaded(hostapi.WidgetLoaded{GroupID: hostapi.GroupMinimap})
	h.Ticks(3)
	assert.Nil(t, p.Tracker().Region(), "feature off: nothing recomputes")

	h.Settings.Set(ConfigGroup, KeyZoomWhenRightClick, "true")
	assert.NotNil(t, p.Tracker().Region())
	assert.True(t, h.RightClick(insideFixed.X, insideFixed.Y))
}

func TestHiddenMinimap(t *testing.T) {
	h := newHost(t, nil)
	p := start(t, h)
	login(h)

	h.SimClient.SetWidget(hostapi.ElementFixedMinimapDrawArea, hostapi.WidgetState{Bounds: fixedMinimap, Hidden: true})
	h.Ticks(1)
	assert.Nil(t, p.Tracker().Region())
	before := len(h.SimClient.ZoomHistory)
	for _, pt := range []geom.Point{insideFixed, onCompass, outsideFixed} {
		assert.False(t, h.RightClick(pt.X, pt.Y))
	}
	assert.Len(t, h.SimClient.ZoomHistory, before)
}

func TestClickToPlayClose(t *testing.T) {
	h := newHost(t, nil)
	p := start(t, h)

	h.SetGameState(hostapi.GameStateLoggedIn)
	// the login screen reports the minimap at the wrong place
	h.SimClient.SetWidget(hostapi.ElementFixedMinimapDrawArea, hostapi.WidgetState{Bounds: geom.Rect{Width: 10, Height: 10}})
	h.Bus.WidgetLoaded(hostapi.WidgetLoaded{GroupID: hostapi.GroupMinimap})
	require.Equal(t, 10, p.Tracker().Snapshot().Base.Width)

	h.SimClient.SetWidget(hostapi.ElementFixedMinimapDrawArea, hostapi.WidgetState{Bounds: fixedMinimap})
	h.Bus.WidgetClosed(hostapi.WidgetClosed{GroupID: hostapi.GroupLoginClickToPlay})
	assert.Equal(t, fixedMinimap, p.Tracker().Snapshot().Base)

	recomputes := p.Tracker().Recomputes()
	h.Bus.WidgetClosed(hostapi.WidgetClosed{GroupID: 1})
	h.Bus.WidgetLoaded(hostapi.WidgetLoaded{GroupID: 1})
	assert.Equal(t, recomputes, p.Tracker().Recomputes(), "unrelated groups are ignored")
}

func resizableHost(t *testing.T) *simhost.Host {
	t.Helper()
	h := newHost(t, nil)
	c := h.SimClient
	c.SetResized(true)
	c.SetWidget(hostapi.ElementResizableMinimapStonesDrawArea, hostapi.WidgetState{Bounds: resizableMinimap})
	c.SetWidget(hostapi.ElementWorldMapOrb, hostapi.WidgetState{Bounds: worldMapOrb})
	return h
}

func TestCanvasResizeSettles(t *testing.T) {
	h := resizableHost(t)
	p := start(t, h)
	login(h)
	require.True(t, h.RightClick(resizedCenter.X, resizedCenter.Y))

	moved := resizableMinimap
	moved.X += 200
	h.SimClient.SetWidget(hostapi.ElementResizableMinimapStonesDrawArea, hostapi.WidgetState{Bounds: moved})
	h.Bus.CanvasSizeChanged()
	assert.Equal(t, moved, p.Tracker().Snapshot().Base)

	// the orbs settle a tick later without the minimap moving again
	orb := worldMapOrb
	orb.X += 200
	h.SimClient.SetWidget(hostapi.ElementWorldMapOrb, hostapi.WidgetState{Bounds: orb})
	before := p.Tracker().Recomputes()
	h.Ticks(3)
	assert.Equal(t, before+2, p.Tracker().Recomputes())
	assert.False(t, h.RightClick(orb.X+5, orb.Y+5))
	assert.True(t, h.RightClick(resizedCenter.X+200, resizedCenter.Y))
}

func TestTickCatchesDisplayModeSwitch(t *testing.T) {
	h := newHost(t, nil)
	h.SimClient.SetWidget(hostapi.ElementResizableMinimapDrawArea, hostapi.WidgetState{Bounds: resizableMinimap})
	p := start(t, h)
	login(h)
	require.Equal(t, geom.KindRectangle, p.Tracker().Region().Kind())

	h.SimClient.SetResized(true)
	h.SimClient.SetVarbit(hostapi.VarbitSidePanels, 1)
	h.Ticks(1)
	assert.Equal(t, geom.KindEllipse, p.Tracker().Region().Kind())
	assert.False(t, h.RightClick(insideFixed.X, insideFixed.Y))
	assert.True(t, h.RightClick(resizedCenter.X, resizedCenter.Y))
}

func TestDragHotkey(t *testing.T) {
	h := resizableHost(t)
	p := start(t, h)
	login(h)
	alt := hostapi.KeyEvent{KeyCode: hostapi.KeyAlt, Modifiers: hostapi.ModifierAlt}

	h.Bus.KeyPressed(alt)
	assert.True(t, p.State().InOverlayManagingMode)

	moved := resizableMinimap
	moved.Y += 300
	h.SimClient.SetWidget(hostapi.ElementResizableMinimapStonesDrawArea, hostapi.WidgetState{Bounds: moved})
	before := p.Tracker().Recomputes()
	h.Ticks(2)
	assert.Equal(t, before, p.Tracker().Recomputes(), "ticks are suppressed mid-drag")

	h.Bus.KeyReleased(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt})
	assert.False(t, p.State().InOverlayManagingMode)
	assert.Equal(t, moved, p.Tracker().Snapshot().Base)
}

func TestDragHotkey_FocusLost(t *testing.T) {
	h := resizableHost(t)
	p := start(t, h)
	login(h)

	h.Bus.KeyPressed(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt, Modifiers: hostapi.ModifierAlt})
	moved := resizableMinimap
	moved.X -= 500
	h.SimClient.SetWidget(hostapi.ElementResizableMinimapStonesDrawArea, hostapi.WidgetState{Bounds: moved})

	h.Bus.FocusChanged(hostapi.FocusChanged{Focused: true})
	assert.True(t, p.State().InOverlayManagingMode, "gaining focus changes nothing")

	h.Bus.FocusChanged(hostapi.FocusChanged{Focused: false})
	assert.False(t, p.State().InOverlayManagingMode)
	assert.Equal(t, moved, p.Tracker().Snapshot().Base)
}

func TestDragHotkey_Rebind(t *testing.T) {
	h := resizableHost(t)
	p := start(t, h)
	login(h)

	h.Settings.Set(HostConfigGroup, KeyDragHotkey, "17:128")
	h.Bus.KeyPressed(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt, Modifiers: hostapi.ModifierAlt})
	assert.False(t, p.State().InOverlayManagingMode, "old hotkey")
	h.Bus.KeyPressed(hostapi.KeyEvent{KeyCode: 17, Modifiers: hostapi.ModifierCtrl})
	assert.True(t, p.State().InOverlayManagingMode)
}

func TestDragHotkey_ReleasedWhileLoggedOut(t *testing.T) {
	h := resizableHost(t)
	p := start(t, h)
	login(h)

	h.Bus.KeyPressed(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt, Modifiers: hostapi.ModifierAlt})
	require.True(t, p.State().InOverlayManagingMode)

	h.SetGameState(hostapi.GameStateLoginScreen)
	assert.False(t, p.State().InOverlayManagingMode, "leaving the session drops the drag")
	h.Bus.KeyReleased(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt})
	login(h)
	assert.False(t, p.State().InOverlayManagingMode)

	h.Bus.CanvasSizeChanged()
	orb := worldMapOrb
	orb.X -= 60
	h.SimClient.SetWidget(hostapi.ElementWorldMapOrb, hostapi.WidgetState{Bounds: orb})
	before := p.Tracker().Recomputes()
	h.Ticks(3)
	assert.Equal(t, before+2, p.Tracker().Recomputes(), "settle ticks run again")
	assert.False(t, h.RightClick(orb.X+5, orb.Y+5))
}

func TestDragHotkey_ReleasedAfterFeatureOff(t *testing.T) {
	h := resizableHost(t)
	p := start(t, h)
	login(h)

	h.Bus.KeyPressed(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt, Modifiers: hostapi.ModifierAlt})
	h.SimClient.SetMinimapZoomEnabled(false)
	h.Bus.KeyReleased(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt})
	assert.False(t, p.State().InOverlayManagingMode)

	h.Bus.KeyPressed(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt, Modifiers: hostapi.ModifierAlt})
	assert.False(t, p.State().InOverlayManagingMode, "host zoom off")

	h.SimClient.SetMinimapZoomEnabled(true)
	h.Bus.KeyPressed(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt, Modifiers: hostapi.ModifierAlt})
	require.True(t, p.State().InOverlayManagingMode)
	p.ShutDown()
	assert.False(t, p.State().InOverlayManagingMode)
}

func TestZoomLevelLiveEdit_Invalid(t *testing.T) {
	h := newHost(t, map[string]string{
		KeyZoomLevel:              "Zoom650",
		KeyZoomWhenStartingClient: "false",
	})
	p := start(t, h)
	login(h)

	h.Settings.Set(ConfigGroup, KeyZoomLevel, "Zoom999")
	assert.Empty(t, h.SimClient.ZoomHistory)
	assert.Equal(t, "Zoom650", p.Config().ZoomLevel.Name())

	assert.True(t, h.RightClick(insideFixed.X, insideFixed.Y))
	assert.Equal(t, []float64{6.5}, h.SimClient.ZoomHistory)
}

func TestDragHotkey_FixedModeIgnored(t *testing.T) {
	h := newHost(t, nil)
	p := start(t, h)
	login(h)

	h.Bus.KeyPressed(hostapi.KeyEvent{KeyCode: hostapi.KeyAlt, Modifiers: hostapi.ModifierAlt})
	assert.False(t, p.State().InOverlayManagingMode)
}

func TestLoadConfig(t *testing.T) {
	h := simhost.New()
	assert.Equal(t, DefaultConfig(), LoadConfig(h.Settings))

	h.Settings.SetDefault(ConfigGroup, KeyZoomLevel, "3.50")
	h.Settings.SetDefault(ConfigGroup, KeyZoomWhenHopping, "true")
	h.Settings.SetDefault(ConfigGroup, KeyZoomWhenLogin, "sometimes")
	cfg := LoadConfig(h.Settings)
	assert.Equal(t, 3.5, cfg.ZoomLevel.Magnitude())
	assert.True(t, cfg.ZoomWhenHopping)
	assert.False(t, cfg.ZoomWhenLogin, "unparsable value keeps the default")

	flags := cfg.Flags()
	assert.Equal(t, cfg.ZoomLevel, flags.Level)
	assert.True(t, flags.OnStart)
	assert.True(t, flags.OnRightClick)

	h.Settings.SetDefault(HostConfigGroup, KeyDragHotkey, "garbage")
	assert.Equal(t, hostapi.DefaultDragHotkey, LoadDragHotkey(h.Settings))
}

func TestConfigItemsMatchDefaults(t *testing.T) {
	h := simhost.New()
	require.Len(t, ConfigItems, 5)
	for i, item := range ConfigItems {
		assert.Equal(t, i, item.Position)
		h.Settings.SetDefault(ConfigGroup, item.Key, item.Default)
	}
	assert.Equal(t, DefaultConfig(), LoadConfig(h.Settings))
}
