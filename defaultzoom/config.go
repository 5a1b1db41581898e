package defaultzoom

import (
	"strconv"
	"strings"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/zoomlevel"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/zoompolicy"
)

// ConfigGroup is the settings group the plugin's items live in.
const ConfigGroup = "DefaultMinimapZoom"

const (
	KeyZoomLevel              = "zoomLevel"
	KeyZoomWhenStartingClient = "zoomWhenStartingClient"
	KeyZoomWhenLogin          = "zoomWhenLogin"
	KeyZoomWhenHopping        = "zoomWhenHopping"
	KeyZoomWhenRightClick     = "zoomWhenRightClick"
)

// The overlay drag hotkey belongs to the host's own settings group.
const (
	HostConfigGroup = "runelite"
	KeyDragHotkey   = "dragHotkey"
)

// ConfigItem describes one entry of the settings panel.
type ConfigItem struct {
	Key         string
	Name        string
	Description string
	Position    int
	Default     string
}

// ConfigItems is the settings schema, in panel order.
var ConfigItems = []ConfigItem{
	{
		Key:  KeyZoomLevel,
		Name: "Default zoom level",
		Description: "Zoom has to be enabled in the Minimap plugin. " +
			"This is the number of pixels per tile on the minimap; higher is more zoomed in.",
		Position: 0,
		Default:  zoomlevel.Default.Name(),
	},
	{
		Key:         KeyZoomWhenStartingClient,
		Name:        "Set zoom when starting client",
		Description: "Set the default zoom when starting the client",
		Position:    1,
		Default:     "true",
	},
	{
		Key:         KeyZoomWhenLogin,
		Name:        "Set zoom at every login",
		Description: "Set the default zoom every time you log in",
		Position:    2,
		Default:     "false",
	},
	{
		Key:         KeyZoomWhenHopping,
		Name:        "Set zoom when hopping worlds",
		Description: "Set the default zoom every time you hop worlds",
		Position:    3,
		Default:     "false",
	},
	{
		Key:         KeyZoomWhenRightClick,
		Name:        "Set zoom when right-clicking minimap",
		Description: "Set the default zoom when you right-click the minimap",
		Position:    4,
		Default:     "true",
	},
}

// Config is the typed view of the plugin's settings.
type Config struct {
	ZoomLevel              zoomlevel.Level
	ZoomWhenStartingClient bool
	ZoomWhenLogin          bool
	ZoomWhenHopping        bool
	ZoomWhenRightClick     bool
}

// DefaultConfig returns the values of ConfigItems.
func DefaultConfig() Config {
	return Config{
		ZoomLevel:              zoomlevel.Default,
		ZoomWhenStartingClient: true,
		ZoomWhenRightClick:     true,
	}
}

// LoadConfig reads the plugin's settings. Missing keys take their default;
// unparsable values take their default and are logged.
func LoadConfig(store hostapi.ConfigStore) Config {
	cfg := DefaultConfig()

	if raw, ok := store.GetConfiguration(ConfigGroup, KeyZoomLevel); ok {
		level, err := zoomlevel.Parse(raw)
		if err != nil {
			dzLog.Warn().Err(err).Str("key", KeyZoomLevel).Msg("invalid setting, using default")
		} else {
			cfg.ZoomLevel = level
		}
	}
	loadBool(store, KeyZoomWhenStartingClient, &cfg.ZoomWhenStartingClient)
	loadBool(store, KeyZoomWhenLogin, &cfg.ZoomWhenLogin)
	loadBool(store, KeyZoomWhenHopping, &cfg.ZoomWhenHopping)
	loadBool(store, KeyZoomWhenRightClick, &cfg.ZoomWhenRightClick)
	return cfg
}

func loadBool(store hostapi.ConfigStore, key string, dst *bool) {
	raw, ok := store.GetConfiguration(ConfigGroup, key)
	if !ok {
		return
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		dzLog.Warn().Err(err).Str("key", key).Str("value", raw).Msg("invalid setting, using default")
		return
	}
	*dst = v
}

// LoadDragHotkey reads the host's overlay drag hotkey.
func LoadDragHotkey(store hostapi.ConfigStore) hostapi.Keybind {
	raw, ok := store.GetConfiguration(HostConfigGroup, KeyDragHotkey)
	if !ok {
		return hostapi.DefaultDragHotkey
	}
	k, err := hostapi.ParseKeybind(raw)
	if err != nil {
		dzLog.Warn().Err(err).Msg("invalid drag hotkey, using default")
		return hostapi.DefaultDragHotkey
	}
	return k
}

// Flags converts the settings into zoom policy flags.
func (c Config) Flags() zoompolicy.Flags {
	return zoompolicy.Flags{
		Level:        c.ZoomLevel,
		OnStart:      c.ZoomWhenStartingClient,
		OnLogin:      c.ZoomWhenLogin,
		OnHop:        c.ZoomWhenHopping,
		OnRightClick: c.ZoomWhenRightClick,
	}
}
