package simhost

import (
	"errors"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/geom"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
)

// ErrUnknownOp indicates a script step with an op Replay does not know.
var ErrUnknownOp = errors.New("unknown script op")

// Script is a recorded client session.
type Script struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Step is one host-side change or event. Which fields are read depends on
// Op:
//
//	gameState     state
//	minimapZoom   enabled
//	resized       enabled
//	varbit        varbit, value
//	widget        element, bounds, hidden
//	removeWidget  element
//	widgetLoaded  groupId
//	widgetClosed  groupId
//	config        group, key, setting
//	resize        (none)
//	focus         focused
//	tick          count (default 1)
//	key           keyCode, modifiers, release
//	mouse         button (default right), x, y, expectConsumed
type Step struct {
	Op string `json:"op"`

	State   hostapi.GameState `json:"state"`
	Enabled bool              `json:"enabled"`

	Varbit int `json:"varbit"`
	Value  int `json:"value"`

	Element hostapi.Element `json:"element"`
	Bounds  geom.Rect       `json:"bounds"`
	Hidden  bool            `json:"hidden"`
	GroupID int             `json:"groupId"`

	Group   string `json:"group"`
	Key     string `json:"key"`
	Setting string `json:"setting"`

	Focused bool `json:"focused"`
	Count   int  `json:"count"`

	KeyCode   int  `json:"keyCode"`
	Modifiers int  `json:"modifiers"`
	Release   bool `json:"release"`

	Button         int   `json:"button"`
	X              int   `json:"x"`
	Y              int   `json:"y"`
	ExpectConsumed *bool `json:"expectConsumed,omitempty"`
}

// Report summarises a replay.
type Report struct {
	Steps          int      `json:"steps"`
	ZoomApplied    int      `json:"zoomApplied"`
	FinalZoom      float64  `json:"finalZoom"`
	ConsumedClicks int      `json:"consumedClicks"`
	PassedClicks   int      `json:"passedClicks"`
	Failures       []string `json:"failures,omitempty"`
}

// ParseScript decodes a JSON script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := sonic.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	return &s, nil
}

// LoadScript reads and decodes a JSON script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// Replay applies every step of s to h in order. It stops at the first step
// it cannot apply; unmet click expectations are collected in the report
// instead.
func Replay(h *Host, s *Script) (Report, error) {
	var report Report
	startZooms := len(h.SimClient.ZoomHistory)

	for i, step := range s.Steps {
		if err := apply(h, step, &report); err != nil {
			return report, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		report.Steps++
	}

	report.ZoomApplied = len(h.SimClient.ZoomHistory) - startZooms
	report.FinalZoom = h.SimClient.Zoom()
	log.Debug().
		Str("script", s.Name).
		Int("steps", report.Steps).
		Int("zoom_applied", report.ZoomApplied).
		Msg("script replayed")
	return report, nil
}

func apply(h *Host, step Step, report *Report) error {
	c := h.SimClient

	switch step.Op {
	case "gameState":
		h.SetGameState(step.State)
	case "minimapZoom":
		c.SetMinimapZoomEnabled(step.Enabled)
	case "resized":
		c.SetResized(step.Enabled)
	case "varbit":
		c.SetVarbit(step.Varbit, step.Value)
	case "widget":
		if step.Element == hostapi.ElementUnknown {
			return errors.New("widget step needs an element")
		}
		c.SetWidget(step.Element, hostapi.WidgetState{Bounds: step.Bounds, Hidden: step.Hidden})
	case "removeWidget":
		c.RemoveWidget(step.Element)
	case "widgetLoaded":
		h.Bus.WidgetLoaded(hostapi.WidgetLoaded{GroupID: step.GroupID})
	case "widgetClosed":
		h.Bus.WidgetClosed(hostapi.WidgetClosed{GroupID: step.GroupID})
	case "config":
		h.Settings.Set(step.Group, step.Key, step.Setting)
	case "resize":
		h.Bus.CanvasSizeChanged()
	case "focus":
		h.Bus.FocusChanged(hostapi.FocusChanged{Focused: step.Focused})
	case "tick":
		n := step.Count
		if n <= 0 {
			n = 1
		}
		h.Ticks(n)
	case "key":
		e := hostapi.KeyEvent{KeyCode: step.KeyCode, Modifiers: step.Modifiers}
		if step.Release {
			h.Bus.KeyReleased(e)
		} else {
			h.Bus.KeyPressed(e)
		}
	case "mouse":
		button := step.Button
		if button == 0 {
			button = hostapi.MouseButtonRight
		}
		e := &hostapi.MouseEvent{Button: button, Point: geom.Point{X: step.X, Y: step.Y}}
		consumed := h.Bus.MousePressed(e)
		if consumed {
			report.ConsumedClicks++
		} else {
			report.PassedClicks++
		}
		if step.ExpectConsumed != nil && *step.ExpectConsumed != consumed {
			report.Failures = append(report.Failures,
				fmt.Sprintf("click at (%d,%d): consumed=%v, expected %v", step.X, step.Y, consumed, *step.ExpectConsumed))
		}
	default:
		return ErrUnknownOp
	}
	return nil
}
