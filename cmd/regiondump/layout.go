package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
)

// layout is a frozen client screen: the layout flags plus every widget's
// state, keyed by element name.
type layout struct {
	Resized    bool                           `json:"resized"`
	SidePanels int                            `json:"sidePanels"`
	Widgets    map[string]hostapi.WidgetState `json:"widgets"`

	widgets map[hostapi.Element]hostapi.WidgetState
}

func loadLayout(path string) (*layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	return parseLayout(data)
}

func parseLayout(data []byte) (*layout, error) {
	var l layout
	if err := sonic.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}
	l.widgets = make(map[hostapi.Element]hostapi.WidgetState, len(l.Widgets))
	for name, w := range l.Widgets {
		id, err := hostapi.ParseElement(name)
		if err != nil {
			return nil, err
		}
		l.widgets[id] = w
	}
	return &l, nil
}

func (l *layout) IsResized() bool { return l.Resized }

func (l *layout) VarbitValue(varbit int) int {
	if varbit == hostapi.VarbitSidePanels {
		return l.SidePanels
	}
	return 0
}

func (l *layout) Widget(id hostapi.Element) (hostapi.WidgetState, bool) {
	w, ok := l.widgets[id]
	return w, ok
}
