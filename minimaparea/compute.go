// Package minimaparea tracks the part of the screen where a right click
// means "reset the minimap zoom".
package minimaparea

import (
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/geom"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
)

// QueryFunc looks up a widget, returning false when it does not exist.
type QueryFunc func(id hostapi.Element) (hostapi.WidgetState, bool)

// Compute builds the interactive region for mode from scratch.
//
// It returns nil and ok=false when the base minimap widget is absent or
// hidden. Otherwise it returns the region together with the base bounds it
// was computed from. Absent or hidden overlaps are skipped.
func Compute(mode DisplayMode, query QueryFunc) (region *geom.Region, base geom.Rect, ok bool) {
	minimap, found := query(BaseElement(mode))
	if !found || minimap.Hidden {
		return nil, geom.Rect{}, false
	}

	if mode.Resizable() {
		region = geom.FromEllipse(minimap.Bounds)
	} else {
		region = geom.FromRectangle(minimap.Bounds)
	}

	// orb click boxes are rectangular in every layout
	for _, id := range Overlaps(mode) {
		w, found := query(id)
		if !found || w.Hidden {
			continue
		}
		region = region.Subtract(w.Bounds)
	}
	return region, minimap.Bounds, true
}
