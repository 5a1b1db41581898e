package minimaparea

import "github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"

// DisplayMode is the client layout the minimap is drawn in.
type DisplayMode int

const (
	ModeFixed DisplayMode = iota
	// ModeResizableClassic draws the minimap over the stone side panels.
	ModeResizableClassic
	// ModeResizableModern draws the minimap with the modern side panels.
	ModeResizableModern
)

func (m DisplayMode) String() string {
	switch m {
	case ModeFixed:
		return "fixed"
	case ModeResizableClassic:
		return "resizable_classic"
	case ModeResizableModern:
		return "resizable_modern"
	default:
		return "unknown"
	}
}

// Resizable reports whether m is one of the resizable layouts.
func (m DisplayMode) Resizable() bool {
	return m == ModeResizableClassic || m == ModeResizableModern
}

// LayoutSource is the part of the client that determines the layout.
type LayoutSource interface {
	IsResized() bool
	VarbitValue(varbit int) int
}

// CurrentMode reads the active layout from the client.
func CurrentMode(c LayoutSource) DisplayMode {
	if !c.IsResized() {
		return ModeFixed
	}
	if c.VarbitValue(hostapi.VarbitSidePanels) == 1 {
		return ModeResizableModern
	}
	return ModeResizableClassic
}

// BaseElement returns the minimap widget queried in mode m.
func BaseElement(m DisplayMode) hostapi.Element {
	switch m {
	case ModeResizableModern:
		return hostapi.ElementResizableMinimapDrawArea
	case ModeResizableClassic:
		return hostapi.ElementResizableMinimapStonesDrawArea
	default:
		return hostapi.ElementFixedMinimapDrawArea
	}
}

// The host's native reset-zoom click area is close to the full rectangle in
// the fixed layout and close to the inscribed ellipse in the resizable ones.
// Each layout therefore overlaps a different set of HUD elements.
var (
	fixedOverlaps = []hostapi.Element{
		hostapi.ElementRunOrb,
		hostapi.ElementSpecOrb,
		hostapi.ElementSpecOrbTop,
		// the native click area cuts slightly into the wiki button
		hostapi.ElementWikiBanner,
		hostapi.ElementCompass,
	}
	resizableOverlaps = []hostapi.Element{
		hostapi.ElementWorldMapOrb,
	}
)

// Overlaps returns the HUD elements that sit on top of the minimap in mode m.
func Overlaps(m DisplayMode) []hostapi.Element {
	if m.Resizable() {
		return resizableOverlaps
	}
	return fixedOverlaps
}
