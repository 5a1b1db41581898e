package hostapi

import "fmt"

// Group ids of the widget groups whose load/close the plugin reacts to.
const (
	GroupMinimap          = 160
	GroupLoginClickToPlay = 378
)

// Element names a widget the plugin queries. A host adapter maps each one
// to the client's widget (group, child) coordinates noted below.
//
// Element 标识插件查询的控件，宿主适配层按下方注释的 (group, child) 坐标映射到客户端控件。
type Element int

const (
	ElementUnknown Element = iota
	// ElementFixedMinimapDrawArea is the minimap in the fixed layout
	// (FIXED_VIEWPORT_MINIMAP_DRAW_AREA).
	ElementFixedMinimapDrawArea
	// ElementResizableMinimapDrawArea is the minimap in the resizable
	// layout with modern side panels (RESIZABLE_MINIMAP_DRAW_AREA).
	ElementResizableMinimapDrawArea
	// ElementResizableMinimapStonesDrawArea is the minimap in the classic
	// resizable layout (RESIZABLE_MINIMAP_STONES_DRAW_AREA).
	ElementResizableMinimapStonesDrawArea
	// ElementRunOrb is child 29 of the minimap group (160).
	ElementRunOrb
	// ElementSpecOrb is child 37 of the minimap group (160).
	ElementSpecOrb
	// ElementSpecOrbTop is the strip along the top of the special attack orb
	// that reaches past the orb's own widget.
	ElementSpecOrbTop
	// ElementWikiBanner is child 0 of MINIMAP_WIKI_BANNER_PARENT.
	ElementWikiBanner
	// ElementCompass is child 23 of the fixed viewport group (548).
	ElementCompass
	// ElementWorldMapOrb is MINIMAP_WORLDMAP_OPTIONS.
	ElementWorldMapOrb
)

var elementNames = map[Element]string{
	ElementUnknown:                        "unknown",
	ElementFixedMinimapDrawArea:           "fixed_minimap_draw_area",
	ElementResizableMinimapDrawArea:       "resizable_minimap_draw_area",
	ElementResizableMinimapStonesDrawArea: "resizable_minimap_stones_draw_area",
	ElementRunOrb:                         "run_orb",
	ElementSpecOrb:                        "spec_orb",
	ElementSpecOrbTop:                     "spec_orb_top",
	ElementWikiBanner:                     "wiki_banner",
	ElementCompass:                        "compass",
	ElementWorldMapOrb:                    "world_map_orb",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Element(%d)", int(e))
}

// ParseElement maps a name produced by Element.String back to the Element.
func ParseElement(s string) (Element, error) {
	for e, name := range elementNames {
		if e != ElementUnknown && name == s {
			return e, nil
		}
	}
	return ElementUnknown, fmt.Errorf("unknown element %q", s)
}

func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
