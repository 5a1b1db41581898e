package minimaparea

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/geom"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/hostapi"
	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/logging"
)

// areaLog 是 minimaparea 模块的子日志器。
// areaLog is the sub-logger for the minimaparea module.
var areaLog zerolog.Logger = logging.Module("minimaparea")

// ResizeSettleTicks 窗口尺寸变化后无条件重算区域的 tick 数（经验值）。
//
// ResizeSettleTicks is how many game ticks after a resize the region is
// recomputed unconditionally. Widgets keep moving for a tick or two after
// the host reports the resize; the value is empirical.
const ResizeSettleTicks = 2

// WidgetSource is the part of the client the tracker queries.
type WidgetSource interface {
	LayoutSource
	Widget(id hostapi.Element) (hostapi.WidgetState, bool)
}

// Snapshot is one published recomputation. Region and Mode always come
// from the same pass.
type Snapshot struct {
	Mode   DisplayMode
	Base   geom.Rect
	Region *geom.Region
}

// Tracker keeps the current interactive region. Recompute, CheckIfChanged,
// Tick and Clear must run on the host's update thread; Region, Snapshot and
// Contains may be called from anywhere and only ever see whole snapshots.
type Tracker struct {
	source  WidgetSource
	current atomic.Pointer[Snapshot]

	// last successfully computed base, for the drag/resize checks
	recorded   bool
	lastMode   DisplayMode
	lastBounds geom.Rect

	settleTicks int
	recomputes  int
}

// NewTracker returns a tracker with no region.
func NewTracker(source WidgetSource) *Tracker {
	return &Tracker{source: source}
}

// Recompute rebuilds the region from the widgets' current state and
// publishes it. The result is nil when the minimap widget is missing or
// hidden.
func (t *Tracker) Recompute() *geom.Region {
	t.recomputes++
	mode := CurrentMode(t.source)

	region, base, ok := Compute(mode, t.source.Widget)
	if !ok {
		t.current.Store(nil)
		areaLog.Debug().Stringer("mode", mode).Msg("minimap widget unavailable, region cleared")
		return nil
	}

	t.recorded = true
	t.lastMode = mode
	t.lastBounds = base
	t.current.Store(&Snapshot{Mode: mode, Base: base, Region: region})

	areaLog.Debug().
		Stringer("mode", mode).
		Stringer("region", region).
		Msg("minimap region recomputed")
	return region
}

// CheckIfChanged recomputes when the minimap moved, changed layout, or
// appeared or disappeared since the last recomputation. It reports whether
// a recomputation ran.
func (t *Tracker) CheckIfChanged() bool {
	mode := CurrentMode(t.source)
	w, found := t.source.Widget(BaseElement(mode))
	visible := found && !w.Hidden
	published := t.current.Load() != nil

	switch {
	case !visible && !published:
		return false
	case visible && published && t.recorded && mode == t.lastMode && w.Bounds == t.lastBounds:
		return false
	}

	t.Recompute()
	return true
}

// ArmSettle schedules ResizeSettleTicks unconditional recomputations.
func (t *Tracker) ArmSettle() {
	t.settleTicks = ResizeSettleTicks
}

// Tick is the per game tick safety net. It reports whether a
// recomputation ran.
func (t *Tracker) Tick() bool {
	if t.settleTicks > 0 {
		t.settleTicks--
		t.Recompute()
		return true
	}
	return t.CheckIfChanged()
}

// Clear drops the region and any pending settle ticks.
func (t *Tracker) Clear() {
	t.current.Store(nil)
	t.settleTicks = 0
}

// Snapshot returns the last published recomputation, or nil.
func (t *Tracker) Snapshot() *Snapshot {
	return t.current.Load()
}

// Region returns the current region, or nil.
func (t *Tracker) Region() *geom.Region {
	if s := t.current.Load(); s != nil {
		return s.Region
	}
	return nil
}

// Contains reports whether p lies in the current region.
func (t *Tracker) Contains(p geom.Point) bool {
	return t.Region().Contains(p)
}

// Recomputes returns how many recomputations have run.
func (t *Tracker) Recomputes() int {
	return t.recomputes
}
