// Package zoomlevel enumerates the minimap zoom magnitudes a user can pick.
//
// A magnitude is the number of pixels per tile the host renders the minimap
// at. Higher is more zoomed in.
package zoomlevel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownLevel indicates the input does not name a supported step.
var ErrUnknownLevel = errors.New("unknown minimap zoom level")

// Level is one step of the fixed 2.00 .. 8.00 range, in 0.25 increments.
type Level int

const (
	Zoom200 Level = iota
	Zoom225
	Zoom250
	Zoom275
	Zoom300
	Zoom325
	Zoom350
	Zoom375
	Zoom400
	Zoom425
	Zoom450
	Zoom475
	Zoom500
	Zoom525
	Zoom550
	Zoom575
	Zoom600
	Zoom625
	Zoom650
	Zoom675
	Zoom700
	Zoom725
	Zoom750
	Zoom775
	Zoom800

	levelCount
)

// Default is the step used when nothing is configured.
const Default = Zoom400

const (
	minMagnitude = 2.0
	stepSize     = 0.25
)

// All returns every step in ascending order.
func All() []Level {
	levels := make([]Level, 0, levelCount)
	for l := Zoom200; l < levelCount; l++ {
		levels = append(levels, l)
	}
	return levels
}

// Valid reports whether l is one of the enumerated steps.
func (l Level) Valid() bool {
	return l >= Zoom200 && l < levelCount
}

// Magnitude returns the pixels-per-tile value handed to the host.
func (l Level) Magnitude() float64 {
	return minMagnitude + float64(l)*stepSize
}

// String returns the option text shown in the settings UI, e.g. "4.00".
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return strconv.FormatFloat(l.Magnitude(), 'f', 2, 64)
}

// Name returns the identifier the settings store persists, e.g. "Zoom400".
func (l Level) Name() string {
	if !l.Valid() {
		return l.String()
	}
	return "Zoom" + strings.Replace(l.String(), ".", "", 1)
}

// Parse accepts either the persisted name ("Zoom425") or the option text
// ("4.25", "4").
func Parse(s string) (Level, error) {
	raw := strings.TrimSpace(s)
	for _, l := range All() {
		if strings.EqualFold(raw, l.Name()) {
			return l, nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Default, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	for _, l := range All() {
		if l.Magnitude() == v {
			return l, nil
		}
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements encoding.TextMarshaler using the persisted name.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(l.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
