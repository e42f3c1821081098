package svgcoord

import (
	"math"
	"strings"
)

// Bounds defines a rectangle, such as a viewport, a viewBox
// or a bounding box.
type Bounds struct{ X, Y, W, H float64 }

// Point is a position or a size in 2D.
type Point struct{ X, Y float64 }

// Font holds the metrics needed by the `em` and `ex` units,
// both in points.
type Font struct {
	PointSize float64
	XHeight   float64
}

// Context is the snapshot of the graphics state lengths are resolved against.
// It is passed by value: resolving a length never modifies it.
type Context struct {
	PixelsPerInch float64
	Font          Font
	BoundingBox   Bounds

	// ForcePercentage makes ParseUnitX, ParseUnitY and ParseUnitXY read every
	// value as a fraction of the bounding box, as required for
	// objectBoundingBox units.
	ForcePercentage bool
}

// DefaultContext maps one point to one pixel, with a 12pt font.
var DefaultContext = Context{
	PixelsPerInch: pointsPerInch,
	Font:          Font{PointSize: 12, XHeight: 6},
}

// physical units, in points
const (
	pointsPerInch = 72.
	pointsPerCm   = pointsPerInch / 2.54
	pointsPerMm   = pointsPerInch / 25.4
	pointsPerPica = 12.
)

// PtToPx converts a length in points to pixels.
func (c Context) PtToPx(v float64) float64 {
	return v * c.PixelsPerInch / pointsPerInch
}

// ParseUnit resolves the length s to pixels. Supported units are
// px, pt, cm, pc, mm, in, em, ex (case sensitive) and %. A bare number
// is already in pixels, and an unknown unit is ignored.
// Percentages are relative to the width of bbox when only horiz is set,
// its height when only vert is set, and its normalized diagonal
// sqrt(w²+h²)/sqrt(2) when both are.
func (c Context) ParseUnit(s string, horiz, vert bool, bbox Bounds) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	value, end := ParseNumber(s, 0)
	if end == len(s) {
		return value
	}

	if strings.HasSuffix(s, "%") {
		value /= 100
		switch {
		case horiz && vert:
			value *= math.Hypot(bbox.W, bbox.H) / math.Sqrt2
		case horiz:
			value *= bbox.W
		case vert:
			value *= bbox.H
		}
		return value
	}
	if len(s) < 2 {
		return value
	}
	switch s[len(s)-2:] {
	case "pt":
		value = c.PtToPx(value)
	case "cm":
		value = c.PtToPx(value * pointsPerCm)
	case "pc":
		value = c.PtToPx(value * pointsPerPica)
	case "mm":
		value = c.PtToPx(value * pointsPerMm)
	case "in":
		value = c.PtToPx(value * pointsPerInch)
	case "em":
		value = c.PtToPx(value * c.Font.PointSize)
	case "ex":
		value = c.PtToPx(value * c.Font.XHeight)
	}
	return value
}

// ParseUnitX resolves a horizontal length, such as x or width.
func (c Context) ParseUnitX(s string) float64 {
	if c.ForcePercentage {
		return FromPercentage(s) * c.BoundingBox.W
	}
	return c.ParseUnit(s, true, false, c.BoundingBox)
}

// ParseUnitY resolves a vertical length, such as y or height.
func (c Context) ParseUnitY(s string) float64 {
	if c.ForcePercentage {
		return FromPercentage(s) * c.BoundingBox.H
	}
	return c.ParseUnit(s, false, true, c.BoundingBox)
}

// ParseUnitXY resolves a length without direction, such as a radius
// or a stroke width.
func (c Context) ParseUnitXY(s string) float64 {
	if c.ForcePercentage {
		return FromPercentage(s) * math.Hypot(c.BoundingBox.W, c.BoundingBox.H) / math.Sqrt2
	}
	return c.ParseUnit(s, true, true, c.BoundingBox)
}
