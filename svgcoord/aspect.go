package svgcoord

import "strings"

// Align positions a viewBox along one axis of its viewport.
type Align uint8

const (
	AlignMid Align = iota // default
	AlignMin
	AlignMax
)

// AspectMode is the fit mode of a preserveAspectRatio declaration.
type AspectMode uint8

const (
	// AspectMeet scales uniformly so that the whole viewBox is visible.
	AspectMeet AspectMode = iota
	// AspectSlice scales uniformly so that the viewport is covered.
	AspectSlice
	// AspectNone stretches the viewBox to the viewport.
	AspectNone
)

// AspectRatio is a parsed preserveAspectRatio attribute.
// The zero value is the default `xMidYMid meet`.
type AspectRatio struct {
	X, Y Align
	Mode AspectMode
	// Defer is only recorded.
	Defer bool
}

// ParseAspectRatio parses `[defer] <align> [meet|slice]`, where <align>
// is `none` or xMinYMin ... xMaxYMax, case insensitive.
// An invalid alignment gives the default value.
func ParseAspectRatio(s string) AspectRatio {
	var out AspectRatio
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) != 0 && fields[0] == "defer" {
		out.Defer = true
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return out
	}

	if fields[0] == "none" {
		out.Mode = AspectNone
		return out
	}
	x, y, ok := parseAlign(fields[0])
	if !ok {
		Logger().Debug("svgcoord: invalid preserveAspectRatio", "value", s)
		return AspectRatio{}
	}
	out.X, out.Y = x, y
	if len(fields) > 1 && fields[1] == "slice" {
		out.Mode = AspectSlice
	}
	return out
}

// parseAlign reads a lower case xMinYMin ... xMaxYMax token
func parseAlign(tok string) (x, y Align, ok bool) {
	if len(tok) != 8 || tok[0] != 'x' || tok[4] != 'y' {
		return 0, 0, false
	}
	x, okX := alignFrom(tok[1:4])
	y, okY := alignFrom(tok[5:8])
	return x, y, okX && okY
}

func alignFrom(s string) (Align, bool) {
	switch s {
	case "min":
		return AlignMin, true
	case "mid":
		return AlignMid, true
	case "max":
		return AlignMax, true
	}
	return 0, false
}

func (a Align) anchor(start, length float64) float64 {
	switch a {
	case AlignMin:
		return start
	case AlignMax:
		return start + length
	default:
		return start + length/2
	}
}

// AnchorPoint returns the point of r selected by the alignment:
// its near edge, center or far edge on each axis.
func (ar AspectRatio) AnchorPoint(r Bounds) Point {
	return Point{X: ar.X.anchor(r.X, r.W), Y: ar.Y.anchor(r.Y, r.H)}
}
