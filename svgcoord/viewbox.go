package svgcoord

import "strings"

// ParseViewBox parses the viewBox attribute "x y w h". Commas are accepted
// as separators and "px" units are ignored, since some producers emit them.
// It returns false if s is empty, does not hold exactly four numbers,
// or has a zero width or height.
func ParseViewBox(s string) (Bounds, bool) {
	if strings.TrimSpace(s) == "" {
		return Bounds{}, false
	}
	clean := strings.ReplaceAll(s, "px", "")
	clean = strings.ReplaceAll(clean, ",", " ")
	fields := strings.Fields(clean)
	if len(fields) != 4 {
		Logger().Debug("svgcoord: invalid viewBox", "viewBox", s)
		return Bounds{}, false
	}
	vb := Bounds{
		X: parseWhole(fields[0]),
		Y: parseWhole(fields[1]),
		W: parseWhole(fields[2]),
		H: parseWhole(fields[3]),
	}
	if vb.W == 0 || vb.H == 0 {
		Logger().Debug("svgcoord: empty viewBox", "viewBox", s)
		return Bounds{}, false
	}
	return vb, true
}

// ResolveViewport computes the transform mapping the viewBox of an element
// to its viewport, given by element, and returns it along with the
// parsed viewBox.
// Without preserveAspectRatio, or with `none`, the viewBox is stretched to
// the viewport. Otherwise it is scaled uniformly to fit (meet) or
// cover (slice) the viewport, and aligned on the anchor points of both
// rectangles.
// The boolean is false when viewBox is absent or invalid; the other
// results must then be ignored.
func ResolveViewport(viewBox, preserveAspectRatio string, element Bounds) (Bounds, Matrix2D, bool) {
	return ResolveElementViewport("", viewBox, preserveAspectRatio, element)
}

// ResolveElementViewport is like ResolveViewport, for the element named tag.
func ResolveElementViewport(tag, viewBox, preserveAspectRatio string, element Bounds) (Bounds, Matrix2D, bool) {
	vb, ok := ParseViewBox(viewBox)
	if !ok {
		return Bounds{}, Identity, false
	}

	m := Identity.Scale(element.W/vb.W, element.H/vb.H).Translate(-vb.X, -vb.Y)
	if strings.TrimSpace(preserveAspectRatio) == "" {
		return vb, m, true
	}

	ar := ParseAspectRatio(preserveAspectRatio)
	if ar.Defer && tag == "image" {
		// TODO: for an <image> referencing an SVG document, use the
		// preserveAspectRatio of the referenced document instead.
		Logger().Debug("svgcoord: 'defer' is not supported on <image>, ignored")
	}
	if ar.Mode == AspectNone {
		return vb, m, true
	}

	// compare the slopes of the diagonals to find the tighter axis
	tanViewBox := vb.H / vb.W
	tanElement := element.H / element.W
	scale := element.W / vb.W
	if (ar.Mode == AspectSlice) != (tanViewBox > tanElement) {
		scale = element.H / vb.H
	}
	m = Identity.Scale(scale, scale).Translate(-vb.X, -vb.Y)

	from := m.TransformPoint(ar.AnchorPoint(vb))
	to := ar.AnchorPoint(element)
	m = NewTranslation(Point{to.X - from.X, to.Y - from.Y}).Mult(m)
	return vb, m, true
}
