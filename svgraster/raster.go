// Implements a raster backend for the geometry resolved by
// svgcoord and svgicon, by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"

	"github.com/benoitkugler/svgcoord/svgcoord"
	"github.com/benoitkugler/svgcoord/svgicon"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ rasterx.Adder = (*MatrixAdder)(nil) // assert interface conformance

// ToRasterx converts m to the matrix used by rasterx gradients.
func ToRasterx(m svgcoord.Matrix2D) rasterx.Matrix2D {
	return rasterx.Matrix2D(m)
}

// FromRasterx is the inverse of ToRasterx.
func FromRasterx(m rasterx.Matrix2D) svgcoord.Matrix2D {
	return svgcoord.Matrix2D(m)
}

// MatrixAdder transforms the points of the path commands
// by M before forwarding them to the wrapped Adder.
type MatrixAdder struct {
	rasterx.Adder
	M svgcoord.Matrix2D
}

// Reset sets the transform to the identity.
func (t *MatrixAdder) Reset() {
	t.M = svgcoord.Identity
}

// Start starts a new curve at the given point.
func (t *MatrixAdder) Start(a fixed.Point26_6) {
	t.Adder.Start(t.M.TFixed(a))
}

// Line adds a linear segment to the current curve.
func (t *MatrixAdder) Line(b fixed.Point26_6) {
	t.Adder.Line(t.M.TFixed(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (t *MatrixAdder) QuadBezier(b, c fixed.Point26_6) {
	t.Adder.QuadBezier(t.M.TFixed(b), t.M.TFixed(c))
}

// CubeBezier adds a cubic segment to the current curve.
func (t *MatrixAdder) CubeBezier(b, c, d fixed.Point26_6) {
	t.Adder.CubeBezier(t.M.TFixed(b), t.M.TFixed(c), t.M.TFixed(d))
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// AddBounds adds the rectangle b, transformed by m, as a closed path.
func AddBounds(p rasterx.Adder, m svgcoord.Matrix2D, b svgcoord.Bounds) {
	corners := [4]svgcoord.Point{
		{X: b.X, Y: b.Y},
		{X: b.X + b.W, Y: b.Y},
		{X: b.X + b.W, Y: b.Y + b.H},
		{X: b.X, Y: b.Y + b.H},
	}
	for i, c := range corners {
		c = m.TransformPoint(c)
		if i == 0 {
			p.Start(toFixed(c.X, c.Y))
		} else {
			p.Line(toFixed(c.X, c.Y))
		}
	}
	p.Stop(true)
}

// AddViewports adds the outline of every viewport of icon,
// in root coordinates, followed by the outline of its viewBox if any,
// and returns the number of outlines added.
func AddViewports(p rasterx.Adder, icon *svgicon.SvgIcon) int {
	n := 0
	for _, el := range icon.Elements {
		vp := el.Viewport
		if vp == nil {
			continue
		}
		AddBounds(p, vp.Transform, svgcoord.Bounds{W: vp.Bounds.W, H: vp.Bounds.H})
		n++
		if vp.HasViewBox {
			AddBounds(p, el.Transform, vp.ViewBox)
			n++
		}
	}
	return n
}

// RasterViewports reads the icon and strokes the outlines
// of its viewports into a new image of size w x h, the root viewport
// being stretched to the image.
func RasterViewports(icon io.Reader, w, h int, opts ...svgicon.Option) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, opts...)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	dasher.SetStroke(fixed.I(1), fixed.I(4), rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Miter, nil, 0)
	dasher.SetColor(color.Black)

	target := svgcoord.Identity
	if root := parsedIcon.Root(); root != nil && root.Viewport != nil {
		if b := root.Viewport.Bounds; b.W != 0 && b.H != 0 {
			target = svgcoord.Identity.Scale(float64(w)/b.W, float64(h)/b.H)
		}
	}
	AddViewports(&MatrixAdder{Adder: dasher, M: target}, parsedIcon)
	dasher.Draw()
	return img, nil
}
