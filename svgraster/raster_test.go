package svgraster

import (
	"strings"
	"testing"

	"github.com/benoitkugler/svgcoord/svgcoord"
	"github.com/benoitkugler/svgcoord/svgicon"
	"github.com/cheekybits/is"
	"golang.org/x/image/math/fixed"
)

// recorder stores the path commands it receives
type recorder struct {
	ops    string
	points []fixed.Point26_6
}

func (r *recorder) Start(a fixed.Point26_6) {
	r.ops += "M"
	r.points = append(r.points, a)
}

func (r *recorder) Line(b fixed.Point26_6) {
	r.ops += "L"
	r.points = append(r.points, b)
}

func (r *recorder) QuadBezier(b, c fixed.Point26_6) {
	r.ops += "Q"
	r.points = append(r.points, b, c)
}

func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) {
	r.ops += "C"
	r.points = append(r.points, b, c, d)
}

func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.ops += "Z"
	} else {
		r.ops += "S"
	}
}

func TestToRasterx(t *testing.T) {
	is := is.New(t)

	m := svgcoord.Identity.Translate(1, 2).Scale(3, 4).SkewX(0.1)
	rm := ToRasterx(m)
	is.Equal(rm.A, m.A)
	is.Equal(rm.C, m.C)
	is.Equal(rm.F, m.F)
	is.Equal(FromRasterx(rm), m)
}

func TestMatrixAdder(t *testing.T) {
	is := is.New(t)

	rec := &recorder{}
	adder := &MatrixAdder{Adder: rec, M: svgcoord.ParseTransform("translate(1,1) scale(2)")}
	adder.Start(fixed.P(1, 1))
	adder.Line(fixed.P(2, 0))
	adder.QuadBezier(fixed.P(0, 0), fixed.P(1, 0))
	adder.CubeBezier(fixed.P(0, 1), fixed.P(0, 2), fixed.P(0, 3))
	adder.Stop(false)

	is.Equal(rec.ops, "MLQCS")
	is.Equal(rec.points, []fixed.Point26_6{
		fixed.P(3, 3), fixed.P(5, 1),
		fixed.P(1, 1), fixed.P(3, 1),
		fixed.P(1, 3), fixed.P(1, 5), fixed.P(1, 7),
	})

	adder.Reset()
	is.Equal(adder.M, svgcoord.Identity)
}

func TestAddBounds(t *testing.T) {
	is := is.New(t)

	rec := &recorder{}
	AddBounds(rec, svgcoord.Identity.Scale(2, 2), svgcoord.Bounds{X: 1, Y: 2, W: 3, H: 4})
	is.Equal(rec.ops, "MLLLZ")
	is.Equal(rec.points, []fixed.Point26_6{
		fixed.P(2, 4), fixed.P(8, 4), fixed.P(8, 12), fixed.P(2, 12),
	})
}

const viewports = `<svg width="200" height="100" viewBox="0 0 100 50">
	<svg x="10" y="10" width="20" height="20"/>
	<rect width="10" height="10"/>
</svg>`

func TestAddViewports(t *testing.T) {
	is := is.New(t)

	icon, err := svgicon.ReadIconStream(strings.NewReader(viewports))
	is.NoErr(err)

	rec := &recorder{}
	n := AddViewports(rec, icon)
	is.Equal(n, 3)
	is.Equal(rec.ops, "MLLLZMLLLZMLLLZ")
	is.Equal(rec.points, []fixed.Point26_6{
		// root viewport
		fixed.P(0, 0), fixed.P(200, 0), fixed.P(200, 100), fixed.P(0, 100),
		// root viewBox, covering it exactly
		fixed.P(0, 0), fixed.P(200, 0), fixed.P(200, 100), fixed.P(0, 100),
		// inner viewport, scaled by the root viewBox
		fixed.P(20, 20), fixed.P(60, 20), fixed.P(60, 60), fixed.P(20, 60),
	})
}

func TestRasterViewports(t *testing.T) {
	is := is.New(t)

	img, err := RasterViewports(strings.NewReader(viewports), 400, 200)
	is.NoErr(err)
	is.Equal(img.Bounds().Dx(), 400)
	is.Equal(img.Bounds().Dy(), 200)

	// the inner viewport is stroked at y = 40, from x = 40 to 120
	_, _, _, a := img.At(80, 40).RGBA()
	is.True(a > 0)
	// and is empty inside
	_, _, _, a = img.At(80, 80).RGBA()
	is.Equal(a, uint32(0))

	_, err = RasterViewports(strings.NewReader(""), 10, 10)
	is.Err(err)
}
