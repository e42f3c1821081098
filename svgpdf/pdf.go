// Implements a PDF backend for the geometry resolved by
// svgcoord and svgicon, by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"fmt"
	"io"

	"github.com/benoitkugler/svgcoord/svgcoord"
	"github.com/benoitkugler/svgcoord/svgicon"
	"github.com/benoitkugler/svgcoord/svgraster"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// PDFMatrix converts m, acting on the user space of pdf (y pointing down,
// in the unit of the document), to the matrix of a PDF `cm` operator
// acting on the page space (y pointing up, in points), for the current page.
func PDFMatrix(pdf *gofpdf.Fpdf, m svgcoord.Matrix2D) gofpdf.TransformMatrix {
	k := pdf.GetConversionRatio()
	_, h := pdf.GetPageSize()
	return gofpdf.TransformMatrix{
		A: m.A,
		B: -m.B,
		C: -m.C,
		D: m.D,
		E: k * (m.C*h + m.E),
		F: k * (h - m.D*h - m.F),
	}
}

// Transform starts a transformation block applying m to what is drawn next,
// until pdf.TransformEnd is called.
func Transform(pdf *gofpdf.Fpdf, m svgcoord.Matrix2D) {
	pdf.TransformBegin()
	pdf.Transform(PDFMatrix(pdf, m))
}

// pather writes the path commands to the PDF,
// and tracks their bounding box
type pather struct {
	pdf         *gofpdf.Fpdf
	boundingBox fixed.Rectangle26_6 // bouding box for the current path
	started     bool
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// extend adds the points to the bounding box; the control points
// of a curve contain it, so that the box may be larger than the path
func (p *pather) extend(points ...fixed.Point26_6) {
	for _, a := range points {
		if !p.started {
			p.boundingBox = fixed.Rectangle26_6{Min: a, Max: a} // degenerate case
			p.started = true
			continue
		}
		// Union would drop a single point, which is an empty rectangle
		b := &p.boundingBox
		if a.X < b.Min.X {
			b.Min.X = a.X
		}
		if a.Y < b.Min.Y {
			b.Min.Y = a.Y
		}
		if a.X > b.Max.X {
			b.Max.X = a.X
		}
		if a.Y > b.Max.Y {
			b.Max.Y = a.Y
		}
	}
}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
	p.extend(a)
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
	p.extend(b)
}

func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
	p.extend(b, c)
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
	p.extend(b, c, d)
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// DrawViewports strokes the outlines of the viewports of icon
// (see svgraster.AddViewports), the root viewport being stretched to target,
// given in the user space of pdf.
// It returns the bounding box of the outlines, in root coordinates.
func DrawViewports(pdf *gofpdf.Fpdf, icon *svgicon.SvgIcon, target svgcoord.Bounds) svgcoord.Bounds {
	m := svgcoord.NewTranslation(svgcoord.Point{X: target.X, Y: target.Y})
	if root := icon.Root(); root != nil && root.Viewport != nil {
		if b := root.Viewport.Bounds; b.W != 0 && b.H != 0 {
			m = m.Scale(target.W/b.W, target.H/b.H)
		}
	}

	p := &pather{pdf: pdf}
	Transform(pdf, m)
	if svgraster.AddViewports(p, icon) != 0 {
		pdf.DrawPath("D")
	}
	pdf.TransformEnd()

	minX, minY := fixedTof(p.boundingBox.Min)
	maxX, maxY := fixedTof(p.boundingBox.Max)
	return svgcoord.Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// RenderViewportsToPDF reads the icon and writes its viewport outlines
// to a one page PDF file, the root viewport filling the page width.
func RenderViewportsToPDF(icon io.Reader, outFile string, opts ...svgicon.Option) error {
	parsedIcon, err := svgicon.ReadIconStream(icon, opts...)
	if err != nil {
		return err
	}
	pdf := gofpdf.New("", "pt", "", "")
	pdf.AddPage()
	pdf.SetLineWidth(0.5)

	const margin = 20.
	w, h := pdf.GetPageSize()
	target := svgcoord.Bounds{X: margin, Y: margin, W: w - 2*margin}
	if root := parsedIcon.Root(); root != nil && root.Viewport != nil && root.Viewport.Bounds.W != 0 {
		target.H = target.W * root.Viewport.Bounds.H / root.Viewport.Bounds.W
	}
	if target.H > h-2*margin || target.H == 0 {
		target.H = h - 2*margin
	}
	DrawViewports(pdf, parsedIcon, target)

	if err := pdf.OutputFileAndClose(outFile); err != nil {
		return fmt.Errorf("svgpdf: writing %s: %w", outFile, err)
	}
	return nil
}
