package svgcoord

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontFromSFNT returns the metrics of the TrueType or OpenType font
// data at pointSize, to be used as the font of a Context.
func FontFromSFNT(data []byte, pointSize float64) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return Font{}, fmt.Errorf("svgcoord: parsing font: %w", err)
	}
	metrics, err := f.Metrics(&sfnt.Buffer{}, fixed.Int26_6(pointSize*64), font.HintingNone)
	if err != nil {
		return Font{}, fmt.Errorf("svgcoord: reading font metrics: %w", err)
	}
	return Font{PointSize: pointSize, XHeight: float64(metrics.XHeight) / 64}, nil
}

// WithFontSize returns f scaled to pointSize, keeping the ratio
// between the x-height and the font size.
func (f Font) WithFontSize(pointSize float64) Font {
	if f.PointSize == 0 {
		return Font{PointSize: pointSize, XHeight: pointSize / 2}
	}
	return Font{PointSize: pointSize, XHeight: f.XHeight * pointSize / f.PointSize}
}
