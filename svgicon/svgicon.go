// Walks SVG documents and resolves the geometry of their elements:
// length attributes, accumulated transforms and viewports.
// The resolved elements can then be consumed by painting drivers,
// see for example svgcoord/svgraster or svgcoord/svgpdf .
package svgicon

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svgcoord/svgcoord"
	"golang.org/x/net/html/charset"
)

// Viewport is the viewport established by an svg, symbol, image,
// marker or pattern element.
type Viewport struct {
	// Bounds is the rectangle given by the x, y, width and height
	// attributes, in the user space of the parent.
	Bounds svgcoord.Bounds
	// Transform maps the viewport rectangle {0, 0, W, H}
	// to the root space.
	Transform svgcoord.Matrix2D

	// ViewBox is only meaningful if HasViewBox is true.
	ViewBox     svgcoord.Bounds
	HasViewBox  bool
	AspectRatio svgcoord.AspectRatio
}

// Element is one element of the document, with its resolved geometry.
type Element struct {
	Tag, ID string
	Depth   int // 0 for the root

	// Lengths holds the resolved length attributes (x, width, r, ...),
	// in pixels of the user space of the parent.
	// For gradients in objectBoundingBox units, they are fractions
	// of the bounding box of the painted shape.
	Lengths map[string]float64

	// Transform maps the user space of the element
	// (the one of its children) to the root space.
	Transform svgcoord.Matrix2D

	// Context is the graphics state used to resolve the attributes
	// of the children.
	Context svgcoord.Context

	// Viewport is nil for elements not establishing a viewport.
	Viewport *Viewport

	// ObjectUnits is true for gradients whose lengths are
	// fractions of the bounding box of the painted shape.
	ObjectUnits bool
}

// SvgIcon holds data from parsed SVGs.
type SvgIcon struct {
	ViewBox      svgcoord.Bounds // viewBox of the root element, if any
	Titles       []string        // Title elements collect here
	Descriptions []string        // Description elements collect here

	// Elements are listed in document order.
	Elements []Element

	Width, Height string // top level width and height attributes
}

// Root returns the outermost element, or nil for an empty icon.
func (s *SvgIcon) Root() *Element {
	if len(s.Elements) == 0 {
		return nil
	}
	return &s.Elements[0]
}

// ReadIconStream reads the icon from the given io.Reader, resolving every
// element against the initial graphics state given by the options.
// Invalid attributes are skipped, logged or returned as errors
// according to the error mode. XML errors are always returned.
func ReadIconStream(stream io.Reader, opts ...Option) (*SvgIcon, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = svgcoord.Logger()
	}

	icon := &SvgIcon{}
	cursor := newIconCursor(icon, o)
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, ErrEmptyDocument
				}
				break
			}
			return icon, fmt.Errorf("svgicon: reading xml: %w", err)
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			err = cursor.readStartElement(se)
			if err != nil {
				return icon, err
			}
		case xml.EndElement:
			cursor.stack = cursor.stack[:len(cursor.stack)-1]
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}
	return icon, nil
}

// ReadIcon reads the icon from the named file.
// See ReadIconStream for the options.
func ReadIcon(iconFile string, opts ...Option) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, opts...)
}
