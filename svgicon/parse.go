package svgicon

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/benoitkugler/svgcoord/svgcoord"
)

type (
	// frame is the state pushed for each open element
	frame struct {
		ctx svgcoord.Context
		ctm svgcoord.Matrix2D
	}

	// iconCursor is used while parsing SVG files
	iconCursor struct {
		options
		icon                    *SvgIcon
		stack                   []frame
		inTitleText, inDescText bool
	}

	// attribute is a name/value pair, read from
	// an XML attribute or a style declaration
	attribute struct{ k, v string }
)

type axis uint8

const (
	horizontal axis = iota + 1
	vertical
	diagonal
)

// lengthAxes lists the length attributes resolved by the walker.
var lengthAxes = map[string]axis{
	"x": horizontal, "cx": horizontal, "x1": horizontal, "x2": horizontal,
	"dx": horizontal, "rx": horizontal, "width": horizontal, "fx": horizontal,
	"y": vertical, "cy": vertical, "y1": vertical, "y2": vertical,
	"dy": vertical, "ry": vertical, "height": vertical, "fy": vertical,
	"r": diagonal, "stroke-width": diagonal,
}

// viewportTags are the elements establishing a new viewport
var viewportTags = map[string]bool{
	"svg":     true,
	"symbol":  true,
	"image":   true,
	"marker":  true,
	"pattern": true,
}

func newIconCursor(icon *SvgIcon, o options) *iconCursor {
	root := frame{ctx: o.context, ctm: svgcoord.Identity}
	return &iconCursor{options: o, icon: icon, stack: []frame{root}}
}

// handleError applies the error mode to err.
func (c *iconCursor) handleError(err error) error {
	switch c.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		c.logger.Warn(err.Error())
	}
	return nil
}

// readAttributes returns the attributes of the element, followed
// by the declarations of its style attribute, so that style wins.
func readAttributes(attrs []xml.Attr) []attribute {
	var out, styles []attribute
	for _, attr := range attrs {
		k := attr.Name.Local
		if strings.ToLower(k) != "style" {
			out = append(out, attribute{k, strings.TrimSpace(attr.Value)})
			continue
		}
		for _, pair := range strings.Split(attr.Value, ";") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) == 2 {
				styles = append(styles, attribute{strings.ToLower(strings.TrimSpace(kv[0])), strings.TrimSpace(kv[1])})
			}
		}
	}
	return append(out, styles...)
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	parent := c.stack[len(c.stack)-1]
	el := Element{
		Tag:     se.Name.Local,
		Depth:   len(c.stack) - 1,
		Lengths: make(map[string]float64),
	}
	attrs := readAttributes(se.Attr)
	values := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		values[attr.k] = attr.v
	}
	el.ID = values["id"]

	// the font size comes first: the other lengths of the element
	// use its own font for em and ex
	ctx, ctm := parent.ctx, parent.ctm
	if v, ok := values["font-size"]; ok {
		size, ok, err := c.resolveFontSize(parent.ctx, el.Tag, v)
		if err != nil {
			return err
		}
		if ok {
			el.Lengths["font-size"] = size
			if ctx.PixelsPerInch > 0 {
				ctx.Font = ctx.Font.WithFontSize(size * 72 / ctx.PixelsPerInch)
			}
		}
	}

	// percentages still refer to the viewport of the parent
	lengthCtx := ctx
	if isGradient(el.Tag) && values["gradientUnits"] != "userSpaceOnUse" {
		el.ObjectUnits = true
		lengthCtx.ForcePercentage = true
		lengthCtx.BoundingBox = svgcoord.Bounds{W: 1, H: 1}
	}
	for _, attr := range attrs {
		ax, ok := lengthAxes[attr.k]
		if !ok {
			continue
		}
		value, ok, err := c.resolveLength(lengthCtx, el.Tag, attr, ax)
		if err != nil {
			return err
		}
		if ok {
			el.Lengths[attr.k] = value
		}
	}

	if tr, ok := values["transform"]; ok {
		ctm = ctm.Mult(svgcoord.ParseTransform(tr))
	}

	if viewportTags[el.Tag] {
		var err error
		ctx, ctm, err = c.enterViewport(&el, values, ctx, ctm)
		if err != nil {
			return err
		}
	}

	el.Context, el.Transform = ctx, ctm
	c.icon.Elements = append(c.icon.Elements, el)
	c.stack = append(c.stack, frame{ctx: ctx, ctm: ctm})

	switch el.Tag {
	case "title":
		c.icon.Titles = append(c.icon.Titles, "")
		c.inTitleText = true
	case "desc":
		c.icon.Descriptions = append(c.icon.Descriptions, "")
		c.inDescText = true
	}
	return nil
}

func isGradient(tag string) bool {
	return tag == "linearGradient" || tag == "radialGradient"
}

// resolveFontSize returns the font size v in pixels. Percentages
// and em refer to the font of the parent.
func (c *iconCursor) resolveFontSize(parent svgcoord.Context, tag, v string) (float64, bool, error) {
	if _, end := svgcoord.ParseNumber(v, 0); end == 0 {
		if v == "" {
			return 0, false, nil
		}
		err := fmt.Errorf("svgicon: <%s> font-size=%q: %w", tag, v, ErrInvalidLength)
		return 0, false, c.handleError(err)
	}
	if strings.HasSuffix(v, "%") {
		return svgcoord.FromPercentage(v) * parent.PtToPx(parent.Font.PointSize), true, nil
	}
	return parent.ParseUnit(v, true, true, parent.BoundingBox), true, nil
}

// resolveLength returns false for values which are not lengths,
// such as "auto" or "medium".
func (c *iconCursor) resolveLength(ctx svgcoord.Context, tag string, attr attribute, ax axis) (float64, bool, error) {
	if attr.v == "" {
		return 0, false, nil
	}
	if _, end := svgcoord.ParseNumber(attr.v, 0); end == 0 {
		err := fmt.Errorf("svgicon: <%s> %s=%q: %w", tag, attr.k, attr.v, ErrInvalidLength)
		return 0, false, c.handleError(err)
	}
	switch ax {
	case horizontal:
		return ctx.ParseUnitX(attr.v), true, nil
	case vertical:
		return ctx.ParseUnitY(attr.v), true, nil
	default:
		return ctx.ParseUnitXY(attr.v), true, nil
	}
}

// enterViewport resolves the viewport of el, and returns the state
// of its children.
func (c *iconCursor) enterViewport(el *Element, values map[string]string, ctx svgcoord.Context, ctm svgcoord.Matrix2D) (svgcoord.Context, svgcoord.Matrix2D, error) {
	parent := c.stack[len(c.stack)-1].ctx
	viewBox, par := values["viewBox"], values["preserveAspectRatio"]
	vp := &Viewport{AspectRatio: svgcoord.ParseAspectRatio(par)}
	vb, hasViewBox := svgcoord.ParseViewBox(viewBox)

	w, okW := el.Lengths["width"]
	h, okH := el.Lengths["height"]
	isRoot := el.Depth == 0
	if !okW {
		w = parent.ParseUnitX("100%")
		if isRoot && w == 0 && hasViewBox {
			w = vb.W
		}
	}
	if !okH {
		h = parent.ParseUnitY("100%")
		if isRoot && h == 0 && hasViewBox {
			h = vb.H
		}
	}
	// x and y have no effect on the outermost element
	if !isRoot {
		vp.Bounds.X, vp.Bounds.Y = el.Lengths["x"], el.Lengths["y"]
	}
	vp.Bounds.W, vp.Bounds.H = w, h
	ctm = ctm.Translate(vp.Bounds.X, vp.Bounds.Y)
	vp.Transform = ctm

	vb, m, ok := svgcoord.ResolveElementViewport(el.Tag, viewBox, par, svgcoord.Bounds{W: w, H: h})
	if ok {
		ctm = ctm.Mult(m)
		ctx.BoundingBox = vb
		vp.ViewBox, vp.HasViewBox = vb, true
	} else {
		ctx.BoundingBox = svgcoord.Bounds{W: w, H: h}
		if strings.TrimSpace(viewBox) != "" {
			err := fmt.Errorf("svgicon: <%s> viewBox=%q: %w", el.Tag, viewBox, ErrInvalidViewBox)
			if err = c.handleError(err); err != nil {
				return ctx, ctm, err
			}
		}
	}

	if isRoot {
		c.icon.ViewBox = vp.ViewBox
		c.icon.Width, c.icon.Height = values["width"], values["height"]
	}
	el.Viewport = vp
	return ctx, ctm, nil
}
