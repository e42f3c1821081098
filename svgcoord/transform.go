package svgcoord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// ParseTransform folds the transform list s (rotate, translate, scale,
// skewX, skewY and matrix functions) into one matrix.
// Each function is appended in the order it is written, so that
// the first one listed is the last applied to a point.
//
// Malformed functions are skipped: wrong parameter counts fall back
// to the shorter form when it exists (rotate about the origin,
// translate with ty = 0, uniform scale), and are ignored otherwise.
func ParseTransform(s string) Matrix2D {
	m := Identity
	for _, chunk := range strings.Split(s, ")") {
		chunk = strings.Join(strings.Fields(chunk), " ")
		parts := splitNonEmpty(chunk, "(")
		if len(parts) < 2 {
			continue
		}
		// separators between functions may mix spaces, commas and semicolons
		name := strings.TrimLeft(strings.ToLower(parts[0]), " ;,")
		name = strings.TrimSpace(name)
		m = appendTransform(m, name, parseNumbers(parts[1]))
	}
	return m
}

func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func appendTransform(m Matrix2D, name string, params []float64) Matrix2D {
	if len(params) == 0 {
		Logger().Debug("svgcoord: transform without parameters", "name", name)
		return m
	}
	switch name {
	case "rotate":
		angle := degToRad(params[0])
		if len(params) == 3 {
			return m.Translate(params[1], params[2]).Rotate(angle).Translate(-params[1], -params[2])
		}
		return m.Rotate(angle)
	case "translate":
		if len(params) == 2 {
			return m.Translate(params[0], params[1])
		}
		return m.Translate(params[0], 0)
	case "scale":
		if len(params) == 2 {
			return m.Scale(params[0], params[1])
		}
		return m.Scale(params[0], params[0])
	case "skewx":
		return m.SkewX(degToRad(params[0]))
	case "skewy":
		return m.SkewY(degToRad(params[0]))
	case "matrix":
		if len(params) < 6 {
			Logger().Debug("svgcoord: matrix needs 6 parameters", "got", len(params))
			return m
		}
		return m.Mult(Matrix2D{params[0], params[1], params[2], params[3], params[4], params[5]})
	default:
		Logger().Debug("svgcoord: unknown transform", "name", name)
		return m
	}
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// FormatTransform returns the SVG transform list of m: the empty string
// for the identity, `translate(dx, dy)` for a translation and
// `matrix(a b c d e f)` otherwise.
// ParseTransform(FormatTransform(m)) is m.
func FormatTransform(m Matrix2D) string {
	if m.IsIdentity() {
		return ""
	}
	if m.IsTranslation() {
		return fmt.Sprintf("translate(%s, %s)", formatFloat(m.E), formatFloat(m.F))
	}
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		formatFloat(m.A), formatFloat(m.B), formatFloat(m.C),
		formatFloat(m.D), formatFloat(m.E), formatFloat(m.F))
}

// String implements fmt.Stringer, using FormatTransform.
func (m Matrix2D) String() string {
	if s := FormatTransform(m); s != "" {
		return s
	}
	return "identity"
}
