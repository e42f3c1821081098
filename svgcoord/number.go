package svgcoord

import "github.com/tdewolff/parse/v2/strconv"

// ParseNumber reads the decimal literal (optional sign, digits, fraction
// and exponent) starting at the byte offset pos of s, and returns its value
// together with the offset following it.
// When no number starts at pos, the returned offset is pos itself: a
// zero value with an unchanged offset is a failure, not a real zero.
// An incomplete exponent is not consumed, so that "1em" reads 1 and
// stops before the unit.
func ParseNumber(s string, pos int) (float64, int) {
	if pos < 0 || pos >= len(s) {
		return 0, pos
	}
	return lexNumber([]byte(s), pos)
}

// lexNumber is ParseNumber on bytes, so that a caller scanning
// a whole list converts its input only once.
func lexNumber(b []byte, pos int) (float64, int) {
	if pos < 0 || pos >= len(b) {
		return 0, pos
	}
	f, n := strconv.ParseFloat(b[pos:])
	return f, pos + n
}

// parseWhole returns the value of s if s is exactly one number,
// or 0 otherwise.
func parseWhole(s string) float64 {
	f, n := ParseNumber(s, 0)
	if n != len(s) {
		return 0
	}
	return f
}

// parseNumbers reads all the numbers of s, separated by whitespace,
// commas or parenthesis. Numbers may also follow each other without
// separator, as in "10-5". Characters which are not part of a number
// are skipped.
func parseNumbers(s string) []float64 {
	var out []float64
	b := []byte(s)
	for i := 0; i < len(b); {
		switch b[i] {
		case ' ', '\t', '\n', '\r', ',', '(':
			i++
			continue
		}
		f, end := lexNumber(b, i)
		if end == i {
			i++
			continue
		}
		out = append(out, f)
		i = end
	}
	return out
}
