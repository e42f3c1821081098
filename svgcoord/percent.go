package svgcoord

import "strings"

// ToPercentage returns s in percents: "50%" is 50 and a bare
// number is read as a fraction of 1, so that "0.5" is 50 too.
// Every '%' of a suffixed value is dropped. Invalid input gives 0.
func ToPercentage(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		return parseWhole(strings.ReplaceAll(s, "%", ""))
	}
	return parseWhole(s) * 100
}

// FromPercentage returns s as a fraction of 1: "50%" is 0.5,
// while a bare number is returned unchanged.
// Values outside [0, 1] are kept. Invalid input gives 0.
func FromPercentage(s string) float64 {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		return parseWhole(strings.ReplaceAll(s, "%", "")) / 100
	}
	return parseWhole(s)
}
