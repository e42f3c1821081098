// Package svgcoord converts SVG attribute values into numeric geometry:
// lengths with units and percentages, transform lists, viewBox and
// preserveAspectRatio declarations.
//
// The functions of this package never fail: malformed input degrades to
// a neutral value (zero length, skipped transform, unresolved viewBox).
// Lengths are resolved against a Context, an immutable snapshot of the
// graphics state supplied by the caller, so that all functions are safe
// for concurrent use.
//
// Matrices use the SVG `matrix(a b c d e f)` convention. Building a
// transform by chaining methods appends each operation, so that
//
//	Identity.Translate(10, 20).Scale(2, 2)
//
// is the matrix of `translate(10,20) scale(2)`.
package svgcoord
