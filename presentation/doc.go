// Package presentation is the user-facing view of a simplified fundamental-group
// presentation.
//
// Overview:
//
//   - A geometric-topology kernel builds the presentation of a triangulated
//     3-manifold or orbifold and hands back plain data (Data): the generator
//     count, relators, per-cusp meridian and longitude words, the original
//     generator count and the move transcript of its simplifier.
//   - Presentation wraps that data and renders it: generator and relator
//     listings, words in the presentation's alphabet, peripheral curves by
//     cusp, and the simplified generators expressed in the original ones
//     (replayed through package tietze).
//   - Holonomy lookups decode a word and hand it to a configured evaluator;
//     no matrix arithmetic happens here.
//   - GAPString and MagmaString format the presentation for those systems.
//
// Cusp indices accept the negative convention: -1 is the last cusp. Anything
// outside [-NumCusps, NumCusps-1] returns ErrCuspOutOfRange.
//
// Errors (sentinel):
//
//   - ErrEmptyTriangulation: FromKernel on a nil or zero-tetrahedron triangulation.
//   - ErrInconsistentData:   Data that contradicts itself (letters above the
//     generator count, mismatched cusp lists, replay yielding the wrong count).
//   - ErrCuspOutOfRange:     meridian/longitude lookup outside the cusp range.
//   - ErrNoHolonomy:         SL2C/O31/ComplexLength without WithHolonomy.
//   - ErrUnknownFormat:      Export with an unsupported format name.
//
// Decode errors from package alphabet and replay errors from package tietze
// are returned wrapped, so errors.Is matches their sentinels.
//
// Thread safety:
//
//	A Presentation is immutable after New. Every replay gets its own table,
//	so concurrent calls are safe.
package presentation
