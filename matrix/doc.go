// SPDX-License-Identifier: MIT
// Package matrix provides the small dense matrices carried by holonomy
// representations: real matrices (O(3,1) images, 4×4) and complex matrices
// (SL(2,C) images, 2×2).
//
// What & Why:
//
//	Representations are computed elsewhere and only passed through, so this
//	package keeps to storage, bounds-checked access, products and the two
//	closed-form inverses the generator-image evaluator needs.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1); Mul is O(n·m·p); Clone and Transpose are O(r·c).
//
// Errors (sentinel):
//
//	ErrInvalidDimensions - non-positive rows or columns.
//	ErrIndexOutOfBounds  - At/Set outside the matrix.
//	ErrDimensionMismatch - incompatible operands or a flat slice of the wrong length.
package matrix
