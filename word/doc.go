// Package word implements freely reduced words in a free group.
//
// Overview:
//
//   - A Word is an ordered sequence of signed generator indices. |g| names the
//     generator (1-based), the sign selects the generator (+) or its inverse (−).
//   - Every Word is freely reduced: no two consecutive letters are arithmetic
//     negatives of each other. The empty Word is the identity.
//   - Words are immutable values. They can only be produced by Reduce,
//     MustReduce, Generator, Inverse and Concat, so the reduced-form invariant
//     holds by construction.
//
// Free reduction:
//
//	Reduce walks the input once, left to right, keeping an output stack.
//	A letter that cancels the top of the stack pops it; any other letter is
//	pushed. Newly exposed adjacencies are re-checked on the next step, so one
//	pass yields the unique reduced form.
//
// Wire format:
//
//	Kernel output encodes words as 0-terminated runs of signed integers, for
//	example [1 2 -1 -2 0 2 2 0] holds two relators. SplitTerminated and
//	Terminated convert between that stream and per-word slices.
//
// Complexity:
//
//   - Reduce, Inverse, Concat: O(n) time and memory, n = total letters.
//   - Equal: O(n).
//
// Errors (sentinel):
//
//   - ErrZeroLetter: a 0 appeared where a signed generator was expected.
//   - ErrUnterminated: a wire stream did not end with the 0 terminator.
package word
