// Package tietze replays a transcript of elementary Tietze transformations.
//
// A presentation simplifier rewrites the generating set of a group with a
// sequence of elementary moves and logs each one as a flat run of signed
// integers. Replaying that log against the original generators recovers,
// for every generator of the simplified presentation, a word in the
// original generators.
//
// Bookkeeping table:
//
//	words[1..M] holds one word per current bookkeeping generator, written in
//	the original generators. It starts as words[i] = [i] for i = 1..n0 and
//	is owned by a single Replay call.
//
// Transcript grammar (M = current table size):
//
//	introduce:  k d1 … dj k      k == M+1; each |di| ≤ M indexes the current
//	                             table; the second k is the sentinel. Appends
//	                             words[k] = Π words[di]^sign(di).
//	delete:     a a              words[a] = words[M]; M shrinks by one.
//	                             Generator a now names the former last one.
//	invert:     a -a             words[a] = words[a]⁻¹.
//	slide:      a b              B = words[|b|], inverted when signs differ;
//	                             words[|a|] = A·B if a > 0, B·A if a < 0.
//
// A token t with |t| ≥ M+1 always starts an introduction. Because that
// decision depends on M, the transcript is only meaningful together with n0.
// Violations of the grammar (missing sentinel, an introduction token other
// than M+1, an index outside 1..M, a dangling token, a zero) are contract
// violations by the producer and fail the whole replay with
// ErrMalformedTranscript; no partial result is returned.
//
// Complexity:
//
//   - Time: O(T + Σ|words|) for a transcript of T tokens.
//   - Space: O(Σ|words|) for the table.
//
// Thread safety:
//
//	Replay and Moves are pure functions. Concurrent calls never share a table.
package tietze
