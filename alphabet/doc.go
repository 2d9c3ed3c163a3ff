// Package alphabet converts free-group words to and from display strings.
//
// Two alphabets exist, selected once from the generator count n:
//
//   - Letters (n ≤ 26): generator k is the k-th lowercase letter, its inverse
//     the uppercase letter. Compact form "abAB".
//   - Indexed (n > 26): generator k is "x<k>", its inverse "X<k>".
//     Compact form "x1x2X1X2".
//
// Verbose form joins letters with '*' and renders inverses as the positive
// token followed by "^-1": "a*b*a^-1*b^-1", "x1*x27^-1".
//
// Decode accepts both forms for the selected alphabet, skipping '*' and
// whitespace, and reduces the result. Every token must name a generator in
// 1..n, otherwise ErrNonGenerator is returned together with the token and
// its byte offset; no partial word is ever returned.
//
// Example:
//
//	w, _ := alphabet.Decode("aaba", 2)     // [1 1 2 1]
//	s, _ := alphabet.Encode(w, 2, true)   // "a*a*b*a"
package alphabet
