// Package fundgroup works with fundamental-group presentations produced by a
// 3-manifold topology kernel: reduced words in the free group, their display
// alphabets, and the Tietze move transcript that expresses simplified
// generators in the original ones.
//
// Packages:
//
//	word/         freely reduced words over signed generator indices
//	alphabet/     compact (aB, x3X4) and verbose (a*b^-1) word forms
//	tietze/       transcript decoding and replay
//	presentation/ the presentation facade: listings, cusps, exports, holonomy
//	holonomy/     SL(2,C) and O(3,1) generator images evaluated on words
//	matrix/       small dense real and complex matrices
//	document/     YAML/JSON presentation dumps
//	cmd/fundgroup the command-line front end
//
// Quick example:
//
//	p, err := document.Open("m004.yaml")
//	if err != nil {
//		return err
//	}
//	gens, err := p.GeneratorsInOriginals(false) // ["ab", "cBA"]
//
//	go get github.com/katalvlaran/fundgroup
package fundgroup
