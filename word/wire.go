package word

import "fmt"

// SplitTerminated splits a 0-terminated wire stream into one raw letter slice per word.
// An empty stream yields no words; a stream not ending in 0 returns ErrUnterminated.
// The returned slices are raw: they are not reduced.
func SplitTerminated(stream []int) ([][]int, error) {
	var (
		out   [][]int
		start int
	)
	for i, g := range stream {
		if g != 0 {
			continue
		}
		run := make([]int, i-start)
		copy(run, stream[start:i])
		out = append(out, run)
		start = i + 1
	}
	if start != len(stream) {
		return nil, fmt.Errorf("%w: %d trailing letters", ErrUnterminated, len(stream)-start)
	}

	return out, nil
}

// ParseTerminated splits stream like SplitTerminated and reduces every word.
func ParseTerminated(stream []int) ([]Word, error) {
	runs, err := SplitTerminated(stream)
	if err != nil {
		return nil, err
	}
	out := make([]Word, len(runs))
	for i, run := range runs {
		if out[i], err = Reduce(run); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Terminated returns the wire form of w: its letters followed by 0.
func Terminated(w Word) []int {
	out := make([]int, len(w.letters)+1)
	copy(out, w.letters)

	return out
}
