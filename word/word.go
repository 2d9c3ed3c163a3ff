package word

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for word construction.
var (
	// ErrZeroLetter indicates that 0 was used as a letter; 0 is reserved as the wire terminator.
	ErrZeroLetter = errors.New("word: zero is not a generator")

	// ErrUnterminated indicates a wire stream whose last word lacks the 0 terminator.
	ErrUnterminated = errors.New("word: missing 0 terminator")
)

// Word is a freely reduced element of a free group.
// The zero value is the identity.
type Word struct {
	letters []int // reduced; never contains 0
}

// Identity returns the empty word.
func Identity() Word {
	return Word{}
}

// Generator returns the single-letter word for the signed generator g.
// It panics if g == 0; callers inject original generators, never the terminator.
func Generator(g int) Word {
	if g == 0 {
		panic(ErrZeroLetter.Error())
	}

	return Word{letters: []int{g}}
}

// Reduce returns the freely reduced word spelled by seq.
// seq may contain adjacent cancelling pairs; it must not contain 0.
// Returns ErrZeroLetter (with the offending position) otherwise.
// Complexity: O(len(seq)).
func Reduce(seq []int) (Word, error) {
	for i, g := range seq {
		if g == 0 {
			return Word{}, fmt.Errorf("%w: position %d", ErrZeroLetter, i)
		}
	}

	return Word{letters: reduce(seq, nil)}, nil
}

// MustReduce is Reduce for literal input; it panics on ErrZeroLetter.
func MustReduce(seq ...int) Word {
	w, err := Reduce(seq)
	if err != nil {
		panic(err.Error())
	}

	return w
}

// reduce pushes every letter of seq onto stack, cancelling against the top.
// stack must already be reduced.
func reduce(seq []int, stack []int) []int {
	for _, g := range seq {
		if n := len(stack); n > 0 && stack[n-1] == -g {
			stack = stack[:n-1] // cancellation
			continue
		}
		stack = append(stack, g)
	}
	if len(stack) == 0 {
		return nil
	}

	return stack
}

// Len returns the number of letters.
func (w Word) Len() int {
	return len(w.letters)
}

// IsIdentity reports whether w is the empty word.
func (w Word) IsIdentity() bool {
	return len(w.letters) == 0
}

// At returns the i-th signed letter (0-based). It panics if i is out of range.
func (w Word) At(i int) int {
	return w.letters[i]
}

// Letters returns a copy of the signed letters of w.
func (w Word) Letters() []int {
	out := make([]int, len(w.letters))
	copy(out, w.letters)

	return out
}

// MaxGenerator returns the largest |g| occurring in w, or 0 for the identity.
func (w Word) MaxGenerator() int {
	var m int
	for _, g := range w.letters {
		if g < 0 {
			g = -g
		}
		if g > m {
			m = g
		}
	}

	return m
}

// Inverse returns w⁻¹: letters reversed and negated.
// Complexity: O(len(w)).
func (w Word) Inverse() Word {
	if len(w.letters) == 0 {
		return Word{}
	}
	n := len(w.letters)
	out := make([]int, n)
	for i, g := range w.letters {
		out[n-1-i] = -g
	}

	return Word{letters: out}
}

// Concat returns the reduced product w·v.
// Complexity: O(len(w) + len(v)).
func (w Word) Concat(v Word) Word {
	stack := make([]int, len(w.letters), len(w.letters)+len(v.letters))
	copy(stack, w.letters)

	return Word{letters: reduce(v.letters, stack)}
}

// Product returns the reduced product of ws in order.
func Product(ws ...Word) Word {
	var total int
	for _, w := range ws {
		total += len(w.letters)
	}
	stack := make([]int, 0, total)
	for _, w := range ws {
		stack = reduce(w.letters, stack)
	}

	return Word{letters: stack}
}

// Equal reports whether w and v are the same reduced word.
func (w Word) Equal(v Word) bool {
	if len(w.letters) != len(v.letters) {
		return false
	}
	for i := range w.letters {
		if w.letters[i] != v.letters[i] {
			return false
		}
	}

	return true
}

// String renders the signed letters, e.g. "[1 -2]". Use package alphabet for display forms.
func (w Word) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, g := range w.letters {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(g))
	}
	sb.WriteByte(']')

	return sb.String()
}
