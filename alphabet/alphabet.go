package alphabet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/fundgroup/word"
)

// MaxLetters is the largest generator count rendered with single letters.
const MaxLetters = 26

// inverseSuffix marks an inverted token in verbose form.
const inverseSuffix = "^-1"

// Sentinel errors for the codec.
var (
	// ErrNonGenerator indicates a token that does not name a generator in 1..n.
	ErrNonGenerator = errors.New("alphabet: not a generator")

	// ErrBadCount indicates a negative generator count.
	ErrBadCount = errors.New("alphabet: generator count must be non-negative")
)

// Alphabet renders and parses single signed generators for a fixed generator count.
type Alphabet interface {
	// Size returns the generator count n.
	Size() int

	// Token renders the signed generator g in compact form. 1 ≤ |g| ≤ Size() is assumed.
	Token(g int) string

	// Base renders the positive generator |g|.
	Base(g int) string

	// scan reads one token starting at text[pos] and returns the signed
	// generator and the offset just past the token.
	scan(text string, pos int) (g int, next int, err error)
}

// For selects the alphabet for n generators.
func For(n int) (Alphabet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if n <= MaxLetters {
		return letters(n), nil
	}

	return indexed(n), nil
}

// letters is the single-letter alphabet a..z / A..Z.
type letters int

func (l letters) Size() int { return int(l) }

func (l letters) Base(g int) string {
	if g < 0 {
		g = -g
	}

	return string(rune('a' + g - 1))
}

func (l letters) Token(g int) string {
	if g < 0 {
		return string(rune('A' - g - 1))
	}

	return string(rune('a' + g - 1))
}

func (l letters) scan(text string, pos int) (int, int, error) {
	c := text[pos]
	var g int
	switch {
	case c >= 'a' && c <= 'z':
		g = int(c-'a') + 1
	case c >= 'A' && c <= 'Z':
		g = -(int(c-'A') + 1)
	default:
		return 0, pos, nonGenerator(runeAt(text, pos), pos)
	}
	if abs(g) > int(l) {
		return 0, pos, nonGenerator(text[pos:pos+1], pos)
	}

	return g, pos + 1, nil
}

// indexed is the x<k> / X<k> alphabet used beyond 26 generators.
type indexed int

func (x indexed) Size() int { return int(x) }

func (x indexed) Base(g int) string {
	return "x" + strconv.Itoa(abs(g))
}

func (x indexed) Token(g int) string {
	if g < 0 {
		return "X" + strconv.Itoa(-g)
	}

	return "x" + strconv.Itoa(g)
}

func (x indexed) scan(text string, pos int) (int, int, error) {
	sign := 1
	switch text[pos] {
	case 'x':
	case 'X':
		sign = -1
	default:
		return 0, pos, nonGenerator(runeAt(text, pos), pos)
	}
	end := pos + 1
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	k, err := strconv.Atoi(text[pos+1 : end])
	if err != nil || k < 1 || k > int(x) {
		return 0, pos, nonGenerator(text[pos:end], pos)
	}

	return sign * k, end, nil
}

// runeAt returns the whole character starting at byte offset pos.
func runeAt(text string, pos int) string {
	_, size := utf8.DecodeRuneInString(text[pos:])

	return text[pos : pos+size]
}

func nonGenerator(tok string, pos int) error {
	return fmt.Errorf("%w: %q at offset %d", ErrNonGenerator, tok, pos)
}

func abs(g int) int {
	if g < 0 {
		return -g
	}

	return g
}

// Decode parses text into a reduced word over n generators.
// '*' separators and whitespace are ignored; a token may carry a "^-1" suffix.
// Returns ErrNonGenerator for any token outside 1..n or any unparsable character.
func Decode(text string, n int) (word.Word, error) {
	a, err := For(n)
	if err != nil {
		return word.Word{}, err
	}

	return DecodeWith(a, text)
}

// DecodeWith parses text using an already selected alphabet.
func DecodeWith(a Alphabet, text string) (word.Word, error) {
	seq := make([]int, 0, len(text))
	pos := 0
	for pos < len(text) {
		switch text[pos] {
		case '*', ' ', '\t', '\n', '\r':
			pos++
			continue
		}
		g, next, err := a.scan(text, pos)
		if err != nil {
			return word.Word{}, err
		}
		if strings.HasPrefix(text[next:], inverseSuffix) {
			g = -g
			next += len(inverseSuffix)
		}
		seq = append(seq, g)
		pos = next
	}

	return word.Reduce(seq)
}

// Encode renders w over n generators.
// Compact form concatenates tokens; verbose form joins base tokens with '*'
// and marks inverses with "^-1". The identity renders as "".
// Returns ErrNonGenerator if w uses a generator above n.
func Encode(w word.Word, n int, verbose bool) (string, error) {
	a, err := For(n)
	if err != nil {
		return "", err
	}

	return EncodeWith(a, w, verbose)
}

// EncodeWith renders w using an already selected alphabet.
func EncodeWith(a Alphabet, w word.Word, verbose bool) (string, error) {
	if m := w.MaxGenerator(); m > a.Size() {
		return "", fmt.Errorf("%w: generator %d exceeds %d", ErrNonGenerator, m, a.Size())
	}
	var sb strings.Builder
	for i := 0; i < w.Len(); i++ {
		if verbose && i > 0 {
			sb.WriteByte('*')
		}
		writeSigned(&sb, a, w.At(i), verbose)
	}

	return sb.String(), nil
}

// EncodeSigned renders a single signed generator g over n generators.
func EncodeSigned(g, n int, verbose bool) (string, error) {
	a, err := For(n)
	if err != nil {
		return "", err
	}
	if g == 0 || abs(g) > n {
		return "", fmt.Errorf("%w: %d", ErrNonGenerator, g)
	}
	var sb strings.Builder
	writeSigned(&sb, a, g, verbose)

	return sb.String(), nil
}

func writeSigned(sb *strings.Builder, a Alphabet, g int, verbose bool) {
	if !verbose || g > 0 {
		sb.WriteString(a.Token(g))
		return
	}
	sb.WriteString(a.Base(g))
	sb.WriteString(inverseSuffix)
}

// Generators lists the display names of generators 1..n.
func Generators(n int) ([]string, error) {
	a, err := For(n)
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for g := 1; g <= n; g++ {
		out[g-1] = a.Token(g)
	}

	return out, nil
}
