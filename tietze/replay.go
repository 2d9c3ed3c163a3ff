package tietze

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fundgroup/word"
)

// Replay runs transcript t against n0 original generators and returns, in
// index order, the word in the original generators for every bookkeeping
// generator left at the end.
//
// Returns ErrBadGeneratorCount if n0 < 0 and ErrMalformedTranscript (wrapped
// with the offending offset) if t violates the move grammar.
func Replay(n0 int, t Transcript, opts ...Option) ([]word.Word, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}
	if n0 < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadGeneratorCount, n0)
	}

	r := &runner{
		dec: decoder{t: t, size: n0},
		tab: newTable(n0),
		log: cfg.Logger,
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.tab.result(), nil
}

// Moves decodes t into typed moves without building words.
// It applies the same validation as Replay.
func Moves(n0 int, t Transcript) ([]Move, error) {
	if n0 < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadGeneratorCount, n0)
	}
	dec := decoder{t: t, size: n0}
	var out []Move
	for !dec.done() {
		m, err := dec.next()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, nil
}

// runner holds the mutable state of a single Replay call.
type runner struct {
	dec decoder
	tab *table
	log *slog.Logger
}

// process decodes and applies moves until the transcript is exhausted.
func (r *runner) process() error {
	for !r.dec.done() {
		m, err := r.dec.next()
		if err != nil {
			return err
		}
		r.log.Debug("tietze: move",
			slog.String("kind", m.Kind.String()),
			slog.Int("a", m.A),
			slog.Int("b", m.B),
			slog.Int("size", m.Size),
			slog.Int("offset", m.Offset))
		r.apply(m)
	}

	return nil
}

// apply performs one validated move on the table.
func (r *runner) apply(m Move) {
	switch m.Kind {
	case Introduce:
		parts := make([]word.Word, len(m.Definition))
		for i, g := range m.Definition {
			parts[i] = r.tab.signed(g)
		}
		r.tab.push(word.Product(parts...))

	case Delete:
		// After this, index |A| refers to what used to be the last generator.
		r.tab.swapRemove(abs(m.A))

	case Invert:
		i := abs(m.A)
		r.tab.set(i, r.tab.at(i).Inverse())

	case Slide:
		i := abs(m.A)
		a := r.tab.at(i)
		b := r.tab.at(abs(m.B))
		if (m.A > 0) != (m.B > 0) {
			b = b.Inverse()
		}
		if m.A > 0 {
			r.tab.set(i, a.Concat(b))
		} else {
			r.tab.set(i, b.Concat(a))
		}
	}
}

// decoder splits a transcript into moves, tracking the table size each move
// sees. It never reads past the end of t.
type decoder struct {
	t    Transcript
	pos  int
	size int // current table size M, placeholder excluded
}

func (d *decoder) done() bool {
	return d.pos >= len(d.t)
}

// next decodes the move at d.pos and advances past it.
func (d *decoder) next() (Move, error) {
	start := d.pos
	a := d.t[start]
	if a == 0 {
		return Move{}, malformed(start, "zero token")
	}

	// |a| ≥ M+1 can only be an introduction of generator M+1.
	if abs(a) > d.size {
		if a != d.size+1 {
			return Move{}, malformed(start, "introduction token %d, next free index is %d", a, d.size+1)
		}
		end := d.sentinel(start)
		if end < 0 {
			return Move{}, malformed(start, "no sentinel for introduction of %d", a)
		}
		def := make([]int, end-start-1)
		copy(def, d.t[start+1:end])
		for i, g := range def {
			if g == 0 || abs(g) > d.size {
				return Move{}, malformed(start+1+i, "defining letter %d outside table of size %d", g, d.size)
			}
		}
		m := Move{Kind: Introduce, A: a, Definition: def, Size: d.size, Offset: start}
		d.size++
		d.pos = end + 1

		return m, nil
	}

	if start+1 >= len(d.t) {
		return Move{}, malformed(start, "dangling token %d", a)
	}
	b := d.t[start+1]
	if b == 0 || abs(b) > d.size {
		return Move{}, malformed(start+1, "index %d outside table of size %d", b, d.size)
	}
	m := Move{A: a, B: b, Size: d.size, Offset: start}
	switch {
	case a == b:
		m.Kind = Delete
		d.size--
	case a == -b:
		m.Kind = Invert
	default:
		m.Kind = Slide
	}
	d.pos = start + 2

	return m, nil
}

// sentinel returns the offset of the next occurrence of t[start] after start, or -1.
func (d *decoder) sentinel(start int) int {
	want := d.t[start]
	for i := start + 1; i < len(d.t); i++ {
		if d.t[i] == want {
			return i
		}
	}

	return -1
}

func malformed(offset int, format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrMalformedTranscript, offset, fmt.Sprintf(format, args...))
}

// table is the 1-based bookkeeping array. words[0] is an unused placeholder.
type table struct {
	words []word.Word
}

func newTable(n0 int) *table {
	words := make([]word.Word, n0+1)
	for i := 1; i <= n0; i++ {
		words[i] = word.Generator(i)
	}

	return &table{words: words}
}

func (t *table) at(i int) word.Word {
	return t.words[i]
}

// signed returns words[|g|], inverted when g < 0.
func (t *table) signed(g int) word.Word {
	if g < 0 {
		return t.words[-g].Inverse()
	}

	return t.words[g]
}

func (t *table) set(i int, w word.Word) {
	t.words[i] = w
}

func (t *table) push(w word.Word) {
	t.words = append(t.words, w)
}

// swapRemove overwrites words[i] with the last entry and drops the last slot.
func (t *table) swapRemove(i int) {
	last := len(t.words) - 1
	t.words[i] = t.words[last]
	t.words[last] = word.Word{}
	t.words = t.words[:last]
}

// result returns words[1..] as a fresh slice.
func (t *table) result() []word.Word {
	out := make([]word.Word, len(t.words)-1)
	copy(out, t.words[1:])

	return out
}
