package tietze

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors returned by the replay engine.
var (
	// ErrMalformedTranscript indicates a transcript that violates the move grammar.
	ErrMalformedTranscript = errors.New("tietze: malformed transcript")

	// ErrBadGeneratorCount indicates a negative original generator count.
	ErrBadGeneratorCount = errors.New("tietze: original generator count must be non-negative")
)

// Transcript is the flat move log emitted by a presentation simplifier,
// without its 0 terminator. It is never modified by this package.
type Transcript []int

// FromWire strips the trailing 0 terminator from a kernel move stream.
// An empty stream is an empty transcript. A 0 anywhere but the end, or a
// non-empty stream without the terminator, is ErrMalformedTranscript.
func FromWire(stream []int) (Transcript, error) {
	if len(stream) == 0 {
		return Transcript{}, nil
	}
	last := len(stream) - 1
	if stream[last] != 0 {
		return nil, fmt.Errorf("%w: missing 0 terminator", ErrMalformedTranscript)
	}
	for i, tok := range stream[:last] {
		if tok == 0 {
			return nil, fmt.Errorf("%w: zero token at offset %d", ErrMalformedTranscript, i)
		}
	}
	out := make(Transcript, last)
	copy(out, stream[:last])

	return out, nil
}

// Raw returns a copy of the untouched transcript.
func (t Transcript) Raw() []int {
	out := make([]int, len(t))
	copy(out, t)

	return out
}

// MoveKind enumerates the elementary transformations.
type MoveKind int

const (
	// Introduce appends a generator defined by a word in the current table.
	Introduce MoveKind = iota

	// Delete eliminates a generator; the last generator takes its index.
	Delete

	// Invert replaces a generator by its inverse.
	Invert

	// Slide multiplies a generator by another generator or its inverse.
	Slide
)

// String returns the lowercase move name.
func (k MoveKind) String() string {
	switch k {
	case Introduce:
		return "introduce"
	case Delete:
		return "delete"
	case Invert:
		return "invert"
	case Slide:
		return "slide"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// Move is one decoded transformation.
//
// A and B carry the two tokens of a paired move. For Introduce, A is the new
// index and Definition the defining word over the current table.
// Size is the table size before the move; Offset the transcript offset of its
// first token.
type Move struct {
	Kind       MoveKind
	A, B       int
	Definition []int
	Size       int
	Offset     int
}

// String renders the move for listings, e.g. "slide 1 -2".
func (m Move) String() string {
	switch m.Kind {
	case Introduce:
		return fmt.Sprintf("introduce %d = %v", m.A, m.Definition)
	case Delete:
		return fmt.Sprintf("delete %d (moves %d to %d)", m.A, m.Size, m.A)
	case Invert:
		return fmt.Sprintf("invert %d", abs(m.A))
	default:
		return fmt.Sprintf("%s %d %d", m.Kind, m.A, m.B)
	}
}

// Options configures Replay.
type Options struct {
	// Logger receives one debug record per move. Nil discards them.
	Logger *slog.Logger
}

// Option is a functional option for Replay.
type Option func(*Options)

// WithLogger routes per-move debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with logging discarded.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func abs(g int) int {
	if g < 0 {
		return -g
	}

	return g
}
