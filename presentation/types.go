package presentation

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/fundgroup/matrix"
	"github.com/katalvlaran/fundgroup/tietze"
	"github.com/katalvlaran/fundgroup/word"
)

// Sentinel errors for the facade.
var (
	// ErrEmptyTriangulation indicates a triangulation with no tetrahedra.
	ErrEmptyTriangulation = errors.New("presentation: triangulation has no tetrahedra")

	// ErrInconsistentData indicates kernel data that contradicts itself.
	ErrInconsistentData = errors.New("presentation: inconsistent presentation data")

	// ErrCuspOutOfRange indicates a cusp index outside [-NumCusps, NumCusps-1].
	ErrCuspOutOfRange = errors.New("presentation: cusp index out of range")

	// ErrNoHolonomy indicates a holonomy lookup without a configured evaluator.
	ErrNoHolonomy = errors.New("presentation: no holonomy evaluator configured")

	// ErrUnknownFormat indicates an unsupported export format.
	ErrUnknownFormat = errors.New("presentation: unknown export format")
)

// Export formats understood by Export.
const (
	FormatGAP   = "gap"
	FormatMagma = "magma"
)

// Data is the kernel's output for one presentation.
type Data struct {
	// NumGenerators is the generator count of the simplified presentation.
	NumGenerators int

	// NumOriginalGenerators is the generator count before simplification.
	NumOriginalGenerators int

	// Relators are words in the simplified generators.
	Relators []word.Word

	// Meridians and Longitudes hold one word per cusp, in the simplified generators.
	Meridians  []word.Word
	Longitudes []word.Word

	// Moves is the simplifier's transcript.
	Moves tietze.Transcript
}

// Flags are the simplification switches passed through to the kernel unchanged.
type Flags struct {
	SimplifyPresentation        bool
	FillingsMayAffectGenerators bool
	MinimizeNumberOfGenerators  bool
	TryHardToShortenRelators    bool
}

// DefaultFlags enables every simplification.
func DefaultFlags() Flags {
	return Flags{
		SimplifyPresentation:        true,
		FillingsMayAffectGenerators: true,
		MinimizeNumberOfGenerators:  true,
		TryHardToShortenRelators:    true,
	}
}

// Triangulation is the minimal view of a kernel triangulation handle.
type Triangulation interface {
	NumTetrahedra() int
}

// Kernel computes presentations. Implementations own all geometry.
type Kernel interface {
	FundamentalGroup(tri Triangulation, flags Flags) (Data, error)
}

// Holonomy evaluates words in the simplified generators.
type Holonomy interface {
	SL2C(w word.Word) (*matrix.CDense, error)
	O31(w word.Word) (*matrix.Dense, error)
	ComplexLength(w word.Word) (complex128, error)
}

// Options configures a Presentation.
type Options struct {
	Holonomy Holonomy
	Logger   *slog.Logger
}

// Option is a functional option for New and FromKernel.
type Option func(*Options)

// WithHolonomy sets the evaluator used by SL2C, O31 and ComplexLength.
func WithHolonomy(h Holonomy) Option {
	return func(o *Options) {
		o.Holonomy = h
	}
}

// WithLogger sets the logger handed to the replay engine and used for construction records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with no evaluator and logging discarded.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
