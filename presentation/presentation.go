package presentation

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fundgroup/alphabet"
	"github.com/katalvlaran/fundgroup/matrix"
	"github.com/katalvlaran/fundgroup/tietze"
	"github.com/katalvlaran/fundgroup/word"
)

// Presentation is an immutable simplified presentation with its bookkeeping.
type Presentation struct {
	data     Data
	alpha    alphabet.Alphabet // simplified generators
	origin   alphabet.Alphabet // original generators
	holonomy Holonomy
	log      *slog.Logger
}

// FromKernel asks k for the presentation of tri and wraps it.
// A nil or empty triangulation fails with ErrEmptyTriangulation before k is
// called. Only an untyped nil is caught by the nil check; a nil pointer
// stored in tri must answer NumTetrahedra with 0, as *document.Document does.
func FromKernel(k Kernel, tri Triangulation, flags Flags, opts ...Option) (*Presentation, error) {
	if tri == nil || tri.NumTetrahedra() == 0 {
		return nil, ErrEmptyTriangulation
	}
	d, err := k.FundamentalGroup(tri, flags)
	if err != nil {
		return nil, fmt.Errorf("presentation: kernel: %w", err)
	}

	return New(d, opts...)
}

// New validates d and returns its Presentation. The slices in d are copied.
//
// Validation (ErrInconsistentData):
//  1. generator counts are non-negative;
//  2. relators, meridians and longitudes only use generators 1..NumGenerators;
//  3. there are as many meridians as longitudes.
//
// The transcript is not replayed here; see GeneratorsInOriginals.
func New(d Data, opts ...Option) (*Presentation, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}

	if d.NumGenerators < 0 || d.NumOriginalGenerators < 0 {
		return nil, fmt.Errorf("%w: generator counts %d/%d", ErrInconsistentData, d.NumGenerators, d.NumOriginalGenerators)
	}
	if len(d.Meridians) != len(d.Longitudes) {
		return nil, fmt.Errorf("%w: %d meridians, %d longitudes", ErrInconsistentData, len(d.Meridians), len(d.Longitudes))
	}
	for _, group := range []struct {
		name  string
		words []word.Word
	}{
		{"relator", d.Relators},
		{"meridian", d.Meridians},
		{"longitude", d.Longitudes},
	} {
		for i, w := range group.words {
			if m := w.MaxGenerator(); m > d.NumGenerators {
				return nil, fmt.Errorf("%w: %s %d uses generator %d of %d", ErrInconsistentData, group.name, i, m, d.NumGenerators)
			}
		}
	}

	alpha, err := alphabet.For(d.NumGenerators)
	if err != nil {
		return nil, err
	}
	origin, err := alphabet.For(d.NumOriginalGenerators)
	if err != nil {
		return nil, err
	}

	p := &Presentation{
		data: Data{
			NumGenerators:         d.NumGenerators,
			NumOriginalGenerators: d.NumOriginalGenerators,
			Relators:              append([]word.Word(nil), d.Relators...),
			Meridians:             append([]word.Word(nil), d.Meridians...),
			Longitudes:            append([]word.Word(nil), d.Longitudes...),
			Moves:                 append(tietze.Transcript(nil), d.Moves...),
		},
		alpha:    alpha,
		origin:   origin,
		holonomy: cfg.Holonomy,
		log:      cfg.Logger,
	}
	p.log.Debug("presentation: built",
		slog.Int("generators", d.NumGenerators),
		slog.Int("relators", len(d.Relators)),
		slog.Int("original_generators", d.NumOriginalGenerators),
		slog.Int("cusps", len(d.Meridians)),
		slog.Int("moves", len(d.Moves)))

	return p, nil
}

// NumGenerators returns the generator count of the simplified presentation.
func (p *Presentation) NumGenerators() int { return p.data.NumGenerators }

// NumRelators returns the relator count.
func (p *Presentation) NumRelators() int { return len(p.data.Relators) }

// NumOriginalGenerators returns the generator count before simplification.
func (p *Presentation) NumOriginalGenerators() int { return p.data.NumOriginalGenerators }

// NumCusps returns the number of cusps with peripheral curves.
func (p *Presentation) NumCusps() int { return len(p.data.Meridians) }

// Generators lists the simplified generators: "a", "b", … or "x1", "x2", ….
func (p *Presentation) Generators() []string {
	return tokens(p.alpha)
}

// OriginalGenerators lists the original generators.
func (p *Presentation) OriginalGenerators() []string {
	return tokens(p.origin)
}

func tokens(a alphabet.Alphabet) []string {
	out := make([]string, a.Size())
	for g := 1; g <= a.Size(); g++ {
		out[g-1] = a.Token(g)
	}

	return out
}

// Relators renders every relator in compact or verbose form.
func (p *Presentation) Relators(verbose bool) []string {
	out := make([]string, len(p.data.Relators))
	for i, r := range p.data.Relators {
		out[i] = p.mustEncode(r, verbose)
	}

	return out
}

// RelatorWords returns the relators as words.
func (p *Presentation) RelatorWords() []word.Word {
	return append([]word.Word(nil), p.data.Relators...)
}

// RawRelators returns each relator as its signed-integer letters.
func (p *Presentation) RawRelators() [][]int {
	out := make([][]int, len(p.data.Relators))
	for i, r := range p.data.Relators {
		out[i] = r.Letters()
	}

	return out
}

// mustEncode renders a word already validated against p.alpha in New.
func (p *Presentation) mustEncode(w word.Word, verbose bool) string {
	s, err := alphabet.EncodeWith(p.alpha, w, verbose)
	if err != nil {
		panic(err.Error())
	}

	return s
}

// Decode parses text in the presentation's alphabet.
func (p *Presentation) Decode(text string) (word.Word, error) {
	w, err := alphabet.DecodeWith(p.alpha, text)
	if err != nil {
		return word.Word{}, fmt.Errorf("presentation: decode %q: %w", text, err)
	}

	return w, nil
}

// Encode renders w in the presentation's alphabet.
func (p *Presentation) Encode(w word.Word, verbose bool) (string, error) {
	return alphabet.EncodeWith(p.alpha, w, verbose)
}

// OriginalWords replays the transcript and returns every simplified generator
// as a word in the original generators.
// Errors wrap tietze.ErrMalformedTranscript, or ErrInconsistentData when the
// replay leaves a different number of generators than NumGenerators.
func (p *Presentation) OriginalWords() ([]word.Word, error) {
	ws, err := tietze.Replay(p.data.NumOriginalGenerators, p.data.Moves, tietze.WithLogger(p.log))
	if err != nil {
		return nil, fmt.Errorf("presentation: replay: %w", err)
	}
	if len(ws) != p.data.NumGenerators {
		return nil, fmt.Errorf("%w: replay left %d generators, presentation has %d",
			ErrInconsistentData, len(ws), p.data.NumGenerators)
	}

	return ws, nil
}

// GeneratorsInOriginals renders OriginalWords in the original generators' alphabet.
func (p *Presentation) GeneratorsInOriginals(verbose bool) ([]string, error) {
	ws, err := p.OriginalWords()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ws))
	for i, w := range ws {
		if out[i], err = alphabet.EncodeWith(p.origin, w, verbose); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// RawMoves returns a copy of the untouched transcript.
func (p *Presentation) RawMoves() []int {
	return p.data.Moves.Raw()
}

// Moves decodes the transcript into typed moves.
func (p *Presentation) Moves() ([]tietze.Move, error) {
	return tietze.Moves(p.data.NumOriginalGenerators, p.data.Moves)
}

// cusp resolves a possibly negative cusp index.
func (p *Presentation) cusp(i int) (int, error) {
	n := len(p.data.Meridians)
	if i < -n || i >= n {
		return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrCuspOutOfRange, i, -n, n-1)
	}
	if i < 0 {
		i += n
	}

	return i, nil
}

// Meridian returns the meridian word of cusp i; -1 is the last cusp.
func (p *Presentation) Meridian(i int) (word.Word, error) {
	c, err := p.cusp(i)
	if err != nil {
		return word.Word{}, err
	}

	return p.data.Meridians[c], nil
}

// Longitude returns the longitude word of cusp i; -1 is the last cusp.
func (p *Presentation) Longitude(i int) (word.Word, error) {
	c, err := p.cusp(i)
	if err != nil {
		return word.Word{}, err
	}

	return p.data.Longitudes[c], nil
}

// MeridianString renders Meridian(i).
func (p *Presentation) MeridianString(i int, verbose bool) (string, error) {
	w, err := p.Meridian(i)
	if err != nil {
		return "", err
	}

	return p.mustEncode(w, verbose), nil
}

// LongitudeString renders Longitude(i).
func (p *Presentation) LongitudeString(i int, verbose bool) (string, error) {
	w, err := p.Longitude(i)
	if err != nil {
		return "", err
	}

	return p.mustEncode(w, verbose), nil
}

// PeripheralCurves renders the (meridian, longitude) pair of every cusp in order.
func (p *Presentation) PeripheralCurves(verbose bool) [][2]string {
	out := make([][2]string, len(p.data.Meridians))
	for i := range p.data.Meridians {
		out[i] = [2]string{
			p.mustEncode(p.data.Meridians[i], verbose),
			p.mustEncode(p.data.Longitudes[i], verbose),
		}
	}

	return out
}

func (p *Presentation) evaluator(text string) (word.Word, error) {
	if p.holonomy == nil {
		return word.Word{}, ErrNoHolonomy
	}

	return p.Decode(text)
}

// SL2C decodes text and returns its SL(2,C) image from the configured evaluator.
func (p *Presentation) SL2C(text string) (*matrix.CDense, error) {
	w, err := p.evaluator(text)
	if err != nil {
		return nil, err
	}

	return p.holonomy.SL2C(w)
}

// O31 decodes text and returns its O(3,1) image from the configured evaluator.
func (p *Presentation) O31(text string) (*matrix.Dense, error) {
	w, err := p.evaluator(text)
	if err != nil {
		return nil, err
	}

	return p.holonomy.O31(w)
}

// ComplexLength decodes text and returns its complex length from the configured evaluator.
func (p *Presentation) ComplexLength(text string) (complex128, error) {
	w, err := p.evaluator(text)
	if err != nil {
		return 0, err
	}

	return p.holonomy.ComplexLength(w)
}
