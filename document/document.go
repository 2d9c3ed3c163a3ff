// Package document reads presentation dumps: the kernel's output for one
// triangulation, stored as YAML (or JSON, which YAML accepts).
//
// Example:
//
//	name: m004
//	num_tetrahedra: 2
//	num_generators: 2
//	num_original_generators: 3
//	relators:
//	  - [1, 1, -2, -1, -2, 1, 2, 2]
//	meridians:  [[1]]
//	longitudes: [[2, -1, -1, 2]]
//	moves: [1, 2, 3, -1, 2, 2, 0]
//	holonomy:
//	  - sl2c: ["1", "1", "0", "1"]
//	    o31: [1,0,0,0, 0,1,0,0, 0,0,1,0, 0,0,0,1]
//
// Words are lists of signed generator indices; moves is the kernel's wire
// form, terminated by 0. A Document implements presentation.Triangulation
// and presentation.Kernel, so it stands in for the kernel when replaying
// saved output.
package document

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fundgroup/holonomy"
	"github.com/katalvlaran/fundgroup/matrix"
	"github.com/katalvlaran/fundgroup/presentation"
	"github.com/katalvlaran/fundgroup/tietze"
	"github.com/katalvlaran/fundgroup/word"
)

// ErrInvalidDocument indicates a dump that cannot be decoded or fails validation.
var ErrInvalidDocument = errors.New("document: invalid presentation document")

// validate is shared by all documents; validator.Validate caches struct metadata.
var validate = validator.New()

// Document is one saved presentation.
type Document struct {
	Name                  string           `yaml:"name" json:"name"`
	Tetrahedra            int              `yaml:"num_tetrahedra" json:"num_tetrahedra" validate:"gte=0"`
	NumGenerators         int              `yaml:"num_generators" json:"num_generators" validate:"gte=0"`
	NumOriginalGenerators int              `yaml:"num_original_generators" json:"num_original_generators" validate:"gte=0"`
	Relators              [][]int          `yaml:"relators" json:"relators" validate:"dive,dive,ne=0"`
	Meridians             [][]int          `yaml:"meridians" json:"meridians" validate:"dive,dive,ne=0"`
	Longitudes            [][]int          `yaml:"longitudes" json:"longitudes" validate:"dive,dive,ne=0"`
	Moves                 []int            `yaml:"moves" json:"moves"`
	Holonomy              []GeneratorImage `yaml:"holonomy,omitempty" json:"holonomy,omitempty" validate:"dive"`
}

// GeneratorImage holds one generator's SL(2,C) image as four complex
// literals ("1+2i") and its O(3,1) image as sixteen reals, both row-major.
type GeneratorImage struct {
	SL2C []string  `yaml:"sl2c" json:"sl2c" validate:"len=4,dive,required"`
	O31  []float64 `yaml:"o31" json:"o31" validate:"len=16"`
}

// Options configures loading.
type Options struct {
	Logger *slog.Logger
}

// Option is a functional option for Load and Open.
type Option func(*Options)

// WithLogger sets the logger for load records and for the presentations built by Open.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with logging discarded.
func DefaultOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultOptions().Logger
	}

	return cfg
}

// Parse decodes and validates a YAML or JSON document.
func Parse(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// Load reads and parses the document at path.
func Load(path string, opts ...Option) (*Document, error) {
	cfg := buildOptions(opts)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("document: read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Logger.Debug("document: loaded",
		slog.String("path", path),
		slog.String("name", d.Name),
		slog.Int("generators", d.NumGenerators),
		slog.Int("relators", len(d.Relators)),
		slog.Int("moves", len(d.Moves)))

	return d, nil
}

// Open loads the document at path and builds its presentation, wiring the
// holonomy table when the document carries generator images.
func Open(path string, opts ...Option) (*presentation.Presentation, error) {
	cfg := buildOptions(opts)
	d, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	popts := []presentation.Option{presentation.WithLogger(cfg.Logger)}
	tab, err := d.HolonomyTable()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if tab != nil {
		popts = append(popts, presentation.WithHolonomy(tab))
	}
	p, err := presentation.FromKernel(d, d, presentation.DefaultFlags(), popts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Validate checks struct constraints: non-negative counts, no zero letters,
// well-formed generator images.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(d.Holonomy) > 0 && len(d.Holonomy) != d.NumGenerators {
		return fmt.Errorf("%w: %d generator images for %d generators", ErrInvalidDocument, len(d.Holonomy), d.NumGenerators)
	}

	return nil
}

// NumTetrahedra implements presentation.Triangulation. A nil Document has
// no tetrahedra.
func (d *Document) NumTetrahedra() int {
	if d == nil {
		return 0
	}

	return d.Tetrahedra
}

// FundamentalGroup implements presentation.Kernel by returning the saved data.
// A dump records one simplification run, so flags are not re-applied.
func (d *Document) FundamentalGroup(_ presentation.Triangulation, _ presentation.Flags) (presentation.Data, error) {
	return d.Data()
}

// Data converts the document into kernel output.
func (d *Document) Data() (presentation.Data, error) {
	relators, err := words("relator", d.Relators)
	if err != nil {
		return presentation.Data{}, err
	}
	meridians, err := words("meridian", d.Meridians)
	if err != nil {
		return presentation.Data{}, err
	}
	longitudes, err := words("longitude", d.Longitudes)
	if err != nil {
		return presentation.Data{}, err
	}
	moves, err := tietze.FromWire(d.Moves)
	if err != nil {
		return presentation.Data{}, fmt.Errorf("%w: moves: %w", ErrInvalidDocument, err)
	}

	return presentation.Data{
		NumGenerators:         d.NumGenerators,
		NumOriginalGenerators: d.NumOriginalGenerators,
		Relators:              relators,
		Meridians:             meridians,
		Longitudes:            longitudes,
		Moves:                 moves,
	}, nil
}

func words(kind string, raw [][]int) ([]word.Word, error) {
	out := make([]word.Word, len(raw))
	for i, r := range raw {
		w, err := word.Reduce(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %d: %w", ErrInvalidDocument, kind, i, err)
		}
		out[i] = w
	}

	return out, nil
}

// HolonomyTable builds the generator-image evaluator, or returns nil when the
// document has no images.
func (d *Document) HolonomyTable() (*holonomy.Table, error) {
	if len(d.Holonomy) == 0 {
		return nil, nil
	}
	images := make([]holonomy.Image, len(d.Holonomy))
	for i, gi := range d.Holonomy {
		vals := make([]complex128, len(gi.SL2C))
		for j, s := range gi.SL2C {
			c, err := strconv.ParseComplex(strings.ReplaceAll(s, " ", ""), 128)
			if err != nil {
				return nil, fmt.Errorf("%w: generator %d sl2c[%d]: %v", ErrInvalidDocument, i+1, j, err)
			}
			vals[j] = c
		}
		sl, err := matrix.NewCDenseFrom(2, 2, vals)
		if err != nil {
			return nil, fmt.Errorf("%w: generator %d: %w", ErrInvalidDocument, i+1, err)
		}
		o, err := matrix.NewDenseFrom(4, 4, gi.O31)
		if err != nil {
			return nil, fmt.Errorf("%w: generator %d: %w", ErrInvalidDocument, i+1, err)
		}
		images[i] = holonomy.Image{SL2C: sl, O31: o}
	}

	return holonomy.NewTable(images)
}
