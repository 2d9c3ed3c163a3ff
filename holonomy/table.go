// Package holonomy evaluates words under a representation given by generator images.
//
// A Table stores, for every generator of a presentation, its image in
// SL(2,C) and in O(3,1). The image of a word is the ordered product of the
// images of its letters; inverse letters use the closed-form inverses
//
//	SL(2,C):  [[a b] [c d]]⁻¹ = [[d −b] [−c a]]   (det = 1)
//	O(3,1):   M⁻¹ = J Mᵀ J,  J = diag(−1, 1, 1, 1)
//
// The complex length of an element with SL(2,C) image of trace t is
// 2·acosh(t/2), normalised to Re ≥ 0 and Im ∈ (−π, π].
package holonomy

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/fundgroup/matrix"
	"github.com/katalvlaran/fundgroup/word"
)

// Sentinel errors returned by Table.
var (
	// ErrBadImage indicates a missing image, one with the wrong shape, or one
	// outside its group (det ≠ 1 in SL(2,C), MᵀJM ≠ J in O(3,1)).
	ErrBadImage = errors.New("holonomy: generator image must be 2x2 SL(2,C) and 4x4 O(3,1)")

	// ErrUnknownGenerator indicates a word letter without an image.
	ErrUnknownGenerator = errors.New("holonomy: no image for generator")
)

// Image is the pair of matrices assigned to one generator.
type Image struct {
	SL2C *matrix.CDense
	O31  *matrix.Dense
}

// Table evaluates words from per-generator images. It is immutable after NewTable.
type Table struct {
	images []Image // images[g-1] for generator g
}

// Tolerance bounds the group-membership residuals accepted by NewTable. It
// is scaled by the square of the largest entry, so large boosts and
// loxodromics with rounded entries still pass.
const Tolerance = 1e-9

// NewTable validates images and returns a Table over len(images) generators.
//
// Stage 1 (Validate): every image is present, SL2C is 2×2 with det = 1, and
// O31 is 4×4 with MᵀJM = J, each within Tolerance. Anything else yields
// ErrBadImage naming the generator; inverse letters are evaluated with the
// closed forms above, which are only correct inside the group.
// Stage 2 (Execute): images are deep-copied so callers may reuse theirs.
//
// Complexity: O(len(images)).
func NewTable(images []Image) (*Table, error) {
	cp := make([]Image, len(images))
	for i, im := range images {
		if im.SL2C == nil || im.O31 == nil ||
			im.SL2C.Rows() != 2 || im.SL2C.Cols() != 2 ||
			im.O31.Rows() != 4 || im.O31.Cols() != 4 {
			return nil, fmt.Errorf("%w: generator %d has the wrong shape", ErrBadImage, i+1)
		}
		if r := detResidual(im.SL2C); r > tolerance(cmaxAbs(im.SL2C)) {
			return nil, fmt.Errorf("%w: generator %d: |det - 1| = %g", ErrBadImage, i+1, r)
		}
		if r := lorentzResidual(im.O31); r > tolerance(maxAbs(im.O31)) {
			return nil, fmt.Errorf("%w: generator %d: |MᵀJM - J| = %g", ErrBadImage, i+1, r)
		}
		cp[i] = Image{SL2C: im.SL2C.Clone(), O31: im.O31.Clone()}
	}

	return &Table{images: cp}, nil
}

func tolerance(scale float64) float64 {
	return Tolerance * math.Max(1, scale*scale)
}

// detResidual returns |ad − bc − 1| for a 2×2 matrix.
func detResidual(m *matrix.CDense) float64 {
	a, _ := m.At(0, 0)
	b, _ := m.At(0, 1)
	c, _ := m.At(1, 0)
	d, _ := m.At(1, 1)

	return cmplx.Abs(a*d - b*c - 1)
}

// lorentzResidual returns the largest entry of |MᵀJM − J|.
func lorentzResidual(m *matrix.Dense) float64 {
	left, _ := matrix.Mul(m.Transpose(), minkowski)
	g, _ := matrix.Mul(left, m)
	var worst float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			got, _ := g.At(i, j)
			want, _ := minkowski.At(i, j)
			worst = math.Max(worst, math.Abs(got-want))
		}
	}

	return worst
}

func maxAbs(m *matrix.Dense) float64 {
	var out float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			out = math.Max(out, math.Abs(v))
		}
	}

	return out
}

func cmaxAbs(m *matrix.CDense) float64 {
	var out float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			out = math.Max(out, cmplx.Abs(v))
		}
	}

	return out
}

// NumGenerators returns the number of generators with an image.
func (t *Table) NumGenerators() int {
	return len(t.images)
}

func (t *Table) check(w word.Word) error {
	if m := w.MaxGenerator(); m > len(t.images) {
		return fmt.Errorf("%w: %d", ErrUnknownGenerator, m)
	}

	return nil
}

// SL2C returns the SL(2,C) image of w: the ordered product of its letters'
// images, inverse letters via the adjugate.
// Complexity: O(w.Len()).
func (t *Table) SL2C(w word.Word) (*matrix.CDense, error) {
	if err := t.check(w); err != nil {
		return nil, err
	}
	acc, _ := matrix.CIdentity(2)
	for i := 0; i < w.Len(); i++ {
		g := w.At(i)
		img := t.images[abs(g)-1].SL2C
		if g < 0 {
			img = invertSL2(img)
		}
		var err error
		if acc, err = matrix.CMul(acc, img); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// O31 returns the O(3,1) image of w; inverse letters use J Mᵀ J.
// Complexity: O(w.Len()).
func (t *Table) O31(w word.Word) (*matrix.Dense, error) {
	if err := t.check(w); err != nil {
		return nil, err
	}
	acc, _ := matrix.Identity(4)
	for i := 0; i < w.Len(); i++ {
		g := w.At(i)
		img := t.images[abs(g)-1].O31
		if g < 0 {
			img = invertO31(img)
		}
		var err error
		if acc, err = matrix.Mul(acc, img); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// ComplexLength returns the complex length of w, 2·acosh(tr/2) normalised
// by normalizeLength.
// Complexity: O(w.Len()).
func (t *Table) ComplexLength(w word.Word) (complex128, error) {
	m, err := t.SL2C(w)
	if err != nil {
		return 0, err
	}
	tr, err := m.Trace()
	if err != nil {
		return 0, err
	}

	return normalizeLength(2 * cmplx.Acosh(tr/2)), nil
}

// normalizeLength brings Im into (−π, π] and, for elliptic elements, picks Im ≥ 0.
func normalizeLength(l complex128) complex128 {
	re, im := real(l), imag(l)
	im = math.Mod(im, 2*math.Pi)
	if im > math.Pi {
		im -= 2 * math.Pi
	} else if im <= -math.Pi {
		im += 2 * math.Pi
	}
	if re == 0 && im < 0 {
		im = -im
	}

	return complex(re, im)
}

// invertSL2 returns the adjugate, which is the inverse when det = 1.
func invertSL2(m *matrix.CDense) *matrix.CDense {
	a, _ := m.At(0, 0)
	b, _ := m.At(0, 1)
	c, _ := m.At(1, 0)
	d, _ := m.At(1, 1)
	inv, _ := matrix.NewCDenseFrom(2, 2, []complex128{d, -b, -c, a})

	return inv
}

// minkowski is J = diag(−1, 1, 1, 1).
var minkowski = func() *matrix.Dense {
	j, _ := matrix.NewDenseFrom(4, 4, []float64{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})

	return j
}()

// invertO31 returns J Mᵀ J, which is the inverse when MᵀJM = J.
func invertO31(m *matrix.Dense) *matrix.Dense {
	left, _ := matrix.Mul(minkowski, m.Transpose())
	inv, _ := matrix.Mul(left, minkowski)

	return inv
}

func abs(g int) int {
	if g < 0 {
		return -g
	}

	return g
}
