// Package word_test contains unit tests for free reduction, inversion and the wire format.
package word_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fundgroup/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomSeq builds an unreduced sequence of n letters over generators 1..gens.
func randomSeq(rng *rand.Rand, n, gens int) []int {
	seq := make([]int, n)
	for i := range seq {
		g := rng.Intn(gens) + 1
		if rng.Intn(2) == 0 {
			g = -g
		}
		seq[i] = g
	}

	return seq
}

// isReduced reports whether no adjacent pair cancels.
func isReduced(letters []int) bool {
	for i := 1; i < len(letters); i++ {
		if letters[i] == -letters[i-1] {
			return false
		}
	}

	return true
}

func TestReduce_Cancellation(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", nil, []int{}},
		{"already reduced", []int{1, 1, 2, 1}, []int{1, 1, 2, 1}},
		{"single pair", []int{1, -1}, []int{}},
		{"nested", []int{1, 2, -2, -1}, []int{}},
		{"exposed adjacency", []int{3, 1, 2, -2, -1, 4}, []int{3, 4}},
		{"partial", []int{1, 2, -2, 2, -3}, []int{1, 2, -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := word.Reduce(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, w.Letters())
		})
	}
}

func TestReduce_ZeroLetter(t *testing.T) {
	_, err := word.Reduce([]int{1, 0, 2})
	require.ErrorIs(t, err, word.ErrZeroLetter)
	assert.Contains(t, err.Error(), "position 1")
}

func TestGenerator_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { word.Generator(0) })
	assert.Equal(t, []int{-3}, word.Generator(-3).Letters())
}

func TestReduce_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		seq := randomSeq(rng, rng.Intn(30), 3)
		once, err := word.Reduce(seq)
		require.NoError(t, err)
		twice, err := word.Reduce(once.Letters())
		require.NoError(t, err)
		require.True(t, once.Equal(twice), "seq=%v", seq)
		require.True(t, isReduced(once.Letters()), "seq=%v", seq)
	}
}

func TestInverse_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		w, err := word.Reduce(randomSeq(rng, rng.Intn(25), 4))
		require.NoError(t, err)
		require.True(t, w.Inverse().Inverse().Equal(w))
		require.True(t, w.Concat(w.Inverse()).IsIdentity())
		require.True(t, w.Inverse().Concat(w).IsIdentity())
	}
}

func TestInverse_Literal(t *testing.T) {
	w := word.MustReduce(1, 2, -3)
	assert.Equal(t, []int{3, -2, -1}, w.Inverse().Letters())
	assert.True(t, word.Identity().Inverse().IsIdentity())
}

func TestConcat_MatchesReduceOfJoin(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a, _ := word.Reduce(randomSeq(rng, rng.Intn(15), 2))
		b, _ := word.Reduce(randomSeq(rng, rng.Intn(15), 2))
		joined := append(a.Letters(), b.Letters()...)
		want, err := word.Reduce(joined)
		require.NoError(t, err)
		require.True(t, a.Concat(b).Equal(want), "a=%v b=%v", a, b)
	}
}

func TestConcat_DoesNotAliasOperands(t *testing.T) {
	a := word.MustReduce(1, 2)
	b := word.MustReduce(3)
	ab := a.Concat(b)
	_ = ab.Concat(word.MustReduce(-3, -2))
	assert.Equal(t, []int{1, 2}, a.Letters())
	assert.Equal(t, []int{1, 2, 3}, ab.Letters())
}

func TestProduct(t *testing.T) {
	got := word.Product(word.MustReduce(1, 2), word.MustReduce(-2, 3), word.MustReduce(-3, -1))
	assert.True(t, got.IsIdentity())
	assert.True(t, word.Product().IsIdentity())
}

func TestLetters_IsACopy(t *testing.T) {
	w := word.MustReduce(1, 2)
	l := w.Letters()
	l[0] = 9
	assert.Equal(t, 1, w.At(0))
}

func TestEqual_AndString(t *testing.T) {
	assert.True(t, word.MustReduce(1, -2).Equal(word.MustReduce(1, 3, -3, -2)))
	assert.False(t, word.MustReduce(1).Equal(word.MustReduce(-1)))
	assert.True(t, word.Identity().Equal(word.MustReduce(2, -2)))
	assert.Equal(t, "[1 -2]", word.MustReduce(1, -2).String())
	assert.Equal(t, "[]", word.Identity().String())
}

func TestMaxGenerator(t *testing.T) {
	assert.Equal(t, 0, word.Identity().MaxGenerator())
	assert.Equal(t, 5, word.MustReduce(1, -5, 2).MaxGenerator())
}

func TestSplitTerminated(t *testing.T) {
	runs, err := word.SplitTerminated([]int{1, 2, -1, -2, 0, 0, 2, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, -1, -2}, {}, {2, 2}}, runs)

	runs, err = word.SplitTerminated(nil)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = word.SplitTerminated([]int{1, 0, 2})
	require.ErrorIs(t, err, word.ErrUnterminated)
}

func TestParseTerminated_Reduces(t *testing.T) {
	ws, err := word.ParseTerminated([]int{1, -1, 2, 0, 3, 0})
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, []int{2}, ws[0].Letters())
	assert.Equal(t, []int{1, 2, 0}, word.Terminated(word.MustReduce(1, 2)))
	assert.Equal(t, []int{0}, word.Terminated(word.Identity()))
}
