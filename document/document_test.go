package document_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fundgroup/document"
	"github.com/katalvlaran/fundgroup/holonomy"
	"github.com/katalvlaran/fundgroup/matrix"
	"github.com/katalvlaran/fundgroup/presentation"
	"github.com/katalvlaran/fundgroup/tietze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_YAML(t *testing.T) {
	d, err := document.Load(filepath.Join("testdata", "sample.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sample", d.Name)
	assert.Equal(t, 2, d.NumTetrahedra())
	assert.Equal(t, [][]int{{1, 1, -2, -1, -2, 1, 2, 2}}, d.Relators)
	assert.Len(t, d.Holonomy, 2)

	data, err := d.Data()
	require.NoError(t, err)
	assert.Equal(t, tietze.Transcript{1, 2, 3, -1, 2, 2}, data.Moves)
	assert.Len(t, data.Meridians, 1)
}

func TestLoad_JSON(t *testing.T) {
	d, err := document.Load(filepath.Join("testdata", "invert.json"))
	require.NoError(t, err)
	assert.Equal(t, "invert", d.Name)
	assert.Empty(t, d.Holonomy)

	tab, err := d.HolonomyTable()
	require.NoError(t, err)
	assert.Nil(t, tab)
}

func TestLoad_Missing(t *testing.T) {
	_, err := document.Load(filepath.Join("testdata", "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"syntax":          "num_generators: [",
		"zero letter":     "num_generators: 2\nrelators: [[1, 0, 2]]\n",
		"negative count":  "num_generators: -1\n",
		"short sl2c":      "num_generators: 1\nholonomy:\n  - sl2c: [\"1\"]\n    o31: [1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]\n",
		"image count":     "num_generators: 2\nholonomy:\n  - sl2c: [\"1\",\"0\",\"0\",\"1\"]\n    o31: [1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]\n",
		"short o31":       "num_generators: 1\nholonomy:\n  - sl2c: [\"1\",\"0\",\"0\",\"1\"]\n    o31: [1]\n",
		"empty sl2c item": "num_generators: 1\nholonomy:\n  - sl2c: [\"1\",\"\",\"0\",\"1\"]\n    o31: [1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := document.Parse([]byte(body))
			require.ErrorIs(t, err, document.ErrInvalidDocument)
		})
	}
}

func TestData_UnterminatedMoves(t *testing.T) {
	d, err := document.Parse([]byte("num_generators: 2\nnum_original_generators: 2\nmoves: [1, -1]\n"))
	require.NoError(t, err)
	_, err = d.Data()
	require.ErrorIs(t, err, document.ErrInvalidDocument)
	require.ErrorIs(t, err, tietze.ErrMalformedTranscript)
}

func TestHolonomyTable_BadComplex(t *testing.T) {
	d, err := document.Parse([]byte("num_generators: 1\nholonomy:\n  - sl2c: [\"1\",\"oops\",\"0\",\"1\"]\n    o31: [1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]\n"))
	require.NoError(t, err)
	_, err = d.HolonomyTable()
	require.ErrorIs(t, err, document.ErrInvalidDocument)
}

func TestOpen(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := document.Open(filepath.Join("testdata", "sample.yaml"), document.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "document: loaded")

	gens, err := p.GeneratorsInOriginals(false)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "cBA"}, gens)

	// The holonomy images are wired in: a·b = [[1 1][0 1]]·[[1 0][2i 1]].
	got, err := p.SL2C("ab")
	require.NoError(t, err)
	want, _ := matrix.NewCDenseFrom(2, 2, []complex128{1 + 2i, 1, 2i, 1})
	assert.True(t, matrix.CEqualApprox(got, want, 1e-12))
}

func TestOpen_EmptyTriangulation(t *testing.T) {
	path := writeTemp(t, "empty.yaml", "name: empty\nnum_tetrahedra: 0\nnum_generators: 0\n")
	_, err := document.Open(path)
	require.ErrorIs(t, err, presentation.ErrEmptyTriangulation)
}

func TestFromKernel_NilDocument(t *testing.T) {
	var d *document.Document
	_, err := presentation.FromKernel(d, d, presentation.DefaultFlags())
	require.ErrorIs(t, err, presentation.ErrEmptyTriangulation)
}

func TestOpen_RejectsNonUnimodularImage(t *testing.T) {
	path := writeTemp(t, "det2.yaml", "name: det2\nnum_tetrahedra: 1\nnum_generators: 1\n"+
		"holonomy:\n  - sl2c: [\"2\", \"0\", \"0\", \"1\"]\n    o31: [1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1]\n")
	_, err := document.Open(path)
	require.ErrorIs(t, err, holonomy.ErrBadImage)
}

func TestOpen_MalformedTranscriptSurfacesOnReplay(t *testing.T) {
	p, err := document.Open(filepath.Join("testdata", "malformed.yaml"))
	require.NoError(t, err)
	_, err = p.GeneratorsInOriginals(false)
	require.ErrorIs(t, err, tietze.ErrMalformedTranscript)
}
