package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sampleFile    = filepath.Join("..", "..", "document", "testdata", "sample.yaml")
	invertFile    = filepath.Join("..", "..", "document", "testdata", "invert.json")
	malformedFile = filepath.Join("..", "..", "document", "testdata", "malformed.yaml")
)

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return stdout.String(), stderr.String(), code
}

func TestShow(t *testing.T) {
	out, _, code := execute(t, "show", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Generators:\n   a,b\nRelators:\n   aaBABabb\n", out)
}

func TestGenerators(t *testing.T) {
	out, _, code := execute(t, "generators", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "a\nb\n", out)

	out, _, code = execute(t, "generators", "--originals", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "a\nb\nc\n", out)
}

func TestRelators(t *testing.T) {
	out, _, code := execute(t, "relators", "--raw", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "[1 1 -2 -1 -2 1 2 2]\n", out)

	out, _, code = execute(t, "relators", "--verbose", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "a*a*b^-1*a^-1*b^-1*a*b*b\n", out)
}

func TestOriginals(t *testing.T) {
	out, _, code := execute(t, "originals", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "a = ab\nb = cBA\n", out)

	out, _, code = execute(t, "originals", "--raw", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "[1 2 3 -1 2 2]\n", out)

	out, _, code = execute(t, "originals", invertFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "a = A\nb = b\n", out)
}

func TestMoves(t *testing.T) {
	out, _, code := execute(t, "moves", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "slide 1 2\nslide 3 -1\ndelete 2 (moves 3 to 2)\n", out)
}

func TestPeripheral(t *testing.T) {
	out, _, code := execute(t, "peripheral", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "cusp 0: meridian a longitude bAAb\n", out)

	out, _, code = execute(t, "peripheral", "--cusp", "-1", "--verbose", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "cusp -1: meridian a longitude b*a^-1*a^-1*b\n", out)

	_, errOut, code := execute(t, "peripheral", "--cusp", "3", sampleFile)
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "not in")
}

func TestExport(t *testing.T) {
	out, _, code := execute(t, "export", "--format", "magma", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "Group<a,b|a*a*b^-1*a^-1*b^-1*a*b*b>\n", out)

	out, _, code = execute(t, "export", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.True(t, strings.HasPrefix(out, "CallFuncList(function() local F, a, b;"))

	_, errOut, code := execute(t, "export", "--format", "maple", sampleFile)
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "maple")
}

func TestHolonomy(t *testing.T) {
	out, _, code := execute(t, "holonomy", sampleFile, "ab")
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, out, "SL2C:")
	assert.Contains(t, out, "O31:")
	assert.Contains(t, out, "complex length:")

	_, _, code = execute(t, "holonomy", invertFile, "a")
	assert.Equal(t, exitError, code)
}

func TestDecode(t *testing.T) {
	out, _, code := execute(t, "decode", "aAbC")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "[2 -3] bC\n", out)

	out, _, code = execute(t, "decode", "--generators", "2", "--verbose", "a*b^-1")
	require.Equal(t, exitSuccess, code)
	assert.Equal(t, "[1 -2] a*b^-1\n", out)

	_, errOut, code := execute(t, "decode", "--generators", "2", "abc")
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "fundgroup:")
}

func TestBatch(t *testing.T) {
	out, _, code := execute(t, "batch", "--jobs", "2", sampleFile, invertFile)
	require.Equal(t, exitSuccess, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, sampleFile+": a=ab b=cBA", lines[0])
	assert.Equal(t, invertFile+": a=A b=b", lines[1])
}

func TestBatch_JSONWithFailure(t *testing.T) {
	out, errOut, code := execute(t, "batch", "--json", sampleFile, malformedFile)
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "1 of 2 files failed")

	var results []batchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, []string{"ab", "cBA"}, results[0].InOriginals)
	assert.Empty(t, results[0].Error)
	assert.Contains(t, results[1].Error, "malformed")
}

func TestBatch_BadJobs(t *testing.T) {
	_, errOut, code := execute(t, "batch", "--jobs", "0", sampleFile)
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "--jobs")
}

func TestLogLevel(t *testing.T) {
	_, errOut, code := execute(t, "--log-level", "debug", "generators", sampleFile)
	require.Equal(t, exitSuccess, code)
	assert.Contains(t, errOut, "document: loaded")

	_, errOut, code = execute(t, "--log-level", "loud", "generators", sampleFile)
	assert.Equal(t, exitError, code)
	assert.Contains(t, errOut, "--log-level")
}
