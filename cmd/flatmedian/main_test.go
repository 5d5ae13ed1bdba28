package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainFlag_SetParsesPathAndAlpha(t *testing.T) {
	t.Parallel()
	var c chainFlag
	require.NoError(t, c.Set("a.txt:0.5"))
	require.NoError(t, c.Set("b.txt:0.5"))

	assert.Equal(t, []string{"a.txt", "b.txt"}, c.paths)
	assert.Equal(t, []float64{0.5, 0.5}, c.alphas)
}

func TestChainFlag_SetRejectsMissingColon(t *testing.T) {
	t.Parallel()
	var c chainFlag
	assert.Error(t, c.Set("a.txt"))
}

func TestChainFlag_SetRejectsBadAlpha(t *testing.T) {
	t.Parallel()
	var c chainFlag
	assert.Error(t, c.Set("a.txt:notanumber"))
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "mesh.off")
	chainPath := filepath.Join(dir, "chain.txt")
	outPath := filepath.Join(dir, "median.txt")

	require.NoError(t, os.WriteFile(meshPath, []byte("OFF\n3 1 0\n0 0 0\n1 0 0\n0 0 1\n3 0 1 2\n"), 0o644))
	require.NoError(t, os.WriteFile(chainPath, []byte("0 1\n"), 0o644))

	var chains chainFlag
	require.NoError(t, chains.Set(chainPath+":1"))

	err := run(meshPath, outPath, 1e-3, 1e-5, chains)
	require.NoError(t, err)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRun_NoChainsIsAnError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	meshPath := filepath.Join(dir, "mesh.off")
	require.NoError(t, os.WriteFile(meshPath, []byte("OFF\n3 1 0\n0 0 0\n1 0 0\n0 0 1\n3 0 1 2\n"), 0o644))

	err := run(meshPath, filepath.Join(dir, "out.txt"), 0, 0, chainFlag{})
	assert.Error(t, err)
}
