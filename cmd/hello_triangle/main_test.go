package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderBoxResolvesAgainstWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vert.spv"), []byte{0x03, 0x02, 0x23, 0x07}, 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	box, err := shaderBox(rel)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(box.Path))

	blob, err := box.Find("vert.spv")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x02, 0x23, 0x07}, blob)
}

func TestShaderBoxDefaultsToBundledShaders(t *testing.T) {
	box, err := shaderBox("")
	require.NoError(t, err)
	assert.Equal(t, "./shaders", box.Path)
}
