package bristol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "adder.txt")

	err := os.WriteFile(path, []byte(adderText), 0644)
	require.NoError(t, err)

	c, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Gates, 4)
	assert.Equal(t, uint32(8), c.Header.NumWires)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestParseFileReportsPath(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "broken.txt")

	err := os.WriteFile(path, []byte("4 8\n3 1 1\n1 1\n"), 0644)
	require.NoError(t, err)

	_, err = ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.txt")

	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
}
