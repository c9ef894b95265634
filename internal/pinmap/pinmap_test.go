package pinmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "pins.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ParsesMapping(t *testing.T) {
	path := writeTemp(t, "1: CLK\n12: /CS0\n19: D_OUT\n")
	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "CLK", 12: "/CS0", 19: "D_OUT"}, m)
}

func TestLoad_DropsEmptyNames(t *testing.T) {
	path := writeTemp(t, "1: CLK\n2: \"\"\n")
	m, err := Load(path)
	require.NoError(t, err)
	_, ok := m[2]
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeTemp(t, "not: [valid\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_RejectsOutOfRangePin(t *testing.T) {
	assert.NoError(t, Validate(map[int]string{1: "CLK", 20: "OE"}, 20))
	assert.Error(t, Validate(map[int]string{21: "X"}, 20))
	assert.Error(t, Validate(map[int]string{0: "X"}, 20))
}
