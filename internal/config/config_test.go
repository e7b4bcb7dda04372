package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 1000, c.Presses)
	assert.Equal(t, "button", c.Button)
	assert.Equal(t, "broadcaster", c.Broadcaster)
	assert.Equal(t, "rx", c.Sink)
	assert.Equal(t, uint64(1000000), c.MaxPresses)
	assert.Empty(t, c.Watch)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulsesim.yaml")
	data := `input: day20.txt
presses: 10
watch: [ln, dr, zx, vn]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "day20.txt", c.Input)
	assert.Equal(t, 10, c.Presses)
	assert.Equal(t, []string{"ln", "dr", "zx", "vn"}, c.Watch)
	// defaults
	assert.Equal(t, "broadcaster", c.Broadcaster)
	assert.Equal(t, "rx", c.Sink)
}

func TestLoadFromPath_zeroPresses(t *testing.T) {
	dir := t.TempDir()
	zero := filepath.Join(dir, "zero.yaml")
	require.NoError(t, os.WriteFile(zero, []byte("presses: 0\nbutton: \"\"\n"), 0644))
	c, err := LoadFromPath(zero)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Presses)
	assert.Equal(t, "button", c.Button)

	// absent key
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("sink: out\n"), 0644))
	c, err = LoadFromPath(other)
	require.NoError(t, err)
	assert.Equal(t, DefaultPresses, c.Presses)
}

func TestLoadFromPath_errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromPath(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("presses: [1"), 0644))
	_, err = LoadFromPath(bad)
	assert.ErrorContains(t, err, "parse config")

	dup := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(dup, []byte("watch: [a, a]"), 0644))
	_, err = LoadFromPath(dup)
	assert.ErrorContains(t, err, `"a" listed more than once`)

	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("presses: -3"), 0644))
	_, err = LoadFromPath(neg)
	assert.ErrorContains(t, err, "invalid press count -3")
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	c := Default()
	c.Watch = []string{"a", "b"}
	c.Sink = "out"
	require.NoError(t, c.Save(path))

	got, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestLoad_env(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sink: out\n"), 0644))
	t.Setenv(EnvConfig, path)

	c, p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, path, p)
	assert.Equal(t, "out", c.Sink)

	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "nope.yaml"))
	_, _, err = Load()
	assert.Error(t, err)
}
