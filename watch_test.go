package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfigReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(`preset = "default"`), 0644))

	loaded := make(chan *Config, 4)
	cw, err := watchConfig(path, func(c *Config, err error) {
		assert.NoError(t, err)
		loaded <- c
	})
	require.NoError(t, err)
	defer cw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte(`preset = "cyber"`), 0644))

	select {
	case c := <-loaded:
		assert.Equal(t, "cyber", c.Preset)
	case <-time.After(3 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestWatchConfigMissingDirectory(t *testing.T) {
	_, err := watchConfig(filepath.Join(t.TempDir(), "nope", configFileName), func(*Config, error) {})
	assert.Error(t, err)
}
