package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	saved := Config{
		Path:       "/data",
		ShowHidden: true,
		MaxDepth:   3,
		MaxEntries: 128,
		Workers:    8,
		Exclusions: []string{"proc", "node_modules"},
	}
	require.NoError(t, SaveConfig(saved))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestMergeKeepsDefaultsForAbsentFields(t *testing.T) {
	base := DefaultConfig()
	path := "/scans"
	merged := mergeConfig(base, fileConfig{Path: &path})

	assert.Equal(t, "/scans", merged.Path)
	assert.Equal(t, base.ShowHidden, merged.ShowHidden)
	assert.Equal(t, base.MaxEntries, merged.MaxEntries)
	assert.Nil(t, merged.Exclusions)
}

func TestMergeOverridesPresentFields(t *testing.T) {
	base := DefaultConfig()
	hidden := true
	entries := 64
	merged := mergeConfig(base, fileConfig{
		ShowHidden: &hidden,
		MaxEntries: &entries,
		Exclusions: []string{"sys"},
	})

	assert.True(t, merged.ShowHidden)
	assert.Equal(t, 64, merged.MaxEntries)
	assert.Equal(t, []string{"sys"}, merged.Exclusions)
	assert.Equal(t, base.Path, merged.Path)
}
