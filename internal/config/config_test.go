package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
	assert.Equal(t, "mirror", cfg.Mirror.Mode)
	assert.Equal(t, "vertex", cfg.Mirror.Space)
	assert.Equal(t, "auto", cfg.Mirror.Axis)
	assert.True(t, cfg.Mirror.LeftToRight)
	assert.True(t, cfg.Mirror.TopToBottom)

	require.NoError(t, cfg.Validate())
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topomirror.yaml")
	content := `
logging:
  level: debug
  log_file: mirror.log

mirror:
  mode: flip
  axis: y
  left_to_right: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "mirror.log", cfg.Logging.LogFile)
	assert.Equal(t, "flip", cfg.Mirror.Mode)
	assert.Equal(t, "y", cfg.Mirror.Axis)
	assert.False(t, cfg.Mirror.LeftToRight)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, "vertex", cfg.Mirror.Space)
	assert.True(t, cfg.Mirror.TopToBottom)
}

func TestLoadExplicitMissingPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not a map\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadEnums(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad level", "logging:\n  level: loud\n"},
		{"bad mode", "mirror:\n  mode: reflect\n"},
		{"bad space", "mirror:\n  space: world\n"},
		{"bad axis", "mirror:\n  axis: w\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "topomirror.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			_, err := Load(path)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	require.NoError(t, os.Chdir(tmpDir))

	// Nothing to find yet.
	assert.Empty(t, findConfigFile())

	// The config/ candidate is picked up.
	require.NoError(t, os.MkdirAll("config", 0755))
	nested := filepath.Join("config", "topomirror.yaml")
	require.NoError(t, os.WriteFile(nested, []byte("mirror:\n  mode: average\n"), 0644))
	assert.Equal(t, nested, findConfigFile())

	// A file in the working directory wins over config/.
	require.NoError(t, os.WriteFile("topomirror.yaml", []byte("mirror:\n  mode: flip\n"), 0644))
	assert.Equal(t, "topomirror.yaml", findConfigFile())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "flip", cfg.Mirror.Mode)
}

func TestLoadWithoutAnyFileKeepsDefaults(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(origDir)
	require.NoError(t, os.Chdir(t.TempDir()))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
