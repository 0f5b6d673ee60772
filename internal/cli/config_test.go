package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LANTERN_LANGUAGE", "")
	t.Setenv("LANTERN_ROOT", "")
	t.Setenv("LANTERN_DATA_DIR", "")

	v, err := loadConfig(t.TempDir())
	require.NoError(t, err)

	root := t.TempDir()
	cfg, err := buildConfig(v, rootFlags{root: root})
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, filepath.Join(root, types.DataDirName), cfg.DataDir)
	assert.Equal(t, types.DefaultLanguage, cfg.Language)
	assert.Equal(t, types.DefaultReadme, cfg.Readme)
	assert.Equal(t, types.DefaultProblemBaseURL, cfg.ProblemBaseURL)
	assert.Equal(t, types.DefaultGraphQLURL, cfg.GraphQLURL)
	assert.Equal(t, types.DefaultLogLevel, cfg.Log.Level)
}

func TestLoadConfig_Precedence(t *testing.T) {
	configDir := t.TempDir()
	fileRoot := t.TempDir()
	content := "root: " + fileRoot + "\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), []byte(content), 0o644))
	t.Setenv("LANTERN_ROOT", t.TempDir())
	t.Setenv("LANTERN_DATA_DIR", "")
	t.Setenv("LANTERN_LOG_LEVEL", "error")

	v, err := loadConfig(configDir)
	require.NoError(t, err)

	cfg, err := buildConfig(v, rootFlags{})
	require.NoError(t, err)
	assert.Equal(t, fileRoot, cfg.Root, "config file root beats LANTERN_ROOT")
	assert.Equal(t, "error", cfg.Log.Level, "env beats config file")
	assert.Equal(t, "json", cfg.Log.Format)

	cfg, err = buildConfig(v, rootFlags{logLevel: "trace"})
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level, "flag beats env")
}

func TestLoadConfig_Malformed(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileExt), []byte("root: [unclosed\n"), 0o644))

	_, err := loadConfig(configDir)
	assert.Error(t, err)
}

func TestWriteConfigIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configFileExt)
	want := configFile{
		Language:       "go",
		Readme:         "README.md",
		ProblemBaseURL: types.DefaultProblemBaseURL,
		GraphQLURL:     types.DefaultGraphQLURL,
		Log:            types.LogConfig{Level: "warn", Format: "console"},
	}

	wrote, err := writeConfigIfMissing(path, want)
	require.NoError(t, err)
	assert.True(t, wrote)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got configFile
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, want, got)

	wrote, err = writeConfigIfMissing(path, configFile{Language: "java"})
	require.NoError(t, err)
	assert.False(t, wrote, "existing config is kept")
}
