package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(f *commonFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	f.register(cmd)
	return cmd
}

func TestMergedConfig_Defaults(t *testing.T) {
	var f commonFlags
	cmd := newTestCommand(&f)
	require.NoError(t, cmd.Execute())

	cfg, err := f.mergedConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.ModelBackend)
	assert.Equal(t, "llama3.1", cfg.Model)
	assert.Equal(t, "output", cfg.OutputDir)
}

func TestMergedConfig_FlagOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	var f commonFlags
	cmd := newTestCommand(&f)
	cmd.SetArgs([]string{
		"--backend", "openai",
		"--model", "gpt-4o",
		"--output", "out",
		"--mock",
		"-v",
	})
	require.NoError(t, cmd.Execute())

	cfg, err := f.mergedConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.ModelBackend)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.UseMockData)
	assert.True(t, cfg.Verbose)
}

func TestMergedConfig_FileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"model_backend": "ollama",
		"model": "mistral",
		"output_dir": "from-file"
	}`), 0o644))

	var f commonFlags
	cmd := newTestCommand(&f)
	cmd.SetArgs([]string{"--config", path, "--model", "llama3.1"})
	require.NoError(t, cmd.Execute())

	cfg, err := f.mergedConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "llama3.1", cfg.Model, "flag wins over file")
	assert.Equal(t, "from-file", cfg.OutputDir, "file value survives when no flag set")
}

func TestMergedConfig_InvalidBackend(t *testing.T) {
	var f commonFlags
	cmd := newTestCommand(&f)
	cmd.SetArgs([]string{"--backend", "anthropic"})
	require.NoError(t, cmd.Execute())

	_, err := f.mergedConfig(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model_backend")
}

func TestRequireProfile(t *testing.T) {
	var f commonFlags
	cmd := newTestCommand(&f)
	require.NoError(t, cmd.Execute())

	cfg, err := f.mergedConfig(cmd)
	require.NoError(t, err)

	t.Run("missing path", func(t *testing.T) {
		require.Error(t, requireProfile(cfg))
	})

	t.Run("nonexistent file", func(t *testing.T) {
		cfg.ProfilePath = "/nonexistent/profile.yaml"
		require.Error(t, requireProfile(cfg))
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("personal_information:\n  name: Ada\n"), 0o644))
		cfg.ProfilePath = path
		require.NoError(t, requireProfile(cfg))
	})
}
