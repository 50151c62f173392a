package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveProfile(t *testing.T) {
	cfg := &UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {Output: "table"},
			"ci":      {Output: "json", DataFile: "/data/portal.yaml"},
		},
	}
	assert.Equal(t, "table", cfg.ActiveProfile("").Output)
	assert.Equal(t, "/data/portal.yaml", cfg.ActiveProfile("ci").DataFile)
	assert.Equal(t, Profile{}, cfg.ActiveProfile("missing"))
}

func TestSaveAndLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(configEnv, "")

	cfg, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.Profiles)

	require.NoError(t, SaveUserConfig(&UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{"default": {Output: "yaml"}}}))
	cfg, err = LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Profiles["default"].Output)

	entries, err := os.ReadDir(filepath.Join(home, ".portal"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())
}

func TestConfigPath_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portal.yaml")
	t.Setenv(configEnv, path)
	assert.Equal(t, path, ConfigPath())

	require.NoError(t, SaveUserConfig(&UserConfig{Profiles: map[string]Profile{"a": {}}}))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestLoadUserConfig_RejectsBadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(configEnv, path)
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  ci:\n    output: csv\n"), 0o600))

	_, err := LoadUserConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `profile "ci"`)
}

func TestSetProfile(t *testing.T) {
	var cfg UserConfig
	require.NoError(t, cfg.SetProfile("first", Profile{Output: "json"}))
	require.NoError(t, cfg.SetProfile("second", Profile{DataFile: "/tmp/p.yaml"}))
	assert.Equal(t, "first", cfg.CurrentProfile)
	assert.Len(t, cfg.Profiles, 2)

	assert.Error(t, cfg.SetProfile("", Profile{}))
	assert.Error(t, cfg.SetProfile("bad", Profile{Output: "xml"}))
	assert.NotContains(t, cfg.Profiles, "bad")
}

func TestConfigCommands(t *testing.T) {
	isolate(t)

	out, err := runCLI(t, "config", "set-profile", "--name", "ci", "--default-output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `Profile "ci" saved`)

	_, err = runCLI(t, "config", "use-profile", "ci")
	require.NoError(t, err)

	out, err = runCLI(t, "config", "show", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "ACTIVE")
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "ci")

	out, err = runCLI(t, "config", "show", "-o", "json")
	require.NoError(t, err)
	var cfg UserConfig
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "ci", cfg.CurrentProfile)

	_, err = runCLI(t, "config", "use-profile", "missing")
	require.Error(t, err)

	_, err = runCLI(t, "config", "set-profile", "--name", "bad", "--default-output", "csv")
	require.Error(t, err)
}

func TestProfileOutputAppliesToCommands(t *testing.T) {
	isolate(t)
	require.NoError(t, SaveUserConfig(&UserConfig{CurrentProfile: "default", Profiles: map[string]Profile{"default": {Output: "table"}}}))

	out, err := runCLI(t, "list", "namaste", "--q", "NAM001")
	require.NoError(t, err)
	assert.Contains(t, out, "DESCRIPTION")

	// flag beats profile
	out, err = runCLI(t, "list", "namaste", "--q", "NAM001", "-o", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBrokenConfigFailsCommands(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(configEnv, path)
	require.NoError(t, os.WriteFile(path, []byte("profiles: [\n"), 0o600))

	_, err := runCLI(t, "list", "namaste")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
