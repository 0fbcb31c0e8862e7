package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/forge/internal/messages"
)

// runForgeWithInput executes the CLI with stdin attached, for prompt flows.
func runForgeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetArgs(args)
	var out strings.Builder
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	err := cmd.Execute()
	return out.String(), err
}

// setupConfigTest points the defaults file at a fresh location and disables
// terminal prompting and colors.
func setupConfigTest(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".forge", "config.toml")

	origConfigPath := configPathFunc
	origIsTerminal := isTerminal
	origNoColor := color.NoColor
	t.Cleanup(func() {
		configPathFunc = origConfigPath
		isTerminal = origIsTerminal
		color.NoColor = origNoColor
	})

	configPathFunc = func() (string, error) { return path, nil }
	isTerminal = func() bool { return false }
	color.NoColor = true

	return path
}

func TestConfigShowsUnsetDefaults(t *testing.T) {
	setupConfigTest(t)

	stdout, _, err := runForge(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, messages.ConfigCurrentHeader)
	assert.Contains(t, stdout, "author.name = (unset)")
	assert.Contains(t, stdout, "defaults.package-manager = (unset)")
}

func TestConfigShowsStoredValues(t *testing.T) {
	path := setupConfigTest(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	data := "[author]\nname = \"Ada\"\n\n[defaults]\nbundler = \"rollup\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	stdout, _, err := runForge(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "author.name = Ada")
	assert.Contains(t, stdout, "defaults.bundler = rollup")
}

func TestConfigWritesChangesWithDiffPreview(t *testing.T) {
	path := setupConfigTest(t)

	stdout, _, err := runForge(t, "config", "--language", "typescript", "--author", "Ada")
	require.NoError(t, err)
	assert.Contains(t, stdout, "+language = 'typescript'")
	assert.Contains(t, stdout, "+name = 'Ada'")
	assert.Contains(t, stdout, "Updated "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "language = 'typescript'")
	assert.Contains(t, string(data), "name = 'Ada'")
}

func TestConfigNoChanges(t *testing.T) {
	setupConfigTest(t)

	_, _, err := runForge(t, "config", "--bundler", "vite")
	require.NoError(t, err)

	stdout, _, err := runForge(t, "config", "--bundler", "vite")
	require.NoError(t, err)
	assert.Contains(t, stdout, messages.ConfigNoChanges)
}

func TestConfigPromptDeclinedDiscardsChanges(t *testing.T) {
	path := setupConfigTest(t)
	isTerminal = func() bool { return true }

	stdout, err := runForgeWithInput(t, "n\n", "config", "--language", "typescript")
	require.NoError(t, err)
	assert.Contains(t, stdout, messages.ConfigNotApplied)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "declined changes must not be written")
}

func TestConfigPromptDefaultAccepts(t *testing.T) {
	path := setupConfigTest(t)
	isTerminal = func() bool { return true }

	stdout, err := runForgeWithInput(t, "\n", "config", "--language", "typescript")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Updated "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "language = 'typescript'")
}

func TestConfigInvalidEnumFails(t *testing.T) {
	path := setupConfigTest(t)

	_, _, err := runForge(t, "config", "--bundler", "parcel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown bundler")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConfigRejectsArgs(t *testing.T) {
	setupConfigTest(t)

	_, _, err := runForge(t, "config", "extra")
	assert.Error(t, err)
}
