package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/forge/internal/options"
)

func composeOptions(t *testing.T, slug string, language options.Language) *options.ProjectOptions {
	t.Helper()
	return &options.ProjectOptions{
		Path:           filepath.Join(t.TempDir(), slug),
		Slug:           slug,
		Language:       language,
		Bundler:        options.BundlerVite,
		PackageManager: options.PackageManagerNpm,
	}
}

func TestComposeSpecificOverridesCommon(t *testing.T) {
	source := fstest.MapFS{
		"common/README.md":          &fstest.MapFile{Data: []byte("# Common <%= name %>")},
		"typescript-vite/README.md": &fstest.MapFile{Data: []byte("# TS <%= name %>")},
	}
	opts := composeOptions(t, "foo", options.LanguageTypeScript)

	require.NoError(t, Compose(source, RealSystem{}, opts))

	data, err := os.ReadFile(filepath.Join(opts.Path, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# TS foo", string(data))
}

func TestComposeCommonFilesSurvive(t *testing.T) {
	source := fstest.MapFS{
		"common/LICENSE":               &fstest.MapFile{Data: []byte("MIT")},
		"typescript-vite/package.json": &fstest.MapFile{Data: []byte("{}")},
	}
	opts := composeOptions(t, "foo", options.LanguageTypeScript)

	require.NoError(t, Compose(source, RealSystem{}, opts))

	for _, name := range []string{"LICENSE", "package.json"} {
		_, err := os.Stat(filepath.Join(opts.Path, name))
		assert.NoError(t, err, name)
	}
}

func TestComposeRendersSentinelInSpecificTree(t *testing.T) {
	source := fstest.MapFS{
		"typescript-vite/$.gitignore": &fstest.MapFile{Data: []byte("node_modules\n<%= name %>-temp")},
	}
	opts := composeOptions(t, "bar", options.LanguageTypeScript)

	require.NoError(t, Compose(source, RealSystem{}, opts))

	data, err := os.ReadFile(filepath.Join(opts.Path, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "node_modules\nbar-temp", string(data))
}

func TestComposeMissingCommonIsSkippedSilently(t *testing.T) {
	source := fstest.MapFS{
		"javascript-vite/index.js": &fstest.MapFile{Data: []byte("x")},
	}
	opts := composeOptions(t, "foo", options.LanguageJavaScript)

	require.NoError(t, Compose(source, RealSystem{}, opts))

	_, err := os.Stat(filepath.Join(opts.Path, "index.js"))
	assert.NoError(t, err)
}

func TestComposeMissingSpecificFailsBeforeAnyWrite(t *testing.T) {
	source := fstest.MapFS{
		"common/README.md": &fstest.MapFile{Data: []byte("# Common")},
	}
	opts := composeOptions(t, "foo", options.LanguageTypeScript)

	err := Compose(source, RealSystem{}, opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)

	_, statErr := os.Stat(opts.Path)
	assert.True(t, os.IsNotExist(statErr), "no destination file may exist after a missing specific root")
}

func TestSpecificRoot(t *testing.T) {
	assert.Equal(t, "typescript-vite", SpecificRoot(options.LanguageTypeScript, options.BundlerVite))
	assert.Equal(t, "javascript-webpack", SpecificRoot(options.LanguageJavaScript, options.BundlerWebpack))
}
