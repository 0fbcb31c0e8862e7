package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/forge/internal/options"
)

func testOptions() *options.ProjectOptions {
	return &options.ProjectOptions{
		Path:           "/tmp/foo",
		Slug:           "foo",
		Description:    "A test project",
		AuthorName:     "Ada",
		AuthorEmail:    "ada@example.com",
		AuthorURL:      "https://example.com",
		RepoURL:        "https://example.com/foo.git",
		Language:       options.LanguageTypeScript,
		Bundler:        options.BundlerVite,
		PackageManager: options.PackageManagerPnpm,
	}
}

func TestContentRendersNameTokenVerbatim(t *testing.T) {
	r := New(testOptions())
	out, err := r.Content("README.md", "<%= name %>")
	require.NoError(t, err)
	assert.Equal(t, "foo", out)
}

func TestContentRendersAllTokens(t *testing.T) {
	r := New(testOptions())
	out, err := r.Content("package.json",
		"<%= name %>|<%= description %>|<%= author %>|<%= email %>|<%= url %>|<%= repository %>|<%= packageManager %>")
	require.NoError(t, err)
	assert.Equal(t, "foo|A test project|Ada|ada@example.com|https://example.com|https://example.com/foo.git|pnpm", out)
}

func TestContentRendersUnsetOptionalAsEmpty(t *testing.T) {
	opts := testOptions()
	opts.Description = ""
	opts.AuthorName = ""
	r := New(opts)

	out, err := r.Content("README.md", "<%= description %>")
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.NotContains(t, out, "undefined")

	out, err = r.Content("LICENSE", "Copyright <%= author %>")
	require.NoError(t, err)
	assert.Equal(t, "Copyright ", out)
}

func TestContentLeavesPlainTextUntouched(t *testing.T) {
	r := New(testOptions())
	text := "const x = `${y}`; // no tokens here\n"
	out, err := r.Content("src/main.js", text)
	require.NoError(t, err)
	assert.Equal(t, text, out)
}

func TestContentMalformedTokenFailsWithPath(t *testing.T) {
	r := New(testOptions())
	_, err := r.Content("broken.json", "<%= nosuchtoken %>")
	require.Error(t, err)

	var renderErr *Error
	require.True(t, errors.As(err, &renderErr))
	assert.Equal(t, "broken.json", renderErr.Path)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestNameStripsSentinel(t *testing.T) {
	r := New(testOptions())

	name, err := r.Name("common/$foo", "$foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", name)

	name, err = r.Name("common/$.github", "$.github")
	require.NoError(t, err)
	assert.Equal(t, ".github", name)

	name, err = r.Name("common/$.gitignore", "$.gitignore")
	require.NoError(t, err)
	assert.Equal(t, ".gitignore", name)
}

func TestNameWithoutSentinelUnchanged(t *testing.T) {
	r := New(testOptions())
	name, err := r.Name("common/README.md", "README.md")
	require.NoError(t, err)
	assert.Equal(t, "README.md", name)
}

func TestNameRendersTokens(t *testing.T) {
	r := New(testOptions())
	name, err := r.Name("src/<%= name %>.config.js", "<%= name %>.config.js")
	require.NoError(t, err)
	assert.Equal(t, "foo.config.js", name)
}

func TestNameMalformedTokenFailsWithPath(t *testing.T) {
	r := New(testOptions())
	_, err := r.Name("src/<%= bad", "<%= bad")
	require.Error(t, err)

	var renderErr *Error
	require.True(t, errors.As(err, &renderErr))
	assert.True(t, renderErr.Name)
}
