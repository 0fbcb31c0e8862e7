package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSlugAccepts(t *testing.T) {
	for _, slug := range []string{"foo", "my-app", "app_2", "@scope", "a.b"} {
		assert.NoError(t, ValidateSlug(slug), slug)
	}
}

func TestValidateSlugRejectsForbiddenChars(t *testing.T) {
	for _, slug := range []string{"a<b", "a>b", "a:b", "a;b", "a,b", "a?b", `a"b`, "a*b", "a|b", "a/b", `a\b`} {
		err := ValidateSlug(slug)
		require.Error(t, err, slug)
		assert.Contains(t, err.Error(), "forbidden character")
	}
}

func TestValidateSlugRejectsEmpty(t *testing.T) {
	assert.Error(t, ValidateSlug(""))
	assert.Error(t, ValidateSlug("   "))
}

func TestParseLanguage(t *testing.T) {
	lang, err := ParseLanguage("typescript")
	require.NoError(t, err)
	assert.Equal(t, LanguageTypeScript, lang)

	_, err = ParseLanguage("rust")
	assert.Error(t, err)
}

func TestParseBundler(t *testing.T) {
	bundler, err := ParseBundler("rollup")
	require.NoError(t, err)
	assert.Equal(t, BundlerRollup, bundler)

	_, err = ParseBundler("parcel")
	assert.Error(t, err)
}

func TestParsePackageManager(t *testing.T) {
	pm, err := ParsePackageManager("pnpm")
	require.NoError(t, err)
	assert.Equal(t, PackageManagerPnpm, pm)

	_, err = ParsePackageManager("cargo")
	assert.Error(t, err)
}

func validOptions() *ProjectOptions {
	return &ProjectOptions{
		Path:           "/tmp/foo",
		Slug:           "foo",
		Language:       LanguageJavaScript,
		Bundler:        BundlerVite,
		PackageManager: PackageManagerNpm,
	}
}

func TestProjectOptionsValidate(t *testing.T) {
	assert.NoError(t, validOptions().Validate())
}

func TestProjectOptionsValidateRejectsBadFields(t *testing.T) {
	opts := validOptions()
	opts.Slug = "a/b"
	assert.Error(t, opts.Validate())

	opts = validOptions()
	opts.Path = ""
	assert.Error(t, opts.Validate())

	opts = validOptions()
	opts.Language = "cobol"
	assert.Error(t, opts.Validate())

	opts = validOptions()
	opts.Bundler = ""
	assert.Error(t, opts.Validate())

	opts = validOptions()
	opts.PackageManager = "apt"
	assert.Error(t, opts.Validate())
}
