// Package options defines the validated project metadata record consumed by
// the scaffolding pipeline.
package options

import (
	"fmt"
	"strings"

	"github.com/conn-castle/forge/internal/messages"
)

// Language is the target project language.
type Language string

// Supported languages.
const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
)

// Bundler is the target build tool.
type Bundler string

// Supported bundlers.
const (
	BundlerWebpack Bundler = "webpack"
	BundlerVite    Bundler = "vite"
	BundlerRollup  Bundler = "rollup"
)

// PackageManager is the tool used to install dependencies.
type PackageManager string

// Supported package managers.
const (
	PackageManagerNpm  PackageManager = "npm"
	PackageManagerYarn PackageManager = "yarn"
	PackageManagerPnpm PackageManager = "pnpm"
	PackageManagerBun  PackageManager = "bun"
)

// Languages returns the supported language values in display order.
func Languages() []Language {
	return []Language{LanguageJavaScript, LanguageTypeScript}
}

// Bundlers returns the supported bundler values in display order.
func Bundlers() []Bundler {
	return []Bundler{BundlerWebpack, BundlerVite, BundlerRollup}
}

// PackageManagers returns the supported package manager values in display order.
func PackageManagers() []PackageManager {
	return []PackageManager{PackageManagerNpm, PackageManagerYarn, PackageManagerPnpm, PackageManagerBun}
}

// ParseLanguage validates a language value.
func ParseLanguage(value string) (Language, error) {
	for _, lang := range Languages() {
		if string(lang) == value {
			return lang, nil
		}
	}
	return "", fmt.Errorf(messages.OptionsUnknownLanguageFmt, value)
}

// ParseBundler validates a bundler value.
func ParseBundler(value string) (Bundler, error) {
	for _, bundler := range Bundlers() {
		if string(bundler) == value {
			return bundler, nil
		}
	}
	return "", fmt.Errorf(messages.OptionsUnknownBundlerFmt, value)
}

// ParsePackageManager validates a package manager value.
func ParsePackageManager(value string) (PackageManager, error) {
	for _, pm := range PackageManagers() {
		if string(pm) == value {
			return pm, nil
		}
	}
	return "", fmt.Errorf(messages.OptionsUnknownPackageManagerFmt, value)
}

// invalidSlugChars are characters rejected in project slugs. The set covers
// path separators plus characters that are unsafe in package names on at
// least one supported platform.
const invalidSlugChars = `<>:;,?"*|/\`

// ValidateSlug checks that a project slug is non-empty and contains no
// forbidden characters.
func ValidateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf(messages.OptionsEmptySlug)
	}
	if idx := strings.IndexAny(slug, invalidSlugChars); idx >= 0 {
		return fmt.Errorf(messages.OptionsInvalidSlugCharFmt, slug, string(slug[idx]))
	}
	return nil
}

// ProjectOptions is the immutable record of collected answers. It is built
// once by the answer collector and consumed read-only by the composer,
// copier, and post-generation steps.
type ProjectOptions struct {
	// Path is the destination directory for the generated project.
	Path string
	// Slug is the validated project name.
	Slug        string
	Description string

	// Author fields are optional and render as empty strings when unset.
	AuthorName  string
	AuthorEmail string
	AuthorURL   string
	RepoURL     string

	Language       Language
	Bundler        Bundler
	PackageManager PackageManager
}

// Validate checks the required fields of a constructed record.
func (o *ProjectOptions) Validate() error {
	if err := ValidateSlug(o.Slug); err != nil {
		return err
	}
	if strings.TrimSpace(o.Path) == "" {
		return fmt.Errorf(messages.OptionsEmptyPath)
	}
	if _, err := ParseLanguage(string(o.Language)); err != nil {
		return err
	}
	if _, err := ParseBundler(string(o.Bundler)); err != nil {
		return err
	}
	if _, err := ParsePackageManager(string(o.PackageManager)); err != nil {
		return err
	}
	return nil
}
