package scaffold

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/conn-castle/forge/internal/messages"
	"github.com/conn-castle/forge/internal/options"
	"github.com/conn-castle/forge/internal/render"
)

// ErrSourceNotFound wraps failures where the requested specific template root
// does not exist in the catalog. Callers can use errors.Is to distinguish it
// from filesystem or render failures.
var ErrSourceNotFound = errors.New("template source not found")

// CommonRoot is the catalog subtree shared by every language/bundler
// combination. It is applied first and overridable.
const CommonRoot = "common"

// SpecificRoot returns the catalog subtree name for one language+bundler
// combination, e.g. "typescript-vite".
func SpecificRoot(language options.Language, bundler options.Bundler) string {
	return string(language) + "-" + string(bundler)
}

// Compose materializes the destination tree for opts from the catalog in
// source: the common pass runs first (skipped silently when the catalog
// ships no common subtree), then the specific pass overwrites any same-named
// rendered paths. Last writer wins; contents are never merged.
//
// A missing specific root fails with ErrSourceNotFound before any file is
// written. No cleanup of partial output is performed on later failures.
func Compose(source fs.FS, sys System, opts *options.ProjectOptions) error {
	specific := SpecificRoot(opts.Language, opts.Bundler)
	if !dirExists(source, specific) {
		return fmt.Errorf(messages.ScaffoldMissingTemplateFmt+": %w", specific, ErrSourceNotFound)
	}

	copier := &Copier{
		Source:   source,
		Sys:      sys,
		Renderer: render.New(opts),
	}

	if dirExists(source, CommonRoot) {
		if err := copier.CopyTree(CommonRoot, opts.Path); err != nil {
			return err
		}
	}
	return copier.CopyTree(specific, opts.Path)
}

func dirExists(source fs.FS, name string) bool {
	info, err := fs.Stat(source, name)
	return err == nil && info.IsDir()
}
