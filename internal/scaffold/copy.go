// Package scaffold materializes a rendered copy of a template tree at a
// destination directory.
package scaffold

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/conn-castle/forge/internal/messages"
	"github.com/conn-castle/forge/internal/render"
)

// Copier recursively copies one template root, rendering file contents and
// entry names as it goes. Every file is treated as UTF-8 text subject to
// token substitution; binary assets in a catalog would be corrupted.
type Copier struct {
	// Source is the catalog root containing the template trees.
	Source fs.FS
	// Sys receives all destination writes.
	Sys System
	// Renderer resolves tokens and the dot sentinel.
	Renderer *render.Renderer
}

// CopyTree copies the template tree rooted at srcRoot (a path inside Source)
// into dest. Existing destination files are overwritten silently; that is
// the mechanism by which a later pass overrides an earlier one.
func (c *Copier) CopyTree(srcRoot string, dest string) error {
	if err := c.Sys.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf(messages.ScaffoldFailedMkdirFmt, dest, err)
	}
	return c.copyDir(srcRoot, dest)
}

// copyDir copies one directory level depth-first, preserving the source
// iteration order so sibling overwrites are deterministic.
func (c *Copier) copyDir(srcDir string, destDir string) error {
	entries, err := fs.ReadDir(c.Source, srcDir)
	if err != nil {
		return fmt.Errorf(messages.ScaffoldFailedListFmt, srcDir, err)
	}
	for _, entry := range entries {
		srcPath := path.Join(srcDir, entry.Name())
		name, err := c.Renderer.Name(srcPath, entry.Name())
		if err != nil {
			return err
		}
		destPath := filepath.Join(destDir, name)
		if entry.IsDir() {
			if err := c.Sys.MkdirAll(destPath, 0o755); err != nil {
				return fmt.Errorf(messages.ScaffoldFailedMkdirFmt, destPath, err)
			}
			if err := c.copyDir(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := c.copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

func (c *Copier) copyFile(srcPath string, destPath string) error {
	data, err := fs.ReadFile(c.Source, srcPath)
	if err != nil {
		return fmt.Errorf(messages.ScaffoldFailedReadFmt, srcPath, err)
	}
	rendered, err := c.Renderer.Content(srcPath, string(data))
	if err != nil {
		return err
	}
	if err := c.Sys.WriteFileAtomic(destPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf(messages.ScaffoldFailedWriteFmt, destPath, err)
	}
	return nil
}
