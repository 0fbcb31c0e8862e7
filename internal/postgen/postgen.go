// Package postgen runs the sequential steps that follow tree
// materialization: dependency installation and git repository
// initialization.
package postgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/forge/internal/messages"
	"github.com/conn-castle/forge/internal/options"
)

// Options controls the post-generation steps.
type Options struct {
	// Dir is the generated project directory.
	Dir            string
	PackageManager options.PackageManager
	SkipInstall    bool
	SkipGit        bool
	// Quiet discards subprocess output.
	Quiet bool
	// Out receives progress lines; nil discards them.
	Out    io.Writer
	Runner Runner
}

// Run executes the post-generation steps in order: install, then git init.
// A failing step aborts the remaining ones; the generated tree is left in
// place either way.
func Run(opts Options) error {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	if !opts.SkipInstall {
		if _, err := fmt.Fprintf(out, messages.PostgenInstallStartFmt, opts.PackageManager); err != nil {
			return err
		}
		if err := InstallDeps(opts.Runner, opts.Dir, opts.PackageManager, opts.Quiet); err != nil {
			return err
		}
	}
	if !opts.SkipGit {
		if _, err := fmt.Fprint(out, messages.PostgenGitStartFmt); err != nil {
			return err
		}
		if err := InitRepo(opts.Runner, opts.Dir, opts.Quiet); err != nil {
			return err
		}
	}
	return nil
}

// InstallDeps installs dependencies in dir with the given package manager.
func InstallDeps(r Runner, dir string, pm options.PackageManager, quiet bool) error {
	name := string(pm)
	if _, err := r.LookPath(name); err != nil {
		return fmt.Errorf(messages.PostgenMissingToolFmt, name, err)
	}
	args := []string{"install"}
	if err := r.Run(dir, name, args, quiet); err != nil {
		return fmt.Errorf(messages.PostgenCommandFmt, name, strings.Join(args, " "), err)
	}
	return nil
}

// InitRepo initializes a git repository in dir.
func InitRepo(r Runner, dir string, quiet bool) error {
	if _, err := r.LookPath("git"); err != nil {
		return fmt.Errorf(messages.PostgenMissingToolFmt, "git", err)
	}
	args := []string{"init"}
	if err := r.Run(dir, "git", args, quiet); err != nil {
		return fmt.Errorf(messages.PostgenCommandFmt, "git", strings.Join(args, " "), err)
	}
	return nil
}

// AvailablePackageManagers returns the supported package managers found on
// PATH, in display order. An empty result means none were found.
func AvailablePackageManagers(r Runner) []options.PackageManager {
	found := []options.PackageManager{}
	for _, pm := range options.PackageManagers() {
		if _, err := r.LookPath(string(pm)); err == nil {
			found = append(found, pm)
		}
	}
	return found
}
