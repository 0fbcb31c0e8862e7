package postgen

import (
	"io"
	"os"
	"os/exec"
)

// Runner abstracts external command invocation so the orchestration logic
// never depends on a concrete process-spawning mechanism.
type Runner interface {
	// LookPath reports where an executable resolves on PATH.
	LookPath(name string) (string, error)
	// Run executes name with args in dir, waiting for completion. When quiet
	// is true the child's output is discarded.
	Run(dir string, name string, args []string, quiet bool) error
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive child output when not quiet. Nil values
	// default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// LookPath resolves name against PATH.
func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command and waits for it to finish.
func (r ExecRunner) Run(dir string, name string, args []string, quiet bool) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	if quiet {
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
	} else {
		cmd.Stdout = r.stdout()
		cmd.Stderr = r.stderr()
	}
	return cmd.Run()
}

func (r ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
