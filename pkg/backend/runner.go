// pkg/backend/runner.go
package backend

import (
	"context"
	"os"
	"os/exec"
)

// Runner abstracts subprocess invocation so backends can be exercised
// in tests without a live package manager.
type Runner interface {
	// Run executes the command with inherited stdio. Package managers
	// prompt interactively, so their terminal stays attached.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes the command and captures stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPath reports whether the named executable is on PATH.
	LookPath(name string) (string, error)
}

// ExecRunner invokes real subprocesses.
type ExecRunner struct{}

// NewExecRunner creates an ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	return cmd.Output()
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
