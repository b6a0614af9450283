// pkg/backend/pacman.go
package backend

import (
	"context"
	"fmt"
)

// Pacman drives the primary repository manager. Mutating operations
// run under sudo; queries do not.
type Pacman struct {
	runner Runner
}

// NewPacman creates a pacman backend over the given runner.
func NewPacman(runner Runner) *Pacman {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Pacman{runner: runner}
}

// Name returns the backend name
func (b *Pacman) Name() string {
	return "pacman"
}

// Available reports whether pacman is installed
func (b *Pacman) Available() error {
	if _, err := b.runner.LookPath("pacman"); err != nil {
		return fmt.Errorf("%w: pacman not found in PATH", ErrBackendUnavailable)
	}
	return nil
}

// ListExplicit returns the raw output of pacman -Qe
func (b *Pacman) ListExplicit(ctx context.Context) ([]byte, error) {
	return b.runner.Output(ctx, "pacman", "-Qe")
}

// Install runs sudo pacman -S for the named packages
func (b *Pacman) Install(ctx context.Context, names []string) error {
	return b.runner.Run(ctx, "sudo", append([]string{"pacman", "-S"}, names...)...)
}

// Remove runs sudo pacman -Rns for the named packages
func (b *Pacman) Remove(ctx context.Context, names []string) error {
	return b.runner.Run(ctx, "sudo", append([]string{"pacman", "-Rns"}, names...)...)
}

// Update runs a full system upgrade
func (b *Pacman) Update(ctx context.Context) error {
	return b.runner.Run(ctx, "sudo", "pacman", "-Syu")
}

// Bootstrap provisions a cold target root via pacstrap. AUR packages
// cannot be resolved on this path; the planner guards against them
// before anything is invoked.
func (b *Pacman) Bootstrap(ctx context.Context, root string, names []string) error {
	if _, err := b.runner.LookPath("pacstrap"); err != nil {
		return fmt.Errorf("%w: pacstrap not found in PATH", ErrBackendUnavailable)
	}
	return b.runner.Run(ctx, "pacstrap", append([]string{root}, names...)...)
}
