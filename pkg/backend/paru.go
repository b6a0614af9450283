// pkg/backend/paru.go
package backend

import (
	"context"
	"fmt"
)

// Paru drives the AUR-capable helper. Paru escalates privileges
// itself, so no command runs under sudo.
type Paru struct {
	runner Runner
}

// NewParu creates a paru backend over the given runner.
func NewParu(runner Runner) *Paru {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Paru{runner: runner}
}

// Name returns the backend name
func (b *Paru) Name() string {
	return "paru"
}

// Available reports whether paru is installed
func (b *Paru) Available() error {
	if _, err := b.runner.LookPath("paru"); err != nil {
		return fmt.Errorf("%w: paru not found in PATH", ErrBackendUnavailable)
	}
	return nil
}

// ListExplicit returns the raw output of paru -Qe
func (b *Paru) ListExplicit(ctx context.Context) ([]byte, error) {
	return b.runner.Output(ctx, "paru", "-Qe")
}

// Install runs paru -S for the named packages
func (b *Paru) Install(ctx context.Context, names []string) error {
	return b.runner.Run(ctx, "paru", append([]string{"-S"}, names...)...)
}

// Remove runs paru -Rns for the named packages
func (b *Paru) Remove(ctx context.Context, names []string) error {
	return b.runner.Run(ctx, "paru", append([]string{"-Rns"}, names...)...)
}

// Update runs a full system upgrade including AUR packages
func (b *Paru) Update(ctx context.Context) error {
	return b.runner.Run(ctx, "paru", "-Syu")
}

// Bootstrap is unsupported: pacstrap cannot resolve AUR packages.
func (b *Paru) Bootstrap(ctx context.Context, root string, names []string) error {
	return fmt.Errorf("%w: paru cannot provision a target root", ErrBootstrapUnsupported)
}
