// pkg/backend/types.go
package backend

import (
	"context"
	"errors"
	"fmt"
)

// BackendType selects the package manager backend
type BackendType string

const (
	// BackendPacman uses the primary repository manager
	BackendPacman BackendType = "pacman"
	// BackendParu uses the AUR-capable helper
	BackendParu BackendType = "paru"
)

var (
	// ErrBackendUnavailable indicates the backend executable is not installed
	ErrBackendUnavailable = errors.New("backend not available")

	// ErrBootstrapUnsupported indicates the backend cannot provision a cold target
	ErrBootstrapUnsupported = errors.New("bootstrap not supported")
)

// Backend defines the capability interface both package managers
// satisfy. Selection is a single flag for the whole operation and
// never mixed within one run.
type Backend interface {
	// Name returns the name of the backend
	Name() string

	// Available reports whether the backend executable can be invoked
	Available() error

	// ListExplicit returns the raw line-oriented "name version" output
	// of the explicitly-installed package query
	ListExplicit(ctx context.Context) ([]byte, error)

	// Install installs the named packages
	Install(ctx context.Context, names []string) error

	// Remove removes the named packages
	Remove(ctx context.Context, names []string) error

	// Update performs a full-system update
	Update(ctx context.Context) error

	// Bootstrap installs the named packages onto a not-yet-provisioned
	// target root (the pacstrap cold-start path)
	Bootstrap(ctx context.Context, root string, names []string) error
}

// Select returns the backend for the given type.
func Select(t BackendType, runner Runner) (Backend, error) {
	switch t {
	case BackendPacman, "":
		return NewPacman(runner), nil
	case BackendParu:
		return NewParu(runner), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", t)
	}
}
