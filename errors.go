// errors.go
package nixman

import (
	"fmt"

	"github.com/nixman/nixman/pkg/backend"
	"github.com/nixman/nixman/pkg/pkglist"
	"github.com/nixman/nixman/pkg/reconcile"
)

// Sentinel errors re-exported for convenience, so callers can match
// with errors.Is without importing every subpackage.
var (
	// ErrMalformedEntry indicates a package entry is missing its name
	ErrMalformedEntry = pkglist.ErrMalformedEntry

	// ErrInvalidFormat indicates the package list has an unexpected structure
	ErrInvalidFormat = pkglist.ErrInvalidFormat

	// ErrStoreUnavailable indicates the on-disk list cannot be created or read
	ErrStoreUnavailable = pkglist.ErrStoreUnavailable

	// ErrPersistFailed indicates a sync-back write could not be committed
	ErrPersistFailed = pkglist.ErrPersistFailed

	// ErrBackendUnavailable indicates the backend executable is not installed
	ErrBackendUnavailable = backend.ErrBackendUnavailable

	// ErrCaptureFailed indicates the installed-package query exited non-zero
	ErrCaptureFailed = reconcile.ErrCaptureFailed

	// ErrUnsupportedBootstrapPackage indicates an AUR package on the bootstrap path
	ErrUnsupportedBootstrapPackage = reconcile.ErrUnsupportedBootstrapPackage
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
