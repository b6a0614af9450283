// pkg/reconcile/capture.go
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nixman/nixman/pkg/backend"
	"github.com/nixman/nixman/pkg/pkglist"
)

// ErrCaptureFailed indicates the installed-package query exited non-zero
var ErrCaptureFailed = errors.New("capturing installed packages failed")

// Capture queries the backend for explicitly installed packages.
// Every observed record carries the installed version.
func Capture(ctx context.Context, b backend.Backend) (pkglist.List, error) {
	if err := b.Available(); err != nil {
		return pkglist.List{}, err
	}
	out, err := b.ListExplicit(ctx)
	if err != nil {
		return pkglist.List{}, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}
	return ParseExplicit(out), nil
}

// ParseExplicit parses the line-oriented "name version" output of the
// explicit-package query (pacman -Qe and paru -Qe share the format).
func ParseExplicit(out []byte) pkglist.List {
	var list pkglist.List
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		pkg := pkglist.Package{Name: fields[0]}
		if len(fields) > 1 {
			pkg.Version = fields[1]
		}
		list.Packages = append(list.Packages, pkg)
	}
	return list
}
