// pkg/reconcile/plan.go
package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nixman/nixman/pkg/pkglist"
	"github.com/nixman/nixman/pkg/version"
)

// ErrUnsupportedBootstrapPackage indicates an AUR-sourced package was
// planned for install on the bootstrap path, which cannot resolve it
var ErrUnsupportedBootstrapPackage = errors.New("bootstrap cannot install AUR package")

// Plan is the computed difference between desired and observed state.
// ToInstall, ToRemove and Unchanged partition the union of names from
// both inputs; Drift is a report over Unchanged, never an install
// trigger.
type Plan struct {
	// ToInstall lists desired packages absent from the system, in
	// declaration order
	ToInstall []pkglist.Package

	// ToRemove lists installed packages absent from the declared list
	ToRemove []pkglist.Package

	// Unchanged lists packages present on both sides by name
	Unchanged []pkglist.Package

	// Drift reports unchanged packages whose pinned version differs
	// from the installed one
	Drift []DriftEntry
}

// DriftEntry records a version mismatch between the declared and the
// installed record of one package.
type DriftEntry struct {
	Name      string
	Declared  string
	Installed string
}

// Build computes the plan by name-keyed symmetric difference.
// Duplicate names in desired collapse to the last declaration before
// indexing, matching list parse behavior.
func Build(desired, observed pkglist.List) *Plan {
	wanted := pkglist.List{Packages: pkglist.Dedupe(desired.Packages)}
	wantedIdx := wanted.Index()
	installedIdx := observed.Index()

	plan := &Plan{}
	for _, pkg := range wanted.Packages {
		installed, ok := installedIdx[pkg.Name]
		if !ok {
			plan.ToInstall = append(plan.ToInstall, pkg)
			continue
		}
		plan.Unchanged = append(plan.Unchanged, pkg)
		if pkg.Version != "" && installed.Version != "" && !version.Equal(pkg.Version, installed.Version) {
			plan.Drift = append(plan.Drift, DriftEntry{
				Name:      pkg.Name,
				Declared:  pkg.Version,
				Installed: installed.Version,
			})
		}
	}
	for _, pkg := range observed.Packages {
		if _, ok := wantedIdx[pkg.Name]; !ok {
			plan.ToRemove = append(plan.ToRemove, pkg)
		}
	}
	return plan
}

// Empty reports whether the plan requires no action.
func (p *Plan) Empty() bool {
	return len(p.ToInstall) == 0 && len(p.ToRemove) == 0
}

// CheckBootstrap verifies no AUR-sourced package is planned for
// install on the bootstrap path. All offending records are collected
// into a single BootstrapError so the caller sees the full list at
// once. A continue-on-error policy downgrades the violation to
// per-item failures at execution time.
func (p *Plan) CheckBootstrap(continueOnError bool) error {
	if continueOnError {
		return nil
	}
	var names []string
	for _, pkg := range p.ToInstall {
		if pkg.AUR {
			names = append(names, pkg.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return &BootstrapError{Names: names}
}

// BootstrapError aggregates every AUR-sourced package that the
// bootstrap backend cannot install.
type BootstrapError struct {
	Names []string
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("bootstrap cannot install AUR packages: %s", strings.Join(e.Names, ", "))
}

func (e *BootstrapError) Unwrap() error {
	return ErrUnsupportedBootstrapPackage
}
