// pkg/pkglist/types.go
package pkglist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedEntry indicates a package entry is missing its name
	ErrMalformedEntry = errors.New("malformed package entry")

	// ErrInvalidFormat indicates the package list has an unexpected structure
	ErrInvalidFormat = errors.New("invalid package list format")
)

// Package represents a single desired or observed package.
// Identity is the name alone; the version is record-keeping only.
type Package struct {
	Name    string
	Version string

	// AUR marks a package as sourced from the AUR. It only influences
	// which backend may handle the package; it is never serialized and
	// never part of identity.
	AUR bool
}

// ParseSpec parses the single-package CLI form "<name> [<version>]".
// The aur flag marks the result as AUR-sourced.
func ParseSpec(spec string, aur bool) (Package, error) {
	spec = strings.TrimSpace(spec)
	name, version := spec, ""
	if idx := strings.IndexByte(spec, ' '); idx != -1 {
		name = spec[:idx]
		version = strings.TrimSpace(spec[idx+1:])
	}
	if name == "" {
		return Package{}, fmt.Errorf("%w: empty package name", ErrMalformedEntry)
	}
	return Package{Name: name, Version: version, AUR: aur}, nil
}

// List is an ordered collection of packages with unique names.
// Order reflects file order on the desired side and is preserved
// across serialization.
type List struct {
	Packages []Package
}

// Index returns a name-keyed lookup of the list.
func (l *List) Index() map[string]Package {
	idx := make(map[string]Package, len(l.Packages))
	for _, p := range l.Packages {
		idx[p.Name] = p
	}
	return idx
}

// Get returns the package with the given name, if present.
func (l *List) Get(name string) (Package, bool) {
	for _, p := range l.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return Package{}, false
}

// Set adds pkg to the list, replacing any existing record with the
// same name in place. New packages are appended.
func (l *List) Set(pkg Package) {
	for i, p := range l.Packages {
		if p.Name == pkg.Name {
			l.Packages[i] = pkg
			return
		}
	}
	l.Packages = append(l.Packages, pkg)
}

// Remove deletes the record with the given name. Removing an absent
// name is a no-op.
func (l *List) Remove(name string) {
	for i, p := range l.Packages {
		if p.Name == name {
			l.Packages = append(l.Packages[:i], l.Packages[i+1:]...)
			return
		}
	}
}

// Names returns the package names in list order.
func (l *List) Names() []string {
	names := make([]string, len(l.Packages))
	for i, p := range l.Packages {
		names[i] = p.Name
	}
	return names
}

// Dedupe collapses duplicate names last-write-wins. The surviving
// record keeps the position of the first occurrence so the file
// ordering stays stable across rewrites.
func Dedupe(pkgs []Package) []Package {
	out := make([]Package, 0, len(pkgs))
	pos := make(map[string]int, len(pkgs))
	for _, p := range pkgs {
		if i, ok := pos[p.Name]; ok {
			out[i] = p
			continue
		}
		pos[p.Name] = len(out)
		out = append(out, p)
	}
	return out
}
