package reconcile

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixman/nixman/pkg/pkglist"
)

func names(pkgs []pkglist.Package) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.Name
	}
	return out
}

func TestBuildScenario(t *testing.T) {
	desired := pkglist.List{Packages: []pkglist.Package{
		{Name: "htop", Version: "3.2.2-1"},
		{Name: "git"},
	}}
	observed := pkglist.List{Packages: []pkglist.Package{
		{Name: "htop", Version: "3.2.2-1"},
		{Name: "neovim", Version: "0.9.5-2"},
	}}

	plan := Build(desired, observed)
	assert.Equal(t, []string{"git"}, names(plan.ToInstall))
	assert.Equal(t, []string{"neovim"}, names(plan.ToRemove))
	assert.Equal(t, []string{"htop"}, names(plan.Unchanged))
	assert.Empty(t, plan.Drift)
}

func TestBuildIdempotent(t *testing.T) {
	list := pkglist.List{Packages: []pkglist.Package{
		{Name: "htop", Version: "3.2.2-1"},
		{Name: "git", Version: "2.44.0-1"},
	}}

	plan := Build(list, list)
	assert.True(t, plan.Empty())
	assert.Len(t, plan.Unchanged, 2)
}

func TestBuildPartition(t *testing.T) {
	tests := []struct {
		name     string
		desired  []pkglist.Package
		observed []pkglist.Package
	}{
		{
			name:     "disjoint",
			desired:  []pkglist.Package{{Name: "a"}, {Name: "b"}},
			observed: []pkglist.Package{{Name: "c"}, {Name: "d"}},
		},
		{
			name:     "overlapping",
			desired:  []pkglist.Package{{Name: "a"}, {Name: "b"}, {Name: "c"}},
			observed: []pkglist.Package{{Name: "b"}, {Name: "c"}, {Name: "d"}},
		},
		{
			name:    "observed empty",
			desired: []pkglist.Package{{Name: "a"}},
		},
		{
			name:     "desired empty",
			observed: []pkglist.Package{{Name: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Build(pkglist.List{Packages: tt.desired}, pkglist.List{Packages: tt.observed})

			union := map[string]bool{}
			for _, p := range tt.desired {
				union[p.Name] = true
			}
			for _, p := range tt.observed {
				union[p.Name] = true
			}

			var got []string
			got = append(got, names(plan.ToInstall)...)
			got = append(got, names(plan.ToRemove)...)
			got = append(got, names(plan.Unchanged)...)

			// Pairwise disjoint: no name may appear twice
			seen := map[string]bool{}
			for _, n := range got {
				assert.False(t, seen[n], "name %s classified twice", n)
				seen[n] = true
			}

			// The three classes cover the union of names exactly
			var want []string
			for n := range union {
				want = append(want, n)
			}
			sort.Strings(want)
			sort.Strings(got)
			assert.Equal(t, want, got)
		})
	}
}

func TestBuildCollapsesDuplicates(t *testing.T) {
	desired := pkglist.List{Packages: []pkglist.Package{
		{Name: "htop", Version: "3.2.2-1"},
		{Name: "htop", Version: "3.3.0-2"},
	}}

	plan := Build(desired, pkglist.List{})
	require.Len(t, plan.ToInstall, 1)
	assert.Equal(t, "3.3.0-2", plan.ToInstall[0].Version)
}

func TestBuildPreservesDesiredOrder(t *testing.T) {
	desired := pkglist.List{Packages: []pkglist.Package{
		{Name: "zsh"},
		{Name: "base"},
		{Name: "git"},
	}}

	plan := Build(desired, pkglist.List{})
	assert.Equal(t, []string{"zsh", "base", "git"}, names(plan.ToInstall))
}

func TestBuildDrift(t *testing.T) {
	desired := pkglist.List{Packages: []pkglist.Package{
		{Name: "htop", Version: "3.2.2-1"},
		{Name: "git"}, // unpinned, never drifts
		{Name: "jq", Version: "1.7-1"},
	}}
	observed := pkglist.List{Packages: []pkglist.Package{
		{Name: "htop", Version: "3.3.0-2"},
		{Name: "git", Version: "2.44.0-1"},
		{Name: "jq", Version: "1.7-1"},
	}}

	plan := Build(desired, observed)
	// Drift is a report only: nothing to install or remove
	assert.True(t, plan.Empty())
	require.Len(t, plan.Drift, 1)
	assert.Equal(t, DriftEntry{Name: "htop", Declared: "3.2.2-1", Installed: "3.3.0-2"}, plan.Drift[0])
}

func TestCheckBootstrap(t *testing.T) {
	plan := &Plan{ToInstall: []pkglist.Package{
		{Name: "base"},
		{Name: "paru-bin", AUR: true},
		{Name: "yay", AUR: true},
	}}

	err := plan.CheckBootstrap(false)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnsupportedBootstrapPackage)

	var bootErr *BootstrapError
	require.True(t, errors.As(err, &bootErr))
	// All offending records are collected, not just the first
	assert.Equal(t, []string{"paru-bin", "yay"}, bootErr.Names)

	// A continue-on-error policy downgrades the violation
	assert.NoError(t, plan.CheckBootstrap(true))

	// No AUR packages, no violation
	clean := &Plan{ToInstall: []pkglist.Package{{Name: "base"}}}
	assert.NoError(t, clean.CheckBootstrap(false))
}
