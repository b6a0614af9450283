package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nixman/nixman/pkg/backend"
	"github.com/nixman/nixman/pkg/pkglist"
)

// fakeBackend scripts backend behavior for engine tests.
type fakeBackend struct {
	availErr   error
	listOut    []byte
	listErr    error
	installErr map[string]error
	removeErr  map[string]error

	installed    []string
	removed      []string
	bootstrapped []string
	roots        []string
}

func (b *fakeBackend) Name() string     { return "fake" }
func (b *fakeBackend) Available() error { return b.availErr }

func (b *fakeBackend) ListExplicit(ctx context.Context) ([]byte, error) {
	return b.listOut, b.listErr
}

func (b *fakeBackend) Install(ctx context.Context, pkgs []string) error {
	b.installed = append(b.installed, pkgs...)
	for _, p := range pkgs {
		if err := b.installErr[p]; err != nil {
			return err
		}
	}
	return nil
}

func (b *fakeBackend) Remove(ctx context.Context, pkgs []string) error {
	b.removed = append(b.removed, pkgs...)
	for _, p := range pkgs {
		if err := b.removeErr[p]; err != nil {
			return err
		}
	}
	return nil
}

func (b *fakeBackend) Update(ctx context.Context) error { return nil }

func (b *fakeBackend) Bootstrap(ctx context.Context, root string, pkgs []string) error {
	b.bootstrapped = append(b.bootstrapped, pkgs...)
	b.roots = append(b.roots, root)
	for _, p := range pkgs {
		if err := b.installErr[p]; err != nil {
			return err
		}
	}
	return nil
}

func TestParseExplicit(t *testing.T) {
	out := []byte("htop 3.2.2-1\ngit 2.44.0-1\n\nlinux 1:6.8.1-2\n")

	list := ParseExplicit(out)
	require.Len(t, list.Packages, 3)
	assert.Equal(t, pkglist.Package{Name: "htop", Version: "3.2.2-1"}, list.Packages[0])
	assert.Equal(t, pkglist.Package{Name: "git", Version: "2.44.0-1"}, list.Packages[1])
	assert.Equal(t, pkglist.Package{Name: "linux", Version: "1:6.8.1-2"}, list.Packages[2])
}

func TestParseExplicitEmpty(t *testing.T) {
	assert.Empty(t, ParseExplicit(nil).Packages)
	assert.Empty(t, ParseExplicit([]byte("\n\n")).Packages)
}

func TestCapture(t *testing.T) {
	b := &fakeBackend{listOut: []byte("htop 3.2.2-1\n")}

	list, err := Capture(context.Background(), b)
	require.NoError(t, err)
	require.Len(t, list.Packages, 1)
	// Observed records always carry a version
	assert.Equal(t, "3.2.2-1", list.Packages[0].Version)
}

func TestCaptureBackendUnavailable(t *testing.T) {
	b := &fakeBackend{availErr: backend.ErrBackendUnavailable}

	_, err := Capture(context.Background(), b)
	require.ErrorIs(t, err, backend.ErrBackendUnavailable)
}

func TestCaptureFailed(t *testing.T) {
	b := &fakeBackend{listErr: errors.New("exit status 1")}

	_, err := Capture(context.Background(), b)
	require.ErrorIs(t, err, ErrCaptureFailed)
}
