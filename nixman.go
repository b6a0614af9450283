// nixman.go
package nixman

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/nixman/nixman/pkg/backend"
	"github.com/nixman/nixman/pkg/pkglist"
	"github.com/nixman/nixman/pkg/reconcile"
)

// Re-export core types for convenience
type (
	BackendType = backend.BackendType
	Package     = pkglist.Package
	List        = pkglist.List
	Plan        = reconcile.Plan
	Outcome     = reconcile.Outcome
	ItemResult  = reconcile.ItemResult
)

// Re-export backend constants
const (
	BackendPacman = backend.BackendPacman
	BackendParu   = backend.BackendParu
)

// Config holds nixman configuration
type Config struct {
	// StorePath is the package list location; empty resolves the
	// XDG default
	StorePath string

	// Backend selects the package manager for the whole invocation
	Backend backend.BackendType

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger

	// Runner overrides subprocess invocation (used by tests)
	Runner backend.Runner
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		StorePath: pkglist.DefaultPath(),
		Backend:   backend.BackendPacman,
	}
}

// Manager ties the package list store, the selected backend and the
// reconciliation engine together. One Manager serves one invocation;
// it holds no state between runs beyond the on-disk list.
type Manager struct {
	store   *pkglist.Store
	backend backend.Backend
	config  *Config
	logger  *log.Logger
}

// NewManager creates a manager for the configured backend.
func NewManager(config *Config) (*Manager, error) {
	if config == nil {
		config = DefaultConfig()
	}

	logger := config.Logger
	if logger == nil {
		if config.Debug {
			logger = log.New(os.Stdout, "[nixman] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	b, err := backend.Select(config.Backend, config.Runner)
	if err != nil {
		return nil, err
	}

	return &Manager{
		store:   pkglist.NewStore(config.StorePath),
		backend: b,
		config:  config,
		logger:  logger,
	}, nil
}

// EnsureStore idempotently creates the package list file, reporting
// whether it had to be created.
func (m *Manager) EnsureStore() (bool, error) {
	return m.store.Ensure()
}

// StorePath returns the resolved package list location.
func (m *Manager) StorePath() string {
	return m.store.Path
}

// Backend returns the name of the active backend.
func (m *Manager) Backend() string {
	return m.backend.Name()
}

// Freeze captures the installed state and overwrites the persisted
// list with it. When versioned is false the recorded entries carry no
// version, leaving future installs unpinned. Returns the number of
// packages written.
func (m *Manager) Freeze(ctx context.Context, versioned bool) (int, error) {
	observed, err := reconcile.Capture(ctx, m.backend)
	if err != nil {
		return 0, &Error{Op: "freeze", Err: err}
	}
	if !versioned {
		for i := range observed.Packages {
			observed.Packages[i].Version = ""
		}
	}
	if err := m.store.Save(observed); err != nil {
		return 0, &Error{Op: "freeze", Err: err}
	}
	m.logger.Printf("froze %d packages to %s", len(observed.Packages), m.store.Path)
	return len(observed.Packages), nil
}

// ApplyOptions controls a reconciliation run.
type ApplyOptions struct {
	// ContinueOnError keeps applying after per-item failures
	ContinueOnError bool

	// Bootstrap provisions BootstrapRoot from scratch instead of
	// diffing against the running system
	Bootstrap     bool
	BootstrapRoot string
}

// Plan computes the reconciliation plan without applying it.
func (m *Manager) Plan(ctx context.Context, bootstrap bool) (*reconcile.Plan, error) {
	desired, err := m.store.Load()
	if err != nil {
		return nil, &Error{Op: "plan", Err: err}
	}

	// A bootstrap target has no package database to diff against:
	// observed state is empty and the whole list installs.
	var observed pkglist.List
	if !bootstrap {
		observed, err = reconcile.Capture(ctx, m.backend)
		if err != nil {
			return nil, &Error{Op: "plan", Err: err}
		}
	}
	return reconcile.Build(desired, observed), nil
}

// Apply reconciles the system against the persisted list.
func (m *Manager) Apply(ctx context.Context, opts ApplyOptions) (*reconcile.Plan, *reconcile.Outcome, error) {
	plan, err := m.Plan(ctx, opts.Bootstrap)
	if err != nil {
		return nil, nil, err
	}

	executor := reconcile.NewExecutor(m.backend, m.store, m.logger)
	outcome, err := executor.Execute(ctx, plan, reconcile.Policy{
		ContinueOnError: opts.ContinueOnError,
		Bootstrap:       opts.Bootstrap,
		BootstrapRoot:   opts.BootstrapRoot,
	})
	if err != nil {
		return plan, nil, &Error{Op: "apply", Err: err}
	}
	return plan, outcome, nil
}

// Update performs a full-system update through the backend and then
// re-freezes the list with the resulting versions.
func (m *Manager) Update(ctx context.Context) (int, error) {
	if err := m.backend.Available(); err != nil {
		return 0, &Error{Op: "update", Err: err}
	}
	if err := m.backend.Update(ctx); err != nil {
		return 0, &Error{Op: "update", Err: err}
	}
	return m.Freeze(ctx, true)
}

// Install parses and installs single-package CLI specs of the form
// "<name> [<version>]", syncing each success back to the list.
func (m *Manager) Install(ctx context.Context, specs []string) (*reconcile.Outcome, error) {
	aur := m.config.Backend == backend.BackendParu
	plan := &reconcile.Plan{}
	for _, spec := range specs {
		pkg, err := pkglist.ParseSpec(spec, aur)
		if err != nil {
			return nil, &Error{Op: "install", Package: spec, Err: err}
		}
		plan.ToInstall = append(plan.ToInstall, pkg)
	}

	executor := reconcile.NewExecutor(m.backend, m.store, m.logger)
	return executor.Execute(ctx, plan, reconcile.Policy{})
}

// Remove removes the named packages, syncing each success back to
// the list.
func (m *Manager) Remove(ctx context.Context, names []string) (*reconcile.Outcome, error) {
	plan := &reconcile.Plan{}
	for _, name := range names {
		pkg, err := pkglist.ParseSpec(name, false)
		if err != nil {
			return nil, &Error{Op: "remove", Package: name, Err: err}
		}
		plan.ToRemove = append(plan.ToRemove, pkg)
	}

	executor := reconcile.NewExecutor(m.backend, m.store, m.logger)
	return executor.Execute(ctx, plan, reconcile.Policy{})
}
