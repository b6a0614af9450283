// pkg/reconcile/execute.go
package reconcile

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/nixman/nixman/pkg/backend"
)

// Action is the kind of plan item applied to one package
type Action string

const (
	ActionInstall Action = "install"
	ActionRemove  Action = "remove"
)

// Status summarizes how far plan execution got
type Status string

const (
	// StatusCompleted means every item succeeded
	StatusCompleted Status = "completed"
	// StatusPartiallyCompleted means execution finished with recorded failures
	StatusPartiallyCompleted Status = "partially-completed"
	// StatusAborted means execution stopped at the first failure
	StatusAborted Status = "aborted"
)

// Policy controls plan execution.
type Policy struct {
	// ContinueOnError records per-item failures and keeps going
	// instead of aborting at the first one.
	ContinueOnError bool

	// Bootstrap routes installs through the cold-start path onto
	// BootstrapRoot. Removals are skipped: a fresh target has nothing
	// to remove.
	Bootstrap     bool
	BootstrapRoot string
}

// ItemResult is the outcome of one plan item. A failed item carries
// its error; a succeeded item may still carry a sync-back warning
// when the persisted list could not be updated.
type ItemResult struct {
	Name        string
	Action      Action
	Err         error
	SyncWarning error
}

// Outcome reports plan execution. Per-item failures live here as
// data; only pre-execution violations surface as errors.
type Outcome struct {
	Status  Status
	Results []ItemResult
}

// Failed returns the results that carry an error.
func (o *Outcome) Failed() []ItemResult {
	var failed []ItemResult
	for _, r := range o.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// Succeeded returns the number of items that applied cleanly.
func (o *Outcome) Succeeded() int {
	n := 0
	for _, r := range o.Results {
		if r.Err == nil {
			n++
		}
	}
	return n
}

// Summary renders a one-line account of the outcome.
func (o *Outcome) Summary() string {
	return fmt.Sprintf("%s: %d succeeded, %d failed", o.Status, o.Succeeded(), len(o.Failed()))
}

// Recorder persists the desired list after each successful item so
// the on-disk state always reflects the last known-good intent.
// *pkglist.Store satisfies it.
type Recorder interface {
	RecordInstall(name, version string) error
	RecordRemove(name string) error
}

// Executor applies plans against a backend.
type Executor struct {
	backend  backend.Backend
	recorder Recorder
	logger   *log.Logger
}

// NewExecutor creates an executor. recorder may be nil to skip
// sync-back; logger may be nil to discard.
func NewExecutor(b backend.Backend, recorder Recorder, logger *log.Logger) *Executor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Executor{backend: b, recorder: recorder, logger: logger}
}

// Execute applies the plan strictly sequentially: installs first,
// then removals, so a replacement package is available before its
// predecessor disappears. Backend package managers are not safe for
// concurrent invocation against one database, so items never run in
// parallel.
func (e *Executor) Execute(ctx context.Context, plan *Plan, policy Policy) (*Outcome, error) {
	if policy.Bootstrap {
		if err := plan.CheckBootstrap(policy.ContinueOnError); err != nil {
			return nil, err
		}
	}

	outcome := &Outcome{}
	aborted := false

	for _, pkg := range plan.ToInstall {
		res := ItemResult{Name: pkg.Name, Action: ActionInstall}
		res.Err = e.install(ctx, pkg.Name, pkg.AUR, policy)
		if res.Err == nil && e.recorder != nil {
			if err := e.recorder.RecordInstall(pkg.Name, pkg.Version); err != nil {
				res.SyncWarning = err
				e.logger.Printf("warning: installed %s but could not update package list: %v", pkg.Name, err)
			}
		}
		outcome.Results = append(outcome.Results, res)
		if res.Err != nil {
			e.logger.Printf("install %s failed: %v", pkg.Name, res.Err)
			if !policy.ContinueOnError {
				aborted = true
				break
			}
		}
	}

	if !aborted && !policy.Bootstrap {
		for _, pkg := range plan.ToRemove {
			res := ItemResult{Name: pkg.Name, Action: ActionRemove}
			res.Err = e.backend.Remove(ctx, []string{pkg.Name})
			if res.Err == nil && e.recorder != nil {
				if err := e.recorder.RecordRemove(pkg.Name); err != nil {
					res.SyncWarning = err
					e.logger.Printf("warning: removed %s but could not update package list: %v", pkg.Name, err)
				}
			}
			outcome.Results = append(outcome.Results, res)
			if res.Err != nil {
				e.logger.Printf("remove %s failed: %v", pkg.Name, res.Err)
				if !policy.ContinueOnError {
					aborted = true
					break
				}
			}
		}
	}

	switch {
	case aborted:
		outcome.Status = StatusAborted
	case len(outcome.Failed()) > 0:
		outcome.Status = StatusPartiallyCompleted
	default:
		outcome.Status = StatusCompleted
	}
	return outcome, nil
}

// install routes one package through the normal or bootstrap path.
// Under bootstrap with continue-on-error, AUR packages are recorded
// as failures without invoking the backend at all.
func (e *Executor) install(ctx context.Context, name string, aur bool, policy Policy) error {
	if policy.Bootstrap {
		if aur {
			return fmt.Errorf("%w: %s", ErrUnsupportedBootstrapPackage, name)
		}
		return e.backend.Bootstrap(ctx, policy.BootstrapRoot, []string{name})
	}
	return e.backend.Install(ctx, []string{name})
}
