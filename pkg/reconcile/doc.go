// Package reconcile computes and applies the difference between the
// declared package list and what is actually installed.
//
// Capture queries the live system through a backend, Build derives an
// ordered install/remove plan by name-keyed symmetric difference, and
// Executor applies the plan item by item with continue-on-error or
// abort-on-error semantics. Per-item failures are data carried in the
// Outcome, not errors: partial application is a supported result.
package reconcile
