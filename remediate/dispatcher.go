/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package remediate

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"cijanitor/diagnose"
)

// DependencyPatcher applies a single dependency addition to the project
// manifest. Implementations must be idempotent and report whether a write
// actually occurred.
type DependencyPatcher interface {
	Add(name string) (added bool, err error)
	Path() string
}

// ReportSink delivers a rendered report body to wherever humans review it.
type ReportSink interface {
	PostRunComment(ctx context.Context, body string) error
}

// Outcome is the dispatcher's result for one diagnosis.
type Outcome struct {
	// Applied is true when a remediation was dispatched, whether or not the
	// manifest needed a write. False means the diagnosis was not actionable.
	Applied bool
	// Report is the rendered report body, set only when Applied.
	Report string
}

// Dispatcher translates a diagnosis into a side effect and a report.
type Dispatcher struct {
	patcher DependencyPatcher
	sink    ReportSink
}

// NewDispatcher wires a Dispatcher to its patch and report collaborators.
func NewDispatcher(patcher DependencyPatcher, sink ReportSink) *Dispatcher {
	return &Dispatcher{patcher: patcher, sink: sink}
}

// Act applies the remediation mapped to diag.
//
// For a missing dependency the manifest is patched first; only after the
// patch succeeds (or cleanly no-ops as a duplicate) is the report sent, so
// an "Applied" outcome never claims a patch that did not happen. A sink
// delivery failure is logged as a warning and does not undo the patch.
// Unknown diagnoses mutate nothing, report nothing, and return a skipped
// outcome.
func (d *Dispatcher) Act(ctx context.Context, diag diagnose.Diagnosis) (Outcome, error) {
	log := clog.FromContext(ctx)

	switch diag.Kind {
	case diagnose.KindMissingDependency:
		added, err := d.patcher.Add(diag.Dependency)
		if err != nil {
			return Outcome{}, fmt.Errorf("patching manifest: %w", err)
		}

		report := Report{
			Dependency: diag.Dependency,
			Manifest:   d.patcher.Path(),
			Written:    added,
		}
		body := report.Markdown()
		if err := d.sink.PostRunComment(ctx, body); err != nil {
			log.Warnf("Report delivery failed, patch is kept: %v", err)
		}

		log.Infof("Proposed fix for missing dependency: %s", diag.Dependency)
		return Outcome{Applied: true, Report: body}, nil

	default:
		log.Info("No fixable CI failure detected")
		return Outcome{}, nil
	}
}
