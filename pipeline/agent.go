/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package pipeline composes the agent's three stages into a strict,
// feedback-free sequence: log source, diagnosis engine, remediation
// dispatcher. One invocation handles exactly one CI run, synchronously,
// and either runs to completion or fails outright.
package pipeline

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"

	"cijanitor/diagnose"
	"cijanitor/remediate"
)

// LogSource supplies the full text of a CI run's logs as a single string.
// Implementations must return an error, not an empty string, when the run
// cannot be found or its archive cannot be decoded.
type LogSource interface {
	RunLogs(ctx context.Context) (string, error)
}

// Agent is the composed pipeline for one diagnostic decision.
type Agent struct {
	source     LogSource
	engine     *diagnose.Engine
	dispatcher *remediate.Dispatcher
}

// New composes an Agent from its three stages.
func New(source LogSource, engine *diagnose.Engine, dispatcher *remediate.Dispatcher) *Agent {
	return &Agent{
		source:     source,
		engine:     engine,
		dispatcher: dispatcher,
	}
}

// Run executes one end-to-end invocation. A retrieval failure is fatal and
// no diagnosis is attempted. The dispatcher's outcome is returned alongside
// any fatal dispatch error.
func (a *Agent) Run(ctx context.Context) (remediate.Outcome, error) {
	log := clog.FromContext(ctx)

	logs, err := a.source.RunLogs(ctx)
	if err != nil {
		return remediate.Outcome{}, fmt.Errorf("retrieving run logs: %w", err)
	}
	log.Infof("Retrieved %d bytes of run logs", len(logs))

	diag := a.engine.Diagnose(logs)
	log.With("kind", diag.Kind).Info("Diagnosis complete")

	outcome, err := a.dispatcher.Act(ctx, diag)
	if err != nil {
		return remediate.Outcome{}, fmt.Errorf("dispatching remediation: %w", err)
	}
	return outcome, nil
}
