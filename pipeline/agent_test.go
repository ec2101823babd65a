/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cijanitor/diagnose"
	"cijanitor/manifest"
	"cijanitor/remediate"
)

type staticSource struct {
	logs string
	err  error
}

func (s *staticSource) RunLogs(context.Context) (string, error) {
	return s.logs, s.err
}

type recordingSink struct {
	bodies []string
}

func (r *recordingSink) PostRunComment(_ context.Context, body string) error {
	r.bodies = append(r.bodies, body)
	return nil
}

func newAgent(t *testing.T, logs, manifestContent string) (*Agent, string, *recordingSink) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(path, []byte(manifestContent), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}

	sink := &recordingSink{}
	agent := New(
		&staticSource{logs: logs},
		diagnose.New(),
		remediate.NewDispatcher(manifest.NewPatcher(path), sink),
	)
	return agent, path, sink
}

func TestRunAppliesMissingDependencyFix(t *testing.T) {
	logs := strings.Join([]string{
		"Run python -m pytest",
		"Traceback (most recent call last):",
		"ModuleNotFoundError: No module named 'yaml'",
		"Error: Process completed with exit code 1.",
	}, "\n")

	agent, path, sink := newAgent(t, logs, "requests\n")

	outcome, err := agent.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !outcome.Applied {
		t.Fatal("Run() did not apply a remediation")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	if got, want := string(raw), "requests\n\nyaml\n"; got != want {
		t.Errorf("manifest = %q, want %q", got, want)
	}

	if len(sink.bodies) != 1 {
		t.Fatalf("sink received %d reports, want 1", len(sink.bodies))
	}
	if !strings.Contains(sink.bodies[0], "`yaml`") {
		t.Errorf("report missing `yaml`:\n%s", sink.bodies[0])
	}
}

func TestRunUnrecognizedFailureIsNoOp(t *testing.T) {
	logs := "Run python -m pytest\nassert 1 == 2\nFAILED tests/test_math.py\n"
	agent, path, sink := newAgent(t, logs, "requests\n")

	outcome, err := agent.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if outcome.Applied {
		t.Error("Run() applied a remediation for an unrecognized failure")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	if got, want := string(raw), "requests\n"; got != want {
		t.Errorf("manifest = %q, want untouched %q", got, want)
	}
	if len(sink.bodies) != 0 {
		t.Errorf("sink received %d reports, want 0", len(sink.bodies))
	}
}

func TestRunRetrievalFailureIsFatal(t *testing.T) {
	sink := &recordingSink{}
	agent := New(
		&staticSource{err: errors.New("archive not found")},
		diagnose.New(),
		remediate.NewDispatcher(manifest.NewPatcher(filepath.Join(t.TempDir(), "requirements.txt")), sink),
	)

	if _, err := agent.Run(context.Background()); err == nil {
		t.Fatal("Run() succeeded despite retrieval failure")
	}
	if len(sink.bodies) != 0 {
		t.Error("a report was sent despite retrieval failure")
	}
}

// The patch-then-report ordering: a manifest that cannot be patched fails
// the run before anything reaches the sink.
func TestRunPatchFailureIsFatal(t *testing.T) {
	sink := &recordingSink{}
	agent := New(
		&staticSource{logs: "ModuleNotFoundError: No module named 'yaml'\n"},
		diagnose.New(),
		remediate.NewDispatcher(manifest.NewPatcher(filepath.Join(t.TempDir(), "absent.txt")), sink),
	)

	if _, err := agent.Run(context.Background()); err == nil {
		t.Fatal("Run() succeeded despite patch failure")
	}
	if len(sink.bodies) != 0 {
		t.Error("a report was sent despite patch failure")
	}
}
