/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package manifest patches a newline-delimited dependency manifest, adding
// one dependency per call. The file is externally owned: each Add performs
// a fresh read-check-write with no cached state and no locking.
package manifest

import (
	"fmt"
	"os"
	"strings"
)

// MatchPolicy selects how Add decides a dependency is already declared.
type MatchPolicy int

const (
	// MatchSubstring treats the dependency as present when its name occurs
	// anywhere in the current content, including inside unrelated lines.
	// A name like "yaml" is considered declared by a line "ruamel.yaml".
	MatchSubstring MatchPolicy = iota
	// MatchExactLine treats the dependency as present only when some
	// whitespace-trimmed line equals the name.
	MatchExactLine
)

// Patcher appends dependency names to a manifest file. Add is idempotent
// under the configured match policy: repeated calls with the same name
// leave exactly one entry.
type Patcher struct {
	path   string
	policy MatchPolicy
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithMatchPolicy overrides the default MatchSubstring presence check.
func WithMatchPolicy(p MatchPolicy) Option {
	return func(pt *Patcher) {
		pt.policy = p
	}
}

// NewPatcher returns a Patcher for the manifest at path.
func NewPatcher(path string, opts ...Option) *Patcher {
	p := &Patcher{path: path, policy: MatchSubstring}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Path returns the manifest location this Patcher writes to.
func (p *Patcher) Path() string {
	return p.path
}

// Add appends name as a new line unless it is already present under the
// match policy, reporting whether a write occurred. The manifest must
// already exist; an unreadable or unwritable file is an error and no
// partial write is left behind.
func (p *Patcher) Add(name string) (bool, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		return false, fmt.Errorf("reading manifest %s: %w", p.path, err)
	}

	if p.present(string(raw), name) {
		return false, nil
	}

	out := string(raw) + "\n" + name + "\n"
	if err := os.WriteFile(p.path, []byte(out), 0o644); err != nil {
		return false, fmt.Errorf("writing manifest %s: %w", p.path, err)
	}
	return true, nil
}

func (p *Patcher) present(content, name string) bool {
	if p.policy == MatchExactLine {
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) == name {
				return true
			}
		}
		return false
	}
	return strings.Contains(content, name)
}
