/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package diagnose

// Kind identifies the class of failure a Diagnosis describes.
type Kind string

const (
	// KindUnknown is the catch-all for runs matching no rule.
	KindUnknown Kind = "unknown"
	// KindMissingDependency marks an import failure caused by a dependency
	// that is not declared in the project manifest.
	KindMissingDependency Kind = "missing_dependency"
)

// Diagnosis is the engine's classification of a failed run. It is consumed
// exactly once by the remediation dispatcher and never persisted.
//
// Dependency is set only when Kind is KindMissingDependency, and is never
// empty, quoted, or padded with whitespace.
type Diagnosis struct {
	Kind       Kind
	Dependency string
}

// Unknown returns the catch-all diagnosis.
func Unknown() Diagnosis {
	return Diagnosis{Kind: KindUnknown}
}

// MissingDependency returns a diagnosis for an undeclared dependency.
func MissingDependency(name string) Diagnosis {
	return Diagnosis{Kind: KindMissingDependency, Dependency: name}
}
