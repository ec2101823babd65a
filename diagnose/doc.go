/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package diagnose classifies the log text of a failed CI run into a typed
// Diagnosis. The engine is an ordered table of rules, each pairing a
// line predicate with an extractor; the first rule that matches any line
// wins, and within a rule the last matching line supplies the extraction.
//
// Classification is a total function with no side effects: input that
// matches no rule yields KindUnknown, never an error. New failure classes
// are added by appending rules, without touching existing ones.
//
// # Basic Usage
//
//	engine := diagnose.New()
//	switch d := engine.Diagnose(logs); d.Kind {
//	case diagnose.KindMissingDependency:
//	    fmt.Println("undeclared dependency:", d.Dependency)
//	case diagnose.KindUnknown:
//	    fmt.Println("no recognizable failure")
//	}
//
// Extra marker rules can be loaded from a YAML file with LoadRules and
// appended via WithRules; loaded rules rank after the built-ins.
package diagnose
