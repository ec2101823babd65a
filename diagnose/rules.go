/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package diagnose

import "strings"

// missingModuleMarker is what the Python interpreter prints when an import
// cannot be resolved, for both ModuleNotFoundError and legacy ImportError.
const missingModuleMarker = "No module named"

// Rule pairs a line predicate with an extractor. The engine scans every log
// line with Match and hands the last matching line to Extract. Extract may
// decline (ok=false) when the line carries no usable payload, in which case
// the engine falls through to the next rule.
type Rule struct {
	// Name identifies the rule in logs and rule files.
	Name string
	// Match reports whether a single log line triggers this rule.
	Match func(line string) bool
	// Extract builds the diagnosis from the last matched line.
	Extract func(line string) (Diagnosis, bool)
}

// DefaultRules returns the built-in rule table in match priority order.
func DefaultRules() []Rule {
	return []Rule{
		MarkerRule("missing module", missingModuleMarker),
	}
}

// MarkerRule builds a rule that triggers on lines containing marker and
// reads the dependency name as the text following the marker's last
// occurrence on that line: whitespace-trimmed, with a single layer of
// surrounding quotes removed.
func MarkerRule(name, marker string) Rule {
	return Rule{
		Name: name,
		Match: func(line string) bool {
			return strings.Contains(line, marker)
		},
		Extract: func(line string) (Diagnosis, bool) {
			idx := strings.LastIndex(line, marker)
			if idx < 0 {
				return Unknown(), false
			}
			dep := stripQuotes(strings.TrimSpace(line[idx+len(marker):]))
			if dep == "" {
				return Unknown(), false
			}
			return MissingDependency(dep), true
		},
	}
}

// stripQuotes removes one leading and one trailing quote character
// (single or double). Exactly one layer; nested quotes survive.
func stripQuotes(s string) string {
	if len(s) > 0 && (s[0] == '\'' || s[0] == '"') {
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '\'' || s[n-1] == '"') {
		s = s[:n-1]
	}
	return s
}

// Engine classifies log blobs with an ordered rule table.
type Engine struct {
	rules []Rule
}

// Option configures an Engine.
type Option func(*Engine)

// WithRules appends rules after the built-in table. Built-in rules keep
// match priority over appended ones.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) {
		e.rules = append(e.rules, rules...)
	}
}

// New constructs an Engine with the default rule table and any options.
func New(opts ...Option) *Engine {
	e := &Engine{rules: DefaultRules()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Diagnose classifies logs. It is total: input matching no rule yields the
// Unknown diagnosis, never an error. When a rule's marker appears on several
// lines only the last occurrence is reported; this is deliberate policy,
// pinned by tests.
func (e *Engine) Diagnose(logs string) Diagnosis {
	lines := strings.Split(logs, "\n")
	for _, rule := range e.rules {
		last := -1
		for i, line := range lines {
			if rule.Match(line) {
				last = i
			}
		}
		if last < 0 {
			continue
		}
		if d, ok := rule.Extract(lines[last]); ok {
			return d
		}
	}
	return Unknown()
}
