/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package diagnose

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML shape of an external rule table:
//
//	rules:
//	  - name: missing node module
//	    marker: "Cannot find module"
type ruleFile struct {
	Rules []struct {
		Name   string `yaml:"name"`
		Marker string `yaml:"marker"`
	} `yaml:"rules"`
}

// LoadRules reads extra marker rules from a YAML file. Each entry extracts
// a missing dependency the same way the built-in marker rule does. Callers
// append the result via WithRules, keeping built-in precedence.
func LoadRules(path string) ([]Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule file: %w", err)
	}

	var rf ruleFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return nil, fmt.Errorf("parsing rule file %s: %w", path, err)
	}

	rules := make([]Rule, 0, len(rf.Rules))
	for i, r := range rf.Rules {
		if r.Marker == "" {
			return nil, fmt.Errorf("rule %d (%q) in %s: marker must not be empty", i, r.Name, path)
		}
		name := r.Name
		if name == "" {
			name = r.Marker
		}
		rules = append(rules, MarkerRule(name, r.Marker))
	}
	return rules, nil
}
