/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package remediate

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Report describes one proposed remediation for human review. It is
// rendered once and handed to the reporting sink in a single call.
type Report struct {
	// Dependency is the name the manifest was patched with.
	Dependency string
	// Manifest is the path of the patched file.
	Manifest string
	// Written is false when the dependency was already declared and the
	// patch was a no-op.
	Written bool
}

// Markdown renders the report body posted to the pull request.
func (r Report) Markdown() string {
	fix := fmt.Sprintf("Added `%s` to `%s`", r.Dependency, r.Manifest)
	patchResult := "applied"
	if !r.Written {
		fix = fmt.Sprintf("`%s` is already declared in `%s`; no change needed", r.Dependency, r.Manifest)
		patchResult = "no-op (already declared)"
	}

	var sb strings.Builder
	sb.WriteString("🤖 **CI Janitor Report**\n\n")
	sb.WriteString("**Error Detected**\n")
	fmt.Fprintf(&sb, "- Missing dependency: `%s`\n\n", r.Dependency)
	sb.WriteString("**Root Cause**\n")
	fmt.Fprintf(&sb, "- Dependency not listed in `%s`\n\n", r.Manifest)
	sb.WriteString("**Proposed Fix**\n")
	fmt.Fprintf(&sb, "- %s\n\n", fix)
	sb.WriteString("**Status**\n\n")

	table := markdownTable([]string{"Step", "Result"}, &sb)
	_ = table.Append([]string{"Diagnosis", fmt.Sprintf("missing dependency `%s`", r.Dependency)})
	_ = table.Append([]string{"Manifest patch", patchResult})
	_ = table.Append([]string{"Approval", "awaiting human approval before merge"})
	_ = table.Render()

	return sb.String()
}

// markdownTable creates a table writer that renders GitHub-flavored
// markdown tables for comment bodies.
func markdownTable(headers []string, w io.Writer) *tablewriter.Table {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.Off},
	}
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader(headers),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
}
