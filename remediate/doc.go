/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package remediate maps a diagnosis to a concrete fix and a human-readable
// report. The dispatcher runs two strictly ordered phases: mutate (patch the
// dependency manifest), then notify (hand the rendered report to the
// reporting sink). A patch failure aborts the invocation before anything is
// reported; a notification failure is downgraded to a warning and never
// rolls the patch back. Diagnoses without a mapped fix are no-ops.
package remediate
