/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package forge adapts the GitHub API to the two transport seams the agent
// needs for a single workflow run: fetching the run's log archive (log
// source) and posting a report on the run's pull request (reporting sink).
//
// The adapter holds no decision logic. It is constructed once per
// invocation with an explicit token, repository, and run identifier; no
// configuration is read ambiently.
package forge
