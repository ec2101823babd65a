/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package forge

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/google/go-github/v84/github"
)

// PostRunComment posts body as a comment on the pull request associated
// with the run. A run with no associated pull request is expected and
// non-fatal: it is logged and the call succeeds without posting.
func (c *Client) PostRunComment(ctx context.Context, body string) error {
	run, _, err := c.gh.Actions.GetWorkflowRunByID(ctx, c.owner, c.repo, c.runID)
	if err != nil {
		return fmt.Errorf("fetching run %d: %w", c.runID, err)
	}

	if len(run.PullRequests) == 0 {
		clog.FromContext(ctx).Infof("No pull request associated with run %d, skipping report", c.runID)
		return nil
	}

	number := run.PullRequests[0].GetNumber()
	if _, _, err := c.gh.Issues.CreateComment(ctx, c.owner, c.repo, number, &github.IssueComment{
		Body: github.Ptr(body),
	}); err != nil {
		return fmt.Errorf("posting comment on #%d: %w", number, err)
	}
	return nil
}
