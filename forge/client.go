/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package forge

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// Client talks to the GitHub API on behalf of a single workflow run. It is
// both the log source and the reporting sink of the pipeline.
type Client struct {
	gh       *github.Client
	download *http.Client

	owner string
	repo  string
	runID int64
}

// Option configures a Client.
type Option func(*Client)

// WithGitHubClient overrides the API client, e.g. to point at a test server.
func WithGitHubClient(gh *github.Client) Option {
	return func(c *Client) {
		c.gh = gh
	}
}

// WithDownloadClient overrides the HTTP client used to fetch the log
// archive from its signed URL.
func WithDownloadClient(hc *http.Client) Option {
	return func(c *Client) {
		c.download = hc
	}
}

// New builds a Client for repo (in "owner/name" form) and the given run,
// authenticating API calls with token.
func New(ctx context.Context, token, repo string, runID int64, opts ...Option) (*Client, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return nil, fmt.Errorf("repository %q is not in owner/name form", repo)
	}

	c := &Client{
		owner:    owner,
		repo:     name,
		runID:    runID,
		download: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.gh == nil {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		c.gh = github.NewClient(oauth2.NewClient(ctx, ts))
	}
	return c, nil
}
