/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package forge

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxLogRedirects bounds the redirect chase when resolving the archive URL.
const maxLogRedirects = 4

// RunLogs downloads the run's log archive and returns the concatenated text
// of every entry, in archive order. Failure to locate, download, or decode
// the archive is an error; a missing run never yields an empty string.
func (c *Client) RunLogs(ctx context.Context) (string, error) {
	logURL, _, err := c.gh.Actions.GetWorkflowRunLogs(ctx, c.owner, c.repo, c.runID, maxLogRedirects)
	if err != nil {
		return "", fmt.Errorf("resolving logs for run %d: %w", c.runID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("building archive request: %w", err)
	}
	resp, err := c.download.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading log archive: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading log archive: unexpected status %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading log archive: %w", err)
	}
	return decodeArchive(raw)
}

// decodeArchive concatenates every entry of the zipped log archive.
func decodeArchive(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("decoding log archive: %w", err)
	}

	var sb strings.Builder
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening log entry %s: %w", f.Name, err)
		}
		_, err = io.Copy(&sb, rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("reading log entry %s: %w", f.Name, err)
		}
	}
	return sb.String(), nil
}
