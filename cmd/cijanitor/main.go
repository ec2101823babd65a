/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// cijanitor is a single-shot CI remediation agent. Given a failed GitHub
// Actions run it fetches the run's logs, classifies the failure against a
// small table of known patterns, patches the dependency manifest when a
// pattern matches, and reports the proposed fix as a pull-request comment
// pending human approval. One diagnostic decision per invocation; the
// process exits 0 on completion and non-zero on unhandled failure.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"cijanitor/diagnose"
	"cijanitor/forge"
	"cijanitor/manifest"
	"cijanitor/pipeline"
	"cijanitor/remediate"
)

type config struct {
	// GitHubToken authenticates every forge API call.
	GitHubToken string `env:"GITHUB_TOKEN,required"`
	// Repo is the repository the failed run belongs to, in owner/name form.
	Repo string `env:"REPO,required"`
	// RunID identifies the failed workflow run.
	RunID int64 `env:"RUN_ID,required"`

	// ManifestPath is the dependency manifest patched by remediations.
	ManifestPath string `env:"MANIFEST_PATH,default=requirements.txt"`
	// RulesFile optionally extends the diagnosis rule table (YAML).
	RulesFile string `env:"RULES_FILE"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	var engineOpts []diagnose.Option
	if cfg.RulesFile != "" {
		rules, err := diagnose.LoadRules(cfg.RulesFile)
		if err != nil {
			clog.FatalContextf(ctx, "loading diagnosis rules: %v", err)
		}
		clog.InfoContextf(ctx, "Loaded %d extra diagnosis rules from %s", len(rules), cfg.RulesFile)
		engineOpts = append(engineOpts, diagnose.WithRules(rules...))
	}

	client, err := forge.New(ctx, cfg.GitHubToken, cfg.Repo, cfg.RunID)
	if err != nil {
		clog.FatalContextf(ctx, "creating forge client: %v", err)
	}

	agent := pipeline.New(
		client,
		diagnose.New(engineOpts...),
		remediate.NewDispatcher(manifest.NewPatcher(cfg.ManifestPath), client),
	)

	clog.InfoContextf(ctx, "Diagnosing run %d in %s", cfg.RunID, cfg.Repo)
	if _, err := agent.Run(ctx); err != nil {
		clog.FatalContextf(ctx, "invocation failed: %v", err)
	}
}
