/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the prepare step of an agent workflow run. It
// normalizes the triggering GitHub event, fetches the referenced issue or
// PR data, synthesizes the agent's instruction prompt, and exports the
// tool permission lists to the job environment. Any failure is fatal to
// the step: the process logs the error and exits non-zero without leaving
// partial output behind.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"chainguard.dev/agentprep/actionsenv"
	"chainguard.dev/agentprep/eventcontext"
	"chainguard.dev/agentprep/githubdata"
	"chainguard.dev/agentprep/promptgen"
	"chainguard.dev/agentprep/toolperms"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

const publicAPIURL = "https://api.github.com"

type config struct {
	Repository string `env:"GITHUB_REPOSITORY,required"`
	EventName  string `env:"GITHUB_EVENT_NAME,required"`
	EventPath  string `env:"GITHUB_EVENT_PATH,required"`
	ServerURL  string `env:"GITHUB_SERVER_URL,default=https://github.com"`
	APIURL     string `env:"GITHUB_API_URL"`
	Token      string `env:"GITHUB_TOKEN,required"`
	EnvFile    string `env:"GITHUB_ENV,required"`
	RunnerTemp string `env:"RUNNER_TEMP,default=/tmp"`

	// AgentCommentID identifies the tracking comment created before this
	// step; DefaultBranch and WorkingBranch come from the branch-setup
	// step and stay empty for event kinds that do not need them.
	AgentCommentID string `env:"AGENT_COMMENT_ID,required"`
	DefaultBranch  string `env:"DEFAULT_BRANCH"`
	WorkingBranch  string `env:"WORKING_BRANCH"`

	Inputs eventcontext.Inputs
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	if err := run(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "preparing agent run: %v", err)
	}
}

func run(ctx context.Context, cfg *config) error {
	log := clog.FromContext(ctx)

	if err := cfg.Inputs.ApplySettings(); err != nil {
		return err
	}

	payload, err := os.ReadFile(cfg.EventPath)
	if err != nil {
		return fmt.Errorf("reading event payload %q: %w", cfg.EventPath, err)
	}

	raw, err := eventcontext.New(cfg.Repository, cfg.EventName, payload, cfg.Inputs)
	if err != nil {
		return err
	}
	prepared, err := eventcontext.Prepare(raw, cfg.AgentCommentID, cfg.DefaultBranch, cfg.WorkingBranch)
	if err != nil {
		return err
	}
	classification, err := eventcontext.Classify(prepared)
	if err != nil {
		return err
	}
	log.With("event", cfg.EventName, "category", classification.Category, "number", prepared.Event.Number()).
		Info("Prepared event context")

	opts := []githubdata.Option{
		githubdata.WithImageDir(filepath.Join(cfg.RunnerTemp, "agentprep", "images")),
	}
	if cfg.APIURL != "" && cfg.APIURL != publicAPIURL {
		opts = append(opts, githubdata.WithBaseURL(cfg.APIURL))
	}
	fetcher, err := githubdata.NewFetcher(ctx, cfg.Token, opts...)
	if err != nil {
		return err
	}
	fetched, err := fetcher.Fetch(ctx, prepared)
	if err != nil {
		return err
	}

	promptText, err := promptgen.Render(prepared, classification, fetched, cfg.ServerURL)
	if err != nil {
		return err
	}

	promptPath := filepath.Join(cfg.RunnerTemp, "agentprep", "prompt.txt")
	if err := actionsenv.WritePromptFile(promptPath, promptText); err != nil {
		return err
	}

	allowed := toolperms.Allowed(prepared.Event, prepared.AllowedTools)
	disallowed := toolperms.Disallowed(prepared.DisallowedTools)
	if err := actionsenv.ExportVariable(cfg.EnvFile, "ALLOWED_TOOLS", allowed); err != nil {
		return err
	}
	if err := actionsenv.ExportVariable(cfg.EnvFile, "DISALLOWED_TOOLS", disallowed); err != nil {
		return err
	}

	log.With("prompt_path", promptPath, "prompt_bytes", len(promptText)).
		Info("Wrote prompt and exported tool permissions")
	return nil
}
