/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package main implements the roast CLI. Given a GitHub username it fetches
// the user's public repositories and recent commit messages, hands them to
// Claude as tools, and streams the resulting roast to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"

	"github.com/gitroast/gitroast/claudeexec"
	"github.com/gitroast/gitroast/githubdata"
	"github.com/gitroast/gitroast/roast"
)

type config struct {
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY,required"`

	// GitHubToken is optional. Unauthenticated requests work against the
	// public API but are limited to 60 requests per hour.
	GitHubToken string `env:"GITHUB_TOKEN"`

	Model       string  `env:"CLAUDE_MODEL,default=claude-sonnet-4-5"`
	MaxTokens   int64   `env:"MAX_TOKENS,default=4096"`
	Temperature float64 `env:"TEMPERATURE,default=0.8"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <github-username>\n", os.Args[0])
		os.Exit(2)
	}
	username := os.Args[1]

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	var ghOpts []githubdata.Option
	if cfg.GitHubToken != "" {
		ghOpts = append(ghOpts, githubdata.WithToken(cfg.GitHubToken))
	}
	gh, err := githubdata.NewClient(ghOpts...)
	if err != nil {
		clog.FatalContextf(ctx, "creating GitHub client: %v", err)
	}

	client := anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))

	flow, err := roast.New(client, gh,
		claudeexec.WithModel(cfg.Model),
		claudeexec.WithMaxTokens(cfg.MaxTokens),
		claudeexec.WithTemperature(cfg.Temperature),
	)
	if err != nil {
		clog.FatalContextf(ctx, "creating roast flow: %v", err)
	}

	clog.InfoContextf(ctx, "Roasting %s", username)
	if _, err := flow.Run(ctx, roast.Request{Username: username}, func(chunk string) {
		fmt.Print(chunk)
	}); err != nil {
		clog.FatalContextf(ctx, "roast failed: %v", err)
	}
	fmt.Println()
}
