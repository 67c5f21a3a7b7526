/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package roast

import (
	"context"
	"fmt"

	"github.com/gitroast/gitroast/githubdata"
	"github.com/gitroast/gitroast/schema"
	"github.com/gitroast/gitroast/toolcall"
	"github.com/gitroast/gitroast/toolcall/params"
)

// Tool names as the model sees them.
const (
	RepositoriesToolName   = "fetch_repositories"
	CommitMessagesToolName = "fetch_commit_messages"
)

// repositoriesResult is the success payload of fetch_repositories.
type repositoriesResult struct {
	Repositories []githubdata.RepositorySummary `json:"repositories" jsonschema:"required"`
	Count        int                            `json:"count" jsonschema:"required"`
}

// commitMessagesResult is the success payload of fetch_commit_messages.
type commitMessagesResult struct {
	CommitMessages []string `json:"commit_messages" jsonschema:"required"`
	Count          int      `json:"count" jsonschema:"required"`
}

// Tools builds the registry of fetcher tools backed by the given client.
// Handler errors are fatal to the flow; nothing is fed back to the model.
func Tools(gh *githubdata.Client) toolcall.Registry {
	usernameParam := toolcall.Parameter{
		Name:        "username",
		Type:        "string",
		Description: "The GitHub login of the user to look up",
		Required:    true,
	}

	return toolcall.Registry{
		RepositoriesToolName: {
			Def: toolcall.Definition{
				Name: RepositoriesToolName,
				Description: "List the user's 15 most recently pushed repositories with " +
					"name, primary language, last push time, star count, and fork count.",
				Parameters: []toolcall.Parameter{usernameParam},
				Output:     schema.MapForType[repositoriesResult](),
			},
			Handler: func(ctx context.Context, call toolcall.ToolCall) (map[string]any, error) {
				username, err := params.Extract[string](call.Args, "username")
				if err != nil {
					return nil, fmt.Errorf("%s: %w", RepositoriesToolName, err)
				}
				repos, err := gh.Repositories(ctx, username)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", RepositoriesToolName, err)
				}
				return map[string]any{
					"repositories": repos,
					"count":        len(repos),
				}, nil
			},
		},
		CommitMessagesToolName: {
			Def: toolcall.Definition{
				Name: CommitMessagesToolName,
				Description: "List the commit messages from the user's recent public push " +
					"events, newest first. May be empty for quiet users.",
				Parameters: []toolcall.Parameter{usernameParam},
				Output:     schema.MapForType[commitMessagesResult](),
			},
			Handler: func(ctx context.Context, call toolcall.ToolCall) (map[string]any, error) {
				username, err := params.Extract[string](call.Args, "username")
				if err != nil {
					return nil, fmt.Errorf("%s: %w", CommitMessagesToolName, err)
				}
				messages, err := gh.CommitMessages(ctx, username)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", CommitMessagesToolName, err)
				}
				return map[string]any{
					"commit_messages": messages,
					"count":           len(messages),
				}, nil
			},
		},
	}
}
