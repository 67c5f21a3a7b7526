/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package roast_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gitroast/gitroast/githubdata"
	"github.com/gitroast/gitroast/roast"
	"github.com/gitroast/gitroast/toolcall"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// newGitHubClient points a githubdata client at a local fixture server.
func newGitHubClient(t *testing.T, handler http.Handler) *githubdata.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := githubdata.NewClient(githubdata.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return client
}

// octocatHandler serves the single-repository, zero-push-events fixture.
func octocatHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"name":"Hello-World","language":"C","pushed_at":"2011-01-26T19:01:12Z","stargazers_count":1500,"forks_count":1200}]`)
	})
	mux.HandleFunc("/users/octocat/events", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	})
	return mux
}

func TestToolDefinitions(t *testing.T) {
	t.Parallel()
	gh, err := githubdata.NewClient()
	require.NoError(t, err)

	tools := roast.Tools(gh)
	require.Len(t, tools, 2)

	for _, name := range []string{roast.RepositoriesToolName, roast.CommitMessagesToolName} {
		tool, ok := tools[name]
		require.True(t, ok, "missing tool %s", name)
		require.Equal(t, name, tool.Def.Name)
		require.NotEmpty(t, tool.Def.Description)
		require.NotNil(t, tool.Def.Output, "tool %s must declare an output schema", name)

		require.Len(t, tool.Def.Parameters, 1)
		p := tool.Def.Parameters[0]
		require.Equal(t, "username", p.Name)
		require.Equal(t, "string", p.Type)
		require.True(t, p.Required)
	}
}

func TestRepositoriesToolHandler(t *testing.T) {
	t.Parallel()
	gh := newGitHubClient(t, octocatHandler())
	tool := roast.Tools(gh)[roast.RepositoriesToolName]

	result, err := tool.Handler(context.Background(), toolcall.ToolCall{
		ID:   "toolu_1",
		Name: roast.RepositoriesToolName,
		Args: map[string]any{"username": "octocat"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result["count"])

	repos, ok := result["repositories"].([]githubdata.RepositorySummary)
	require.True(t, ok, "repositories has unexpected type %T", result["repositories"])
	lang := "C"
	want := []githubdata.RepositorySummary{{
		Name:     "Hello-World",
		Language: &lang,
		PushedAt: "2011-01-26T19:01:12Z",
		Stars:    1500,
		Forks:    1200,
	}}
	if diff := cmp.Diff(want, repos); diff != "" {
		t.Errorf("repositories mismatch (-want +got):\n%s", diff)
	}
}

func TestCommitMessagesToolHandlerEmpty(t *testing.T) {
	t.Parallel()
	gh := newGitHubClient(t, octocatHandler())
	tool := roast.Tools(gh)[roast.CommitMessagesToolName]

	result, err := tool.Handler(context.Background(), toolcall.ToolCall{
		ID:   "toolu_2",
		Name: roast.CommitMessagesToolName,
		Args: map[string]any{"username": "octocat"},
	})
	require.NoError(t, err)
	require.Equal(t, 0, result["count"])
	require.Empty(t, result["commit_messages"])
}

func TestToolHandlersRequireUsername(t *testing.T) {
	t.Parallel()
	gh, err := githubdata.NewClient()
	require.NoError(t, err)

	for name, tool := range roast.Tools(gh) {
		_, err := tool.Handler(context.Background(), toolcall.ToolCall{ID: "toolu_3", Name: name})
		require.Error(t, err, "tool %s must reject a call without username", name)
	}
}

func TestToolHandlerPropagatesUpstreamFailure(t *testing.T) {
	t.Parallel()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, `{"message":"down"}`)
	})
	gh := newGitHubClient(t, mux)

	tool := roast.Tools(gh)[roast.RepositoriesToolName]
	_, err := tool.Handler(context.Background(), toolcall.ToolCall{
		ID:   "toolu_4",
		Name: roast.RepositoriesToolName,
		Args: map[string]any{"username": "octocat"},
	})
	var uErr *githubdata.UpstreamError
	require.True(t, errors.As(err, &uErr), "got %v, want *UpstreamError", err)
}
