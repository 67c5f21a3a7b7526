/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package roast_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/gitroast/gitroast/claudeexec"
	"github.com/gitroast/gitroast/prompt"
	"github.com/gitroast/gitroast/roast"
	"github.com/gitroast/gitroast/toolcall/claudetool"
	"github.com/google/go-cmp/cmp"
)

// fakeExecutor scripts the model side of a flow run.
type fakeExecutor struct {
	run func(ctx context.Context, request prompt.Bindable, tools map[string]claudetool.Metadata, sink claudeexec.ChunkSink) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, request prompt.Bindable, tools map[string]claudetool.Metadata, sink claudeexec.ChunkSink) (string, error) {
	return f.run(ctx, request, tools, sink)
}

func toolUse(id, name, input string) anthropic.ToolUseBlock {
	return anthropic.ToolUseBlock{ID: id, Name: name, Input: json.RawMessage(input)}
}

func TestRunOctocatWithZeroCommits(t *testing.T) {
	t.Parallel()
	gh := newGitHubClient(t, octocatHandler())

	// The scripted model invokes both tools (as the real one may) before
	// streaming its roast. Zero push events must not derail the flow.
	exec := &fakeExecutor{run: func(ctx context.Context, _ prompt.Bindable, tools map[string]claudetool.Metadata, sink claudeexec.ChunkSink) (string, error) {
		repoResult, err := tools[roast.RepositoriesToolName].Handler(ctx, toolUse("toolu_1", roast.RepositoriesToolName, `{"username":"octocat"}`))
		if err != nil {
			return "", err
		}
		if repoResult["count"] != 1 {
			t.Errorf("repo count = %v, want 1", repoResult["count"])
		}

		commitResult, err := tools[roast.CommitMessagesToolName].Handler(ctx, toolUse("toolu_2", roast.CommitMessagesToolName, `{"username":"octocat"}`))
		if err != nil {
			return "", err
		}
		if commitResult["count"] != 0 {
			t.Errorf("commit count = %v, want 0", commitResult["count"])
		}

		text := "One repo since 2011 and total radio silence. Bold."
		sink(text)
		return text, nil
	}}

	flow := roast.NewWithExecutor(exec, gh)
	var streamed strings.Builder
	result, err := flow.Run(context.Background(), roast.Request{Username: "octocat"}, func(chunk string) {
		streamed.WriteString(chunk)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result == "" {
		t.Fatal("expected non-empty roast")
	}
	if streamed.String() != result {
		t.Errorf("streamed %q, result %q", streamed.String(), result)
	}
}

func TestRunRelaysChunksInOrder(t *testing.T) {
	t.Parallel()
	gh := newGitHubClient(t, octocatHandler())
	chunks := []string{"Hey ", "there, ", "coder."}

	exec := &fakeExecutor{run: func(_ context.Context, _ prompt.Bindable, _ map[string]claudetool.Metadata, sink claudeexec.ChunkSink) (string, error) {
		for _, c := range chunks {
			sink(c)
		}
		return strings.Join(chunks, ""), nil
	}}

	flow := roast.NewWithExecutor(exec, gh)
	var received []string
	result, err := flow.Run(context.Background(), roast.Request{Username: "octocat"}, func(chunk string) {
		received = append(received, chunk)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff(chunks, received); diff != "" {
		t.Errorf("chunk order mismatch (-want +got):\n%s", diff)
	}
	if want := "Hey there, coder."; result != want {
		t.Errorf("result = %q, want %q", result, want)
	}
}

func TestRunRejectsInvalidUsername(t *testing.T) {
	t.Parallel()
	gh := newGitHubClient(t, octocatHandler())
	exec := &fakeExecutor{run: func(context.Context, prompt.Bindable, map[string]claudetool.Metadata, claudeexec.ChunkSink) (string, error) {
		t.Error("executor must not run for an invalid username")
		return "", nil
	}}

	flow := roast.NewWithExecutor(exec, gh)
	for _, username := range []string{"", "-bad", "has space"} {
		if _, err := flow.Run(context.Background(), roast.Request{Username: username}, nil); err == nil {
			t.Errorf("Run(%q): expected error", username)
		}
	}
}

func TestRunPropagatesGenerationFailure(t *testing.T) {
	t.Parallel()
	gh := newGitHubClient(t, octocatHandler())
	boom := errors.New("model unavailable")
	exec := &fakeExecutor{run: func(context.Context, prompt.Bindable, map[string]claudetool.Metadata, claudeexec.ChunkSink) (string, error) {
		return "", boom
	}}

	flow := roast.NewWithExecutor(exec, gh)
	result, err := flow.Run(context.Background(), roast.Request{Username: "octocat"}, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want wrapped %v", err, boom)
	}
	if result != "" {
		t.Errorf("expected no partial roast, got %q", result)
	}
}

func TestRequestBindEscapesUsername(t *testing.T) {
	t.Parallel()
	p, err := prompt.New("Target: {{username}}")
	if err != nil {
		t.Fatalf("prompt.New: %v", err)
	}
	req := &roast.Request{Username: "octocat"}
	bound, err := req.Bind(p)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	text, err := bound.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.Contains(text, "<username>octocat</username>") {
		t.Errorf("unexpected binding output: %q", text)
	}
}
