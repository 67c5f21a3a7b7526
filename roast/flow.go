/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package roast

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
	"github.com/gitroast/gitroast/claudeexec"
	"github.com/gitroast/gitroast/githubdata"
	"github.com/gitroast/gitroast/prompt"
	"github.com/gitroast/gitroast/toolcall/claudetool"
)

// Request identifies who gets roasted. It carries no other state.
type Request struct {
	Username string
}

// Bind implements prompt.Bindable, inserting the username as an escaped XML
// element.
func (r *Request) Bind(p *prompt.Prompt) (*prompt.Prompt, error) {
	return p.BindXML("username", struct {
		XMLName struct{} `xml:"username"`
		Content string   `xml:",chardata"`
	}{Content: r.Username})
}

// Flow is the roast orchestrator. One Flow serves any number of sequential
// Run calls; each Run is an independent generation.
type Flow struct {
	exec  claudeexec.Interface
	tools map[string]claudetool.Metadata
}

// New creates a Flow talking to Claude with the given client. Executor
// options are applied after the flow's defaults, so callers can override the
// model, token limit, or temperature.
func New(client anthropic.Client, gh *githubdata.Client, execOpts ...claudeexec.Option) (*Flow, error) {
	p, err := roastPrompt()
	if err != nil {
		return nil, fmt.Errorf("building roast prompt: %w", err)
	}
	sys, err := systemPrompt()
	if err != nil {
		return nil, fmt.Errorf("building system prompt: %w", err)
	}

	// 0.8 biases toward varied, creative output; jokes repeat at 0.1.
	opts := append([]claudeexec.Option{
		claudeexec.WithTemperature(0.8),
		claudeexec.WithSystemInstructions(sys),
	}, execOpts...)

	exec, err := claudeexec.New(client, p, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating executor: %w", err)
	}
	return NewWithExecutor(exec, gh), nil
}

// NewWithExecutor creates a Flow around an existing executor. Tests use this
// to substitute fakes.
func NewWithExecutor(exec claudeexec.Interface, gh *githubdata.Client) *Flow {
	return &Flow{
		exec:  exec,
		tools: claudetool.FromRegistry(Tools(gh)),
	}
}

// Run produces a roast for the requested user, relaying each streamed chunk
// to sink before returning the assembled text. Any tool or generation
// failure aborts with no partial result.
func (f *Flow) Run(ctx context.Context, req Request, sink claudeexec.ChunkSink) (string, error) {
	if err := githubdata.ValidateLogin(req.Username); err != nil {
		return "", err
	}
	log := clog.FromContext(ctx)
	log.With("username", req.Username).Info("Starting roast flow")

	text, err := f.exec.Execute(ctx, &req, f.tools, sink)
	if err != nil {
		return "", fmt.Errorf("roast generation: %w", err)
	}
	return text, nil
}
