/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
	"github.com/gitroast/gitroast/metrics"
	"github.com/gitroast/gitroast/prompt"
	"github.com/gitroast/gitroast/retry"
	"github.com/gitroast/gitroast/toolcall/claudetool"
)

// ChunkSink receives streamed text fragments in arrival order. Delivery is
// sequential; the sink is never invoked concurrently.
type ChunkSink func(chunk string)

// Interface is the public contract for Claude execution.
type Interface interface {
	// Execute runs one generation with the given request bound into the
	// prompt and the given tools available to the model. Chunks are relayed
	// to sink as they stream in; the return value is the final assembled
	// text of the last turn.
	Execute(ctx context.Context, request prompt.Bindable, tools map[string]claudetool.Metadata, sink ChunkSink) (string, error)
}

type executor struct {
	streamer           streamer
	modelName          string
	prompt             *prompt.Prompt
	systemInstructions *prompt.Prompt
	maxTokens          int64
	temperature        float64
	genaiMetrics       *metrics.GenAI
	retryConfig        retry.Config
}

// New creates an executor for the given client and prompt template.
func New(client anthropic.Client, p *prompt.Prompt, opts ...Option) (Interface, error) {
	if p == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	e := &executor{
		streamer:     &anthropicStreamer{client: client},
		modelName:    "claude-sonnet-4-5",
		prompt:       p,
		maxTokens:    4096,
		temperature:  0.1,
		genaiMetrics: metrics.NewGenAI("gitroast.genai"),
		retryConfig:  retry.DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}
	return e, nil
}

func (e *executor) Execute(ctx context.Context, request prompt.Bindable, tools map[string]claudetool.Metadata, sink ChunkSink) (string, error) {
	log := clog.FromContext(ctx)

	bound, err := request.Bind(e.prompt)
	if err != nil {
		return "", fmt.Errorf("binding request to prompt: %w", err)
	}
	userPrompt, err := bound.Build()
	if err != nil {
		return "", fmt.Errorf("building prompt: %w", err)
	}

	log.With("prompt_length", len(userPrompt)).
		With("tools", len(tools)).
		Info("Starting Claude execution")

	toolDefs := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, meta := range tools {
		def := meta.Definition
		toolDefs = append(toolDefs, anthropic.ToolUnionParam{OfTool: &def})
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.modelName),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(userPrompt),
			},
		}},
		Tools: toolDefs,
	}
	params.Temperature = anthropic.Float(e.temperature)

	if e.systemInstructions != nil {
		systemPrompt, err := e.systemInstructions.Build()
		if err != nil {
			return "", fmt.Errorf("building system prompt: %w", err)
		}
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	for {
		// Chunks go to the sink as they arrive, so once any text has been
		// relayed the turn can no longer be retried: replaying it would
		// deliver the same chunks twice.
		relayed := false
		onText := func(chunk string) {
			relayed = true
			if sink != nil {
				sink(chunk)
			}
		}
		retryable := func(err error) bool {
			return !relayed && isRetryableClaudeError(err)
		}
		message, err := retry.Do(ctx, e.retryConfig, "stream_message", retryable, func() (anthropic.Message, error) {
			return e.streamer.stream(ctx, params, onText)
		})
		if err != nil {
			return "", fmt.Errorf("streaming Claude response: %w", err)
		}

		if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
			e.genaiMetrics.RecordTokens(ctx, e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
		}

		var toolUses []anthropic.ToolUseBlock
		var text strings.Builder
		for _, content := range message.Content {
			switch content.Type {
			case "text":
				text.WriteString(content.Text)
			case "tool_use":
				toolUses = append(toolUses, anthropic.ToolUseBlock{
					ID:    content.ID,
					Name:  content.Name,
					Input: content.Input,
				})
			}
		}

		if len(toolUses) > 0 {
			params.Messages = append(params.Messages, assistantTurn(text.String(), toolUses))

			results := make([]anthropic.ContentBlockParamUnion, 0, len(toolUses))
			for _, toolUse := range toolUses {
				e.genaiMetrics.RecordToolCall(ctx, e.modelName, toolUse.Name)

				result, err := e.executeToolCall(ctx, tools, toolUse)
				if err != nil {
					return "", err
				}
				results = append(results, result)
			}
			params.Messages = append(params.Messages, anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleUser,
				Content: results,
			})
			continue
		}

		if text.Len() == 0 {
			return "", errors.New("no content in Claude's response")
		}
		log.Info("Completed Claude execution")
		return text.String(), nil
	}
}

// executeToolCall dispatches one declared tool call. Any failure, including
// an unknown tool name, is fatal to the execution.
func (e *executor) executeToolCall(ctx context.Context, tools map[string]claudetool.Metadata, toolUse anthropic.ToolUseBlock) (anthropic.ContentBlockParamUnion, error) {
	log := clog.FromContext(ctx)
	log.With("tool", toolUse.Name).With("id", toolUse.ID).Info("Executing tool call")

	meta, ok := tools[toolUse.Name]
	if !ok {
		return anthropic.ContentBlockParamUnion{}, fmt.Errorf("model requested unknown tool %q", toolUse.Name)
	}

	result, err := meta.Handler(ctx, toolUse)
	if err != nil {
		return anthropic.ContentBlockParamUnion{}, fmt.Errorf("tool %q failed: %w", toolUse.Name, err)
	}

	resultBytes, err := json.Marshal(result)
	if err != nil {
		return anthropic.ContentBlockParamUnion{}, fmt.Errorf("marshaling result of tool %q: %w", toolUse.Name, err)
	}

	return anthropic.ContentBlockParamUnion{
		OfToolResult: &anthropic.ToolResultBlockParam{
			ToolUseID: toolUse.ID,
			Content: []anthropic.ToolResultBlockParamContentUnion{{
				OfText: &anthropic.TextBlockParam{Text: string(resultBytes)},
			}},
		},
	}, nil
}

// assistantTurn rebuilds the assistant message for the conversation history
// from the accumulated blocks of a streamed turn.
func assistantTurn(text string, toolUses []anthropic.ToolUseBlock) anthropic.MessageParam {
	content := make([]anthropic.ContentBlockParamUnion, 0, len(toolUses)+1)
	if text != "" {
		content = append(content, anthropic.NewTextBlock(text))
	}
	for _, tu := range toolUses {
		content = append(content, anthropic.ContentBlockParamUnion{
			OfToolUse: &anthropic.ToolUseBlockParam{
				ID:    tu.ID,
				Name:  tu.Name,
				Input: tu.Input,
			},
		})
	}
	return anthropic.MessageParam{
		Role:    anthropic.MessageParamRoleAssistant,
		Content: content,
	}
}
