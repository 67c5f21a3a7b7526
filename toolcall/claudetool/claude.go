/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package claudetool converts provider-independent tool definitions into the
// Anthropic SDK's tool types and adapts handlers to tool-use blocks.
package claudetool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
	"github.com/gitroast/gitroast/toolcall"
)

// Metadata is a tool in the form the Claude executor consumes: an Anthropic
// tool definition plus a handler keyed to tool-use blocks.
type Metadata struct {
	Definition anthropic.ToolParam
	Handler    func(ctx context.Context, toolUse anthropic.ToolUseBlock) (map[string]any, error)
}

// FromTool converts a provider-independent tool into Claude metadata. The
// wrapped handler decodes the tool-use input JSON once and hands the unified
// ToolCall to the original handler.
func FromTool(t toolcall.Tool) Metadata {
	return Metadata{
		Definition: anthropic.ToolParam{
			Name:        t.Def.Name,
			Description: anthropic.String(t.Def.Description),
			InputSchema: inputSchema(t.Def.Parameters),
		},
		Handler: func(ctx context.Context, toolUse anthropic.ToolUseBlock) (map[string]any, error) {
			var args map[string]any
			if len(toolUse.Input) > 0 {
				if err := json.Unmarshal(toolUse.Input, &args); err != nil {
					return nil, fmt.Errorf("parsing input for tool %q: %w", toolUse.Name, err)
				}
			}
			return t.Handler(ctx, toolcall.ToolCall{
				ID:   toolUse.ID,
				Name: toolUse.Name,
				Args: args,
			})
		},
	}
}

// FromRegistry converts a whole registry, keyed by tool name.
func FromRegistry(reg toolcall.Registry) map[string]Metadata {
	out := make(map[string]Metadata, len(reg))
	for name, t := range reg {
		out[name] = FromTool(t)
	}
	return out
}

// inputSchema builds the JSON-schema object for a parameter list.
func inputSchema(parameters []toolcall.Parameter) anthropic.ToolInputSchemaParam {
	properties := make(map[string]any, len(parameters))
	var required []string
	for _, p := range parameters {
		properties[p.Name] = map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Required {
			required = append(required, p.Name)
		}
	}
	return anthropic.ToolInputSchemaParam{
		Type:       constant.Object("object"),
		Properties: properties,
		Required:   required,
	}
}
