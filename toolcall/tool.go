/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package toolcall

import "context"

// ToolCall is a provider-independent representation of a single tool
// invocation declared by the model.
type ToolCall struct {
	ID   string
	Name string
	Args map[string]any
}

// Parameter describes one tool input parameter.
type Parameter struct {
	Name        string
	Type        string // "string", "integer", "boolean", "number"
	Description string
	Required    bool
}

// Definition describes a tool's contract: its name, what it does, the shape
// of its input, and the JSON schema of its successful output.
type Definition struct {
	Name        string
	Description string
	Parameters  []Parameter

	// Output is the JSON schema of the handler's success payload, as a plain
	// map so this package needs no schema library. It is advisory metadata
	// surfaced alongside the tool registration.
	Output map[string]any
}

// Handler executes a tool call. The returned map is serialized as the tool
// result for the model. A non-nil error is fatal to the whole generation:
// the flow aborts rather than feeding the failure back to the model.
type Handler func(ctx context.Context, call ToolCall) (map[string]any, error)

// Tool binds a Definition to its Handler.
type Tool struct {
	Def     Definition
	Handler Handler
}

// Registry is a set of tools keyed by name, the unit handed to an executor.
type Registry map[string]Tool
