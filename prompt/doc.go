/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package prompt builds model prompts from templates with named placeholders.
//
// Templates use {{name}} placeholders. Each placeholder must be bound exactly
// once before Build succeeds, and user-controlled values are bound through
// structured encodings (XML, JSON, YAML) rather than spliced in as raw text:
//
//	p, _ := prompt.New("Roast {{username}} using these angles:\n{{angles}}")
//	p, _ = p.BindXML("username", login)
//	p, _ = p.BindYAML("angles", angles)
//	text, err := p.Build()
//
// Request types implement Bindable so executors can bind per-request data
// without knowing its shape.
package prompt
