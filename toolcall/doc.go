/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package toolcall defines provider-independent tool types for model-directed
// invocation.
//
// A Tool pairs a Definition (name, description, input parameters, output
// schema) with a Handler. The model, not the orchestrator, decides whether
// and when a tool runs; the orchestrator only registers definitions with the
// generation request and dispatches calls the model declares.
//
// This package contains only type definitions and stays free of SDK
// dependencies. Conversion to Anthropic types lives in the claudetool
// subpackage; typed argument extraction lives in params.
package toolcall
