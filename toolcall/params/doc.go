/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package params extracts typed values from tool call argument maps.
//
// Models hand back arguments as decoded JSON (map[string]any), so every
// number arrives as float64 and nothing is guaranteed to be present. Extract
// and ExtractOptional recover the declared Go types with clear errors.
package params
