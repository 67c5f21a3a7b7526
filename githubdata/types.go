/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package githubdata

// RepositorySummary is the reduced projection of a GitHub repository that
// the roast flow works with. Language is nil when GitHub reports none; every
// other field is required.
type RepositorySummary struct {
	Name     string  `json:"name" jsonschema:"required"`
	Language *string `json:"language"`
	PushedAt string  `json:"pushed_at" jsonschema:"required"` // ISO-8601, UTC
	Stars    int     `json:"stars" jsonschema:"required"`
	Forks    int     `json:"forks" jsonschema:"required"`
}
