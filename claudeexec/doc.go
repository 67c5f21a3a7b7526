/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package claudeexec runs tool-augmented streaming generations against
// Claude.
//
// Execute drives one conversation: it binds the request into the prompt,
// registers the tool definitions, and streams the model's response. Every
// text fragment is forwarded to the caller's ChunkSink in arrival order
// while the full message accumulates. When the model declares tool calls,
// their handlers run and the results extend the conversation; when a turn
// produces no tool calls, the assembled text of that turn is the result.
//
// A handler error, an unknown tool, or a generation failure aborts the whole
// execution. No partial result is returned. Transient API errors (rate
// limits, overload) are retried with exponential backoff, but only while no
// text has reached the sink: a turn that already relayed chunks fails rather
// than replaying them.
package claudeexec
