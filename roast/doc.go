/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package roast orchestrates the roast flow: it hands Claude a prompt about
// a GitHub user along with two fetcher tools, and relays the streamed roast
// to the caller.
//
// The model decides whether and when to call the tools; the flow only
// registers them. A fetch failure or a generation failure aborts the flow
// with no partial roast.
package roast
