/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package githubdata fetches the GitHub activity a roast is built from: a
// user's most recently pushed repositories and the commit messages in their
// recent public push events.
//
// Responses are validated before use. A non-success HTTP status becomes an
// *UpstreamError carrying the status text; a payload that does not match the
// expected shape becomes a *ValidationError naming the offending field. Both
// are fatal to the calling operation: there are no retries and no partial
// results.
package githubdata
