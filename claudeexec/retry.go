/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexec

import (
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
)

// isRetryableClaudeError reports whether an error is a transient Claude API
// failure: rate limited, overloaded, or a gateway error.
func isRetryableClaudeError(err error) bool {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 429, 503, 504, 529:
			return true
		}
	}
	return false
}
