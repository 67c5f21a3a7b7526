/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package githubdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v84/github"
)

// UpstreamError reports a non-success HTTP status from GitHub.
type UpstreamError struct {
	StatusCode int
	Status     string // status text, e.g. "404 Not Found"
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github request failed: %s", e.Status)
}

// ValidationError reports a response payload that does not match the
// expected schema.
type ValidationError struct {
	Field  string // path of the offending field, e.g. "repos[2].name"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed at %s: %s", e.Field, e.Reason)
}

// classify maps go-github transport errors onto the package's error
// taxonomy. Anything unrecognized passes through unchanged.
func classify(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return &UpstreamError{
			StatusCode: statusCode(rateErr.Response),
			Status:     statusText(rateErr.Response, "403 rate limited"),
		}
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &UpstreamError{
			StatusCode: statusCode(abuseErr.Response),
			Status:     statusText(abuseErr.Response, "403 abuse detected"),
		}
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		return &UpstreamError{
			StatusCode: statusCode(ghErr.Response),
			Status:     statusText(ghErr.Response, "unknown status"),
		}
	}
	// A wrong primitive type (e.g. a star count sent as text) surfaces from
	// the JSON decoder before any of our own checks run.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
		}
	}
	return err
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func statusText(resp *http.Response, fallback string) string {
	if resp == nil || resp.Status == "" {
		return fallback
	}
	return resp.Status
}
