/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package params_test

import (
	"testing"

	"github.com/gitroast/gitroast/toolcall/params"
)

func TestExtractString(t *testing.T) {
	t.Parallel()
	args := map[string]any{"username": "octocat"}
	got, err := params.Extract[string](args, "username")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got != "octocat" {
		t.Errorf("got %q, want %q", got, "octocat")
	}
}

func TestExtractMissing(t *testing.T) {
	t.Parallel()
	if _, err := params.Extract[string](map[string]any{}, "username"); err == nil {
		t.Fatal("expected error for missing parameter")
	}
}

func TestExtractWrongType(t *testing.T) {
	t.Parallel()
	args := map[string]any{"username": 42.0}
	if _, err := params.Extract[string](args, "username"); err == nil {
		t.Fatal("expected error for mistyped parameter")
	}
}

func TestExtractNumericConversion(t *testing.T) {
	t.Parallel()
	// JSON decoding yields float64 for every number.
	args := map[string]any{"count": float64(7)}

	asInt, err := params.Extract[int](args, "count")
	if err != nil {
		t.Fatalf("Extract[int]: %v", err)
	}
	if asInt != 7 {
		t.Errorf("got %d, want 7", asInt)
	}

	asInt64, err := params.Extract[int64](args, "count")
	if err != nil {
		t.Fatalf("Extract[int64]: %v", err)
	}
	if asInt64 != 7 {
		t.Errorf("got %d, want 7", asInt64)
	}
}

func TestExtractOptional(t *testing.T) {
	t.Parallel()
	args := map[string]any{"present": "yes"}

	got, err := params.ExtractOptional(args, "present", "default")
	if err != nil {
		t.Fatalf("ExtractOptional: %v", err)
	}
	if got != "yes" {
		t.Errorf("got %q, want %q", got, "yes")
	}

	got, err = params.ExtractOptional(args, "absent", "default")
	if err != nil {
		t.Fatalf("ExtractOptional: %v", err)
	}
	if got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestExtractOptionalWrongType(t *testing.T) {
	t.Parallel()
	args := map[string]any{"flag": "not-a-bool"}
	if _, err := params.ExtractOptional(args, "flag", false); err == nil {
		t.Fatal("expected error for mistyped optional parameter")
	}
}
