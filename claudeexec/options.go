/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gitroast/gitroast/prompt"
	"github.com/gitroast/gitroast/retry"
)

// Option is a functional option for configuring the executor.
type Option func(*executor) error

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(e *executor) error {
		if !strings.HasPrefix(model, "claude-") {
			return fmt.Errorf("model %q does not appear to be a Claude model (expected claude-* format)", model)
		}
		e.modelName = model
		return nil
	}
}

// WithMaxTokens sets the maximum tokens for responses.
func WithMaxTokens(tokens int64) Option {
	return func(e *executor) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		if tokens > 32000 {
			return fmt.Errorf("max tokens %d exceeds maximum of 32000", tokens)
		}
		e.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the sampling temperature. Claude accepts 0.0 through
// 1.0; higher values produce more varied output.
func WithTemperature(temp float64) Option {
	return func(e *executor) error {
		if temp < 0.0 || temp > 1.0 {
			return fmt.Errorf("temperature must be between 0.0 and 1.0, got %f", temp)
		}
		e.temperature = temp
		return nil
	}
}

// WithSystemInstructions sets a system prompt built alongside the main one.
func WithSystemInstructions(p *prompt.Prompt) Option {
	return func(e *executor) error {
		if p == nil {
			return errors.New("system instructions prompt cannot be nil")
		}
		e.systemInstructions = p
		return nil
	}
}

// WithRetryConfig overrides the retry policy for transient API errors,
// such as 429 rate limits and 529 overloaded responses.
func WithRetryConfig(cfg retry.Config) Option {
	return func(e *executor) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.retryConfig = cfg
		return nil
	}
}
