/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics records OpenTelemetry counters for generative AI usage:
// prompt and completion tokens, and tool invocations.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI holds the counters for one meter. Counter creation failures degrade
// to no-op counters rather than failing the caller.
type GenAI struct {
	meter            metric.Meter
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
	toolCallCounter  metric.Int64Counter
}

// NewGenAI creates metrics under the given meter name. The model name is a
// dimension on each recorded point, so a single meter serves every executor.
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	toolCallCounter, err := meter.Int64Counter("genai.tool.calls",
		metric.WithDescription("The number of tool calls made during generation"),
		metric.WithUnit("{calls}"))
	if err != nil {
		slog.Warn("Failed to create tool call counter, metrics will be disabled", "error", err, "meter", meterName)
		toolCallCounter = noop.Int64Counter{}
	}

	return &GenAI{
		meter:            meter,
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
		toolCallCounter:  toolCallCounter,
	}
}

// RecordTokens records prompt and completion token usage for a model.
func (m *GenAI) RecordTokens(ctx context.Context, model string, promptTokens, completionTokens int64) {
	attrs := metric.WithAttributes(attribute.String("model", model))
	m.promptTokens.Add(ctx, promptTokens, attrs)
	m.completionTokens.Add(ctx, completionTokens, attrs)
}

// RecordToolCall records one tool invocation for a model.
func (m *GenAI) RecordToolCall(ctx context.Context, model, toolName string) {
	m.toolCallCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("tool", toolName),
	))
}
