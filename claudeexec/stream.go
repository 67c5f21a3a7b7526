/*
Copyright 2026 The Gitroast Authors
SPDX-License-Identifier: Apache-2.0
*/

package claudeexec

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// streamer produces one streamed message turn, invoking onText for each text
// delta in arrival order. Tests substitute fakes for the Anthropic client.
type streamer interface {
	stream(ctx context.Context, params anthropic.MessageNewParams, onText func(string)) (anthropic.Message, error)
}

type anthropicStreamer struct {
	client anthropic.Client
}

func (s *anthropicStreamer) stream(ctx context.Context, params anthropic.MessageNewParams, onText func(string)) (anthropic.Message, error) {
	stream := s.client.Messages.NewStreaming(ctx, params)

	var msg anthropic.Message
	for stream.Next() {
		event := stream.Current()
		if err := msg.Accumulate(event); err != nil {
			return msg, fmt.Errorf("accumulating stream event: %w", err)
		}
		if onText == nil {
			continue
		}
		switch eventVariant := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch deltaVariant := eventVariant.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				if deltaVariant.Text != "" {
					onText(deltaVariant.Text)
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		return msg, err
	}
	return msg, nil
}
