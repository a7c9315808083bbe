package extract

import (
	"context"
	"fmt"
)

const summaryPrompt = `You are an expert educator. Summarize the following extracted content into a clear, beginner-friendly, structured Markdown summary for revision:

Topic: %s

CONTENT:
"""
%s
"""

STRUCTURE:
# Title: <Topic>

## Introduction
<Concise introduction>

## Key Points
- point 1
- point 2
- point 3

## Summary
<Summary paragraph>

Keep it clean, clear, and structured in Markdown. Do not add any unnecessary sections.`

// Summarize turns extracted text into a structured context brief. Input is
// truncated to the configured prefix to respect the model's context limit.
// The Title/Introduction/Key Points/Summary structure is a soft contract
// enforced only by the prompt; consumers tolerate missing sections.
func (e *implExtractor) Summarize(ctx context.Context, text, topic string) (string, error) {
	if len(text) > e.maxChars {
		e.logger.Info(ctx, "Truncating extracted text from %d to %d characters for summarization", len(text), e.maxChars)
		text = text[:e.maxChars]
	}

	summary, err := e.llm.GenerateText(ctx, fmt.Sprintf(summaryPrompt, topic, text))
	if err != nil {
		return "", fmt.Errorf("summarize context: %w", err)
	}
	return summary, nil
}
