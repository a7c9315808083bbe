package content

import (
	"context"
	"fmt"

	"github.com/saarthak20/CollegeAi/internal/lecture"
)

// The markdown skeleton is fixed: downstream section splitting depends on
// these "## " markers, so the length hint modulates verbosity only.
const slidePrompt = `You are an expert educator tasked with creating clear, structured slide content for a lecture on '%s'.
Use the context below to improve factual accuracy and relevance:
Generate this in: %s

CONTEXT:
"""
%s
"""

Use the following Markdown structure:

## Title: %s

## Introduction
<concise, clear intro>

## Section 1: <Title>
<clear explanation>

## Section 2: <Title>
<clear explanation>

## Example
<real-world example>

## Python Code Example (if applicable)
<code snippet or explanation>

## Summary
- Bullet 1
- Bullet 2
- Bullet 3

Keep it factual, beginner-friendly, and slide-ready.
Length: %s.`

// SlideContent generates the lecture slide markdown in the target language.
func (g *implGenerator) SlideContent(ctx context.Context, topic string, length lecture.Length, contextMD, language string) (string, error) {
	if contextMD == "" {
		contextMD = "Not provided"
	}

	g.logger.Info(ctx, "Generating slide content for '%s' (%s, %s)", topic, length, language)

	prompt := fmt.Sprintf(slidePrompt, topic, language, contextMD, topic, length)
	md, err := g.llm.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate slide content: %w", err)
	}
	return md, nil
}
