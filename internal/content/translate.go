package content

import (
	"context"
	"fmt"
)

// The translation must keep the markdown section markers verbatim: a
// translated header would break slide/narration alignment downstream.
const translatePrompt = `Translate the following professor lecture narration to %s.
Keep the formatting (Markdown sections like ## Title, ## Introduction, etc.) the same.
Do not add extra commentary.

TEXT:
"""
%s
"""`

func (g *implGenerator) translate(ctx context.Context, text, targetLanguage string) (string, error) {
	g.logger.Info(ctx, "Translating narration script to %s", targetLanguage)

	translated, err := g.llm.GenerateText(ctx, fmt.Sprintf(translatePrompt, targetLanguage, text))
	if err != nil {
		return "", fmt.Errorf("translate script: %w", err)
	}
	return translated, nil
}
