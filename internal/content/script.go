package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/saarthak20/CollegeAi/internal/lecture"
)

const scriptPrompt = `You are an %s giving a lecture on '%s' to college students in English.

Use the slide content and context provided below to generate a personal, spoken script.
Add light jokes, questions, transitions, and make it sound like a real teacher.

SLIDE CONTENT:
"""
%s
"""

CONTEXT (if helpful):
"""
%s
"""

Return a narration with the same section headers so each section aligns with a slide.
Use the same ## section formatting for each.`

// Script generates the persona-voiced narration for the slide markdown.
// The script keeps the slide deck's "## " headers so section i narrates
// slide i. Non-English targets are narrated in English first and then
// translated in a separate pass.
func (g *implGenerator) Script(ctx context.Context, topic, slideMD string, persona lecture.Persona, contextMD, language string) (string, error) {
	if contextMD == "" {
		contextMD = "Not provided"
	}

	g.logger.Info(ctx, "Generating narration script for '%s' as %s", topic, persona.Prompt)

	prompt := fmt.Sprintf(scriptPrompt, persona.Prompt, topic, slideMD, contextMD)
	script, err := g.llm.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate script: %w", err)
	}

	// Structural fallback: inject the title header when the model drops it
	if !strings.Contains(script, "## Title") {
		script = fmt.Sprintf("## Title: %s\n\n%s", topic, strings.TrimSpace(script))
	}

	if strings.ToLower(strings.TrimSpace(language)) != "english" {
		return g.translate(ctx, script, language)
	}
	return script, nil
}
