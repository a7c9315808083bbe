package assess

import (
	"context"
	"encoding/json"
	"fmt"
)

const quizPrompt = `You are an expert educator creating a multiple-choice quiz.

Topic: %s

Slide Content:
"""%s"""

Context Summary:
"""%s"""

Generate %d %s MCQs in the following strict JSON format.
Return ONLY the JSON array, no additional text or formatting:

[
  {
    "question": "Question text here",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correct": "B",
    "explanation": "Short explanation why B is correct"
  }
]

Rules:
- Keep questions clear and unambiguous.
- Only one correct answer per question.
- Match difficulty requested.
- Ensure factual accuracy.
- Return ONLY valid JSON, no markdown formatting or extra text.`

// Quiz generates multiple-choice questions. Items failing shape validation
// are logged and skipped; a parse failure yields an empty result. Errors
// never propagate past this boundary.
func (g *implGenerator) Quiz(ctx context.Context, topic, slideMD, contextMD string, numQuestions int, difficulty string) []QuizItem {
	if slideMD == "" {
		slideMD = "Not provided"
	}
	if contextMD == "" {
		contextMD = "Not provided"
	}

	prompt := fmt.Sprintf(quizPrompt, topic, slideMD, contextMD, numQuestions, difficulty)
	raw, err := g.llm.GenerateText(ctx, prompt)
	if err != nil {
		g.logger.Error(ctx, "Quiz generation failed: %v", err)
		return nil
	}

	items, err := ParseQuiz(raw)
	if err != nil {
		g.logger.Error(ctx, "Quiz response rejected: %v", err)
		return nil
	}

	for i := len(items) - 1; i >= 0; i-- {
		if reason := validateQuizItem(items[i]); reason != "" {
			g.logger.Warn(ctx, "Skipping quiz question %d: %s", i+1, reason)
			items = append(items[:i], items[i+1:]...)
		}
	}

	g.logger.Info(ctx, "Generated %d quiz questions for '%s'", len(items), topic)
	return items
}

// ParseQuiz sanitizes and parses a model response into quiz items, binding
// each correct letter to an option index. Shape violations surface per item
// through validateQuizItem, not here.
func ParseQuiz(raw string) ([]QuizItem, error) {
	cleaned := CleanJSON(raw)

	var items []QuizItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("parse quiz JSON: %w", err)
	}

	for i := range items {
		if idx, ok := correctLetters[items[i].Correct]; ok {
			items[i].CorrectIndex = idx
		}
	}
	return items, nil
}

func validateQuizItem(q QuizItem) string {
	if q.Question == "" {
		return "missing question text"
	}
	if len(q.Options) != 4 {
		return fmt.Sprintf("has %d options, want exactly 4", len(q.Options))
	}
	if _, ok := correctLetters[q.Correct]; !ok {
		return fmt.Sprintf("invalid correct answer %q", q.Correct)
	}
	if q.Explanation == "" {
		return "missing explanation"
	}
	return ""
}
