package assess

import (
	"context"
	"encoding/json"
	"fmt"
)

const flashcardPrompt = `You are an expert educator creating concise and effective flashcards.

Topic: %s
Difficulty: %s
Language: %s

Slide Content:
"""%s"""

Additional Context:
"""%s"""

Generate %d flashcards in this exact JSON format:

[
  {
    "front": "Question or prompt text",
    "back": "Answer or explanation text"
  }
]

Rules:
- Keep front short and clear.
- Back should be concise, factual, and in the chosen language.
- Avoid numbering or extra formatting.
- Return ONLY the JSON array.`

// Flashcards generates front/back study cards. Unlike quiz items, a single
// card missing either side rejects the whole result.
func (g *implGenerator) Flashcards(ctx context.Context, topic string, numCards int, difficulty, language, slideMD, contextMD string) []Flashcard {
	if slideMD == "" {
		slideMD = "Not provided"
	}
	if contextMD == "" {
		contextMD = "Not provided"
	}

	prompt := fmt.Sprintf(flashcardPrompt, topic, difficulty, language, slideMD, contextMD, numCards)
	raw, err := g.llm.GenerateText(ctx, prompt)
	if err != nil {
		g.logger.Error(ctx, "Flashcard generation failed: %v", err)
		return nil
	}

	cards, err := ParseFlashcards(raw)
	if err != nil {
		g.logger.Error(ctx, "Flashcard response rejected: %v", err)
		return nil
	}

	g.logger.Info(ctx, "Generated %d flashcards for '%s'", len(cards), topic)
	return cards
}

// ParseFlashcards sanitizes and parses a model response into flashcards.
// Every card must carry both front and back or the whole set is rejected.
func ParseFlashcards(raw string) ([]Flashcard, error) {
	cleaned := CleanJSON(raw)

	var cards []Flashcard
	if err := json.Unmarshal([]byte(cleaned), &cards); err != nil {
		return nil, fmt.Errorf("parse flashcard JSON: %w", err)
	}

	for i, c := range cards {
		if c.Front == "" || c.Back == "" {
			return nil, fmt.Errorf("card %d missing front or back", i+1)
		}
	}
	return cards, nil
}
