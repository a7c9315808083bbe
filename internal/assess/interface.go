package assess

import "context"

// Generator produces quiz and flashcard artifacts from topic, slide
// markdown, and context. Malformed model output never escapes this
// boundary: both operations return an empty slice and log a diagnostic
// so the caller can offer a retry.
type Generator interface {
	Quiz(ctx context.Context, topic, slideMD, contextMD string, numQuestions int, difficulty string) []QuizItem
	Flashcards(ctx context.Context, topic string, numCards int, difficulty, language, slideMD, contextMD string) []Flashcard
}
