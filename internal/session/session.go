// Package session holds the interactive quiz state. It belongs to the
// presentation layer: the generation core never touches it.
package session

import "github.com/saarthak20/CollegeAi/internal/assess"

// QuizSession tracks progress through a generated quiz: the current
// question, the answers recorded so far, and the running score.
type QuizSession struct {
	Items   []assess.QuizItem
	Current int
	Answers []int
	Score   int
}

// NewQuiz starts a session over the given items.
func NewQuiz(items []assess.QuizItem) *QuizSession {
	return &QuizSession{Items: items}
}

// Done reports whether every question has been answered.
func (s *QuizSession) Done() bool {
	return s.Current >= len(s.Items)
}

// Question returns the current item; callers must check Done first.
func (s *QuizSession) Question() assess.QuizItem {
	return s.Items[s.Current]
}

// Answer records the chosen option index for the current question,
// advances, and reports whether the choice was correct.
func (s *QuizSession) Answer(optionIndex int) bool {
	correct := optionIndex == s.Items[s.Current].CorrectIndex
	if correct {
		s.Score++
	}
	s.Answers = append(s.Answers, optionIndex)
	s.Current++
	return correct
}

// Reset clears all progress, keeping the items.
func (s *QuizSession) Reset() {
	s.Current = 0
	s.Answers = nil
	s.Score = 0
}
