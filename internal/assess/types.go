package assess

// QuizItem is one multiple-choice question. Options are ordered and map to
// letters A-D; CorrectIndex is bound from the letter once at parse time so
// use sites never recompute letter arithmetic.
type QuizItem struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	Correct      string   `json:"correct"`
	Explanation  string   `json:"explanation"`
	CorrectIndex int      `json:"-"`
}

// CorrectOption returns the option text the Correct letter points at.
func (q QuizItem) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

// Flashcard is a front/back prompt-answer pair with no ordering dependency.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

var correctLetters = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}
