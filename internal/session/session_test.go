package session

import (
	"testing"

	"github.com/saarthak20/CollegeAi/internal/assess"
)

func twoItemQuiz() []assess.QuizItem {
	return []assess.QuizItem{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, Correct: "A", CorrectIndex: 0, Explanation: "e1"},
		{Question: "Q2", Options: []string{"a", "b", "c", "d"}, Correct: "C", CorrectIndex: 2, Explanation: "e2"},
	}
}

func TestQuizSessionFlow(t *testing.T) {
	s := NewQuiz(twoItemQuiz())

	if s.Done() {
		t.Fatal("fresh session should not be done")
	}
	if s.Question().Question != "Q1" {
		t.Errorf("first question = %q", s.Question().Question)
	}

	if !s.Answer(0) {
		t.Error("correct answer reported as wrong")
	}
	if s.Answer(1) {
		t.Error("wrong answer reported as correct")
	}

	if !s.Done() {
		t.Error("session should be done after two answers")
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if len(s.Answers) != 2 || s.Answers[0] != 0 || s.Answers[1] != 1 {
		t.Errorf("answers = %v", s.Answers)
	}
}

func TestQuizSessionReset(t *testing.T) {
	s := NewQuiz(twoItemQuiz())
	s.Answer(0)
	s.Answer(2)

	s.Reset()

	if s.Current != 0 || s.Score != 0 || s.Answers != nil {
		t.Errorf("Reset left state: current=%d score=%d answers=%v", s.Current, s.Score, s.Answers)
	}
	if len(s.Items) != 2 {
		t.Error("Reset should keep the items")
	}
}
