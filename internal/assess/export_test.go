package assess

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleItems() []QuizItem {
	return []QuizItem{
		{Question: "What is H2O?", Options: []string{"Salt", "Water", "Air", "Fire"}, Correct: "B", Explanation: "H2O is water.", CorrectIndex: 1},
		{Question: "Largest planet?", Options: []string{"Jupiter", "Mars", "Venus", "Earth"}, Correct: "A", Explanation: "Jupiter is largest.", CorrectIndex: 0},
		{Question: "Speed of light?", Options: []string{"3 m/s", "300 m/s", "3e5 km/s", "3e8 km/s"}, Correct: "C", Explanation: "About 3e5 km/s.", CorrectIndex: 2},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.json")
	items := sampleItems()

	if err := WriteJSON("Science", items, time.Now(), path); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	env, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if env.Topic != "Science" {
		t.Errorf("Topic = %q, want Science", env.Topic)
	}
	if env.Count != 3 || len(env.Items) != 3 {
		t.Fatalf("Count = %d, Items = %d, want 3", env.Count, len(env.Items))
	}

	for i, want := range items {
		got := env.Items[i]
		if got.Question != want.Question || got.Correct != want.Correct || got.Explanation != want.Explanation {
			t.Errorf("item %d = %+v, want %+v", i, got, want)
		}
		for j := range want.Options {
			if got.Options[j] != want.Options[j] {
				t.Errorf("item %d option %d = %q, want %q", i, j, got.Options[j], want.Options[j])
			}
		}
		if got.CorrectIndex != want.CorrectIndex {
			t.Errorf("item %d CorrectIndex not rebound: %d", i, got.CorrectIndex)
		}
	}
}

func TestMoodleXMLShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.xml")

	if err := WriteMoodleXML("Science", sampleItems(), path); err != nil {
		t.Fatalf("WriteMoodleXML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	xml := string(data)

	if got := strings.Count(xml, `<question type="multichoice">`); got != 3 {
		t.Errorf("multichoice questions = %d, want 3", got)
	}
	if got := strings.Count(xml, `fraction="100"`); got != 3 {
		t.Errorf("fraction=100 answers = %d, want exactly one per question (3)", got)
	}
	if got := strings.Count(xml, `fraction="0"`); got != 9 {
		t.Errorf("fraction=0 answers = %d, want 9", got)
	}
	for _, tag := range []string{"<defaultgrade>1</defaultgrade>", "<penalty>0.1</penalty>", "<![CDATA[", `format="html"`} {
		if !strings.Contains(xml, tag) {
			t.Errorf("XML missing %q", tag)
		}
	}
	if !strings.Contains(xml, "<![CDATA[What is H2O?]]>") {
		t.Error("question text not CDATA-wrapped")
	}
}

func TestMoodleXMLAnswerCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.xml")
	if err := WriteMoodleXML("T", sampleItems(), path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if got := strings.Count(string(data), "<answer "); got != 12 {
		t.Errorf("answers = %d, want 12 (4 per question)", got)
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.txt")
	if err := WriteText("Science", sampleItems(), path); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	text := string(data)
	for _, want := range []string{"Q1. What is H2O?", "B) Water", "Answer Key", "Q1: B - H2O is water."} {
		if !strings.Contains(text, want) {
			t.Errorf("text export missing %q", want)
		}
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.pdf")
	if err := WritePDF("Science", sampleItems(), path); err != nil {
		t.Fatalf("WritePDF() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PDF export is empty")
	}
}
