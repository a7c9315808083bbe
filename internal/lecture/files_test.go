package lecture

import (
	"testing"
	"time"
)

func TestFileNames(t *testing.T) {
	req := Request{Topic: "Quantum Field Theory", Language: "French"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"lecture", req.LectureFile(), "Lecture_Quantum_Field_Theory.md"},
		{"script", req.ScriptFile(), "Lecture_Quantum_Field_Theory_French_ProfessorScript.md"},
		{"deck", req.DeckFile(), "Slides_Quantum_Field_Theory.pptx"},
		{"video", req.VideoFile(), "Slides_Quantum_Field_Theory.mp4"},
		{"context", ContextSummaryFile("Quantum Field Theory"), "ContextSummary_Quantum_Field_Theory.md"},
		{"audio", AudioFile(3), "slide_3.wav"},
		{"image", SlideImageFile(12), "slide_12.png"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestQuizExportFile(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	got := QuizExportFile("Linear Algebra", "xml", at)
	want := "Quiz_Linear_Algebra_20250314_092653.xml"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTopicSlugTrimsWhitespace(t *testing.T) {
	if got := topicSlug("  Gravity  "); got != "Gravity" {
		t.Errorf("got %q", got)
	}
}
