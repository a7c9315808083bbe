package lecture

import (
	"fmt"
	"strings"
	"time"
)

// File naming is a contract with interoperating tools and must stay
// bit-for-bit stable. All topic-derived names replace spaces with
// underscores.

func topicSlug(topic string) string {
	return strings.ReplaceAll(strings.TrimSpace(topic), " ", "_")
}

// LectureFile is the slide markdown file: Lecture_<topic>.md
func (r Request) LectureFile() string {
	return fmt.Sprintf("Lecture_%s.md", topicSlug(r.Topic))
}

// ScriptFile is the narration script: <lecture_base>_<language>_ProfessorScript.md
func (r Request) ScriptFile() string {
	base := strings.TrimSuffix(r.LectureFile(), ".md")
	return fmt.Sprintf("%s_%s_ProfessorScript.md", base, r.Language)
}

// DeckFile is the rendered slide deck: Slides_<topic>.pptx
func (r Request) DeckFile() string {
	return fmt.Sprintf("Slides_%s.pptx", topicSlug(r.Topic))
}

// VideoFile is the final lecture video, named after the deck.
func (r Request) VideoFile() string {
	return strings.TrimSuffix(r.DeckFile(), ".pptx") + ".mp4"
}

// ContextSummaryFile is the context brief: ContextSummary_<topic>.md
func ContextSummaryFile(topic string) string {
	return fmt.Sprintf("ContextSummary_%s.md", topicSlug(topic))
}

// AudioFile is the per-slide narration clip, 1-indexed: slide_<n>.wav
func AudioFile(n int) string {
	return fmt.Sprintf("slide_%d.wav", n)
}

// SlideImageFile is the rendered slide image, 1-indexed: slide_<n>.png
func SlideImageFile(n int) string {
	return fmt.Sprintf("slide_%d.png", n)
}

// QuizExportFile is a timestamped quiz artifact: Quiz_<topic>_<YYYYMMDD_HHMMSS>.<ext>
func QuizExportFile(topic, ext string, now time.Time) string {
	return fmt.Sprintf("Quiz_%s_%s.%s", topicSlug(topic), now.Format("20060102_150405"), ext)
}
