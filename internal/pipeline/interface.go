package pipeline

import (
	"context"

	"github.com/saarthak20/CollegeAi/internal/lecture"
)

// Result lists the artifacts of one lecture run.
type Result struct {
	LecturePath  string
	ScriptPath   string
	DeckPath     string
	SubtitlePath string
	VideoPath    string
	NotesPath    string
	Sections     int
}

// Pipeline runs the full lecture generation sequence: slide markdown,
// narration script, rendered deck, slide images, per-slide audio,
// subtitles, and the synchronized video.
type Pipeline interface {
	Run(ctx context.Context, req lecture.Request, contextMD string) (*Result, error)
}
