package extract

import "context"

// Extractor pulls raw text out of a YouTube transcript or a PDF and
// summarizes it into a structured markdown context brief.
type Extractor interface {
	TranscriptText(ctx context.Context, videoURL string) (string, error)
	PDFText(path string) (string, error)
	Summarize(ctx context.Context, text, topic string) (string, error)
}
