// Package subtitle builds an SRT track for the lecture video from the
// narration script and the per-slide audio durations.
package subtitle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/saarthak20/CollegeAi/internal/lecture"
	"github.com/saarthak20/CollegeAi/internal/logger"
	"github.com/saarthak20/CollegeAi/internal/wavio"
)

type Generator struct {
	logger logger.Logger
}

func New(log logger.Logger) *Generator {
	return &Generator{logger: log}
}

// Generate writes an SRT file whose cue timings follow the cumulative
// durations of slide_<n>.wav in audioDir. Sections whose audio file is
// missing are skipped with a log note.
func (g *Generator) Generate(ctx context.Context, scriptMD, audioDir, outPath string) error {
	sections := lecture.SplitSections(scriptMD)
	if len(sections) == 0 {
		return fmt.Errorf("narration script has no sections")
	}

	var cues []string
	current := 0.0
	index := 1

	for _, sec := range sections {
		audioPath := filepath.Join(audioDir, lecture.AudioFile(sec.Index+1))
		duration, err := wavio.Duration(audioPath)
		if err != nil {
			g.logger.Warn(ctx, "Missing audio file %s, skipping subtitle cue", audioPath)
			continue
		}

		start := formatTimestamp(current)
		end := formatTimestamp(current + duration)
		current += duration

		cues = append(cues,
			fmt.Sprintf("%d", index),
			fmt.Sprintf("%s --> %s", start, end),
			strings.TrimSpace(sec.Body),
			"",
		)
		index++
	}

	if err := os.WriteFile(outPath, []byte(strings.Join(cues, "\n")), 0644); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}

	g.logger.Info(ctx, "Subtitles saved as %s (%d cues)", outPath, index-1)
	return nil
}

// formatTimestamp renders seconds as the SRT HH:MM:SS,mmm form.
func formatTimestamp(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second))
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
