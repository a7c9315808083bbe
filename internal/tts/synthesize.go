package tts

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/saarthak20/CollegeAi/internal/lecture"
	"github.com/saarthak20/CollegeAi/internal/wavio"
)

// SynthesizePerSection splits the narration script on its section headers
// and synthesizes one WAV per section, named slide_<n>.wav starting at 1.
// Empty-bodied sections are dropped by the split, so the returned count can
// be lower than the raw header count; callers must re-check it against the
// slide image count before pairing.
func (s *implSynthesizer) SynthesizePerSection(ctx context.Context, scriptMD, voice, outDir string) ([]string, error) {
	sections := lecture.SplitSections(scriptMD)
	if len(sections) == 0 {
		return nil, fmt.Errorf("narration script has no sections")
	}

	s.logger.Info(ctx, "Synthesizing %d narration sections with voice '%s'", len(sections), voice)

	var files []string
	for _, sec := range sections {
		text := sec.Body
		if len(text) > s.maxChars {
			s.logger.Info(ctx, "Truncating section %d (%q) from %d to %d characters for TTS",
				sec.Index+1, sec.Title, len(text), s.maxChars)
			text = text[:s.maxChars]
		}

		pcm, err := s.llm.GenerateSpeech(ctx, text, voice)
		if err != nil {
			return nil, fmt.Errorf("synthesize section %d (%q): %w", sec.Index+1, sec.Title, err)
		}

		path := filepath.Join(outDir, lecture.AudioFile(sec.Index+1))
		if err := wavio.WriteFile(path, pcm, wavio.DefaultSampleRate); err != nil {
			return nil, fmt.Errorf("write section %d audio: %w", sec.Index+1, err)
		}

		s.logger.Info(ctx, "[%d/%d] %q -> %s", sec.Index+1, len(sections), sec.Title, path)
		files = append(files, path)
	}

	return files, nil
}
