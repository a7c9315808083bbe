package tts

import "context"

// Synthesizer turns a narration script into one audio file per section.
// Output ordering is positional (slide_1.wav, slide_2.wav, ...) and defines
// the pairing contract the video assembler relies on.
type Synthesizer interface {
	SynthesizePerSection(ctx context.Context, scriptMD, voice, outDir string) ([]string, error)
}
