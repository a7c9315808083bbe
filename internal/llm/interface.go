package llm

import "context"

// Client wraps the generative model provider. Text prompts return free-form
// text that callers must validate themselves; speech requests return raw
// 16-bit mono PCM at 24 kHz.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error)
}
