package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GenerateText sends a prompt to the text model and returns the concatenated
// response parts. Rotates API keys on 429 / quota errors.
func (c *implClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := c.generate(ctx, c.model, prompt, nil)
	if err != nil {
		return "", err
	}

	text := partText(result)
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// GenerateSpeech requests synthesized audio for the given text using a
// prebuilt voice and returns the raw PCM payload.
func (c *implClient) GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: voice,
				},
			},
		},
	}

	result, err := c.generate(ctx, c.ttsModel, text, cfg)
	if err != nil {
		return nil, err
	}

	pcm := partAudio(result)
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio data in model response")
	}
	return pcm, nil
}

func (c *implClient) generate(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.apiKeys[c.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
		if err != nil {
			if isQuotaError(err) {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", c.currentKey+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("generate content: %w", err)
		}

		return result, nil
	}

	return nil, fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *implClient) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func partText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text
}

func partAudio(result *genai.GenerateContentResponse) []byte {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data
		}
	}
	return nil
}
