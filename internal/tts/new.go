package tts

import (
	"github.com/saarthak20/CollegeAi/internal/llm"
	"github.com/saarthak20/CollegeAi/internal/logger"
)

type implSynthesizer struct {
	llm      llm.Client
	logger   logger.Logger
	maxChars int
}

// New creates a Synthesizer. maxChars bounds the per-section payload sent
// to the speech model.
func New(client llm.Client, log logger.Logger, maxChars int) Synthesizer {
	return &implSynthesizer{
		llm:      client,
		logger:   log,
		maxChars: maxChars,
	}
}
