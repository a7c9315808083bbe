package llm

import (
	"github.com/saarthak20/CollegeAi/internal/logger"
)

type implClient struct {
	apiKeys    []string
	currentKey int
	model      string
	ttsModel   string
	logger     logger.Logger
}

// New creates a Client that rotates through the supplied Gemini API keys
// when a key hits its quota.
func New(apiKeys []string, model, ttsModel string, log logger.Logger) Client {
	return &implClient{
		apiKeys:  apiKeys,
		model:    model,
		ttsModel: ttsModel,
		logger:   log,
	}
}
