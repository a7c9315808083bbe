package assess

import (
	"github.com/saarthak20/CollegeAi/internal/llm"
	"github.com/saarthak20/CollegeAi/internal/logger"
)

type implGenerator struct {
	llm    llm.Client
	logger logger.Logger
}

// New creates an assessment Generator backed by the given model client.
func New(client llm.Client, log logger.Logger) Generator {
	return &implGenerator{
		llm:    client,
		logger: log,
	}
}
