package slides

import (
	"github.com/saarthak20/CollegeAi/internal/config"
	"github.com/saarthak20/CollegeAi/internal/logger"
	"github.com/saarthak20/CollegeAi/pkg/executor"
)

type implRenderer struct {
	executor executor.Executor
	logger   logger.Logger
	tools    config.ToolsConfig
}

// New creates a Renderer that shells out to marp, soffice, and pdftoppm.
func New(exec executor.Executor, log logger.Logger, tools config.ToolsConfig) Renderer {
	return &implRenderer{
		executor: exec,
		logger:   log,
		tools:    tools,
	}
}
