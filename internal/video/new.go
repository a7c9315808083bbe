package video

import (
	"github.com/saarthak20/CollegeAi/internal/logger"
	"github.com/saarthak20/CollegeAi/pkg/executor"
)

type implAssembler struct {
	executor executor.Executor
	logger   logger.Logger
	ffmpeg   string
}

// New creates an Assembler that shells out to the given ffmpeg binary.
func New(exec executor.Executor, log logger.Logger, ffmpegPath string) Assembler {
	return &implAssembler{
		executor: exec,
		logger:   log,
		ffmpeg:   ffmpegPath,
	}
}
