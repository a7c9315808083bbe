package pipeline

import (
	"github.com/saarthak20/CollegeAi/internal/config"
	"github.com/saarthak20/CollegeAi/internal/content"
	"github.com/saarthak20/CollegeAi/internal/logger"
	"github.com/saarthak20/CollegeAi/internal/slides"
	"github.com/saarthak20/CollegeAi/internal/subtitle"
	"github.com/saarthak20/CollegeAi/internal/tts"
	"github.com/saarthak20/CollegeAi/internal/video"
)

type implPipeline struct {
	cfg       *config.Config
	logger    logger.Logger
	content   content.Generator
	renderer  slides.Renderer
	synth     tts.Synthesizer
	assembler video.Assembler
	subtitles *subtitle.Generator
}

// New wires the pipeline stages together.
func New(cfg *config.Config, log logger.Logger, gen content.Generator, renderer slides.Renderer, synth tts.Synthesizer, assembler video.Assembler, subs *subtitle.Generator) Pipeline {
	return &implPipeline{
		cfg:       cfg,
		logger:    log,
		content:   gen,
		renderer:  renderer,
		synth:     synth,
		assembler: assembler,
		subtitles: subs,
	}
}
