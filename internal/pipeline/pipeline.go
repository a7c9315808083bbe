package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/saarthak20/CollegeAi/internal/lecture"
	"github.com/saarthak20/CollegeAi/internal/notes"
	"github.com/saarthak20/CollegeAi/internal/video"
)

// Run executes the full sequence. Every stage persists its file output
// before the next stage reads it; a failure at any stage aborts the run
// with no partial video.
func (p *implPipeline) Run(ctx context.Context, req lecture.Request, contextMD string) (*Result, error) {
	startTime := time.Now()
	workdir := p.cfg.Paths.Workdir

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting lecture run: %s (%s, %s)", req.Topic, req.Length, req.Language)
	p.logger.Info(ctx, "========================================")

	// Stage 1: slide markdown
	slideMD, err := p.content.SlideContent(ctx, req.Topic, req.Length, contextMD, req.Language)
	if err != nil {
		return nil, fmt.Errorf("slide content: %w", err)
	}
	lecturePath := filepath.Join(workdir, req.LectureFile())
	if err := os.WriteFile(lecturePath, []byte(slideMD), 0644); err != nil {
		return nil, fmt.Errorf("write lecture markdown: %w", err)
	}
	p.logger.Info(ctx, "Slide content saved to %s", lecturePath)

	// Stage 2: narration script
	script, err := p.content.Script(ctx, req.Topic, slideMD, req.Persona, contextMD, req.Language)
	if err != nil {
		return nil, fmt.Errorf("narration script: %w", err)
	}
	scriptPath := filepath.Join(workdir, req.ScriptFile())
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		return nil, fmt.Errorf("write narration script: %w", err)
	}
	p.logger.Info(ctx, "Professor script saved to %s", scriptPath)

	// Stage 3: deck -> PDF -> slide images
	deckPath, err := p.renderer.RenderDeck(ctx, lecturePath, req.Theme)
	if err != nil {
		return nil, err
	}
	pdfPath, err := p.renderer.DeckToPDF(ctx, deckPath)
	if err != nil {
		return nil, err
	}
	imageDir := filepath.Join(workdir, "slides_images")
	images, err := p.renderer.PDFToImages(ctx, pdfPath, imageDir)
	if err != nil {
		return nil, err
	}

	// Stage 4: per-slide audio
	audioFiles, err := p.synth.SynthesizePerSection(ctx, script, req.Persona.Voice, workdir)
	if err != nil {
		return nil, fmt.Errorf("synthesize narration: %w", err)
	}

	// The synthesizer drops empty sections, so the counts can drift from
	// the rendered deck. Fail loudly before pairing instead of guessing.
	if len(images) != len(audioFiles) {
		return nil, &video.MismatchError{Images: len(images), Audio: len(audioFiles)}
	}

	// Stage 5: subtitles
	subtitlePath := filepath.Join(workdir, "subtitles.srt")
	if err := p.subtitles.Generate(ctx, script, workdir, subtitlePath); err != nil {
		return nil, fmt.Errorf("subtitles: %w", err)
	}

	// Stage 6: final video
	videoPath := filepath.Join(workdir, req.VideoFile())
	if err := p.assembler.Assemble(ctx, images, audioFiles, videoPath); err != nil {
		return nil, err
	}

	// Stage 7: printable notes
	notesPath := strings.TrimSuffix(lecturePath, ".md") + "_Notes.docx"
	if err := notes.WriteDocx(req.Topic, slideMD, notesPath); err != nil {
		p.logger.Warn(ctx, "Failed to export notes docx: %v", err)
		notesPath = ""
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Lecture generation complete!")
	p.logger.Info(ctx, "Video: %s", videoPath)
	p.logger.Info(ctx, "Total time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return &Result{
		LecturePath:  lecturePath,
		ScriptPath:   scriptPath,
		DeckPath:     deckPath,
		SubtitlePath: subtitlePath,
		VideoPath:    videoPath,
		NotesPath:    notesPath,
		Sections:     len(images),
	}, nil
}
