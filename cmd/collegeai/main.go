package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/saarthak20/CollegeAi/internal/assess"
	"github.com/saarthak20/CollegeAi/internal/config"
	"github.com/saarthak20/CollegeAi/internal/content"
	"github.com/saarthak20/CollegeAi/internal/extract"
	"github.com/saarthak20/CollegeAi/internal/lecture"
	"github.com/saarthak20/CollegeAi/internal/llm"
	"github.com/saarthak20/CollegeAi/internal/logger"
	"github.com/saarthak20/CollegeAi/internal/pipeline"
	"github.com/saarthak20/CollegeAi/internal/session"
	"github.com/saarthak20/CollegeAi/internal/slides"
	"github.com/saarthak20/CollegeAi/internal/subtitle"
	"github.com/saarthak20/CollegeAi/internal/tts"
	"github.com/saarthak20/CollegeAi/internal/video"
	"github.com/saarthak20/CollegeAi/internal/watcher"
	"github.com/saarthak20/CollegeAi/pkg/executor"
)

// app bundles the wired components for the interactive commands.
type app struct {
	cfg       *config.Config
	log       logger.Logger
	extractor extract.Extractor
	content   content.Generator
	assess    assess.Generator
	pipeline  pipeline.Pipeline
	stdin     *bufio.Reader
}

func main() {
	ctx := context.Background()

	configPath := "config.yaml"
	if v := os.Getenv("COLLEGEAI_CONFIG"); v != "" {
		configPath = v
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	for _, dir := range []string{cfg.Paths.Workdir, cfg.Paths.Output} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", dir, err)
			os.Exit(1)
		}
	}

	log := logger.New(cfg.Logging.Level)
	exec := executor.New()
	client := llm.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, cfg.Gemini.TTSModel, log)

	a := &app{
		cfg:       cfg,
		log:       log,
		extractor: extract.New(client, log, cfg.Limits.ContextChars),
		content:   content.New(client, log),
		assess:    assess.New(client, log),
		stdin:     bufio.NewReader(os.Stdin),
	}
	a.pipeline = pipeline.New(
		cfg, log,
		a.content,
		slides.New(exec, log, cfg.Tools),
		tts.New(client, log, cfg.Limits.TTSChars),
		video.New(exec, log, cfg.Tools.FFmpeg),
		subtitle.New(log),
	)

	command := "lecture"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "lecture":
		err = a.runLecture(ctx)
	case "quiz":
		err = a.runQuiz(ctx)
	case "flashcards":
		err = a.runFlashcards(ctx)
	case "context":
		err = a.runContext(ctx)
	case "watch":
		err = a.runWatch(ctx)
	default:
		err = fmt.Errorf("unknown command %q (lecture, quiz, flashcards, context, watch)", command)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, _ := a.stdin.ReadString('\n')
	return strings.TrimSpace(line)
}

// gatherContext offers the three context sources and returns the summarized
// brief (empty when the user picks none).
func (a *app) gatherContext(ctx context.Context, topic string) (string, error) {
	fmt.Println("\nSelect context source:\n1) YouTube Video\n2) PDF Notes\n3) None")
	choice := a.prompt("Enter choice (1/2/3): ")

	var text string
	var err error
	switch choice {
	case "1":
		url := a.prompt("Enter YouTube URL: ")
		text, err = a.extractor.TranscriptText(ctx, url)
	case "2":
		path := a.prompt("Enter path to PDF notes: ")
		text, err = a.extractor.PDFText(path)
	default:
		return "", nil
	}
	if err != nil {
		return "", err
	}

	brief, err := a.extractor.Summarize(ctx, text, topic)
	if err != nil {
		return "", err
	}

	briefPath := filepath.Join(a.cfg.Paths.Workdir, lecture.ContextSummaryFile(topic))
	if err := os.WriteFile(briefPath, []byte(brief), 0644); err != nil {
		return "", fmt.Errorf("write context summary: %w", err)
	}
	fmt.Printf("Context saved to %s\n", briefPath)
	return brief, nil
}

func (a *app) runLecture(ctx context.Context) error {
	fmt.Println("=== CollegeAi: Lecture Generator ===")
	topic := a.prompt("Enter topic: ")
	if topic == "" {
		return fmt.Errorf("topic is required")
	}

	contextMD, err := a.gatherContext(ctx, topic)
	if err != nil {
		return err
	}

	fmt.Println("\nChoose lecture length:\n1) Short (Revision)\n2) Detailed\n3) Coursework")
	length := lecture.LengthByChoice(a.prompt("Choice (1/2/3): "))

	language := a.prompt("Enter target language (default: English): ")
	if language == "" {
		language = "English"
	}

	fmt.Println("\nChoose professor persona:\n1) Enthusiastic\n2) Calm Mentor\n3) Friendly Senior\n4) Strict Examiner")
	persona := lecture.PersonaByChoice(a.prompt("Choice (1-4): "))

	fmt.Println("\nChoose slide theme:\n1) Light Blue\n2) Dark\n3) Pastel\n4) Minimal Monochrome")
	theme := lecture.ThemeByChoice(a.prompt("Choice (1-4): "))

	req := lecture.Request{
		Topic:    topic,
		Length:   length,
		Language: language,
		Persona:  persona,
		Theme:    theme,
	}

	res, err := a.pipeline.Run(ctx, req, contextMD)
	if err != nil {
		return err
	}

	fmt.Println("\nLecture generation complete!")
	fmt.Printf("  Slides:    %s\n", res.DeckPath)
	fmt.Printf("  Script:    %s\n", res.ScriptPath)
	fmt.Printf("  Subtitles: %s\n", res.SubtitlePath)
	fmt.Printf("  Video:     %s\n", res.VideoPath)
	if res.NotesPath != "" {
		fmt.Printf("  Notes:     %s\n", res.NotesPath)
	}
	return nil
}

func (a *app) runQuiz(ctx context.Context) error {
	fmt.Println("=== CollegeAi: Quiz Generator ===")
	topic := a.prompt("Enter topic: ")
	if topic == "" {
		return fmt.Errorf("topic is required")
	}

	contextMD, err := a.gatherContext(ctx, topic)
	if err != nil {
		return err
	}

	count := 5
	if n, err := strconv.Atoi(a.prompt("Number of questions (default 5): ")); err == nil && n > 0 {
		count = n
	}
	difficulty := a.prompt("Difficulty (Easy/Medium/Hard, default Medium): ")
	if difficulty == "" {
		difficulty = "Medium"
	}

	slideMD := a.loadLectureMarkdown(topic)
	items := a.assess.Quiz(ctx, topic, slideMD, contextMD, count, difficulty)
	if len(items) == 0 {
		return fmt.Errorf("quiz generation produced no questions, try again")
	}

	a.playQuiz(items)
	return a.exportQuiz(topic, items)
}

// playQuiz runs the interactive answer loop over a fresh session.
func (a *app) playQuiz(items []assess.QuizItem) {
	s := session.NewQuiz(items)

	for !s.Done() {
		q := s.Question()
		fmt.Printf("\nQ%d. %s\n", s.Current+1, q.Question)
		for j, opt := range q.Options {
			fmt.Printf("   %c) %s\n", 'A'+j, opt)
		}

		answer := strings.ToUpper(a.prompt("Your answer (A-D): "))
		if len(answer) != 1 || answer[0] < 'A' || answer[0] > 'D' {
			fmt.Println("Please answer with A, B, C, or D.")
			continue
		}
		idx := int(answer[0] - 'A')

		if s.Answer(idx) {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Incorrect. The answer was %s. %s\n", q.Correct, q.Explanation)
		}
	}

	fmt.Printf("\nFinal score: %d/%d\n", s.Score, len(s.Items))
}

func (a *app) exportQuiz(topic string, items []assess.QuizItem) error {
	fmt.Println("\nExport quiz as:\n1) PDF\n2) Moodle XML\n3) JSON\n4) Text\n5) Skip")
	choice := a.prompt("Choice (1-5): ")

	now := time.Now()
	var err error
	var path string

	switch choice {
	case "1":
		path = filepath.Join(a.cfg.Paths.Output, lecture.QuizExportFile(topic, "pdf", now))
		err = assess.WritePDF(topic, items, path)
	case "2":
		path = filepath.Join(a.cfg.Paths.Output, lecture.QuizExportFile(topic, "xml", now))
		err = assess.WriteMoodleXML(topic, items, path)
	case "3":
		path = filepath.Join(a.cfg.Paths.Output, lecture.QuizExportFile(topic, "json", now))
		err = assess.WriteJSON(topic, items, now, path)
	case "4":
		path = filepath.Join(a.cfg.Paths.Output, lecture.QuizExportFile(topic, "txt", now))
		err = assess.WriteText(topic, items, path)
	default:
		return nil
	}

	if err != nil {
		return err
	}
	fmt.Printf("Quiz exported to %s\n", path)
	return nil
}

func (a *app) runFlashcards(ctx context.Context) error {
	fmt.Println("=== CollegeAi: Flashcard Generator ===")
	topic := a.prompt("Enter topic: ")
	if topic == "" {
		return fmt.Errorf("topic is required")
	}

	contextMD, err := a.gatherContext(ctx, topic)
	if err != nil {
		return err
	}

	count := 10
	if n, err := strconv.Atoi(a.prompt("Number of cards (default 10): ")); err == nil && n > 0 {
		count = n
	}
	difficulty := a.prompt("Difficulty (Easy/Medium/Hard, default Medium): ")
	if difficulty == "" {
		difficulty = "Medium"
	}
	language := a.prompt("Language (default English): ")
	if language == "" {
		language = "English"
	}

	slideMD := a.loadLectureMarkdown(topic)
	cards := a.assess.Flashcards(ctx, topic, count, difficulty, language, slideMD, contextMD)
	if len(cards) == 0 {
		return fmt.Errorf("flashcard generation produced no cards, try again")
	}

	for i, card := range cards {
		fmt.Printf("\nCard %d\n  Front: %s\n", i+1, card.Front)
		a.prompt("  (press Enter to flip) ")
		fmt.Printf("  Back:  %s\n", card.Back)
	}
	return nil
}

func (a *app) runContext(ctx context.Context) error {
	fmt.Println("=== CollegeAi: Context Extractor ===")
	topic := a.prompt("Enter the topic name for context summary: ")
	if topic == "" {
		return fmt.Errorf("topic is required")
	}

	brief, err := a.gatherContext(ctx, topic)
	if err != nil {
		return err
	}
	if brief == "" {
		return fmt.Errorf("no context source selected")
	}

	preview := brief
	if len(preview) > 1500 {
		preview = preview[:1500] + "\n\n[Truncated]"
	}
	fmt.Println("\nPreview:")
	fmt.Println(preview)
	return nil
}

// runWatch monitors the inbox for dropped PDFs and writes a context brief
// for each, named after the PDF.
func (a *app) runWatch(ctx context.Context) error {
	if err := os.MkdirAll(a.cfg.Paths.Inbox, 0755); err != nil {
		return fmt.Errorf("create inbox: %w", err)
	}

	handler := func(ctx context.Context, path string) error {
		topic := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		text, err := a.extractor.PDFText(path)
		if err != nil {
			return err
		}
		brief, err := a.extractor.Summarize(ctx, text, topic)
		if err != nil {
			return err
		}
		out := filepath.Join(a.cfg.Paths.Output, lecture.ContextSummaryFile(topic))
		return os.WriteFile(out, []byte(brief), 0644)
	}

	w, err := watcher.New(a.cfg.Paths.Inbox, handler, a.log, a.cfg.Watch.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	a.log.Info(ctx, "Watching %s for PDF notes. Press Ctrl+C to stop", a.cfg.Paths.Inbox)

	select {
	case <-sigChan:
		a.log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}

// loadLectureMarkdown returns previously generated slide markdown for the
// topic when it exists, so quizzes and flashcards can ground on it.
func (a *app) loadLectureMarkdown(topic string) string {
	req := lecture.Request{Topic: topic}
	data, err := os.ReadFile(filepath.Join(a.cfg.Paths.Workdir, req.LectureFile()))
	if err != nil {
		return ""
	}
	return string(data)
}
