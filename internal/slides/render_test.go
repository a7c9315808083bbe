package slides

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saarthak20/CollegeAi/internal/config"
	"github.com/saarthak20/CollegeAi/internal/lecture"
	"github.com/saarthak20/CollegeAi/internal/logger"
)

type fakeExecutor struct {
	commands [][]string
	err      error
	onRun    func(args []string)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.commands = append(f.commands, append([]string{name}, args...))
	if f.err != nil {
		return "", f.err
	}
	if f.onRun != nil {
		f.onRun(args)
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func testTools() config.ToolsConfig {
	return config.ToolsConfig{Marp: "marp", Soffice: "soffice", PDFToPPM: "pdftoppm"}
}

func TestDeckPathFor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lecture_Photosynthesis.md", "Slides_Photosynthesis.pptx"},
		{"work/Lecture_Big_Bang.md", "work/Slides_Big_Bang.pptx"},
		{"notes.md", "Slides_notes.pptx"},
	}
	for _, tt := range tests {
		if got := deckPathFor(tt.in); got != tt.want {
			t.Errorf("deckPathFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderDeckMissingTool(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "Lecture_X.md")
	os.WriteFile(mdPath, []byte("## Introduction\nHi.\n"), 0644)

	fake := &fakeExecutor{err: errors.New("exec: \"marp\": executable file not found in $PATH")}
	r := New(fake, logger.New("error"), testTools())

	_, err := r.RenderDeck(context.Background(), mdPath, lecture.ThemeLightBlue)
	if err == nil {
		t.Fatal("expected error when marp is missing")
	}

	var conv *ConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("error type = %T, want *ConversionError", err)
	}
	if conv.Tool != "marp" || !strings.Contains(conv.Hint, "marp-cli") {
		t.Errorf("ConversionError = %+v", conv)
	}
}

func TestBuildDeckMarkdownOneSlidePerSection(t *testing.T) {
	sections := lecture.SplitSections("## Introduction\nA.\n\n## Section 1: B\nB body.\n\n## Summary\nC.\n")
	deck := buildDeckMarkdown(sections, lecture.ThemeDark)

	// Front matter delimiter plus one separator between each pair of slides
	if got := strings.Count(deck, "\n---\n"); got != len(sections)-1+1 {
		t.Errorf("slide separators = %d, want %d", got, len(sections))
	}
	if !strings.Contains(deck, "theme: gaia") || !strings.Contains(deck, "class: invert") {
		t.Errorf("dark theme front matter wrong:\n%s", deck)
	}
	for _, sec := range sections {
		if !strings.Contains(deck, "# "+sec.Title) {
			t.Errorf("deck missing slide for %q", sec.Title)
		}
	}
}

func TestPDFToImagesRenamesInOrder(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "imgs")

	fake := &fakeExecutor{onRun: func(args []string) {
		// Emulate pdftoppm's zero-padded page output
		prefix := args[len(args)-1]
		for i := 1; i <= 3; i++ {
			os.WriteFile(fmt.Sprintf("%s-%02d.png", prefix, i), []byte("png"), 0644)
		}
	}}
	r := New(fake, logger.New("error"), testTools())

	images, err := r.PDFToImages(context.Background(), filepath.Join(dir, "deck.pdf"), outDir)
	if err != nil {
		t.Fatalf("PDFToImages() error = %v", err)
	}

	if len(images) != 3 {
		t.Fatalf("got %d images, want 3", len(images))
	}
	for i, img := range images {
		want := filepath.Join(outDir, fmt.Sprintf("slide_%d.png", i+1))
		if img != want {
			t.Errorf("image %d = %q, want %q", i, img, want)
		}
		if _, err := os.Stat(img); err != nil {
			t.Errorf("image %d not on disk: %v", i, err)
		}
	}
}

func TestPDFToImagesNoOutput(t *testing.T) {
	fake := &fakeExecutor{} // runs fine but produces nothing
	r := New(fake, logger.New("error"), testTools())

	_, err := r.PDFToImages(context.Background(), "deck.pdf", t.TempDir())
	if err == nil {
		t.Fatal("expected error when no page images are produced")
	}
	var conv *ConversionError
	if !errors.As(err, &conv) {
		t.Errorf("error type = %T, want *ConversionError", err)
	}
}
