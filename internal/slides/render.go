package slides

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/saarthak20/CollegeAi/internal/lecture"
)

const (
	marpHint     = "install the Marp CLI: npm install -g @marp-team/marp-cli"
	sofficeHint  = "install LibreOffice: brew install --cask libreoffice (or apt install libreoffice)"
	pdftoppmHint = "install poppler: brew install poppler (or apt install poppler-utils)"
)

// marp theme/class pairs for the four deck themes
var themeStyles = map[lecture.Theme][2]string{
	lecture.ThemeLightBlue:  {"default", ""},
	lecture.ThemeDark:       {"gaia", "invert"},
	lecture.ThemePastel:     {"gaia", ""},
	lecture.ThemeMonochrome: {"uncover", ""},
}

// RenderDeck converts lecture markdown into a themed pptx deck named
// Slides_<topic>.pptx next to the markdown. One markdown section becomes
// one slide, so the deck's slide count always equals the section count.
func (r *implRenderer) RenderDeck(ctx context.Context, mdPath string, theme lecture.Theme) (string, error) {
	md, err := os.ReadFile(mdPath)
	if err != nil {
		return "", fmt.Errorf("read lecture markdown: %w", err)
	}

	sections := lecture.SplitSections(string(md))
	if len(sections) == 0 {
		return "", fmt.Errorf("lecture markdown has no sections")
	}

	deckMD := buildDeckMarkdown(sections, theme)
	deckMDPath := strings.TrimSuffix(mdPath, ".md") + "_deck.md"
	if err := os.WriteFile(deckMDPath, []byte(deckMD), 0644); err != nil {
		return "", fmt.Errorf("write deck markdown: %w", err)
	}
	defer os.Remove(deckMDPath)

	deckPath := deckPathFor(mdPath)
	r.logger.Info(ctx, "Rendering %d slides to %s", len(sections), deckPath)

	args := []string{deckMDPath, "--pptx", "--allow-local-files", "-o", deckPath}
	if _, err := r.executor.Execute(ctx, r.tools.Marp, args...); err != nil {
		return "", &ConversionError{Tool: "marp", Hint: marpHint, Err: err}
	}
	return deckPath, nil
}

// deckPathFor maps Lecture_<topic>.md to Slides_<topic>.pptx.
func deckPathFor(mdPath string) string {
	dir, base := filepath.Split(mdPath)
	base = strings.TrimSuffix(base, ".md")
	if after, ok := strings.CutPrefix(base, "Lecture_"); ok {
		base = "Slides_" + after
	} else {
		base = "Slides_" + base
	}
	return filepath.Join(dir, base+".pptx")
}

func buildDeckMarkdown(sections []lecture.Section, theme lecture.Theme) string {
	style := themeStyles[theme]

	var sb strings.Builder
	sb.WriteString("---\nmarp: true\ntheme: " + style[0] + "\n")
	if style[1] != "" {
		sb.WriteString("class: " + style[1] + "\n")
	}
	sb.WriteString("paginate: true\n---\n")

	for i, sec := range sections {
		if i > 0 {
			sb.WriteString("\n---\n")
		}
		sb.WriteString("\n# " + sec.Title + "\n\n" + sec.Body + "\n")
	}
	return sb.String()
}

// DeckToPDF converts the deck to PDF with a headless LibreOffice run,
// writing next to the deck.
func (r *implRenderer) DeckToPDF(ctx context.Context, deckPath string) (string, error) {
	outDir := filepath.Dir(deckPath)
	if outDir == "" {
		outDir = "."
	}

	r.logger.Info(ctx, "Converting %s to PDF", deckPath)

	args := []string{"--headless", "--convert-to", "pdf", "--outdir", outDir, deckPath}
	if _, err := r.executor.Execute(ctx, r.tools.Soffice, args...); err != nil {
		return "", &ConversionError{Tool: "soffice", Hint: sofficeHint, Err: err}
	}

	pdfPath := strings.TrimSuffix(deckPath, filepath.Ext(deckPath)) + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &ConversionError{Tool: "soffice", Hint: sofficeHint, Err: fmt.Errorf("expected output %s: %w", pdfPath, err)}
	}
	return pdfPath, nil
}

// PDFToImages renders one PNG per page into outDir and renames them to the
// slide_<n>.png convention, 1-indexed in page order.
func (r *implRenderer) PDFToImages(ctx context.Context, pdfPath, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}

	prefix := filepath.Join(outDir, "page")
	args := []string{"-png", "-r", "150", pdfPath, prefix}
	if _, err := r.executor.Execute(ctx, r.tools.PDFToPPM, args...); err != nil {
		return nil, &ConversionError{Tool: "pdftoppm", Hint: pdftoppmHint, Err: err}
	}

	// pdftoppm zero-pads page numbers, so a lexical sort is page order
	pages, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("glob page images: %w", err)
	}
	if len(pages) == 0 {
		return nil, &ConversionError{Tool: "pdftoppm", Hint: pdftoppmHint, Err: fmt.Errorf("no page images produced from %s", pdfPath)}
	}
	sort.Strings(pages)

	var images []string
	for i, page := range pages {
		dst := filepath.Join(outDir, lecture.SlideImageFile(i+1))
		if err := os.Rename(page, dst); err != nil {
			return nil, fmt.Errorf("rename page image: %w", err)
		}
		images = append(images, dst)
	}

	r.logger.Info(ctx, "Rendered %d slide images into %s", len(images), outDir)
	return images, nil
}
