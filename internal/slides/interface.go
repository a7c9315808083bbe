package slides

import (
	"context"

	"github.com/saarthak20/CollegeAi/internal/lecture"
)

// Renderer converts lecture markdown into a themed slide deck, the deck
// into a PDF, and the PDF into one image per slide. Image ordering follows
// slide order and the image count equals the section count of the markdown.
type Renderer interface {
	RenderDeck(ctx context.Context, mdPath string, theme lecture.Theme) (string, error)
	DeckToPDF(ctx context.Context, deckPath string) (string, error)
	PDFToImages(ctx context.Context, pdfPath, outDir string) ([]string, error)
}
