package assess

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// WritePDF exports quiz items as a printable PDF with correctness
// annotations and explanations.
func WritePDF(topic string, items []QuizItem, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 10, fmt.Sprintf("Quiz: %s", topic), "", "C", false)
	pdf.Ln(4)

	for i, item := range items {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 7, fmt.Sprintf("Q%d. %s", i+1, item.Question), "", "L", false)

		pdf.SetFont("Helvetica", "", 11)
		for j, opt := range item.Options {
			letter := string(rune('A' + j))
			line := fmt.Sprintf("   %s) %s", letter, opt)
			if j == item.CorrectIndex {
				line += "   [correct]"
			}
			pdf.MultiCell(0, 6, line, "", "L", false)
		}

		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, fmt.Sprintf("Explanation: %s", item.Explanation), "", "L", false)
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write quiz PDF: %w", err)
	}
	return nil
}
