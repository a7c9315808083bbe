package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFText extracts plain text from a PDF, concatenating pages in document
// order. An unopenable document yields an *Error.
func (e *implExtractor) PDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &Error{Source: "pdf", Msg: "open document", Err: err}
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single broken page should not lose the rest of the document
			continue
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
