// Package notes exports lecture markdown (or a context brief) as a styled
// Word document for students who want printable notes.
package notes

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	bodyFont = "Calibri"
	bodySize = 12
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^[-*]\s+(.+)$`)
	reOrdered  = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	reBoldSpan = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// WriteDocx converts markdown into a docx file at outPath. Fenced code
// blocks keep their text verbatim; inline markers are stripped.
func WriteDocx(title, markdown, outPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	heading(doc, title, 16)

	inCode := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			p := doc.AddParagraph("")
			p.AddText(line).Font("Courier New").Size(10).Color("333333")
			continue
		}

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			heading(doc, m[2], headingSize(len(m[1])))
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			styledText(doc.AddParagraph(""), "• "+m[1])
			continue
		}
		if reOrdered.MatchString(trimmed) {
			styledText(doc.AddParagraph(""), trimmed)
			continue
		}

		styledText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 14
	case 3:
		return 13
	default:
		return bodySize
	}
}

func heading(doc *docx.RootDoc, text string, size uint64) {
	p := doc.AddParagraph("")
	p.AddText(stripInline(text)).Font(bodyFont).Size(size).Color("000000").Bold(true)
}

// styledText renders a line, bolding **spans** and stripping the markers.
func styledText(p *docx.Paragraph, text string) {
	plain := reBoldSpan.Split(text, -1)
	bold := reBoldSpan.FindAllStringSubmatch(text, -1)

	for i, part := range plain {
		if part != "" {
			p.AddText(stripInline(part)).Font(bodyFont).Size(bodySize).Color("000000")
		}
		if i < len(bold) {
			p.AddText(stripInline(bold[i][1])).Font(bodyFont).Size(bodySize).Color("000000").Bold(true)
		}
	}
}

func stripInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
