package lecture

import "strings"

// Section is one slide's worth of content. The Index is assigned once at
// split time and carried through narration, synthesis, and rendering, so
// alignment never depends on re-splitting text whose headers may have been
// reworded (for example by translation).
type Section struct {
	Index int
	Title string
	Body  string
}

// SplitSections splits lecture or narration markdown into ordered sections
// on "## " headers. The first section's title is recovered from a leading
// "Title:" marker when present, otherwise it defaults to "Introduction".
// Sections whose body is empty after header removal are dropped, so callers
// pairing sections with other per-slide artifacts must re-check counts.
func SplitSections(md string) []Section {
	text := strings.TrimSpace(md)
	if text == "" {
		return nil
	}

	chunks := strings.Split("\n"+text, "\n## ")

	var sections []Section
	for i, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}

		var title, body string
		if i == 0 {
			// Preamble before the first "## " header. It may open with a
			// "# Title: ..." style heading or be loose introductory text.
			title, body = splitPreamble(chunk)
		} else {
			lines := strings.SplitN(chunk, "\n", 2)
			title = titleFromHeader(lines[0])
			if len(lines) == 2 {
				body = lines[1]
			}
		}

		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}

		sections = append(sections, Section{
			Index: len(sections),
			Title: title,
			Body:  body,
		})
	}

	return sections
}

func splitPreamble(chunk string) (title, body string) {
	lines := strings.SplitN(chunk, "\n", 2)
	head := strings.TrimSpace(strings.TrimLeft(lines[0], "# "))

	if after, ok := strings.CutPrefix(head, "Title:"); ok {
		title = strings.TrimSpace(after)
	} else {
		title = "Introduction"
		body = lines[0] + "\n"
	}
	if len(lines) == 2 {
		body += lines[1]
	}
	return title, body
}

func titleFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if after, ok := strings.CutPrefix(header, "Title:"); ok {
		return strings.TrimSpace(after)
	}
	return header
}
