package extract

import "fmt"

// Error reports a failed context extraction: an unresolvable video URL, a
// transcript the provider does not have, or an unreadable PDF. The pipeline
// halts for that input when it sees one.
type Error struct {
	Source string // "youtube" or "pdf"
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed (%s): %s: %v", e.Source, e.Msg, e.Err)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.Source, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }
