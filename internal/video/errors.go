package video

import "fmt"

// MismatchError reports a slide/audio count inequality. Assembly never
// starts when the two sequences cannot be paired index-for-index.
type MismatchError struct {
	Images int
	Audio  int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatch: %d slide images but %d audio files", e.Images, e.Audio)
}
