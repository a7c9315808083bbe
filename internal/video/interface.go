package video

import "context"

// Assembler builds the final lecture video from ordered slide images and
// per-slide audio clips.
type Assembler interface {
	Assemble(ctx context.Context, images, audioFiles []string, outPath string) error
}
