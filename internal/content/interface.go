package content

import (
	"context"

	"github.com/saarthak20/CollegeAi/internal/lecture"
)

// Generator produces lecture slide markdown and the matching narration
// script from a topic plus optional context.
type Generator interface {
	SlideContent(ctx context.Context, topic string, length lecture.Length, contextMD, language string) (string, error)
	Script(ctx context.Context, topic, slideMD string, persona lecture.Persona, contextMD, language string) (string, error)
}
