package extract

import (
	"net/http"
	"time"

	"github.com/saarthak20/CollegeAi/internal/llm"
	"github.com/saarthak20/CollegeAi/internal/logger"
)

const defaultTranscriptURL = "https://video.google.com/timedtext"

type implExtractor struct {
	llm           llm.Client
	logger        logger.Logger
	httpClient    *http.Client
	transcriptURL string
	maxChars      int
}

// New creates an Extractor. maxChars bounds how much extracted text is fed
// into the summarization prompt.
func New(client llm.Client, log logger.Logger, maxChars int) Extractor {
	return &implExtractor{
		llm:           client,
		logger:        log,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		transcriptURL: defaultTranscriptURL,
		maxChars:      maxChars,
	}
}
