package extract

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// VideoID resolves a YouTube video identifier from a URL: the "v" query
// parameter when present, otherwise the last path segment (youtu.be short
// links and bare ids). Returns an *Error when nothing is resolvable.
func VideoID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", &Error{Source: "youtube", Msg: "invalid URL", Err: err}
	}

	if id := u.Query().Get("v"); id != "" {
		return id, nil
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	id := segments[len(segments)-1]
	if id == "" {
		return "", &Error{Source: "youtube", Msg: fmt.Sprintf("no video id in %q", rawURL)}
	}
	return id, nil
}

// timedText mirrors the provider's caption track format: an ordered list of
// timed text fragments.
type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start string `xml:"start,attr"`
		Dur   string `xml:"dur,attr"`
		Value string `xml:",chardata"`
	} `xml:"text"`
}

// TranscriptText fetches the transcript for a video URL and joins the timed
// fragments with single spaces.
func (e *implExtractor) TranscriptText(ctx context.Context, videoURL string) (string, error) {
	id, err := VideoID(videoURL)
	if err != nil {
		return "", err
	}

	e.logger.Info(ctx, "Extracting YouTube transcript for video %s", id)

	endpoint := fmt.Sprintf("%s?lang=en&v=%s", e.transcriptURL, url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", &Error{Source: "youtube", Msg: "build transcript request", Err: err}
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", &Error{Source: "youtube", Msg: "fetch transcript", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Source: "youtube", Msg: fmt.Sprintf("transcript request returned %d for video %s", resp.StatusCode, id)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Source: "youtube", Msg: "read transcript body", Err: err}
	}

	var track timedText
	if err := xml.Unmarshal(body, &track); err != nil {
		return "", &Error{Source: "youtube", Msg: "parse transcript", Err: err}
	}
	if len(track.Texts) == 0 {
		return "", &Error{Source: "youtube", Msg: fmt.Sprintf("no transcript available for video %s", id)}
	}

	parts := make([]string, 0, len(track.Texts))
	for _, t := range track.Texts {
		if v := strings.TrimSpace(html.UnescapeString(t.Value)); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, " "), nil
}
