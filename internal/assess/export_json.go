package assess

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Envelope wraps exported quiz items with topic and generation metadata.
type Envelope struct {
	Topic       string     `json:"topic"`
	GeneratedAt string     `json:"generated_at"`
	Count       int        `json:"count"`
	Items       []QuizItem `json:"questions"`
}

// WriteJSON exports quiz items wrapped in a topic/metadata/timestamp
// envelope. Re-reading the file with ReadJSON reproduces the items in order.
func WriteJSON(topic string, items []QuizItem, now time.Time, path string) error {
	env := Envelope{
		Topic:       topic,
		GeneratedAt: now.Format(time.RFC3339),
		Count:       len(items),
		Items:       items,
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal quiz: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write quiz JSON: %w", err)
	}
	return nil
}

// ReadJSON loads a quiz export back, rebinding correct-letter indices.
func ReadJSON(path string) (Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Envelope{}, fmt.Errorf("read quiz JSON: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Envelope{}, fmt.Errorf("parse quiz JSON: %w", err)
	}

	for i := range env.Items {
		if idx, ok := correctLetters[env.Items[i].Correct]; ok {
			env.Items[i].CorrectIndex = idx
		}
	}
	return env, nil
}
