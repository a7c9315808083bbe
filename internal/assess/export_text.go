package assess

import (
	"fmt"
	"os"
	"strings"
)

// WriteText exports quiz items as plain text with an answer key at the end.
func WriteText(topic string, items []QuizItem, path string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Quiz: %s\n", topic)
	sb.WriteString(strings.Repeat("=", len(topic)+6) + "\n\n")

	for i, item := range items {
		fmt.Fprintf(&sb, "Q%d. %s\n", i+1, item.Question)
		for j, opt := range item.Options {
			fmt.Fprintf(&sb, "   %c) %s\n", 'A'+j, opt)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Answer Key\n----------\n")
	for i, item := range items {
		fmt.Fprintf(&sb, "Q%d: %s - %s\n", i+1, item.Correct, item.Explanation)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write quiz text: %w", err)
	}
	return nil
}
