package notes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDocx(t *testing.T) {
	md := `# Title: Photosynthesis

## Introduction
Plants use **light** to make sugar.

## Key Points
- Chlorophyll absorbs light
- Water splits into oxygen
1. First step
2. Second step

` + "```python\nprint('hello')\n```" + `

## Summary
Light in, sugar out.
`

	path := filepath.Join(t.TempDir(), "notes.docx")
	if err := WriteDocx("Photosynthesis", md, path); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx export is empty")
	}
}

func TestStripInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold**", "bold"},
		{"some `code` here", "some code here"},
		{"__under__", "under"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := stripInline(tt.in); got != tt.want {
			t.Errorf("stripInline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
