package wavio

import (
	"math"
	"path/filepath"
	"testing"
)

// pcmSeconds builds a silent PCM payload of the given duration at
// DefaultSampleRate (mono, 16-bit).
func pcmSeconds(seconds float64) []byte {
	n := int(seconds * DefaultSampleRate * 2)
	return make([]byte, n)
}

func TestWriteThenDuration(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
	}{
		{"one second", 1.0},
		{"half second", 0.5},
		{"long clip", 12.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "clip.wav")
			if err := WriteFile(path, pcmSeconds(tt.seconds), DefaultSampleRate); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			got, err := Duration(path)
			if err != nil {
				t.Fatalf("Duration() error = %v", err)
			}
			if math.Abs(got-tt.seconds) > 1e-4 {
				t.Errorf("Duration() = %v, want %v", got, tt.seconds)
			}
		})
	}
}

func TestAppendSumsDurations(t *testing.T) {
	dir := t.TempDir()
	var srcs []string
	for i, sec := range []float64{1.0, 0.5, 2.0} {
		path := filepath.Join(dir, filepath.Base(dir)+string(rune('a'+i))+".wav")
		if err := WriteFile(path, pcmSeconds(sec), DefaultSampleRate); err != nil {
			t.Fatal(err)
		}
		srcs = append(srcs, path)
	}

	dst := filepath.Join(dir, "combined.wav")
	if err := Append(dst, srcs); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := Duration(dst)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-3.5) > 1e-4 {
		t.Errorf("combined duration = %v, want 3.5", got)
	}
}

func TestAppendRejectsMixedFormats(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.wav")
	b := filepath.Join(dir, "b.wav")
	if err := WriteFile(a, pcmSeconds(1), DefaultSampleRate); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(b, make([]byte, 16000*2), 16000); err != nil {
		t.Fatal(err)
	}

	if err := Append(filepath.Join(dir, "out.wav"), []string{a, b}); err == nil {
		t.Error("Append() should reject sources with different sample rates")
	}
}

func TestDurationRejectsNonWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	if err := WriteFile(path, nil, DefaultSampleRate); err != nil {
		t.Fatal(err)
	}
	// Valid but empty file is fine
	if _, err := Duration(path); err != nil {
		t.Errorf("Duration(empty wav) error = %v", err)
	}

	if _, err := Duration(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("Duration() should fail for a missing file")
	}
}
