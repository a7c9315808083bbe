// Package wavio reads and writes linear PCM WAV containers. The speech
// model returns raw 16-bit mono PCM at 24 kHz; this package wraps it in a
// standard RIFF header, measures durations from container metadata, and
// concatenates segments without re-encoding.
package wavio

import (
	"encoding/binary"
	"fmt"
	"os"
)

// DefaultSampleRate is the speech model's output rate.
const DefaultSampleRate = 24000

const (
	numChannels   = 1
	bitsPerSample = 16
)

// WriteFile wraps raw PCM in a WAV container at the given sample rate.
func WriteFile(path string, pcm []byte, sampleRate int) error {
	if err := os.WriteFile(path, withHeader(pcm, sampleRate), 0644); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	return nil
}

func withHeader(pcm []byte, sampleRate int) []byte {
	byteRate := sampleRate * numChannels * bitsPerSample / 8
	blockAlign := numChannels * bitsPerSample / 8

	buf := make([]byte, 0, 44+len(pcm))
	le := binary.LittleEndian

	u32 := func(v uint32) []byte { b := make([]byte, 4); le.PutUint32(b, v); return b }
	u16 := func(v uint16) []byte { b := make([]byte, 2); le.PutUint16(b, v); return b }

	buf = append(buf, "RIFF"...)
	buf = append(buf, u32(uint32(36+len(pcm)))...)
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	buf = append(buf, u32(16)...)
	buf = append(buf, u16(1)...) // PCM
	buf = append(buf, u16(numChannels)...)
	buf = append(buf, u32(uint32(sampleRate))...)
	buf = append(buf, u32(uint32(byteRate))...)
	buf = append(buf, u16(uint16(blockAlign))...)
	buf = append(buf, u16(bitsPerSample)...)
	buf = append(buf, "data"...)
	buf = append(buf, u32(uint32(len(pcm)))...)
	buf = append(buf, pcm...)
	return buf
}

type format struct {
	sampleRate int
	byteRate   int
	channels   int
	bits       int
}

// parse walks the RIFF chunks and returns the format plus the raw PCM data.
func parse(path string) (format, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return format{}, nil, fmt.Errorf("read wav: %w", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return format{}, nil, fmt.Errorf("%s: not a RIFF/WAVE file", path)
	}

	le := binary.LittleEndian
	var f format
	var pcm []byte
	haveFmt, haveData := false, false

	for off := 12; off+8 <= len(data); {
		id := string(data[off : off+4])
		size := int(le.Uint32(data[off+4 : off+8]))
		body := off + 8
		if body+size > len(data) {
			size = len(data) - body
		}

		switch id {
		case "fmt ":
			if size < 16 {
				return format{}, nil, fmt.Errorf("%s: short fmt chunk", path)
			}
			f.channels = int(le.Uint16(data[body+2 : body+4]))
			f.sampleRate = int(le.Uint32(data[body+4 : body+8]))
			f.byteRate = int(le.Uint32(data[body+8 : body+12]))
			f.bits = int(le.Uint16(data[body+14 : body+16]))
			haveFmt = true
		case "data":
			pcm = data[body : body+size]
			haveData = true
		}

		// Chunks are word-aligned
		off = body + size
		if size%2 == 1 {
			off++
		}
	}

	if !haveFmt || !haveData {
		return format{}, nil, fmt.Errorf("%s: missing fmt or data chunk", path)
	}
	return f, pcm, nil
}

// Duration returns the playing time in seconds, derived from the container
// metadata rather than decoding the samples.
func Duration(path string) (float64, error) {
	f, pcm, err := parse(path)
	if err != nil {
		return 0, err
	}
	if f.byteRate == 0 {
		return 0, fmt.Errorf("%s: zero byte rate", path)
	}
	return float64(len(pcm)) / float64(f.byteRate), nil
}

// Append concatenates the source files into dst by joining their raw data
// chunks. All sources must share the same sample format; nothing is
// re-encoded.
func Append(dst string, srcs []string) error {
	if len(srcs) == 0 {
		return fmt.Errorf("no source files to append")
	}

	first, pcm, err := parse(srcs[0])
	if err != nil {
		return err
	}
	combined := append([]byte(nil), pcm...)

	for _, src := range srcs[1:] {
		f, pcm, err := parse(src)
		if err != nil {
			return err
		}
		if f != first {
			return fmt.Errorf("%s: sample format differs from %s", src, srcs[0])
		}
		combined = append(combined, pcm...)
	}

	return WriteFile(dst, combined, first.sampleRate)
}
