package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/saarthak20/CollegeAi/internal/wavio"
)

// Content is static images, so 1 fps is enough for the video track.
const outputFPS = "1"

// Assemble builds one clip per slide with the duration of its audio track,
// concatenates the clips and the audio, and muxes them into outPath. A
// count mismatch or a missing file at any index is fatal; no partial output
// is left behind.
func (a *implAssembler) Assemble(ctx context.Context, images, audioFiles []string, outPath string) error {
	if len(images) != len(audioFiles) {
		return &MismatchError{Images: len(images), Audio: len(audioFiles)}
	}
	if len(images) == 0 {
		return fmt.Errorf("nothing to assemble")
	}

	tempDir, err := os.MkdirTemp(filepath.Dir(outPath), "assemble-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	if err := a.assemble(ctx, images, audioFiles, tempDir, outPath); err != nil {
		os.Remove(outPath)
		return err
	}
	return nil
}

func (a *implAssembler) assemble(ctx context.Context, images, audioFiles []string, tempDir, outPath string) error {
	var clips []string
	for i := range images {
		if _, err := os.Stat(images[i]); err != nil {
			return fmt.Errorf("slide image %d: %w", i+1, err)
		}

		duration, err := wavio.Duration(audioFiles[i])
		if err != nil {
			return fmt.Errorf("audio segment %d: %w", i+1, err)
		}
		a.logger.Info(ctx, "Slide %d: %s, %.2f sec", i+1, filepath.Base(images[i]), duration)

		clip := filepath.Join(tempDir, fmt.Sprintf("clip_%d.mp4", i+1))
		if err := a.stillClip(ctx, images[i], duration, clip); err != nil {
			return err
		}
		clips = append(clips, clip)
	}

	// Video track: clips concatenated in index order
	silent := filepath.Join(tempDir, "video_noaudio.mp4")
	if err := a.concatClips(ctx, clips, tempDir, silent); err != nil {
		return err
	}

	// Audio track: raw sequential append, no re-encode
	combined := filepath.Join(tempDir, "combined_audio.wav")
	if err := wavio.Append(combined, audioFiles); err != nil {
		return fmt.Errorf("combine audio: %w", err)
	}

	return a.mux(ctx, silent, combined, outPath)
}

// stillClip renders a static-image clip with exactly the given duration,
// composited onto a common 1280x720 canvas so differently sized slides
// still concatenate.
func (a *implAssembler) stillClip(ctx context.Context, image string, duration float64, outPath string) error {
	args := []string{
		"-y",
		"-loop", "1",
		"-framerate", outputFPS,
		"-t", fmt.Sprintf("%.3f", duration),
		"-i", image,
		"-vf", "scale=1280:720:force_original_aspect_ratio=decrease,pad=1280:720:(ow-iw)/2:(oh-ih)/2",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-r", outputFPS,
		outPath,
	}
	if _, err := a.executor.Execute(ctx, a.ffmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg still clip for %s: %w", image, err)
	}
	return nil
}

func (a *implAssembler) concatClips(ctx context.Context, clips []string, tempDir, outPath string) error {
	var list strings.Builder
	for _, clip := range clips {
		fmt.Fprintf(&list, "file '%s'\n", filepath.Base(clip))
	}
	listPath := filepath.Join(tempDir, "clips.txt")
	if err := os.WriteFile(listPath, []byte(list.String()), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", filepath.Base(listPath),
		"-c", "copy",
		outPath,
	}
	if _, err := a.executor.ExecuteInDir(ctx, tempDir, a.ffmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg concat clips: %w", err)
	}
	return nil
}

func (a *implAssembler) mux(ctx context.Context, videoPath, audioPath, outPath string) error {
	args := []string{
		"-y",
		"-i", videoPath,
		"-i", audioPath,
		"-c:v", "copy",
		"-c:a", "aac",
		"-shortest",
		outPath,
	}
	if _, err := a.executor.Execute(ctx, a.ffmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg mux: %w", err)
	}
	a.logger.Info(ctx, "Lecture video saved as %s", outPath)
	return nil
}
