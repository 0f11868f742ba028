package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Adapter drives the ffmpeg and ffprobe binaries through os/exec. Detection
// output is returned verbatim from the combined stream; on long media the
// detectors emit one line per boundary, so capture is unbounded rather than
// pipe-limited.
type Adapter struct {
	ffmpeg  string
	ffprobe string
}

func New(ffmpegPath, ffprobePath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath}
}

func (a *Adapter) ProbeDuration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}

func (a *Adapter) SceneChangeLog(ctx context.Context, path string, threshold float64) (string, error) {
	filter := fmt.Sprintf("select='gt(scene,%s)',showinfo", fmtFloat(threshold))
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-i", path,
		"-vf", filter,
		"-f", "null",
		"-",
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg scene detection: %w\n%s", err, string(b))
	}
	return string(b), nil
}

func (a *Adapter) SilenceLog(ctx context.Context, path string, noiseDB float64, minSilence float64) (string, error) {
	filter := fmt.Sprintf("silencedetect=noise=%sdB:d=%s", fmtFloat(noiseDB), fmtFloat(minSilence))
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-i", path,
		"-af", filter,
		"-f", "null",
		"-",
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ffmpeg silence detection: %w\n%s", err, string(b))
	}
	return string(b), nil
}

func (a *Adapter) CutVideoClip(ctx context.Context, in string, start, end float64, out string) error {
	// Re-encode instead of stream copy so the cut lands on the exact frame,
	// not the nearest keyframe.
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-ss", fmtFloat(start),
		"-to", fmtFloat(end),
		"-i", in,
		"-c:v", "libx264",
		"-preset", "veryfast",
		"-crf", "18",
		"-c:a", "aac",
		"-b:a", "192k",
		out,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg cut video: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) CutAudioClip(ctx context.Context, in string, start, end float64, padSec float64, out string) error {
	filter := fmt.Sprintf("atrim=start=%s:end=%s,asetpts=PTS-STARTPTS", fmtFloat(start), fmtFloat(end))
	if padSec > 0 {
		filter += fmt.Sprintf(",apad=pad_dur=%s", fmtFloat(padSec))
	}
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", in,
		"-af", filter,
		out,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg cut audio: %w\n%s", err, string(b))
	}
	return nil
}

func (a *Adapter) ExtractStill(ctx context.Context, in string, at float64, out string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-ss", fmtFloat(at),
		"-i", in,
		"-frames:v", "1",
		"-q:v", "2",
		out,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg extract still: %w\n%s", err, string(b))
	}
	return nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
