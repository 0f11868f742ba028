//go:build integration

package itest

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// makeCutVideo renders a short clip with one hard cut: red for the first
// half, blue for the second. The color jump is a guaranteed scene change.
func makeCutVideo(path string, halfSec float64) error {
	filter := fmt.Sprintf(
		"color=c=red:size=320x240:rate=30:duration=%[1]v[a];color=c=blue:size=320x240:rate=30:duration=%[1]v[b];[a][b]concat=n=2:v=1:a=0",
		halfSec,
	)
	cmd := exec.Command("ffmpeg", "-y",
		"-f", "lavfi", "-i", filter,
		"-c:v", "libx264", "-preset", "veryfast",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg make video: %w\n%s", err, string(b))
	}
	return nil
}

// makeGappedAudio renders tone / silence / tone so the silence detector has
// one unambiguous gap to find.
func makeGappedAudio(path string, toneSec, gapSec float64) error {
	filter := fmt.Sprintf(
		"sine=frequency=440:duration=%[1]v[a];anullsrc=channel_layout=mono:sample_rate=44100:duration=%[2]v[g];sine=frequency=440:duration=%[1]v[b];[a][g][b]concat=n=3:v=0:a=1",
		toneSec, gapSec,
	)
	cmd := exec.Command("ffmpeg", "-y",
		"-f", "lavfi", "-i", filter,
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg make audio: %w\n%s", err, string(b))
	}
	return nil
}

func probeDurationSeconds(path string) (float64, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w\n%s", err, string(b))
	}
	s := strings.TrimSpace(string(b))
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return sec, nil
}
