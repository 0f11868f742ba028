package ports

import "context"

// MediaTool abstracts the external media binary (ffmpeg/ffprobe). Detection
// methods return the tool's raw diagnostic stream; parsing stays in pure
// domain code so it can be tested without a real binary.
type MediaTool interface {
	ProbeDuration(ctx context.Context, path string) (float64, error)

	// SceneChangeLog runs a frame-difference filter at the given threshold
	// (0.0-1.0, lower fires more often) and returns the diagnostic output.
	SceneChangeLog(ctx context.Context, path string, threshold float64) (string, error)

	// SilenceLog runs silence detection with the given noise floor (dB,
	// negative) and minimum silence duration in seconds.
	SilenceLog(ctx context.Context, path string, noiseDB float64, minSilence float64) (string, error)

	// CutVideoClip re-encodes the span so cut points are frame-accurate.
	CutVideoClip(ctx context.Context, in string, start, end float64, out string) error

	// CutAudioClip trims sample-accurately and resets timestamps; padSec > 0
	// appends that much synthetic silence after the trimmed span.
	CutAudioClip(ctx context.Context, in string, start, end float64, padSec float64, out string) error

	// ExtractStill grabs one frame at the given offset.
	ExtractStill(ctx context.Context, in string, at float64, out string) error
}
