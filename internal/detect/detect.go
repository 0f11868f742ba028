// Package detect runs boundary detection against the external media tool and
// turns its diagnostic output into ordered clip intervals. All parsing lives
// in domain/segments; this package owns the tool invocations and the typed
// failures around them.
package detect

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ashofman/cutplan/internal/domain/segments"
	"github.com/ashofman/cutplan/internal/ports"
	"github.com/ashofman/cutplan/internal/types"
)

// ErrInputNotFound marks a source path that does not exist. Callers skip the
// input and continue the batch.
var ErrInputNotFound = errors.New("input file not found")

// ToolError marks a failed or unparseable external tool invocation. The batch
// continues without the affected file.
type ToolError struct {
	Path string
	Err  error
}

func (e *ToolError) Error() string { return fmt.Sprintf("media tool failed for %s: %v", e.Path, e.Err) }
func (e *ToolError) Unwrap() error { return e.Err }

// Detection is one file's boundary-detection outcome.
type Detection struct {
	Intervals     []types.ClipInterval
	TotalDuration float64
}

// Scenes detects visual scene changes in a video file. sensitivity is the
// frame-difference threshold in 0.0-1.0, lower firing more often. A run that
// yields no parseable boundaries is not an error: it degrades to one clip
// spanning the whole file.
func Scenes(ctx context.Context, tool ports.MediaTool, path string, sensitivity float64) (Detection, error) {
	if _, err := os.Stat(path); err != nil {
		return Detection{}, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	total, err := tool.ProbeDuration(ctx, path)
	if err != nil {
		return Detection{}, &ToolError{Path: path, Err: err}
	}
	log, err := tool.SceneChangeLog(ctx, path, sensitivity)
	if err != nil {
		return Detection{}, &ToolError{Path: path, Err: err}
	}

	raw := segments.ParseSceneTimestamps(log)
	bounds := segments.SceneBoundaries(raw, total)
	return Detection{
		Intervals:     segments.IntervalsFromBoundaries(bounds),
		TotalDuration: total,
	}, nil
}

// Silences detects silent spans in an audio file and returns the content
// complement. noiseDB is the noise floor (negative dB); minSilence is the
// shortest span, in seconds, the tool reports as silence.
func Silences(ctx context.Context, tool ports.MediaTool, path string, noiseDB, minSilence float64) (Detection, error) {
	if _, err := os.Stat(path); err != nil {
		return Detection{}, fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	total, err := tool.ProbeDuration(ctx, path)
	if err != nil {
		return Detection{}, &ToolError{Path: path, Err: err}
	}
	log, err := tool.SilenceLog(ctx, path, noiseDB, minSilence)
	if err != nil {
		return Detection{}, &ToolError{Path: path, Err: err}
	}

	starts, ends := segments.ParseSilenceLog(log)
	return Detection{
		Intervals:     segments.ContentIntervals(starts, ends, total),
		TotalDuration: total,
	}, nil
}
