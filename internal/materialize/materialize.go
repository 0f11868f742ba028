// Package materialize physically cuts media per clip interval and grabs
// representative still frames. A failed cut abandons the whole file's clip
// list; a failed still is skipped with a warning so the batch proceeds.
package materialize

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ashofman/cutplan/internal/ports"
	"github.com/ashofman/cutplan/internal/types"
)

const (
	// Stills are sampled shortly after the cut point but never past the end
	// of the interval, guarding against near-zero-length spans.
	stillOffset   = 0.5
	stillEndGuard = 0.1
)

// Error marks a failed clip extraction. It is fatal for the affected file's
// track and non-fatal for the batch.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("materialize clips for %s: %v", e.Source, e.Err)
}
func (e *Error) Unwrap() error { return e.Err }

// Clip is one materialized interval. PaddedDuration is the on-timeline
// duration: for audio clips it includes the synthetic silence pad, for video
// clips it equals the interval duration.
type Clip struct {
	Interval       types.ClipInterval
	StillPath      string
	PaddedDuration float64
}

// Video cuts each interval out of source into clipsDir, re-encoding for
// frame-accurate cut points, and optionally grabs one still per clip into
// stillsDir. Still failures are logged and skipped.
func Video(ctx context.Context, tool ports.MediaTool, source string, intervals []types.ClipInterval, clipsDir, stillsDir string, withStills bool, logf func(string, ...any)) ([]Clip, error) {
	out := make([]Clip, 0, len(intervals))
	for _, iv := range intervals {
		clipPath := filepath.Join(clipsDir, clipName(source, iv.Index, filepath.Ext(source)))
		if err := tool.CutVideoClip(ctx, source, iv.Start, iv.End, clipPath); err != nil {
			return nil, &Error{Source: source, Err: err}
		}
		iv.MaterializedPath = clipPath

		c := Clip{Interval: iv, PaddedDuration: iv.Duration()}
		if withStills {
			at := iv.Start + stillOffset
			if limit := iv.End - stillEndGuard; at > limit {
				at = limit
			}
			if at < iv.Start {
				at = iv.Start
			}
			stillPath := filepath.Join(stillsDir, clipName(source, iv.Index, ".jpg"))
			if err := tool.ExtractStill(ctx, source, at, stillPath); err != nil {
				logf("warning: still frame for %s clip %d failed, skipping: %v", source, iv.Index, err)
			} else {
				c.StillPath = stillPath
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// Audio cuts each interval sample-accurately into clipsDir, appending padSec
// seconds of synthetic silence after every clip except the last. The pad is
// how long natural pauses are shortened uniformly in the final cut.
func Audio(ctx context.Context, tool ports.MediaTool, source string, intervals []types.ClipInterval, clipsDir string, padSec float64, logf func(string, ...any)) ([]Clip, error) {
	out := make([]Clip, 0, len(intervals))
	for i, iv := range intervals {
		pad := padSec
		if i == len(intervals)-1 {
			pad = 0
		}
		clipPath := filepath.Join(clipsDir, clipName(source, iv.Index, filepath.Ext(source)))
		if err := tool.CutAudioClip(ctx, source, iv.Start, iv.End, pad, clipPath); err != nil {
			return nil, &Error{Source: source, Err: err}
		}
		iv.MaterializedPath = clipPath
		out = append(out, Clip{Interval: iv, PaddedDuration: iv.Duration() + pad})
	}
	return out, nil
}

func clipName(source string, index int, ext string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return fmt.Sprintf("%s_%03d%s", base, index, ext)
}
