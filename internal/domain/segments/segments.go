package segments

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/ashofman/cutplan/internal/types"
)

// MinSegment is the floor, in seconds, below which a span is treated as
// detection noise: near-duplicate scene markers inside this window collapse
// to one boundary, and content gaps no longer than this are merged away
// instead of becoming clips.
const MinSegment = 0.5

// ParseSceneTimestamps pulls scene-change timestamps out of ffmpeg's
// diagnostic stream. Both marker shapes in circulation are accepted:
// showinfo's "pts_time:12.345" (select=scene) and scdet's
// "lavfi.scd.time: 12.345". Order of appearance is preserved.
func ParseSceneTimestamps(log string) []float64 {
	var out []float64
	for _, line := range strings.Split(log, "\n") {
		if v, ok := floatAfter(line, "pts_time:"); ok {
			out = append(out, v)
			continue
		}
		if v, ok := floatAfter(line, "lavfi.scd.time:"); ok {
			out = append(out, v)
		}
	}
	return out
}

// DedupeTimestamps sorts and collapses timestamps so that no accepted entry
// lies within tol seconds of the previous accepted one. Scene filters fire on
// several nearby frames per genuine cut; only the first survives.
func DedupeTimestamps(ts []float64, tol float64) []float64 {
	if len(ts) == 0 {
		return nil
	}
	sorted := make([]float64, len(ts))
	copy(sorted, ts)
	sort.Float64s(sorted)

	out := sorted[:1]
	for _, t := range sorted[1:] {
		if t-out[len(out)-1] > tol {
			out = append(out, t)
		}
	}
	return out
}

// SceneBoundaries converts raw detected timestamps into the final boundary
// list for a file of the given total duration: a boundary is always
// synthesized at t=0, near-duplicates are collapsed, and an end-of-media
// boundary is appended when the last detection stops short of the end.
func SceneBoundaries(raw []float64, total float64) []float64 {
	bounds := DedupeTimestamps(append([]float64{0}, raw...), MinSegment)
	if total-bounds[len(bounds)-1] > MinSegment {
		bounds = append(bounds, total)
	}
	return bounds
}

// IntervalsFromBoundaries turns N ordered boundaries into at most N-1 clip
// intervals. A boundary that would close a span no longer than MinSegment is
// skipped, merging the short span into the following interval.
func IntervalsFromBoundaries(bounds []float64) []types.ClipInterval {
	var out []types.ClipInterval
	if len(bounds) == 0 {
		return out
	}
	start := bounds[0]
	for _, b := range bounds[1:] {
		if b-start <= MinSegment {
			continue
		}
		out = append(out, types.ClipInterval{Index: len(out) + 1, Start: start, End: b})
		start = b
	}
	return out
}

// ParseSilenceLog pulls the two interleaved silencedetect streams out of
// ffmpeg's diagnostic output, in order of appearance.
func ParseSilenceLog(log string) (starts, ends []float64) {
	for _, line := range strings.Split(log, "\n") {
		if v, ok := floatAfter(line, "silence_start:"); ok {
			starts = append(starts, v)
			continue
		}
		if v, ok := floatAfter(line, "silence_end:"); ok {
			ends = append(ends, v)
		}
	}
	return starts, ends
}

// ContentIntervals produces the complement of the detected silences over
// [0, total]: the span before the first silence, the spans between
// consecutive silences, and the span after the last one. The i-th start is
// paired with the i-th end; a trailing start with no end (file ends
// mid-silence) drops out of the pairing. Gaps no longer than MinSegment are
// detection noise: nothing is emitted and the cursor moves past them.
func ContentIntervals(starts, ends []float64, total float64) []types.ClipInterval {
	n := len(starts)
	if len(ends) < n {
		n = len(ends)
	}

	var out []types.ClipInterval
	cursor := 0.0
	for i := 0; i < n; i++ {
		if starts[i]-cursor > MinSegment {
			out = append(out, types.ClipInterval{Index: len(out) + 1, Start: cursor, End: starts[i]})
		}
		cursor = ends[i]
	}
	if total-cursor > MinSegment {
		out = append(out, types.ClipInterval{Index: len(out) + 1, Start: cursor, End: total})
	}
	return out
}

// floatAfter parses the float immediately following key in line, tolerating
// spaces between the key and the value.
func floatAfter(line, key string) (float64, bool) {
	i := strings.Index(line, key)
	if i < 0 {
		return 0, false
	}
	rest := strings.TrimLeftFunc(line[i+len(key):], unicode.IsSpace)
	end := 0
	for end < len(rest) {
		c := rest[end]
		if (c < '0' || c > '9') && c != '.' && c != '-' && c != '+' && c != 'e' && c != 'E' {
			break
		}
		end++
	}
	v, err := strconv.ParseFloat(rest[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
