package export

import (
	"fmt"
	"math"
)

// Frame conversion rules are shared by every exporter so per-track positions
// agree across formats: clip durations round to the nearest frame, raw
// position sums floor. Positions accumulated as integer frame durations obey
// both rules at once, which keeps long tracks drift-free.

func fpsInt(rate float64) int {
	f := int(math.Round(rate))
	if f <= 0 {
		f = 30
	}
	return f
}

func durationFrames(sec, rate float64) int {
	return int(math.Round(sec * rate))
}

func positionFrames(sec, rate float64) int {
	return int(math.Floor(sec * rate))
}

// frameTimecode renders an absolute frame count as HH:MM:SS:FF, rolling
// frames into seconds at the given integer rate.
func frameTimecode(frames, fps int) string {
	ff := frames % fps
	totalSeconds := frames / fps
	ss := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	mm := totalMinutes % 60
	hh := totalMinutes / 60
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hh, mm, ss, ff)
}

// secondsTimecode renders a raw seconds position as a timecode, flooring to
// whole frames.
func secondsTimecode(sec, rate float64) string {
	return frameTimecode(positionFrames(sec, rate), fpsInt(rate))
}

// trackCursors holds the running frame offset per track. Track numbers are
// dense small integers assigned sequentially by the assembler, so a
// grow-on-demand slice indexed by track beats a map. Cursor state is local to
// one export call; exporters never share it.
type trackCursors []int

// advance returns the current offset for track and moves it forward by
// frames.
func (tc *trackCursors) advance(track, frames int) int {
	for len(*tc) <= track {
		*tc = append(*tc, 0)
	}
	off := (*tc)[track]
	(*tc)[track] += frames
	return off
}
