package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/ashofman/cutplan/internal/types"
)

// EDL serializes the project as a CMX3600 edit decision list: numbered
// events with source and record timecodes, video events before audio events,
// in per-track presentation order. EDL has no lane or track concept, so the
// track structure survives only through event ordering.
func EDL(p types.TimelineProject) string {
	fps := fpsInt(p.FrameRate)
	isDropFrame := math.Abs(p.FrameRate-29.97) < 0.01 || math.Abs(p.FrameRate-59.94) < 0.01

	lines := []string{fmt.Sprintf("TITLE: %s", p.ProjectName)}
	if isDropFrame {
		lines = append(lines, "FCM: DROP FRAME")
	} else {
		lines = append(lines, "FCM: NON-DROP FRAME")
	}
	lines = append(lines, "")

	event := 0
	var cursors trackCursors
	emit := func(clips []types.TimelineClip, channel string) {
		for _, tr := range clipsByTrack(clips) {
			for _, c := range tr {
				event++
				durF := durationFrames(c.Duration, p.FrameRate)
				srcIn := positionFrames(c.Start, p.FrameRate)
				recIn := cursors.advance(c.Track, durF)

				lines = append(lines,
					fmt.Sprintf("%03d  %-8s %-5s C        %s %s %s %s",
						event, "AX", channel,
						frameTimecode(srcIn, fps), frameTimecode(srcIn+durF, fps),
						frameTimecode(recIn, fps), frameTimecode(recIn+durF, fps)),
					fmt.Sprintf("* FROM CLIP NAME:  %s", c.Name),
					fmt.Sprintf("* SOURCE FILE:  %s", c.SourcePath),
				)
			}
		}
	}
	emit(p.VideoClips, "V")
	emit(p.AudioClips, "A")

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
