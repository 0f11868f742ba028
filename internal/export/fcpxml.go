package export

import (
	"fmt"
	"strings"

	"github.com/ashofman/cutplan/internal/types"
)

const (
	// Still-image assets advertise a very large intrinsic duration so the
	// editor lets users trim a placed still outward past its on-timeline
	// length. One day of playback is far beyond any realistic extension.
	stillIntrinsicSeconds = 86400

	// Still overlays sit on the lane of their video track plus this offset,
	// keeping image lanes clear of any realistic video track count.
	fcpxmlStillLaneOffset = 10
)

// FCPXML serializes the project as FCPXML 1.9: a resources block of deduped
// assets and one sequence whose spine holds a master gap carrying every clip
// as a connected element. Video track N maps to lane N, its stills to lane
// N+10, audio track N to lane -N.
func FCPXML(p types.TimelineProject) string {
	fps := fpsInt(p.FrameRate)
	rational := func(frames int) string { return fmt.Sprintf("%d/%ds", frames, fps) }

	res := newResourceTable("r")
	formatID, _ := res.id("#format")

	var assets []string
	assetID := func(path string, still bool) string {
		id, fresh := res.id(path)
		if !fresh {
			return id
		}
		name := xmlEscape(baseName(path))
		src := xmlEscape(fileURL(path))
		if still {
			assets = append(assets, fmt.Sprintf(
				`    <asset id="%s" name="%s" src="%s" start="0s" duration="%ds" hasVideo="1" format="%s"/>`,
				id, name, src, stillIntrinsicSeconds, formatID))
		} else {
			assets = append(assets, fmt.Sprintf(
				`    <asset id="%s" name="%s" src="%s" start="0s" hasVideo="1" hasAudio="1" format="%s"/>`,
				id, name, src, formatID))
		}
		return id
	}

	var body []string
	var cursors trackCursors
	for _, tr := range clipsByTrack(p.VideoClips) {
		for _, c := range tr {
			durF := durationFrames(c.Duration, p.FrameRate)
			off := cursors.advance(c.Track, durF)
			ref := assetID(c.SourcePath, false)
			body = append(body, fmt.Sprintf(
				`          <asset-clip ref="%s" lane="%d" offset="%s" name="%s" start="%s" duration="%s"/>`,
				ref, c.Track, rational(off), xmlEscape(c.Name),
				rational(positionFrames(c.Start, p.FrameRate)), rational(durF)))

			if c.StillImagePath != "" {
				stillRef := assetID(c.StillImagePath, true)
				body = append(body, fmt.Sprintf(
					`          <video ref="%s" lane="%d" offset="%s" name="%s" duration="%s">`,
					stillRef, c.Track+fcpxmlStillLaneOffset, rational(off),
					xmlEscape(baseName(c.StillImagePath)), rational(durF)))
				body = append(body, `            <conform-rate scaleEnabled="0"/>`)
				body = append(body, `          </video>`)
			}
		}
	}
	for _, tr := range clipsByTrack(p.AudioClips) {
		for _, c := range tr {
			durF := durationFrames(c.Duration, p.FrameRate)
			off := cursors.advance(c.Track, durF)
			ref := assetID(c.SourcePath, false)
			body = append(body, fmt.Sprintf(
				`          <asset-clip ref="%s" lane="%d" offset="%s" name="%s" start="%s" duration="%s"/>`,
				ref, -c.Track, rational(off), xmlEscape(c.Name),
				rational(positionFrames(c.Start, p.FrameRate)), rational(durF)))
		}
	}

	totalF := durationFrames(p.TotalDuration, p.FrameRate)

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<!DOCTYPE fcpxml>\n")
	b.WriteString("<fcpxml version=\"1.9\">\n")
	b.WriteString("  <resources>\n")
	fmt.Fprintf(&b, "    <format id=\"%s\" name=\"FFVideoFormat1080p%d\" frameDuration=\"1/%ds\" width=\"1920\" height=\"1080\"/>\n",
		formatID, fps, fps)
	for _, a := range assets {
		b.WriteString(a)
		b.WriteByte('\n')
	}
	b.WriteString("  </resources>\n")
	b.WriteString("  <library>\n")
	fmt.Fprintf(&b, "    <event name=\"%s\">\n", xmlEscape(p.ProjectName))
	fmt.Fprintf(&b, "      <project name=\"%s\">\n", xmlEscape(p.ProjectName))
	fmt.Fprintf(&b, "        <sequence format=\"%s\" duration=\"%s\" tcStart=\"0s\" tcFormat=\"NDF\">\n",
		formatID, rational(totalF))
	b.WriteString("        <spine>\n")
	fmt.Fprintf(&b, "          <gap name=\"Gap\" offset=\"0s\" duration=\"%s\">\n", rational(totalF))
	for _, line := range body {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("          </gap>\n")
	b.WriteString("        </spine>\n")
	b.WriteString("        </sequence>\n")
	b.WriteString("      </project>\n")
	b.WriteString("    </event>\n")
	b.WriteString("  </library>\n")
	b.WriteString("</fcpxml>\n")
	return b.String()
}
