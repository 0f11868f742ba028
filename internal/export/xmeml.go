package export

import (
	"fmt"
	"strings"

	"github.com/ashofman/cutplan/internal/types"
)

// Xmeml serializes the project in the legacy Premiere/FCP7 xmeml v4 schema:
// one <track> block per timeline track, each clip a <clipitem> embedding a
// <file> descriptor. The full descriptor is written on first reference; later
// clipitems repeat only the file id, which is how xmeml encodes resource
// dedup. Stills occupy extra video tracks after the real ones and reuse the
// long-intrinsic-duration convention so they can be trimmed outward.
func Xmeml(p types.TimelineProject) string {
	fps := fpsInt(p.FrameRate)
	files := newResourceTable("file-")
	items := 0

	var b strings.Builder
	rate := func(indent string) {
		fmt.Fprintf(&b, "%s<rate>\n%s  <timebase>%d</timebase>\n%s  <ntsc>FALSE</ntsc>\n%s</rate>\n",
			indent, indent, fps, indent, indent)
	}

	writeFile := func(indent, path string, mediaTag string, durF int) {
		id, fresh := files.id(path)
		if !fresh {
			fmt.Fprintf(&b, "%s<file id=\"%s\"/>\n", indent, id)
			return
		}
		fmt.Fprintf(&b, "%s<file id=\"%s\">\n", indent, id)
		fmt.Fprintf(&b, "%s  <name>%s</name>\n", indent, xmlEscape(baseName(path)))
		fmt.Fprintf(&b, "%s  <pathurl>%s</pathurl>\n", indent, xmlEscape(fileURL(path)))
		rate(indent + "  ")
		if durF > 0 {
			fmt.Fprintf(&b, "%s  <duration>%d</duration>\n", indent, durF)
		}
		fmt.Fprintf(&b, "%s  <media>\n%s    <%s/>\n%s  </media>\n", indent, indent, mediaTag, indent)
		fmt.Fprintf(&b, "%s</file>\n", indent)
	}

	writeClipItem := func(c types.TimelineClip, cursors *trackCursors, path, mediaTag string, fileDurF int) {
		items++
		durF := durationFrames(c.Duration, p.FrameRate)
		srcIn := positionFrames(c.Start, p.FrameRate)
		recIn := cursors.advance(c.Track, durF)

		fmt.Fprintf(&b, "        <clipitem id=\"clipitem-%d\">\n", items)
		fmt.Fprintf(&b, "          <name>%s</name>\n", xmlEscape(c.Name))
		b.WriteString("          <enabled>TRUE</enabled>\n")
		fmt.Fprintf(&b, "          <duration>%d</duration>\n", durF)
		rate("          ")
		fmt.Fprintf(&b, "          <start>%d</start>\n", recIn)
		fmt.Fprintf(&b, "          <end>%d</end>\n", recIn+durF)
		fmt.Fprintf(&b, "          <in>%d</in>\n", srcIn)
		fmt.Fprintf(&b, "          <out>%d</out>\n", srcIn+durF)
		writeFile("          ", path, mediaTag, fileDurF)
		b.WriteString("        </clipitem>\n")
	}

	totalF := durationFrames(p.TotalDuration, p.FrameRate)

	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<!DOCTYPE xmeml>\n")
	b.WriteString("<xmeml version=\"4\">\n")
	b.WriteString("  <sequence>\n")
	fmt.Fprintf(&b, "    <name>%s</name>\n", xmlEscape(p.ProjectName))
	fmt.Fprintf(&b, "    <duration>%d</duration>\n", totalF)
	rate("    ")
	b.WriteString("    <media>\n")

	b.WriteString("      <video>\n")
	b.WriteString("        <format>\n          <samplecharacteristics>\n")
	rate("            ")
	b.WriteString("            <width>1920</width>\n            <height>1080</height>\n")
	b.WriteString("          </samplecharacteristics>\n        </format>\n")

	videoTracks := clipsByTrack(p.VideoClips)
	var cursors trackCursors
	for _, tr := range videoTracks {
		b.WriteString("      <track>\n")
		for _, c := range tr {
			writeClipItem(c, &cursors, c.SourcePath, "video", 0)
		}
		b.WriteString("      </track>\n")
	}
	// Still overlays mirror their video track's layout on a track of their
	// own, so editors can slip or extend images independently.
	stillBase := len(videoTracks) + len(clipsByTrack(p.AudioClips))
	var stillCursors trackCursors
	for ti, tr := range videoTracks {
		hasStills := false
		for _, c := range tr {
			if c.StillImagePath != "" {
				hasStills = true
				break
			}
		}
		if !hasStills {
			continue
		}
		b.WriteString("      <track>\n")
		for _, c := range tr {
			if c.StillImagePath == "" {
				stillCursors.advance(stillBase+ti+1, durationFrames(c.Duration, p.FrameRate))
				continue
			}
			still := c
			still.Track = stillBase + ti + 1
			still.Name = baseName(c.StillImagePath)
			still.Start = 0
			writeClipItem(still, &stillCursors, c.StillImagePath, "video", stillIntrinsicSeconds*fps)
		}
		b.WriteString("      </track>\n")
	}
	b.WriteString("      </video>\n")

	b.WriteString("      <audio>\n")
	for _, tr := range clipsByTrack(p.AudioClips) {
		b.WriteString("      <track>\n")
		for _, c := range tr {
			writeClipItem(c, &cursors, c.SourcePath, "audio", 0)
		}
		b.WriteString("      </track>\n")
	}
	b.WriteString("      </audio>\n")

	b.WriteString("    </media>\n")
	b.WriteString("  </sequence>\n")
	b.WriteString("</xmeml>\n")
	return b.String()
}
