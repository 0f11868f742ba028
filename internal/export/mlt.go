package export

import (
	"fmt"
	"strings"

	"github.com/ashofman/cutplan/internal/types"
)

// Kdenlive serializes the project as MLT XML: one producer per unique asset
// (avformat for audio/video sources, pixbuf for still images), one playlist
// per timeline track referencing producers by id, and a root tractor
// aggregating the playlists. Pixbuf is MLT's native still producer, so the
// long-intrinsic-duration trick is unnecessary here; a ttl property governs
// how stills repeat frames instead.
func Kdenlive(p types.TimelineProject) string {
	fps := fpsInt(p.FrameRate)
	producers := newResourceTable("producer")

	type producerInfo struct {
		path   string
		still  bool
		maxOut int
	}
	infos := map[string]*producerInfo{}

	type entry struct {
		producer string
		in, out  int // raw frame numbers; out is inclusive
		blank    int // frames; when > 0 this is a spacer, not a clip
	}
	type playlist struct {
		entries []entry
	}
	var playlists []playlist

	register := func(path string, still bool, out int) string {
		id, fresh := producers.id(path)
		if fresh {
			infos[id] = &producerInfo{path: path, still: still}
		}
		if out > infos[id].maxOut {
			infos[id].maxOut = out
		}
		return id
	}

	addClipTrack := func(clips []types.TimelineClip) {
		var pl playlist
		for _, c := range clips {
			durF := durationFrames(c.Duration, p.FrameRate)
			in := positionFrames(c.Start, p.FrameRate)
			out := in + durF - 1
			id := register(c.SourcePath, false, out)
			pl.entries = append(pl.entries, entry{producer: id, in: in, out: out})
		}
		playlists = append(playlists, pl)
	}

	videoTracks := clipsByTrack(p.VideoClips)
	for _, tr := range videoTracks {
		addClipTrack(tr)
	}
	for _, tr := range videoTracks {
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
		var pl playlist
		for _, c := range tr {
			durF := durationFrames(c.Duration, p.FrameRate)
			if c.StillImagePath == "" {
				pl.entries = append(pl.entries, entry{blank: durF})
				continue
			}
			id := register(c.StillImagePath, true, durF-1)
			pl.entries = append(pl.entries, entry{producer: id, in: 0, out: durF - 1})
		}
		playlists = append(playlists, pl)
	}
	for _, tr := range clipsByTrack(p.AudioClips) {
		addClipTrack(tr)
	}

	totalF := durationFrames(p.TotalDuration, p.FrameRate)

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	fmt.Fprintf(&b, "<mlt LC_NUMERIC=\"C\" version=\"7.0.0\" title=\"%s\">\n", xmlEscape(p.ProjectName))
	fmt.Fprintf(&b, "  <profile description=\"HD 1080p %d fps\" width=\"1920\" height=\"1080\" progressive=\"1\" frame_rate_num=\"%d\" frame_rate_den=\"1\"/>\n",
		fps, fps)

	for _, path := range producers.paths() {
		id := producers.ids[path]
		info := infos[id]
		fmt.Fprintf(&b, "  <producer id=\"%s\" in=\"0\" out=\"%d\">\n", id, info.maxOut)
		fmt.Fprintf(&b, "    <property name=\"resource\">%s</property>\n", xmlEscape(info.path))
		if info.still {
			b.WriteString("    <property name=\"mlt_service\">pixbuf</property>\n")
			fmt.Fprintf(&b, "    <property name=\"ttl\">%d</property>\n", fps)
		} else {
			b.WriteString("    <property name=\"mlt_service\">avformat</property>\n")
		}
		b.WriteString("  </producer>\n")
	}

	for i, pl := range playlists {
		fmt.Fprintf(&b, "  <playlist id=\"playlist%d\">\n", i)
		for _, e := range pl.entries {
			if e.blank > 0 {
				fmt.Fprintf(&b, "    <blank length=\"%d\"/>\n", e.blank)
				continue
			}
			fmt.Fprintf(&b, "    <entry producer=\"%s\" in=\"%d\" out=\"%d\"/>\n", e.producer, e.in, e.out)
		}
		b.WriteString("  </playlist>\n")
	}

	fmt.Fprintf(&b, "  <tractor id=\"tractor0\" in=\"0\" out=\"%d\">\n", max(totalF-1, 0))
	for i := range playlists {
		fmt.Fprintf(&b, "    <track producer=\"playlist%d\"/>\n", i)
	}
	b.WriteString("  </tractor>\n")
	b.WriteString("</mlt>\n")
	return b.String()
}
