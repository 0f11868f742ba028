package export

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/ashofman/cutplan/internal/types"
)

// sampleProject is the shared fixture: one video track with two clips and
// stills, a second video track without stills, and one padded audio track.
func sampleProject() types.TimelineProject {
	return types.TimelineProject{
		ProjectName:   "Demo Project",
		FrameRate:     30,
		TotalDuration: 30.0,
		VideoClips: []types.TimelineClip{
			{
				Index: 1, Name: "intro_001", Kind: types.KindVideo,
				SourcePath: "/media/intro.mp4", MaterializedPath: "/out/clips/intro_001.mp4",
				StillImagePath: "/out/stills/intro_001.jpg",
				Start:          0, End: 5.0, Duration: 5.0, Track: 1,
			},
			{
				Index: 2, Name: "intro_002", Kind: types.KindVideo,
				SourcePath: "/media/intro.mp4", MaterializedPath: "/out/clips/intro_002.mp4",
				StillImagePath: "/out/stills/intro_002.jpg",
				Start:          5.0, End: 12.5, Duration: 7.5, Track: 1,
			},
			{
				Index: 1, Name: "broll_001", Kind: types.KindVideo,
				SourcePath: "/media/broll.mp4", MaterializedPath: "/out/clips/broll_001.mp4",
				Start: 2.0, End: 8.0, Duration: 6.0, Track: 2,
			},
		},
		AudioClips: []types.TimelineClip{
			{
				Index: 1, Name: "talk_001", Kind: types.KindAudio,
				SourcePath: "/media/talk.wav", MaterializedPath: "/out/clips/talk_001.wav",
				Start: 0, End: 5.0, Duration: 6.0, Track: 3, // 1s pad
			},
			{
				Index: 2, Name: "talk_002", Kind: types.KindAudio,
				SourcePath: "/media/talk.wav", MaterializedPath: "/out/clips/talk_002.wav",
				Start: 8.0, End: 20.0, Duration: 12.0, Track: 3,
			},
		},
	}
}

// secondClipOffsets extracts, per format, the frame offset every exporter
// computed for the second clip on video track 1. The shared fixture places it
// at round(5.0*30) = 150 frames.
func TestCrossFormatOffsetsAgree(t *testing.T) {
	p := sampleProject()
	const wantFrames = 150
	rate := p.FrameRate

	offsets := map[string]int{}

	// EDL: record-in timecode of event 002.
	edl := EDL(p)
	for _, line := range strings.Split(edl, "\n") {
		if strings.HasPrefix(line, "002  ") {
			fields := strings.Fields(line)
			offsets["edl"] = timecodeFrames(t, fields[len(fields)-2], 30)
		}
	}

	// FCPXML: offset attribute of the second asset-clip on lane 1.
	fcp := FCPXML(p)
	seen := 0
	for _, line := range strings.Split(fcp, "\n") {
		if strings.Contains(line, `lane="1"`) && strings.Contains(line, "<asset-clip") {
			seen++
			if seen == 2 {
				offsets["fcpxml"] = rationalFrames(t, attr(t, line, "offset"))
			}
		}
	}

	// xmeml: <start> of clipitem-2.
	xm := Xmeml(p)
	if i := strings.Index(xm, `clipitem-2`); i >= 0 {
		rest := xm[i:]
		s := between(t, rest, "<start>", "</start>")
		v, err := strconv.Atoi(s)
		if err != nil {
			t.Fatalf("parse xmeml start %q: %v", s, err)
		}
		offsets["xmeml"] = v
	}

	// MLT: playlists concatenate, so the second entry starts after the first
	// entry's length (out - in + 1).
	mlt := Kdenlive(p)
	for _, line := range strings.Split(mlt, "\n") {
		if strings.Contains(line, "<entry ") {
			in, _ := strconv.Atoi(attr(t, line, "in"))
			out, _ := strconv.Atoi(attr(t, line, "out"))
			offsets["mlt"] = out - in + 1
			break
		}
	}

	for format, frames := range offsets {
		gotSec := float64(frames) / rate
		wantSec := float64(wantFrames) / rate
		if diff := gotSec - wantSec; diff > 1.0/rate || diff < -1.0/rate {
			t.Fatalf("%s places clip 2 at %d frames (%.3fs), want within one frame of %d (%.3fs)",
				format, frames, gotSec, wantFrames, wantSec)
		}
	}
	for _, format := range []string{"edl", "fcpxml", "xmeml", "mlt"} {
		if _, ok := offsets[format]; !ok {
			t.Fatalf("no offset extracted for %s", format)
		}
	}
}

func timecodeFrames(t *testing.T, tc string, fps int) int {
	t.Helper()
	parts := strings.Split(tc, ":")
	if len(parts) != 4 {
		t.Fatalf("bad timecode %q", tc)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			t.Fatalf("bad timecode %q: %v", tc, err)
		}
		v[i] = n
	}
	return ((v[0]*60+v[1])*60+v[2])*fps + v[3]
}

func rationalFrames(t *testing.T, s string) int {
	t.Helper()
	s = strings.TrimSuffix(s, "s")
	num := s
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num = s[:i]
	}
	v, err := strconv.Atoi(num)
	if err != nil {
		t.Fatalf("bad rational %q: %v", s, err)
	}
	return v
}

func attr(t *testing.T, line, name string) string {
	t.Helper()
	return between(t, line, fmt.Sprintf(`%s="`, name), `"`)
}

func between(t *testing.T, s, open, close string) string {
	t.Helper()
	i := strings.Index(s, open)
	if i < 0 {
		t.Fatalf("missing %q in %q", open, s)
	}
	rest := s[i+len(open):]
	j := strings.Index(rest, close)
	if j < 0 {
		t.Fatalf("missing closing %q in %q", close, rest)
	}
	return rest[:j]
}
