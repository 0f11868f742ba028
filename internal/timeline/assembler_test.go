package timeline

import (
	"testing"

	"github.com/ashofman/cutplan/internal/types"
)

func clip(index int, kind types.ClipKind, dur float64) types.TimelineClip {
	return types.TimelineClip{Index: index, Kind: kind, Duration: dur}
}

func TestProject_TrackAssignment(t *testing.T) {
	a := NewAssembler("demo", 30)
	// Audio added before the second video still lands after all video tracks.
	a.AddVideoFile([]types.TimelineClip{clip(1, types.KindVideo, 5)}, 5)
	a.AddAudioFile([]types.TimelineClip{clip(1, types.KindAudio, 9), clip(2, types.KindAudio, 4)}, 13)
	a.AddVideoFile([]types.TimelineClip{clip(1, types.KindVideo, 7.5)}, 7.5)

	p := a.Project()

	if len(p.VideoClips) != 2 || len(p.AudioClips) != 2 {
		t.Fatalf("clip counts: video=%d audio=%d", len(p.VideoClips), len(p.AudioClips))
	}
	if p.VideoClips[0].Track != 1 || p.VideoClips[1].Track != 2 {
		t.Fatalf("video tracks: %d, %d", p.VideoClips[0].Track, p.VideoClips[1].Track)
	}
	for i, c := range p.AudioClips {
		if c.Track != 3 {
			t.Fatalf("audio clip %d on track %d, want 3", i, c.Track)
		}
	}
}

func TestProject_TotalDurationIsMaxNotSum(t *testing.T) {
	a := NewAssembler("demo", 30)
	a.AddVideoFile([]types.TimelineClip{clip(1, types.KindVideo, 10)}, 10)
	a.AddAudioFile([]types.TimelineClip{clip(1, types.KindAudio, 25)}, 25)
	a.AddVideoFile([]types.TimelineClip{clip(1, types.KindVideo, 8)}, 8)

	p := a.Project()
	if p.TotalDuration != 25 {
		t.Fatalf("total duration = %v, want 25", p.TotalDuration)
	}
}

func TestProject_PreservesClipOrderWithinTrack(t *testing.T) {
	a := NewAssembler("demo", 30)
	a.AddAudioFile([]types.TimelineClip{
		clip(1, types.KindAudio, 1),
		clip(2, types.KindAudio, 2),
		clip(3, types.KindAudio, 3),
	}, 6)

	p := a.Project()
	for i, c := range p.AudioClips {
		if c.Index != i+1 {
			t.Fatalf("clip %d has index %d", i, c.Index)
		}
	}
}
