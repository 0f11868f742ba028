package export

import (
	"encoding/json"
	"fmt"

	"github.com/ashofman/cutplan/internal/types"
)

// OpenTimelineIO JSON schema types. Time values carry frames at the project
// rate; tracks concatenate their children, so sequential placement needs no
// explicit offsets, only gaps where a lane has nothing to show.

type otioRationalTime struct {
	Schema string  `json:"OTIO_SCHEMA"`
	Rate   float64 `json:"rate"`
	Value  float64 `json:"value"`
}

type otioTimeRange struct {
	Schema    string           `json:"OTIO_SCHEMA"`
	Duration  otioRationalTime `json:"duration"`
	StartTime otioRationalTime `json:"start_time"`
}

type otioExternalRef struct {
	Schema         string         `json:"OTIO_SCHEMA"`
	TargetURL      string         `json:"target_url"`
	AvailableRange *otioTimeRange `json:"available_range,omitempty"`
}

type otioClip struct {
	Schema         string          `json:"OTIO_SCHEMA"`
	Name           string          `json:"name"`
	MediaReference otioExternalRef `json:"media_reference"`
	SourceRange    otioTimeRange   `json:"source_range"`
}

type otioGap struct {
	Schema      string        `json:"OTIO_SCHEMA"`
	Name        string        `json:"name"`
	SourceRange otioTimeRange `json:"source_range"`
}

type otioTrack struct {
	Schema   string `json:"OTIO_SCHEMA"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Children []any  `json:"children"`
}

type otioStack struct {
	Schema   string      `json:"OTIO_SCHEMA"`
	Name     string      `json:"name"`
	Children []otioTrack `json:"children"`
}

type otioTimeline struct {
	Schema string    `json:"OTIO_SCHEMA"`
	Name   string    `json:"name"`
	Tracks otioStack `json:"tracks"`
}

// OTIO serializes the project as an OpenTimelineIO Timeline.1 document: a
// root Stack of Tracks holding Clips with ExternalReference media and
// RationalTime/TimeRange fields. Stills get a dedicated video track per
// source track, gap-filled so overlays line up with their clips.
func OTIO(p types.TimelineProject) ([]byte, error) {
	rt := func(frames int) otioRationalTime {
		return otioRationalTime{Schema: "RationalTime.1", Rate: float64(fpsInt(p.FrameRate)), Value: float64(frames)}
	}
	tr := func(startF, durF int) otioTimeRange {
		return otioTimeRange{Schema: "TimeRange.1", Duration: rt(durF), StartTime: rt(startF)}
	}
	clipOf := func(c types.TimelineClip) otioClip {
		return otioClip{
			Schema: "Clip.1",
			Name:   c.Name,
			MediaReference: otioExternalRef{
				Schema:    "ExternalReference.1",
				TargetURL: fileURL(c.SourcePath),
			},
			SourceRange: tr(positionFrames(c.Start, p.FrameRate), durationFrames(c.Duration, p.FrameRate)),
		}
	}

	var tracks []otioTrack
	videoTracks := clipsByTrack(p.VideoClips)
	for i, trClips := range videoTracks {
		t := otioTrack{Schema: "Track.1", Name: fmt.Sprintf("V%d", i+1), Kind: "Video"}
		for _, c := range trClips {
			t.Children = append(t.Children, clipOf(c))
		}
		tracks = append(tracks, t)
	}
	for i, trClips := range videoTracks {
		hasStills := false
		for _, c := range trClips {
			if c.StillImagePath != "" {
				hasStills = true
				break
			}
		}
		if !hasStills {
			continue
		}
		t := otioTrack{Schema: "Track.1", Name: fmt.Sprintf("V%d Stills", i+1), Kind: "Video"}
		for _, c := range trClips {
			durF := durationFrames(c.Duration, p.FrameRate)
			if c.StillImagePath == "" {
				t.Children = append(t.Children, otioGap{
					Schema:      "Gap.1",
					Name:        "Gap",
					SourceRange: tr(0, durF),
				})
				continue
			}
			t.Children = append(t.Children, otioClip{
				Schema: "Clip.1",
				Name:   baseName(c.StillImagePath),
				MediaReference: otioExternalRef{
					Schema:    "ExternalReference.1",
					TargetURL: fileURL(c.StillImagePath),
				},
				SourceRange: tr(0, durF),
			})
		}
		tracks = append(tracks, t)
	}
	for i, trClips := range clipsByTrack(p.AudioClips) {
		t := otioTrack{Schema: "Track.1", Name: fmt.Sprintf("A%d", i+1), Kind: "Audio"}
		for _, c := range trClips {
			t.Children = append(t.Children, clipOf(c))
		}
		tracks = append(tracks, t)
	}

	doc := otioTimeline{
		Schema: "Timeline.1",
		Name:   p.ProjectName,
		Tracks: otioStack{Schema: "Stack.1", Name: "tracks", Children: tracks},
	}
	return json.MarshalIndent(doc, "", "  ")
}
