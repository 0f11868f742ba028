package types

// ClipInterval is one cut span inside a single source file. Within one file
// intervals are strictly ordered and non-overlapping, with End > Start.
// Silence spans detected in audio reuse the same shape but never leave the
// segment-building stage.
type ClipInterval struct {
	Index            int     `json:"index"` // 1-based, per source file
	Start            float64 `json:"start_sec"`
	End              float64 `json:"end_sec"`
	MaterializedPath string  `json:"file,omitempty"`
}

func (c ClipInterval) Duration() float64 { return c.End - c.Start }

type ClipKind string

const (
	KindVideo ClipKind = "video"
	KindAudio ClipKind = "audio"
)

// TimelineClip is one placed clip on the assembled timeline. Duration may
// exceed End-Start when a synthetic silence pad was appended during
// materialization; exporters must place clips by Duration, not End-Start.
type TimelineClip struct {
	Index            int      `json:"index"`
	Name             string   `json:"name"`
	Kind             ClipKind `json:"kind"`
	SourcePath       string   `json:"source_path"`
	MaterializedPath string   `json:"materialized_path,omitempty"`
	StillImagePath   string   `json:"still_image_path,omitempty"`
	Start            float64  `json:"start_sec"`
	End              float64  `json:"end_sec"`
	Duration         float64  `json:"duration_sec"`
	Track            int      `json:"track"`
}

// TimelineProject is the assembled multi-track model handed read-only to
// every exporter. Clips are in presentation order; within one track their
// cumulative frame offsets never overlap.
type TimelineProject struct {
	ProjectName   string         `json:"project_name"`
	FrameRate     float64        `json:"frame_rate"`
	TotalDuration float64        `json:"total_duration_sec"`
	VideoClips    []TimelineClip `json:"video_clips"`
	AudioClips    []TimelineClip `json:"audio_clips"`
}
