package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ashofman/cutplan/internal/detect"
	"github.com/ashofman/cutplan/internal/export"
	"github.com/ashofman/cutplan/internal/materialize"
	"github.com/ashofman/cutplan/internal/ports"
	"github.com/ashofman/cutplan/internal/timeline"
	"github.com/ashofman/cutplan/internal/types"
)

type Deps struct {
	Media ports.MediaTool
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	VideoPaths []string
	AudioPaths []string

	OutDir    string
	ClipsDir  string
	StillsDir string

	ProjectName string
	FrameRate   float64

	SceneSensitivity   float64
	SilenceNoiseDB     float64
	SilenceMinDuration float64
	ReducedPause       float64
	WithStills         bool

	Logf func(format string, args ...any)
}

type Result struct {
	VideoClipCount int            `json:"video_clip_count"`
	AudioClipCount int            `json:"audio_clip_count"`
	Outputs        export.Outputs `json:"outputs"`
	Warnings       []string       `json:"warnings,omitempty"`
}

// ErrNoUsableInputs is returned when every supplied input was missing or
// failed; there is nothing to put on a timeline.
var ErrNoUsableInputs = errors.New("no usable inputs")

// Run processes every input sequentially: detect boundaries, materialize
// clips, append a track per file, then serialize the assembled timeline into
// all six interchange formats. Per-file failures downgrade to warnings; only
// an export write failure or a fully empty batch is fatal.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	var res Result
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		logf("warning: %s", msg)
		res.Warnings = append(res.Warnings, msg)
	}

	asm := timeline.NewAssembler(in.ProjectName, in.FrameRate)

	for _, path := range in.VideoPaths {
		det, err := detect.Scenes(ctx, u.d.Media, path, in.SceneSensitivity)
		if err != nil {
			warn("skipping video %s: %v", path, err)
			continue
		}
		clips, err := materialize.Video(ctx, u.d.Media, path, det.Intervals, in.ClipsDir, in.StillsDir, in.WithStills, logf)
		if err != nil {
			warn("skipping video %s: %v", path, err)
			continue
		}
		asm.AddVideoFile(timelineClips(path, types.KindVideo, clips), det.TotalDuration)
		res.VideoClipCount += len(clips)
		logf("video %s: %d clips over %.2fs", path, len(clips), det.TotalDuration)
	}

	for _, path := range in.AudioPaths {
		det, err := detect.Silences(ctx, u.d.Media, path, in.SilenceNoiseDB, in.SilenceMinDuration)
		if err != nil {
			warn("skipping audio %s: %v", path, err)
			continue
		}
		clips, err := materialize.Audio(ctx, u.d.Media, path, det.Intervals, in.ClipsDir, in.ReducedPause, logf)
		if err != nil {
			warn("skipping audio %s: %v", path, err)
			continue
		}
		asm.AddAudioFile(timelineClips(path, types.KindAudio, clips), det.TotalDuration)
		res.AudioClipCount += len(clips)
		logf("audio %s: %d clips over %.2fs", path, len(clips), det.TotalDuration)
	}

	if res.VideoClipCount+res.AudioClipCount == 0 {
		return res, fmt.Errorf("%w: %d video and %d audio paths supplied",
			ErrNoUsableInputs, len(in.VideoPaths), len(in.AudioPaths))
	}

	outputs, err := export.WriteAll(in.OutDir, asm.Project())
	if err != nil {
		return res, err
	}
	res.Outputs = outputs
	return res, nil
}

func timelineClips(source string, kind types.ClipKind, clips []materialize.Clip) []types.TimelineClip {
	out := make([]types.TimelineClip, 0, len(clips))
	for _, c := range clips {
		name := strings.TrimSuffix(filepath.Base(c.Interval.MaterializedPath), filepath.Ext(c.Interval.MaterializedPath))
		out = append(out, types.TimelineClip{
			Index:            c.Interval.Index,
			Name:             name,
			Kind:             kind,
			SourcePath:       source,
			MaterializedPath: c.Interval.MaterializedPath,
			StillImagePath:   c.StillPath,
			Start:            c.Interval.Start,
			End:              c.Interval.End,
			Duration:         c.PaddedDuration,
		})
	}
	return out
}
