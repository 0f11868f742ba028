// Package timeline accumulates materialized clips into the project-level
// multi-track model. Each source file gets its own track: video files occupy
// tracks 1..V, audio files follow on V+1..V+A regardless of the order files
// were added in.
package timeline

import "github.com/ashofman/cutplan/internal/types"

type Assembler struct {
	projectName string
	frameRate   float64
	total       float64
	videoFiles  [][]types.TimelineClip
	audioFiles  [][]types.TimelineClip
}

func NewAssembler(projectName string, frameRate float64) *Assembler {
	return &Assembler{projectName: projectName, frameRate: frameRate}
}

// AddVideoFile appends one source file's clips as the next video track.
// Clips must already be in presentation order; Track is assigned when the
// project is built.
func (a *Assembler) AddVideoFile(clips []types.TimelineClip, fileDuration float64) {
	a.videoFiles = append(a.videoFiles, clips)
	if fileDuration > a.total {
		a.total = fileDuration
	}
}

// AddAudioFile appends one source file's clips as the next audio track.
func (a *Assembler) AddAudioFile(clips []types.TimelineClip, fileDuration float64) {
	a.audioFiles = append(a.audioFiles, clips)
	if fileDuration > a.total {
		a.total = fileDuration
	}
}

// Project builds the assembled model. TotalDuration is the maximum per-file
// duration, not the sum of track lengths: tracks play in parallel.
func (a *Assembler) Project() types.TimelineProject {
	p := types.TimelineProject{
		ProjectName:   a.projectName,
		FrameRate:     a.frameRate,
		TotalDuration: a.total,
	}
	for i, clips := range a.videoFiles {
		for _, c := range clips {
			c.Track = i + 1
			p.VideoClips = append(p.VideoClips, c)
		}
	}
	for i, clips := range a.audioFiles {
		for _, c := range clips {
			c.Track = len(a.videoFiles) + i + 1
			p.AudioClips = append(p.AudioClips, c)
		}
	}
	return p
}
