package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ashofman/cutplan/internal/ports/adapters/ffmpeg"
	"github.com/ashofman/cutplan/internal/usecase"
)

type Config struct {
	VideoPaths []string
	AudioPaths []string
	OutDir     string

	ProjectName string
	FrameRate   float64

	SceneSensitivity   float64
	SilenceMinDuration float64
	SilenceNoiseDB     float64
	ReducedPause       float64
	WithStills         bool

	FFmpegPath  string
	FFprobePath string

	Logf func(format string, args ...any)
}

func (c Config) Validate() error {
	if len(c.VideoPaths)+len(c.AudioPaths) == 0 {
		return errors.New("at least one video or audio input is required")
	}
	if c.ProjectName == "" {
		return errors.New("project name is empty")
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame rate must be > 0, got %v", c.FrameRate)
	}
	if c.SceneSensitivity < 0 || c.SceneSensitivity > 1 {
		return fmt.Errorf("scene sensitivity must be in [0,1], got %v", c.SceneSensitivity)
	}
	if c.SilenceMinDuration <= 0 {
		return fmt.Errorf("silence duration must be > 0, got %v", c.SilenceMinDuration)
	}
	if c.SilenceNoiseDB >= 0 {
		return fmt.Errorf("silence noise floor must be negative dB, got %v", c.SilenceNoiseDB)
	}
	if c.ReducedPause < 0 {
		return fmt.Errorf("reduced pause must be >= 0, got %v", c.ReducedPause)
	}
	return nil
}

// Run wires the ffmpeg adapter into the orchestrator, prepares the output
// directories and writes a summary.json next to the six interchange files.
func Run(ctx context.Context, cfg Config) (usecase.Result, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "out"
	}
	clipsDir := filepath.Join(outDir, "clips")
	stillsDir := filepath.Join(outDir, "stills")
	dirs := []string{outDir, clipsDir}
	if cfg.WithStills {
		dirs = append(dirs, stillsDir)
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return usecase.Result{}, err
		}
	}
	logf("output dir: %s", outDir)

	uc := usecase.New(usecase.Deps{
		Media: ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath),
	})

	res, err := uc.Run(ctx, usecase.Input{
		VideoPaths:         cfg.VideoPaths,
		AudioPaths:         cfg.AudioPaths,
		OutDir:             outDir,
		ClipsDir:           clipsDir,
		StillsDir:          stillsDir,
		ProjectName:        cfg.ProjectName,
		FrameRate:          cfg.FrameRate,
		SceneSensitivity:   cfg.SceneSensitivity,
		SilenceNoiseDB:     cfg.SilenceNoiseDB,
		SilenceMinDuration: cfg.SilenceMinDuration,
		ReducedPause:       cfg.ReducedPause,
		WithStills:         cfg.WithStills,
		Logf:               logf,
	})
	if err != nil {
		return res, err
	}

	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return res, fmt.Errorf("marshal summary: %w", err)
	}
	summaryPath := filepath.Join(outDir, "summary.json")
	if err := os.WriteFile(summaryPath, b, 0o644); err != nil {
		return res, err
	}
	logf("summary written (%d video clips, %d audio clips, %d warnings): %s",
		res.VideoClipCount, res.AudioClipCount, len(res.Warnings), summaryPath)
	return res, nil
}
