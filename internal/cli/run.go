package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ashofman/cutplan/internal/config"
	"github.com/ashofman/cutplan/internal/pipeline"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	s := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		s = loaded
	}

	// Flags set explicitly win over the settings file.
	if flags.Changed("video") {
		s.Videos, _ = flags.GetStringArray("video")
	}
	if flags.Changed("audio") {
		s.Audios, _ = flags.GetStringArray("audio")
	}
	if flags.Changed("out") {
		s.OutDir, _ = flags.GetString("out")
	}
	if flags.Changed("project") {
		s.ProjectName, _ = flags.GetString("project")
	}
	if flags.Changed("fps") {
		s.FrameRate, _ = flags.GetFloat64("fps")
	}
	if flags.Changed("scene-sensitivity") {
		s.SceneSensitivity, _ = flags.GetFloat64("scene-sensitivity")
	}
	if flags.Changed("silence-duration") {
		s.SilenceMinDuration, _ = flags.GetFloat64("silence-duration")
	}
	if flags.Changed("silence-noise") {
		s.SilenceNoiseDB, _ = flags.GetFloat64("silence-noise")
	}
	if flags.Changed("pause") {
		s.ReducedPause, _ = flags.GetFloat64("pause")
	}
	if noStills, _ := flags.GetBool("no-stills"); noStills {
		s.Stills = false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
	defer cancel()

	cfg := pipeline.Config{
		VideoPaths:         s.Videos,
		AudioPaths:         s.Audios,
		OutDir:             s.OutDir,
		ProjectName:        s.ProjectName,
		FrameRate:          s.FrameRate,
		SceneSensitivity:   s.SceneSensitivity,
		SilenceMinDuration: s.SilenceMinDuration,
		SilenceNoiseDB:     s.SilenceNoiseDB,
		ReducedPause:       s.ReducedPause,
		WithStills:         s.Stills,

		FFmpegPath:  getenvDefault("CUTPLAN_FFMPEG", s.FFmpegPath),
		FFprobePath: getenvDefault("CUTPLAN_FFPROBE", s.FFprobePath),

		Logf: func(format string, args ...any) {
			fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
		},
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	_, err := pipeline.Run(ctx, cfg)
	return err
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
