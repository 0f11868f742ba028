// Package config holds the pipeline settings and their defaults, optionally
// loaded from a YAML file. Flags set on the command line take precedence over
// the file; the file takes precedence over defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	Videos      []string `yaml:"videos"`
	Audios      []string `yaml:"audios"`
	OutDir      string   `yaml:"out_dir"`
	ProjectName string   `yaml:"project_name"`
	FrameRate   float64  `yaml:"frame_rate"`

	SceneSensitivity   float64 `yaml:"scene_sensitivity"`
	SilenceMinDuration float64 `yaml:"silence_min_duration"`
	SilenceNoiseDB     float64 `yaml:"silence_noise_db"`
	ReducedPause       float64 `yaml:"reduced_pause"`
	Stills             bool    `yaml:"stills"`

	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

// Default returns the stock settings: 30 fps, scene sensitivity 0.1, silences
// of 2.5s or longer below -30dB, pauses compressed to 1s, stills on.
func Default() Settings {
	return Settings{
		OutDir:             "out",
		ProjectName:        "Timeline Project",
		FrameRate:          30,
		SceneSensitivity:   0.1,
		SilenceMinDuration: 2.5,
		SilenceNoiseDB:     -30,
		ReducedPause:       1.0,
		Stills:             true,
	}
}

// Load reads a YAML settings file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return s, nil
}
