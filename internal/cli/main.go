package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "cutplan",
		Short:        "Detect cuts in video/audio and export a multi-track timeline",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().StringArray("video", nil, "Video input path (repeatable)")
	root.Flags().StringArray("audio", nil, "Audio input path (repeatable)")
	root.Flags().String("out", "out", "Output directory")
	root.Flags().String("project", "Timeline Project", "Project name")
	root.Flags().Float64("fps", 30, "Timeline frame rate")
	root.Flags().String("config", "", "YAML settings file")
	root.Flags().Bool("no-stills", false, "Skip still-frame extraction")

	// Hidden tuning flags (internal)
	root.Flags().Float64("scene-sensitivity", 0.1, "Scene change threshold (0.0-1.0)")
	root.Flags().Float64("silence-duration", 2.5, "Minimum silence duration seconds")
	root.Flags().Float64("silence-noise", -30, "Silence noise floor dB")
	root.Flags().Float64("pause", 1, "Reduced pause duration seconds")
	for _, f := range []string{"scene-sensitivity", "silence-duration", "silence-noise", "pause"} {
		_ = root.Flags().MarkHidden(f)
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
