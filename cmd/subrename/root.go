package main

import (
	"github.com/spf13/cobra"

	"subrename/internal/runner"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var dirFlag string

	ctx := newCommandContext(&configFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:   "subrename",
		Short: "Rename subtitles to match their episode's video file",
		Long: "subrename pairs subtitle files with video files by episode number and renames\n" +
			"each subtitle to the video's base name, keeping the subtitle extension.\n" +
			"Without --dir it works on the directory that contains the executable.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			logger, err := ctx.logger(out)
			if err != nil {
				return err
			}

			report, err := runner.Run(cmd.Context(), runner.Options{
				Dir:    dirFlag,
				Config: cfg,
				Logger: logger,
			})
			if len(report.Outcomes) > 0 {
				printOutcomes(out, report.Outcomes, shouldColorize(out))
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Media directory (defaults to the executable's directory)")

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
