package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "extract NAME...",
		Short:       "Show the episode number inferred from each filename",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(args))
			for _, arg := range args {
				names = append(names, filepath.Base(arg))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderExtract(names))
			return nil
		},
	}
}
