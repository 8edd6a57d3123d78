package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gabriele/previewgen/internal/config"
	"github.com/gabriele/previewgen/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate a preview image for every published thought",
	Long: `Scans the content directory for published thoughts, resolves the display font
(local cache first, Google Fonts otherwise), and writes one <slug>-preview.png
per thought into the output directory.

Paths are compiled in: the output naming is a contract with the website.`,
	RunE: runGenerate,
}

var generateVerbose bool

func init() {
	generateCommand.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print record metadata and layout trees while generating")
	rootCmd.AddCommand(generateCommand)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	// Failures are already reported with their slug; cobra's usage dump would
	// only bury the summary.
	cmd.SilenceUsage = true

	_, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		Config:  config.Default(),
		Verbose: generateVerbose,
	})
	return err
}
