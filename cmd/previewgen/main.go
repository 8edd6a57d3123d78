// Package main provides the entry point for the preview generator CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "previewgen",
	Short: "Social preview image generator for gabrieletinelli.com",
	Long:  "previewgen renders a 1200×630 social preview image for every published thought, for link-sharing platforms to pick up.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
