package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gabriele/previewgen/internal/config"
	"github.com/gabriele/previewgen/internal/content"
)

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List the published thoughts eligible for preview generation",
	Long:  "Prints the filtered content records (drafts and slug-less entries excluded) as JSON, including the preview image path each one maps to.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCommand)
}

// listItem is the JSON shape of one published thought.
type listItem struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
}

func buildListing(records []content.Record) []listItem {
	items := make([]listItem, 0, len(records))
	for _, rec := range records {
		items = append(items, listItem{
			Slug:        rec.Slug,
			Title:       rec.Title,
			Date:        rec.Date.Format("2006-01-02"),
			Description: rec.Description,
			Image:       "/images/thoughts/" + rec.Slug + "-preview.png",
		})
	}
	return items
}

func runList(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg := config.Default()
	records, skipped, err := content.NewSource(cfg.ContentDir).List()
	if err != nil {
		return err
	}
	for _, sk := range skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipping %s: %v\n", sk.File, sk.Err)
	}

	out, err := json.MarshalIndent(buildListing(records), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
