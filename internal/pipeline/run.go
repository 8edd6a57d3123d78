// Package pipeline orchestrates a full preview-generation run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gabriele/previewgen/internal/config"
	"github.com/gabriele/previewgen/internal/content"
	"github.com/gabriele/previewgen/internal/fonts"
	"github.com/gabriele/previewgen/internal/layout"
	"github.com/gabriele/previewgen/internal/observability"
	"github.com/gabriele/previewgen/internal/render"
)

// defaultParallelism bounds concurrent per-record renders. Records share only
// the read-only font asset, so fan-out is safe.
const defaultParallelism = 4

// RunOptions holds configuration for one generation run.
type RunOptions struct {
	Config  config.Config
	Verbose bool
	// Out receives progress output; defaults to os.Stdout.
	Out io.Writer
	// FontOptions overrides network behavior of font resolution; nil for defaults.
	FontOptions *fonts.Options
}

// Summary reports what a run did.
type Summary struct {
	Attempted    int
	Succeeded    int
	Failed       int
	SkippedFiles []content.SkippedFile
}

// Run executes the pipeline: list content, create the output directory,
// resolve the font (a hard barrier), then render and write one preview per
// record. Per-record failures are reported and counted but never stop the
// remaining records; Run returns an error afterwards so the process exits
// non-zero when any record failed. Fatal setup failures (unreadable content
// directory, output directory creation, font resolution) abort immediately.
func Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records, skipped, err := content.NewSource(cfg.ContentDir).List()
	if err != nil {
		return nil, err
	}
	for _, sk := range skipped {
		fmt.Fprintf(out, "Warning: skipping %s: %v\n", sk.File, sk.Err)
	}

	summary := &Summary{SkippedFiles: skipped}
	if len(records) == 0 {
		fmt.Fprintln(out, "No thoughts with slugs found.")
		return summary, nil
	}

	fmt.Fprintf(out, "Found %d thoughts to generate previews for...\n\n", len(records))

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	// Nothing renders without the display font.
	asset, err := fonts.NewProvider(cfg, opts.FontOptions).Resolve(ctx)
	if err != nil {
		return nil, err
	}

	summary.Attempted = len(records)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultParallelism)
	for _, rec := range records {
		rec := rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			path, node, err := generateOne(cfg, rec, asset)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				fmt.Fprintf(out, "Error: %s: %v\n", rec.Slug, err)
				return nil
			}
			summary.Succeeded++
			if opts.Verbose {
				printer.PrintRecord(rec)
				printer.PrintLayoutTree(node)
			}
			fmt.Fprintf(out, "Generated: %s\n", filepath.Base(path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Fprintln(out)
	printer.PrintRunSummary(summary.Attempted, summary.Succeeded, summary.Failed, len(skipped))
	fmt.Fprintln(out, "Done!")

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d preview(s) failed", summary.Failed, summary.Attempted)
	}
	return summary, nil
}

// generateOne renders and persists the preview for a single record.
func generateOne(cfg config.Config, rec content.Record, asset *fonts.Asset) (string, *layout.Node, error) {
	node := layout.BuildPreview(rec)

	frame, err := render.Vectorize(node, asset)
	if err != nil {
		return "", node, err
	}

	data, err := render.Rasterize(frame, asset)
	if err != nil {
		return "", node, err
	}

	path, err := render.WriteImage(cfg.OutputDir, rec.Slug, data)
	if err != nil {
		return "", node, err
	}
	return path, node, nil
}
