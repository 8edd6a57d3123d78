// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/gabriele/previewgen/internal/content"
	"github.com/gabriele/previewgen/internal/layout"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, body string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(body, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs the metadata of one content record.
func (p *Printer) PrintRecord(rec content.Record) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Slug:  %s\n", rec.Slug))
	sb.WriteString(fmt.Sprintf("Title: %s\n", rec.Title))
	sb.WriteString(fmt.Sprintf("Date:  %s", rec.Date.Format("2006-01-02")))
	if rec.Description != "" {
		sb.WriteString(fmt.Sprintf("\nDesc:  %s", rec.Description))
	}
	p.printBox("Record: "+rec.FileName, sb.String())
}

// PrintLayoutTree outputs an indented dump of the layout tree for one record.
func (p *Printer) PrintLayoutTree(root *layout.Node) {
	if root == nil {
		return
	}
	var sb strings.Builder
	writeNode(&sb, root, 0)
	p.printBox("Layout", strings.TrimRight(sb.String(), "\n"))
}

func writeNode(sb *strings.Builder, n *layout.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.Kind {
	case layout.KindText:
		sb.WriteString(fmt.Sprintf("%stext %.0fpx %q\n", indent, n.Style.FontSize, n.Text))
	default:
		dir := n.Style.Direction
		if dir == "" {
			dir = layout.DirectionColumn
		}
		sb.WriteString(fmt.Sprintf("%s%s (%d children)\n", indent, dir, len(n.Children)))
		for _, child := range n.Children {
			writeNode(sb, child, depth+1)
		}
	}
}

// PrintRunSummary outputs the final per-run counts.
func (p *Printer) PrintRunSummary(attempted, succeeded, failed, skippedFiles int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Attempted: %d\n", attempted))
	sb.WriteString(fmt.Sprintf("Succeeded: %d\n", succeeded))
	sb.WriteString(fmt.Sprintf("Failed:    %d", failed))
	if skippedFiles > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped files: %d", skippedFiles))
	}
	p.printBox("Preview Generation Summary", sb.String())
}
