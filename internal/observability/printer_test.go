package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gabriele/previewgen/internal/content"
	"github.com/gabriele/previewgen/internal/layout"
)

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintRecord(content.Record{
		Slug:     "hello-world",
		Title:    "Hello World",
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		FileName: "hello.md",
	})

	out := buf.String()
	assert.Contains(t, out, "hello-world")
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "hello.md")
}

func TestPrintLayoutTree(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.PrintLayoutTree(layout.BuildPreview(content.Record{
		Slug:  "x",
		Title: "A Title",
		Date:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}))

	out := buf.String()
	assert.Contains(t, out, "column")
	assert.Contains(t, out, `"A Title"`)
	assert.Contains(t, out, "row")
}

func TestPrintLayoutTree_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintLayoutTree(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunSummary(3, 2, 1, 1)

	out := buf.String()
	assert.Contains(t, out, "Attempted: 3")
	assert.Contains(t, out, "Succeeded: 2")
	assert.Contains(t, out, "Failed:    1")
	assert.Contains(t, out, "Skipped files: 1")
}
