package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gabriele/previewgen/internal/content"
	"github.com/gabriele/previewgen/internal/fonts"
	"github.com/gabriele/previewgen/internal/layout"
)

func testAsset() *fonts.Asset {
	return &fonts.Asset{Family: "Go", Weight: 400, Style: "normal", Data: goregular.TTF}
}

func testRecord() content.Record {
	return content.Record{
		Slug:        "hello-world",
		Title:       "Hello World",
		Description: "A first post",
		Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestVectorize_CanvasSize(t *testing.T) {
	frame, err := Vectorize(layout.BuildPreview(testRecord()), testAsset())
	require.NoError(t, err)
	assert.Equal(t, 1200, frame.Width)
	assert.Equal(t, 630, frame.Height)
}

func TestVectorize_BackgroundCoversCanvas(t *testing.T) {
	frame, err := Vectorize(layout.BuildPreview(testRecord()), testAsset())
	require.NoError(t, err)
	require.NotEmpty(t, frame.Primitives)

	rect, ok := frame.Primitives[0].(RectPrimitive)
	require.True(t, ok, "first primitive must be the background rect")
	assert.Equal(t, 0.0, rect.X)
	assert.Equal(t, 0.0, rect.Y)
	assert.Equal(t, 1200.0, rect.W)
	assert.Equal(t, 630.0, rect.H)
	assert.Equal(t, uint8(0xeb), rect.Fill.R)
}

func TestVectorize_EmitsAllTextRuns(t *testing.T) {
	frame, err := Vectorize(layout.BuildPreview(testRecord()), testAsset())
	require.NoError(t, err)

	var texts []string
	for _, p := range frame.Primitives {
		if run, ok := p.(TextPrimitive); ok {
			texts = append(texts, run.Text)
		}
	}
	joined := strings.Join(texts, "\n")
	assert.Contains(t, joined, "gabrieletinelli.com")
	assert.Contains(t, joined, "Hello World")
	assert.Contains(t, joined, "A first post")
	assert.Contains(t, joined, "March 15, 2024")
}

func TestVectorize_LongTitleWraps(t *testing.T) {
	rec := testRecord()
	rec.Title = "A very long meandering essay title that cannot possibly fit on a single thousand pixel line at display size"
	frame, err := Vectorize(layout.BuildPreview(rec), testAsset())
	require.NoError(t, err)

	var titleLines int
	for _, p := range frame.Primitives {
		if run, ok := p.(TextPrimitive); ok && run.Size == 64 {
			titleLines++
		}
	}
	assert.Greater(t, titleLines, 1, "title should wrap across lines")
}

func TestVectorize_FooterSquarePlacedRight(t *testing.T) {
	frame, err := Vectorize(layout.BuildPreview(testRecord()), testAsset())
	require.NoError(t, err)

	// The decorative square is the only 40x40 rect; space-between must push it
	// to the right edge of the padded content box (1200 - 60 - 40 = 1100).
	var square *RectPrimitive
	for _, p := range frame.Primitives {
		if rect, ok := p.(RectPrimitive); ok && rect.W == 40 && rect.H == 40 {
			r := rect
			square = &r
		}
	}
	require.NotNil(t, square)
	assert.InDelta(t, 1100, square.X, 0.5)
	assert.Equal(t, 2.0, square.StrokeWidth)
}

func TestVectorize_DeterministicFrames(t *testing.T) {
	rec := testRecord()
	first, err := Vectorize(layout.BuildPreview(rec), testAsset())
	require.NoError(t, err)
	second, err := Vectorize(layout.BuildPreview(rec), testAsset())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVectorize_InvalidFont(t *testing.T) {
	asset := &fonts.Asset{Family: "Bad", Data: []byte("not a font")}
	_, err := Vectorize(layout.BuildPreview(testRecord()), asset)
	require.Error(t, err)

	var renderErr *Error
	require.ErrorAs(t, err, &renderErr)
	assert.Contains(t, err.Error(), "invalid font program")
}

func TestVectorize_MalformedTree(t *testing.T) {
	bad := &layout.Node{Kind: layout.KindContainer, Text: "containers do not carry text"}
	_, err := Vectorize(bad, testAsset())
	require.Error(t, err)

	var violation *layout.ViolationError
	assert.ErrorAs(t, err, &violation)
}

func TestVectorize_NilTree(t *testing.T) {
	_, err := Vectorize(nil, testAsset())
	require.Error(t, err)
}
