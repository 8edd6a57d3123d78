package layout

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabriele/previewgen/internal/content"
)

func sampleRecord() content.Record {
	return content.Record{
		Slug:        "hello-world",
		Title:       "Hello World",
		Description: "A first post",
		Date:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestBuildPreview_Structure(t *testing.T) {
	root := BuildPreview(sampleRecord())
	require.NoError(t, root.Validate())

	require.Len(t, root.Children, 3)
	header, main, footer := root.Children[0], root.Children[1], root.Children[2]

	assert.Equal(t, KindText, header.Kind)
	assert.Equal(t, SiteName, header.Text)

	assert.Equal(t, KindContainer, main.Kind)
	assert.Equal(t, DirectionColumn, main.Style.Direction)

	assert.Equal(t, KindContainer, footer.Kind)
	assert.Equal(t, DirectionRow, footer.Style.Direction)
	assert.Equal(t, JustifySpaceBetween, footer.Style.Justify)
}

func TestBuildPreview_Deterministic(t *testing.T) {
	rec := sampleRecord()
	first := BuildPreview(rec)
	second := BuildPreview(rec)
	assert.True(t, reflect.DeepEqual(first, second), "two builds of the same record must be structurally identical")
}

func TestBuildPreview_DescriptionOmittedWhenEmpty(t *testing.T) {
	rec := sampleRecord()
	rec.Description = ""
	main := BuildPreview(rec).Children[1]
	require.Len(t, main.Children, 1)
	assert.Equal(t, "Hello World", main.Children[0].Text)
}

func TestBuildPreview_DescriptionIncludedWhenPresent(t *testing.T) {
	main := BuildPreview(sampleRecord()).Children[1]
	require.Len(t, main.Children, 2)
	assert.Equal(t, "A first post", main.Children[1].Text)
}

func TestBuildPreview_UntitledFallback(t *testing.T) {
	rec := sampleRecord()
	rec.Title = ""
	main := BuildPreview(rec).Children[1]
	assert.Equal(t, "Untitled", main.Children[0].Text)
}

func TestBuildPreview_DateFormatting(t *testing.T) {
	footer := BuildPreview(sampleRecord()).Children[2]
	require.Len(t, footer.Children, 2)
	assert.Equal(t, "March 15, 2024", footer.Children[0].Text)
}

func TestBuildPreview_DecorativeSquare(t *testing.T) {
	footer := BuildPreview(sampleRecord()).Children[2]
	square := footer.Children[1]
	assert.Equal(t, KindContainer, square.Kind)
	assert.Empty(t, square.Children)
	assert.Equal(t, 40.0, square.Style.Width)
	assert.Equal(t, 40.0, square.Style.Height)
	assert.Equal(t, 2.0, square.Style.BorderWidth)
}
