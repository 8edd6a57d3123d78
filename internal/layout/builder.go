package layout

import (
	"image/color"

	"github.com/gabriele/previewgen/internal/content"
)

// SiteName is the identity line shown at the top of every preview.
const SiteName = "gabrieletinelli.com"

// dateFormat renders dates as "March 15, 2024".
const dateFormat = "January 2, 2006"

// Fixed palette of the site.
var (
	colorBackground = color.RGBA{R: 0xeb, G: 0xe8, B: 0xe1, A: 0xff}
	colorInk        = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	colorMuted      = color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	colorAccent     = color.RGBA{R: 0xb8, G: 0xc9, B: 0xb0, A: 0xff}
)

// BuildPreview constructs the preview document for one record: a full-bleed
// column with the site identity on top, title and optional description in the
// middle, and the date line with a decorative square at the bottom. All
// styling is fixed; only the text content and the presence of the description
// node depend on the record.
func BuildPreview(rec content.Record) *Node {
	header := TextNode(Style{
		FontSize: 28,
		Color:    colorMuted,
	}, SiteName)

	title := rec.Title
	if title == "" {
		title = "Untitled"
	}

	main := []*Node{
		TextNode(Style{
			FontSize:   64,
			Color:      colorInk,
			LineHeight: 1.1,
			MaxWidth:   1000,
		}, title),
	}
	if rec.Description != "" {
		main = append(main, TextNode(Style{
			FontSize:   32,
			Color:      colorMuted,
			LineHeight: 1.3,
			MaxWidth:   900,
		}, rec.Description))
	}

	footer := Container(Style{
		Direction: DirectionRow,
		Justify:   JustifySpaceBetween,
		Align:     AlignCenter,
	},
		TextNode(Style{
			FontSize: 24,
			Color:    colorMuted,
		}, rec.Date.Format(dateFormat)),
		Container(Style{
			Width:       40,
			Height:      40,
			Background:  colorAccent,
			BorderWidth: 2,
			BorderColor: colorInk,
		}),
	)

	return Container(Style{
		Direction:  DirectionColumn,
		Justify:    JustifySpaceBetween,
		Padding:    60,
		Background: colorBackground,
	},
		header,
		Container(Style{Direction: DirectionColumn, Gap: 24}, main...),
		footer,
	)
}
