package render

import (
	"github.com/golang/freetype/truetype"

	"github.com/gabriele/previewgen/internal/fonts"
	"github.com/gabriele/previewgen/internal/layout"
)

// Vectorize resolves the layout tree against the font's glyph metrics and
// returns the frame for a fixed 1200×630 canvas. It is pure: identical inputs
// yield identical frames. It fails only on a tree that breaks the layout
// invariant or on font bytes that do not parse as a font program.
func Vectorize(root *layout.Node, asset *fonts.Asset) (*Frame, error) {
	if root == nil {
		return nil, &Error{Message: "layout tree is nil"}
	}
	if err := root.Validate(); err != nil {
		return nil, err
	}

	parsed, err := truetype.Parse(asset.Data)
	if err != nil {
		return nil, &Error{Message: "invalid font program", Cause: err}
	}

	v := &vectorizer{m: newMeasurer(parsed)}
	frame := &Frame{Width: CanvasWidth, Height: CanvasHeight}
	v.place(frame, root, 0, 0, CanvasWidth, CanvasHeight)
	return frame, nil
}

type vectorizer struct {
	m *measurer
}

// measure computes the intrinsic size of a node given the width available to
// it. Fixed Width/Height styles win over content size.
func (v *vectorizer) measure(n *layout.Node, maxWidth float64) (w, h float64) {
	style := n.Style

	switch n.Kind {
	case layout.KindText:
		wrapWidth := wrapWidthFor(style, maxWidth)
		lines := v.m.wrap(style.FontSize, wrapWidth, n.Text)
		for _, line := range lines {
			if lw := v.m.textWidth(style.FontSize, line); lw > w {
				w = lw
			}
		}
		h = lineHeightPx(style) * float64(len(lines))

	case layout.KindContainer:
		inner := maxWidth - 2*style.Padding
		if style.Width > 0 {
			inner = style.Width - 2*style.Padding
		}
		gaps := style.Gap * float64(max(len(n.Children)-1, 0))
		for _, child := range n.Children {
			cw, ch := v.measure(child, inner)
			if style.Direction == layout.DirectionRow {
				w += cw
				h = max(h, ch)
			} else {
				w = max(w, cw)
				h += ch
			}
		}
		if style.Direction == layout.DirectionRow {
			w += gaps
		} else {
			h += gaps
		}
		w += 2 * style.Padding
		h += 2 * style.Padding
	}

	if style.Width > 0 {
		w = style.Width
	}
	if style.Height > 0 {
		h = style.Height
	}
	return w, h
}

// place emits the primitives for a node positioned in the given box.
func (v *vectorizer) place(frame *Frame, n *layout.Node, x, y, w, h float64) {
	style := n.Style

	if style.Background.A > 0 || (style.BorderWidth > 0 && style.BorderColor.A > 0) {
		frame.Primitives = append(frame.Primitives, RectPrimitive{
			X: x, Y: y, W: w, H: h,
			Fill:        style.Background,
			StrokeWidth: style.BorderWidth,
			Stroke:      style.BorderColor,
		})
	}

	switch n.Kind {
	case layout.KindText:
		v.placeText(frame, n, x, y, w)
	case layout.KindContainer:
		v.placeChildren(frame, n, x, y, w, h)
	}
}

func (v *vectorizer) placeText(frame *Frame, n *layout.Node, x, y, w float64) {
	style := n.Style
	lines := v.m.wrap(style.FontSize, wrapWidthFor(style, w), n.Text)
	lh := lineHeightPx(style)
	ascent := v.m.ascent(style.FontSize)
	for i, line := range lines {
		frame.Primitives = append(frame.Primitives, TextPrimitive{
			X:        x,
			Baseline: y + float64(i)*lh + ascent,
			Size:     style.FontSize,
			Color:    style.Color,
			Text:     line,
		})
	}
}

func (v *vectorizer) placeChildren(frame *Frame, n *layout.Node, x, y, w, h float64) {
	style := n.Style
	if len(n.Children) == 0 {
		return
	}

	cx := x + style.Padding
	cy := y + style.Padding
	cw := w - 2*style.Padding
	ch := h - 2*style.Padding

	widths := make([]float64, len(n.Children))
	heights := make([]float64, len(n.Children))
	var mainSum float64
	for i, child := range n.Children {
		widths[i], heights[i] = v.measure(child, cw)
		if style.Direction == layout.DirectionRow {
			mainSum += widths[i]
		} else {
			mainSum += heights[i]
		}
	}

	// Main-axis spacing: the gap, or the leftover space distributed between
	// children for space-between (whichever is larger).
	spacing := style.Gap
	if style.Justify == layout.JustifySpaceBetween && len(n.Children) > 1 {
		available := ch
		if style.Direction == layout.DirectionRow {
			available = cw
		}
		between := (available - mainSum) / float64(len(n.Children)-1)
		spacing = max(spacing, between)
	}

	cursor := 0.0
	for i, child := range n.Children {
		if style.Direction == layout.DirectionRow {
			childY := cy
			childH := heights[i]
			if style.Align == layout.AlignCenter {
				childY = cy + (ch-childH)/2
			} else if child.Style.Height == 0 {
				childH = ch
			}
			v.place(frame, child, cx+cursor, childY, widths[i], childH)
			cursor += widths[i] + spacing
		} else {
			childX := cx
			childW := widths[i]
			if style.Align == layout.AlignCenter {
				childX = cx + (cw-childW)/2
			} else if child.Style.Width == 0 {
				childW = cw
			}
			v.place(frame, child, childX, cy+cursor, childW, heights[i])
			cursor += heights[i] + spacing
		}
	}
}

func wrapWidthFor(style layout.Style, available float64) float64 {
	if style.MaxWidth > 0 && (available <= 0 || style.MaxWidth < available) {
		return style.MaxWidth
	}
	return available
}

func lineHeightPx(style layout.Style) float64 {
	multiplier := style.LineHeight
	if multiplier == 0 {
		multiplier = defaultLineHeight
	}
	return style.FontSize * multiplier
}
