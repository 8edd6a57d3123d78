package render

import "image/color"

// Canvas dimensions in logical pixels, the de-facto social-preview size.
// These never vary per record.
const (
	CanvasWidth  = 1200
	CanvasHeight = 630
)

// Frame is the self-contained vector description of one preview: every flex
// and box rule of the layout tree resolved into absolutely positioned
// primitives, in paint order.
type Frame struct {
	Width      int
	Height     int
	Primitives []Primitive
}

// Primitive is one drawable element of a frame.
type Primitive interface {
	primitive()
}

// RectPrimitive is a filled and/or stroked rectangle.
type RectPrimitive struct {
	X, Y, W, H  float64
	Fill        color.RGBA
	StrokeWidth float64
	Stroke      color.RGBA
}

func (RectPrimitive) primitive() {}

// TextPrimitive is a single line of text anchored at its baseline.
type TextPrimitive struct {
	X        float64
	Baseline float64
	Size     float64
	Color    color.RGBA
	Text     string
}

func (TextPrimitive) primitive() {}
