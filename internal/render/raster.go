package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"

	"github.com/gabriele/previewgen/internal/fonts"
)

// Rasterize draws the frame and encodes it as PNG. Output is deterministic
// for identical frame and font bytes: no timestamps, no randomness.
func Rasterize(frame *Frame, asset *fonts.Asset) ([]byte, error) {
	parsed, err := truetype.Parse(asset.Data)
	if err != nil {
		return nil, &Error{Message: "invalid font program", Cause: err}
	}
	m := newMeasurer(parsed)

	dc := gg.NewContext(frame.Width, frame.Height)
	for _, p := range frame.Primitives {
		switch prim := p.(type) {
		case RectPrimitive:
			if prim.Fill.A > 0 {
				dc.SetColor(prim.Fill)
				dc.DrawRectangle(prim.X, prim.Y, prim.W, prim.H)
				dc.Fill()
			}
			if prim.StrokeWidth > 0 && prim.Stroke.A > 0 {
				dc.SetColor(prim.Stroke)
				dc.SetLineWidth(prim.StrokeWidth)
				dc.DrawRectangle(prim.X, prim.Y, prim.W, prim.H)
				dc.Stroke()
			}
		case TextPrimitive:
			dc.SetFontFace(m.face(prim.Size))
			dc.SetColor(prim.Color)
			dc.DrawString(prim.Text, prim.X, prim.Baseline)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, &Error{Message: "failed to encode PNG", Cause: err}
	}
	return buf.Bytes(), nil
}

// OutputPath derives the image path for a slug. The <slug>-preview.png naming
// is a contract with the website that serves the images.
func OutputPath(outputDir, slug string) string {
	return filepath.Join(outputDir, slug+"-preview.png")
}

// WriteImage persists the PNG bytes for a record, overwriting any previous
// output so regeneration stays idempotent. The output directory must already
// exist; the pipeline creates it once per run.
func WriteImage(outputDir, slug string, data []byte) (string, error) {
	path := OutputPath(outputDir, slug)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", path, err)
	}
	return path, nil
}
