package render

import (
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// defaultLineHeight is the multiplier used when a text node sets none.
const defaultLineHeight = 1.2

// measurer caches one font.Face per text size so measurement and drawing use
// identical glyph metrics. Hinting stays off to keep output deterministic
// across platforms.
type measurer struct {
	font  *truetype.Font
	faces map[float64]font.Face
}

func newMeasurer(f *truetype.Font) *measurer {
	return &measurer{font: f, faces: make(map[float64]font.Face)}
}

func (m *measurer) face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(m.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	m.faces[size] = face
	return face
}

func (m *measurer) textWidth(size float64, text string) float64 {
	return fixedToFloat(font.MeasureString(m.face(size), text))
}

func (m *measurer) ascent(size float64) float64 {
	return fixedToFloat(m.face(size).Metrics().Ascent)
}

// wrap breaks text into lines no wider than maxWidth using greedy word
// wrapping. A single word wider than maxWidth overflows on its own line
// rather than being broken mid-word.
func (m *measurer) wrap(size float64, maxWidth float64, text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.textWidth(size, candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
