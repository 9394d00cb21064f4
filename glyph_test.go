package rasterx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestBlendGlyphOpaqueCoverage(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(NewColorRGB(255, 255, 255))

	g := &Glyph{
		Bitmap: []byte{
			255, 255, 255, 255,
			255, 255, 255, 255,
			255, 255, 255, 255,
			255, 255, 255, 255,
		},
		Pitch: 4,
		Width: 4,
		Rows:  4,
		Left:  0,
		Top:   4,
	}

	pen := fixed.P(5, 10)
	c.BlendGlyph(g, pen, NewColorRGB(0, 0, 0))

	r, g2, b, _ := pixelAt(c, 6, 7)
	assert.Equal(t, byte(0), r)
	assert.Equal(t, byte(0), g2)
	assert.Equal(t, byte(0), b)
}

func TestBlendGlyphClipsAtCanvasEdge(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(NewColorRGB(255, 255, 255))

	g := &Glyph{
		Bitmap: []byte{255, 255, 255, 255, 255, 255},
		Pitch:  3,
		Width:  3,
		Rows:   2,
		Left:   2,
		Top:    0,
	}

	pen := fixed.P(2, 1)
	assert.NotPanics(t, func() {
		c.BlendGlyph(g, pen, NewColorRGB(0, 0, 0))
	})
}
