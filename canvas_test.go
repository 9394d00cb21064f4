package rasterx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	white = NewColorRGB(255, 255, 255)
	black = NewColorRGB(0, 0, 0)
	red   = NewColorRGB(255, 0, 0)
	blue  = NewColorRGB(0, 0, 255)
)

func pixelAt(c *Canvas, x, y int) (r, g, b, a byte) {
	pix := c.Pixels()
	i := y*c.Width()*4 + x*4
	return pix[i], pix[i+1], pix[i+2], pix[i+3]
}

func TestNewCanvasDimensions(t *testing.T) {
	c := NewCanvas(100, 50)
	assert.Equal(t, 100, c.Width())
	assert.Equal(t, 50, c.Height())
	assert.Len(t, c.Pixels(), 100*50*4)
}

func TestClearFillsEveryPixel(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(white)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := pixelAt(c, x, y)
			assert.Equal(t, byte(255), r)
			assert.Equal(t, byte(255), g)
			assert.Equal(t, byte(255), b)
			assert.Equal(t, byte(255), a)
		}
	}
}

func TestFillPathTriangle(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(white)

	tri := NewPath()
	tri.MoveTo(10, 10).LineTo(50, 90).LineTo(90, 10).ClosePolygon()

	c.FillPath(tri, red, FillNonZero)

	r, g, b, a := pixelAt(c, 50, 50)
	assert.Equal(t, red.R, r)
	assert.Equal(t, red.G, g)
	assert.Equal(t, red.B, b)
	assert.Equal(t, byte(255), a)

	r, g, b, _ = pixelAt(c, 5, 5)
	assert.Equal(t, byte(255), r)
	assert.Equal(t, byte(255), g)
	assert.Equal(t, byte(255), b)
}

func TestFillPathEvenOddVsNonZeroStar(t *testing.T) {
	// A self-intersecting star: under EvenOdd the inner pentagon is
	// unfilled, under NonZero it is filled.
	star := func() *Path {
		p := NewPath()
		pts := [][2]float64{
			{50, 5}, {61, 40}, {98, 40}, {68, 62},
			{79, 95}, {50, 73}, {21, 95}, {32, 62},
			{2, 40}, {39, 40},
		}
		p.MoveTo(pts[0][0], pts[0][1])
		for _, pt := range pts[1:] {
			p.LineTo(pt[0], pt[1])
		}
		p.ClosePolygon()
		return p
	}

	countBlack := func(c *Canvas) int {
		n := 0
		for y := 0; y < c.Height(); y++ {
			for x := 0; x < c.Width(); x++ {
				if r, _, _, _ := pixelAt(c, x, y); r == 0 {
					n++
				}
			}
		}
		return n
	}

	nonZero := NewCanvas(100, 100)
	nonZero.Clear(white)
	nonZero.FillPath(star(), black, FillNonZero)

	evenOdd := NewCanvas(100, 100)
	evenOdd.Clear(white)
	evenOdd.FillPath(star(), black, FillEvenOdd)

	// NonZero fills the inner pentagon (double-wound) that EvenOdd leaves
	// unfilled, so it must cover strictly more pixels.
	assert.Greater(t, countBlack(nonZero), countBlack(evenOdd))
}

func TestStrokePathProducesCoverage(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(white)

	line := NewPath()
	line.MoveTo(10, 50).LineTo(90, 50)

	s := NewStroke(10)
	c.StrokePath(line, s, black)

	r, _, _, _ := pixelAt(c, 50, 50)
	assert.Equal(t, byte(0), r)
}

func TestFillTransformedPathTranslates(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Clear(white)

	square := NewPath()
	square.Rect(0, 0, 10, 10)

	c.FillTransformedPath(square, Translation(40, 40), blue, FillNonZero)

	r, g, b, _ := pixelAt(c, 45, 45)
	assert.Equal(t, blue.R, r)
	assert.Equal(t, blue.G, g)
	assert.Equal(t, blue.B, b)

	r, _, _, _ = pixelAt(c, 5, 5)
	assert.Equal(t, byte(255), r)
}
