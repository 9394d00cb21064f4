package rasterx

import (
	"bufio"
	"fmt"
	"io"
)

// SavePPM writes c's contents to w as a binary PPM (P6): the header
// "P6 {width} {height} 255 " followed by width*height*3 raw RGB bytes, alpha
// discarded. This is the one image format the core understands directly;
// anything else (PNG, ...) is a caller concern.
func (c *Canvas) SavePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6 %d %d 255 ", c.width, c.height); err != nil {
		return err
	}

	pix := c.rbuf.Buf()
	row := make([]byte, c.width*3)
	for y := 0; y < c.height; y++ {
		src := pix[y*c.width*4 : (y+1)*c.width*4]
		for x := 0; x < c.width; x++ {
			row[x*3+0] = src[x*4+0]
			row[x*3+1] = src[x*4+1]
			row[x*3+2] = src[x*4+2]
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadPPM reads a binary PPM (P6) image from r into a new opaque Canvas.
// The loader accepts any valid P6 file regardless of maxval field value, but
// only 8-bit-per-channel data is supported.
func LoadPPM(r io.Reader) (*Canvas, error) {
	br := bufio.NewReader(r)

	magic, err := readToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("rasterx: not a P6 PPM file (magic %q)", magic)
	}

	width, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("rasterx: reading width: %w", err)
	}
	height, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("rasterx: reading height: %w", err)
	}
	maxVal, err := readIntToken(br)
	if err != nil {
		return nil, fmt.Errorf("rasterx: reading maxval: %w", err)
	}
	if maxVal <= 0 || maxVal > 255 {
		return nil, fmt.Errorf("rasterx: unsupported PPM maxval %d", maxVal)
	}

	c := NewCanvas(width, height)
	pix := c.rbuf.Buf()
	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("rasterx: reading row %d: %w", y, err)
		}
		dst := pix[y*width*4 : (y+1)*width*4]
		for x := 0; x < width; x++ {
			dst[x*4+0] = row[x*3+0]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return c, nil
}

func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			if len(tok) == 0 {
				continue
			}
			return string(tok), nil
		}
		tok = append(tok, b)
	}
}

func readIntToken(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	var n int
	if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
		return 0, err
	}
	return n, nil
}
