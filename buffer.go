package pixelgraft

import (
	"image"
	"image/color"
)

// RGB is a pixel with three 8-bit channel intensities.
type RGB struct {
	R, G, B uint8
}

// Color implements conversion to color.Color (opaque).
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Distance returns the Manhattan color distance |ΔR|+|ΔG|+|ΔB|.
func Distance(a, b RGB) int {
	return absDiff(a.R, b.R) + absDiff(a.G, b.G) + absDiff(a.B, b.B)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// bytesPerPixel is the storage size of one RGB pixel.
const bytesPerPixel = 3

// Buffer is a rectangular grid of RGB pixels.
//
// Pixels are stored row-major in one contiguous slice, three bytes per pixel,
// so every row has the same length. Coordinates are zero-based with the
// origin at the top-left.
//
// Thread safety: concurrent reads are safe. Writers must own disjoint rows.
type Buffer struct {
	width  int
	height int
	data   []uint8
}

// NewBuffer creates a black buffer of the given dimensions.
// Negative dimensions are treated as zero.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*bytesPerPixel),
	}
}

// NewFilledBuffer creates a buffer with every pixel set to c.
func NewFilledBuffer(width, height int, c RGB) *Buffer {
	b := NewBuffer(width, height)
	b.Fill(c)
	return b
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Bounds returns the buffer extent as an image.Rectangle anchored at (0,0).
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Data returns the raw RGB bytes. Modifying it modifies the buffer.
func (b *Buffer) Data() []uint8 { return b.data }

// Row returns the bytes of row y, or nil if y is out of bounds.
func (b *Buffer) Row(y int) []uint8 {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.width * bytesPerPixel
	return b.data[start : start+b.width*bytesPerPixel]
}

// In reports whether (x, y) lies inside [0,width) × [0,height).
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y), or black for out-of-bounds coordinates.
func (b *Buffer) At(x, y int) RGB {
	c, _ := b.Lookup(x, y)
	return c
}

// Lookup returns the pixel at (x, y) and whether the coordinate is in bounds.
func (b *Buffer) Lookup(x, y int) (RGB, bool) {
	if !b.In(x, y) {
		return RGB{}, false
	}
	i := (y*b.width + x) * bytesPerPixel
	return RGB{R: b.data[i], G: b.data[i+1], B: b.data[i+2]}, true
}

// Set writes the pixel at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) Set(x, y int, c RGB) {
	if !b.In(x, y) {
		return
	}
	i := (y*b.width + x) * bytesPerPixel
	b.data[i] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c RGB) {
	for i := 0; i < len(b.data); i += bytesPerPixel {
		b.data[i] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Buffer{width: b.width, height: b.height, data: data}
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
