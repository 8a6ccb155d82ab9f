package pixelgraft

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DefaultJPEGQuality is used by Save for .jpg/.jpeg paths.
const DefaultJPEGQuality = 95

// Load decodes the image file at path into a Buffer.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognised by content.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pixelgraft: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, err := Decode(f)
	if err != nil {
		return nil, err
	}
	Logger().Debug("image loaded", "path", path, "width", buf.Width(), "height", buf.Height())
	return buf, nil
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixelgraft: decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage converts any image.Image into a Buffer. Alpha is discarded.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	buf := NewBuffer(width, height)
	for y := range height {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		dst := buf.Row(y)
		for x := range width {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf
}

// Image converts the buffer to an opaque *image.NRGBA.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for y := range b.height {
		src := b.Row(y)
		dst := img.Pix[y*img.Stride : y*img.Stride+b.width*4]
		for x := range b.width {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return img
}

// bufferImage adapts a Buffer to image.Image without copying.
type bufferImage struct{ b *Buffer }

func (bi bufferImage) ColorModel() color.Model { return color.NRGBAModel }
func (bi bufferImage) Bounds() image.Rectangle { return bi.b.Bounds() }
func (bi bufferImage) At(x, y int) color.Color { return bi.b.At(x, y).Color() }

// AsImage returns a read-only image.Image view of the buffer.
func (b *Buffer) AsImage() image.Image { return bufferImage{b: b} }

// EncodePNG writes the buffer as PNG.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return fmt.Errorf("pixelgraft: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG writes the buffer as JPEG with quality clamped to [1,100].
func (b *Buffer) EncodeJPEG(w io.Writer, quality int) error {
	quality = max(1, min(100, quality))
	if err := jpeg.Encode(w, b.Image(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("pixelgraft: encode JPEG: %w", err)
	}
	return nil
}

// SavePNG saves the buffer as a PNG file.
func (b *Buffer) SavePNG(path string) error {
	return b.saveWith(path, b.EncodePNG)
}

// SaveJPEG saves the buffer as a JPEG file.
func (b *Buffer) SaveJPEG(path string, quality int) error {
	return b.saveWith(path, func(w io.Writer) error { return b.EncodeJPEG(w, quality) })
}

// Save picks the encoder from the path extension (.png, .jpg, .jpeg).
func (b *Buffer) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return b.SavePNG(path)
	case ".jpg", ".jpeg":
		return b.SaveJPEG(path, DefaultJPEGQuality)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func (b *Buffer) saveWith(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pixelgraft: create file: %w", err)
	}
	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pixelgraft: close file: %w", err)
	}
	Logger().Debug("image saved", "path", path)
	return nil
}
