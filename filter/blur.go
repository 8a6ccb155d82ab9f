package filter

import (
	"time"

	"github.com/pixelgraft/pixelgraft"
	"github.com/pixelgraft/pixelgraft/internal/parallel"
)

// DefaultRadius is the blur radius used by the matching tools.
const DefaultRadius = 5

// BlurFilter applies a separable Gaussian blur.
type BlurFilter struct {
	// Radius is the kernel half-width in pixels.
	Radius int

	// Sigma is the Gaussian standard deviation. Zero means Radius/2.
	Sigma float64

	// Workers bounds the parallelism. Zero means GOMAXPROCS, 1 runs inline.
	Workers int
}

// NewBlurFilter creates a blur filter with the default sigma.
func NewBlurFilter(radius int) *BlurFilter {
	return &BlurFilter{Radius: radius}
}

// Blur returns a blurred copy of src using the default sigma.
func Blur(src *pixelgraft.Buffer, radius int) (*pixelgraft.Buffer, error) {
	return NewBlurFilter(radius).Apply(src)
}

// Apply returns a new buffer with the same dimensions as src holding the
// blurred image. src is not modified.
func (f *BlurFilter) Apply(src *pixelgraft.Buffer) (*pixelgraft.Buffer, error) {
	kernel, err := CachedGaussianKernel(f.Radius, f.Sigma)
	if err != nil {
		pixelgraft.Component("filter").Warn("blur rejected", "radius", f.Radius, "err", err)
		return nil, err
	}

	start := time.Now()
	width, height := src.Width(), src.Height()
	dst := pixelgraft.NewBuffer(width, height)
	if width == 0 || height == 0 {
		return dst, nil
	}

	temp := make([]float64, width*height*3)

	parallel.ForBands(height, f.Workers, func(b parallel.Band) {
		blurHorizontal(src, temp, b, kernel)
	})
	parallel.ForBands(height, f.Workers, func(b parallel.Band) {
		blurVertical(temp, dst, b, kernel)
	})

	pixelgraft.Component("filter").Debug("blur applied",
		"radius", f.Radius, "width", width, "height", height, "elapsed", time.Since(start))
	return dst, nil
}

// blurHorizontal convolves rows [band.Start, band.End) of src into temp.
func blurHorizontal(src *pixelgraft.Buffer, temp []float64, band parallel.Band, kernel []float64) {
	width := src.Width()
	half := len(kernel) / 2

	for y := band.Start; y < band.End; y++ {
		row := src.Row(y)
		out := temp[y*width*3 : (y+1)*width*3]

		for x := 0; x < width; x++ {
			var r, g, b float64
			for k, weight := range kernel {
				kx := clamp(x+k-half, 0, width-1)
				r += float64(row[kx*3]) * weight
				g += float64(row[kx*3+1]) * weight
				b += float64(row[kx*3+2]) * weight
			}
			out[x*3] = r
			out[x*3+1] = g
			out[x*3+2] = b
		}
	}
}

// blurVertical convolves the columns of temp into rows
// [band.Start, band.End) of dst.
func blurVertical(temp []float64, dst *pixelgraft.Buffer, band parallel.Band, kernel []float64) {
	width, height := dst.Width(), dst.Height()
	half := len(kernel) / 2

	for y := band.Start; y < band.End; y++ {
		out := dst.Row(y)

		for x := 0; x < width; x++ {
			var r, g, b float64
			for k, weight := range kernel {
				i := (clamp(y+k-half, 0, height-1)*width + x) * 3
				r += temp[i] * weight
				g += temp[i+1] * weight
				b += temp[i+2] * weight
			}
			out[x*3] = truncUint8(r)
			out[x*3+1] = truncUint8(g)
			out[x*3+2] = truncUint8(b)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncUint8 truncates toward zero and saturates to [0, 255].
func truncUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
