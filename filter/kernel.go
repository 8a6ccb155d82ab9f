package filter

import (
	"fmt"
	"math"
	"sync"

	"github.com/pixelgraft/pixelgraft"
)

// ErrInvalidRadius is returned for negative blur radii.
var ErrInvalidRadius = pixelgraft.NewDegenerateError("blur radius must be >= 0")

// GaussianKernel generates a 1D Gaussian kernel of length 2*radius+1 with
// weights exp(-x²/(2σ²)) for x in [-radius, radius], normalized to sum 1.
//
// If sigma <= 0 it defaults to radius/2. Radius 0 yields the identity
// kernel [1.0].
func GaussianKernel(radius int, sigma float64) ([]float64, error) {
	if radius < 0 {
		return nil, fmt.Errorf("gaussian kernel radius %d: %w", radius, ErrInvalidRadius)
	}
	if radius == 0 {
		return []float64{1.0}, nil
	}
	if sigma <= 0 {
		sigma = float64(radius) / 2
	}

	kernel := make([]float64, 2*radius+1)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel, nil
}

type kernelKey struct {
	radius int
	sigma  float64
}

// kernelCache keeps computed kernels so repeated blurs with the same
// parameters skip the exp() loop.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[kernelKey][]float64
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[kernelKey][]float64),
		maxLen: maxLen,
	}
}

func (c *kernelCache) get(radius int, sigma float64) ([]float64, error) {
	key := kernelKey{radius: radius, sigma: sigma}

	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel, nil
	}
	c.mu.RUnlock()

	kernel, err := GaussianKernel(radius, sigma)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Evict half; kernels are cheap to rebuild.
		n := 0
		for k := range c.cache {
			delete(c.cache, k)
			n++
			if n >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel, nil
}

// CachedGaussianKernel returns a shared kernel for (radius, sigma).
// The returned slice must not be modified.
func CachedGaussianKernel(radius int, sigma float64) ([]float64, error) {
	return defaultKernelCache.get(radius, sigma)
}
