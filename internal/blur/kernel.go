package blur

import (
	"math"
	"sync"
)

// radiusToSigma is 1/sqrt(3), the scale between a blur radius and sigma.
const radiusToSigma = 0.57735

// Sigma converts a blur radius to the standard deviation of the Gaussian.
// Radius 0 (no blur) returns 0.
func Sigma(radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	return radiusToSigma*radius + 0.5
}

// Extent returns how many pixels a blur with the given sigma spreads a
// shape on each side: three standard deviations, rounded up.
func Extent(sigma float64) int {
	if sigma <= 0 {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// Kernel returns a normalized 1D Gaussian kernel of size 2*Extent(sigma)+1.
// For sigma <= 0 it returns the identity kernel [1].
func Kernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}
	half := Extent(sigma)
	kernel := make([]float32, 2*half+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache memoizes kernels by sigma quantized to 0.01.
type kernelCache struct {
	mu      sync.RWMutex
	kernels map[int][]float32
	limit   int
}

var kernels = newKernelCache(32)

func newKernelCache(limit int) *kernelCache {
	return &kernelCache{kernels: make(map[int][]float32), limit: limit}
}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	k, ok := c.kernels[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = Kernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.kernels) >= c.limit {
		clear(c.kernels)
	}
	c.kernels[key] = k
	c.mu.Unlock()
	return k
}

// CachedKernel is Kernel backed by a process-wide cache. Callers must not
// modify the returned slice.
func CachedKernel(sigma float64) []float32 {
	return kernels.get(sigma)
}
