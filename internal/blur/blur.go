package blur

import (
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
)

// Mask returns a Gaussian-blurred copy of src. Pixels outside src count
// as transparent, so coverage fades out at the image edges instead of
// being smeared. sigma <= 0 returns an unmodified copy.
//
// The horizontal and vertical passes run separately, for a cost of
// O(w*h*k) where k is the kernel length.
func Mask(src *image.Alpha, sigma float64) *image.Alpha {
	b := src.Bounds()
	dst := image.NewAlpha(b)
	w, h := b.Dx(), b.Dy()
	if sigma <= 0 {
		for y := 0; y < h; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return dst
	}
	if w == 0 || h == 0 {
		return dst
	}

	kernel := CachedKernel(sigma)
	buf := getTemp(w * h)
	defer tempPool.Put(buf)

	horizontal(src, buf.data, w, h, kernel)
	vertical(buf.data, dst, w, h, kernel)
	return dst
}

func horizontal(src *image.Alpha, temp []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				sx := x + k - half
				if sx < 0 || sx >= w {
					continue
				}
				sum += float32(row[sx]) * weight
			}
			temp[y*w+x] = sum
		}
	}
}

func vertical(temp []float32, dst *image.Alpha, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				sy := y + k - half
				if sy < 0 || sy >= h {
					continue
				}
				sum += temp[sy*w+x] * weight
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(sum)
		}
	}
}

// AlphaOf extracts the alpha channel of img.
func AlphaOf(img image.Image) *image.Alpha {
	b := img.Bounds()
	out := image.NewAlpha(b)
	if rgba, ok := img.(*image.RGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			si := rgba.PixOffset(b.Min.X, y)
			di := out.PixOffset(b.Min.X, y)
			for x := 0; x < b.Dx(); x++ {
				out.Pix[di+x] = rgba.Pix[si+4*x+3]
			}
		}
		return out
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			out.SetAlpha(x, y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return out
}

// Colorize paints c through mask. The result is premultiplied, ready to be
// composited with source-over.
func Colorize(mask *image.Alpha, c gg.RGBA) *image.RGBA {
	b := mask.Bounds()
	out := image.NewRGBA(b)
	ca := clamp01(c.A)
	r, g, bl := clamp01(c.R)*ca, clamp01(c.G)*ca, clamp01(c.B)*ca

	for y := b.Min.Y; y < b.Max.Y; y++ {
		mi := mask.PixOffset(b.Min.X, y)
		oi := out.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			m := float64(mask.Pix[mi+x]) / 255
			if m == 0 {
				continue
			}
			p := out.Pix[oi+4*x : oi+4*x+4 : oi+4*x+4]
			p[0] = uint8(r*m*255 + 0.5)
			p[1] = uint8(g*m*255 + 0.5)
			p[2] = uint8(bl*m*255 + 0.5)
			p[3] = uint8(ca*m*255 + 0.5)
		}
	}
	return out
}

type floatBuffer struct {
	data []float32
}

var tempPool = sync.Pool{
	New: func() any { return &floatBuffer{} },
}

// getTemp returns a pooled buffer of at least size floats. Every element
// is overwritten by the horizontal pass, so it is not cleared.
func getTemp(size int) *floatBuffer {
	buf := tempPool.Get().(*floatBuffer)
	if cap(buf.data) < size {
		buf.data = make([]float32, size)
	}
	buf.data = buf.data[:size]
	return buf
}

func clampUint8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

func clamp01(v float64) float64 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}
