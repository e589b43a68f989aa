package shadowlayout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Default colors used when a Container is created without configuration.
var (
	DefaultShadowColor     = ARGB(0x33000000)
	DefaultForegroundColor = ARGB(0x1F000000)
	DefaultBackgroundColor = gg.White
)

// ARGB converts a packed 0xAARRGGBB color to gg.RGBA.
func ARGB(c uint32) gg.RGBA {
	return gg.RGBA{
		R: float64(c>>16&0xff) / 255,
		G: float64(c>>8&0xff) / 255,
		B: float64(c&0xff) / 255,
		A: float64(c>>24&0xff) / 255,
	}
}

// ToARGB packs a gg.RGBA into 0xAARRGGBB, clamping each channel.
func ToARGB(c gg.RGBA) uint32 {
	return uint32(channel(c.A))<<24 | uint32(channel(c.R))<<16 |
		uint32(channel(c.G))<<8 | uint32(channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// ParseColor parses "#RGB", "#ARGB", "#RRGGBB" or "#AARRGGBB". Alpha comes
// first, unlike gg.Hex which expects it last.
func ParseColor(s string) (gg.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4:
		// Expand each nibble: "f80" -> "ff8800".
		var b strings.Builder
		for i := 0; i < len(hex); i++ {
			b.WriteByte(hex[i])
			b.WriteByte(hex[i])
		}
		hex = b.String()
	case 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return ARGB(uint32(v)), nil
}

// FormatColor renders c as "#AARRGGBB".
func FormatColor(c gg.RGBA) string {
	return fmt.Sprintf("#%08X", ToARGB(c))
}
