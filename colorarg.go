package pen

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// RGBColor is a color argument with 8-bit channels.
// HasAlpha distinguishes "#rrggbb" style arguments, which leave the pen
// opaque, from arguments that carry their own alpha.
type RGBColor struct {
	R, G, B, A uint8
	HasAlpha   bool
}

// RGB returns an RGBColor without alpha.
func RGB(r, g, b uint8) RGBColor {
	return RGBColor{R: r, G: g, B: b, A: 255}
}

// RGBA returns an RGBColor with alpha.
func RGBA(r, g, b, a uint8) RGBColor {
	return RGBColor{R: r, G: g, B: b, A: a, HasAlpha: true}
}

// ParseColor converts a loosely typed block argument to a color.
//
// Accepted forms:
//   - color.Color: used as is, with alpha
//   - "#rrggbb" or "#rgb": no alpha; malformed hex is opaque black
//   - an SVG color name such as "red" or "cornflowerblue": no alpha
//   - anything else is cast to a number 0xAARRGGBB, where a zero alpha
//     byte means opaque
func ParseColor(v any) RGBColor {
	switch c := v.(type) {
	case RGBColor:
		return c
	case color.Color:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		return RGBA(n.R, n.G, n.B, n.A)
	case string:
		s := strings.TrimSpace(c)
		if strings.HasPrefix(s, "#") {
			return parseHex(s)
		}
		if named, ok := colornames.Map[strings.ToLower(s)]; ok {
			return RGB(named.R, named.G, named.B)
		}
	}
	return fromDecimal(ToNumber(v))
}

func parseHex(s string) RGBColor {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA(0, 0, 0, 255)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b)
}

// fromDecimal unpacks 0xAARRGGBB. Fractions are truncated and the value is
// taken modulo 2^32, as the runtime's integer coercion does.
func fromDecimal(n float64) RGBColor {
	v := uint32(int64(n))
	a := uint8(v >> 24)
	if a == 0 {
		a = 255
	}
	return RGBA(uint8(v>>16), uint8(v>>8), uint8(v), a)
}
