package pen

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/text/cases"

	intColor "github.com/gogpu/pen/internal/color"
)

// ColorParam names one of the four modern color parameters.
type ColorParam string

// Color parameters, in menu order.
const (
	ParamColor        ColorParam = "color"
	ParamSaturation   ColorParam = "saturation"
	ParamBrightness   ColorParam = "brightness"
	ParamTransparency ColorParam = "transparency"
)

// ColorParams returns the color parameters in menu order.
func ColorParams() []ColorParam {
	return []ColorParam{ParamColor, ParamSaturation, ParamBrightness, ParamTransparency}
}

// canonical folds case and surrounding space so menu values typed by hand
// ("Color", " BRIGHTNESS") still match.
func (p ColorParam) canonical() ColorParam {
	return ColorParam(cases.Fold().String(strings.TrimSpace(string(p))))
}

// SetParam sets one color parameter. Color wraps into [0, 100), the other
// parameters saturate at 0 and 100.
//
// An unknown parameter returns an error wrapping ErrUnknownParam and leaves
// the state unchanged. Attributes are recomputed in every case.
func (s *State) SetParam(p ColorParam, value float64) error {
	err := s.setParam(p, value, false)
	s.recompute()
	return err
}

// ChangeParam adds delta to one color parameter, with the same wrapping,
// clamping and error behavior as SetParam.
func (s *State) ChangeParam(p ColorParam, delta float64) error {
	err := s.setParam(p, delta, true)
	s.recompute()
	return err
}

func (s *State) setParam(p ColorParam, value float64, change bool) error {
	switch p.canonical() {
	case ParamColor:
		if change {
			value += s.Color
		}
		s.Color = wrap(value, ParamMax)
	case ParamSaturation:
		if change {
			value += s.Saturation
		}
		s.Saturation = clamp(value, 0, ParamMax)
	case ParamBrightness:
		if change {
			value += s.Brightness
		}
		s.Brightness = clamp(value, 0, ParamMax)
	case ParamTransparency:
		if change {
			value += s.Transparency
		}
		s.Transparency = clamp(value, 0, ParamMax)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownParam, string(p))
	}
	return nil
}

// SetSize sets the pen diameter, clamped to [MinDiameter, MaxDiameter].
func (s *State) SetSize(diameter float64) {
	s.Attributes.Diameter = clamp(diameter, MinDiameter, MaxDiameter)
	s.recompute()
}

// ChangeSize adds delta to the pen diameter, clamped like SetSize.
func (s *State) ChangeSize(delta float64) {
	s.SetSize(s.Attributes.Diameter + delta)
}

// SetColorFromRGBA replaces the modern color parameters with the HSV form
// of c. Without an alpha channel the pen becomes fully opaque.
// The legacy shade is reset to half the new brightness.
func (s *State) SetColorFromRGBA(c RGBColor) {
	hsv := intColor.RGB{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.ToHSV()
	s.Color = wrap(hsv.H/3.6, ParamMax)
	s.Saturation = clamp(hsv.S*100, 0, ParamMax)
	s.Brightness = clamp(hsv.V*100, 0, ParamMax)
	if c.HasAlpha {
		s.Transparency = 100 * (1 - float64(c.A)/255)
	} else {
		s.Transparency = 0
	}
	s.LegacyShade = s.Brightness / 2
	s.recompute()
}

// recompute derives Attributes.Color from the modern color parameters.
func (s *State) recompute() {
	rgb := intColor.HSV{
		H: s.Color * 3.6,
		S: s.Saturation / 100,
		V: s.Brightness / 100,
	}.ToRGB()
	s.Attributes.Color = gg.RGBA{
		R: rgb.R / 255,
		G: rgb.G / 255,
		B: rgb.B / 255,
		A: 1 - s.Transparency/100,
	}
}

// clamp pins x to [lo, hi]. NaN becomes lo.
func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// wrap maps x cyclically into [0, period). Non-finite input becomes 0.
func wrap(x, period float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return math.Mod(math.Mod(x, period)+period, period)
}
