package pen

import intColor "github.com/gogpu/pen/internal/color"

// Legacy hue/shade model.
//
// Older projects set a hue on a 0–200 scale and a cyclic shade in [0, 200)
// instead of the four modern parameters. Every legacy operation rewrites the
// modern color, saturation and brightness from hue and shade, so both models
// agree after each call. The rewrite goes through integer RGB and loses
// precision; old projects depend on exactly that output.

// SetHue sets the color from a legacy hue (half the modern color scale)
// and makes the pen opaque.
func (s *State) SetHue(hue float64) {
	_ = s.setParam(ParamColor, hue/2, false)
	_ = s.setParam(ParamTransparency, 0, false)
	s.legacyRecompute()
}

// ChangeHue adds a legacy hue delta to the color.
func (s *State) ChangeHue(delta float64) {
	_ = s.setParam(ParamColor, delta/2, true)
	s.legacyRecompute()
}

// SetShade wraps shade into [0, 200) and stores it as the legacy shade.
func (s *State) SetShade(shade float64) {
	s.LegacyShade = wrap(shade, ShadeRange)
	s.legacyRecompute()
}

// ChangeShade adds delta to the stored legacy shade. The stored value is
// used because the modern fields no longer determine it.
func (s *State) ChangeShade(delta float64) {
	s.SetShade(s.LegacyShade + delta)
}

// legacyRecompute mixes the pure hue toward black (shade below 50) or
// white (50 and above), then writes the result back as HSV.
// Shade is symmetric around 100. At exactly 50 the white branch runs with
// a zero ratio, leaving the pure hue.
func (s *State) legacyRecompute() {
	rgb := intColor.HSV{H: s.Color * 3.6, S: 1, V: 1}.ToRGB()

	shade := s.LegacyShade
	if shade > 100 {
		shade = 200 - shade
	}
	if shade < 50 {
		rgb = intColor.Mix(intColor.Black, rgb, (10+shade)/60)
	} else {
		rgb = intColor.Mix(rgb, intColor.White, (shade-50)/60)
	}

	hsv := rgb.ToHSV()
	s.Color = wrap(hsv.H/3.6, ParamMax)
	s.Saturation = clamp(hsv.S*100, 0, ParamMax)
	s.Brightness = clamp(hsv.V*100, 0, ParamMax)
	s.recompute()
}
