// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package color implements the HSV and RGB arithmetic behind pen colors.
//
// The conversions reproduce the historical block-runtime color utilities.
// HSV to RGB truncates every channel to an integer and RGB to HSV derives
// the hue from the minimum channel. Mixing interpolates unclamped fractional
// channels. Pen output depends on all three down to the last bit, because a
// truncated channel turns a one-ulp hue difference into a whole 1/255 step.
// The helpers here are not interchangeable with a general color library.
//
// Products feeding a sum are converted explicitly to float64 so the
// compiler cannot fuse them into FMA instructions.
package color

import "math"

// RGB is a color with channels in [0, 255].
// Channels are float64 because mixing produces fractional values that are
// fed back into HSV without rounding.
type RGB struct {
	R, G, B float64
}

// HSV is a hue/saturation/value triple.
// H is in degrees [0, 360), S and V are in [0, 1].
type HSV struct {
	H, S, V float64
}

// Mixing endpoints.
var (
	Black = RGB{R: 0, G: 0, B: 0}
	White = RGB{R: 255, G: 255, B: 255}
)

// ToRGB converts c to RGB. Hue wraps, saturation and value are clamped,
// and every channel is truncated to an integer.
func (c HSV) ToRGB() RGB {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	s := clamp01(c.S)
	v := clamp01(c.V)

	sector := math.Floor(h / 60)
	f := h/60 - sector
	p := v * (1 - s)
	q := v * (1 - float64(s*f))
	t := v * (1 - float64(s*(1-f)))

	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{
		R: math.Floor(r * 255),
		G: math.Floor(g * 255),
		B: math.Floor(b * 255),
	}
}

// ToHSV converts c to HSV. Grays have hue 0 and black has saturation 0.
func (c RGB) ToHSV() HSV {
	r, g, b := c.R/255, c.G/255, c.B/255
	x := math.Min(math.Min(r, g), b)
	v := math.Max(math.Max(r, g), b)
	if x == v {
		return HSV{H: 0, S: 0, V: v}
	}

	// The hue is measured back from the sector opposite the minimum channel.
	var f, i float64
	switch x {
	case r:
		f, i = g-b, 3
	case g:
		f, i = b-r, 5
	default:
		f, i = r-g, 1
	}
	return HSV{
		H: math.Mod((i-f/(v-x))*60, 360),
		S: (v - x) / v,
		V: v,
	}
}

// Mix linearly interpolates from a toward b.
// A fraction at or below 0 returns a, at or above 1 returns b.
func Mix(a, b RGB, fraction float64) RGB {
	if fraction <= 0 {
		return a
	}
	if fraction >= 1 {
		return b
	}
	f0 := 1 - fraction
	return RGB{
		R: float64(f0*a.R) + float64(fraction*b.R),
		G: float64(f0*a.G) + float64(fraction*b.G),
		B: float64(f0*a.B) + float64(fraction*b.B),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
