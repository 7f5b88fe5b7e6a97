package pen

import "github.com/gogpu/gg"

// Size and color parameter ranges.
const (
	MinDiameter = 1
	MaxDiameter = 1200

	// ParamMax is the upper bound of every color parameter.
	// Color wraps at ParamMax, the others saturate.
	ParamMax = 100

	// ShadeRange is the period of the legacy shade value.
	ShadeRange = 200
)

// Attributes is what the renderer consumes when drawing a trail.
type Attributes struct {
	// Color is derived from the owning State's color parameters and is
	// rewritten after every operation. Never edit it directly.
	Color gg.RGBA

	// Diameter is the authoritative pen size in stage units.
	Diameter float64
}

// State is the pen record of a single actor.
//
// Color, Saturation, Brightness and Transparency are the modern color model.
// LegacyShade belongs to the older hue/shade model: it cannot be recovered
// from the modern fields once saturation or brightness have been changed by
// other blocks, so it is carried alongside them and never derived.
type State struct {
	TrailEnabled bool

	// Color is the hue rescaled to [0, 100).
	Color float64

	Saturation   float64
	Brightness   float64
	Transparency float64

	// LegacyShade is in [0, 200).
	LegacyShade float64

	Attributes Attributes
}

// DefaultState returns the record installed for an actor the first time a
// pen block touches it.
func DefaultState() State {
	return State{
		TrailEnabled: false,
		Color:        66.66,
		Saturation:   100,
		Brightness:   100,
		Transparency: 0,
		LegacyShade:  50,
		Attributes: Attributes{
			Color:    gg.RGBA{R: 0, G: 0, B: 1, A: 1},
			Diameter: 1,
		},
	}
}

// Clone returns an independent copy of s.
func (s *State) Clone() *State {
	c := *s
	return &c
}
