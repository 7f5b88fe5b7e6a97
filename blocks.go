package pen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Block opcodes served by Primitives.
const (
	OpClear                 = "pen_clear"
	OpStamp                 = "pen_stamp"
	OpPenDown               = "pen_penDown"
	OpPenUp                 = "pen_penUp"
	OpSetPenColorToColor    = "pen_setPenColorToColor"
	OpChangePenColorParamBy = "pen_changePenColorParamBy"
	OpSetPenColorParamTo    = "pen_setPenColorParamTo"
	OpChangePenSizeBy       = "pen_changePenSizeBy"
	OpSetPenSizeTo          = "pen_setPenSizeTo"
	OpSetPenShadeToNumber   = "pen_setPenShadeToNumber"
	OpChangePenShadeBy      = "pen_changePenShadeBy"
	OpSetPenHueToNumber     = "pen_setPenHueToNumber"
	OpChangePenHueBy        = "pen_changePenHueBy"
)

// Args holds the loosely typed arguments of one block invocation,
// keyed by argument name (COLOR, COLOR_PARAM, VALUE, SIZE, SHADE, HUE).
type Args map[string]any

// BlockFunc runs one block for an actor. Blocks that act on an actor do
// nothing when a is nil.
type BlockFunc func(a Actor, args Args)

// Primitives returns the block handlers keyed by opcode.
func (p *Pen) Primitives() map[string]BlockFunc {
	return map[string]BlockFunc{
		OpClear:   func(Actor, Args) { p.ClearAll() },
		OpStamp:   withActor(func(a Actor, _ Args) { p.Stamp(a) }),
		OpPenDown: withActor(func(a Actor, _ Args) { p.TrailDown(a) }),
		OpPenUp:   withActor(func(a Actor, _ Args) { p.TrailUp(a) }),
		OpSetPenColorToColor: withActor(func(a Actor, args Args) {
			p.SetColorFromRGBA(a, ParseColor(args["COLOR"]))
		}),
		OpChangePenColorParamBy: withActor(func(a Actor, args Args) {
			p.ChangeParam(a, ColorParam(ToString(args["COLOR_PARAM"])), ToNumber(args["VALUE"]))
		}),
		OpSetPenColorParamTo: withActor(func(a Actor, args Args) {
			p.SetParam(a, ColorParam(ToString(args["COLOR_PARAM"])), ToNumber(args["VALUE"]))
		}),
		OpChangePenSizeBy: withActor(func(a Actor, args Args) {
			p.ChangeSize(a, ToNumber(args["SIZE"]))
		}),
		OpSetPenSizeTo: withActor(func(a Actor, args Args) {
			p.SetSize(a, ToNumber(args["SIZE"]))
		}),
		OpSetPenShadeToNumber: withActor(func(a Actor, args Args) {
			p.SetShade(a, ToNumber(args["SHADE"]))
		}),
		OpChangePenShadeBy: withActor(func(a Actor, args Args) {
			p.ChangeShade(a, ToNumber(args["SHADE"]))
		}),
		OpSetPenHueToNumber: withActor(func(a Actor, args Args) {
			p.SetHue(a, ToNumber(args["HUE"]))
		}),
		OpChangePenHueBy: withActor(func(a Actor, args Args) {
			p.ChangeHue(a, ToNumber(args["HUE"]))
		}),
	}
}

// Run looks up opcode and runs it. It reports whether the opcode exists.
func (p *Pen) Run(opcode string, a Actor, args Args) bool {
	fn, ok := p.Primitives()[opcode]
	if !ok {
		return false
	}
	fn(a, args)
	return true
}

func withActor(fn BlockFunc) BlockFunc {
	return func(a Actor, args Args) {
		if a == nil {
			return
		}
		fn(a, args)
	}
}

// ToNumber casts a block argument to a number the way the block runtime
// does: numeric strings parse (including 0x, 0o and 0b prefixes), booleans
// are 1 and 0, and everything else, NaN included, is 0. "Infinity" is the
// only spelled-out number accepted; "inf" and "nan" are 0.
func ToNumber(v any) float64 {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int8:
		n = float64(x)
	case int16:
		n = float64(x)
	case int32:
		n = float64(x)
	case int64:
		n = float64(x)
	case uint:
		n = float64(x)
	case uint8:
		n = float64(x)
	case uint16:
		n = float64(x)
	case uint32:
		n = float64(x)
	case uint64:
		n = float64(x)
	case bool:
		if x {
			n = 1
		}
	case string:
		n = parseNumber(x)
	}
	if math.IsNaN(n) {
		return 0
	}
	return n
}

// parseNumber follows the runtime's string to number rules. Hex, octal
// and binary literals may not carry a sign, and digit separators are not
// allowed. Out of range decimals become ±Inf or 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	sign, body := 1, s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}
	if body == "Infinity" {
		return math.Inf(sign)
	}
	if body == "" || strings.ContainsRune(body, '_') || (digitValue(rune(body[0])) > 9 && body[0] != '.') {
		return 0
	}

	if base := radix(body); base != 10 {
		if body != s {
			return 0
		}
		return parseRadix(body[2:], base)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

// radix returns the base named by a 0x, 0o or 0b prefix, or 10.
func radix(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 10
	}
	switch s[1] | 0x20 {
	case 'x':
		return 16
	case 'o':
		return 8
	case 'b':
		return 2
	}
	return 10
}

func parseRadix(digits string, base int) float64 {
	if digits == "" {
		return 0
	}
	var n float64
	for _, c := range digits {
		d := digitValue(c)
		if d >= base {
			return 0
		}
		n = n*float64(base) + float64(d)
	}
	return n
}

// digitValue returns the value of a hex digit, or 99 for anything else.
func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 99
}

// ToString casts a block argument to a string.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
