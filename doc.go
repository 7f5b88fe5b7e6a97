// Package pen gives the actors of a block runtime a pen: persistent trails
// and stamps on a shared surface.
//
// # Overview
//
// pen is a thin adapter between a block-execution runtime and a renderer.
// It keeps one small record per actor (color, size, whether the pen is down),
// decides what to draw when blocks run or actors move, and forwards drawing
// instructions to the renderer. It never touches pixels itself.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pen"
//	    "github.com/gogpu/pen/integration/ggsurface"
//	    "github.com/gogpu/pen/stage"
//	)
//
//	r, _ := ggsurface.New(480, 360)
//	s := stage.New(stage.WithDrawables(r))
//	p := pen.New(pen.WithRenderer(r))
//	s.OnCreated(p.OnActorCreated)
//	s.OnRemoved(p.OnActorRemoved)
//
//	cat := s.NewSprite("cat")
//	p.SetParam(cat, pen.ParamColor, 0) // red
//	p.SetSize(cat, 4)
//	p.TrailDown(cat)
//	cat.SetXY(100, 50) // draws a line
//	_ = r.SavePNG("trail.png")
//
// # Color Models
//
// Two color models coexist. The modern one uses four parameters in [0, 100]:
// color (hue rescaled from degrees, wrapping), saturation, brightness and
// transparency (both saturating). The legacy one uses a hue on a 0–200
// scale and a cyclic shade in [0, 200) that mixes the pure hue toward black
// or white. Legacy blocks rewrite the modern parameters, and the shade is
// stored separately because it cannot be recovered from them.
//
// After every operation the renderer-facing RGBA of the actor is recomputed
// from the modern parameters, so it is never stale.
//
// # Collaborators
//
// The runtime is reached through [Actor] and [MoveListener]; the renderer
// through [Renderer]. Without a renderer every drawing block is a silent
// no-op, and drawing starts working as soon as one is attached with
// [Pen.AttachRenderer].
//
// Reference implementations live in sub-packages:
//   - integration/ggsurface: a [Renderer] drawing on gg contexts
//   - stage: an in-memory runtime with sprites, clones and move events
//
// # Thread Safety
//
// Pen, Store and State are NOT safe for concurrent use. Blocks run one at a
// time; the host must serialize calls.
package pen
