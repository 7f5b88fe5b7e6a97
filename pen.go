package pen

import "reflect"

// Pen implements the pen blocks: it keeps a pen record per actor and
// forwards trails, stamps and clears to a Renderer.
//
// Every color and size operation fetches (or creates) the actor's record,
// mutates it and leaves Attributes recomputed before returning. Drawing
// operations are silent no-ops while no renderer is attached.
//
// Pen is NOT safe for concurrent use. The block runtime must serialize calls.
type Pen struct {
	store    *Store
	renderer Renderer
	layer    string

	// Pen surface, created on first use once a renderer is present.
	surface    SurfaceID
	drawable   DrawableID
	hasSurface bool

	// tracker is the single listener value registered on trailing actors,
	// so RemoveMoveListener can match it.
	tracker *trailTracker
}

// trailTracker forwards movement notifications to its Pen.
type trailTracker struct {
	pen *Pen
}

func (t *trailTracker) OnMove(e MoveEvent) {
	t.pen.onMove(e)
}

// New creates a Pen.
func New(opts ...Option) *Pen {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store := o.store
	if store == nil {
		store = NewStore()
	}

	p := &Pen{
		store:    store,
		renderer: o.renderer,
		layer:    o.layer,
		drawable: NoDrawable,
	}
	p.tracker = &trailTracker{pen: p}
	return p
}

// AttachRenderer installs r as the renderer. A different renderer gets a
// fresh pen surface on next use. Passing nil detaches the renderer.
//
// Renderers whose dynamic type is not comparable are always treated as
// different.
func (p *Pen) AttachRenderer(r Renderer) {
	if sameRenderer(r, p.renderer) {
		return
	}
	p.renderer = r
	p.hasSurface = false
	p.drawable = NoDrawable
	Logger().Debug("pen: renderer attached", "present", r != nil)
}

func sameRenderer(a, b Renderer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// Store returns the store holding actor records.
func (p *Pen) Store() *Store {
	return p.store
}

// State returns the actor's record, creating it with defaults if needed.
func (p *Pen) State(a Actor) *State {
	return p.store.GetOrCreate(a.ID())
}

// Surface returns the pen surface and drawable, creating them if a
// renderer is attached. ok is false without a renderer.
func (p *Pen) Surface() (surface SurfaceID, drawable DrawableID, ok bool) {
	if p.renderer == nil {
		return 0, NoDrawable, false
	}
	if !p.hasSurface {
		p.surface = p.renderer.CreateSurface()
		p.drawable = p.renderer.CreateDrawable(p.layer)
		p.renderer.BindSkin(p.drawable, p.surface)
		p.hasSurface = true
		Logger().Debug("pen: surface created",
			"surface", p.surface, "drawable", p.drawable, "layer", p.layer)
	}
	return p.surface, p.drawable, true
}

// ClearAll erases every trail and stamp.
func (p *Pen) ClearAll() {
	surface, _, ok := p.Surface()
	if !ok {
		return
	}
	if err := p.renderer.ClearSurface(surface); err != nil {
		Logger().Warn("pen: clear failed", "surface", surface, "err", err)
		return
	}
	p.renderer.RequestRedraw()
}

// Stamp composites the actor's current look onto the pen surface once.
func (p *Pen) Stamp(a Actor) {
	surface, _, ok := p.Surface()
	if !ok {
		return
	}
	drawable := a.DrawableID()
	if drawable == NoDrawable {
		Logger().Debug("pen: stamp skipped, actor has no drawable", "actor", a.ID())
		return
	}
	if err := p.renderer.StampDrawableOnto(surface, drawable); err != nil {
		Logger().Warn("pen: stamp failed", "actor", a.ID(), "err", err)
		return
	}
	p.renderer.RequestRedraw()
}

// TrailDown starts tracing the actor's movement and marks its current
// position with a dot, so a trail is visible before the first move.
func (p *Pen) TrailDown(a Actor) {
	st := p.store.GetOrCreate(a.ID())
	if !st.TrailEnabled {
		st.TrailEnabled = true
		a.AddMoveListener(p.tracker)
		Logger().Debug("pen: trail down", "actor", a.ID())
	}

	surface, _, ok := p.Surface()
	if !ok {
		return
	}
	x, y := a.Position()
	if err := p.renderer.DrawPoint(surface, st.Attributes, x, y); err != nil {
		Logger().Warn("pen: point failed", "actor", a.ID(), "err", err)
		return
	}
	p.renderer.RequestRedraw()
}

// TrailUp stops tracing the actor's movement.
func (p *Pen) TrailUp(a Actor) {
	st := p.store.GetOrCreate(a.ID())
	if !st.TrailEnabled {
		return
	}
	st.TrailEnabled = false
	a.RemoveMoveListener(p.tracker)
	Logger().Debug("pen: trail up", "actor", a.ID())
}

// onMove draws the segment an organic move left behind. Forced moves
// (drags, teleports) leave no trail.
func (p *Pen) onMove(e MoveEvent) {
	if e.Forced {
		return
	}
	st, ok := p.store.Get(e.Actor)
	if !ok || !st.TrailEnabled {
		return
	}
	surface, _, ok := p.Surface()
	if !ok {
		return
	}
	if err := p.renderer.DrawLine(surface, st.Attributes, e.OldX, e.OldY, e.NewX, e.NewY); err != nil {
		Logger().Warn("pen: line failed", "actor", e.Actor, "err", err)
		return
	}
	p.renderer.RequestRedraw()
}

// OnActorCreated gives a clone a copy of its source's pen record. A clone
// of a trailing actor keeps trailing. source may be nil for actors that
// are not clones.
func (p *Pen) OnActorCreated(clone, source Actor) {
	if source == nil {
		return
	}
	st := p.store.Clone(clone.ID(), source.ID())
	if st != nil && st.TrailEnabled {
		clone.AddMoveListener(p.tracker)
	}
}

// OnActorRemoved forgets a destroyed actor.
func (p *Pen) OnActorRemoved(a Actor) {
	if st, ok := p.store.Get(a.ID()); ok && st.TrailEnabled {
		a.RemoveMoveListener(p.tracker)
	}
	p.store.Remove(a.ID())
}

// SetColorFromRGBA sets the pen color from an RGB(A) color.
func (p *Pen) SetColorFromRGBA(a Actor, c RGBColor) {
	p.State(a).SetColorFromRGBA(c)
}

// SetParam sets one color parameter. Unknown parameters are logged and
// otherwise ignored.
func (p *Pen) SetParam(a Actor, param ColorParam, value float64) {
	if err := p.State(a).SetParam(param, value); err != nil {
		Logger().Warn("pen: set color parameter ignored", "actor", a.ID(), "err", err)
	}
}

// ChangeParam changes one color parameter by delta. Unknown parameters are
// logged and otherwise ignored.
func (p *Pen) ChangeParam(a Actor, param ColorParam, delta float64) {
	if err := p.State(a).ChangeParam(param, delta); err != nil {
		Logger().Warn("pen: change color parameter ignored", "actor", a.ID(), "err", err)
	}
}

// SetSize sets the pen diameter.
func (p *Pen) SetSize(a Actor, diameter float64) {
	p.State(a).SetSize(diameter)
}

// ChangeSize changes the pen diameter by delta.
func (p *Pen) ChangeSize(a Actor, delta float64) {
	p.State(a).ChangeSize(delta)
}

// SetHue sets the legacy hue.
func (p *Pen) SetHue(a Actor, hue float64) {
	p.State(a).SetHue(hue)
}

// ChangeHue changes the legacy hue by delta.
func (p *Pen) ChangeHue(a Actor, delta float64) {
	p.State(a).ChangeHue(delta)
}

// SetShade sets the legacy shade.
func (p *Pen) SetShade(a Actor, shade float64) {
	p.State(a).SetShade(shade)
}

// ChangeShade changes the legacy shade by delta.
func (p *Pen) ChangeShade(a Actor, delta float64) {
	p.State(a).ChangeShade(delta)
}
