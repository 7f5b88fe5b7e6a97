package pen

import (
	"errors"
	"math"
)

// fakeActor is a test actor that delivers move events to its listeners.
type fakeActor struct {
	id        ActorID
	x, y      float64
	drawable  DrawableID
	listeners []MoveListener
	adds      int
	removes   int
}

func newFakeActor(id ActorID, x, y float64) *fakeActor {
	return &fakeActor{id: id, x: x, y: y, drawable: DrawableID(100 + id)}
}

func (a *fakeActor) ID() ActorID                  { return a.id }
func (a *fakeActor) Position() (float64, float64) { return a.x, a.y }
func (a *fakeActor) DrawableID() DrawableID       { return a.drawable }

func (a *fakeActor) AddMoveListener(l MoveListener) {
	a.adds++
	a.listeners = append(a.listeners, l)
}

func (a *fakeActor) RemoveMoveListener(l MoveListener) {
	a.removes++
	for i, existing := range a.listeners {
		if existing == l {
			a.listeners = append(a.listeners[:i:i], a.listeners[i+1:]...)
			return
		}
	}
}

func (a *fakeActor) moveTo(x, y float64, forced bool) {
	e := MoveEvent{Actor: a.id, OldX: a.x, OldY: a.y, NewX: x, NewY: y, Forced: forced}
	a.x, a.y = x, y
	for _, l := range append([]MoveListener(nil), a.listeners...) {
		l.OnMove(e)
	}
}

// drawCall records one renderer instruction.
type drawCall struct {
	op       string
	surface  SurfaceID
	drawable DrawableID
	attrs    Attributes
	x0, y0   float64
	x1, y1   float64
}

// recordingRenderer is a test renderer that records draw instructions.
type recordingRenderer struct {
	calls     []drawCall
	surfaces  int
	drawables []string
	bound     map[DrawableID]SurfaceID
	redraws   int
	err       error
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{bound: make(map[DrawableID]SurfaceID)}
}

func (r *recordingRenderer) CreateSurface() SurfaceID {
	r.surfaces++
	return SurfaceID(r.surfaces)
}

func (r *recordingRenderer) CreateDrawable(layer string) DrawableID {
	r.drawables = append(r.drawables, layer)
	return DrawableID(len(r.drawables))
}

func (r *recordingRenderer) BindSkin(d DrawableID, s SurfaceID) {
	r.bound[d] = s
}

func (r *recordingRenderer) ClearSurface(s SurfaceID) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, drawCall{op: "clear", surface: s})
	return nil
}

func (r *recordingRenderer) DrawPoint(s SurfaceID, attrs Attributes, x, y float64) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, drawCall{op: "point", surface: s, attrs: attrs, x0: x, y0: y})
	return nil
}

func (r *recordingRenderer) DrawLine(s SurfaceID, attrs Attributes, x0, y0, x1, y1 float64) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, drawCall{op: "line", surface: s, attrs: attrs, x0: x0, y0: y0, x1: x1, y1: y1})
	return nil
}

func (r *recordingRenderer) StampDrawableOnto(s SurfaceID, d DrawableID) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, drawCall{op: "stamp", surface: s, drawable: d})
	return nil
}

func (r *recordingRenderer) RequestRedraw() {
	r.redraws++
}

func (r *recordingRenderer) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

var errDrawFailed = errors.New("draw failed")

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
