package pen

import (
	"slices"
	"strings"
	"testing"
)

func newTestPen() (*Pen, *recordingRenderer) {
	r := newRecordingRenderer()
	return New(WithRenderer(r)), r
}

func TestTrailScenario(t *testing.T) {
	p, r := newTestPen()
	a := newFakeActor(1, 0, 0)

	p.TrailDown(a)
	if got := r.ops(); !slices.Equal(got, []string{"point"}) {
		t.Fatalf("after TrailDown ops = %v, want [point]", got)
	}
	if c := r.calls[0]; c.x0 != 0 || c.y0 != 0 {
		t.Errorf("point at (%v, %v), want (0, 0)", c.x0, c.y0)
	}

	a.moveTo(10, 0, false)
	if got := r.ops(); !slices.Equal(got, []string{"point", "line"}) {
		t.Fatalf("after move ops = %v, want [point line]", got)
	}
	line := r.calls[1]
	if line.x0 != 0 || line.y0 != 0 || line.x1 != 10 || line.y1 != 0 {
		t.Errorf("line = (%v,%v)-(%v,%v), want (0,0)-(10,0)", line.x0, line.y0, line.x1, line.y1)
	}

	a.moveTo(20, 5, true)
	if len(r.calls) != 2 {
		t.Errorf("forced move drew: ops = %v", r.ops())
	}

	p.TrailUp(a)
	a.moveTo(30, 5, false)
	if len(r.calls) != 2 {
		t.Errorf("move after TrailUp drew: ops = %v", r.ops())
	}
	if r.redraws != 2 {
		t.Errorf("redraws = %d, want 2", r.redraws)
	}
}

func TestTrailDownIdempotent(t *testing.T) {
	p, r := newTestPen()
	a := newFakeActor(1, 0, 0)

	p.TrailDown(a)
	p.TrailDown(a)
	if a.adds != 1 {
		t.Errorf("AddMoveListener called %d times, want 1", a.adds)
	}
	if got := r.ops(); !slices.Equal(got, []string{"point", "point"}) {
		t.Errorf("ops = %v, want a point per TrailDown", got)
	}

	a.moveTo(5, 5, false)
	if n := strings.Count(strings.Join(r.ops(), " "), "line"); n != 1 {
		t.Errorf("one move drew %d lines, want 1", n)
	}

	p.TrailUp(a)
	p.TrailUp(a)
	if a.removes != 1 {
		t.Errorf("RemoveMoveListener called %d times, want 1", a.removes)
	}
	if len(a.listeners) != 0 {
		t.Errorf("listeners left after TrailUp: %d", len(a.listeners))
	}
}

func TestTrailUpWithoutDown(t *testing.T) {
	p, _ := newTestPen()
	a := newFakeActor(1, 0, 0)
	p.TrailUp(a)
	if a.removes != 0 {
		t.Errorf("RemoveMoveListener called %d times, want 0", a.removes)
	}
	if p.State(a).TrailEnabled {
		t.Error("TrailEnabled = true after TrailUp")
	}
}

func TestLineUsesCurrentAttributes(t *testing.T) {
	p, r := newTestPen()
	a := newFakeActor(1, 0, 0)

	p.TrailDown(a)
	p.SetSize(a, 12)
	p.SetColorFromRGBA(a, RGB(255, 0, 0))
	a.moveTo(0, 10, false)

	line := r.calls[len(r.calls)-1]
	if line.op != "line" {
		t.Fatalf("last op = %q, want line", line.op)
	}
	if line.attrs != p.State(a).Attributes {
		t.Errorf("line attrs = %+v, want %+v", line.attrs, p.State(a).Attributes)
	}
	if line.attrs.Diameter != 12 {
		t.Errorf("line diameter = %v, want 12", line.attrs.Diameter)
	}
}

func TestNoRendererIsNoOp(t *testing.T) {
	p := New()
	a := newFakeActor(1, 0, 0)

	p.ClearAll()
	p.Stamp(a)
	p.TrailDown(a)
	a.moveTo(10, 10, false)

	if !p.State(a).TrailEnabled {
		t.Error("TrailDown without renderer should still enable the trail")
	}
	if a.adds != 1 {
		t.Errorf("AddMoveListener called %d times, want 1", a.adds)
	}

	r := newRecordingRenderer()
	p.AttachRenderer(r)
	a.moveTo(20, 10, false)
	if got := r.ops(); !slices.Equal(got, []string{"line"}) {
		t.Errorf("ops after attach = %v, want [line]", got)
	}
}

func TestSurfaceCreatedOnce(t *testing.T) {
	p, r := newTestPen()
	a := newFakeActor(1, 0, 0)

	p.ClearAll()
	p.Stamp(a)
	p.TrailDown(a)

	if r.surfaces != 1 {
		t.Errorf("CreateSurface called %d times, want 1", r.surfaces)
	}
	if !slices.Equal(r.drawables, []string{DefaultPenLayer}) {
		t.Errorf("drawable layers = %v, want [%s]", r.drawables, DefaultPenLayer)
	}
	surface, drawable, ok := p.Surface()
	if !ok {
		t.Fatal("Surface() ok = false")
	}
	if r.bound[drawable] != surface {
		t.Errorf("drawable %d bound to %d, want %d", drawable, r.bound[drawable], surface)
	}
	for _, c := range r.calls {
		if c.surface != surface {
			t.Errorf("%s on surface %d, want %d", c.op, c.surface, surface)
		}
	}
}

func TestAttachRendererResetsSurface(t *testing.T) {
	p, first := newTestPen()
	p.Surface()

	p.AttachRenderer(first)
	p.Surface()
	if first.surfaces != 1 {
		t.Errorf("reattaching the same renderer recreated the surface")
	}

	second := newRecordingRenderer()
	p.AttachRenderer(second)
	p.ClearAll()
	if second.surfaces != 1 {
		t.Errorf("new renderer surfaces = %d, want 1", second.surfaces)
	}

	p.AttachRenderer(nil)
	if _, d, ok := p.Surface(); ok || d != NoDrawable {
		t.Errorf("Surface() after detach = (%d, %v), want (NoDrawable, false)", d, ok)
	}
}

// sliceRenderer has a slice field, so its values cannot be compared with ==.
type sliceRenderer struct {
	*recordingRenderer
	layers []string
}

func TestAttachRendererNotComparable(t *testing.T) {
	rec := newRecordingRenderer()
	r := sliceRenderer{recordingRenderer: rec, layers: []string{"pen"}}
	p := New()

	p.AttachRenderer(r)
	p.Surface()
	p.AttachRenderer(r)
	if _, _, ok := p.Surface(); !ok {
		t.Fatal("Surface() not available after reattach")
	}
	if rec.surfaces != 2 {
		t.Errorf("surfaces = %d, want 2", rec.surfaces)
	}

	p.AttachRenderer(rec)
	p.AttachRenderer(rec)
	p.Surface()
	if rec.surfaces != 3 {
		t.Errorf("surfaces = %d, want 3 after switching to the pointer", rec.surfaces)
	}
}

func TestClearAll(t *testing.T) {
	p, r := newTestPen()
	p.ClearAll()
	if got := r.ops(); !slices.Equal(got, []string{"clear"}) {
		t.Errorf("ops = %v, want [clear]", got)
	}
	if r.redraws != 1 {
		t.Errorf("redraws = %d, want 1", r.redraws)
	}
}

func TestStamp(t *testing.T) {
	p, r := newTestPen()
	a := newFakeActor(3, 0, 0)

	p.Stamp(a)
	if len(r.calls) != 1 || r.calls[0].op != "stamp" || r.calls[0].drawable != a.drawable {
		t.Fatalf("calls = %+v, want one stamp of drawable %d", r.calls, a.drawable)
	}

	a.drawable = NoDrawable
	p.Stamp(a)
	if len(r.calls) != 1 {
		t.Errorf("stamp of actor without drawable reached renderer: %v", r.ops())
	}
	if r.redraws != 1 {
		t.Errorf("redraws = %d, want 1", r.redraws)
	}
}

func TestDrawErrorsAreLogged(t *testing.T) {
	buf := captureLogs(t)
	p, r := newTestPen()
	r.err = errDrawFailed
	a := newFakeActor(1, 0, 0)

	p.ClearAll()
	p.Stamp(a)
	p.TrailDown(a)
	a.moveTo(1, 1, false)

	if r.redraws != 0 {
		t.Errorf("redraws = %d after failed draws, want 0", r.redraws)
	}
	out := buf.String()
	for _, msg := range []string{"clear failed", "stamp failed", "point failed", "line failed"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log missing %q:\n%s", msg, out)
		}
	}
	if !strings.Contains(out, errDrawFailed.Error()) {
		t.Errorf("log missing the renderer error:\n%s", out)
	}
}

func TestUnknownParamIsLogged(t *testing.T) {
	buf := captureLogs(t)
	p := New()
	a := newFakeActor(1, 0, 0)
	want := *p.State(a)

	p.SetParam(a, "hue", 50)
	p.ChangeParam(a, "fisheye", 50)

	if got := *p.State(a); got != want {
		t.Errorf("state changed by unknown params: %+v", got)
	}
	out := buf.String()
	if !strings.Contains(out, "hue") || !strings.Contains(out, "fisheye") {
		t.Errorf("log does not name the unknown params:\n%s", out)
	}
}

func TestCloneInheritsTrail(t *testing.T) {
	p, r := newTestPen()
	src := newFakeActor(1, 0, 0)
	p.SetSize(src, 7)
	p.TrailDown(src)

	clone := newFakeActor(2, 0, 0)
	p.OnActorCreated(clone, src)

	if clone.adds != 1 {
		t.Fatalf("clone AddMoveListener called %d times, want 1", clone.adds)
	}
	cs := p.State(clone)
	if !cs.TrailEnabled || cs.Attributes.Diameter != 7 {
		t.Errorf("clone state = %+v, want trailing with diameter 7", *cs)
	}

	before := len(r.calls)
	clone.moveTo(0, 20, false)
	if len(r.calls) != before+1 || r.calls[before].op != "line" {
		t.Errorf("clone move ops = %v, want one more line", r.ops())
	}

	p.SetSize(clone, 40)
	if p.State(src).Attributes.Diameter != 7 {
		t.Error("changing the clone changed the source")
	}
	p.SetSize(src, 2)
	if p.State(clone).Attributes.Diameter != 40 {
		t.Error("changing the source changed the clone")
	}

	p.SetParam(clone, ParamColor, 30)
	if p.State(src).Color != DefaultState().Color {
		t.Errorf("source color = %v after recoloring the clone", p.State(src).Color)
	}
	p.SetParam(src, ParamColor, 80)
	if p.State(clone).Color != 30 {
		t.Errorf("clone color = %v, want 30", p.State(clone).Color)
	}
}

func TestCloneOfIdleActor(t *testing.T) {
	p, _ := newTestPen()
	src := newFakeActor(1, 0, 0)
	p.SetHue(src, 40)

	clone := newFakeActor(2, 0, 0)
	p.OnActorCreated(clone, src)
	if clone.adds != 0 {
		t.Errorf("clone of idle actor subscribed %d times", clone.adds)
	}
	if got, want := *p.State(clone), *p.State(src); got != want {
		t.Errorf("clone state = %+v, want %+v", got, want)
	}
}

func TestCreatedWithoutSource(t *testing.T) {
	p, _ := newTestPen()
	a := newFakeActor(1, 0, 0)
	p.OnActorCreated(a, nil)
	if p.Store().Len() != 0 {
		t.Errorf("store len = %d, want 0", p.Store().Len())
	}

	// A clone of an actor pen never touched has no record either.
	p.OnActorCreated(newFakeActor(2, 0, 0), newFakeActor(3, 0, 0))
	if p.Store().Len() != 0 {
		t.Errorf("store len = %d, want 0", p.Store().Len())
	}
}

func TestOnActorRemoved(t *testing.T) {
	p, r := newTestPen()
	a := newFakeActor(1, 0, 0)
	p.TrailDown(a)

	p.OnActorRemoved(a)
	if _, ok := p.Store().Get(a.ID()); ok {
		t.Error("record still present after removal")
	}
	if len(a.listeners) != 0 {
		t.Errorf("listeners left after removal: %d", len(a.listeners))
	}

	before := len(r.calls)
	a.moveTo(10, 10, false)
	if len(r.calls) != before {
		t.Errorf("removed actor still draws: %v", r.ops())
	}

	p.OnActorRemoved(newFakeActor(9, 0, 0))
}

func TestTrailerSurvivesOtherActors(t *testing.T) {
	p, r := newTestPen()
	a := newFakeActor(1, 0, 0)
	b := newFakeActor(2, 0, 0)
	p.TrailDown(a)
	p.SetSize(b, 50)

	b.moveTo(5, 5, false)
	a.moveTo(5, 5, false)
	lines := 0
	for _, c := range r.calls {
		if c.op == "line" {
			lines++
			if c.attrs.Diameter != 1 {
				t.Errorf("line diameter = %v, want the trailing actor's 1", c.attrs.Diameter)
			}
		}
	}
	if lines != 1 {
		t.Errorf("lines = %d, want 1", lines)
	}
}
