// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sort"

	"github.com/gogpu/gg"

	"github.com/gogpu/pen"
)

// Common errors returned by Renderer operations.
var (
	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggsurface: invalid dimensions")

	// ErrUnknownSurface is returned for surface ids the renderer never issued.
	ErrUnknownSurface = errors.New("ggsurface: unknown surface")

	// ErrUnknownDrawable is returned for drawable ids the renderer never
	// issued or has destroyed.
	ErrUnknownDrawable = errors.New("ggsurface: unknown drawable")
)

// LayerOrder lists the known layers back to front.
var LayerOrder = []string{"background", "video", pen.DefaultPenLayer, "sprite"}

// Option configures a Renderer during creation.
type Option func(*Renderer)

// WithBackground sets the color Snapshot composites onto. Default is white.
func WithBackground(c gg.RGBA) Option {
	return func(r *Renderer) {
		r.background = c
	}
}

// WithRedrawHook sets a function called on every RequestRedraw.
func WithRedrawHook(fn func()) Option {
	return func(r *Renderer) {
		r.onRedraw = fn
	}
}

// drawable is one compositable item.
type drawable struct {
	id    pen.DrawableID
	layer string
	x, y  float64 // stage coordinates of the centre
	scale float64
	img   image.Image

	skin    pen.SurfaceID
	hasSkin bool
}

// Renderer draws pen trails on gg contexts and composites drawables.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	width  int
	height int

	background gg.RGBA
	onRedraw   func()
	redraws    int

	surfaces     map[pen.SurfaceID]*gg.Context
	drawables    map[pen.DrawableID]*drawable
	nextSurface  pen.SurfaceID
	nextDrawable pen.DrawableID
}

var _ pen.Renderer = (*Renderer)(nil)

// New creates a Renderer for a stage of the given pixel size.
func New(width, height int, opts ...Option) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	r := &Renderer{
		width:      width,
		height:     height,
		background: gg.White,
		surfaces:   make(map[pen.SurfaceID]*gg.Context),
		drawables:  make(map[pen.DrawableID]*drawable),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Width returns the stage width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the stage height in pixels.
func (r *Renderer) Height() int { return r.height }

// CreateSurface allocates a transparent surface the size of the stage.
func (r *Renderer) CreateSurface() pen.SurfaceID {
	id := r.nextSurface
	r.nextSurface++
	r.surfaces[id] = gg.NewContext(r.width, r.height)
	pen.Logger().Debug("ggsurface: surface created", "surface", id, "width", r.width, "height", r.height)
	return id
}

// CreateDrawable allocates a drawable on layer at the stage origin.
func (r *Renderer) CreateDrawable(layer string) pen.DrawableID {
	id := r.nextDrawable
	r.nextDrawable++
	r.drawables[id] = &drawable{id: id, layer: layer, scale: 1}
	return id
}

// DestroyDrawable releases a drawable. Unknown ids are ignored.
func (r *Renderer) DestroyDrawable(id pen.DrawableID) {
	delete(r.drawables, id)
}

// BindSkin makes drawable display surface instead of a costume.
func (r *Renderer) BindSkin(id pen.DrawableID, surface pen.SurfaceID) {
	d, ok := r.drawables[id]
	if !ok {
		pen.Logger().Warn("ggsurface: bind skin on unknown drawable", "drawable", id)
		return
	}
	if _, ok := r.surfaces[surface]; !ok {
		pen.Logger().Warn("ggsurface: bind unknown surface", "surface", surface)
		return
	}
	d.skin = surface
	d.hasSkin = true
}

// UpdateDrawable moves and scales a drawable. Unknown ids are ignored.
func (r *Renderer) UpdateDrawable(id pen.DrawableID, x, y, scale float64) {
	d, ok := r.drawables[id]
	if !ok {
		return
	}
	d.x, d.y, d.scale = x, y, scale
}

// SetDrawableImage sets a drawable's costume. Unknown ids are ignored.
func (r *Renderer) SetDrawableImage(id pen.DrawableID, img image.Image) {
	d, ok := r.drawables[id]
	if !ok {
		return
	}
	d.img = img
}

// ClearSurface erases a surface to transparent.
func (r *Renderer) ClearSurface(id pen.SurfaceID) error {
	dc, err := r.surface(id)
	if err != nil {
		return err
	}
	dc.Clear()
	return nil
}

// DrawPoint fills a dot of attrs.Diameter centred at stage point (x, y).
func (r *Renderer) DrawPoint(id pen.SurfaceID, attrs pen.Attributes, x, y float64) error {
	dc, err := r.surface(id)
	if err != nil {
		return err
	}
	px, py := r.toPixel(x, y)
	c := attrs.Color
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.DrawPoint(px, py, attrs.Diameter/2)
	return dc.Fill()
}

// DrawLine strokes a round-capped segment attrs.Diameter wide.
func (r *Renderer) DrawLine(id pen.SurfaceID, attrs pen.Attributes, x0, y0, x1, y1 float64) error {
	dc, err := r.surface(id)
	if err != nil {
		return err
	}
	px0, py0 := r.toPixel(x0, y0)
	px1, py1 := r.toPixel(x1, y1)
	c := attrs.Color
	dc.SetRGBA(c.R, c.G, c.B, c.A)
	dc.SetLineWidth(attrs.Diameter)
	dc.SetLineCap(gg.LineCapRound)
	dc.DrawLine(px0, py0, px1, py1)
	return dc.Stroke()
}

// StampDrawableOnto composites a drawable's costume onto a surface at the
// drawable's position and scale. Drawables without a costume stamp nothing.
func (r *Renderer) StampDrawableOnto(id pen.SurfaceID, drawableID pen.DrawableID) error {
	dc, err := r.surface(id)
	if err != nil {
		return err
	}
	d, ok := r.drawables[drawableID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownDrawable, drawableID)
	}
	r.drawCostume(dc, d)
	return nil
}

// RequestRedraw records that a surface changed.
func (r *Renderer) RequestRedraw() {
	r.redraws++
	if r.onRedraw != nil {
		r.onRedraw()
	}
}

// Redraws returns how many redraws have been requested.
func (r *Renderer) Redraws() int { return r.redraws }

// SurfaceImage returns a copy of a surface's pixels.
func (r *Renderer) SurfaceImage(id pen.SurfaceID) (image.Image, error) {
	dc, err := r.surface(id)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// Snapshot composites the background and every drawable.
func (r *Renderer) Snapshot() image.Image {
	dc := r.compose()
	defer dc.Close()
	return dc.Image()
}

// SavePNG composites the stage and writes it to path.
func (r *Renderer) SavePNG(path string) error {
	dc := r.compose()
	defer dc.Close()
	return dc.SavePNG(path)
}

// EncodePNG composites the stage and writes it to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	dc := r.compose()
	defer dc.Close()
	return dc.EncodePNG(w)
}

// Close releases every surface. The Renderer must not be used afterwards.
func (r *Renderer) Close() error {
	var errs []error
	for id, dc := range r.surfaces {
		if err := dc.Close(); err != nil {
			errs = append(errs, fmt.Errorf("surface %d: %w", id, err))
		}
	}
	clear(r.surfaces)
	clear(r.drawables)
	return errors.Join(errs...)
}

func (r *Renderer) surface(id pen.SurfaceID) (*gg.Context, error) {
	dc, ok := r.surfaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSurface, id)
	}
	return dc, nil
}

// toPixel converts stage coordinates to pixel coordinates.
func (r *Renderer) toPixel(x, y float64) (float64, float64) {
	return x + float64(r.width)/2, float64(r.height)/2 - y
}

func (r *Renderer) compose() *gg.Context {
	dc := gg.NewContext(r.width, r.height)
	dc.ClearWithColor(r.background)
	for _, d := range r.ordered() {
		if d.hasSkin {
			if skin, ok := r.surfaces[d.skin]; ok {
				dc.DrawImage(gg.ImageBufFromImage(skin.Image()), 0, 0)
			}
			continue
		}
		r.drawCostume(dc, d)
	}
	return dc
}

// ordered returns drawables back to front.
func (r *Renderer) ordered() []*drawable {
	rank := make(map[string]int, len(LayerOrder))
	for i, layer := range LayerOrder {
		rank[layer] = i
	}
	layerRank := func(layer string) int {
		if i, ok := rank[layer]; ok {
			return i
		}
		return len(LayerOrder)
	}

	out := make([]*drawable, 0, len(r.drawables))
	for _, d := range r.drawables {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := layerRank(out[i].layer), layerRank(out[j].layer)
		if ri != rj {
			return ri < rj
		}
		return out[i].id < out[j].id
	})
	return out
}
