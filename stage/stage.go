// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package stage is a small in-memory block runtime host: sprites with
// positions, drawables, clones and move notifications.
//
// It is the runtime side pen expects, complete enough to drive pen from
// tests and demos without a full block interpreter.
//
// # Moves
//
// SetXY and ChangeXY are organic moves; Drag is a forced move. Both notify
// the sprite's move listeners with the old and new position.
//
// # Thread Safety
//
// Stage is NOT safe for concurrent use.
package stage

import (
	"image"
	"sort"

	"github.com/gogpu/pen"
)

// SpriteLayer is the renderer layer sprite drawables are created on.
const SpriteLayer = "sprite"

// DrawableHost is the part of a renderer that shows sprites.
type DrawableHost interface {
	CreateDrawable(layer string) pen.DrawableID
	UpdateDrawable(id pen.DrawableID, x, y, scale float64)
	SetDrawableImage(id pen.DrawableID, img image.Image)
	DestroyDrawable(id pen.DrawableID)
}

// Option configures a Stage during creation.
type Option func(*Stage)

// WithDrawables gives every sprite a drawable on h.
func WithDrawables(h DrawableHost) Option {
	return func(s *Stage) {
		s.drawables = h
	}
}

// Stage owns sprites and routes their move events.
type Stage struct {
	nextID     pen.ActorID
	sprites    map[pen.ActorID]*Sprite
	dispatcher *Dispatcher
	drawables  DrawableHost

	created []func(clone, source pen.Actor)
	removed []func(pen.Actor)
}

// New creates an empty stage.
func New(opts ...Option) *Stage {
	s := &Stage{
		nextID:     1,
		sprites:    make(map[pen.ActorID]*Sprite),
		dispatcher: NewDispatcher(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnCreated registers fn to run whenever a sprite is created. source is
// the sprite it was cloned from, or nil.
func (s *Stage) OnCreated(fn func(clone, source pen.Actor)) {
	s.created = append(s.created, fn)
}

// OnRemoved registers fn to run whenever a sprite is removed.
func (s *Stage) OnRemoved(fn func(pen.Actor)) {
	s.removed = append(s.removed, fn)
}

// Dispatcher returns the stage's move dispatcher.
func (s *Stage) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// NewSprite creates a sprite at the origin with 100% size.
func (s *Stage) NewSprite(name string) *Sprite {
	sp := s.add(name)
	for _, fn := range s.created {
		fn(sp, nil)
	}
	return sp
}

// Clone creates a copy of src at the same position, with the same costume
// and size. Created hooks see src as the source.
func (s *Stage) Clone(src *Sprite) *Sprite {
	sp := s.add(src.name)
	sp.x, sp.y = src.x, src.y
	sp.size = src.size
	sp.costume = src.costume
	sp.clone = true
	sp.syncDrawable()
	if sp.costume != nil && s.drawables != nil {
		s.drawables.SetDrawableImage(sp.drawable, sp.costume)
	}
	pen.Logger().Debug("stage: sprite cloned", "source", src.id, "clone", sp.id)
	for _, fn := range s.created {
		fn(sp, src)
	}
	return sp
}

// Remove deletes sp from the stage. Removed hooks run before its listeners
// and drawable are released.
func (s *Stage) Remove(sp *Sprite) {
	if _, ok := s.sprites[sp.id]; !ok {
		return
	}
	for _, fn := range s.removed {
		fn(sp)
	}
	s.dispatcher.Drop(sp.id)
	if s.drawables != nil && sp.drawable != pen.NoDrawable {
		s.drawables.DestroyDrawable(sp.drawable)
	}
	delete(s.sprites, sp.id)
	sp.removed = true
	pen.Logger().Debug("stage: sprite removed", "sprite", sp.id)
}

// Sprite returns the sprite with the given id.
func (s *Stage) Sprite(id pen.ActorID) (*Sprite, bool) {
	sp, ok := s.sprites[id]
	return sp, ok
}

// Sprites returns all sprites ordered by id.
func (s *Stage) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(s.sprites))
	for _, sp := range s.sprites {
		out = append(out, sp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (s *Stage) add(name string) *Sprite {
	sp := &Sprite{
		stage:    s,
		id:       s.nextID,
		name:     name,
		size:     100,
		drawable: pen.NoDrawable,
	}
	s.nextID++
	if s.drawables != nil {
		sp.drawable = s.drawables.CreateDrawable(SpriteLayer)
		sp.syncDrawable()
	}
	s.sprites[sp.id] = sp
	return sp
}
