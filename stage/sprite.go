// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package stage

import (
	"image"

	"github.com/gogpu/pen"
)

// Sprite is a movable actor on a Stage. It implements pen.Actor.
type Sprite struct {
	stage    *Stage
	id       pen.ActorID
	name     string
	x, y     float64
	size     float64 // percent
	costume  image.Image
	drawable pen.DrawableID
	clone    bool
	removed  bool
}

var _ pen.Actor = (*Sprite)(nil)

// ID returns the sprite's stable id.
func (sp *Sprite) ID() pen.ActorID { return sp.id }

// Name returns the sprite's name. Clones share their source's name.
func (sp *Sprite) Name() string { return sp.name }

// IsClone reports whether the sprite was created by Stage.Clone.
func (sp *Sprite) IsClone() bool { return sp.clone }

// Position returns the sprite's stage position.
func (sp *Sprite) Position() (x, y float64) { return sp.x, sp.y }

// DrawableID returns the sprite's drawable, or pen.NoDrawable when the
// stage has no drawable host.
func (sp *Sprite) DrawableID() pen.DrawableID { return sp.drawable }

// Size returns the sprite's size in percent.
func (sp *Sprite) Size() float64 { return sp.size }

// AddMoveListener subscribes l to the sprite's moves.
func (sp *Sprite) AddMoveListener(l pen.MoveListener) {
	if sp.removed {
		return
	}
	sp.stage.dispatcher.Subscribe(sp.id, l)
}

// RemoveMoveListener unsubscribes l.
func (sp *Sprite) RemoveMoveListener(l pen.MoveListener) {
	sp.stage.dispatcher.Unsubscribe(sp.id, l)
}

// SetXY moves the sprite to (x, y).
func (sp *Sprite) SetXY(x, y float64) {
	sp.moveTo(x, y, false)
}

// ChangeXY moves the sprite by (dx, dy).
func (sp *Sprite) ChangeXY(dx, dy float64) {
	sp.moveTo(sp.x+dx, sp.y+dy, false)
}

// Drag repositions the sprite instantly, as a user drag does. Listeners
// see a forced move.
func (sp *Sprite) Drag(x, y float64) {
	sp.moveTo(x, y, true)
}

// SetCostume sets the image shown by the sprite's drawable.
func (sp *Sprite) SetCostume(img image.Image) {
	sp.costume = img
	if sp.stage.drawables != nil && sp.drawable != pen.NoDrawable {
		sp.stage.drawables.SetDrawableImage(sp.drawable, img)
	}
}

// SetSize sets the sprite's size in percent. Negative sizes become 0.
func (sp *Sprite) SetSize(percent float64) {
	sp.size = max(percent, 0)
	sp.syncDrawable()
}

func (sp *Sprite) moveTo(x, y float64, forced bool) {
	if sp.removed {
		return
	}
	oldX, oldY := sp.x, sp.y
	sp.x, sp.y = x, y
	sp.syncDrawable()
	sp.stage.dispatcher.Dispatch(pen.MoveEvent{
		Actor:  sp.id,
		OldX:   oldX,
		OldY:   oldY,
		NewX:   x,
		NewY:   y,
		Forced: forced,
	})
}

func (sp *Sprite) syncDrawable() {
	if sp.stage.drawables == nil || sp.drawable == pen.NoDrawable {
		return
	}
	sp.stage.drawables.UpdateDrawable(sp.drawable, sp.x, sp.y, sp.size/100)
}
