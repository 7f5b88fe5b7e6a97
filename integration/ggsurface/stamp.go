// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// drawCostume composites d's costume onto dc, centred on d's position.
func (r *Renderer) drawCostume(dc *gg.Context, d *drawable) {
	if d.img == nil {
		return
	}
	img := scaleImage(d.img, d.scale)
	if img == nil {
		return
	}
	b := img.Bounds()
	px, py := r.toPixel(d.x, d.y)
	left := math.Round(px - float64(b.Dx())/2)
	top := math.Round(py - float64(b.Dy())/2)
	dc.DrawImage(gg.ImageBufFromImage(img), left, top)
}

// scaleImage resamples img by scale. It returns img itself at scale 1 and
// nil when the result would be empty.
func scaleImage(img image.Image, scale float64) image.Image {
	b := img.Bounds()
	w := int(math.Round(float64(b.Dx()) * scale))
	h := int(math.Round(float64(b.Dy()) * scale))
	if w <= 0 || h <= 0 {
		return nil
	}
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
