// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface implements pen.Renderer on gg drawing contexts.
//
// Every pen surface is a gg.Context the size of the stage. Drawables are
// lightweight records (layer, position, scale, costume image or bound
// surface) that are composited on demand:
//
//	pen surface (gg.Context) --+
//	sprite costumes -----------+--> Snapshot / SavePNG
//
// # Coordinates
//
// pen and stage use stage coordinates: origin at the centre, y increasing
// upward. ggsurface converts them to pixel coordinates (origin top-left,
// y increasing downward) before drawing.
//
// # Layers
//
// Drawables are composited back to front in LayerOrder, and by creation
// order within a layer. Unknown layers are drawn last.
//
// # Thread Safety
//
// Renderer is NOT safe for concurrent use.
package ggsurface
