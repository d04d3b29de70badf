// SPDX-License-Identifier: EPL-2.0

// Package canvas is the drawing boundary used by the waveform renderers.
//
// A Path is built in points, independent of any pixel density. The Surface
// interface accepts a path plus a paint, which is an image.Image: Solid for a
// flat color or a Gradient for a top to bottom blend. Using the path as the
// paint mask gives clip-to-path for free.
//
// Image is the bundled raster Surface. Strokes, joins, caps and fills are
// rasterized by github.com/srwiley/rasterx; without antialiasing the
// coverage is snapped and composited with image/draw.
package canvas
