// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/scratch"
)

// EraseSurface is a CPU surface that erases a copy of a top-layer image.
//
// Erase intents are rasterized with analytic anti-aliasing into a gg
// context used as an alpha mask: opaque where the brush has passed,
// transparent elsewhere. CurrentImage composites the inverse of that mask
// over the top layer, so scratched areas become transparent and whatever
// the host draws underneath shows through.
//
// EraseSurface is NOT thread-safe.
type EraseSurface struct {
	width  int
	height int
	top    *image.RGBA
	mask   *gg.Context
}

// NewEraseSurface creates a surface over a copy of top. Later changes to
// top do not affect the surface.
func NewEraseSurface(top image.Image) *EraseSurface {
	b := top.Bounds()
	width := max(b.Dx(), 1)
	height := max(b.Dy(), 1)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), top, b.Min, draw.Src)

	mask := gg.NewContext(width, height)
	// Intents use a bottom-left origin.
	mask.InvertY()
	mask.SetRGBA(0, 0, 0, 1)
	mask.SetLineJoin(gg.LineJoinRound)

	return &EraseSurface{
		width:  width,
		height: height,
		top:    img,
		mask:   mask,
	}
}

// Size returns the image size in pixels.
func (s *EraseSurface) Size() scratch.Size {
	return scratch.Sz(float64(s.width), float64(s.height))
}

// PaintFilledCircle erases a disc.
func (s *EraseSurface) PaintFilledCircle(center scratch.Point, radius float64) {
	if radius <= 0 {
		return
	}
	s.mask.DrawCircle(center.X, center.Y, radius)
	if err := s.mask.Fill(); err != nil {
		scratch.Logger().Warn("surface: circle fill failed", "err", err)
	}
}

// PaintStrokeSegment erases along a cubic curve.
func (s *EraseSurface) PaintStrokeSegment(seg scratch.Segment, lineWidth float64, lineCap scratch.LineCap) {
	if lineWidth <= 0 {
		return
	}
	s.mask.SetLineWidth(lineWidth)
	s.mask.SetLineCap(toLineCap(lineCap))
	s.mask.MoveTo(seg.Start.X, seg.Start.Y)
	s.mask.CubicTo(
		seg.Control1.X, seg.Control1.Y,
		seg.Control2.X, seg.Control2.Y,
		seg.End.X, seg.End.Y,
	)
	if err := s.mask.Stroke(); err != nil {
		scratch.Logger().Warn("surface: segment stroke failed", "err", err)
	}
}

// CurrentImage returns the top layer with every erasure applied.
// The returned image is a copy.
func (s *EraseSurface) CurrentImage() image.Image {
	keep := s.keepMask()
	out := image.NewRGBA(s.top.Bounds())
	draw.DrawMask(out, out.Bounds(), s.top, image.Point{}, keep, image.Point{}, draw.Over)
	return out
}

// Coverage returns the erased fraction of the image in [0, 1], measured
// on pixels rather than on tiles.
func (s *EraseSurface) Coverage() float64 {
	m := gg.NewMaskFromAlpha(s.mask.Image())
	var sum uint64
	for _, a := range m.Data() {
		sum += uint64(a)
	}
	return float64(sum) / (255 * float64(s.width*s.height))
}

// keepMask returns the inverse of the erase mask: 255 where the top layer
// is untouched, 0 where it has been fully scratched away.
func (s *EraseSurface) keepMask() *image.Alpha {
	m := gg.NewMaskFromAlpha(s.mask.Image())
	m.Invert()
	return &image.Alpha{
		Pix:    m.Data(),
		Stride: m.Width(),
		Rect:   m.Bounds(),
	}
}

func toLineCap(c scratch.LineCap) gg.LineCap {
	switch c {
	case scratch.LineCapRound:
		return gg.LineCapRound
	case scratch.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

var _ scratch.Surface = (*EraseSurface)(nil)
