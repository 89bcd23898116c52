// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/gogpu/scratch"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a >> 8
}

func TestNewEraseSurface(t *testing.T) {
	s := NewEraseSurface(solidImage(120, 80, color.RGBA{255, 0, 0, 255}))
	if got := s.Size(); got != scratch.Sz(120, 80) {
		t.Errorf("Size() = %v, want 120x80", got)
	}
	if got := s.Coverage(); got != 0 {
		t.Errorf("Coverage() = %v on a fresh surface, want 0", got)
	}
	img := s.CurrentImage()
	if img.Bounds() != image.Rect(0, 0, 120, 80) {
		t.Errorf("CurrentImage().Bounds() = %v", img.Bounds())
	}
	if a := alphaAt(img, 60, 40); a != 255 {
		t.Errorf("alpha at center = %d before erasing, want 255", a)
	}
}

func TestEraseSurfaceCircle(t *testing.T) {
	s := NewEraseSurface(solidImage(100, 100, color.RGBA{255, 0, 0, 255}))

	// (20,20) with a bottom-left origin is image pixel (20,80).
	s.PaintFilledCircle(scratch.Pt(20, 20), 10)
	img := s.CurrentImage()

	if a := alphaAt(img, 20, 80); a != 0 {
		t.Errorf("alpha under circle = %d, want 0", a)
	}
	if a := alphaAt(img, 20, 20); a != 255 {
		t.Errorf("alpha at mirrored point = %d, want 255 (y not flipped?)", a)
	}
	if a := alphaAt(img, 80, 80); a != 255 {
		t.Errorf("alpha far from circle = %d, want 255", a)
	}
	if got := s.Coverage(); got <= 0 || got >= 0.1 {
		t.Errorf("Coverage() = %v, want a small positive fraction", got)
	}
}

func TestEraseSurfaceSegment(t *testing.T) {
	s := NewEraseSurface(solidImage(100, 100, color.RGBA{0, 0, 255, 255}))
	seg := scratch.SmoothSegment(
		scratch.Pt(10, 50), scratch.Pt(10, 50), scratch.Pt(90, 50), scratch.Pt(90, 50),
		scratch.DefaultTension,
	)
	s.PaintStrokeSegment(seg, 20, scratch.LineCapRound)
	img := s.CurrentImage()

	for _, x := range []int{15, 50, 85} {
		if a := alphaAt(img, x, 50); a != 0 {
			t.Errorf("alpha on stroke at x=%d = %d, want 0", x, a)
		}
	}
	if a := alphaAt(img, 50, 10); a != 255 {
		t.Errorf("alpha off stroke = %d, want 255", a)
	}
}

func TestEraseSurfaceIgnoresDegenerate(t *testing.T) {
	s := NewEraseSurface(solidImage(50, 50, color.White))
	s.PaintFilledCircle(scratch.Pt(25, 25), 0)
	s.PaintStrokeSegment(scratch.Segment{End: scratch.Pt(50, 50)}, 0, scratch.LineCapRound)
	if got := s.Coverage(); got != 0 {
		t.Errorf("Coverage() = %v after degenerate intents, want 0", got)
	}
}

func TestEraseSurfaceCopiesTop(t *testing.T) {
	top := solidImage(10, 10, color.RGBA{0, 255, 0, 255})
	s := NewEraseSurface(top)
	top.Set(5, 5, color.Transparent)
	if a := alphaAt(s.CurrentImage(), 5, 5); a != 255 {
		t.Errorf("surface followed a change to the source image")
	}
}

func TestEraseSurfaceWithController(t *testing.T) {
	s := NewEraseSurface(solidImage(100, 100, color.Black))
	c := scratch.New()
	c.BeginInteraction(s.Size(), 10, s)

	view := scratch.Sz(50, 50)
	c.ProcessPointerEvent(scratch.Event{Pointer: 1, Phase: scratch.PhaseBegan, Location: scratch.Pt(5, 25), ViewSize: view})
	for x := 10.0; x <= 45; x += 5 {
		c.ProcessPointerEvent(scratch.Event{Pointer: 1, Phase: scratch.PhaseMoved, Location: scratch.Pt(x, 25), ViewSize: view})
	}
	c.ProcessPointerEvent(scratch.Event{Pointer: 1, Phase: scratch.PhaseEnded, Location: scratch.Pt(45, 25), ViewSize: view})

	img := s.CurrentImage()
	if a := alphaAt(img, 50, 50); a != 0 {
		t.Errorf("alpha in the middle of the stroke = %d, want 0", a)
	}
	if a := alphaAt(img, 50, 5); a != 255 {
		t.Errorf("alpha above the stroke = %d, want 255", a)
	}
	if c.PercentRevealed() < 20 {
		t.Errorf("PercentRevealed() = %v, want a full row of tiles", c.PercentRevealed())
	}
}
