package script

import (
	"image"

	"github.com/gogpu/scratch"
)

type nopSurface struct{}

func (nopSurface) PaintFilledCircle(scratch.Point, float64)                       {}
func (nopSurface) PaintStrokeSegment(scratch.Segment, float64, scratch.LineCap) {}
func (nopSurface) CurrentImage() image.Image                                    { return nil }
