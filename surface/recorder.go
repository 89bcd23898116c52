// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/scratch"
)

// OpType identifies the kind of a recorded intent.
type OpType uint8

const (
	OpCircle  OpType = iota // Filled circle
	OpSegment               // Cubic stroke segment
)

// String returns the op name.
func (t OpType) String() string {
	switch t {
	case OpCircle:
		return "Circle"
	case OpSegment:
		return "Segment"
	default:
		return fmt.Sprintf("OpType(%d)", t)
	}
}

// Op is one recorded erase intent. Center and Radius are set for
// OpCircle; Segment, Width and Cap for OpSegment.
type Op struct {
	Type    OpType
	Center  scratch.Point
	Radius  float64
	Segment scratch.Segment
	Width   float64
	Cap     scratch.LineCap
}

// String formats the op for traces.
func (o Op) String() string {
	switch o.Type {
	case OpCircle:
		return fmt.Sprintf("circle c=(%.1f,%.1f) r=%.1f", o.Center.X, o.Center.Y, o.Radius)
	case OpSegment:
		s := o.Segment
		return fmt.Sprintf("segment (%.1f,%.1f)->(%.1f,%.1f) w=%.1f cap=%s",
			s.Start.X, s.Start.Y, s.End.X, s.End.Y, o.Width, o.Cap)
	default:
		return o.Type.String()
	}
}

// Recorder captures erase intents.
//
// If Next is set, every intent is forwarded to it after being recorded and
// CurrentImage returns Next's image. Otherwise CurrentImage returns Base
// unchanged.
type Recorder struct {
	Base image.Image
	Next scratch.Surface

	ops []Op
}

// NewRecorder creates a recorder that forwards to next, which may be nil.
func NewRecorder(next scratch.Surface) *Recorder {
	return &Recorder{Next: next}
}

// PaintFilledCircle records a circle.
func (r *Recorder) PaintFilledCircle(center scratch.Point, radius float64) {
	r.ops = append(r.ops, Op{Type: OpCircle, Center: center, Radius: radius})
	if r.Next != nil {
		r.Next.PaintFilledCircle(center, radius)
	}
}

// PaintStrokeSegment records a segment.
func (r *Recorder) PaintStrokeSegment(seg scratch.Segment, lineWidth float64, lineCap scratch.LineCap) {
	r.ops = append(r.ops, Op{Type: OpSegment, Segment: seg, Width: lineWidth, Cap: lineCap})
	if r.Next != nil {
		r.Next.PaintStrokeSegment(seg, lineWidth, lineCap)
	}
}

// CurrentImage returns the forwarded surface's image, or Base.
func (r *Recorder) CurrentImage() image.Image {
	if r.Next != nil {
		return r.Next.CurrentImage()
	}
	return r.Base
}

// Ops returns the recorded intents in order. The slice must not be modified.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Len returns the number of recorded intents.
func (r *Recorder) Len() int {
	return len(r.ops)
}

// Reset discards the recorded intents.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

var _ scratch.Surface = (*Recorder)(nil)
