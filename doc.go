// Package scratch implements a scratch-off reveal: a top-layer image is
// erased where a pointer drags across it, and the fraction of the image
// that has been cleared is tracked so a host can react to it.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/scratch"
//	    "github.com/gogpu/scratch/surface"
//	)
//
//	s := surface.NewEraseSurface(topImage)
//	c := scratch.New(scratch.WithObserver(scratch.ObserverFunc(func(pct float64) {
//	    if pct > 60 {
//	        dismiss()
//	    }
//	})))
//	c.BeginInteraction(s.Size(), 20, s)
//
//	// From the host's pointer callbacks:
//	c.ProcessPointerEvent(scratch.Event{
//	    Pointer:  1,
//	    Phase:    scratch.PhaseMoved,
//	    Location: scratch.Pt(x, y),
//	    ViewSize: scratch.Sz(viewW, viewH),
//	})
//
// # Coordinate System
//
// Pointer locations arrive in view space: origin at top-left, Y down.
// The controller flips and rescales them into image pixel space, whose
// origin is bottom-left with Y up. Surfaces receive pixel-space
// coordinates only.
//
// # Occupancy
//
// Progress is tracked on a coarse grid of tiles roughly one brush dab
// wide (tile side = 2 * radius). The cleared percentage is the share of
// tiles that any stroke has touched; it never decreases within a session.
//
// # Threading
//
// A Controller is not safe for concurrent use. Each pointer event is
// processed to completion before the next one is accepted.
package scratch
