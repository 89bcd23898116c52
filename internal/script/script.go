// Package script decodes TOML stroke scripts and turns them into pointer
// events for a scratch.Controller.
//
// A script names the view the points are relative to and lists strokes:
//
//	view = [320, 480]
//	interleave = false
//
//	[[stroke]]
//	pointer = 1
//	points = [[10, 10], [40, 12], [80, 30]]
//
//	[[stroke]]
//	pointer = 2
//	points = [[300, 400], [200, 420]]
//	cancel = true
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/scratch"
)

// Script is a decoded stroke script.
type Script struct {
	// View is the [width, height] of the view the points are relative to.
	View [2]float64 `toml:"view"`

	// Interleave replays strokes step by step in round-robin order, as
	// simultaneous pointers, instead of one after the other.
	Interleave bool `toml:"interleave"`

	Strokes []Stroke `toml:"stroke"`
}

// Stroke is the path of one pointer.
type Stroke struct {
	Pointer int          `toml:"pointer"`
	Points  [][2]float64 `toml:"points"`

	// Cancel ends the stroke with a cancellation instead of a release.
	Cancel bool `toml:"cancel"`
}

// ErrNoView is returned for a script without a positive view size.
var ErrNoView = errors.New("script: view size must be positive")

// Decode reads a script from r.
func Decode(r io.Reader) (Script, error) {
	var s Script
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Script{}, fmt.Errorf("failed to decode script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Load reads a script file.
func Load(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks the view size and that every stroke has a point.
func (s Script) Validate() error {
	if s.ViewSize().Empty() {
		return ErrNoView
	}
	for i, st := range s.Strokes {
		if len(st.Points) == 0 {
			return fmt.Errorf("script: stroke %d (pointer %d) has no points", i, st.Pointer)
		}
	}
	return nil
}

// ViewSize returns the view as a scratch.Size.
func (s Script) ViewSize() scratch.Size {
	return scratch.Sz(s.View[0], s.View[1])
}

// Events returns the pointer events of one stroke: Began at the first
// point, Moved for each following point, then Ended (or Cancelled) at the
// last point.
func (st Stroke) Events(view scratch.Size) []scratch.Event {
	if len(st.Points) == 0 {
		return nil
	}
	id := scratch.PointerID(st.Pointer)
	evs := make([]scratch.Event, 0, len(st.Points)+1)
	for i, p := range st.Points {
		phase := scratch.PhaseMoved
		if i == 0 {
			phase = scratch.PhaseBegan
		}
		evs = append(evs, scratch.Event{
			Pointer:  id,
			Phase:    phase,
			Location: scratch.Pt(p[0], p[1]),
			ViewSize: view,
		})
	}
	end := scratch.PhaseEnded
	if st.Cancel {
		end = scratch.PhaseCancelled
	}
	last := st.Points[len(st.Points)-1]
	return append(evs, scratch.Event{
		Pointer:  id,
		Phase:    end,
		Location: scratch.Pt(last[0], last[1]),
		ViewSize: view,
	})
}

// Events returns the events of the whole script in replay order.
func (s Script) Events() []scratch.Event {
	view := s.ViewSize()
	per := make([][]scratch.Event, len(s.Strokes))
	total := 0
	for i, st := range s.Strokes {
		per[i] = st.Events(view)
		total += len(per[i])
	}

	out := make([]scratch.Event, 0, total)
	if !s.Interleave {
		for _, evs := range per {
			out = append(out, evs...)
		}
		return out
	}

	for step := 0; len(out) < total; step++ {
		for _, evs := range per {
			if step < len(evs) {
				out = append(out, evs[step])
			}
		}
	}
	return out
}
