package scratch

import "fmt"

// PointerID identifies one pointer (finger, stylus, mouse button) for the
// duration of its stroke.
type PointerID int

// Phase is the stage of a pointer's stroke an Event reports.
type Phase int

const (
	// PhaseBegan starts a stroke.
	PhaseBegan Phase = iota
	// PhaseMoved extends a stroke.
	PhaseMoved
	// PhaseEnded finishes a stroke.
	PhaseEnded
	// PhaseCancelled abandons a stroke. What was already erased stays erased.
	PhaseCancelled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseMoved:
		return "moved"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Event is one pointer sample as delivered by the host.
type Event struct {
	Pointer PointerID
	Phase   Phase

	// Location is the pointer position in view space (origin top-left).
	Location Point

	// Coalesced holds intermediate samples the platform batched into this
	// event, oldest first, in view space. They are smoothed before
	// Location. Only used for PhaseMoved.
	Coalesced []Point

	// ViewSize is the size of the view the locations are relative to.
	ViewSize Size
}

// stroke is the per-pointer state of a stroke in progress.
type stroke struct {
	hist history
	// prev is the previous mapped location of the pointer.
	prev Point
}

// session is one interaction over one image.
type session struct {
	imageSize Size
	radius    float64
	grid      *Grid
	surface   Surface
	strokes   map[PointerID]*stroke
}

// Controller turns pointer events into erase intents on a Surface and
// tracks the cleared percentage on an occupancy grid.
//
// A Controller holds at most one session at a time. Events that arrive
// without a session, or with an empty view size, are ignored: the
// controller never fails on a stray sample.
//
// Controller is not safe for concurrent use.
type Controller struct {
	observer      Observer
	tension       float64
	defaultRadius float64

	sess *session
}

// New creates a Controller without an active session.
func New(opts ...Option) *Controller {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Controller{
		observer:      options.observer,
		tension:       options.tension,
		defaultRadius: options.defaultRadius,
	}
}

// SetObserver replaces the observer. Nil disables notifications.
func (c *Controller) SetObserver(o Observer) {
	c.observer = o
}

// BeginInteraction starts a session over an image of imageSize pixels,
// erasing with a brush of the given radius onto s. Any previous session,
// with its grid and strokes in progress, is discarded.
//
// A radius <= 0 selects the default radius. A nil surface or an empty
// image size leaves the controller without a session.
func (c *Controller) BeginInteraction(imageSize Size, radius float64, s Surface) {
	if radius <= 0 {
		radius = c.defaultRadius
	}
	if s == nil || imageSize.Empty() {
		c.sess = nil
		Logger().Debug("scratch: interaction not started",
			"width", imageSize.Width, "height", imageSize.Height, "surface", s != nil)
		return
	}

	size := GridSizeFor(imageSize, radius)
	c.sess = &session{
		imageSize: imageSize,
		radius:    radius,
		grid:      NewGrid(size),
		surface:   s,
		strokes:   make(map[PointerID]*stroke),
	}
	Logger().Debug("scratch: interaction started",
		"width", imageSize.Width, "height", imageSize.Height,
		"radius", radius, "tilesX", size.TilesX, "tilesY", size.TilesY)
}

// EndInteraction drops the current session. Later events are ignored
// until BeginInteraction is called again.
func (c *Controller) EndInteraction() {
	c.sess = nil
}

// Active reports whether a session is in progress.
func (c *Controller) Active() bool {
	return c.sess != nil
}

// Radius returns the brush radius of the session, or 0 without one.
func (c *Controller) Radius() float64 {
	if c.sess == nil {
		return 0
	}
	return c.sess.radius
}

// GridSize returns the tile layout of the session.
func (c *Controller) GridSize() GridSize {
	if c.sess == nil {
		return GridSize{}
	}
	return c.sess.grid.Size()
}

// Grid returns the occupancy grid of the session, or nil without one.
// Callers must not reveal tiles on it directly.
func (c *Controller) Grid() *Grid {
	if c.sess == nil {
		return nil
	}
	return c.sess.grid
}

// PercentRevealed returns the cleared percentage of the session.
func (c *Controller) PercentRevealed() float64 {
	if c.sess == nil {
		return 0
	}
	return c.sess.grid.PercentRevealed()
}

// ActiveStrokes returns the number of pointers currently stroking.
func (c *Controller) ActiveStrokes() int {
	if c.sess == nil {
		return 0
	}
	return len(c.sess.strokes)
}

// ProcessPointerEvent handles one pointer event and notifies the observer
// if it revealed new tiles.
func (c *Controller) ProcessPointerEvent(ev Event) {
	c.ProcessPointerEvents(ev)
}

// ProcessPointerEvents handles events delivered together, such as the
// touches of one multi-touch callback, in order. The observer is notified
// at most once, after the whole batch.
func (c *Controller) ProcessPointerEvents(evs ...Event) {
	s := c.sess
	if s == nil {
		Logger().Debug("scratch: events ignored without session", "count", len(evs))
		return
	}

	before := s.grid.Filled()
	for _, ev := range evs {
		c.apply(s, ev)
	}

	if s.grid.Filled() != before && c.observer != nil {
		c.observer.ClearedPercentChanged(s.grid.PercentRevealed())
	}
}

func (c *Controller) apply(s *session, ev Event) {
	if ev.ViewSize.Empty() {
		Logger().Debug("scratch: event ignored with empty view",
			"pointer", ev.Pointer, "phase", ev.Phase)
		return
	}

	switch ev.Phase {
	case PhaseBegan:
		c.begin(s, ev)
	case PhaseMoved:
		c.move(s, ev)
	case PhaseEnded, PhaseCancelled:
		delete(s.strokes, ev.Pointer)
	default:
		Logger().Debug("scratch: event ignored with unknown phase",
			"pointer", ev.Pointer, "phase", ev.Phase)
	}
}

func (c *Controller) begin(s *session, ev Event) {
	p := viewToImage(ev.Location, ev.ViewSize, s.imageSize)

	st := s.strokes[ev.Pointer]
	if st == nil {
		st = &stroke{}
		s.strokes[ev.Pointer] = st
	}
	st.hist.reset(p)
	st.prev = p

	s.surface.PaintFilledCircle(p, s.radius)
	s.grid.RevealAt(p, s.imageSize)
}

func (c *Controller) move(s *session, ev Event) {
	cur := viewToImage(ev.Location, ev.ViewSize, s.imageSize)

	st := s.strokes[ev.Pointer]
	if st == nil {
		// Moved without Began: start the window here, nothing painted yet.
		first := cur
		if len(ev.Coalesced) > 0 {
			first = viewToImage(ev.Coalesced[0], ev.ViewSize, s.imageSize)
		}
		st = &stroke{}
		st.hist.reset(first)
		st.prev = first
		s.strokes[ev.Pointer] = st
	}

	for _, raw := range ev.Coalesced {
		c.push(s, st, viewToImage(raw, ev.ViewSize, s.imageSize))
	}
	c.push(s, st, cur)

	s.grid.FillBetween(cur, st.prev, s.imageSize)
	st.prev = cur
}

// push appends p to the stroke window and paints every segment the window
// can produce.
func (c *Controller) push(s *session, st *stroke, p Point) {
	st.hist.push(p)
	for st.hist.len() >= historyCap {
		w := st.hist.window()
		seg := SmoothSegment(w[0], w[1], w[2], w[3], c.tension)
		s.surface.PaintStrokeSegment(seg, 2*s.radius, LineCapRound)
		st.hist.pop()
	}
}
