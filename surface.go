package scratch

import "image"

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// Surface receives erase intents from a Controller.
//
// All coordinates are in image pixel space with the origin at the
// bottom-left corner. The Controller never touches pixels itself; what an
// erase looks like (hard edge, soft shadow, blend mode) is up to the
// implementation. See package surface for a software implementation.
//
// A Surface is owned by the session it was passed to and is only called
// from the goroutine that feeds the Controller.
type Surface interface {
	// PaintFilledCircle erases a disc.
	PaintFilledCircle(center Point, radius float64)

	// PaintStrokeSegment erases along a cubic curve with the given line
	// width and cap.
	PaintStrokeSegment(seg Segment, lineWidth float64, lineCap LineCap)

	// CurrentImage returns a snapshot of the top layer with all erasures
	// applied.
	CurrentImage() image.Image
}
