package scratch

// ToPixelSpace flips a view-space point vertically so that the origin
// moves from the top-left corner of the view to its bottom-left corner.
func ToPixelSpace(p Point, viewSize Size) Point {
	return Point{X: p.X, Y: viewSize.Height - p.Y}
}

// Rescale maps p from a space of size from into a space of size to.
//
// from must have non-zero dimensions; callers guard this before entering
// pointer processing.
func Rescale(p Point, from, to Size) Point {
	return Point{
		X: to.Width * p.X / from.Width,
		Y: to.Height * p.Y / from.Height,
	}
}

// viewToImage applies both transforms: view space to image pixel space.
func viewToImage(p Point, viewSize, imageSize Size) Point {
	return Rescale(ToPixelSpace(p, viewSize), viewSize, imageSize)
}
