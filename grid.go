package scratch

import "math"

// GridSize is the number of tiles along each axis of an occupancy grid.
type GridSize struct {
	TilesX, TilesY int
}

// GridSizeFor derives the tile layout for an image and brush radius.
// Each tile is 2*radius pixels wide, truncated, so one brush dab covers
// about one tile. A radius at or above half of the smaller image dimension
// yields zero tiles on that axis.
func GridSizeFor(imageSize Size, radius float64) GridSize {
	if radius <= 0 || imageSize.Empty() {
		return GridSize{}
	}
	return GridSize{
		TilesX: int(imageSize.Width / (2 * radius)),
		TilesY: int(imageSize.Height / (2 * radius)),
	}
}

// Tiles returns TilesX*TilesY.
func (g GridSize) Tiles() int {
	return g.TilesX * g.TilesY
}

// Grid records which tiles of an image have been revealed.
//
// Tiles are never un-revealed: the filled count only grows for the
// lifetime of a Grid. A Grid with zero tiles is valid and always reports
// zero percent.
type Grid struct {
	size   GridSize
	cells  []bool
	filled int
}

// NewGrid allocates a grid with every tile unrevealed.
// Negative dimensions are treated as zero.
func NewGrid(size GridSize) *Grid {
	size.TilesX = max(size.TilesX, 0)
	size.TilesY = max(size.TilesY, 0)
	return &Grid{
		size:  size,
		cells: make([]bool, size.Tiles()),
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() GridSize {
	return g.size
}

// Tiles returns the total number of tiles.
func (g *Grid) Tiles() int {
	return len(g.cells)
}

// Filled returns the number of revealed tiles.
func (g *Grid) Filled() int {
	return g.filled
}

// TileAt returns the tile containing p, a point in image pixel space.
// The point is clamped into the image first, so the result is always a
// valid tile of a non-empty grid.
func (g *Grid) TileAt(p Point, imageSize Size) (x, y int) {
	px := math.Max(math.Min(p.X, imageSize.Width-1), 0)
	py := math.Max(math.Min(p.Y, imageSize.Height-1), 0)
	x = int(math.Floor(px * float64(g.size.TilesX) / imageSize.Width))
	y = int(math.Floor(py * float64(g.size.TilesY) / imageSize.Height))
	return x, y
}

func (g *Grid) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.size.TilesX || y >= g.size.TilesY {
		return 0, false
	}
	return y*g.size.TilesX + x, true
}

// Reveal marks the tile (x, y) and reports whether it was newly revealed.
// Coordinates outside the grid are ignored.
func (g *Grid) Reveal(x, y int) bool {
	i, ok := g.index(x, y)
	if !ok || g.cells[i] {
		return false
	}
	g.cells[i] = true
	g.filled++
	return true
}

// Revealed reports whether the tile (x, y) has been revealed.
func (g *Grid) Revealed(x, y int) bool {
	i, ok := g.index(x, y)
	return ok && g.cells[i]
}

// RevealAt reveals the tile containing p.
func (g *Grid) RevealAt(p Point, imageSize Size) bool {
	return g.Reveal(g.TileAt(p, imageSize))
}

// PercentRevealed returns 100 * filled / tiles, or 0 for an empty grid.
func (g *Grid) PercentRevealed() float64 {
	if len(g.cells) == 0 {
		return 0
	}
	return 100 * float64(g.filled) / float64(len(g.cells))
}

// FillBetween reveals the tiles along the straight line from begin to end
// and returns how many were newly revealed.
//
// The walk starts at begin and advances one tile width in x and one tile
// height in y per step, each signed toward end, for as long as it stays
// inside the bounding box of the two points. The tile under end is
// revealed last in every case, so a step that overshoots end still
// accounts for it. Steps move diagonally, so long shallow lines may skip
// tiles between the two points.
func (g *Grid) FillBetween(begin, end Point, imageSize Size) int {
	if imageSize.Empty() {
		return 0
	}
	n := 0
	stepX := imageSize.Width / float64(g.size.TilesX)
	if begin.X >= end.X {
		stepX = -stepX
	}
	stepY := imageSize.Height / float64(g.size.TilesY)
	if begin.Y >= end.Y {
		stepY = -stepY
	}

	minX, maxX := math.Min(begin.X, end.X), math.Max(begin.X, end.X)
	minY, maxY := math.Min(begin.Y, end.Y), math.Max(begin.Y, end.Y)
	for p := begin; p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY; {
		if g.RevealAt(p, imageSize) {
			n++
		}
		p.X += stepX
		p.Y += stepY
	}
	if g.RevealAt(end, imageSize) {
		n++
	}
	return n
}
