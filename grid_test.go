package scratch

import (
	"math"
	"testing"
)

func TestGridSizeFor(t *testing.T) {
	tests := []struct {
		name   string
		size   Size
		radius float64
		want   GridSize
	}{
		{"square", Sz(100, 100), 10, GridSize{5, 5}},
		{"truncates", Sz(105, 99), 10, GridSize{5, 4}},
		{"landscape", Sz(640, 480), 40, GridSize{8, 6}},
		{"radius covers image", Sz(100, 100), 60, GridSize{0, 0}},
		{"radius covers short side", Sz(200, 50), 30, GridSize{3, 0}},
		{"zero radius", Sz(100, 100), 0, GridSize{}},
		{"empty image", Sz(0, 100), 10, GridSize{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GridSizeFor(tt.size, tt.radius); got != tt.want {
				t.Errorf("GridSizeFor(%v, %v) = %v, want %v", tt.size, tt.radius, got, tt.want)
			}
		})
	}
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(GridSize{5, 4})
	if g.Tiles() != 20 {
		t.Errorf("Tiles() = %d, want 20", g.Tiles())
	}
	if g.Filled() != 0 {
		t.Errorf("Filled() = %d, want 0", g.Filled())
	}
	if g.PercentRevealed() != 0 {
		t.Errorf("PercentRevealed() = %v, want 0", g.PercentRevealed())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if g.Revealed(x, y) {
				t.Errorf("Revealed(%d, %d) = true on a new grid", x, y)
			}
		}
	}
}

func TestNewGridNegative(t *testing.T) {
	g := NewGrid(GridSize{-3, 4})
	if g.Tiles() != 0 {
		t.Errorf("Tiles() = %d, want 0", g.Tiles())
	}
	if g.Size() != (GridSize{0, 4}) {
		t.Errorf("Size() = %v, want {0 4}", g.Size())
	}
}

func TestGridRevealIdempotent(t *testing.T) {
	g := NewGrid(GridSize{3, 3})
	if !g.Reveal(1, 2) {
		t.Fatal("first Reveal(1, 2) = false, want true")
	}
	if g.Reveal(1, 2) {
		t.Error("second Reveal(1, 2) = true, want false")
	}
	if g.Filled() != 1 {
		t.Errorf("Filled() = %d, want 1", g.Filled())
	}
	if !g.Revealed(1, 2) {
		t.Error("Revealed(1, 2) = false after Reveal")
	}
}

func TestGridRevealOutOfRange(t *testing.T) {
	g := NewGrid(GridSize{3, 3})
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}} {
		if g.Reveal(c[0], c[1]) {
			t.Errorf("Reveal(%d, %d) = true outside the grid", c[0], c[1])
		}
		if g.Revealed(c[0], c[1]) {
			t.Errorf("Revealed(%d, %d) = true outside the grid", c[0], c[1])
		}
	}
	if g.Filled() != 0 {
		t.Errorf("Filled() = %d, want 0", g.Filled())
	}
}

func TestGridMonotonic(t *testing.T) {
	g := NewGrid(GridSize{4, 4})
	seen := map[[2]int]bool{}
	coords := [][2]int{{0, 0}, {1, 1}, {0, 0}, {3, 3}, {9, 9}, {1, 1}, {2, 0}, {3, 3}}
	prev := 0
	for _, c := range coords {
		g.Reveal(c[0], c[1])
		if c[0] < 4 && c[1] < 4 {
			seen[c] = true
		}
		if g.Filled() < prev {
			t.Fatalf("Filled() decreased from %d to %d", prev, g.Filled())
		}
		if g.Filled() != len(seen) {
			t.Fatalf("Filled() = %d, want %d distinct tiles", g.Filled(), len(seen))
		}
		prev = g.Filled()
	}
}

func TestGridPercentBounds(t *testing.T) {
	g := NewGrid(GridSize{2, 3})
	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			pct := g.PercentRevealed()
			if pct < 0 || pct >= 100 {
				t.Fatalf("PercentRevealed() = %v before all tiles revealed", pct)
			}
			g.Reveal(x, y)
		}
	}
	if got := g.PercentRevealed(); got != 100 {
		t.Errorf("PercentRevealed() = %v with every tile revealed, want 100", got)
	}
}

func TestGridPercentEmpty(t *testing.T) {
	g := NewGrid(GridSize{0, 0})
	g.Reveal(0, 0)
	if got := g.PercentRevealed(); got != 0 {
		t.Errorf("PercentRevealed() = %v on an empty grid, want 0", got)
	}
}

func TestGridTileAt(t *testing.T) {
	g := NewGrid(GridSize{5, 5})
	img := Sz(100, 100)
	tests := []struct {
		name  string
		p     Point
		wantX int
		wantY int
	}{
		{"origin", Pt(0, 0), 0, 0},
		{"inside first", Pt(5, 5), 0, 0},
		{"tile edge", Pt(20, 40), 1, 2},
		{"last pixel", Pt(99, 99), 4, 4},
		{"far right clamps", Pt(1000, 50), 4, 2},
		{"far left clamps", Pt(-1000, 50), 0, 2},
		{"below clamps", Pt(50, -5), 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := g.TileAt(tt.p, img)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("TileAt(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestGridTileAtClampMatchesBoundary(t *testing.T) {
	g := NewGrid(GridSize{7, 3})
	img := Sz(70, 30)
	fx, fy := g.TileAt(Pt(-1000, 12), img)
	bx, by := g.TileAt(Pt(0, 12), img)
	if fx != bx || fy != by {
		t.Errorf("TileAt(-1000, 12) = (%d, %d), want boundary tile (%d, %d)", fx, fy, bx, by)
	}
}

func TestGridFillBetweenEndpoint(t *testing.T) {
	g := NewGrid(GridSize{1, 1})
	g.FillBetween(Pt(0, 0), Pt(5, 5), Sz(10, 10))
	if !g.Revealed(0, 0) {
		t.Error("tile under end not revealed")
	}
	if g.Filled() != 1 {
		t.Errorf("Filled() = %d, want 1", g.Filled())
	}
}

func TestGridFillBetweenEndpointOvershoot(t *testing.T) {
	g := NewGrid(GridSize{4, 4})
	img := Sz(100, 100)
	// One step of 25px jumps from tile (0,0) past end in tile (1,1).
	n := g.FillBetween(Pt(20, 20), Pt(30, 30), img)
	if !g.Revealed(1, 1) {
		t.Error("tile under end not revealed after overshooting step")
	}
	if n != 2 {
		t.Errorf("FillBetween() = %d newly revealed, want 2", n)
	}
}

func TestGridFillBetweenDiagonal(t *testing.T) {
	g := NewGrid(GridSize{5, 5})
	g.FillBetween(Pt(0, 0), Pt(99, 99), Sz(100, 100))
	if !g.Revealed(0, 0) || !g.Revealed(4, 4) {
		t.Errorf("corner tiles not revealed: (0,0)=%v (4,4)=%v", g.Revealed(0, 0), g.Revealed(4, 4))
	}
	if got := g.PercentRevealed(); got < 8 {
		t.Errorf("PercentRevealed() = %v, want >= 8", got)
	}
	for i := 0; i < 5; i++ {
		if !g.Revealed(i, i) {
			t.Errorf("diagonal tile (%d, %d) not revealed", i, i)
		}
	}
}

func TestGridFillBetweenReverse(t *testing.T) {
	g := NewGrid(GridSize{5, 5})
	g.FillBetween(Pt(95, 15), Pt(5, 15), Sz(100, 100))
	if !g.Revealed(4, 0) || !g.Revealed(0, 0) {
		t.Errorf("end tiles not revealed: (4,0)=%v (0,0)=%v", g.Revealed(4, 0), g.Revealed(0, 0))
	}
}

func TestGridFillBetweenDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		size  GridSize
		img   Size
		begin Point
		end   Point
	}{
		{"same point", GridSize{5, 5}, Sz(100, 100), Pt(50, 50), Pt(50, 50)},
		{"zero tiles", GridSize{0, 0}, Sz(100, 100), Pt(0, 0), Pt(99, 99)},
		{"empty image", GridSize{5, 5}, Sz(0, 0), Pt(0, 0), Pt(10, 10)},
		{"far outside", GridSize{5, 5}, Sz(100, 100), Pt(-500, -500), Pt(500, 500)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.size)
			g.FillBetween(tt.begin, tt.end, tt.img)
			if pct := g.PercentRevealed(); pct < 0 || pct > 100 || math.IsNaN(pct) {
				t.Errorf("PercentRevealed() = %v out of range", pct)
			}
		})
	}
}
