package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/gogpu/scratch"
	"github.com/gogpu/scratch/surface"
)

// Pixels per terminal cell of the backing image. Cells are roughly twice
// as tall as they are wide.
const (
	cellW = 8
	cellH = 16
)

// mousePointer is the pointer id of the terminal mouse.
const mousePointer scratch.PointerID = 1

type ttyOptions struct {
	image string
	prize string
}

func newTTYCmd(opts *options) *cobra.Command {
	to := &ttyOptions{}
	cmd := &cobra.Command{
		Use:   "tty",
		Short: "Scratch a card in the terminal with the mouse",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTTY(opts, to)
		},
	}
	cmd.Flags().StringVar(&to.image, "image", "", "top layer image (default: silver foil)")
	cmd.Flags().StringVar(&to.prize, "prize", "YOU WIN", "text hidden under the card")
	return cmd
}

func runTTY(opts *options, to *ttyOptions) error {
	var top image.Image
	if to.image != "" {
		img, err := loadImage(to.image)
		if err != nil {
			return err
		}
		top = img
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	var c *card
	redraw := func() {
		screen.Clear()
		c.draw(func(x, y int, r rune, st tcell.Style) {
			screen.SetContent(x, y, r, nil, st)
		})
		screen.Show()
	}

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventError:
			return fmt.Errorf("error event: %w", ev)

		case *tcell.EventResize:
			cols, rows := screen.Size()
			c = newCard(opts, top, cols, rows-1, to.prize)
			redraw()

		case *tcell.EventMouse:
			if c != nil && c.handleMouse(ev) {
				redraw()
			}

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyEscape,
				ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return nil
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'r' && c != nil:
				c.reset()
				redraw()
			}

		case nil:
			return nil
		}
	}
}

// pointerTracker turns terminal mouse reports, which only carry the
// current button state, into pointer phases.
type pointerTracker struct {
	down bool
	last scratch.Point
}

func (t *pointerTracker) translate(ev *tcell.EventMouse, view scratch.Size) []scratch.Event {
	x, y := ev.Position()
	p := scratch.Pt(float64(x)+0.5, float64(y)+0.5)
	pressed := ev.Buttons()&tcell.Button1 != 0

	var phase scratch.Phase
	switch {
	case pressed && !t.down:
		t.down = true
		phase = scratch.PhaseBegan
	case pressed && t.down:
		if p == t.last {
			return nil
		}
		phase = scratch.PhaseMoved
	case !pressed && t.down:
		t.down = false
		p = t.last
		phase = scratch.PhaseEnded
	default:
		return nil
	}
	t.last = p
	return []scratch.Event{{Pointer: mousePointer, Phase: phase, Location: p, ViewSize: view}}
}

// card is one scratch card filling cols x rows terminal cells plus a
// status line below it.
type card struct {
	opts  *options
	top   *image.RGBA
	cols  int
	rows  int
	prize string

	ctrl      *scratch.Controller
	dismiss   *dismisser
	surf      *surface.EraseSurface
	tracker   pointerTracker
	percent   float64
	dismissed bool
}

func newCard(opts *options, top image.Image, cols, rows int, prize string) *card {
	cols, rows = max(cols, 1), max(rows, 1)
	img := image.NewRGBA(image.Rect(0, 0, cols*cellW, rows*cellH))
	if top != nil {
		draw.ApproxBiLinear.Scale(img, img.Bounds(), top, top.Bounds(), draw.Src, nil)
	} else {
		foil := color.RGBA{R: 170, G: 170, B: 180, A: 255}
		draw.Draw(img, img.Bounds(), &image.Uniform{C: foil}, image.Point{}, draw.Src)
	}

	c := &card{opts: opts, top: img, cols: cols, rows: rows, prize: prize}
	c.dismiss = &dismisser{
		threshold: opts.dismissAt,
		onChange:  func(p float64) { c.percent = p },
		onDismiss: func(float64) { c.dismissed = true },
	}
	c.ctrl = opts.newController(c.dismiss)
	c.reset()
	return c
}

// reset starts a fresh session over an unscratched card.
func (c *card) reset() {
	c.surf = surface.NewEraseSurface(c.top)
	c.ctrl.BeginInteraction(c.surf.Size(), c.opts.radius, c.surf)
	c.tracker = pointerTracker{}
	c.dismiss.fired = false
	c.percent = 0
	c.dismissed = false
}

func (c *card) viewSize() scratch.Size {
	return scratch.Sz(float64(c.cols), float64(c.rows))
}

// handleMouse feeds a mouse report to the controller and reports whether
// the card needs a redraw.
func (c *card) handleMouse(ev *tcell.EventMouse) bool {
	if c.dismissed {
		return false
	}
	if _, y := ev.Position(); y >= c.rows && !c.tracker.down {
		return false
	}
	evs := c.tracker.translate(ev, c.viewSize())
	if len(evs) == 0 {
		return false
	}
	c.ctrl.ProcessPointerEvents(evs...)
	return true
}

// draw renders the card and the status line through set.
func (c *card) draw(set func(x, y int, r rune, st tcell.Style)) {
	cells := image.NewRGBA(image.Rect(0, 0, c.cols, c.rows))
	if !c.dismissed {
		draw.ApproxBiLinear.Scale(cells, cells.Bounds(), c.surf.CurrentImage(), c.top.Bounds(), draw.Src, nil)
	}

	prize := []rune(c.prize)
	prizeRow := c.rows / 2
	prizeCol := (c.cols - len(prize)) / 2
	under := tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack).Bold(true)

	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			px := cells.RGBAAt(x, y)
			if px.A >= 128 {
				fg := tcell.NewRGBColor(int32(px.R), int32(px.G), int32(px.B))
				set(x, y, '░', tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
				continue
			}
			r := ' '
			if y == prizeRow && x >= prizeCol && x-prizeCol < len(prize) {
				r = prize[x-prizeCol]
			}
			set(x, y, r, under)
		}
	}

	status := fmt.Sprintf(" cleared %5.1f%%  drag to scratch, r to reset, q to quit", c.percent)
	if c.dismissed {
		status = fmt.Sprintf(" revealed at %.1f%%  r to play again, q to quit", c.percent)
	}
	for i, r := range []rune(status) {
		if i >= c.cols {
			break
		}
		set(i, c.rows, r, tcell.StyleDefault.Reverse(true))
	}
}
