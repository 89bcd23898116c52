package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/gogpu/scratch"
	"github.com/gogpu/scratch/internal/script"
	"github.com/gogpu/scratch/surface"
)

type replayOptions struct {
	output string
	under  string
	trace  bool
	batch  bool
}

func newReplayCmd(opts *options) *cobra.Command {
	ro := &replayOptions{}
	cmd := &cobra.Command{
		Use:   "replay IMAGE SCRIPT",
		Short: "Replay a TOML stroke script over an image and write the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, opts, ro, args[0], args[1])
		},
	}
	cmd.Flags().StringVarP(&ro.output, "output", "o", "scratched.png", "output PNG")
	cmd.Flags().StringVar(&ro.under, "under", "", "image revealed beneath the top layer")
	cmd.Flags().BoolVar(&ro.trace, "trace", false, "print every erase intent")
	cmd.Flags().BoolVar(&ro.batch, "batch", false, "deliver all events as one batch")
	return cmd
}

func runReplay(cmd *cobra.Command, opts *options, ro *replayOptions, imagePath, scriptPath string) error {
	out := cmd.OutOrStdout()

	top, err := loadImage(imagePath)
	if err != nil {
		return err
	}
	var under image.Image
	if ro.under != "" {
		if under, err = loadImage(ro.under); err != nil {
			return err
		}
	}
	sc, err := script.Load(scriptPath)
	if err != nil {
		return err
	}

	base, err := surface.New(opts.surface, top)
	if err != nil {
		return fmt.Errorf("failed to create surface: %w", err)
	}
	rec := surface.NewRecorder(base)

	dismissed := false
	c := opts.newController(nil)
	c.SetObserver(&dismisser{
		threshold: opts.dismissAt,
		onChange: func(p float64) {
			fmt.Fprintf(out, "cleared %.1f%%\n", p)
		},
		onDismiss: func(p float64) {
			dismissed = true
			fmt.Fprintf(out, "dismissed at %.1f%%\n", p)
			c.EndInteraction()
		},
	})

	w, h := imageSize(top)
	c.BeginInteraction(scratch.Sz(float64(w), float64(h)), opts.radius, rec)
	gs := c.GridSize()
	fmt.Fprintf(out, "image %dx%d, radius %.1f, grid %dx%d\n", w, h, c.Radius(), gs.TilesX, gs.TilesY)

	evs := sc.Events()
	if ro.batch {
		c.ProcessPointerEvents(evs...)
	} else {
		for _, ev := range evs {
			c.ProcessPointerEvent(ev)
		}
	}

	if ro.trace {
		for i, op := range rec.Ops() {
			fmt.Fprintf(out, "%4d %s\n", i, op)
		}
	}
	if es, ok := base.(*surface.EraseSurface); ok {
		fmt.Fprintf(out, "pixels erased %.1f%%\n", 100*es.Coverage())
	}

	result := rec.CurrentImage()
	if dismissed {
		// The top layer is gone; only what lies beneath remains.
		result = image.NewRGBA(top.Bounds())
	}
	if err := savePNG(ro.output, composite(result, under)); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s (%d intents)\n", ro.output, rec.Len())
	return nil
}
