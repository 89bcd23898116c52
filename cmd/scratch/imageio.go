package main

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// loadImage decodes a PNG, JPEG, BMP or WebP file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// savePNG encodes img to path.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}

// composite draws top over under, scaled to top's size.
func composite(top, under image.Image) *image.RGBA {
	b := top.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if under != nil {
		draw.ApproxBiLinear.Scale(out, out.Bounds(), under, under.Bounds(), draw.Src, nil)
	}
	draw.Draw(out, out.Bounds(), top, b.Min, draw.Over)
	return out
}

// imageSize returns the pixel size of img.
func imageSize(img image.Image) (w, h int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}
