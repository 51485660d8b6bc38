package utils

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	colorImageSize = 500
	textPadding    = 10
)

var face = basicfont.Face7x13

// drawText writes s with its top-left corner at (x, y)
func drawText(dst draw.Image, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// fillRoundedRect paints r with corners of the given radius
func fillRoundedRect(dst draw.Image, r image.Rectangle, radius int, c color.Color) {
	r = r.Canon()
	if limit := min(r.Dx(), r.Dy()) / 2; radius > limit {
		radius = limit
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if insideRounded(x, y, r, radius) {
				dst.Set(x, y, c)
			}
		}
	}
}

func insideRounded(x, y int, r image.Rectangle, radius int) bool {
	cx, cy := x, y
	switch {
	case x < r.Min.X+radius:
		cx = r.Min.X + radius
	case x >= r.Max.X-radius:
		cx = r.Max.X - radius - 1
	}
	switch {
	case y < r.Min.Y+radius:
		cy = r.Min.Y + radius
	case y >= r.Max.Y-radius:
		cy = r.Max.Y - radius - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= radius*radius
}

// renderColor draws the swatch with its RGB and HEX labels
func renderColor(r, g, b uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, colorImageSize, colorImageSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: r, G: g, B: b, A: 255}), image.Point{}, draw.Src)
	fillRoundedRect(img, image.Rect(0, 0, 200, 55), 50, color.White)
	drawText(img, fmt.Sprintf("RGB: %d, %d, %d", r, g, b), 10, 10, color.Black)
	drawText(img, "HEX: "+hexColor(r, g, b), 10, 30, color.Black)
	return img
}

// renderText draws s in white on a black canvas sized to fit it
func renderText(s string) *image.RGBA {
	width := font.MeasureString(face, s).Ceil() + textPadding*2
	height := face.Metrics().Height.Ceil() + textPadding*2
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	drawText(img, s, textPadding, textPadding, color.White)
	return img
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func encodePNG(img image.Image) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return &buf, nil
}
