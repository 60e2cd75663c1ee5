// Package imaging converts uploaded package photos into the processed
// rendition that customers receive: downscaled and stamped with the
// shipment reference and capture date.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	maxWidth    = 1600
	jpegQuality = 82
	margin      = 12
)

// Processor implements ImageTransform with the standard library image
// pipeline plus golang.org/x/image for scaling and text rendering.
type Processor struct{}

// NewProcessor creates a photo processor.
func NewProcessor() Processor {
	return Processor{}
}

// Process decodes the uploaded photo, scales it down to at most 1600px
// wide, stamps the label and capture date into the bottom-left corner and
// re-encodes as JPEG. The original bytes are left untouched; callers
// store both renditions.
func (Processor) Process(original []byte, label string, takenAt time.Time) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}

	scaled := downscale(src)
	stamp(scaled, fmt.Sprintf("%s  %s", label, takenAt.UTC().Format("2006-01-02")))

	var out bytes.Buffer
	if err := jpeg.Encode(&out, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode photo: %w", err)
	}

	return out.Bytes(), nil
}

// downscale returns a mutable RGBA copy of src, shrunk to maxWidth when
// the source is wider.
func downscale(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxWidth {
		height = height * maxWidth / width
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	return dst
}

// stamp draws the watermark text with a dark backing band so it stays
// readable on bright photos.
func stamp(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	bounds := img.Bounds()

	textWidth := font.MeasureString(face, text).Ceil()
	bandHeight := face.Metrics().Height.Ceil() + margin

	band := image.Rect(
		bounds.Min.X,
		bounds.Max.Y-bandHeight,
		bounds.Min.X+textWidth+2*margin,
		bounds.Max.Y,
	)
	draw.Draw(img, band, image.NewUniform(color.RGBA{0, 0, 0, 160}), image.Point{}, draw.Over)

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot: fixed.P(
			bounds.Min.X+margin,
			bounds.Max.Y-margin,
		),
	}
	drawer.DrawString(text)
}
