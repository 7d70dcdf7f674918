// Package watermarker resizes photos to a fixed pixel budget and stamps a
// logo on them.
//
// The resize keeps the aspect ratio of each photo and only matches the
// pixel count of the requested resolution, so a 1920x1080 photo scaled to
// HD becomes 1280x720 while a 1080x1920 one becomes 720x1280.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/menta2k/watermarker"
//		"github.com/menta2k/watermarker/pkg/types"
//	)
//
//	func main() {
//		logo, err := watermarker.LoadImage("logo.png")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		wm := watermarker.NewWithOptions(logo, watermarker.Options{
//			Resolution: types.FullHD,
//			Position:   types.TopRight,
//		})
//
//		if err := wm.ProcessFile("photo.jpg", "out/photo.jpg"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of three main components:
//
// 1. Types (pkg/types): anchors, resolutions and the scale calculation
// 2. Compositor (pkg/compositor): logo placement and alpha blending
// 3. Processing (pkg/processing): decoding, resizing and JPEG encoding
//
// The watermarker command line tool adds configuration files and batch
// processing of whole directories on top of these.
package watermarker

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/menta2k/watermarker/pkg/processing"
	"github.com/menta2k/watermarker/pkg/types"
)

// Version of the watermarker library and command
const Version = "1.0.0"

// Options tune a Watermarker. A zero Resolution means HD. The zero
// Position is TOP-LEFT, so start from DefaultOptions to keep BOTTOM-RIGHT.
type Options struct {
	Resolution types.Resolution
	Position   types.Anchor
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{Resolution: types.HD, Position: types.BottomRight}
}

// Watermarker applies one logo with fixed options to any number of images
type Watermarker struct {
	processor *processing.Processor
	logo      *image.NRGBA
	options   Options
}

// New creates a Watermarker with default options
func New(logo image.Image) *Watermarker {
	return NewWithOptions(logo, DefaultOptions())
}

// NewWithOptions creates a Watermarker. The logo is copied, so the caller
// may reuse its image afterwards.
func NewWithOptions(logo image.Image, options Options) *Watermarker {
	if options.Resolution.IsZero() {
		options.Resolution = types.HD
	}
	return &Watermarker{
		processor: processing.NewProcessor(),
		logo:      imaging.Clone(logo),
		options:   options,
	}
}

// Options returns the options in use
func (w *Watermarker) Options() Options {
	return w.options
}

// Apply returns a resized copy of img with the logo composited onto it
func (w *Watermarker) Apply(img image.Image) (*image.NRGBA, error) {
	return w.processor.Watermark(img, w.logo, w.options.Resolution, w.options.Position)
}

// Encode applies the watermark and writes the result to out as a JPEG
func (w *Watermarker) Encode(out io.Writer, img image.Image) error {
	marked, err := w.Apply(img)
	if err != nil {
		return err
	}
	return w.processor.EncodeJPEG(out, marked)
}

// ProcessFile is a convenience function that loads, watermarks and saves
// one image. The output is always a JPEG and is overwritten if it exists.
func (w *Watermarker) ProcessFile(inputPath, outputPath string) error {
	img, err := w.processor.LoadJPEG(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	marked, err := w.Apply(img)
	if err != nil {
		return fmt.Errorf("watermarking failed: %w", err)
	}

	if err := w.processor.SaveJPEG(marked, outputPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// LoadImage loads a logo or photo in any supported format, including WebP
func LoadImage(path string) (image.Image, error) {
	return processing.NewProcessor().LoadImage(path)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
