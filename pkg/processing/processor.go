package processing

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/watermarker/pkg/compositor"
	"github.com/menta2k/watermarker/pkg/types"
)

// JPEGQuality is the fixed quality used for every written image
const JPEGQuality = 90

// Processor handles image processing operations
type Processor struct{}

// NewProcessor creates a new image processor
func NewProcessor() *Processor {
	return &Processor{}
}

// LoadImage loads an image in any registered format, with WebP support.
// Used for logo files, which are usually PNG with an alpha channel.
func (p *Processor) LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	img, openErr := imaging.Open(path)
	if openErr == nil {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Fallback: explicit WebP decode
	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, fmt.Errorf("image: cannot decode %s: %w", path, openErr)
}

// LoadNRGBA loads an image and converts it to an NRGBA buffer
func (p *Processor) LoadNRGBA(path string) (*image.NRGBA, error) {
	img, err := p.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}

// ErrNotJPEG is returned by LoadJPEG for files in any other image format
var ErrNotJPEG = errors.New("not a JPEG image")

// LoadJPEG decodes a source photo into a fresh NRGBA buffer. Files in
// other formats are rejected with ErrNotJPEG, whatever their extension.
func (p *Processor) LoadJPEG(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, err
	}
	if format != "jpeg" {
		return nil, fmt.Errorf("%s is %s: %w", path, format, ErrNotJPEG)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(f)
	if err != nil {
		return nil, err
	}
	nrgba := imaging.Clone(img)
	if nrgba.Bounds().Empty() {
		return nil, fmt.Errorf("image %s has no pixels", path)
	}
	return nrgba, nil
}

// Resize scales img to exactly width x height with a Lanczos filter
func (p *Processor) Resize(img image.Image, width, height int) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)
	if b := resized.Bounds(); b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("resize produced %dx%d, want %dx%d", b.Dx(), b.Dy(), width, height)
	}
	return resized, nil
}

// Watermark scales img to the pixel budget of res, keeping its aspect
// ratio, and composites logo at anchor. img itself is not modified.
func (p *Processor) Watermark(img, logo image.Image, res types.Resolution, anchor types.Anchor) (*image.NRGBA, error) {
	b := img.Bounds()
	width, height, err := res.ScaledSize(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	resized, err := p.Resize(img, width, height)
	if err != nil {
		return nil, err
	}

	return compositor.Composite(resized, logo, anchor), nil
}

// EncodeJPEG writes img as a JPEG at JPEGQuality
func (p *Processor) EncodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
}

// SaveJPEG writes img to path as a JPEG regardless of the file extension.
// An existing file is truncated.
func (p *Processor) SaveJPEG(img image.Image, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := p.EncodeJPEG(w, img); err != nil {
		return err
	}
	return w.Flush()
}
