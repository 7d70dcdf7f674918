package types

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resolution is a target pixel-count class. The zero value is not valid;
// build one with NewResolution or ParseResolution.
type Resolution struct {
	width  uint32
	height uint32
}

// Preset is a named resolution
type Preset struct {
	Name       string
	Resolution Resolution
}

// Named resolutions
var (
	QVGA    = Resolution{320, 240}
	VGA     = Resolution{640, 480}
	SVGA    = Resolution{800, 600}
	HD      = Resolution{1280, 720}
	QuadVGA = Resolution{1280, 960}
	FullHD  = Resolution{1920, 1080}
)

var presets = []Preset{
	{Name: "QVGA", Resolution: QVGA},
	{Name: "VGA", Resolution: VGA},
	{Name: "SVGA", Resolution: SVGA},
	{Name: "HD", Resolution: HD},
	{Name: "QuadVGA", Resolution: QuadVGA},
	{Name: "FullHD", Resolution: FullHD},
}

// Presets returns the named resolutions in ascending order
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// NewResolution returns an error when either side is zero.
func NewResolution(width, height uint32) (Resolution, error) {
	if width == 0 || height == 0 {
		return Resolution{}, fmt.Errorf("resolution %dx%d must have positive width and height", width, height)
	}
	return Resolution{width: width, height: height}, nil
}

func (r Resolution) Width() uint32  { return r.width }
func (r Resolution) Height() uint32 { return r.height }

// IsZero reports whether r was never initialised
func (r Resolution) IsZero() bool { return r.width == 0 || r.height == 0 }

// String renders r as "<width>x<height>", which ParseResolution accepts.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.width, r.height)
}

// MarshalText implements encoding.TextMarshaler
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *Resolution) UnmarshalText(text []byte) error {
	parsed, err := ParseResolution(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Resolution parse stages, in the order they are tried.
const (
	VariantPreset  = "preset"
	VariantLiteral = "literal"
	VariantWidth   = "width"
	VariantHeight  = "height"
)

// ResolutionError reports which variant of a resolution token failed to parse
type ResolutionError struct {
	Token   string
	Variant string
	Err     error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("invalid resolution %q: %s: %v", e.Token, e.Variant, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

var errNotPositive = errors.New("must be a positive integer")

// ParseResolution tries a case-insensitive preset name first, then a
// literal "<width>x<height>" with exactly one x separator.
func ParseResolution(s string) (Resolution, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, s) {
			return p.Resolution, nil
		}
	}

	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return Resolution{}, &ResolutionError{
			Token:   s,
			Variant: VariantLiteral,
			Err:     fmt.Errorf("not a preset name (%s) and not in <width>x<height> form", presetList()),
		}
	}

	width, err := parseSide(parts[0])
	if err != nil {
		return Resolution{}, &ResolutionError{Token: s, Variant: VariantWidth, Err: fmt.Errorf("%q %w", parts[0], err)}
	}
	height, err := parseSide(parts[1])
	if err != nil {
		return Resolution{}, &ResolutionError{Token: s, Variant: VariantHeight, Err: fmt.Errorf("%q %w", parts[1], err)}
	}

	return Resolution{width: width, height: height}, nil
}

func parseSide(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, errNotPositive
	}
	return uint32(v), nil
}

func presetList() string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// ScaleRatio returns the factor that, applied to both sides of a
// srcWidth x srcHeight image, yields the same pixel count as r.
func (r Resolution) ScaleRatio(srcWidth, srcHeight int) float64 {
	target := float64(r.width) * float64(r.height)
	source := float64(srcWidth) * float64(srcHeight)
	return math.Sqrt(target / source)
}

// ScaledSize keeps the source aspect ratio and matches the pixel count of r.
// Sides are rounded half away from zero and never drop below 1.
func (r Resolution) ScaledSize(srcWidth, srcHeight int) (int, int, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return 0, 0, fmt.Errorf("cannot scale degenerate source %dx%d", srcWidth, srcHeight)
	}
	if r.IsZero() {
		return 0, 0, errors.New("target resolution is not set")
	}

	scale := r.ScaleRatio(srcWidth, srcHeight)
	w := int(math.Round(float64(srcWidth) * scale))
	h := int(math.Round(float64(srcHeight) * scale))

	return max(w, 1), max(h, 1), nil
}
