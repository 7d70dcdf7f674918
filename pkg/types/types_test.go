package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in      string
		want    Anchor
		wantErr bool
	}{
		{in: "TOP-LEFT", want: TopLeft},
		{in: "top_right", want: TopRight},
		{in: "BottomLeft", want: BottomLeft},
		{in: "BOTTOM_RIGHT", want: BottomRight},
		{in: "center", want: Center},
		{in: " Center ", want: Center},
		{in: "middle", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAnchor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid logo position")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestAnchorTextRoundTrip(t *testing.T) {
	for _, a := range Anchors() {
		text, err := a.MarshalText()
		require.NoError(t, err)

		var back Anchor
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, a, back)
	}

	_, err := Anchor(42).MarshalText()
	require.Error(t, err)
}

func TestParseResolutionPresets(t *testing.T) {
	tests := []struct {
		in   string
		w, h uint32
	}{
		{"QVGA", 320, 240},
		{"vga", 640, 480},
		{"SvGa", 800, 600},
		{"hd", 1280, 720},
		{"QUADVGA", 1280, 960},
		{"fullhd", 1920, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, err := ParseResolution(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.w, r.Width())
			require.Equal(t, tt.h, r.Height())
		})
	}
}

func TestParseResolutionLiteral(t *testing.T) {
	r, err := ParseResolution("1600x900")
	require.NoError(t, err)
	require.Equal(t, "1600x900", r.String())

	r, err = ParseResolution("1024X768")
	require.NoError(t, err)
	require.Equal(t, uint32(1024), r.Width())
	require.Equal(t, uint32(768), r.Height())
}

func TestParseResolutionErrors(t *testing.T) {
	tests := []struct {
		in      string
		variant string
	}{
		{"abc", VariantLiteral},
		{"", VariantLiteral},
		{"1x2x3", VariantLiteral},
		{"x720", VariantWidth},
		{"0x720", VariantWidth},
		{"-5x720", VariantWidth},
		{"1280x", VariantHeight},
		{"1280x0", VariantHeight},
		{"1280xabc", VariantHeight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseResolution(tt.in)
			require.Error(t, err)

			var resErr *ResolutionError
			require.True(t, errors.As(err, &resErr))
			require.Equal(t, tt.in, resErr.Token)
			require.Equal(t, tt.variant, resErr.Variant)
			require.Contains(t, err.Error(), `"`+tt.in+`"`)
		})
	}
}

func TestNewResolution(t *testing.T) {
	_, err := NewResolution(0, 10)
	require.Error(t, err)

	r, err := NewResolution(10, 20)
	require.NoError(t, err)
	require.False(t, r.IsZero())
	require.True(t, Resolution{}.IsZero())
}

func TestResolutionTextRoundTrip(t *testing.T) {
	var r Resolution
	require.NoError(t, r.UnmarshalText([]byte("SVGA")))

	text, err := r.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "800x600", string(text))

	require.Error(t, r.UnmarshalText([]byte("big")))
}

func TestScaledSizeExamples(t *testing.T) {
	hd, err := NewResolution(1280, 720)
	require.NoError(t, err)

	w, h, err := hd.ScaledSize(1920, 1080)
	require.NoError(t, err)
	require.InDelta(t, 1280, w, 1)
	require.InDelta(t, 720, h, 1)

	w, h, err = hd.ScaledSize(3840, 2160)
	require.NoError(t, err)
	require.Equal(t, 1280, w)
	require.Equal(t, 720, h)
	require.InDelta(t, 1.0/3.0, hd.ScaleRatio(3840, 2160), 1e-9)
}

func TestScaledSizePreservesAspectAndArea(t *testing.T) {
	sources := [][2]int{
		{4000, 3000}, {3000, 4000}, {6000, 4000}, {1080, 1920},
		{640, 480}, {123, 457}, {5184, 3456}, {100, 100}, {2048, 1536},
	}

	for _, p := range Presets() {
		for _, src := range sources {
			w, h := src[0], src[1]
			ow, oh, err := p.Resolution.ScaledSize(w, h)
			require.NoError(t, err)

			// each side is off by at most 0.5 from the exact product
			aspectErr := math.Abs(float64(ow*h - oh*w))
			require.LessOrEqual(t, aspectErr, 0.5*float64(w+h), "%s %dx%d", p.Name, w, h)

			target := float64(p.Resolution.Width()) * float64(p.Resolution.Height())
			areaErr := math.Abs(float64(ow*oh) - target)
			require.LessOrEqual(t, areaErr, 0.5*float64(ow+oh)+1, "%s %dx%d", p.Name, w, h)
		}
	}
}

func TestScaledSizeDegenerate(t *testing.T) {
	hd, _ := ParseResolution("HD")

	_, _, err := hd.ScaledSize(0, 100)
	require.Error(t, err)
	_, _, err = hd.ScaledSize(100, 0)
	require.Error(t, err)
	_, _, err = Resolution{}.ScaledSize(100, 100)
	require.Error(t, err)
}

func TestScaledSizeNeverBelowOne(t *testing.T) {
	tiny, err := NewResolution(1, 1)
	require.NoError(t, err)

	w, h, err := tiny.ScaledSize(10000, 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, w, 1)
	require.GreaterOrEqual(t, h, 1)
}
