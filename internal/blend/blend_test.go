package blend

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/motion/model"
)

func near(a, b Pixel, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}

func TestModeMirrorsModel(t *testing.T) {
	tests := []struct {
		in   model.BlendMode
		want Mode
	}{
		{model.BlendNormal, Normal},
		{model.BlendMultiply, Multiply},
		{model.BlendSoftLight, SoftLight},
		{model.BlendLuminosity, Luminosity},
		{model.BlendMode(200), Normal},
	}
	for _, tt := range tests {
		if got := FromModel(tt.in); got != tt.want {
			t.Errorf("FromModel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if Luminosity.String() != "Luminosity" || Mode(99).String() != "Unknown" {
		t.Errorf("String() = %q, %q", Luminosity.String(), Mode(99).String())
	}
}

func TestBlend(t *testing.T) {
	red := Pixel{1, 0, 0, 1}
	gray := Pixel{0.5, 0.5, 0.5, 1}
	white := Pixel{1, 1, 1, 1}
	black := Pixel{0, 0, 0, 1}
	tests := []struct {
		name     string
		src, dst Pixel
		mode     Mode
		want     Pixel
	}{
		{"normal opaque", red, gray, Normal, red},
		{"normal half", Pixel{0.5, 0, 0, 0.5}, white, Normal, Pixel{1, 0.5, 0.5, 1}},
		{"transparent source", Pixel{}, gray, Multiply, gray},
		{"empty backdrop", red, Pixel{}, Multiply, red},
		{"multiply white", red, white, Multiply, red},
		{"multiply gray", red, gray, Multiply, Pixel{0.5, 0, 0, 1}},
		{"screen black", gray, black, Screen, gray},
		{"screen gray", gray, gray, Screen, Pixel{0.75, 0.75, 0.75, 1}},
		{"darken", red, gray, Darken, Pixel{0.5, 0, 0, 1}},
		{"lighten", red, gray, Lighten, Pixel{1, 0.5, 0.5, 1}},
		{"difference", white, gray, Difference, Pixel{0.5, 0.5, 0.5, 1}},
		{"exclusion", white, gray, Exclusion, Pixel{0.5, 0.5, 0.5, 1}},
		{"overlay dark backdrop", gray, black, Overlay, black},
		{"hard light", white, gray, HardLight, white},
		{"soft light neutral", gray, Pixel{0.3, 0.3, 0.3, 1}, SoftLight, Pixel{0.3, 0.3, 0.3, 1}},
		{"color dodge", gray, gray, ColorDodge, white},
		{"color burn", gray, gray, ColorBurn, black},
		{"luminosity", red, gray, Luminosity, Pixel{0.3, 0.3, 0.3, 1}},
		{"color keeps backdrop luminance", red, gray, Color, Pixel{1, 0.5 - 0.15/0.7, 0.5 - 0.15/0.7, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.src, tt.dst, tt.mode); !near(got, tt.want, 1e-9) {
				t.Errorf("Blend() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBlendPartialAlpha(t *testing.T) {
	// Half-covered multiply over opaque gray: half the source region is
	// the multiplied color, half the backdrop.
	src := Pixel{0.5, 0, 0, 0.5}
	dst := Pixel{0.5, 0.5, 0.5, 1}
	got := Blend(src, dst, Multiply)
	want := Pixel{0.5*0.5 + 0.5*0.5, 0.25, 0.25, 1}
	if !near(got, want, 1e-9) {
		t.Errorf("Blend() = %+v, want %+v", got, want)
	}
}

func TestNonSeparableHelpers(t *testing.T) {
	c := rgb{0.2, 0.8, 0.5}
	s := setSat(c, 0.3)
	if got := sat(s); math.Abs(got-0.3) > 1e-12 {
		t.Errorf("sat(setSat()) = %v, want 0.3", got)
	}
	if s.r != 0 || s.g != 0.3 {
		t.Errorf("setSat() = %+v, want min channel 0 and max 0.3", s)
	}
	if g := setSat(rgb{0.4, 0.4, 0.4}, 0.5); g != (rgb{}) {
		t.Errorf("setSat(gray) = %+v, want zero", g)
	}
	l := setLum(c, 0.9)
	if math.Abs(lum(l)-0.9) > 1e-9 {
		t.Errorf("lum(setLum()) = %v, want 0.9", lum(l))
	}
	for _, v := range []float64{l.r, l.g, l.b} {
		if v < -1e-12 || v > 1+1e-12 {
			t.Errorf("setLum() = %+v, out of range", l)
		}
	}
}

func TestComposite(t *testing.T) {
	r := image.Rect(0, 0, 2, 1)
	dst := image.NewRGBA(r)
	src := image.NewRGBA(r)
	dst.SetRGBA(0, 0, color.RGBA{128, 128, 128, 255})
	dst.SetRGBA(1, 0, color.RGBA{128, 128, 128, 255})
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})

	Composite(dst, src, Multiply, 1)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{128, 0, 0, 255}) {
		t.Errorf("multiplied pixel = %v, want {128 0 0 255}", got)
	}
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("untouched pixel = %v", got)
	}

	before := dst.RGBAAt(0, 0)
	Composite(dst, src, Normal, 0)
	if got := dst.RGBAAt(0, 0); got != before {
		t.Errorf("zero opacity changed the pixel to %v", got)
	}

	Composite(dst, src, Normal, 0.5)
	if got := dst.RGBAAt(0, 0); got.R < 191 || got.R > 192 || got.G != 0 || got.A != 255 {
		t.Errorf("half opacity normal = %v, want about {192 0 0 255}", got)
	}
}

func BenchmarkComposite(b *testing.B) {
	r := image.Rect(0, 0, 256, 256)
	dst, src := image.NewRGBA(r), image.NewRGBA(r)
	for i := range src.Pix {
		src.Pix[i] = 200
		dst.Pix[i] = 100
	}
	for b.Loop() {
		Composite(dst, src, Screen, 0.8)
	}
}
