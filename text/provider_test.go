package text

import (
	"errors"
	"math"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/model"
)

func newTestProvider(t *testing.T, opts ...Option) *SFNTProvider {
	t.Helper()
	p := NewSFNTProvider(opts...)
	if err := p.Register("Go", goregular.TTF); err != nil {
		t.Fatalf("Register() = %v", err)
	}
	return p
}

func TestRegisterErrors(t *testing.T) {
	p := NewSFNTProvider()
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrEmptyFontData},
		{"garbage", []byte("not a font at all"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Register("Broken", tt.data)
			var fe *FontError
			if !errors.As(err, &fe) || fe.Family != "Broken" {
				t.Fatalf("Register() = %v, want *FontError", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Register() = %v, want %v", err, tt.want)
			}
		})
	}
	if len(p.Families()) != 0 {
		t.Errorf("Families() = %v, want none", p.Families())
	}
}

func TestLayoutUnknownFamily(t *testing.T) {
	p := newTestProvider(t)
	_, err := p.Layout(Request{Text: "a", Family: "Nope", Size: 12})
	if !errors.Is(err, ErrUnknownFamily) {
		t.Fatalf("Layout() = %v, want ErrUnknownFamily", err)
	}

	p.SetFallback("go")
	l, err := p.Layout(Request{Text: "a", Family: "Nope", Size: 12})
	if err != nil || l.Family != "Go" {
		t.Errorf("Layout() with fallback = %v, %v", l.Family, err)
	}
}

func TestLayoutInvalidSize(t *testing.T) {
	p := newTestProvider(t)
	for _, size := range []float64{0, -3, math.NaN(), math.Inf(1)} {
		if _, err := p.Layout(Request{Text: "a", Family: "Go", Size: size}); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Layout(size %v) = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestLayoutSingleLine(t *testing.T) {
	p := newTestProvider(t)
	l, err := p.Layout(Request{Text: "Hi", Family: "Go", Size: 40})
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if len(l.Lines) != 1 || len(l.Lines[0].Glyphs) != 2 {
		t.Fatalf("layout = %+v", l)
	}
	g0, g1 := l.Lines[0].Glyphs[0], l.Lines[0].Glyphs[1]
	if g0.Origin != (motion.Vec2{}) {
		t.Errorf("first origin = %v, want (0, 0)", g0.Origin)
	}
	if g0.Advance <= 0 || math.Abs(g1.Origin.X-g0.Advance) > 1e-9 {
		t.Errorf("second origin = %v, first advance = %v", g1.Origin, g0.Advance)
	}
	if g0.Cluster != 0 || g1.Cluster != 1 {
		t.Errorf("clusters = %d, %d", g0.Cluster, g1.Cluster)
	}
	if len(g0.Outline) == 0 {
		t.Fatal("H has no outline")
	}
	// Capitals sit above the baseline, so y is negative in layer space.
	b := g0.Outline[0].Bounds()
	if b.Min.Y >= -20 || b.Max.Y > 1 {
		t.Errorf("H bounds = %+v, want above the baseline", b)
	}
	if w := l.Lines[0].Width; math.Abs(w-(g0.Advance+g1.Advance)) > 1e-9 {
		t.Errorf("line width = %v, want %v", w, g0.Advance+g1.Advance)
	}
}

func TestLayoutLinesAndJustification(t *testing.T) {
	p := newTestProvider(t)
	base := Request{Text: "ab\rcde\r\nf\ng", Family: "Go", Size: 10, LineHeight: 15}

	left, err := p.Layout(base)
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if len(left.Lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(left.Lines))
	}
	for i, line := range left.Lines {
		if line.Baseline != float64(i)*15 {
			t.Errorf("line %d baseline = %v, want %v", i, line.Baseline, float64(i)*15)
		}
	}
	if got := left.Lines[1].Glyphs[0].Cluster; got != 3 {
		t.Errorf("cluster of c = %d, want 3", got)
	}
	if left.GlyphCount() != 7 {
		t.Errorf("GlyphCount() = %d, want 7", left.GlyphCount())
	}

	tests := []struct {
		j    model.Justification
		want func(w float64) float64
	}{
		{model.JustifyLeft, func(float64) float64 { return 0 }},
		{model.JustifyRight, func(w float64) float64 { return -w }},
		{model.JustifyCenter, func(w float64) float64 { return -w / 2 }},
	}
	for _, tt := range tests {
		req := base
		req.Justification = tt.j
		l, err := p.Layout(req)
		if err != nil {
			t.Fatalf("Layout() = %v", err)
		}
		line := l.Lines[1]
		if got, want := line.Glyphs[0].Origin.X, tt.want(line.Width); math.Abs(got-want) > 1e-9 {
			t.Errorf("justification %v: first x = %v, want %v", tt.j, got, want)
		}
	}
}

func TestLayoutDefaultLineHeightAndBaseline(t *testing.T) {
	p := newTestProvider(t, WithLineSpacing(2))
	l, err := p.Layout(Request{Text: "a\nb", Family: "Go", Size: 10, Baseline: 3})
	if err != nil {
		t.Fatalf("Layout() = %v", err)
	}
	if l.Lines[0].Baseline != 3 || l.Lines[1].Baseline != 23 {
		t.Errorf("baselines = %v, %v; want 3, 23", l.Lines[0].Baseline, l.Lines[1].Baseline)
	}
}

func TestLayoutTracking(t *testing.T) {
	p := newTestProvider(t)
	plain, _ := p.Layout(Request{Text: "ab", Family: "Go", Size: 20})
	tracked, _ := p.Layout(Request{Text: "ab", Family: "Go", Size: 20, Tracking: 100})

	dx := tracked.Lines[0].Glyphs[1].Origin.X - plain.Lines[0].Glyphs[1].Origin.X
	if math.Abs(dx-2) > 1e-9 {
		t.Errorf("tracking shift = %v, want 2", dx)
	}
	if dw := tracked.Lines[0].Width - plain.Lines[0].Width; math.Abs(dw-2) > 1e-9 {
		t.Errorf("tracked width grew by %v, want 2", dw)
	}
}

func TestOutlineCache(t *testing.T) {
	p := newTestProvider(t)
	for range 3 {
		if _, err := p.Layout(Request{Text: "aaa", Family: "Go", Size: 12}); err != nil {
			t.Fatalf("Layout() = %v", err)
		}
	}
	s := p.CacheStats()
	if s.Len != 1 || s.Misses != 1 || s.Hits != 8 {
		t.Errorf("CacheStats() = %+v, want 1 entry, 1 miss, 8 hits", s)
	}

	if err := p.Register("Go", goregular.TTF); err != nil {
		t.Fatalf("Register() = %v", err)
	}
	if p.CacheStats().Len != 0 {
		t.Error("re-registering a family kept its cached outlines")
	}
}

func TestTypesetDocument(t *testing.T) {
	p := newTestProvider(t)
	doc := model.TextDocument{Text: "Go go", FontFamily: "Go", FontSize: 24}
	paths, err := p.Typeset(doc)
	if err != nil {
		t.Fatalf("Typeset() = %v", err)
	}
	if paths.IsEmpty() {
		t.Fatal("Typeset() returned no outlines")
	}
	for i := range paths.Paths {
		if !paths.Paths[i].Closed() {
			t.Errorf("contour %d is open", i)
		}
	}

	doc.FontFamily = "Missing"
	if _, err := p.Typeset(doc); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("Typeset(unknown family) = %v", err)
	}
}

func TestProviderConcurrent(t *testing.T) {
	p := newTestProvider(t)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Layout(Request{Text: "concurrent text", Family: "Go", Size: float64(10 + i%3)})
			if err != nil {
				t.Errorf("Layout() = %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in         string
		wantLines  int
		wantStarts []int
	}{
		{"", 1, []int{0}},
		{"abc", 1, []int{0}},
		{"a\rb", 2, []int{0, 2}},
		{"a\r\nb", 2, []int{0, 3}},
		{"a\n\nb", 3, []int{0, 2, 3}},
		{"a\n", 2, []int{0, 2}},
	}
	for _, tt := range tests {
		lines, starts := splitLines([]rune(tt.in))
		if len(lines) != tt.wantLines || len(starts) != len(tt.wantStarts) {
			t.Errorf("splitLines(%q) = %d lines, starts %v", tt.in, len(lines), starts)
			continue
		}
		for i := range starts {
			if starts[i] != tt.wantStarts[i] {
				t.Errorf("splitLines(%q) starts = %v, want %v", tt.in, starts, tt.wantStarts)
				break
			}
		}
	}
}
