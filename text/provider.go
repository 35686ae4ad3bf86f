package text

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/internal/cache"
	"github.com/gogpu/motion/model"
)

// face is one registered font.
type face struct {
	family  string
	outline *sfnt.Font

	// shape is nil when go-text cannot read the font; glyphs then map
	// rune by rune through the cmap.
	shape *gotext.Font
}

// SFNTProvider lays out text with registered TrueType and OpenType fonts.
//
// SFNTProvider is safe for concurrent use. Parsed fonts are read-only and
// shared; shapers and sfnt buffers are pooled per call.
type SFNTProvider struct {
	cfg config

	mu       sync.RWMutex
	faces    map[string]*face
	fallback string

	outlines *cache.Cache[glyphKey, []motion.BezierPath]
	shapers  sync.Pool
	buffers  sync.Pool
}

// NewSFNTProvider returns a provider with no fonts registered.
func NewSFNTProvider(opts ...Option) *SFNTProvider {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SFNTProvider{
		cfg:      cfg,
		faces:    make(map[string]*face),
		outlines: cache.New[glyphKey, []motion.BezierPath](cfg.cacheLimit),
		shapers:  sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
		buffers:  sync.Pool{New: func() any { return &sfnt.Buffer{} }},
	}
}

// familyKey normalizes a family name for lookup.
func familyKey(family string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(family)))
}

// Register parses ttf and makes it available as family. Registering a
// family again replaces it.
func (p *SFNTProvider) Register(family string, ttf []byte) error {
	if len(ttf) == 0 {
		return &FontError{Family: family, Err: ErrEmptyFontData}
	}
	outline, err := opentype.Parse(ttf)
	if err != nil {
		return &FontError{Family: family, Err: fmt.Errorf("parse: %w", err)}
	}
	f := &face{family: family, outline: outline}
	if gf, err := gotext.ParseTTF(bytes.NewReader(ttf)); err == nil {
		f.shape = gf.Font
	} else {
		motion.Logger().Warn("text: font not shapeable, using cmap layout", "family", family, "err", err)
	}

	key := familyKey(family)
	p.mu.Lock()
	_, replaced := p.faces[key]
	p.faces[key] = f
	p.mu.Unlock()
	if replaced {
		p.outlines.Clear()
	}
	motion.Logger().Debug("text: font registered", "family", family, "glyphs", outline.NumGlyphs())
	return nil
}

// SetFallback names the family used when a request names an unknown one.
func (p *SFNTProvider) SetFallback(family string) {
	p.mu.Lock()
	p.fallback = familyKey(family)
	p.mu.Unlock()
}

// Families returns the registered family names.
func (p *SFNTProvider) Families() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.faces))
	for _, f := range p.faces {
		out = append(out, f.family)
	}
	return out
}

// CacheStats returns the outline cache counters.
func (p *SFNTProvider) CacheStats() cache.Stats {
	return p.outlines.Stats()
}

func (p *SFNTProvider) lookup(family string) (*face, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if f, ok := p.faces[familyKey(family)]; ok {
		return f, nil
	}
	if f, ok := p.faces[p.fallback]; ok && p.fallback != "" {
		motion.Logger().Warn("text: unknown font, using fallback", "family", family, "fallback", f.family)
		return f, nil
	}
	return nil, &FontError{Family: family, Err: ErrUnknownFamily}
}

// Typeset lays out doc and returns its glyph outlines.
func (p *SFNTProvider) Typeset(doc model.TextDocument) (motion.CompoundPath, error) {
	l, err := p.Layout(RequestFor(doc))
	if err != nil {
		return motion.CompoundPath{}, err
	}
	return l.Paths(), nil
}

// Layout shapes and positions req. Lines break at \r and \n; the first
// baseline is at y = Baseline and following lines step down by the line
// height.
func (p *SFNTProvider) Layout(req Request) (Layout, error) {
	if !(req.Size > 0) || math.IsInf(req.Size, 0) {
		return Layout{}, &FontError{Family: req.Family, Err: fmt.Errorf("%w: %v", ErrInvalidSize, req.Size)}
	}
	f, err := p.lookup(req.Family)
	if err != nil {
		return Layout{}, err
	}

	lineHeight := req.LineHeight
	if lineHeight <= 0 {
		lineHeight = req.Size * p.cfg.lineSpacing
	}
	tracking := req.Tracking / 1000 * req.Size

	buf := p.buffers.Get().(*sfnt.Buffer)
	defer p.buffers.Put(buf)

	runes := []rune(norm.NFC.String(req.Text))
	lines, starts := splitLines(runes)
	out := Layout{Family: f.family, Lines: make([]Line, 0, len(lines))}
	for i, line := range lines {
		y := req.Baseline + float64(i)*lineHeight
		glyphs := p.shapeLine(f, buf, line, req.Size)

		x, width := 0.0, 0.0
		for j := range glyphs {
			glyphs[j].Cluster += starts[i]
			glyphs[j].Origin = motion.V2(x+glyphs[j].Origin.X, y+glyphs[j].Origin.Y)
			x += glyphs[j].Advance + tracking
		}
		if len(glyphs) > 0 {
			width = x - tracking
		}

		dx := justify(req.Justification, width)
		for j := range glyphs {
			glyphs[j].Origin.X += dx
			glyphs[j].Outline = p.outline(f, buf, glyphs[j].ID, req.Size, glyphs[j].Origin)
		}
		out.Lines = append(out.Lines, Line{Glyphs: glyphs, Width: width, Baseline: y})
	}
	return out, nil
}

// shapeLine returns the glyphs of one line with Origin holding the
// shaping offsets relative to the pen position.
func (p *SFNTProvider) shapeLine(f *face, buf *sfnt.Buffer, runes []rune, size float64) []Glyph {
	if len(runes) == 0 {
		return nil
	}
	if f.shape == nil {
		return cmapLine(f.outline, buf, runes, size)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.shape),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(p.cfg.language),
	}
	hb := p.shapers.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	p.shapers.Put(hb)

	glyphs := make([]Glyph, 0, len(output.Glyphs))
	for _, g := range output.Glyphs {
		glyphs = append(glyphs, Glyph{
			ID:      uint16(g.GlyphID), //nolint:gosec // sfnt glyph indices are 16-bit
			Cluster: g.TextIndex(),
			// Shaping offsets are y-up; layout space is y-down.
			Origin:  motion.V2(fixedToFloat(g.XOffset), -fixedToFloat(g.YOffset)),
			Advance: fixedToFloat(g.Advance),
		})
	}
	return glyphs
}

// cmapLine maps runes to glyphs one to one without shaping.
func cmapLine(f *sfnt.Font, buf *sfnt.Buffer, runes []rune, size float64) []Glyph {
	ppem := floatToFixed(size)
	glyphs := make([]Glyph, 0, len(runes))
	for i, r := range runes {
		gid, err := f.GlyphIndex(buf, r)
		if err != nil {
			continue
		}
		glyphs = append(glyphs, Glyph{ID: uint16(gid), Cluster: i, Advance: glyphAdvance(f, buf, gid, ppem)})
	}
	return glyphs
}

// outline returns the cached outline of gid placed at origin.
func (p *SFNTProvider) outline(f *face, buf *sfnt.Buffer, gid uint16, size float64, origin motion.Vec2) []motion.BezierPath {
	key := glyphKey{family: familyKey(f.family), gid: sfnt.GlyphIndex(gid), size: floatToFixed(size)}
	paths, ok := p.outlines.Get(key)
	if !ok {
		var err error
		paths, err = loadOutline(f.outline, buf, key.gid, key.size)
		if err != nil {
			motion.Logger().Debug("text: glyph has no outline", "family", f.family, "glyph", gid, "err", err)
			paths = nil
		}
		p.outlines.Set(key, paths)
		motion.Logger().Debug("text: glyph cache miss", "family", f.family, "glyph", gid)
	}
	if len(paths) == 0 {
		return nil
	}
	m := motion.Translate(origin.X, origin.Y)
	out := make([]motion.BezierPath, len(paths))
	for i := range paths {
		out[i] = paths[i].Transform(m)
	}
	return out
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
