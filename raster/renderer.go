package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/internal/blend"
	"github.com/gogpu/motion/internal/stroke"
	"github.com/gogpu/motion/model"
	"github.com/gogpu/motion/scene"
)

// Renderer paints render trees. A Renderer holds no per-frame state and
// is safe for concurrent use.
type Renderer struct {
	cfg config
}

// New returns a renderer.
func New(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{cfg: cfg}
}

// NewCanvas returns a transparent image sized for tree at the renderer's
// scale.
func (r *Renderer) NewCanvas(tree *scene.RenderTree) *image.RGBA {
	w := int(math.Ceil(tree.Width * r.cfg.scale))
	h := int(math.Ceil(tree.Height * r.cfg.scale))
	return image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
}

// RenderFrame evaluates s at frame and returns the painted image.
func (r *Renderer) RenderFrame(s *scene.Scene, frame float64) *image.RGBA {
	tree := s.GeometryForFrame(frame)
	dst := r.NewCanvas(tree)
	r.Render(dst, tree)
	return dst
}

// Render paints tree into dst, scaling the composition to dst's bounds.
func (r *Renderer) Render(dst *image.RGBA, tree *scene.RenderTree) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	canvas := dst
	if b.Min != (image.Point{}) {
		canvas = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	if r.cfg.background.A > 0 {
		draw.Draw(canvas, canvas.Rect, image.NewUniform(r.cfg.background.Color()), image.Point{}, draw.Src)
	}

	base := motion.Identity()
	if tree.Width > 0 && tree.Height > 0 {
		base = motion.Scale(float64(b.Dx())/tree.Width, float64(b.Dy())/tree.Height)
	}
	for _, l := range tree.Layers {
		r.renderLayer(canvas, l, base)
	}
	if canvas != dst {
		draw.Draw(dst, b, canvas, image.Point{}, draw.Src)
	}
	motion.Logger().Debug("raster: frame painted", "frame", tree.Frame, "layers", tree.Len(), "size", b.Size())
}

// renderLayer blends one layer onto dst.
func (r *Renderer) renderLayer(dst *image.RGBA, l *scene.RenderLayer, base motion.Matrix) {
	if l.Opacity <= 0 {
		return
	}
	buf := r.layerImage(dst.Rect, l, base)
	blend.Composite(dst, buf, blend.FromModel(l.BlendMode), l.Opacity)
}

// layerImage paints a layer with its masks and matte applied, before its
// own opacity.
func (r *Renderer) layerImage(bounds image.Rectangle, l *scene.RenderLayer, base motion.Matrix) *image.RGBA {
	buf := image.NewRGBA(bounds)
	if l.Image != nil {
		r.drawImage(buf, l, base)
	}
	for i := range l.Items {
		r.drawItem(buf, &l.Items[i], base)
	}
	if len(l.Children) > 0 {
		for _, c := range l.Children {
			r.renderLayer(buf, c, base)
		}
		if l.Type == model.LayerPrecomp && l.Size.X > 0 && l.Size.Y > 0 {
			clip := motion.Rectangle(l.Size.Mul(0.5), l.Size, 0, motion.Clockwise)
			cov := rasterize(bounds, []motion.BezierPath{clip.Transform(base.Multiply(l.Matrix))})
			applyCoverage(buf, alphaToCoverage(cov))
		}
	}
	if len(l.Masks) > 0 {
		applyCoverage(buf, r.maskCoverage(bounds, l, base))
	}
	if l.Matte != model.MatteNone {
		applyCoverage(buf, r.matteCoverage(bounds, l, base))
	}
	return buf
}

// drawItem fills or strokes one render item.
func (r *Renderer) drawItem(dst *image.RGBA, it *scene.RenderItem, base motion.Matrix) {
	p := it.Paint
	opacity := p.Opacity * it.Opacity
	if opacity <= 0 {
		return
	}
	m := base.Multiply(it.Matrix)

	var geom motion.CompoundPath
	rule := p.FillRule
	if p.Stroke {
		if !(p.Width > 0) {
			return
		}
		local := it.Local
		if p.Dash != nil {
			local = p.Dash.Apply(local)
		}
		tol := r.cfg.tolerance
		if s := m.ScaleFactor(); s > 0 {
			tol /= s
		}
		style := stroke.Style{Width: p.Width, Cap: p.Cap, Join: p.Join, MiterLimit: p.MiterLimit}
		geom = stroke.Expand(local, style, tol).Transform(m)
		rule = motion.FillRuleNonZero
	} else {
		geom = it.Local.Transform(m)
	}

	cov := coverage(dst.Rect, geom, rule)
	if cov == nil {
		return
	}
	draw.DrawMask(dst, dst.Rect, paintSource(p, m, opacity), image.Point{}, cov, image.Point{}, draw.Over)
}

// drawImage resamples an image asset into the layer's size.
func (r *Renderer) drawImage(dst *image.RGBA, l *scene.RenderLayer, base motion.Matrix) {
	if r.cfg.images == nil {
		return
	}
	img, ok := r.cfg.images(l.Image)
	if !ok || img == nil {
		motion.Logger().Warn("raster: image asset unavailable", "layer", l.Name, "asset", l.Image.ID)
		return
	}
	sr := img.Bounds()
	if sr.Empty() {
		return
	}
	sx, sy := 1.0, 1.0
	if l.Size.X > 0 && l.Size.Y > 0 {
		sx, sy = l.Size.X/float64(sr.Dx()), l.Size.Y/float64(sr.Dy())
	}
	m := base.Multiply(l.Matrix).
		Multiply(motion.Scale(sx, sy)).
		Multiply(motion.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)))
	r.cfg.resample.Transform(dst, m.Aff3(), img, sr, draw.Over, nil)
}
