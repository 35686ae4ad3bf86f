package raster

import (
	"image"
	"math"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/internal/stroke"
	"github.com/gogpu/motion/model"
	"github.com/gogpu/motion/scene"
)

// maskCoverage combines the masks of l in order. A first mask that
// subtracts starts from full coverage. Masks with mode None are ignored;
// when no other mask remains the result is nil.
func (r *Renderer) maskCoverage(bounds image.Rectangle, l *scene.RenderLayer, base motion.Matrix) []float64 {
	masks := make([]scene.RenderMask, 0, len(l.Masks))
	for _, k := range l.Masks {
		if k.Mode != model.MaskNone {
			masks = append(masks, k)
		}
	}
	if len(masks) == 0 {
		return nil
	}

	acc := make([]float64, bounds.Dx()*bounds.Dy())
	if masks[0].Mode == model.MaskSubtract {
		for i := range acc {
			acc[i] = 1
		}
	}
	// Mask paths and expansion are in layer space.
	m := base.Multiply(l.Matrix)

	for _, k := range masks {
		cov := r.maskShape(bounds, k, m)
		for i, a := range acc {
			c := cov[i]
			if k.Inverted {
				c = 1 - c
			}
			c *= k.Opacity
			switch k.Mode {
			case model.MaskSubtract:
				acc[i] = a * (1 - c)
			case model.MaskIntersect:
				acc[i] = a * c
			case model.MaskLighten:
				acc[i] = max(a, c)
			case model.MaskDarken:
				acc[i] = min(a, c)
			case model.MaskDifference:
				acc[i] = math.Abs(a - c)
			default:
				acc[i] = a + c*(1-a)
			}
		}
	}
	return acc
}

// maskShape returns the coverage of one mask path grown or shrunk by its
// expansion.
func (r *Renderer) maskShape(bounds image.Rectangle, k scene.RenderMask, m motion.Matrix) []float64 {
	path := k.Path.Transform(m)
	cov := alphaToCoverage(rasterize(bounds, path.Paths))
	e := k.Expansion * m.ScaleFactor()
	if e == 0 || math.IsNaN(e) {
		return cov
	}
	style := stroke.Style{Width: 2 * math.Abs(e), Join: motion.LineJoinRound, Cap: motion.LineCapRound}
	edge := alphaToCoverage(rasterize(bounds, stroke.Expand(path, style, r.cfg.tolerance).Paths))
	for i, c := range edge {
		if e > 0 {
			cov[i] = max(cov[i], c)
		} else {
			cov[i] *= 1 - c
		}
	}
	return cov
}

// matteCoverage returns the coverage l takes from its track matte. A
// missing matte source hides the layer unless the matte is inverted.
func (r *Renderer) matteCoverage(bounds image.Rectangle, l *scene.RenderLayer, base motion.Matrix) []float64 {
	n := bounds.Dx() * bounds.Dy()
	cov := make([]float64, n)
	if src := l.MatteSource; src != nil && src.Opacity > 0 {
		img := r.layerImage(bounds, src, base)
		for i := range cov {
			px := img.Pix[i*4 : i*4+4 : i*4+4]
			switch l.Matte {
			case model.MatteLuma, model.MatteInvertedLuma:
				// Luminance of the premultiplied color is its luminance
				// over black.
				cov[i] = (0.299*float64(px[0]) + 0.587*float64(px[1]) + 0.114*float64(px[2])) / 255
			default:
				cov[i] = float64(px[3]) / 255
			}
			cov[i] *= src.Opacity
		}
	}
	if l.Matte == model.MatteInvertedAlpha || l.Matte == model.MatteInvertedLuma {
		for i := range cov {
			cov[i] = 1 - cov[i]
		}
	}
	return cov
}
