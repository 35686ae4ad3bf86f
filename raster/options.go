package raster

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/model"
)

// ImageSource returns the pixels of an image asset. It reports false when
// the asset is unavailable.
type ImageSource func(asset *model.Image) (image.Image, bool)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	scale      float64
	tolerance  float64
	background motion.RGBA
	images     ImageSource
	resample   draw.Transformer
}

func defaultConfig() config {
	return config{
		scale:     1,
		tolerance: 0.25,
		resample:  draw.BiLinear,
	}
}

// WithScale sets the ratio of output pixels to composition units used by
// RenderFrame. Non-positive values are ignored.
func WithScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithTolerance sets the curve flattening tolerance for strokes, in output
// pixels.
func WithTolerance(t float64) Option {
	return func(c *config) {
		if t > 0 {
			c.tolerance = t
		}
	}
}

// WithBackground fills the canvas with col before painting.
func WithBackground(col motion.RGBA) Option {
	return func(c *config) {
		c.background = col
	}
}

// WithImages sets the source of image layer pixels. Without one, image
// layers paint nothing.
func WithImages(src ImageSource) Option {
	return func(c *config) {
		c.images = src
	}
}

// WithResampler sets the interpolator used for image layers.
func WithResampler(t draw.Transformer) Option {
	return func(c *config) {
		if t != nil {
			c.resample = t
		}
	}
}
