package scene

import "github.com/gogpu/motion/node"

// Option configures a Scene during creation.
//
// Example:
//
//	s, err := scene.New(comp, scene.WithGlyphProvider(provider))
type Option func(*options)

// options holds optional configuration for Scene creation.
type options struct {
	typesetter node.Typesetter
	maxDepth   int
}

// defaultOptions returns the default scene options.
func defaultOptions() options {
	return options{maxDepth: 32}
}

// WithGlyphProvider sets the typesetter used by text layers. Without
// one, text layers render empty and log a warning.
func WithGlyphProvider(ts node.Typesetter) Option {
	return func(o *options) {
		o.typesetter = ts
	}
}

// WithMaxPrecompDepth bounds how deeply precomp layers are expanded.
// Deeper precomps render empty. The default is 32.
func WithMaxPrecompDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}
