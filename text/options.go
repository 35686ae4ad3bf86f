package text

// Option configures an SFNTProvider.
type Option func(*config)

// config holds configuration for SFNTProvider.
type config struct {
	cacheLimit  int
	language    string
	lineSpacing float64
}

// defaultConfig returns the default provider configuration.
func defaultConfig() config {
	return config{
		cacheLimit:  4096,
		language:    "en",
		lineSpacing: 1.2,
	}
}

// WithCacheLimit sets the maximum number of cached glyph outlines.
// A value of 0 removes the limit.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = n
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "tr").
func WithLanguage(lang string) Option {
	return func(c *config) {
		c.language = lang
	}
}

// WithLineSpacing sets the line height, as a multiple of the font size,
// used when a request does not give one. The default is 1.2.
func WithLineSpacing(factor float64) Option {
	return func(c *config) {
		if factor > 0 {
			c.lineSpacing = factor
		}
	}
}
