// Package text lays out text documents as glyph outlines.
//
// [SFNTProvider] shapes text with go-text/typesetting and extracts glyph
// outlines from TrueType and OpenType fonts with golang.org/x/image/font/sfnt.
// It satisfies node.Typesetter, so it can be handed to a scene directly:
//
//	fonts := text.NewSFNTProvider()
//	if err := fonts.Register("Go", goregular.TTF); err != nil {
//	    return err
//	}
//	fonts.SetFallback("Go")
//	s, err := scene.New(comp, scene.WithGlyphProvider(fonts))
//
// Outlines are in layer space with y growing downward and the first
// baseline at y = 0.
package text
