// Package raster paints render trees into RGBA images on the CPU.
//
// It is a reference backend: every layer is drawn into its own canvas,
// masked, matted and then blended onto the layers below it. Paths are
// filled with golang.org/x/image/vector, strokes are expanded to fills
// first, and image layers are resampled with golang.org/x/image/draw.
//
//	s, _ := scene.New(comp)
//	r := raster.New(raster.WithScale(2))
//	img := r.RenderFrame(s, 12)
package raster
