package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/model"
	"github.com/gogpu/motion/raster"
	"github.com/gogpu/motion/scene"
	"github.com/gogpu/motion/text"
)

type exportJob struct {
	comp    *model.Composition
	fonts   *text.SFNTProvider
	render  *raster.Renderer
	frames  []float64
	dir     string
	prefix  string
	workers int
}

// export renders every frame of job and returns the number of files
// written. Each worker owns one scene; frames are dealt round-robin.
func export(ctx context.Context, job exportJob) (int, error) {
	workers := max(1, min(job.workers, len(job.frames)))
	var written atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		g.Go(func() error {
			s, err := scene.New(job.comp, scene.WithGlyphProvider(job.fonts))
			if err != nil {
				return err
			}
			for i := w; i < len(job.frames); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(job.dir, fmt.Sprintf("%s%04d.png", job.prefix, i))
				if err := writeFrame(path, job.render, s, job.frames[i]); err != nil {
					return err
				}
				written.Add(1)
			}
			motion.Logger().Debug("worker done", "worker", w)
			return nil
		})
	}
	err := g.Wait()
	return int(written.Load()), err
}

func writeFrame(path string, r *raster.Renderer, s *scene.Scene, frame float64) error {
	img := r.RenderFrame(s, frame)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode frame %v: %w", frame, err)
	}
	return f.Close()
}
