// Command motiondump renders a frame range of a built-in demo composition
// to PNG files.
//
// Usage:
//
//	motiondump [-config motiondump.yaml] [-out dir] [-start f] [-end f] [-workers n]
//
// Flags given on the command line override the YAML file.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/internal/config"
	"github.com/gogpu/motion/raster"
	"github.com/gogpu/motion/text"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	motion.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("motiondump failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	fonts, err := loadFonts(cfg.Font)
	if err != nil {
		return err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	r := raster.New(raster.WithScale(cfg.Scale), raster.WithBackground(bg))
	comp := demoComposition()
	frames := cfg.Frames(comp.EndFrame)
	if len(frames) == 0 {
		return fmt.Errorf("no frames between %v and %v", cfg.Start, comp.EndFrame)
	}

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return err
	}
	written, err := export(ctx, exportJob{
		comp:    comp,
		fonts:   fonts,
		render:  r,
		frames:  frames,
		dir:     cfg.Output,
		prefix:  cfg.Prefix,
		workers: cfg.Workers,
	})
	if err != nil {
		return err
	}
	motion.Logger().Info("frames written", "count", written, "dir", cfg.Output)
	return nil
}

// loadFonts registers the font used for every text layer. The Go Regular
// face is used when path is empty.
func loadFonts(path string) (*text.SFNTProvider, error) {
	ttf := goregular.TTF
	if path != "" {
		var err error
		if ttf, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}
	p := text.NewSFNTProvider()
	if err := p.Register(demoFamily, ttf); err != nil {
		return nil, err
	}
	p.SetFallback(demoFamily)
	return p, nil
}
