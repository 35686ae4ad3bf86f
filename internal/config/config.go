// Package config loads the settings of the motiondump command from a YAML
// file and command-line flags. Flags that are set explicitly override the
// file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/motion"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid setting")

// Config describes one export run.
type Config struct {
	// Output is the directory PNG files are written to.
	Output string `yaml:"output"`
	// Prefix starts every file name; the frame number follows it.
	Prefix string `yaml:"prefix"`

	// Start and End bound the exported frames. A zero End means the
	// composition's end frame.
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`

	Scale      float64 `yaml:"scale"`
	Background string  `yaml:"background"`
	Workers    int     `yaml:"workers"`

	// Font is an optional TrueType file registered for every font family
	// the composition names. The Go Regular face is used otherwise.
	Font string `yaml:"font"`

	Verbose bool `yaml:"verbose"`
}

// Default returns the settings used when neither file nor flag sets a value.
func Default() Config {
	return Config{
		Output:  ".",
		Prefix:  "frame_",
		Step:    1,
		Scale:   1,
		Workers: runtime.NumCPU(),
	}
}

// Decode reads YAML from r over c. Unknown keys are rejected.
func Decode(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode: %w", err)
	}
	return nil
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (Config, error) {
	c := Default()
	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &c); err != nil {
		return c, err
	}
	return c, nil
}

// Parse builds a Config from command-line arguments. A -config flag names a
// YAML file that is loaded first; any other flag given on the command line
// replaces the file's value.
func Parse(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var flags Config
	path := fs.String("config", "", "YAML config file")
	fs.StringVar(&flags.Output, "out", "", "output directory")
	fs.StringVar(&flags.Prefix, "prefix", "", "file name prefix")
	fs.Float64Var(&flags.Start, "start", 0, "first frame")
	fs.Float64Var(&flags.End, "end", 0, "last frame, exclusive (0 = composition end)")
	fs.Float64Var(&flags.Step, "step", 0, "frame increment")
	fs.Float64Var(&flags.Scale, "scale", 0, "output scale")
	fs.StringVar(&flags.Background, "background", "", "background colour (#rrggbb)")
	fs.IntVar(&flags.Workers, "workers", 0, "parallel renderers")
	fs.StringVar(&flags.Font, "font", "", "TrueType font file")
	fs.BoolVar(&flags.Verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	c := Default()
	if *path != "" {
		var err error
		if c, err = Load(*path); err != nil {
			return c, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			c.Output = flags.Output
		case "prefix":
			c.Prefix = flags.Prefix
		case "start":
			c.Start = flags.Start
		case "end":
			c.End = flags.End
		case "step":
			c.Step = flags.Step
		case "scale":
			c.Scale = flags.Scale
		case "background":
			c.Background = flags.Background
		case "workers":
			c.Workers = flags.Workers
		case "font":
			c.Font = flags.Font
		case "v":
			c.Verbose = flags.Verbose
		}
	})

	return c, c.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Step <= 0:
		return fmt.Errorf("%w: step %v must be positive", ErrInvalid, c.Step)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalid, c.Scale)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d must be at least 1", ErrInvalid, c.Workers)
	case c.End != 0 && c.End <= c.Start:
		return fmt.Errorf("%w: end %v must be after start %v", ErrInvalid, c.End, c.Start)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalid, err)
	}
	return nil
}

// BackgroundColor parses Background. An empty value is transparent.
func (c Config) BackgroundColor() (motion.RGBA, error) {
	if c.Background == "" {
		return motion.RGBA{}, nil
	}
	return motion.ParseHex(c.Background)
}

// Frames lists the frames to export, given the composition's end frame.
func (c Config) Frames(compEnd float64) []float64 {
	end := c.End
	if end == 0 {
		end = compEnd
	}
	var frames []float64
	for i := 0; ; i++ {
		f := c.Start + float64(i)*c.Step
		if f >= end {
			break
		}
		frames = append(frames, f)
	}
	return frames
}
