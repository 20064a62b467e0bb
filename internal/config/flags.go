package config

import (
	"flag"
	"fmt"
	"io"
)

// Options is the result of parsing the command line: the effective config
// and the optional image path given as the first positional argument.
type Options struct {
	ImagePath string
	Config    *Config
}

// ParseArgs parses args (without the program name), loads the config file
// and overlays the flags that were explicitly set.
func ParseArgs(args []string, stderr io.Writer) (*Options, error) {
	fs := flag.NewFlagSet("pixview", flag.ContinueOnError)
	if stderr != nil {
		fs.SetOutput(stderr)
	}
	configPath := fs.String("config", "", "Path to the config file (default ~/.config/pixview/config.yaml)")
	style := fs.String("style", "", "Path to the stylesheet")
	width := fs.Int("width", 0, "Initial window width")
	height := fs.Int("height", 0, "Initial window height")
	x := fs.Int("x", 0, "Initial window x position")
	y := fs.Int("y", 0, "Initial window y position")
	watch := fs.Bool("watch", false, "Reload the image when the file changes")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: pixview [flags] [image]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	path := *configPath
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	cfg, err := LoadFromPath(path)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "style":
			cfg.Stylesheet = *style
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "x":
			if cfg.Window.Position == nil {
				cfg.Window.Position = &Point{}
			}
			cfg.Window.Position.X = *x
		case "y":
			if cfg.Window.Position == nil {
				cfg.Window.Position = &Point{}
			}
			cfg.Window.Position.Y = *y
		case "watch":
			cfg.Watch = *watch
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Options{ImagePath: fs.Arg(0), Config: cfg}, nil
}
