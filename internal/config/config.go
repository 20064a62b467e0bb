package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pixview/internal/platform"
)

// Point is an optional initial window position.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type Window struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	MinWidth    int    `yaml:"min_width"`
	MinHeight   int    `yaml:"min_height"`
	Position    *Point `yaml:"position,omitempty"` // nil lets the window manager place it
	Frameless   bool   `yaml:"frameless"`
	AlwaysOnTop bool   `yaml:"always_on_top"`
}

// Buttons maps the gesture roles to physical mouse buttons
// ("left", "middle" or "right").
type Buttons struct {
	Primary   string `yaml:"primary"`   // hand drag in free mode, double click closes
	Secondary string `yaml:"secondary"` // moves the window
	Tertiary  string `yaml:"tertiary"`  // resizes the window
}

type Config struct {
	Window        Window  `yaml:"window"`
	ZoomStep      float64 `yaml:"zoom_step"`
	FitKey        string  `yaml:"fit_key"`
	Buttons       Buttons `yaml:"buttons"`
	DoubleClickMs int     `yaml:"double_click_ms"`
	Stylesheet    string  `yaml:"stylesheet"`
	Watch         bool    `yaml:"watch"`
}

type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

func DefaultConfig() *Config {
	return &Config{
		Window: Window{
			Title:       "Image Viewer",
			Width:       720,
			Height:      300,
			MinWidth:    64,
			MinHeight:   48,
			Frameless:   true,
			AlwaysOnTop: true,
		},
		ZoomStep: 1.05,
		FitKey:   "F",
		Buttons: Buttons{
			Primary:   "left",
			Secondary: "middle",
			Tertiary:  "right",
		},
		DoubleClickMs: 400,
		Stylesheet:    "style.yaml",
	}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "pixview", "config.yaml"), nil
}

// LoadFromPath overlays the YAML file at path on the defaults and validates
// the result. Unknown keys are rejected.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := decodeStrictYAML(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse yaml: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return &ValidationError{Path: "window", Err: errors.New("width and height must be > 0")}
	}
	if c.Window.MinWidth < 1 || c.Window.MinHeight < 1 {
		return &ValidationError{Path: "window", Err: errors.New("min_width and min_height must be >= 1")}
	}
	if c.ZoomStep <= 1 {
		return &ValidationError{Path: "zoom_step", Err: errors.New("zoom_step must be > 1")}
	}
	if strings.TrimSpace(c.FitKey) == "" {
		return &ValidationError{Path: "fit_key", Err: errors.New("fit_key is required")}
	}
	if c.DoubleClickMs <= 0 {
		return &ValidationError{Path: "double_click_ms", Err: errors.New("double_click_ms must be > 0")}
	}
	seen := map[string]string{}
	for _, b := range []struct{ role, name string }{
		{"primary", c.Buttons.Primary},
		{"secondary", c.Buttons.Secondary},
		{"tertiary", c.Buttons.Tertiary},
	} {
		name := strings.ToLower(strings.TrimSpace(b.name))
		switch name {
		case "left", "middle", "right":
		default:
			return &ValidationError{Path: "buttons." + b.role, Err: fmt.Errorf("must be one of: left, middle, right (got %q)", b.name)}
		}
		if other, ok := seen[name]; ok {
			return &ValidationError{Path: "buttons." + b.role, Err: fmt.Errorf("button %q already bound to %s", name, other)}
		}
		seen[name] = b.role
	}
	return nil
}

func (c *Config) DoubleClickDuration() time.Duration {
	return time.Duration(c.DoubleClickMs) * time.Millisecond
}

// WindowConfig converts the window section into the platform description.
func (c *Config) WindowConfig() platform.WindowConfig {
	wc := platform.WindowConfig{
		Title:       c.Window.Title,
		WidthPx:     c.Window.Width,
		HeightPx:    c.Window.Height,
		MinWidthPx:  c.Window.MinWidth,
		MinHeightPx: c.Window.MinHeight,
		Frameless:   c.Window.Frameless,
		AlwaysOnTop: c.Window.AlwaysOnTop,
	}
	if c.Window.Position != nil {
		wc.X, wc.Y = c.Window.Position.X, c.Window.Position.Y
		wc.Positioned = true
	}
	return wc
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
