package ui

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Theme struct {
	Background   color.RGBA
	CheckerLight color.RGBA
	CheckerDark  color.RGBA
	Border       color.RGBA
	OverlayText  color.RGBA
	OverlayBack  color.RGBA
	Checkerboard bool
	CheckerPx    int
	BorderPx     int
}

func DefaultTheme() Theme {
	return Theme{
		Background:   color.RGBA{0x1E, 0x1F, 0x22, 0xFF},
		CheckerLight: color.RGBA{0x3A, 0x3C, 0x40, 0xFF},
		CheckerDark:  color.RGBA{0x2C, 0x2E, 0x32, 0xFF},
		Border:       color.RGBA{0x4A, 0x5A, 0x72, 0xFF},
		OverlayText:  color.RGBA{0xF3, 0xF5, 0xF8, 0xFF},
		OverlayBack:  color.RGBA{0x00, 0x00, 0x00, 0x90},
		Checkerboard: false,
		CheckerPx:    8,
		BorderPx:     0,
	}
}

// stylesheet is the on-disk form of a Theme. Absent keys keep the default.
type stylesheet struct {
	Background   *string `yaml:"background"`
	CheckerLight *string `yaml:"checker_light"`
	CheckerDark  *string `yaml:"checker_dark"`
	Border       *string `yaml:"border"`
	OverlayText  *string `yaml:"overlay_text"`
	OverlayBack  *string `yaml:"overlay_background"`
	Checkerboard *bool   `yaml:"checkerboard"`
	CheckerSize  *int    `yaml:"checker_size"`
	BorderWidth  *int    `yaml:"border_width"`
}

// LoadStylesheet reads the stylesheet at path over the default theme. A
// missing file is not an error: ok is false and the defaults are returned.
func LoadStylesheet(path string) (theme Theme, ok bool, err error) {
	theme = DefaultTheme()
	if strings.TrimSpace(path) == "" {
		return theme, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return theme, false, nil
		}
		return theme, false, fmt.Errorf("read stylesheet: %w", err)
	}
	parsed, err := ParseStylesheet(data)
	if err != nil {
		return theme, false, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, true, nil
}

func ParseStylesheet(data []byte) (Theme, error) {
	theme := DefaultTheme()
	var s stylesheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return theme, fmt.Errorf("parse stylesheet: %w", err)
	}
	colors := []struct {
		key string
		src *string
		dst *color.RGBA
	}{
		{"background", s.Background, &theme.Background},
		{"checker_light", s.CheckerLight, &theme.CheckerLight},
		{"checker_dark", s.CheckerDark, &theme.CheckerDark},
		{"border", s.Border, &theme.Border},
		{"overlay_text", s.OverlayText, &theme.OverlayText},
		{"overlay_background", s.OverlayBack, &theme.OverlayBack},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		v, err := ParseColor(*c.src)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = v
	}
	if s.Checkerboard != nil {
		theme.Checkerboard = *s.Checkerboard
	}
	if s.CheckerSize != nil {
		if *s.CheckerSize < 1 {
			return DefaultTheme(), errors.New("checker_size must be >= 1")
		}
		theme.CheckerPx = *s.CheckerSize
	}
	if s.BorderWidth != nil {
		if *s.BorderWidth < 0 {
			return DefaultTheme(), errors.New("border_width must be >= 0")
		}
		theme.BorderPx = *s.BorderWidth
	}
	return theme, nil
}

// ParseColor accepts #RRGGBB and #RRGGBBAA.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "FF"
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(u >> 24), G: uint8(u >> 16), B: uint8(u >> 8), A: uint8(u)}, nil
}
