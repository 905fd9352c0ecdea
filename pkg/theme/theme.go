// Package theme loads declarative bar styling from an optional
// nativebar.yaml file: tint colors by name or hex, transparency, pill height
// overrides and native material hints, with per-bar-kind overrides on top of
// shared defaults.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/nativebar/pkg/graphics"
	"github.com/go-drift/nativebar/pkg/views"
)

// configFileName is the well-known theme file looked up by LoadOptional.
const configFileName = "nativebar.yaml"

// Config represents the optional nativebar.yaml theming configuration.
// Defaults apply to every bar kind; entries under bars override them for one
// kind, keyed by the bar type identifier (toolbar, navigationBar, tabBar,
// scrollableNavigationBar).
type Config struct {
	Defaults BarTheme            `yaml:"defaults"`
	Bars     map[string]BarTheme `yaml:"bars"`
}

// BarTheme styles one bar kind. Zero-valued fields inherit: an empty tint
// keeps the platform default, nil pointers keep the defaults entry's value.
type BarTheme struct {
	// Tint is a color name from the SVG 1.1 palette ("orangered") or a hex
	// literal ("#FF4500", "#CCFF4500" with alpha).
	Tint string `yaml:"tint,omitempty"`

	// Transparent removes the bar background.
	Transparent *bool `yaml:"transparent,omitempty"`

	// PillHeight overrides the derived capsule height.
	PillHeight *float64 `yaml:"pillHeight,omitempty"`

	// Material names a native blur material, forwarded opaquely.
	Material string `yaml:"material,omitempty"`
}

// Parse decodes a theme configuration from YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	return &cfg, nil
}

// Load reads and parses a theme file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// LoadOptional reads nativebar.yaml from dir if present. A missing file is
// not an error: it yields an empty configuration that styles nothing.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, configFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// For returns the effective theme for a bar kind: the per-kind entry merged
// over the defaults.
func (c *Config) For(barType string) BarTheme {
	merged := c.Defaults
	override, ok := c.Bars[barType]
	if !ok {
		return merged
	}
	if override.Tint != "" {
		merged.Tint = override.Tint
	}
	if override.Transparent != nil {
		merged.Transparent = override.Transparent
	}
	if override.PillHeight != nil {
		merged.PillHeight = override.PillHeight
	}
	if override.Material != "" {
		merged.Material = override.Material
	}
	return merged
}

// Apply writes the theme onto a bar configuration before construction.
// Unset theme fields leave the configuration untouched.
func (t BarTheme) Apply(cfg *views.Config) error {
	if t.Tint != "" {
		color, err := ParseColor(t.Tint)
		if err != nil {
			return err
		}
		cfg.Tint = &color
	}
	if t.Transparent != nil {
		cfg.Transparent = *t.Transparent
	}
	if t.PillHeight != nil {
		height := *t.PillHeight
		cfg.PillHeight = &height
	}
	if t.Material != "" {
		if cfg.Attributes == nil {
			cfg.Attributes = make(map[string]any, 1)
		}
		cfg.Attributes["material"] = t.Material
	}
	return nil
}

// ParseColor resolves a color literal: "#RRGGBB" or "#AARRGGBB" hex, or a
// lowercase SVG 1.1 color name such as "orangered". Named colors are opaque.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 6:
			hex = "FF" + hex
		case 8:
		default:
			return 0, fmt.Errorf("invalid hex color %q: want #RRGGBB or #AARRGGBB", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return graphics.FromPacked(uint32(v)), nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("unknown color name %q", s)
	}
	return graphics.RGBA8(named.R, named.G, named.B, named.A), nil
}
