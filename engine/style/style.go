// Package style resolves a card family's built-in option table against
// caller-supplied extras into one immutable configuration record.
package style

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// OverlayLayer names one of the tintable HUD overlay layers.
type OverlayLayer string

const (
	LayerBottom     OverlayLayer = "bottom"
	LayerMiddle     OverlayLayer = "middle"
	LayerTop        OverlayLayer = "top"
	LayerRectangles OverlayLayer = "rectangles"
)

// OverlayLayers is the paint order of the tintable layers, bottom first.
var OverlayLayers = []OverlayLayer{LayerBottom, LayerMiddle, LayerTop, LayerRectangles}

// Element is the content assigned to a frame slot.
type Element string

const (
	ElementOmit  Element = "omit"
	ElementIndex Element = "index"
	ElementLogo  Element = "logo"
)

// OverlayStyle is the tint applied to one overlay layer.
type OverlayStyle struct {
	Color color.NRGBA
	Alpha float64
}

// Config is a fully-resolved style record. It is built once per request
// and never mutated afterwards.
type Config struct {
	FontFile         string
	FontColor        color.NRGBA
	AutoColor        bool // FontColor delegated to the logo analyzer
	FontSize         float64
	StrokeWidth      float64
	StrokeColor      color.NRGBA
	VerticalShift    int
	InterlineSpacing int
	Kerning          float64
	Separator        string

	OmitGradient  bool
	OverrideBW    string // "", "bw" or "color"
	OverrideStyle string // "", "play" or "rewind"

	Background       color.NRGBA
	EpisodeTextColor color.NRGBA

	TopElement    Element
	MiddleElement Element
	BottomElement Element
	FrameColor    color.NRGBA
	FrameWidth    int
	BlurEdges     bool
	LogoSize      float64

	Overlays map[OverlayLayer]OverlayStyle
}

// UnrecognizedOptionError reports an extras key outside the card family's
// recognized option set. Resolution fails fast on the first such key so
// caller typos never reach rendering.
type UnrecognizedOptionError struct {
	Key string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized style option %q", e.Key)
}

// applyFn parses a raw extras value into its slot on the config.
type applyFn func(cfg *Config, value string) error

// options is the full vocabulary across all card families. Each family
// recognizes a subset; see Resolve.
var options = map[string]applyFn{
	"omit_gradient": func(cfg *Config, v string) error {
		return parseBool(v, &cfg.OmitGradient)
	},
	"override_bw": func(cfg *Config, v string) error {
		return parseEnum(v, &cfg.OverrideBW, "bw", "color")
	},
	"override_style": func(cfg *Config, v string) error {
		return parseEnum(v, &cfg.OverrideStyle, "play", "rewind")
	},
	"font.file": func(cfg *Config, v string) error {
		cfg.FontFile = v
		return nil
	},
	"font.color": func(cfg *Config, v string) error {
		if strings.EqualFold(v, "auto") {
			cfg.AutoColor = true
			return nil
		}
		cfg.AutoColor = false
		return parseColor(v, &cfg.FontColor)
	},
	"font.size": func(cfg *Config, v string) error {
		return parseScalar(v, &cfg.FontSize)
	},
	"font.stroke_width": func(cfg *Config, v string) error {
		return parseScalar(v, &cfg.StrokeWidth)
	},
	"font.vertical_shift": func(cfg *Config, v string) error {
		return parseInt(v, &cfg.VerticalShift)
	},
	"font.interline_spacing": func(cfg *Config, v string) error {
		return parseInt(v, &cfg.InterlineSpacing)
	},
	"font.kerning": func(cfg *Config, v string) error {
		return parseScalar(v, &cfg.Kerning)
	},
	"stroke.color": func(cfg *Config, v string) error {
		return parseColor(v, &cfg.StrokeColor)
	},
	"separator": func(cfg *Config, v string) error {
		cfg.Separator = v
		return nil
	},
	"background": func(cfg *Config, v string) error {
		return parseColor(v, &cfg.Background)
	},
	"episode_text.color": func(cfg *Config, v string) error {
		return parseColor(v, &cfg.EpisodeTextColor)
	},
	"top_element": func(cfg *Config, v string) error {
		return parseElement(v, &cfg.TopElement, false)
	},
	"middle_element": func(cfg *Config, v string) error {
		return parseElement(v, &cfg.MiddleElement, true)
	},
	"bottom_element": func(cfg *Config, v string) error {
		return parseElement(v, &cfg.BottomElement, false)
	},
	"frame.color": func(cfg *Config, v string) error {
		return parseColor(v, &cfg.FrameColor)
	},
	"frame.width": func(cfg *Config, v string) error {
		if err := parseInt(v, &cfg.FrameWidth); err != nil {
			return err
		}
		if cfg.FrameWidth < 1 {
			cfg.FrameWidth = 1
		}
		return nil
	},
	"blur_edges": func(cfg *Config, v string) error {
		return parseBool(v, &cfg.BlurEdges)
	},
	"logo.size": func(cfg *Config, v string) error {
		return parseScalar(v, &cfg.LogoSize)
	},
}

func init() {
	for _, layer := range OverlayLayers {
		layer := layer
		options["overlay_"+string(layer)+"_color"] = func(cfg *Config, v string) error {
			overlay := cfg.Overlays[layer]
			if err := parseColor(v, &overlay.Color); err != nil {
				return err
			}
			cfg.Overlays[layer] = overlay
			return nil
		}
		options["overlay_"+string(layer)+"_alpha"] = func(cfg *Config, v string) error {
			overlay := cfg.Overlays[layer]
			if err := parseScalar(v, &overlay.Alpha); err != nil {
				return err
			}
			// Out-of-range alphas are clamped rather than rejected.
			if overlay.Alpha < 0 {
				overlay.Alpha = 0
			} else if overlay.Alpha > 1 {
				overlay.Alpha = 1
			}
			cfg.Overlays[layer] = overlay
			return nil
		}
	}
}

// Resolve merges extras over the family defaults. recognized is the
// family's closed option vocabulary; any extras key outside it fails
// resolution with an UnrecognizedOptionError naming the key. Resolve is a
// pure function of its inputs: identical inputs yield identical configs.
func Resolve(defaults Config, recognized []string, extras map[string]string) (Config, error) {
	cfg := defaults
	cfg.Overlays = make(map[OverlayLayer]OverlayStyle, len(defaults.Overlays))
	for layer, overlay := range defaults.Overlays {
		cfg.Overlays[layer] = overlay
	}

	allowed := make(map[string]bool, len(recognized))
	for _, key := range recognized {
		allowed[key] = true
	}

	// Sorted iteration keeps error reporting deterministic.
	keys := make([]string, 0, len(extras))
	for key := range extras {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !allowed[key] {
			return Config{}, &UnrecognizedOptionError{Key: key}
		}
		apply, ok := options[key]
		if !ok {
			return Config{}, &UnrecognizedOptionError{Key: key}
		}
		if err := apply(&cfg, extras[key]); err != nil {
			return Config{}, fmt.Errorf("option %q: %w", key, err)
		}
	}

	if err := validateElements(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validateElements rejects duplicate non-omit frame slot assignments.
func validateElements(cfg *Config) error {
	if cfg.TopElement == "" && cfg.MiddleElement == "" && cfg.BottomElement == "" {
		return nil
	}
	if cfg.TopElement != ElementOmit &&
		(cfg.TopElement == cfg.MiddleElement || cfg.TopElement == cfg.BottomElement) {
		return fmt.Errorf("frame elements: %q assigned to more than one slot", cfg.TopElement)
	}
	if cfg.MiddleElement != ElementOmit && cfg.MiddleElement == cfg.BottomElement {
		return fmt.Errorf("frame elements: %q assigned to more than one slot", cfg.MiddleElement)
	}
	return nil
}

func parseBool(v string, dst *bool) error {
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("expected boolean, got %q", v)
	}
	*dst = parsed
	return nil
}

func parseInt(v string, dst *int) error {
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("expected integer, got %q", v)
	}
	*dst = parsed
	return nil
}

func parseScalar(v string, dst *float64) error {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("expected number, got %q", v)
	}
	*dst = parsed
	return nil
}

func parseEnum(v string, dst *string, allowed ...string) error {
	normalized := strings.ToLower(strings.TrimSpace(v))
	for _, candidate := range allowed {
		if normalized == candidate {
			*dst = normalized
			return nil
		}
	}
	return fmt.Errorf("expected one of %v, got %q", allowed, v)
}

func parseElement(v string, dst *Element, middle bool) error {
	normalized := Element(strings.ToLower(strings.TrimSpace(v)))
	switch normalized {
	case ElementOmit, ElementLogo:
	case ElementIndex:
		if middle {
			return fmt.Errorf("middle element must be %q or %q, got %q", ElementOmit, ElementLogo, v)
		}
	default:
		return fmt.Errorf("expected %q, %q or %q, got %q", ElementOmit, ElementIndex, ElementLogo, v)
	}
	*dst = normalized
	return nil
}

func parseColor(v string, dst *color.NRGBA) error {
	parsed, err := ParseColor(v)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}

// namedColors covers the color words the original option tables used.
var namedColors = map[string]color.NRGBA{
	"white":       {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	"black":       {A: 0xFF},
	"transparent": {},
}

// ParseColor parses "#RGB", "#RRGGBB", "#RRGGBBAA" or a small set of
// named colors.
func ParseColor(v string) (color.NRGBA, error) {
	normalized := strings.ToLower(strings.TrimSpace(v))
	if named, ok := namedColors[normalized]; ok {
		return named, nil
	}
	hex := strings.TrimPrefix(normalized, "#")
	if hex == normalized {
		return color.NRGBA{}, fmt.Errorf("expected color, got %q", v)
	}
	var r, g, b, a uint64
	var err error
	a = 0xFF
	switch len(hex) {
	case 3:
		if r, g, b, err = parseHex3(hex); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q", v)
		}
	case 6, 8:
		if r, err = strconv.ParseUint(hex[0:2], 16, 8); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q", v)
		}
		if g, err = strconv.ParseUint(hex[2:4], 16, 8); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q", v)
		}
		if b, err = strconv.ParseUint(hex[4:6], 16, 8); err != nil {
			return color.NRGBA{}, fmt.Errorf("bad color %q", v)
		}
		if len(hex) == 8 {
			if a, err = strconv.ParseUint(hex[6:8], 16, 8); err != nil {
				return color.NRGBA{}, fmt.Errorf("bad color %q", v)
			}
		}
	default:
		return color.NRGBA{}, fmt.Errorf("bad color %q", v)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

func parseHex3(hex string) (r, g, b uint64, err error) {
	if r, err = strconv.ParseUint(hex[0:1], 16, 8); err != nil {
		return
	}
	if g, err = strconv.ParseUint(hex[1:2], 16, 8); err != nil {
		return
	}
	if b, err = strconv.ParseUint(hex[2:3], 16, 8); err != nil {
		return
	}
	r, g, b = r*17, g*17, b*17
	return
}
