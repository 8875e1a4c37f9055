// Package variant defines the closed set of card families and selects a
// concrete presentation for one render request.
package variant

import (
	"image/color"

	"github.com/CollinHeist/titlecard-engine/engine/style"
)

// ID identifies one card family.
type ID string

const (
	Standard     ID = "standard"
	AllBold      ID = "all-bold"
	Slim         ID = "slim"
	Barebones    ID = "barebones"
	Absolute     ID = "absolute"
	TitleOnly    ID = "title-only"
	StarWars     ID = "star-wars"
	Logo         ID = "logo"
	GradientLogo ID = "gradient-logo"
	ColorMatch   ID = "color-match"
	Retro        ID = "retro"
	SciFi        ID = "sci-fi"
	TintedFrame  ID = "tinted-frame"
	Broadcast    ID = "broadcast"
	Blacklist    ID = "blacklist"
)

// Anchor is the title block's attachment edge.
type Anchor int

const (
	AnchorSouth Anchor = iota
	AnchorSouthwest
	AnchorNorthwest
)

// IndexStyle places the season/episode text block.
type IndexStyle int

const (
	IndexNone IndexStyle = iota
	IndexCentered
	IndexWest
	IndexSouthwest
	IndexNortheast
	IndexUnderTitle
)

// GradientKind selects the procedural gradient overlay.
type GradientKind int

const (
	GradientNone GradientKind = iota
	GradientBottom
	GradientLeft
)

// LogoPlacement positions the logo block.
type LogoPlacement int

const (
	LogoNone LogoPlacement = iota
	LogoTopCenter
	LogoNorthwest
	LogoFrame
)

// Descriptor is a card family's fixed layout and paint parameterization.
// Descriptors are process-lifetime constants; never mutate one.
type Descriptor struct {
	ID ID

	// Title shaping and placement.
	TitleAnchor      Anchor
	TitleInsetX      int // horizontal inset from the anchored edge
	TitleShiftY      int // base vertical shift from the anchored edge
	MaxLineWidth     int // characters per line before wrapping
	MaxLineCount     int
	TopHeavy         bool
	TitleSizePt      float64
	StrokeBase       float64 // stroke pixels at stroke_width scalar 1.0
	UppercaseTitle   bool
	InterlineBase    int // base interline adjustment, pixels
	LineHeightFactor float64

	// Index (season/episode) text. Inset and shift interpretation depends
	// on the style: from-center for centered/west styles, from the edge
	// for corner styles.
	Index       IndexStyle
	IndexSizePt float64
	IndexInsetX int
	IndexShiftY int
	UsesSeason  bool

	// Paint features.
	Gradient       GradientKind
	GradientAlpha  float64
	LogoPlacement  LogoPlacement
	RequiresLogo   bool
	FlatBackground bool
	WatchedStyling bool
	Randomized     bool
	Frame          bool
	HUD            bool

	Defaults   style.Config
	Recognized []string
}

// Shared font option surface recognized by every family.
var fontOptions = []string{
	"font.file", "font.color", "font.size", "font.stroke_width",
	"font.vertical_shift", "font.interline_spacing", "font.kerning",
}

func recognized(extra ...string) []string {
	keys := make([]string, 0, len(fontOptions)+len(extra))
	keys = append(keys, fontOptions...)
	keys = append(keys, extra...)
	return keys
}

var (
	white     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black     = color.NRGBA{A: 0xFF}
	offWhite  = color.NRGBA{R: 0xEB, G: 0xEB, B: 0xEB, A: 0xFF}
	deepTeal  = color.NRGBA{R: 0x06, G: 0x2A, B: 0x40, A: 0xFF}
	starGold  = color.NRGBA{R: 0xDA, G: 0xC2, B: 0x86, A: 0xFF}
	bloodRed  = color.NRGBA{R: 0xB1, G: 0x15, B: 0x0A, A: 0xFF}
	hudCyan   = color.NRGBA{R: 0x3A, G: 0xFF, B: 0xFF, A: 0xFF}
	hudPink   = color.NRGBA{R: 0xFF, G: 0x31, B: 0xFF, A: 0xFF}
	hudGreen  = color.NRGBA{R: 0x66, G: 0xD3, B: 0x7A, A: 0xFF}
	softWhite = color.NRGBA{R: 0xCF, G: 0xCF, B: 0xCF, A: 0xFF}
)

func baseDefaults(fontColor color.NRGBA) style.Config {
	return style.Config{
		FontColor:   fontColor,
		FontSize:    1.0,
		StrokeWidth: 1.0,
		StrokeColor: black,
		Kerning:     1.0,
		Separator:   "-",
		LogoSize:    1.0,
	}
}

var registry = map[ID]Descriptor{}

func register(d Descriptor) {
	registry[d.ID] = d
}

// Lookup returns the descriptor for the given family.
func Lookup(id ID) (Descriptor, bool) {
	d, ok := registry[id]
	return d, ok
}

// IDs returns every registered family identifier.
func IDs() []ID {
	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	return ids
}

func init() {
	standardStroke := baseDefaults(white)
	standardStroke.StrokeColor = deepTeal

	register(Descriptor{
		ID:               Standard,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      145,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      180,
		StrokeBase:       4.0,
		LineHeightFactor: 1.1,
		Index:            IndexCentered,
		IndexSizePt:      85,
		IndexShiftY:      800,
		UsesSeason:       true,
		Gradient:         GradientBottom,
		GradientAlpha:    1.0,
		Defaults:         standardStroke,
		Recognized:       recognized("separator", "stroke.color"),
	})

	register(Descriptor{
		ID:               AllBold,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      145,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      180,
		StrokeBase:       3.0,
		LineHeightFactor: 1.1,
		Index:            IndexCentered,
		IndexSizePt:      68,
		IndexShiftY:      697,
		UsesSeason:       true,
		Gradient:         GradientBottom,
		GradientAlpha:    1.0,
		Defaults:         baseDefaults(white),
		Recognized:       recognized("separator"),
	})

	register(Descriptor{
		ID:               Slim,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      125,
		MaxLineWidth:     45,
		MaxLineCount:     3,
		TitleSizePt:      100,
		StrokeBase:       3.0,
		LineHeightFactor: 1.1,
		Index:            IndexCentered,
		IndexSizePt:      68,
		IndexShiftY:      697,
		UsesSeason:       true,
		Gradient:         GradientBottom,
		GradientAlpha:    0.8,
		Defaults:         baseDefaults(white),
		Recognized:       recognized("separator", "omit_gradient"),
	})

	register(Descriptor{
		ID:               Barebones,
		TitleAnchor:      AnchorNorthwest,
		TitleInsetX:      320,
		TitleShiftY:      829,
		MaxLineWidth:     16,
		MaxLineCount:     5,
		TopHeavy:         true,
		TitleSizePt:      150,
		StrokeBase:       3.0,
		LineHeightFactor: 1.05,
		Index:            IndexWest,
		IndexSizePt:      53,
		IndexInsetX:      325,
		IndexShiftY:      -140,
		Defaults:         baseDefaults(white),
		Recognized:       recognized(),
	})

	register(Descriptor{
		ID:               Absolute,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      145,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      180,
		StrokeBase:       4.0,
		LineHeightFactor: 1.1,
		Index:            IndexWest,
		IndexSizePt:      120,
		IndexInsetX:      100,
		IndexShiftY:      -750,
		Gradient:         GradientBottom,
		GradientAlpha:    1.0,
		Defaults:         baseDefaults(white),
		Recognized:       recognized(),
	})

	register(Descriptor{
		ID:               TitleOnly,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      145,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      180,
		StrokeBase:       4.0,
		LineHeightFactor: 1.1,
		Index:            IndexNone,
		Gradient:         GradientBottom,
		GradientAlpha:    1.0,
		Defaults:         baseDefaults(white),
		Recognized:       recognized(),
	})

	register(Descriptor{
		ID:               StarWars,
		TitleAnchor:      AnchorNorthwest,
		TitleInsetX:      320,
		TitleShiftY:      1529,
		MaxLineWidth:     16,
		MaxLineCount:     5,
		TopHeavy:         true,
		TitleSizePt:      124,
		StrokeBase:       0,
		LineHeightFactor: 1.05,
		Index:            IndexNone,
		Gradient:         GradientBottom,
		GradientAlpha:    0.9,
		Defaults:         baseDefaults(starGold),
		Recognized:       recognized(),
	})

	logoDefaults := baseDefaults(white)
	logoDefaults.Background = black
	register(Descriptor{
		ID:               Logo,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      145,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      180,
		StrokeBase:       4.0,
		LineHeightFactor: 1.1,
		Index:            IndexCentered,
		IndexSizePt:      68,
		IndexShiftY:      697,
		UsesSeason:       true,
		LogoPlacement:    LogoTopCenter,
		RequiresLogo:     true,
		FlatBackground:   true,
		Defaults:         logoDefaults,
		Recognized:       recognized("separator", "background"),
	})

	gradientLogoDefaults := baseDefaults(offWhite)
	gradientLogoDefaults.Separator = "•"
	gradientLogoDefaults.EpisodeTextColor = softWhite
	register(Descriptor{
		ID:               GradientLogo,
		TitleAnchor:      AnchorSouthwest,
		TitleInsetX:      50,
		TitleShiftY:      125,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      157,
		StrokeBase:       3.0,
		LineHeightFactor: 1.1,
		Index:            IndexSouthwest,
		IndexSizePt:      68,
		IndexInsetX:      50,
		IndexShiftY:      50,
		UsesSeason:       true,
		Gradient:         GradientLeft,
		GradientAlpha:    1.0,
		LogoPlacement:    LogoNorthwest,
		RequiresLogo:     true,
		Defaults:         gradientLogoDefaults,
		Recognized:       recognized("separator", "episode_text.color"),
	})

	colorMatchDefaults := gradientLogoDefaults
	colorMatchDefaults.AutoColor = true
	register(Descriptor{
		ID:               ColorMatch,
		TitleAnchor:      AnchorSouthwest,
		TitleInsetX:      50,
		TitleShiftY:      125,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      157,
		StrokeBase:       3.0,
		LineHeightFactor: 1.1,
		Index:            IndexSouthwest,
		IndexSizePt:      68,
		IndexInsetX:      50,
		IndexShiftY:      50,
		UsesSeason:       true,
		Gradient:         GradientLeft,
		GradientAlpha:    1.0,
		LogoPlacement:    LogoNorthwest,
		RequiresLogo:     true,
		Defaults:         colorMatchDefaults,
		Recognized:       recognized("separator", "episode_text.color"),
	})

	register(Descriptor{
		ID:               Retro,
		TitleAnchor:      AnchorSouthwest,
		TitleInsetX:      229,
		TitleShiftY:      170,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      150,
		StrokeBase:       3.0,
		InterlineBase:    -17,
		LineHeightFactor: 1.1,
		Index:            IndexNortheast,
		IndexSizePt:      100,
		IndexInsetX:      200,
		IndexShiftY:      229,
		Gradient:         GradientBottom,
		GradientAlpha:    0.9,
		WatchedStyling:   true,
		Randomized:       true,
		Defaults:         baseDefaults(white),
		Recognized:       recognized("override_bw", "override_style"),
	})

	sciFiDefaults := baseDefaults(white)
	sciFiDefaults.Overlays = map[style.OverlayLayer]style.OverlayStyle{
		style.LayerBottom:     {Color: hudCyan, Alpha: 0.6},
		style.LayerMiddle:     {Color: white, Alpha: 0.6},
		style.LayerTop:        {Color: hudPink, Alpha: 0.6},
		style.LayerRectangles: {Color: hudGreen, Alpha: 0.6},
	}
	register(Descriptor{
		ID:               SciFi,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      170,
		MaxLineWidth:     20,
		MaxLineCount:     3,
		TitleSizePt:      150,
		StrokeBase:       3.0,
		LineHeightFactor: 1.1,
		Index:            IndexCentered,
		IndexSizePt:      68,
		IndexShiftY:      697,
		UsesSeason:       true,
		HUD:              true,
		Defaults:         sciFiDefaults,
		Recognized: recognized("separator", "stroke.color",
			"overlay_bottom_color", "overlay_bottom_alpha",
			"overlay_middle_color", "overlay_middle_alpha",
			"overlay_top_color", "overlay_top_alpha",
			"overlay_rectangles_color", "overlay_rectangles_alpha"),
	})

	tintedDefaults := baseDefaults(white)
	tintedDefaults.StrokeColor = black
	tintedDefaults.EpisodeTextColor = white
	tintedDefaults.FrameColor = white
	tintedDefaults.FrameWidth = 5
	tintedDefaults.BlurEdges = true
	tintedDefaults.TopElement = style.ElementLogo
	tintedDefaults.MiddleElement = style.ElementOmit
	tintedDefaults.BottomElement = style.ElementIndex
	register(Descriptor{
		ID:               TintedFrame,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      245,
		MaxLineWidth:     35,
		MaxLineCount:     2,
		TopHeavy:         true,
		TitleSizePt:      157,
		StrokeBase:       3.0,
		UppercaseTitle:   true,
		LineHeightFactor: 1.1,
		Index:            IndexCentered,
		IndexSizePt:      60,
		IndexShiftY:      722,
		UsesSeason:       true,
		LogoPlacement:    LogoFrame,
		Frame:            true,
		Defaults:         tintedDefaults,
		Recognized: recognized("separator", "stroke.color",
			"episode_text.color", "top_element", "middle_element",
			"bottom_element", "frame.color", "frame.width", "blur_edges",
			"logo.size"),
	})

	broadcastDefaults := baseDefaults(white)
	broadcastDefaults.EpisodeTextColor = white
	register(Descriptor{
		ID:               Broadcast,
		TitleAnchor:      AnchorSouth,
		TitleShiftY:      50,
		MaxLineWidth:     32,
		MaxLineCount:     3,
		TitleSizePt:      180,
		StrokeBase:       3.0,
		LineHeightFactor: 1.1,
		Index:            IndexWest,
		IndexSizePt:      120,
		IndexInsetX:      100,
		IndexShiftY:      -750,
		Gradient:         GradientBottom,
		GradientAlpha:    1.0,
		Defaults:         broadcastDefaults,
		Recognized:       recognized("episode_text.color"),
	})

	blacklistDefaults := baseDefaults(bloodRed)
	register(Descriptor{
		ID:               Blacklist,
		TitleAnchor:      AnchorNorthwest,
		TitleInsetX:      150,
		TitleShiftY:      150,
		MaxLineWidth:     15,
		MaxLineCount:     4,
		TopHeavy:         true,
		TitleSizePt:      230,
		StrokeBase:       0,
		UppercaseTitle:   true,
		InterlineBase:    30,
		LineHeightFactor: 1.15,
		Index:            IndexUnderTitle,
		IndexSizePt:      120,
		IndexInsetX:      150,
		Defaults:         blacklistDefaults,
		Recognized:       recognized(),
	})
}
