// Package engine composes title-card images: given episode metadata, a
// source still, an optional logo and a style configuration it produces
// one finished card raster. Rendering is a pure, synchronous pipeline
// over one request; the engine holds no mutable state across requests
// and concurrent renders need no locking.
package engine

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/CollinHeist/titlecard-engine/engine/compose"
	"github.com/CollinHeist/titlecard-engine/engine/fontbank"
	"github.com/CollinHeist/titlecard-engine/engine/layout"
	"github.com/CollinHeist/titlecard-engine/engine/logo"
	"github.com/CollinHeist/titlecard-engine/engine/style"
	"github.com/CollinHeist/titlecard-engine/engine/text"
	"github.com/CollinHeist/titlecard-engine/engine/variant"
)

// WatchState re-exports the variant package's watch flag for callers.
type WatchState = variant.WatchState

const (
	WatchUnknown = variant.WatchUnknown
	Watched      = variant.Watched
	Unwatched    = variant.Unwatched
)

// RenderRequest is one fully-resolved render job. The caller owns it for
// its lifetime; the engine never mutates it.
type RenderRequest struct {
	Source image.Image // source still; nil for flat-background families
	Logo   image.Image // series logo; nil when absent

	Title       string
	SeasonText  string // empty hides the season portion
	EpisodeText string

	Watched  WatchState
	CardType variant.ID
	Extras   map[string]string
}

// Approximate tone of the region card text is painted over, used as the
// contrast target for auto color-matching.
var gradientTone = color.NRGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}

// Engine renders title cards. A single Engine may serve concurrent
// renders: the font bank is its only shared state and is internally
// synchronized.
type Engine struct {
	Fonts  *fontbank.Bank
	Logger Logger
}

func New() *Engine {
	return &Engine{Fonts: fontbank.New(), Logger: NoopLogger{}}
}

// Render produces the finished card for one request. Configuration
// errors surface before any raster work begins; a failed render returns
// no image.
func (e *Engine) Render(req *RenderRequest) (image.Image, error) {
	d, ok := variant.Lookup(req.CardType)
	if !ok {
		return nil, &UnknownCardTypeError{CardType: req.CardType}
	}

	cfg, err := style.Resolve(d.Defaults, d.Recognized, req.Extras)
	if err != nil {
		return nil, err
	}

	rv := variant.Select(d, cfg, req.Watched, req.EpisodeText)

	if err := e.checkAssets(rv, cfg, req); err != nil {
		return nil, err
	}

	// Logo analysis: trim transparent padding and, for auto color
	// matching, extract the representative color.
	var analysis logo.Analysis
	var trimmedLogo image.Image
	logoW, logoH := 0, 0
	if req.Logo != nil {
		analysis = logo.Analyze(req.Logo, gradientTone)
		trimmedLogo = analysis.Image
		bounds := trimmedLogo.Bounds()
		logoW, logoH = bounds.Dx(), bounds.Dy()
	}

	titleFill := cfg.FontColor
	titleStroke := cfg.StrokeColor
	if cfg.AutoColor {
		titleFill = analysis.Dominant
		titleStroke = analysis.Stroke
		if analysis.FromFallback {
			e.Logger.Infof("engine", "logo yielded no usable color, using fallback %v", titleFill)
		}
		if titleFill == (color.NRGBA{}) {
			titleFill = logo.FallbackColor
			titleStroke = color.NRGBA{A: 0xFF}
		}
	}

	indexText := formatIndex(d, req, cfg)
	geom := layout.Compute(rv, cfg, logoW, logoH, indexText != "")
	if rv.SpacingShift != 0 && !geom.Index.Box.Empty() {
		geom.Index.Box = geom.Index.Box.Add(image.Pt(0, rv.SpacingShift)).Intersect(geom.Canvas)
	}

	title := text.Shape(req.Title, text.Spec{
		FontFile:     cfg.FontFile,
		SizePt:       d.TitleSizePt * cfg.FontSize * rv.TitleSizeScale,
		LineHeight:   d.LineHeightFactor,
		Interline:    d.InterlineBase + cfg.InterlineSpacing,
		Uppercase:    d.UppercaseTitle,
		MaxLineWidth: d.MaxLineWidth,
		TopHeavy:     d.TopHeavy,
		Reverse:      rv.ReverseTitle,
	}, geom.Title.Box, d.MaxLineCount, e.Fonts)
	if title.Degraded {
		e.Logger.Errorf("engine", "title font %q unavailable, falling back to built-in face", cfg.FontFile)
	}

	var index text.Layout
	if indexText != "" {
		indexBox := geom.Index.Box
		if geom.Index.FollowsTitle {
			indexBox = geom.Canvas
		}
		index = text.Shape(indexText, text.Spec{
			FontFile:   cfg.FontFile,
			SizePt:     d.IndexSizePt,
			LineHeight: 1.2,
		}, indexBox, 1, e.Fonts)
	}

	indexColor := cfg.EpisodeTextColor
	if indexColor == (color.NRGBA{}) {
		indexColor = titleFill
	}

	out := compose.Render(compose.Card{
		Variant:     rv,
		Style:       cfg,
		Geom:        geom,
		Source:      req.Source,
		Logo:        trimmedLogo,
		Title:       title,
		TitleColor:  titleFill,
		TitleStroke: titleStroke,
		IndexText:   indexText,
		Index:       index,
		IndexColor:  indexColor,
		IndexStroke: cfg.StrokeColor,
	})

	e.Logger.Infof("engine", "rendered %s card for %q", req.CardType, req.Title)
	return out, nil
}

// checkAssets validates required rasters before any painting starts.
func (e *Engine) checkAssets(rv variant.Resolved, cfg style.Config, req *RenderRequest) error {
	if !rv.FlatBackground && req.Source == nil {
		return &AssetLoadError{Asset: "source", Err: fmt.Errorf("no source image supplied")}
	}
	needsLogo := rv.RequiresLogo
	if rv.LogoPlacement == variant.LogoFrame {
		needsLogo = cfg.TopElement == style.ElementLogo ||
			cfg.MiddleElement == style.ElementLogo ||
			cfg.BottomElement == style.ElementLogo
	}
	if needsLogo && req.Logo == nil {
		return &AssetLoadError{Asset: "logo", Err: fmt.Errorf("no logo image supplied")}
	}
	return nil
}

// formatIndex builds the season/episode text block content. Index text
// is always upper-cased; a hidden or empty season collapses to the
// episode text alone.
func formatIndex(d variant.Descriptor, req *RenderRequest, cfg style.Config) string {
	if d.Index == variant.IndexNone {
		return ""
	}
	episode := strings.ToUpper(strings.TrimSpace(req.EpisodeText))
	season := strings.ToUpper(strings.TrimSpace(req.SeasonText))

	if !d.UsesSeason || season == "" {
		return episode
	}
	if episode == "" {
		return season
	}
	return season + " " + cfg.Separator + " " + episode
}
