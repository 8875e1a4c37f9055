// Package layout computes the pixel-space geometry of every visual
// element on the 3200x1800 card canvas. Geometry is derived per request
// and never cached: text length and logo aspect ratio vary.
package layout

import (
	"image"

	"github.com/CollinHeist/titlecard-engine/engine/style"
	"github.com/CollinHeist/titlecard-engine/engine/variant"
)

// Canvas dimensions shared by every card family.
const (
	CanvasWidth  = 3200
	CanvasHeight = 1800
)

// Title box sizing.
const (
	titleMarginX     = 200
	titleBudgetRatio = 0.45 // fraction of canvas height the title may fill
)

// Frame constants for the tinted-frame family.
const (
	FrameInset        = 185
	frameElementTall  = 350 // middle slot logo height
	frameElementShort = 150 // top/bottom slot logo height
	frameElementWideW = 2500
)

// Logo box constants recovered from the original card geometry.
const (
	logoTopCenterW = 1875
	logoTopCenterH = 1030
	logoCornerW    = 1155
	logoCornerH    = 650
	logoMargin     = 50
)

// TextBlock positions one block of text.
type TextBlock struct {
	// Box is the maximum region the text may occupy. A zero box means
	// the block is hidden and must not be painted.
	Box image.Rectangle
	// AlignX is the horizontal anchor within Box: 0 left, 0.5 center.
	AlignX float64
	// AnchorBottom stacks lines upward from Box.Max.Y instead of
	// downward from Box.Min.Y.
	AnchorBottom bool
	// FollowsTitle pins the block directly under the painted title
	// lines instead of at a fixed offset.
	FollowsTitle bool
}

// Geometry is the read-only element placement for one render.
type Geometry struct {
	Canvas image.Rectangle
	Title  TextBlock
	Index  TextBlock
	// Logo is the scaled logo destination; zero when the family paints
	// no logo or none was supplied.
	Logo image.Rectangle
	// Badge is the watched-state badge region; zero when unused.
	Badge image.Rectangle

	FrameInset int
	FrameWidth int
}

// Compute derives the geometry for one resolved variant. logoW/logoH are
// the (trimmed) logo dimensions, zero when absent. hasIndex reports
// whether any season/episode text remains after formatting; an empty
// index collapses to zero-height geometry.
func Compute(rv variant.Resolved, cfg style.Config, logoW, logoH int, hasIndex bool) Geometry {
	canvas := image.Rect(0, 0, CanvasWidth, CanvasHeight)
	geom := Geometry{Canvas: canvas}

	geom.Title = titleBlock(rv, cfg)
	if hasIndex {
		geom.Index = indexBlock(rv, cfg, canvas)
	}
	if logoW > 0 && logoH > 0 {
		geom.Logo = logoBox(rv, cfg, canvas, logoW, logoH)
	}
	if rv.Badge != "" {
		geom.Badge = badgeBox(rv, canvas)
	}
	if rv.Frame {
		geom.FrameInset = FrameInset
		geom.FrameWidth = cfg.FrameWidth
	}

	geom.Title.Box = geom.Title.Box.Intersect(canvas)
	geom.Index.Box = geom.Index.Box.Intersect(canvas)
	geom.Logo = geom.Logo.Intersect(canvas)
	geom.Badge = geom.Badge.Intersect(canvas)
	return geom
}

func titleBlock(rv variant.Resolved, cfg style.Config) TextBlock {
	budget := int(titleBudgetRatio * CanvasHeight)
	shift := rv.TitleShiftY + cfg.VerticalShift

	switch rv.TitleAnchor {
	case variant.AnchorSouth:
		bottom := CanvasHeight - shift
		return TextBlock{
			Box:          Normalize(image.Rect(titleMarginX, bottom-budget, CanvasWidth-titleMarginX, bottom)),
			AlignX:       0.5,
			AnchorBottom: true,
		}
	case variant.AnchorSouthwest:
		bottom := CanvasHeight - shift
		return TextBlock{
			Box:          Normalize(image.Rect(rv.TitleInsetX, bottom-budget, CanvasWidth-titleMarginX, bottom)),
			AnchorBottom: true,
		}
	default: // AnchorNorthwest
		top := shift
		if top > CanvasHeight-100 {
			top = CanvasHeight - 100
		}
		return TextBlock{
			Box: Normalize(image.Rect(rv.TitleInsetX, top, CanvasWidth-titleMarginX, top+budget)),
		}
	}
}

func indexBlock(rv variant.Resolved, cfg style.Config, canvas image.Rectangle) TextBlock {
	lineH := int(rv.IndexSizePt * 1.5)
	midY := CanvasHeight / 2

	switch rv.Index {
	case variant.IndexCentered:
		cy := midY + rv.IndexShiftY
		if rv.Frame && cfg.TopElement == style.ElementIndex {
			cy = midY - rv.IndexShiftY
		}
		return TextBlock{
			Box:    CenteredBox(canvas, CanvasWidth/2, cy, CanvasWidth-2*titleMarginX, lineH),
			AlignX: 0.5,
		}
	case variant.IndexWest:
		cy := midY + rv.IndexShiftY
		return TextBlock{
			Box: image.Rect(rv.IndexInsetX, cy-lineH/2, CanvasWidth-titleMarginX, cy+lineH/2),
		}
	case variant.IndexSouthwest:
		bottom := CanvasHeight - rv.IndexShiftY
		return TextBlock{
			Box:          image.Rect(rv.IndexInsetX, bottom-lineH, CanvasWidth-titleMarginX, bottom),
			AnchorBottom: true,
		}
	case variant.IndexNortheast:
		return TextBlock{
			Box:    image.Rect(titleMarginX, rv.IndexShiftY, CanvasWidth-rv.IndexInsetX, rv.IndexShiftY+lineH),
			AlignX: 1,
		}
	case variant.IndexUnderTitle:
		return TextBlock{
			Box:          image.Rect(rv.IndexInsetX, 0, CanvasWidth-titleMarginX, CanvasHeight),
			FollowsTitle: true,
		}
	default:
		return TextBlock{}
	}
}

func logoBox(rv variant.Resolved, cfg style.Config, canvas image.Rectangle, logoW, logoH int) image.Rectangle {
	switch rv.LogoPlacement {
	case variant.LogoTopCenter:
		box := image.Rect((CanvasWidth-logoTopCenterW)/2, logoMargin,
			(CanvasWidth+logoTopCenterW)/2, logoMargin+logoTopCenterH)
		return FitRect(box, logoW, logoH, 0.5, 0)
	case variant.LogoNorthwest:
		box := image.Rect(logoMargin, logoMargin, logoMargin+logoCornerW, logoMargin+logoCornerH)
		return FitRect(box, logoW, logoH, 0, 0)
	case variant.LogoFrame:
		return frameLogoBox(cfg, canvas, logoW, logoH)
	default:
		return image.Rectangle{}
	}
}

// frameLogoBox sizes the logo for whichever tinted-frame slot carries it.
func frameLogoBox(cfg style.Config, canvas image.Rectangle, logoW, logoH int) image.Rectangle {
	var cy, height int
	switch {
	case cfg.MiddleElement == style.ElementLogo:
		cy = CanvasHeight / 2
		height = frameElementTall
	case cfg.TopElement == style.ElementLogo:
		cy = CanvasHeight/2 - 720
		height = frameElementShort
	case cfg.BottomElement == style.ElementLogo:
		cy = CanvasHeight/2 + 700
		height = frameElementShort
	default:
		return image.Rectangle{}
	}
	height = int(float64(height) * cfg.LogoSize)
	maxW := int(float64(frameElementWideW) * cfg.LogoSize)
	box := CenteredBox(canvas, CanvasWidth/2, cy, maxW, height)
	return FitRect(box, logoW, logoH, 0.5, 0.5)
}

// badgeBox is the watched-state badge region in the lower-left gradient
// area, above the title block.
func badgeBox(rv variant.Resolved, canvas image.Rectangle) image.Rectangle {
	x := rv.TitleInsetX
	bottom := CanvasHeight - rv.TitleShiftY - int(titleBudgetRatio*CanvasHeight)
	return Normalize(image.Rect(x, bottom-140, x+460, bottom-20)).Intersect(canvas)
}
