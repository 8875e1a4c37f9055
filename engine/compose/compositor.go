// Package compose rasterizes the card layers in a fixed paint order:
// background, grayscale, gradient, overlay layers, frame, logo, badge,
// then text. One immutable output raster per call; the canvas is never
// shared across requests.
package compose

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/CollinHeist/titlecard-engine/engine/layout"
	"github.com/CollinHeist/titlecard-engine/engine/style"
	"github.com/CollinHeist/titlecard-engine/engine/text"
	"github.com/CollinHeist/titlecard-engine/engine/variant"
)

// Margin kept unblurred inside the tinted frame.
const frameBlurMargin = 6

// Card carries every measured and resolved input for one composite.
type Card struct {
	Variant variant.Resolved
	Style   style.Config
	Geom    layout.Geometry

	Source image.Image // nil for flat-background families
	Logo   image.Image // trimmed; nil when absent

	Title       text.Layout
	TitleColor  color.NRGBA
	TitleStroke color.NRGBA

	IndexText   string
	Index       text.Layout
	IndexColor  color.NRGBA
	IndexStroke color.NRGBA
}

// Render paints all layers and returns the finished card raster.
func Render(card Card) image.Image {
	width := card.Geom.Canvas.Dx()
	height := card.Geom.Canvas.Dy()

	background := paintBackground(card, width, height)
	dc := gg.NewContextForImage(background)

	if !card.Style.OmitGradient {
		paintGradient(dc, card.Variant.Gradient, card.Variant.GradientAlpha, width, height)
	}
	if card.Variant.HUD {
		paintHUD(dc, card.Style.Overlays, width, height)
	}
	if card.Variant.Frame {
		paintFrame(dc, card, width, height)
	}
	if card.Logo != nil && !card.Geom.Logo.Empty() {
		paintLogo(dc, card.Logo, card.Geom.Logo)
	}
	if card.Variant.Badge != "" && !card.Geom.Badge.Empty() {
		paintBadge(dc, card)
	}
	paintTitle(dc, card)
	paintIndex(dc, card)

	return dc.Image()
}

func paintBackground(card Card, width, height int) image.Image {
	var background *image.NRGBA
	if card.Variant.FlatBackground || card.Source == nil {
		background = imaging.New(width, height, card.Style.Background)
	} else {
		background = imaging.Fill(card.Source, width, height, imaging.Center, imaging.Lanczos)
	}

	if card.Variant.Blur {
		background = imaging.Blur(background, card.Variant.BlurSigma)
	}
	if card.Variant.Frame && card.Style.BlurEdges && !card.Variant.Blur {
		background = blurEdges(background, card.Geom)
	}
	if card.Variant.Grayscale {
		background = imaging.Grayscale(background)
	}
	return background
}

// blurEdges blurs the whole frame, then restores the unblurred interior
// of the tinted frame.
func blurEdges(background *image.NRGBA, geom layout.Geometry) *image.NRGBA {
	interior := layout.Inset(geom.Canvas, geom.FrameInset+frameBlurMargin)
	blurred := imaging.Blur(background, 20)
	center := imaging.Crop(background, interior)
	return imaging.Paste(blurred, center, interior.Min)
}

func paintLogo(dc *gg.Context, logo image.Image, dest image.Rectangle) {
	scaled := imaging.Resize(logo, dest.Dx(), dest.Dy(), imaging.Lanczos)
	dc.DrawImage(scaled, dest.Min.X, dest.Min.Y)
}

func paintTitle(dc *gg.Context, card Card) {
	if len(card.Title.Lines) == 0 || card.Geom.Title.Box.Empty() {
		return
	}
	strokePx := card.Variant.StrokeBase * card.Style.StrokeWidth
	tracking := trackingPx(card.Style.Kerning, card.Title.FontSize)
	drawTextBlock(dc, card.Geom.Title, card.Title, card.TitleColor, card.TitleStroke, strokePx, tracking)
}

func paintIndex(dc *gg.Context, card Card) {
	if card.IndexText == "" || len(card.Index.Lines) == 0 || card.Geom.Index.Box.Empty() {
		return
	}

	block := card.Geom.Index
	if block.FollowsTitle {
		// Pin the block directly under the painted title lines.
		top := float64(card.Geom.Title.Box.Min.Y) + card.Title.Height + card.Index.LineHeightPx*0.5
		box := block.Box
		box.Min.Y = int(top)
		box.Max.Y = box.Min.Y + int(card.Index.LineHeightPx)
		block.Box = box.Intersect(card.Geom.Canvas)
		if block.Box.Empty() {
			return
		}
	}

	drawTextBlock(dc, block, card.Index, card.IndexColor, card.IndexStroke, 2, 0)
}

// drawTextBlock paints a shaped block stroke-then-fill. Lines stack
// upward from the box bottom or downward from its top depending on the
// block's anchor; overflow past the canvas is clipped, never an error.
func drawTextBlock(dc *gg.Context, block layout.TextBlock, shaped text.Layout, fill, stroke color.NRGBA, strokePx, tracking float64) {
	dc.SetFontFace(shaped.Face)

	lineCount := len(shaped.Lines)
	for i, line := range shaped.Lines {
		var y float64
		if block.AnchorBottom {
			y = float64(block.Box.Max.Y) - float64(lineCount-1-i)*shaped.LineHeightPx - shaped.LineHeightPx/2
		} else {
			y = float64(block.Box.Min.Y) + float64(i)*shaped.LineHeightPx + shaped.LineHeightPx/2
		}

		var x float64
		switch {
		case block.AlignX >= 1:
			x = float64(block.Box.Max.X)
		case block.AlignX > 0:
			x = float64(block.Box.Min.X) + block.AlignX*float64(block.Box.Dx())
		default:
			x = float64(block.Box.Min.X)
		}

		if strokePx > 0 {
			dc.SetColor(stroke)
			for _, offset := range strokeRing(strokePx) {
				drawAnchored(dc, line.Text, x+offset.X, y+offset.Y, block.AlignX, tracking)
			}
		}
		dc.SetColor(fill)
		drawAnchored(dc, line.Text, x, y, block.AlignX, tracking)
	}
}

type offset struct{ X, Y float64 }

// strokeRing yields the 8-direction offsets that approximate a text
// stroke of the given width.
func strokeRing(width float64) []offset {
	diagonal := width * 0.7071
	return []offset{
		{width, 0}, {-width, 0}, {0, width}, {0, -width},
		{diagonal, diagonal}, {diagonal, -diagonal},
		{-diagonal, diagonal}, {-diagonal, -diagonal},
	}
}

// drawAnchored draws one line with optional letter tracking.
func drawAnchored(dc *gg.Context, line string, x, y, alignX, tracking float64) {
	if tracking == 0 {
		dc.DrawStringAnchored(line, x, y, alignX, 0.5)
		return
	}

	runes := []rune(line)
	total := 0.0
	widths := make([]float64, len(runes))
	for i, r := range runes {
		w, _ := dc.MeasureString(string(r))
		widths[i] = w
		total += w
	}
	if len(runes) > 1 {
		total += tracking * float64(len(runes)-1)
	}

	cursor := x - alignX*total
	for i, r := range runes {
		dc.DrawStringAnchored(string(r), cursor, y, 0, 0.5)
		cursor += widths[i] + tracking
	}
}

// trackingPx converts the kerning scalar into per-glyph tracking pixels.
func trackingPx(kerning, fontSize float64) float64 {
	if kerning == 1.0 || kerning == 0 {
		return 0
	}
	return (kerning - 1.0) * fontSize * 0.1
}
