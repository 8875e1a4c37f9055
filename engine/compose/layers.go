package compose

import (
	"image/color"

	"github.com/fogleman/gg"

	"github.com/CollinHeist/titlecard-engine/engine/style"
	"github.com/CollinHeist/titlecard-engine/engine/variant"
)

// Fraction of the canvas over which the procedural gradient fades to
// clear, measured from the anchored edge.
const gradientExtent = 0.45

// paintGradient draws the procedural gradient overlay. The originals
// composited static gradient PNGs; this ramp reproduces their envelope:
// opaque black at the anchored edge fading to clear.
func paintGradient(dc *gg.Context, kind variant.GradientKind, alpha float64, width, height int) {
	if kind == variant.GradientNone || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}

	var grad gg.Gradient
	switch kind {
	case variant.GradientBottom:
		grad = gg.NewLinearGradient(0, float64(height), 0, float64(height)*(1-gradientExtent))
	case variant.GradientLeft:
		grad = gg.NewLinearGradient(0, 0, float64(width)*gradientExtent, 0)
	default:
		return
	}
	grad.AddColorStop(0, color.NRGBA{A: uint8(255 * alpha)})
	grad.AddColorStop(1, color.NRGBA{})

	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()
}

// paintHUD draws the four tintable overlay layers bottom-to-top of the
// stacking order: bottom bar, middle brackets, top bar, corner
// rectangles.
func paintHUD(dc *gg.Context, overlays map[style.OverlayLayer]style.OverlayStyle, width, height int) {
	w := float64(width)
	h := float64(height)

	if o, ok := overlays[style.LayerBottom]; ok && o.Alpha > 0 {
		setTint(dc, o)
		dc.DrawRectangle(200, h-260, w-400, 10)
		dc.DrawRectangle(200, h-230, w*0.4, 24)
		dc.Fill()
	}
	if o, ok := overlays[style.LayerMiddle]; ok && o.Alpha > 0 {
		setTint(dc, o)
		// Left and right brackets.
		dc.DrawRectangle(120, h/2-220, 14, 440)
		dc.DrawRectangle(120, h/2-220, 90, 14)
		dc.DrawRectangle(120, h/2+206, 90, 14)
		dc.DrawRectangle(w-134, h/2-220, 14, 440)
		dc.DrawRectangle(w-210, h/2-220, 90, 14)
		dc.DrawRectangle(w-210, h/2+206, 90, 14)
		dc.Fill()
	}
	if o, ok := overlays[style.LayerTop]; ok && o.Alpha > 0 {
		setTint(dc, o)
		dc.DrawRectangle(200, 220, w-400, 10)
		dc.DrawRectangle(w-200-w*0.4, 250, w*0.4, 24)
		dc.Fill()
	}
	if o, ok := overlays[style.LayerRectangles]; ok && o.Alpha > 0 {
		setTint(dc, o)
		for i := 0; i < 5; i++ {
			x := 240 + float64(i)*70
			dc.DrawRectangle(x, 140, 50, 36)
		}
		dc.Fill()
	}
}

func setTint(dc *gg.Context, o style.OverlayStyle) {
	dc.SetRGBA(
		float64(o.Color.R)/255,
		float64(o.Color.G)/255,
		float64(o.Color.B)/255,
		o.Alpha,
	)
}

// paintFrame draws the tinted frame: left and right rails plus top and
// bottom bars, the latter two interrupted by a gap around whichever
// element intersects them.
func paintFrame(dc *gg.Context, card Card, width, height int) {
	inset := float64(card.Geom.FrameInset)
	bar := float64(card.Geom.FrameWidth)
	w := float64(width)
	h := float64(height)
	frameColor := card.Style.FrameColor

	dc.SetColor(frameColor)
	// Rails.
	dc.DrawRectangle(inset, inset, bar, h-2*inset)
	dc.DrawRectangle(w-inset-bar, inset, bar, h-2*inset)
	dc.Fill()

	drawInterrupted(dc, card, inset, bar, w, true)
	drawInterrupted(dc, card, h-inset-bar, bar, w, false)
}

// drawInterrupted draws one horizontal frame bar at the given y, cutting
// a gap around the element assigned to that slot.
func drawInterrupted(dc *gg.Context, card Card, y, bar, w float64, top bool) {
	inset := float64(card.Geom.FrameInset)
	elem := card.Style.BottomElement
	if top {
		elem = card.Style.TopElement
	}

	gapLeft, gapRight, hasGap := elementGap(card, elem)
	dc.SetColor(card.Style.FrameColor)
	if !hasGap {
		dc.DrawRectangle(inset, y, w-2*inset, bar)
		dc.Fill()
		return
	}
	// A gap wider than the frame itself suppresses the whole bar.
	if gapLeft < inset || gapRight > w-inset {
		return
	}
	dc.DrawRectangle(inset, y, gapLeft-inset, bar)
	dc.DrawRectangle(gapRight, y, w-inset-gapRight, bar)
	dc.Fill()
}

// elementGap computes the horizontal extent of the element occupying a
// frame slot, with a small margin on either side.
func elementGap(card Card, elem style.Element) (left, right float64, ok bool) {
	const margin = 25
	center := float64(card.Geom.Canvas.Dx()) / 2

	switch elem {
	case style.ElementIndex:
		if card.IndexText == "" || len(card.Index.Lines) == 0 {
			return 0, 0, false
		}
		width := card.Index.Lines[0].Width
		return center - width/2 - margin, center + width/2 + margin, true
	case style.ElementLogo:
		if card.Logo == nil || card.Geom.Logo.Empty() {
			return 0, 0, false
		}
		width := float64(card.Geom.Logo.Dx())
		return center - width/2 - margin, center + width/2 + margin, true
	default:
		return 0, 0, false
	}
}

// paintBadge draws the watched-state badge: a play triangle or rewind
// double-triangle followed by the badge text.
func paintBadge(dc *gg.Context, card Card) {
	box := card.Geom.Badge
	x := float64(box.Min.X)
	cy := float64(box.Min.Y+box.Max.Y) / 2
	glyphH := float64(box.Dy()) * 0.8
	glyphW := glyphH * 0.75

	dc.SetColor(card.TitleColor)
	switch card.Variant.Badge {
	case variant.BadgeRewind:
		drawTriangle(dc, x+glyphW, cy, -glyphW, glyphH)
		drawTriangle(dc, x+2*glyphW+10, cy, -glyphW, glyphH)
		x += 2*glyphW + 40
	default: // play
		drawTriangle(dc, x, cy, glyphW, glyphH)
		x += glyphW + 30
	}

	if card.Index.Face != nil {
		dc.SetFontFace(card.Index.Face)
		dc.SetColor(card.TitleColor)
		dc.DrawStringAnchored(card.Variant.Badge, x, cy, 0, 0.5)
	}
}

// drawTriangle draws a horizontal-pointing triangle; a negative width
// points it left.
func drawTriangle(dc *gg.Context, x, cy, w, h float64) {
	dc.MoveTo(x, cy-h/2)
	dc.LineTo(x, cy+h/2)
	dc.LineTo(x+w, cy)
	dc.ClosePath()
	dc.Fill()
}
