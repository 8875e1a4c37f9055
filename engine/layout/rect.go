package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenteredBox returns a rectangle of the given size centered on (cx, cy),
// clipped to bounds.
func CenteredBox(bounds image.Rectangle, cx, cy, widthPx, heightPx int) image.Rectangle {
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	box := image.Rect(cx-widthPx/2, cy-heightPx/2, cx+widthPx-widthPx/2, cy+heightPx-heightPx/2)
	return box.Intersect(bounds)
}

// FitRect scales a source of size (srcW, srcH) to the largest size that
// fits box while preserving aspect ratio, anchored per the anchor point
// (ax, ay in [0,1], e.g. 0.5,0 for top-center).
func FitRect(box image.Rectangle, srcW, srcH int, ax, ay float64) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || box.Empty() {
		return image.Rectangle{}
	}
	boxW, boxH := box.Dx(), box.Dy()
	scaledW := boxW
	scaledH := srcH * boxW / srcW
	if scaledH > boxH {
		scaledH = boxH
		scaledW = srcW * boxH / srcH
	}
	x := box.Min.X + int(ax*float64(boxW-scaledW))
	y := box.Min.Y + int(ay*float64(boxH-scaledH))
	return image.Rect(x, y, x+scaledW, y+scaledH)
}
