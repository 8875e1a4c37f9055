package compose

import (
	"testing"

	"github.com/CollinHeist/titlecard-engine/engine/layout"
	"github.com/CollinHeist/titlecard-engine/engine/variant"
)

func TestRenderFlatBackground(t *testing.T) {
	d, _ := variant.Lookup(variant.Logo)
	rv := variant.Select(d, d.Defaults, variant.Unwatched, "EPISODE 1")
	cfg := d.Defaults

	out := Render(Card{
		Variant: rv,
		Style:   cfg,
		Geom:    layout.Compute(rv, cfg, 0, 0, false),
	})

	bounds := out.Bounds()
	if bounds.Dx() != layout.CanvasWidth || bounds.Dy() != layout.CanvasHeight {
		t.Fatalf("canvas %dx%d", bounds.Dx(), bounds.Dy())
	}
	// Logo family paints a flat background; the corner must carry the
	// configured background color.
	r, g, b, _ := out.At(5, 5).RGBA()
	want := cfg.Background
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Fatalf("corner %v,%v,%v, want %v", r>>8, g>>8, b>>8, want)
	}
}

func TestTrackingPx(t *testing.T) {
	cases := []struct {
		kerning, size, want float64
	}{
		{1.0, 180, 0},
		{0, 180, 0},
		{1.5, 100, 5},
		{0.5, 100, -5},
	}
	for _, tc := range cases {
		if got := trackingPx(tc.kerning, tc.size); got != tc.want {
			t.Errorf("trackingPx(%v, %v) = %v, want %v", tc.kerning, tc.size, got, tc.want)
		}
	}
}

func TestStrokeRing(t *testing.T) {
	ring := strokeRing(4)
	if len(ring) != 8 {
		t.Fatalf("ring has %d offsets", len(ring))
	}
	var sumX, sumY float64
	for _, o := range ring {
		sumX += o.X
		sumY += o.Y
	}
	if sumX != 0 || sumY != 0 {
		t.Fatalf("ring not symmetric: sum (%v, %v)", sumX, sumY)
	}
}

func TestElementGapSuppressedWithoutContent(t *testing.T) {
	d, _ := variant.Lookup(variant.TintedFrame)
	rv := variant.Select(d, d.Defaults, variant.Unwatched, "EPISODE 1")
	card := Card{Variant: rv, Style: d.Defaults}
	card.Geom.Canvas = layout.Compute(rv, d.Defaults, 0, 0, false).Canvas

	if _, _, ok := elementGap(card, d.Defaults.BottomElement); ok {
		t.Fatal("index gap reported with no index text")
	}
	if _, _, ok := elementGap(card, d.Defaults.TopElement); ok {
		t.Fatal("logo gap reported with no logo")
	}
}
