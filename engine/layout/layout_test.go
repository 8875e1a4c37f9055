package layout

import (
	"image"
	"testing"

	"github.com/CollinHeist/titlecard-engine/engine/variant"
)

func TestComputeStaysOnCanvas(t *testing.T) {
	canvas := image.Rect(0, 0, CanvasWidth, CanvasHeight)
	for _, id := range variant.IDs() {
		d, _ := variant.Lookup(id)
		rv := variant.Select(d, d.Defaults, variant.Unwatched, "S01E01")
		geom := Compute(rv, d.Defaults, 400, 200, true)

		if geom.Title.Box.Empty() {
			t.Errorf("%s: empty title box", id)
		}
		for name, box := range map[string]image.Rectangle{
			"title": geom.Title.Box,
			"index": geom.Index.Box,
			"logo":  geom.Logo,
			"badge": geom.Badge,
		} {
			if !box.Empty() && !box.In(canvas) {
				t.Errorf("%s: %s box %v escapes canvas", id, name, box)
			}
		}
	}
}

func TestComputeEmptyIndexCollapses(t *testing.T) {
	d, _ := variant.Lookup(variant.Standard)
	rv := variant.Select(d, d.Defaults, variant.Unwatched, "S01E01")
	geom := Compute(rv, d.Defaults, 0, 0, false)
	if !geom.Index.Box.Empty() {
		t.Fatalf("index box not collapsed: %v", geom.Index.Box)
	}
	if !geom.Logo.Empty() {
		t.Fatalf("logo box set without a logo: %v", geom.Logo)
	}
}

func TestComputeVerticalShiftMovesTitle(t *testing.T) {
	d, _ := variant.Lookup(variant.Standard)
	rv := variant.Select(d, d.Defaults, variant.Unwatched, "S01E01")

	base := Compute(rv, d.Defaults, 0, 0, true)
	shifted := d.Defaults
	shifted.VerticalShift = 100
	moved := Compute(rv, shifted, 0, 0, true)

	if moved.Title.Box.Max.Y != base.Title.Box.Max.Y-100 {
		t.Fatalf("vertical shift not applied: base %v, shifted %v",
			base.Title.Box, moved.Title.Box)
	}
}

func TestComputeWatchedBadge(t *testing.T) {
	d, _ := variant.Lookup(variant.Retro)
	rv := variant.Select(d, d.Defaults, variant.Watched, "EPISODE 9")
	geom := Compute(rv, d.Defaults, 0, 0, true)
	if geom.Badge.Empty() {
		t.Fatal("watched retro card has no badge box")
	}

	plain, _ := variant.Lookup(variant.Standard)
	rvPlain := variant.Select(plain, plain.Defaults, variant.Watched, "S01E01")
	if geom := Compute(rvPlain, plain.Defaults, 0, 0, true); !geom.Badge.Empty() {
		t.Fatalf("standard card grew a badge box: %v", geom.Badge)
	}
}

func TestComputeFrameLogo(t *testing.T) {
	d, _ := variant.Lookup(variant.TintedFrame)
	rv := variant.Select(d, d.Defaults, variant.Unwatched, "S01E01")
	geom := Compute(rv, d.Defaults, 1000, 300, true)

	if geom.FrameInset != FrameInset || geom.FrameWidth != d.Defaults.FrameWidth {
		t.Fatalf("frame geometry not set: %+v", geom)
	}
	if geom.Logo.Empty() {
		t.Fatal("frame logo slot produced no box")
	}
	// Top slot logo sits above the canvas midline.
	if geom.Logo.Max.Y >= CanvasHeight/2 {
		t.Fatalf("top-slot logo below midline: %v", geom.Logo)
	}
}

func TestFitRect(t *testing.T) {
	box := image.Rect(100, 100, 500, 300)

	cases := []struct {
		name       string
		srcW, srcH int
		ax, ay     float64
		want       image.Rectangle
	}{
		{"wide source pins width", 800, 200, 0, 0, image.Rect(100, 100, 500, 200)},
		{"tall source pins height", 200, 400, 0, 0, image.Rect(100, 100, 200, 300)},
		{"centered anchor", 200, 200, 0.5, 0.5, image.Rect(200, 100, 400, 300)},
		{"zero source", 0, 100, 0, 0, image.Rectangle{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FitRect(box, tc.srcW, tc.srcH, tc.ax, tc.ay)
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	if got := Inset(image.Rect(0, 0, 100, 100), 10); got != image.Rect(10, 10, 90, 90) {
		t.Errorf("Inset: %v", got)
	}
	if got := Normalize(image.Rect(50, 80, 10, 20)); got != image.Rect(10, 20, 50, 80) {
		t.Errorf("Normalize: %v", got)
	}
	if got := CenteredBox(image.Rect(0, 0, 100, 100), 50, 50, 40, 20); got != image.Rect(30, 40, 70, 60) {
		t.Errorf("CenteredBox: %v", got)
	}
}
