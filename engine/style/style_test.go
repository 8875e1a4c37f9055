package style

import (
	"errors"
	"image/color"
	"reflect"
	"testing"
)

func testDefaults() Config {
	return Config{
		FontColor:   color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		FontSize:    1.0,
		StrokeWidth: 1.0,
		Kerning:     1.0,
		Separator:   "-",
		Overlays: map[OverlayLayer]OverlayStyle{
			LayerBottom: {Color: color.NRGBA{R: 0x3A, G: 0xFF, B: 0xFF, A: 0xFF}, Alpha: 0.6},
		},
	}
}

var testRecognized = []string{
	"omit_gradient", "font.color", "font.size", "separator",
	"overlay_bottom_alpha", "overlay_bottom_color",
	"top_element", "middle_element", "bottom_element",
}

func TestResolveIdempotent(t *testing.T) {
	extras := map[string]string{
		"omit_gradient": "true",
		"font.size":     "1.25",
		"separator":     "/",
	}

	first, err := Resolve(testDefaults(), testRecognized, extras)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := Resolve(testDefaults(), testRecognized, extras)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolve not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if !first.OmitGradient || first.FontSize != 1.25 || first.Separator != "/" {
		t.Fatalf("extras not applied: %+v", first)
	}
}

func TestResolveRejectsUnknownKey(t *testing.T) {
	_, err := Resolve(testDefaults(), testRecognized, map[string]string{"omit_gradeint": "true"})
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	var unrecognized *UnrecognizedOptionError
	if !errors.As(err, &unrecognized) {
		t.Fatalf("expected UnrecognizedOptionError, got %T: %v", err, err)
	}
	if unrecognized.Key != "omit_gradeint" {
		t.Fatalf("error names wrong key: %q", unrecognized.Key)
	}
}

func TestResolveRejectsKeyOutsideFamilyVocabulary(t *testing.T) {
	// override_bw exists globally but is not in this family's set.
	_, err := Resolve(testDefaults(), testRecognized, map[string]string{"override_bw": "bw"})
	var unrecognized *UnrecognizedOptionError
	if !errors.As(err, &unrecognized) {
		t.Fatalf("expected UnrecognizedOptionError, got %v", err)
	}
}

func TestOverlayAlphaClamped(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"1.7", 1},
		{"-0.3", 0},
		{"0.25", 0.25},
	}
	for _, tc := range cases {
		cfg, err := Resolve(testDefaults(), testRecognized, map[string]string{"overlay_bottom_alpha": tc.raw})
		if err != nil {
			t.Fatalf("alpha %q: %v", tc.raw, err)
		}
		if got := cfg.Overlays[LayerBottom].Alpha; got != tc.want {
			t.Errorf("alpha %q: got %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestResolveDoesNotMutateDefaults(t *testing.T) {
	defaults := testDefaults()
	_, err := Resolve(defaults, testRecognized, map[string]string{"overlay_bottom_alpha": "0.1"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if defaults.Overlays[LayerBottom].Alpha != 0.6 {
		t.Fatalf("defaults mutated: %+v", defaults.Overlays)
	}
}

func TestDuplicateFrameElementsRejected(t *testing.T) {
	_, err := Resolve(testDefaults(), testRecognized, map[string]string{
		"top_element":    "logo",
		"middle_element": "logo",
		"bottom_element": "index",
	})
	if err == nil {
		t.Fatal("expected duplicate element error")
	}
}

func TestMiddleElementRejectsIndex(t *testing.T) {
	_, err := Resolve(testDefaults(), testRecognized, map[string]string{"middle_element": "index"})
	if err == nil {
		t.Fatal("expected error for index in middle slot")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		raw  string
		want color.NRGBA
		ok   bool
	}{
		{"#FFFFFF", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, true},
		{"#b1150a", color.NRGBA{R: 0xB1, G: 0x15, B: 0x0A, A: 0xFF}, true},
		{"#fff", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, true},
		{"#062A4080", color.NRGBA{R: 0x06, G: 0x2A, B: 0x40, A: 0x80}, true},
		{"white", color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, true},
		{"black", color.NRGBA{A: 0xFF}, true},
		{"#12345", color.NRGBA{}, false},
		{"salmon", color.NRGBA{}, false},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.raw)
		if tc.ok != (err == nil) {
			t.Errorf("ParseColor(%q): err=%v, want ok=%v", tc.raw, err, tc.ok)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
