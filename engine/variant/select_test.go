package variant

import (
	"reflect"
	"testing"

	"github.com/CollinHeist/titlecard-engine/engine/style"
)

func TestLookupKnowsEveryRegisteredFamily(t *testing.T) {
	ids := IDs()
	if len(ids) != 15 {
		t.Fatalf("got %d families, want 15", len(ids))
	}
	for _, id := range ids {
		d, ok := Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%q) failed", id)
		}
		if d.TitleSizePt <= 0 {
			t.Errorf("%s: title size %v", id, d.TitleSizePt)
		}
		if d.Defaults.FontSize <= 0 || d.Defaults.Kerning == 0 {
			t.Errorf("%s: scalar defaults not set: %+v", id, d.Defaults)
		}
		if len(d.Recognized) == 0 {
			t.Errorf("%s: empty recognized option set", id)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("polaroid"); ok {
		t.Fatal("Lookup accepted an unregistered family")
	}
}

func TestSelectWatchedBranching(t *testing.T) {
	d, _ := Lookup(Retro)

	cases := []struct {
		name          string
		watched       WatchState
		overrideBW    string
		overrideStyle string
		wantGray      bool
		wantBadge     string
	}{
		{"watched", Watched, "", "", true, BadgeRewind},
		{"unwatched", Unwatched, "", "", false, BadgePlay},
		{"unknown treated as unwatched", WatchUnknown, "", "", false, BadgePlay},
		{"bw override wins", Unwatched, "bw", "", true, BadgePlay},
		{"color override wins", Watched, "color", "", false, BadgeRewind},
		{"style override wins", Watched, "", "play", true, BadgePlay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := d.Defaults
			cfg.OverrideBW = tc.overrideBW
			cfg.OverrideStyle = tc.overrideStyle
			rv := Select(d, cfg, tc.watched, "S01E01")
			if rv.Grayscale != tc.wantGray {
				t.Errorf("grayscale = %v, want %v", rv.Grayscale, tc.wantGray)
			}
			if rv.Badge != tc.wantBadge {
				t.Errorf("badge = %q, want %q", rv.Badge, tc.wantBadge)
			}
		})
	}
}

func TestSelectNonWatchedFamilyIgnoresState(t *testing.T) {
	d, _ := Lookup(Standard)
	rv := Select(d, d.Defaults, Watched, "S01E01")
	if rv.Grayscale || rv.Badge != "" {
		t.Fatalf("standard family applied watched styling: %+v", rv)
	}
}

func TestSelectSeedDeterminism(t *testing.T) {
	d, _ := Lookup(Retro)
	first := Select(d, d.Defaults, Unwatched, "EPISODE 4")
	second := Select(d, d.Defaults, Unwatched, "EPISODE 4")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different draws:\n%+v\n%+v", first, second)
	}
}

func TestSelectDrawRanges(t *testing.T) {
	d, _ := Lookup(Retro)
	seeds := []string{"EPISODE 1", "EPISODE 2", "EPISODE 37", "CHAPTER XII", "PILOT"}
	for _, seed := range seeds {
		rv := Select(d, d.Defaults, Unwatched, seed)
		if rv.BlurSigma < blurSigmaMin || rv.BlurSigma > blurSigmaMax {
			t.Errorf("seed %q: sigma %v outside [%v,%v]", seed, rv.BlurSigma, blurSigmaMin, blurSigmaMax)
		}
		if rv.TitleSizeScale < 1-titleJitterSpan || rv.TitleSizeScale > 1+titleJitterSpan {
			t.Errorf("seed %q: title scale %v outside jitter span", seed, rv.TitleSizeScale)
		}
		if rv.SpacingShift < -spacingJitterPx || rv.SpacingShift > spacingJitterPx {
			t.Errorf("seed %q: spacing shift %d outside ±%d", seed, rv.SpacingShift, spacingJitterPx)
		}
	}
}

func TestSelectNonRandomizedFamilyIsFixed(t *testing.T) {
	d, _ := Lookup(Standard)
	rv := Select(d, d.Defaults, Unwatched, "S05E09")
	if rv.Blur || rv.BlurSigma != 0 || rv.TitleSizeScale != 1.0 || rv.SpacingShift != 0 || rv.ReverseTitle {
		t.Fatalf("standard family made randomized draws: %+v", rv)
	}
}

func TestRetroDefaultsResolveCleanly(t *testing.T) {
	d, _ := Lookup(Retro)
	cfg, err := style.Resolve(d.Defaults, d.Recognized, map[string]string{"override_bw": "bw"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.OverrideBW != "bw" {
		t.Fatalf("override not applied: %+v", cfg)
	}
}
