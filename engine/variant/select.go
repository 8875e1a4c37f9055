package variant

import (
	"hash/fnv"
	"math/rand"

	"github.com/CollinHeist/titlecard-engine/engine/style"
)

// WatchState is the episode's viewed state. Unknown is treated as
// unwatched for style branching.
type WatchState int

const (
	WatchUnknown WatchState = iota
	Watched
	Unwatched
)

// Badge text painted by watched-styled families.
const (
	BadgePlay   = "PLAY"
	BadgeRewind = "REWIND"
)

// Randomized draw ranges. Stylistic only; every draw comes from a source
// seeded by a stable request attribute so retries reproduce pixel-identical
// cards.
const (
	blurSigmaMin = 12.0
	blurSigmaMax = 28.0
	// Title size jitter stays within ±6% of the family size.
	titleJitterSpan = 0.06
	// Season text spacing jitter in pixels, ±12.
	spacingJitterPx = 12
)

// Resolved is a concrete presentation choice for one request: the family
// descriptor plus every watched-state and randomized decision pinned.
type Resolved struct {
	Descriptor

	Grayscale bool
	Badge     string

	Blur           bool
	BlurSigma      float64
	TitleSizeScale float64
	SpacingShift   int
	ReverseTitle   bool
}

// Select maps a family descriptor and resolved style onto a concrete
// presentation. seedKey must be a stable request attribute (the engine
// passes the episode text) so repeated renders of the same episode make
// identical draws.
func Select(d Descriptor, cfg style.Config, watched WatchState, seedKey string) Resolved {
	rv := Resolved{Descriptor: d, TitleSizeScale: 1.0}

	if d.WatchedStyling {
		// Watched episodes get the grayscale rewind treatment; unwatched
		// (and unknown) stay in color with the play badge.
		if watched == Watched {
			rv.Grayscale = true
			rv.Badge = BadgeRewind
		} else {
			rv.Badge = BadgePlay
		}
		switch cfg.OverrideBW {
		case "bw":
			rv.Grayscale = true
		case "color":
			rv.Grayscale = false
		}
		switch cfg.OverrideStyle {
		case "play":
			rv.Badge = BadgePlay
		case "rewind":
			rv.Badge = BadgeRewind
		}
	}

	if d.Randomized {
		rng := newSource(seedKey)
		rv.Blur = rng.Intn(2) == 1
		rv.BlurSigma = blurSigmaMin + rng.Float64()*(blurSigmaMax-blurSigmaMin)
		rv.TitleSizeScale = 1.0 + (rng.Float64()*2-1)*titleJitterSpan
		rv.SpacingShift = rng.Intn(2*spacingJitterPx+1) - spacingJitterPx
		// One card in eight gets the reversed-title gag.
		rv.ReverseTitle = rng.Intn(8) == 0
	}

	return rv
}

// newSource builds the deterministic random source for one request.
func newSource(seedKey string) *rand.Rand {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seedKey))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
