package engine

import (
	"fmt"

	"github.com/CollinHeist/titlecard-engine/engine/variant"
)

// UnknownCardTypeError reports a request for a card family outside the
// closed variant set.
type UnknownCardTypeError struct {
	CardType variant.ID
}

func (e *UnknownCardTypeError) Error() string {
	return fmt.Sprintf("unknown card type %q", e.CardType)
}

// AssetLoadError reports a missing or unusable source/logo raster. It
// fails only the one request; other in-flight renders are unaffected.
type AssetLoadError struct {
	Asset string // "source" or "logo"
	Err   error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load %s asset: %v", e.Asset, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }
