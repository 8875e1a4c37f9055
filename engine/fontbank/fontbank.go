// Package fontbank loads and caches font faces. Parsed fonts and built
// faces are process-lifetime shared state; the bank is safe for
// concurrent readers.
package fontbank

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// FontUnavailableError reports a font file that could not be loaded or
// parsed. Callers fall back to the bank's built-in face rather than
// failing the render.
type FontUnavailableError struct {
	Path string
	Err  error
}

func (e *FontUnavailableError) Error() string {
	return fmt.Sprintf("font %q unavailable: %v", e.Path, e.Err)
}

func (e *FontUnavailableError) Unwrap() error { return e.Err }

type faceKey struct {
	path string
	size float64
}

// Bank caches parsed fonts and sized faces.
type Bank struct {
	mu    sync.Mutex
	fonts map[string]*truetype.Font
	otfs  map[string]*opentype.Font
	faces map[faceKey]font.Face
}

func New() *Bank {
	return &Bank{
		fonts: make(map[string]*truetype.Font),
		otfs:  make(map[string]*opentype.Font),
		faces: make(map[faceKey]font.Face),
	}
}

// FallbackFace is the built-in face used when a configured font cannot
// be loaded.
func (b *Bank) FallbackFace() font.Face { return basicfont.Face7x13 }

// Face returns a cached face for the font file at the given point size.
// A load or parse failure returns the fallback face together with a
// FontUnavailableError so the caller can log the degraded render.
func (b *Bank) Face(path string, size float64) (font.Face, error) {
	if path == "" {
		return b.FallbackFace(), &FontUnavailableError{Path: path, Err: fmt.Errorf("no font configured")}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	key := faceKey{path: path, size: size}
	if face, ok := b.faces[key]; ok {
		return face, nil
	}

	face, err := b.buildFace(path, size)
	if err != nil {
		return b.FallbackFace(), &FontUnavailableError{Path: path, Err: err}
	}
	b.faces[key] = face
	return face, nil
}

func (b *Bank) buildFace(path string, size float64) (font.Face, error) {
	if parsed, ok := b.fonts[path]; ok {
		return truetype.NewFace(parsed, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
	}
	if parsed, ok := b.otfs[path]; ok {
		return opentype.NewFace(parsed, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Try truetype first, then opentype; the card families mix TTF and
	// OTF reference fonts.
	if parsed, terr := truetype.Parse(data); terr == nil {
		b.fonts[path] = parsed
		return truetype.NewFace(parsed, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
	}
	parsed, oerr := opentype.Parse(data)
	if oerr != nil {
		return nil, fmt.Errorf("parse failed: %w", oerr)
	}
	b.otfs[path] = parsed
	return opentype.NewFace(parsed, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}
