// Package text measures and wraps title strings into glyph layouts.
package text

import (
	"image"
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/CollinHeist/titlecard-engine/engine/fontbank"
)

// Shrink-to-fit parameters: the font is reduced stepwise until the
// wrapped block fits its box or the floor is reached, then the layout is
// accepted as-is and overflow is clipped by the compositor.
const (
	shrinkStepPt   = 8.0
	shrinkFloorPct = 0.40
)

// Spec describes how a block of text is shaped.
type Spec struct {
	FontFile   string
	SizePt     float64
	LineHeight float64 // line height as a multiple of the font size
	Interline  int     // additional pixels between lines
	Uppercase  bool
	// MaxLineWidth wraps by character count instead of pixel width when
	// positive. Zero falls back to pixel wrapping against the box.
	MaxLineWidth int
	// TopHeavy packs words from the first line down so earlier lines run
	// longest; the default packs upward from the last line.
	TopHeavy bool
	// Reverse flips the character order before shaping. Purely
	// cosmetic; used by the reversed-title gag.
	Reverse bool
}

// Line is one wrapped line with its measured width.
type Line struct {
	Text  string
	Width float64
}

// Layout is the shaped result: ordered lines, the chosen face and the
// block's total height.
type Layout struct {
	Lines        []Line
	Face         font.Face
	FontSize     float64
	LineHeightPx float64
	Height       float64
	// Degraded is set when the configured font was unavailable and the
	// built-in fallback face was used instead.
	Degraded bool
}

// Shape wraps text to maxLines within box, by character budget when the
// spec carries one and by pixel width otherwise. The font size starts
// at spec.SizePt and shrinks by a fixed step until the block fits or the
// size floor is hit. Shape never fails: an unloadable font degrades to
// the fallback face, and an overflowing layout is returned for clipping.
func Shape(raw string, spec Spec, box image.Rectangle, maxLines int, bank *fontbank.Bank) Layout {
	text := normalize(raw, spec)
	if maxLines < 1 {
		maxLines = 1
	}
	if spec.LineHeight <= 0 {
		spec.LineHeight = 1.1
	}

	measure := gg.NewContext(1, 1)
	floor := spec.SizePt * shrinkFloorPct

	var layout Layout
	for size := spec.SizePt; ; size -= shrinkStepPt {
		if size < floor {
			size = floor
		}
		face, err := bank.Face(spec.FontFile, size)
		layout = wrapAt(measure, text, face, size, spec, box, maxLines)
		layout.Degraded = err != nil
		if layout.fits(box, maxLines) || size <= floor || layout.Degraded {
			break
		}
	}

	// The line-count invariant holds even at the floor: clip extra lines.
	if len(layout.Lines) > maxLines {
		layout.Lines = layout.Lines[:maxLines]
		layout.Height = float64(maxLines) * layout.LineHeightPx
	}
	return layout
}

func (l Layout) fits(box image.Rectangle, maxLines int) bool {
	if len(l.Lines) > maxLines || l.Height > float64(box.Dy()) {
		return false
	}
	for _, line := range l.Lines {
		if line.Width > float64(box.Dx()) {
			return false
		}
	}
	return true
}

func wrapAt(measure *gg.Context, text string, face font.Face, size float64, spec Spec, box image.Rectangle, maxLines int) Layout {
	measure.SetFontFace(face)

	var wrapped []string
	if spec.MaxLineWidth > 0 {
		wrapped = wrapChars(text, spec.MaxLineWidth, spec.TopHeavy)
	} else {
		wrapped = measure.WordWrap(text, float64(box.Dx()))
	}
	if len(wrapped) == 0 {
		wrapped = []string{""}
	}

	lineHeight := size*spec.LineHeight + float64(spec.Interline)
	lines := make([]Line, len(wrapped))
	for i, lineText := range wrapped {
		width, _ := measure.MeasureString(lineText)
		lines[i] = Line{Text: lineText, Width: width}
	}

	return Layout{
		Lines:        lines,
		Face:         face,
		FontSize:     size,
		LineHeightPx: lineHeight,
		Height:       float64(len(lines)) * lineHeight,
	}
}

// wrapChars greedily packs words into lines of at most limit runes. A
// single word longer than the limit becomes its own overflowing line;
// the shrink loop handles its pixel width. Top-heavy packing fills from
// the first line down, the default from the last line up so the longer
// lines sit at the bottom of the block.
func wrapChars(text string, limit int, topHeavy bool) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	if topHeavy {
		lines := []string{words[0]}
		for _, word := range words[1:] {
			last := lines[len(lines)-1]
			if utf8.RuneCountInString(last)+1+utf8.RuneCountInString(word) <= limit {
				lines[len(lines)-1] = last + " " + word
				continue
			}
			lines = append(lines, word)
		}
		return lines
	}

	lines := []string{words[len(words)-1]}
	for i := len(words) - 2; i >= 0; i-- {
		word := words[i]
		if utf8.RuneCountInString(word)+1+utf8.RuneCountInString(lines[0]) <= limit {
			lines[0] = word + " " + lines[0]
			continue
		}
		lines = append([]string{word}, lines...)
	}
	return lines
}

func normalize(raw string, spec Spec) string {
	text := strings.Join(strings.Fields(raw), " ")
	if spec.Uppercase {
		text = strings.ToUpper(text)
	}
	if spec.Reverse {
		runes := []rune(text)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		text = string(runes)
	}
	return text
}
