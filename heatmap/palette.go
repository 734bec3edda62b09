package heatmap

import (
	"fmt"
	"image/color"

	"github.com/carbocation/kinshipmap"
	"github.com/icza/gox/imagex/colorx"
)

// DefaultColors runs from deep blue (most negative) through pale pink
// (unrelated) to dark red (duplicate), one colour per interval of the
// sign-preserving scale.
var DefaultColors = []string{
	"#0253c4", "#0a70ff", "#418efa", "#82b4fa", "#b8d5ff",
	"#fee3df", "#fab6ac", "#ed5f4a", "#bd1a02", "#630e01",
}

// Palette holds one colour per interval of a kinshipmap.Scale.
type Palette []color.Color

// NewPalette parses hex colour codes such as #630e01.
func NewPalette(hexColors []string) (Palette, error) {
	out := make(Palette, 0, len(hexColors))
	for _, v := range hexColors {
		c, err := colorx.ParseHexColor(v)
		if err != nil {
			return nil, fmt.Errorf("could not parse colour %q: %w", v, err)
		}
		out = append(out, c)
	}

	return out, nil
}

// DefaultPalette returns the built-in colours for the scale. When negatives
// are clamped only the five positive colours are used.
func DefaultPalette(scale kinshipmap.Scale) Palette {
	colors := DefaultColors
	if n := len(scale.Intervals()); n < len(colors) {
		colors = colors[len(colors)-n:]
	}

	p, err := NewPalette(colors)
	if err != nil {
		// The defaults are fixed; failing to parse them is a programming error
		panic(err)
	}

	return p
}

// Fit returns an error unless the palette has exactly one colour per interval.
func (p Palette) Fit(scale kinshipmap.Scale) error {
	if x, y := len(p), len(scale.Intervals()); x != y {
		return fmt.Errorf("palette has %d colours but the %s scale has %d intervals", x, scale.Policy(), y)
	}

	return nil
}

// textColorOn picks black or white text, whichever reads better on bg.
func textColorOn(bg color.Color) color.Color {
	r, g, b, _ := bg.RGBA()

	// Rec. 601 luma on 16-bit channels
	luma := (299*float64(r) + 587*float64(g) + 114*float64(b)) / 1000 / 0xffff
	if luma < 0.5 {
		return color.White
	}

	return color.Black
}
