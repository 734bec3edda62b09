package heatmap

import (
	"encoding/json"
	"log"
	"os"

	"github.com/carbocation/kinshipmap"
	"github.com/carbocation/pfx"
)

// DefaultTitle is drawn above the heatmap unless overridden.
const DefaultTitle = "Potential Relationship (Kinship*100)"

// JSONConfig holds optional rendering overrides, read from a file such as:
//
//	{"title": "Cohort 7", "cell_size": 40, "colors": ["#fee3df", ...]}
type JSONConfig struct {
	ConfigPath string   `json:"-"`
	Title      string   `json:"title"`
	Colors     []string `json:"colors"`
	CellSize   float64  `json:"cell_size"`
	FontSize   float64  `json:"font_size"`
}

func ParseJSONConfigFromPath(path string) (JSONConfig, error) {
	out := JSONConfig{ConfigPath: kinshipmap.ExpandHome(path)}

	f, err := os.Open(out.ConfigPath)
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(&out)
	if err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}

		return out, pfx.Err(err)
	}

	return out, nil
}

// Options merges the config onto the defaults for the scale. A zero-valued
// JSONConfig yields the defaults with the given font size.
func (c JSONConfig) Options(scale kinshipmap.Scale, fontSize float64) (Options, error) {
	opts := Options{
		Title:    DefaultTitle,
		FontSize: fontSize,
		Palette:  DefaultPalette(scale),
	}

	if c.Title != "" {
		opts.Title = c.Title
	}
	if c.FontSize > 0 {
		opts.FontSize = c.FontSize
	}
	if c.CellSize > 0 {
		opts.CellSize = c.CellSize
	}
	if len(c.Colors) > 0 {
		p, err := NewPalette(c.Colors)
		if err != nil {
			return opts, err
		}
		if err := p.Fit(scale); err != nil {
			return opts, pfx.Err(err)
		}
		opts.Palette = p
	}

	return opts, nil
}
