package heatmap

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/carbocation/kinshipmap"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderHistogram draws a bar chart with the number of pairs in each interval
// of the scale, each bar filled with that interval's colour.
func RenderHistogram(w io.Writer, sum kinshipmap.Summary, scale kinshipmap.Scale, palette Palette) error {
	if palette == nil {
		palette = DefaultPalette(scale)
	}
	if err := palette.Fit(scale); err != nil {
		return err
	}
	if len(sum.Counts) != len(palette) {
		return fmt.Errorf("summary has %d interval counts but the scale has %d intervals", len(sum.Counts), len(palette))
	}

	fnt, err := regularFont()
	if err != nil {
		return err
	}

	// go-chart refuses a zero-height range, so the axis always reaches at
	// least 1
	maxCount := 1.0
	bars := make([]chart.Value, 0, len(sum.Counts))
	for i, iv := range scale.Intervals() {
		c := float64(sum.Counts[i])
		if c > maxCount {
			maxCount = c
		}

		fill := toDrawingColor(palette[i])
		bars = append(bars, chart.Value{
			Label: iv.Name(),
			Value: c,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Pairs per relationship band (n=%d)", sum.Pairs),
		Font:     fnt,
		Width:    110 * len(bars),
		Height:   480,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}

// RenderHistogramFile is RenderHistogram into a newly created file.
func RenderHistogramFile(path string, sum kinshipmap.Summary, scale kinshipmap.Scale, palette Palette) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := RenderHistogram(f, sum, scale, palette); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func toDrawingColor(c color.Color) drawing.Color {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
}
