package heatmap

import (
	"image/color"
	"math"
	"strconv"

	"github.com/carbocation/kinshipmap"
	"github.com/fogleman/gg"
)

type tick struct {
	pos      float64 // 0 at the bottom of the bar, 1 at the top
	text     string
	boundary bool
}

// colorBarTicks labels each interval edge with its kinship*100 value and the
// middle of each named interval with its name. Intervals get equal heights
// regardless of their numeric width.
func colorBarTicks(scale kinshipmap.Scale) []tick {
	ivs := scale.Intervals()
	n := float64(len(ivs))

	out := make([]tick, 0, 2*len(ivs)+1)
	for i, v := range scale.Boundaries() {
		out = append(out, tick{pos: float64(i) / n, text: percent(v), boundary: true})
	}
	for i, iv := range ivs {
		if iv.Label == "" {
			continue
		}
		out = append(out, tick{pos: (float64(i) + 0.5) / n, text: iv.Label})
	}

	return out
}

// percent converts a scaled value to kinship*100, to at most four decimals.
func percent(scaled float64) string {
	v := math.Round(scaled/kinshipmap.ScaleFactor*100*1e4) / 1e4
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func drawColorBar(ctx *gg.Context, scale kinshipmap.Scale, palette Palette, l layout, f faces) {
	n := len(palette)
	segment := l.barH / float64(n)

	for i, c := range palette {
		ctx.DrawRectangle(l.barX, l.barY+l.barH-float64(i+1)*segment, colorBarW, segment)
		ctx.SetColor(c)
		ctx.Fill()
	}

	ctx.SetColor(color.Black)
	ctx.SetLineWidth(1)
	ctx.DrawRectangle(l.barX, l.barY, colorBarW, l.barH)
	ctx.Stroke()

	ctx.SetFontFace(f.bar)
	textX := l.barX + colorBarW + tickLen + labelPad
	for _, t := range colorBarTicks(scale) {
		y := l.barY + l.barH*(1-t.pos)

		if t.boundary {
			ctx.DrawLine(l.barX+colorBarW, y, l.barX+colorBarW+tickLen, y)
			ctx.Stroke()
		}

		ctx.DrawStringWrapped(t.text, textX, y, 0, 0.5, math.MaxInt16, 1, gg.AlignLeft)
	}
}
