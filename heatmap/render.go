package heatmap

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/kinshipmap"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Options controls the appearance of the heatmap.
type Options struct {
	Title string

	// FontSize is the point size of the per-cell annotations. Axis labels,
	// the colour bar and the title are sized relative to it.
	FontSize float64

	// CellSize is the edge of one cell in pixels. Zero derives it from
	// FontSize.
	CellSize float64

	Palette Palette
}

const (
	margin       = 20.0
	labelPad     = 6.0
	colorBarGap  = 30.0
	colorBarW    = 24.0
	tickLen      = 5.0
	titleSize    = 20.0
	minCellSize  = 16.0
	minBarHeight = 300.0
)

var gridLineColor = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}

type faces struct {
	annot font.Face
	label font.Face
	bar   font.Face
	title font.Face
}

func newFaces(opts Options) (faces, error) {
	var out faces
	var err error

	if out.annot, err = fontFace(opts.FontSize); err != nil {
		return out, err
	}
	if out.label, err = fontFace(opts.FontSize + 2); err != nil {
		return out, err
	}
	if out.bar, err = fontFace(opts.FontSize + 3); err != nil {
		return out, err
	}
	if out.title, err = fontFace(titleSize); err != nil {
		return out, err
	}

	return out, nil
}

// layout holds the pixel geometry of one rendering.
type layout struct {
	cell   float64
	gridX  float64 // left edge of the grid
	gridY  float64 // top edge of the grid
	gridWH float64 // the grid is square
	barX   float64
	barY   float64
	barH   float64
	width  int
	height int
}

// cellRect returns the top-left corner of the cell at row i, column j.
func (l layout) cellRect(i, j int) (x, y float64) {
	return l.gridX + float64(j)*l.cell, l.gridY + float64(i)*l.cell
}

func newLayout(m *kinshipmap.Matrix, scale kinshipmap.Scale, opts Options, f faces) layout {
	measure := gg.NewContext(1, 1)

	cell := opts.CellSize
	if cell <= 0 {
		measure.SetFontFace(f.annot)
		w, _ := measure.MeasureString("-100.00")
		cell = math.Max(minCellSize, math.Ceil(w+4))
	}

	measure.SetFontFace(f.label)
	labelW := 0.0
	for _, v := range m.Labels() {
		if w, _ := measure.MeasureString(v); w > labelW {
			labelW = w
		}
	}

	measure.SetFontFace(f.bar)
	tickW := 0.0
	for _, v := range colorBarTicks(scale) {
		if w, _ := measure.MeasureMultilineString(v.text, 1); w > tickW {
			tickW = w
		}
	}

	measure.SetFontFace(f.title)
	titleW, titleH := measure.MeasureString(strings.TrimSpace(opts.Title))

	l := layout{cell: cell}
	l.gridWH = cell * float64(m.Len())
	l.gridX = margin + labelW + labelPad
	l.gridY = margin + titleH + 2*labelPad
	l.barX = l.gridX + l.gridWH + colorBarGap
	l.barY = l.gridY
	l.barH = math.Max(l.gridWH, minBarHeight)

	right := l.barX + colorBarW + tickLen + labelPad + tickW + margin
	if minRight := l.gridX + titleW + margin; right < minRight {
		right = minRight
	}
	bottom := l.gridY + math.Max(l.gridWH+labelPad+labelW, l.barH) + margin

	l.width = int(math.Ceil(right))
	l.height = int(math.Ceil(bottom))

	return l
}

// Render draws the lower triangle of m as a PNG heatmap onto w. Each cell is
// coloured by the scale interval holding its value and annotated with
// kinship*100.
func Render(w io.Writer, m *kinshipmap.Matrix, scale kinshipmap.Scale, opts Options) error {
	ctx, err := draw(m, scale, opts)
	if err != nil {
		return err
	}

	return ctx.EncodePNG(w)
}

// RenderFile is Render into a newly created file.
func RenderFile(path string, m *kinshipmap.Matrix, scale kinshipmap.Scale, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Render(f, m, scale, opts); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func draw(m *kinshipmap.Matrix, scale kinshipmap.Scale, opts Options) (*gg.Context, error) {
	if opts.FontSize <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", opts.FontSize)
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette(scale)
	}
	if err := opts.Palette.Fit(scale); err != nil {
		return nil, err
	}

	f, err := newFaces(opts)
	if err != nil {
		return nil, err
	}

	l := newLayout(m, scale, opts, f)

	ctx := gg.NewContext(l.width, l.height)
	ctx.SetColor(color.White)
	ctx.Clear()

	drawCells(ctx, m, kinshipmap.ClassifyMatrix(m, scale), scale, opts.Palette, l, f)
	drawAxisLabels(ctx, m, l, f)
	drawColorBar(ctx, scale, opts.Palette, l, f)

	ctx.SetFontFace(f.title)
	ctx.SetColor(color.Black)
	ctx.DrawStringAnchored(strings.TrimSpace(opts.Title), l.gridX+l.gridWH/2, margin, 0.5, 1)

	return ctx, nil
}

// drawCells fills every cell below the diagonal with the palette colour of its
// interval in classes. The diagonal and the upper triangle are left blank.
func drawCells(ctx *gg.Context, m *kinshipmap.Matrix, classes [][]int, scale kinshipmap.Scale, palette Palette, l layout, f faces) {
	ctx.SetFontFace(f.annot)
	ctx.SetLineWidth(0.5)

	for i := 1; i < m.Len(); i++ {
		for j := 0; j < i; j++ {
			x, y := l.cellRect(i, j)
			v := scale.Display(m.At(i, j))
			bg := palette[classes[i][j]]

			ctx.DrawRectangle(x, y, l.cell, l.cell)
			ctx.SetColor(bg)
			ctx.FillPreserve()
			ctx.SetColor(gridLineColor)
			ctx.Stroke()

			ctx.SetColor(textColorOn(bg))
			ctx.DrawStringAnchored(annotation(v), x+l.cell/2, y+l.cell/2, 0.5, 0.5)
		}
	}
}

// annotation formats a scaled value as kinship*100 with two decimals.
func annotation(scaled float64) string {
	return strconv.FormatFloat(scaled/kinshipmap.ScaleFactor*100, 'f', 2, 64)
}

func drawAxisLabels(ctx *gg.Context, m *kinshipmap.Matrix, l layout, f faces) {
	ctx.SetFontFace(f.label)
	ctx.SetColor(color.Black)

	for i, v := range m.Labels() {
		center := float64(i)*l.cell + l.cell/2

		// Row labels, right-aligned against the grid
		ctx.DrawStringAnchored(v, l.gridX-labelPad, l.gridY+center, 1, 0.5)

		// Column labels, rotated to read upward beneath the grid
		x, y := l.gridX+center, l.gridY+l.gridWH+labelPad
		ctx.Push()
		ctx.RotateAbout(gg.Radians(-90), x, y)
		ctx.DrawStringAnchored(v, x, y, 1, 0.5)
		ctx.Pop()
	}
}
