package heatmap

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/carbocation/kinshipmap"
)

func testMatrix(t *testing.T) *kinshipmap.Matrix {
	t.Helper()

	m, _, err := kinshipmap.Build([]kinshipmap.Relationship{
		{ID1: "A", ID2: "B", Kinship: 0.25},
		{ID1: "A", ID2: "C", Kinship: -0.02},
		{ID1: "B", ID2: "C", Kinship: 0.4},
	})
	if err != nil {
		t.Fatal(err)
	}

	return m
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestDefaultPalette(t *testing.T) {
	for _, policy := range []kinshipmap.NegativePolicy{kinshipmap.PreserveNegative, kinshipmap.ClampNegative} {
		scale := kinshipmap.NewScale(policy)
		p := DefaultPalette(scale)
		if err := p.Fit(scale); err != nil {
			t.Errorf("%s: %v", policy, err)
		}

		// The darkest red always marks duplicates
		if !sameColor(p[len(p)-1], color.RGBA{R: 0x63, G: 0x0e, B: 0x01, A: 0xff}) {
			t.Errorf("%s: unexpected duplicate colour %v", policy, p[len(p)-1])
		}
	}
}

func TestNewPaletteRejectsGarbage(t *testing.T) {
	if _, err := NewPalette([]string{"#fee3df", "not-a-colour"}); err == nil {
		t.Errorf("Expected an error for an invalid colour")
	}
}

func TestPercent(t *testing.T) {
	th := kinshipmap.ScaledThresholds()

	for scaled, expected := range map[float64]string{
		-10000: "-100",
		5000:   "50",
		0:      "0",
		th[0]:  "4.4194",
		th[3]:  "35.3553",
	} {
		if got := percent(scaled); got != expected {
			t.Errorf("%v: expected %s, got %s", scaled, expected, got)
		}
	}

	if got := annotation(2500); got != "25.00" {
		t.Errorf("Expected 25.00, got %s", got)
	}
}

func TestColorBarTicks(t *testing.T) {
	scale := kinshipmap.NewScale(kinshipmap.PreserveNegative)
	ticks := colorBarTicks(scale)

	boundaries := 0
	for _, v := range ticks {
		if v.pos < 0 || v.pos > 1 {
			t.Errorf("Tick %q out of range: %v", v.text, v.pos)
		}
		if v.boundary {
			boundaries++
		}
	}

	if boundaries != 11 {
		t.Errorf("Expected 11 boundary ticks, got %d", boundaries)
	}
}

func TestRenderLowerTriangle(t *testing.T) {
	m := testMatrix(t)
	scale := kinshipmap.NewScale(kinshipmap.PreserveNegative)
	opts := Options{Title: DefaultTitle, FontSize: 7, CellSize: 40, Palette: DefaultPalette(scale)}

	buf := &bytes.Buffer{}
	if err := Render(buf, m, scale, opts); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}

	f, err := newFaces(opts)
	if err != nil {
		t.Fatal(err)
	}
	l := newLayout(m, scale, opts, f)

	if b := img.Bounds(); b.Dx() != l.width || b.Dy() != l.height {
		t.Fatalf("Expected %dx%d image, got %v", l.width, l.height, b)
	}

	// Sample each cell near its top-left corner, away from the annotation
	// and the outline.
	at := func(i, j int) color.Color {
		x, y := l.cellRect(i, j)
		return img.At(int(x)+3, int(y)+3)
	}

	// Row B (1), column A (0) holds 0.25, which is first degree
	if want := opts.Palette[scale.Index(2500)]; !sameColor(at(1, 0), want) {
		t.Errorf("B/A: expected %v, got %v", want, at(1, 0))
	}

	// Row C (2), column B (1) holds 0.4, which is a duplicate
	if want := opts.Palette[scale.Index(4000)]; !sameColor(at(2, 1), want) {
		t.Errorf("C/B: expected %v, got %v", want, at(2, 1))
	}

	// The diagonal and the upper triangle are masked
	for _, ij := range [][2]int{{0, 0}, {0, 1}, {1, 2}} {
		if !sameColor(at(ij[0], ij[1]), color.White) {
			t.Errorf("%v: expected a blank cell, got %v", ij, at(ij[0], ij[1]))
		}
	}

	// Every drawn cell takes the colour of its classified interval
	classes := kinshipmap.ClassifyMatrix(m, scale)
	for i := 1; i < m.Len(); i++ {
		for j := 0; j < i; j++ {
			if want := opts.Palette[classes[i][j]]; !sameColor(at(i, j), want) {
				t.Errorf("(%d,%d): expected %v for interval %d, got %v", i, j, want, classes[i][j], at(i, j))
			}
		}
	}
}

func TestRenderClampedNegative(t *testing.T) {
	m := testMatrix(t)
	scale := kinshipmap.NewScale(kinshipmap.ClampNegative)
	opts := Options{Title: DefaultTitle, FontSize: 7, CellSize: 40, Palette: DefaultPalette(scale)}

	buf := &bytes.Buffer{}
	if err := Render(buf, m, scale, opts); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}

	f, err := newFaces(opts)
	if err != nil {
		t.Fatal(err)
	}
	x, y := newLayout(m, scale, opts, f).cellRect(2, 0)

	// Row C (2), column A (0) holds -0.02, drawn as unrelated when clamped
	if got := img.At(int(x)+3, int(y)+3); !sameColor(got, opts.Palette[0]) {
		t.Errorf("C/A: expected %v, got %v", opts.Palette[0], got)
	}
}

func TestRenderRejectsWrongPalette(t *testing.T) {
	m := testMatrix(t)
	scale := kinshipmap.NewScale(kinshipmap.ClampNegative)

	err := Render(&bytes.Buffer{}, m, scale, Options{FontSize: 7, Palette: DefaultPalette(kinshipmap.NewScale(kinshipmap.PreserveNegative))})
	if err == nil {
		t.Errorf("Expected a palette size mismatch error")
	}
}

func TestRenderHistogram(t *testing.T) {
	m := testMatrix(t)
	scale := kinshipmap.NewScale(kinshipmap.PreserveNegative)

	sum, err := kinshipmap.Summarize(m, scale)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := RenderHistogram(buf, sum, scale, nil); err != nil {
		t.Fatal(err)
	}

	if _, _, err := image.Decode(buf); err != nil {
		t.Errorf("Histogram is not a decodable image: %v", err)
	}
}

func TestJSONConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	contents := `{"title": "Cohort", "cell_size": 50, "colors": ["#ffffff", "#eeeeee", "#dddddd", "#cccccc", "#000000"]}`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseJSONConfigFromPath(path)
	if err != nil {
		t.Fatal(err)
	}

	clamp := kinshipmap.NewScale(kinshipmap.ClampNegative)
	opts, err := cfg.Options(clamp, 7)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Title != "Cohort" || opts.CellSize != 50 || opts.FontSize != 7 || len(opts.Palette) != 5 {
		t.Errorf("Unexpected options %+v", opts)
	}

	// Five colours cannot cover the ten intervals of the signed scale
	if _, err := cfg.Options(kinshipmap.NewScale(kinshipmap.PreserveNegative), 7); err == nil {
		t.Errorf("Expected a palette size mismatch error")
	}
}

func TestJSONConfigSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"title": `), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ParseJSONConfigFromPath(path); err == nil {
		t.Errorf("Expected a parse error")
	}
}
