package heatmap

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	goRegular     *truetype.Font
	goRegularErr  error
	goRegularOnce sync.Once
)

// regularFont returns the embedded Go Regular typeface, so rendering never
// depends on fonts installed on the host.
func regularFont() (*truetype.Font, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = truetype.Parse(goregular.TTF)
	})

	return goRegular, goRegularErr
}

func fontFace(points float64) (font.Face, error) {
	f, err := regularFont()
	if err != nil {
		return nil, err
	}

	return truetype.NewFace(f, &truetype.Options{Size: points, Hinting: font.HintingFull}), nil
}
