package scenes

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSet 页面使用的字体
type fontSet struct {
	hero    *text.GoTextFace
	heading *text.GoTextFace
	title   *text.GoTextFace
	body    *text.GoTextFace
	small   *text.GoTextFace
	stat    *text.GoTextFace
}

// loadFonts 从内置的 Go 字体创建字体集
func loadFonts() (*fontSet, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &fontSet{
		hero:    &text.GoTextFace{Source: bold, Size: 48},
		heading: &text.GoTextFace{Source: bold, Size: 34},
		title:   &text.GoTextFace{Source: bold, Size: 20},
		body:    &text.GoTextFace{Source: regular, Size: 16},
		small:   &text.GoTextFace{Source: regular, Size: 13},
		stat:    &text.GoTextFace{Source: bold, Size: 40},
	}, nil
}
