package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Timer  FontName = "timer"
	Banner FontName = "banner"
	Menu   FontName = "menu"
	Small  FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadAll registers every face the game uses. Called once at startup.
func LoadAll() {
	LoadFontWithSize(HUD, goregular.TTF, 18)
	LoadFontWithSize(Timer, goregular.TTF, 36)
	LoadFontWithSize(Banner, goregular.TTF, 48)
	LoadFontWithSize(Menu, goregular.TTF, 24)
	LoadFontWithSize(Small, goregular.TTF, 14)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
