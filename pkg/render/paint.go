package render

import (
	"image/color"

	"github.com/decker502/circularslider/pkg/surface"
	"github.com/decker502/circularslider/pkg/utils"
)

// DefaultFontSize 没有 font-size 属性时的默认字号
const DefaultFontSize = 16.0

// Paint 读取 fill/stroke 颜色
// 属性缺失时 fill 默认为黑色，stroke 默认不绘制；none 不绘制
func Paint(sh surface.Shape, attr string, defaultBlack bool) (color.RGBA, bool) {
	v, ok := sh.Lookup(attr)
	if !ok {
		if defaultBlack {
			return color.RGBA{A: 0xff}, true
		}
		return color.RGBA{}, false
	}
	if v == "none" {
		return color.RGBA{}, false
	}
	c := utils.MustParseColor(v)
	return c, c.A != 0
}

// StrokeWidth 读取描边宽度，缺失时为 1
func StrokeWidth(sh surface.Shape) float64 {
	if w, ok := sh.Float("stroke-width"); ok {
		return w
	}
	return 1
}
