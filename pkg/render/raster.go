package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/surface"
	"github.com/decker502/circularslider/pkg/utils"
)

// RasterOptions 栅格化参数
type RasterOptions struct {
	Scale      float64     // 输出缩放，0 视为 1
	Background color.Color // nil 表示透明背景
}

// Rasterize 把容器图元树栅格化为 RGBA 图片
//
// 图形部分导出为 SVG 后交给 oksvg 解析、rasterx 扫描；
// oksvg 不支持文本，文本节点用 Go Regular 字体单独叠加。
func Rasterize(c *surface.Container, opts RasterOptions) (*image.RGBA, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	size := c.Size()
	w := int(math.Ceil(size.W * scale))
	h := int(math.Ceil(size.H * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cannot rasterize container of size %gx%g", size.W, size.H)
	}

	var buf bytes.Buffer
	if err := writeSVG(&buf, c, svgOptions{skipText: true, skipClasses: true}); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(&buf, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse generated svg: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	if err := drawTexts(img, c, scale); err != nil {
		return nil, err
	}
	return img, nil
}

// drawTexts 在图片上叠加所有文本节点
func drawTexts(img *image.RGBA, c *surface.Container, scale float64) error {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse legend font: %w", err)
	}
	faces := make(map[float64]font.Face)
	defer func() {
		for _, f := range faces {
			f.Close()
		}
	}()

	offsets := []geometry.Point{{}}
	var drawErr error
	c.Walk(func(sh surface.Shape) bool {
		base := offsets[len(offsets)-1]
		if dx, dy, ok := surface.ParseTranslate(sh.Get("transform")); ok {
			base = geometry.Point{X: base.X + dx, Y: base.Y + dy}
		}
		offsets = append(offsets, base)

		if sh.Kind() != components.ShapeText || sh.Text() == "" || drawErr != nil {
			return true
		}
		size, ok := sh.Float("font-size")
		if !ok || size <= 0 {
			size = DefaultFontSize
		}
		face, ok := faces[size]
		if !ok {
			face, err = opentype.NewFace(fnt, &opentype.FaceOptions{
				Size:    size * scale,
				DPI:     72,
				Hinting: font.HintingNone,
			})
			if err != nil {
				drawErr = fmt.Errorf("failed to create %gpx face: %w", size, err)
				return true
			}
			faces[size] = face
		}

		fill := color.RGBA{A: 0xff}
		if v, ok := sh.Lookup("fill"); ok {
			fill = utils.MustParseColor(v)
		}
		x, _ := sh.Float("x")
		y, _ := sh.Float("y")
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(fill),
			Face: face,
			Dot:  fixed.P(int(math.Round((base.X+x)*scale)), int(math.Round((base.Y+y)*scale))),
		}
		d.DrawString(sh.Text())
		return true
	}, func(surface.Shape) {
		offsets = offsets[:len(offsets)-1]
	})
	return drawErr
}
