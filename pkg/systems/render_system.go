package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/render"
	"github.com/decker502/circularslider/pkg/surface"
)

// 折线近似圆弧时相邻点的最大弧长（像素）
const arcStep = 3.0

// RenderSystem 把容器图元树绘制到 Ebitengine 屏幕
//
// 每帧从根节点先序遍历，子元素按添加顺序绘制，后添加的在上层。
// 只支持 translate 变换。
type RenderSystem struct {
	container *surface.Container
	source    *text.GoTextFaceSource
	faces     map[float64]*text.GoTextFace
	warned    map[string]bool // 每种无法绘制的属性只记录一次日志
}

// NewRenderSystem 创建渲染系统并加载 Go Regular 字体
func NewRenderSystem(c *surface.Container) (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load legend font: %w", err)
	}
	return &RenderSystem{
		container: c,
		source:    source,
		faces:     make(map[float64]*text.GoTextFace),
		warned:    make(map[string]bool),
	}, nil
}

// Draw 绘制整棵图元树
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	offsets := []geometry.Point{{}}
	s.container.Walk(func(sh surface.Shape) bool {
		base := offsets[len(offsets)-1]
		if dx, dy, ok := surface.ParseTranslate(sh.Get("transform")); ok {
			base = geometry.Point{X: base.X + dx, Y: base.Y + dy}
		}
		offsets = append(offsets, base)
		s.drawShape(screen, sh, base)
		return true
	}, func(surface.Shape) {
		offsets = offsets[:len(offsets)-1]
	})
}

func (s *RenderSystem) drawShape(screen *ebiten.Image, sh surface.Shape, off geometry.Point) {
	switch sh.Kind() {
	case components.ShapeCircle:
		s.drawCircle(screen, sh, off)
	case components.ShapePath:
		s.drawPath(screen, sh, off)
	case components.ShapeRect:
		s.drawRect(screen, sh, off)
	case components.ShapeText:
		s.drawText(screen, sh, off)
	}
}

func (s *RenderSystem) drawCircle(screen *ebiten.Image, sh surface.Shape, off geometry.Point) {
	cx, _ := sh.Float("cx")
	cy, _ := sh.Float("cy")
	r, ok := sh.Float("r")
	if !ok || r <= 0 {
		return
	}
	cx += off.X
	cy += off.Y

	if fill, ok := render.Paint(sh, "fill", true); ok {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), fill, true)
	}
	stroke, ok := render.Paint(sh, "stroke", false)
	if !ok {
		return
	}
	width := render.StrokeWidth(sh)
	dashes := surface.SplitNumbers(sh.Get("stroke-dasharray"))
	if len(dashes) == 0 {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), float32(width), stroke, true)
		return
	}
	// SVG 圆的描边从 3 点钟方向开始顺时针绘制
	full := render.Arc{Center: geometry.Point{X: cx, Y: cy}, Radius: r, Start: 0, Sweep: 2 * math.Pi}
	for _, iv := range render.DashIntervals(full.Length(), dashes) {
		strokePolyline(screen, full.Sub(iv[0], iv[1]).Polyline(arcStep), width, stroke)
	}
}

func (s *RenderSystem) drawPath(screen *ebiten.Image, sh surface.Shape, off geometry.Point) {
	stroke, ok := render.Paint(sh, "stroke", false)
	if !ok {
		return
	}
	cmds, err := render.ParsePath(sh.Get("d"))
	if err != nil {
		s.warnOnce("d", "[RenderSystem] 无法解析路径: %v", err)
		return
	}
	width := render.StrokeWidth(sh)

	var cur, start geometry.Point
	for _, cmd := range cmds {
		switch cmd.Op {
		case 'M':
			cur = geometry.Point{X: cmd.Args[0] + off.X, Y: cmd.Args[1] + off.Y}
			start = cur
		case 'L':
			next := geometry.Point{X: cmd.Args[0] + off.X, Y: cmd.Args[1] + off.Y}
			strokePolyline(screen, []geometry.Point{cur, next}, width, stroke)
			cur = next
		case 'A':
			next := geometry.Point{X: cmd.Args[5] + off.X, Y: cmd.Args[6] + off.Y}
			if arc, ok := render.ArcFromEndpoints(cur, next, cmd.Args[0], cmd.Args[3] != 0, cmd.Args[4] != 0); ok {
				strokePolyline(screen, arc.Polyline(arcStep), width, stroke)
			}
			cur = next
		case 'Z':
			strokePolyline(screen, []geometry.Point{cur, start}, width, stroke)
			cur = start
		}
	}
}

func (s *RenderSystem) drawRect(screen *ebiten.Image, sh surface.Shape, off geometry.Point) {
	w, okW := sh.Float("width")
	h, okH := sh.Float("height")
	if !okW || !okH || w <= 0 || h <= 0 {
		return
	}
	x, _ := sh.Float("x")
	y, _ := sh.Float("y")
	x += off.X
	y += off.Y
	if fill, ok := render.Paint(sh, "fill", true); ok {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, true)
	}
	if stroke, ok := render.Paint(sh, "stroke", false); ok {
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), float32(render.StrokeWidth(sh)), stroke, true)
	}
}

func (s *RenderSystem) drawText(screen *ebiten.Image, sh surface.Shape, off geometry.Point) {
	str := sh.Text()
	if str == "" {
		return
	}
	x, _ := sh.Float("x")
	y, _ := sh.Float("y")
	size, ok := sh.Float("font-size")
	if !ok || size <= 0 {
		size = render.DefaultFontSize
	}
	fill, ok := render.Paint(sh, "fill", true)
	if !ok {
		return
	}
	face := s.face(size)

	// SVG 文本的 y 是基线，text/v2 以行顶为原点
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+off.X, y+off.Y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(fill)
	text.Draw(screen, str, face, op)
}

func (s *RenderSystem) face(size float64) *text.GoTextFace {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    s.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	s.faces[size] = f
	return f
}

func (s *RenderSystem) warnOnce(key, format string, args ...any) {
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	log.Printf(format, args...)
}

// strokePolyline 以给定宽度描边折线，内部拐点补圆避免粗线出现缺口
func strokePolyline(screen *ebiten.Image, pts []geometry.Point, width float64, clr color.Color) {
	w := float32(width)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, clr, true)
		if i < len(pts)-1 && width > 2 {
			vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), w/2, clr, true)
		}
	}
}
