package surface

import (
	"math"

	"github.com/decker502/circularslider/pkg/components"
)

// HitTest 返回位于 (x, y) 的最上层可命中图元
//
// 命中规则：
//   - circle: fill 不为 none 时命中圆盘（含半个描边宽度）；
//     fill 为 none 时只命中描边带
//   - rect: 命中矩形区域
//   - 其余类型不参与命中，只作为冒泡路径
func (c *Container) HitTest(x, y float64) Shape {
	return c.hitTest(c.Root(), x, y)
}

func (c *Container) hitTest(s Shape, x, y float64) Shape {
	if dx, dy, ok := ParseTranslate(s.Get("transform")); ok {
		x -= dx
		y -= dy
	}

	children := s.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := c.hitTest(children[i], x, y); hit.IsValid() {
			return hit
		}
	}

	if hitsShape(s, x, y) {
		return s
	}
	return Shape{}
}

func hitsShape(s Shape, x, y float64) bool {
	switch s.Kind() {
	case components.ShapeCircle:
		cx, _ := s.Float("cx")
		cy, _ := s.Float("cy")
		r, ok := s.Float("r")
		if !ok {
			return false
		}
		half := 0.0
		if stroke := s.Get("stroke"); stroke != "" && stroke != "none" {
			if w, ok := s.Float("stroke-width"); ok {
				half = w / 2
			} else {
				half = 0.5
			}
		}
		d := math.Hypot(x-cx, y-cy)
		if s.Get("fill") == "none" {
			return half > 0 && math.Abs(d-r) <= half
		}
		return d <= r+half
	case components.ShapeRect:
		rx, _ := s.Float("x")
		ry, _ := s.Float("y")
		w, okW := s.Float("width")
		h, okH := s.Float("height")
		if !okW || !okH {
			return false
		}
		return x >= rx && x <= rx+w && y >= ry && y <= ry+h
	default:
		return false
	}
}
