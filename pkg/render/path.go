// Package render 把容器中的图元树绘制出来
//
// 三种输出共用同一棵图元树：
//   - RenderSystem: 每帧绘制到 Ebitengine 屏幕
//   - WriteSVG: 导出 SVG 文档
//   - Rasterize: 通过 oksvg/rasterx 栅格化为图片（文本用 Go 字体叠加）
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/decker502/circularslider/pkg/geometry"
)

// PathCommand 路径命令（坐标均为绝对坐标）
type PathCommand struct {
	Op   byte      // 'M' 'L' 'A' 'Z'
	Args []float64 // M/L: x y；A: rx ry rotation largeArc sweep x y
}

var pathArity = map[byte]int{'M': 2, 'L': 2, 'A': 7, 'Z': 0}

// ParsePath 解析路径数据
// 只支持绝对坐标的 M、L、A、Z 命令，这是滑块值弧用到的全部命令
func ParsePath(d string) ([]PathCommand, error) {
	tokens := tokenizePath(d)
	var cmds []PathCommand
	var op byte
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if len(tok) == 1 && unicode.IsLetter(rune(tok[0])) {
			op = tok[0]
			if _, ok := pathArity[op]; !ok {
				return nil, fmt.Errorf("unsupported path command %q", tok)
			}
			i++
			if op == 'Z' {
				cmds = append(cmds, PathCommand{Op: op})
				continue
			}
		} else if op == 0 {
			return nil, fmt.Errorf("path data must start with a command, got %q", tok)
		}

		n := pathArity[op]
		if i+n > len(tokens) {
			return nil, fmt.Errorf("path command %c expects %d arguments", op, n)
		}
		args := make([]float64, n)
		for j := 0; j < n; j++ {
			v, err := strconv.ParseFloat(tokens[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q in path: %w", tokens[i+j], err)
			}
			args[j] = v
		}
		cmds = append(cmds, PathCommand{Op: op, Args: args})
		i += n
		// M 后面的隐式坐标对按 L 处理
		if op == 'M' {
			op = 'L'
		}
	}
	return cmds, nil
}

func tokenizePath(d string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range d {
		switch {
		case r == ' ' || r == ',' || r == '\t' || r == '\n':
			flush()
		case unicode.IsLetter(r) && r != 'e' && r != 'E':
			flush()
			tokens = append(tokens, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// Arc 圆弧的中心参数表示
// 角度为屏幕坐标系下的弧度（y 向下，正方向为顺时针）
type Arc struct {
	Center geometry.Point
	Radius float64
	Start  float64 // 起始角
	Sweep  float64 // 扫过的角度，正数为顺时针
}

// ArcFromEndpoints 把 SVG 端点式圆弧（rx == ry，无旋转）转换为中心式
// 起点与终点重合时圆弧不绘制，返回 ok=false
func ArcFromEndpoints(from, to geometry.Point, r float64, largeArc, sweep bool) (Arc, bool) {
	if from == to || r == 0 {
		return Arc{}, false
	}
	r = math.Abs(r)

	// 中点坐标系
	x1 := (from.X - to.X) / 2
	y1 := (from.Y - to.Y) / 2
	d2 := x1*x1 + y1*y1

	// 半径不足以连接两点时按比例放大
	if lambda := d2 / (r * r); lambda > 1 {
		r *= math.Sqrt(lambda)
	}

	coef := math.Sqrt(math.Max(0, (r*r-d2)/d2))
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * y1
	cy1 := -coef * x1

	center := geometry.Point{
		X: cx1 + (from.X+to.X)/2,
		Y: cy1 + (from.Y+to.Y)/2,
	}
	start := math.Atan2(y1-cy1, x1-cx1)
	end := math.Atan2(-y1-cy1, -x1-cx1)
	delta := end - start
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	return Arc{Center: center, Radius: r, Start: start, Sweep: delta}, true
}

// PointAt 返回圆弧上角度为 angle（弧度）的点
func (a Arc) PointAt(angle float64) geometry.Point {
	return geometry.Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// Length 弧长
func (a Arc) Length() float64 {
	return math.Abs(a.Sweep) * a.Radius
}

// Polyline 把圆弧拆成折线，相邻点的弧长不超过 maxStep 像素
func (a Arc) Polyline(maxStep float64) []geometry.Point {
	if maxStep <= 0 {
		maxStep = 4
	}
	n := int(math.Ceil(a.Length() / maxStep))
	if n < 1 {
		n = 1
	}
	pts := make([]geometry.Point, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = a.PointAt(a.Start + a.Sweep*float64(i)/float64(n))
	}
	return pts
}

// Sub 返回弧长区间 [from, to] 对应的子圆弧
func (a Arc) Sub(from, to float64) Arc {
	dir := 1.0
	if a.Sweep < 0 {
		dir = -1
	}
	return Arc{
		Center: a.Center,
		Radius: a.Radius,
		Start:  a.Start + dir*from/a.Radius,
		Sweep:  dir * (to - from) / a.Radius,
	}
}

// DashIntervals 按虚线模式把长度 length 拆成若干 [start, end] 实线区间
// 模式为空或全为 0 时返回整段
func DashIntervals(length float64, pattern []float64) [][2]float64 {
	total := 0.0
	for _, p := range pattern {
		if p < 0 {
			return [][2]float64{{0, length}}
		}
		total += p
	}
	if total == 0 {
		return [][2]float64{{0, length}}
	}
	// 奇数个值时模式重复一次
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
	}

	var out [][2]float64
	pos := 0.0
	for i := 0; pos < length; i = (i + 1) % len(pattern) {
		end := math.Min(pos+pattern[i], length)
		if i%2 == 0 && end > pos {
			out = append(out, [2]float64{pos, end})
		}
		pos += pattern[i]
	}
	return out
}
