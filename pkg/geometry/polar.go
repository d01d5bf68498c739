package geometry

import "math"

// Point 像素坐标点
type Point struct {
	X, Y float64
}

// DegreesToRadians 角度转弧度
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiansToDegrees 弧度转角度
func RadiansToDegrees(rad float64) float64 {
	return rad / math.Pi * 180
}

// PolarToCartesian 把角度转换为环上的点
// 0° 指向正上方，顺时针增加：
//
//	x = cx - r*cos(deg+90°)
//	y = cy - r*sin(deg+90°)
func PolarToCartesian(deg float64, center Point, radius float64) Point {
	rad := DegreesToRadians(deg + 90)
	return Point{
		X: center.X - radius*math.Cos(rad),
		Y: center.Y - radius*math.Sin(rad),
	}
}

// CartesianToAngle 把点转换为角度
//
// 先用 atan(dx / -dy) 求出半圈范围内的角，再按象限修正：
// 点在圆心下方（y >= cy）加 180°；否则在左上象限（x <= cx 且 y <= cy）加 360°。
// 判断顺序不可交换。正上方接缝处的行为由拖拽锁定规则负责，不在这里处理。
//
// 结果落在 [0, 360] 内，点在圆心正上方时为 360；点与圆心重合时为 NaN。
func CartesianToAngle(p, center Point) float64 {
	dx := p.X - center.X
	dy := p.Y - center.Y

	fi := math.Atan(dx / -dy)
	if p.Y >= center.Y {
		fi += math.Pi
	} else if p.X <= center.X && p.Y <= center.Y {
		fi += 2 * math.Pi
	}
	return RadiansToDegrees(fi)
}

// ProjectOntoRing 沿圆心到 p 的方向把 p 投影到半径为 radius 的环上
// p 与圆心重合时方向不确定，返回 ok=false
func ProjectOntoRing(p, center Point, radius float64) (Point, bool) {
	dx := p.X - center.X
	dy := p.Y - center.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 || math.IsNaN(dist) || math.IsInf(dist, 0) {
		return Point{}, false
	}
	scale := radius / dist
	return Point{X: dx*scale + center.X, Y: dy*scale + center.Y}, true
}
