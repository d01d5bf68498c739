// Package geometry 提供环形滑块的布局计算与极坐标转换
//
// # 坐标系统
//
// 所有坐标都是容器像素坐标：原点在左上角，x 向右，y 向下。
// 角度以度为单位，0° 指向正上方（12 点钟），顺时针增加。
//
// # 布局
//
// ComputeLayout 根据容器尺寸和视口尺寸计算一次性布局：
// 圆环绘制区域是一个正方形，剩余空间留给数据面板（图例）。
// 数据面板过窄时整体缩小到 0.8 倍。
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ShrinkFactor 数据面板空间不足时的统一缩放系数
const ShrinkFactor = 0.8

// ErrEmptyLayout 表示可用绘制区域为空
var ErrEmptyLayout = errors.New("empty layout area")

// Size 像素尺寸
type Size struct {
	W, H float64
}

// Orientation 布局方向
type Orientation int

const (
	// OrientationWide 横向：圆环在左，数据面板在右
	OrientationWide Orientation = iota
	// OrientationTall 纵向：圆环在上，数据面板在下
	OrientationTall
)

// String 返回方向名称
func (o Orientation) String() string {
	if o == OrientationTall {
		return "tall"
	}
	return "wide"
}

// Layout 一次性布局结果
type Layout struct {
	DrawWidth, DrawHeight float64 // 圆环绘制区域
	DataWidth, DataHeight float64 // 数据面板区域
	Scale                 float64 // 1.0 或 ShrinkFactor
	Orientation           Orientation
	Center                Point   // 圆心（绘制区域中心）
	Radius                float64 // 已乘以 Scale 的环半径
}

// Portrait 是否为纵向布局
func (l Layout) Portrait() bool {
	return l.Orientation == OrientationTall
}

// LayoutError 布局无法计算时返回的错误
type LayoutError struct {
	Container Size
	Viewport  Size
}

// Error 实现 error 接口
func (e *LayoutError) Error() string {
	return fmt.Sprintf("cannot lay out slider: container %gx%g, viewport %gx%g has no drawable area",
		e.Container.W, e.Container.H, e.Viewport.W, e.Viewport.H)
}

// Unwrap 支持 errors.Is(err, ErrEmptyLayout)
func (e *LayoutError) Unwrap() error {
	return ErrEmptyLayout
}

// ComputeLayout 计算圆环和数据面板的布局
//
// 参数：
//   - container: 容器尺寸
//   - viewport: 视口尺寸
//   - requestedRadius: 配置的环半径（未缩放）
//
// 返回：
//   - Layout: 布局结果
//   - error: 可用宽或高不为正数时返回 *LayoutError
func ComputeLayout(container, viewport Size, requestedRadius float64) (Layout, error) {
	width := math.Min(container.W, viewport.W)
	height := math.Min(container.H, viewport.H)

	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Layout{}, &LayoutError{Container: container, Viewport: viewport}
	}

	l := Layout{Scale: 1.0}

	if width >= height {
		l.Orientation = OrientationWide
		if height/width <= ShrinkFactor {
			l.DrawWidth = height
			l.DrawHeight = height
			l.DataWidth = width - l.DrawWidth
			l.DataHeight = height
		} else {
			l.DrawWidth = height * ShrinkFactor
			l.DrawHeight = height * ShrinkFactor
			l.DataWidth = width - l.DrawWidth
			l.DataHeight = l.DrawHeight
			l.Scale = ShrinkFactor
		}
	} else {
		l.Orientation = OrientationTall
		if width/height <= ShrinkFactor {
			l.DrawWidth = width
			l.DrawHeight = width
			l.DataWidth = width
			l.DataHeight = height - l.DrawHeight
		} else {
			l.DrawWidth = width * ShrinkFactor
			l.DrawHeight = width * ShrinkFactor
			l.DataWidth = l.DrawWidth
			l.DataHeight = height - l.DrawHeight
			l.Scale = ShrinkFactor
		}
	}

	l.Center = Point{X: l.DrawWidth / 2, Y: l.DrawHeight / 2}
	l.Radius = requestedRadius * l.Scale
	return l, nil
}
