// Package slider 实现环形滑块组件
//
// 每个滑块由四部分组成：虚线底环、彩色值弧、可拖动的手柄，
// 以及共享图例面板中的一行（色块 + 当前值文本）。
// 所有图元在 New 中创建一次，之后只修改属性，不会销毁。
//
// 拖动流程：
//
//	mousedown/touchstart（手柄） → 注册窗口级 move/up 监听器
//	mousemove/touchmove（窗口）  → Step 计算新位置 → 更新手柄、值弧、图例
//	mouseup/touchend/touchcancel/blur → 移除本次注册的所有监听器
package slider

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/circularslider/pkg/surface"
	"github.com/decker502/circularslider/pkg/utils"
)

// MaxBins 单个滑块允许的最大分箱数量
const MaxBins = 1 << 20

// ErrInvalidConfig 所有配置错误都包装此哨兵错误
var ErrInvalidConfig = errors.New("invalid slider configuration")

// Config 滑块配置，构造后不可变
type Config struct {
	Container *surface.Container
	Color     string
	Min       float64
	Max       float64
	Step      float64
	Radius    float64 // 请求的环半径（像素，未缩放）
}

// ConfigurationError 配置校验失败
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error 实现 error 接口
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("slider config: %s %s", e.Field, e.Reason)
}

// Unwrap 支持 errors.Is(err, ErrInvalidConfig)
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate 校验配置
// 任何图元创建之前调用，失败时返回 *ConfigurationError
func (c Config) Validate() error {
	if c.Container == nil {
		return &ConfigurationError{Field: "container", Reason: "is required"}
	}
	if err := ValidateColor(c.Color); err != nil {
		return err
	}
	if err := ValidateRange(c.Min, c.Max, c.Step); err != nil {
		return err
	}
	if math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) {
		return &ConfigurationError{Field: "radius", Reason: "must be finite"}
	}
	if c.Radius <= 0 {
		return &ConfigurationError{Field: "radius", Reason: fmt.Sprintf("must be positive, got %g", c.Radius)}
	}
	return nil
}

// ValidateRange 校验取值范围和步长
func ValidateRange(lo, hi, step float64) error {
	for _, f := range []struct {
		name  string
		value float64
	}{{"min", lo}, {"max", hi}, {"step", step}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigurationError{Field: f.name, Reason: "must be finite"}
		}
	}
	if lo >= hi {
		return &ConfigurationError{Field: "min", Reason: fmt.Sprintf("must be less than max (%g >= %g)", lo, hi)}
	}
	if step <= 0 {
		return &ConfigurationError{Field: "step", Reason: fmt.Sprintf("must be positive, got %g", step)}
	}
	steps := (hi - lo) / step
	if math.IsInf(steps, 0) || steps >= MaxBins {
		return &ConfigurationError{Field: "step", Reason: fmt.Sprintf("yields too many bins for range [%g, %g]", lo, hi)}
	}
	return nil
}

// ValidateColor 校验显示颜色
// none、transparent 等完全透明的颜色会让值弧和图例色块不可见，同样视为非法
func ValidateColor(color string) error {
	rgba, err := utils.ParseColor(color)
	if err != nil {
		return &ConfigurationError{Field: "color", Reason: err.Error()}
	}
	if rgba.A == 0 {
		return &ConfigurationError{Field: "color", Reason: fmt.Sprintf("must not be fully transparent, got %q", color)}
	}
	return nil
}

// ValidateStartOffset 校验初始角度，必须在 [0, 360) 内
func ValidateStartOffset(deg float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return &ConfigurationError{Field: "startOffset", Reason: "must be finite"}
	}
	if deg < 0 || deg >= 360 {
		return &ConfigurationError{Field: "startOffset", Reason: fmt.Sprintf("must be in [0, 360), got %g", deg)}
	}
	return nil
}
