// Package scene 根据滑块定义文件搭建绘制容器和滑块
//
// 桌面端、移动端和离线快照工具共用这里的搭建逻辑。
// 本包不依赖 Ebitengine，可以在没有图形环境的机器上使用。
package scene

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/circularslider/pkg/config"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/slider"
	"github.com/decker502/circularslider/pkg/surface"
)

// NewContainer 按定义文件创建绘制容器
// 容器宽高为 0 时使用窗口尺寸，视口为 0 时同样使用窗口尺寸
func NewContainer(defs *config.SlidersConfig, viewport geometry.Size) *surface.Container {
	window := geometry.Size{W: float64(defs.Window.Width), H: float64(defs.Window.Height)}
	w, h := defs.Container.Width, defs.Container.Height
	if w == 0 {
		w = window.W
	}
	if h == 0 {
		h = window.H
	}
	if viewport.W == 0 || viewport.H == 0 {
		viewport = window
	}
	return surface.NewContainer(surface.ContainerOptions{
		Width:    w,
		Height:   h,
		Viewport: viewport,
	})
}

// BuildSliders 按定义依次创建滑块
// 所有滑块共用一个随机数生成器，seed 相同时初始角度可复现
func BuildSliders(c *surface.Container, defs []config.SliderDefinition, seed int64) ([]*slider.Slider, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sliders := make([]*slider.Slider, 0, len(defs))
	for i, def := range defs {
		name := def.Color
		opts := []slider.Option{
			slider.WithRand(rng),
			slider.WithOnChange(func(value float64) {
				log.Printf("[Scene] 滑块 %s 的值变为 %g", name, value)
			}),
		}
		if def.StartOffset != nil {
			opts = append(opts, slider.WithStartOffset(*def.StartOffset))
		}

		s, err := slider.New(slider.Config{
			Container: c,
			Color:     def.Color,
			Min:       def.Min,
			Max:       def.Max,
			Step:      def.Step,
			Radius:    def.Radius,
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("创建第 %d 个滑块失败: %w", i, err)
		}
		sliders = append(sliders, s)
	}
	return sliders, nil
}
