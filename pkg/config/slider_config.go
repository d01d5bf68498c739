// Package config 加载演示程序的滑块定义和运行设置
package config

import (
	"errors"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/decker502/circularslider/pkg/embedded"
	"github.com/decker502/circularslider/pkg/slider"
)

// DefaultSlidersPath 内置的滑块定义文件
const DefaultSlidersPath = "data/sliders.yaml"

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title"`  // 窗口标题
	Width  int    `yaml:"width"`  // 窗口宽度（像素）
	Height int    `yaml:"height"` // 窗口高度（像素）
}

// ContainerConfig 绘制容器尺寸
// 宽高为 0 时使用窗口尺寸
type ContainerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SliderDefinition 单个滑块的定义
type SliderDefinition struct {
	Color  string  `yaml:"color"`  // 颜色（#rgb、#rrggbb 或颜色名）
	Min    float64 `yaml:"min"`    // 最小值
	Max    float64 `yaml:"max"`    // 最大值
	Step   float64 `yaml:"step"`   // 步长
	Radius float64 `yaml:"radius"` // 半径（布局缩放前）

	// StartOffset 初始角度（度），不填时随机
	StartOffset *float64 `yaml:"startOffset,omitempty"`
}

// SlidersConfig 滑块定义文件结构
type SlidersConfig struct {
	Window    WindowConfig       `yaml:"window"`
	Container ContainerConfig    `yaml:"container"`
	Sliders   []SliderDefinition `yaml:"sliders"`
}

// LoadSlidersConfig 从 YAML 文件加载滑块定义
// 参数：
//
//	path - 以 "data/" 开头时读取内置文件，否则从磁盘读取
//
// 返回：
//
//	*SlidersConfig - 解析并补齐默认值后的配置
//	error - 文件读取、解析或校验失败
func LoadSlidersConfig(path string) (*SlidersConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sliders file %s: %w", path, err)
	}

	cfg, err := ParseSlidersConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid sliders config in %s: %w", path, err)
	}

	log.Printf("[Config] 加载了 %d 个滑块定义 (%s)", len(cfg.Sliders), path)
	return cfg, nil
}

// ParseSlidersConfig 解析并校验滑块定义
func ParseSlidersConfig(data []byte) (*SlidersConfig, error) {
	var cfg SlidersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sliders YAML: %w", err)
	}
	applyWindowDefaults(&cfg.Window)

	if err := validateSlidersConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyWindowDefaults(w *WindowConfig) {
	if w.Title == "" {
		w.Title = "Circular Slider"
	}
	if w.Width == 0 {
		w.Width = 1000
	}
	if w.Height == 0 {
		w.Height = 600
	}
}

// validateSlidersConfig 验证滑块定义的完整性和合法性
// 范围和步长使用与 slider.New 相同的规则
func validateSlidersConfig(cfg *SlidersConfig) error {
	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return fmt.Errorf("window size cannot be negative, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Container.Width < 0 || cfg.Container.Height < 0 {
		return fmt.Errorf("container size cannot be negative, got %gx%g", cfg.Container.Width, cfg.Container.Height)
	}
	if len(cfg.Sliders) == 0 {
		return errors.New("at least one slider is required")
	}

	for i, def := range cfg.Sliders {
		if err := slider.ValidateColor(def.Color); err != nil {
			return fmt.Errorf("slider %d: %w", i, err)
		}
		if err := slider.ValidateRange(def.Min, def.Max, def.Step); err != nil {
			return fmt.Errorf("slider %d: %w", i, err)
		}
		if def.Radius <= 0 {
			return fmt.Errorf("slider %d: radius must be positive, got %g", i, def.Radius)
		}
		if def.StartOffset != nil {
			if err := slider.ValidateStartOffset(*def.StartOffset); err != nil {
				return fmt.Errorf("slider %d: %w", i, err)
			}
		}
	}
	return nil
}
