// Package app 提供滑块演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/circularslider/pkg/config"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/scene"
	"github.com/decker502/circularslider/pkg/slider"
	"github.com/decker502/circularslider/pkg/surface"
	"github.com/decker502/circularslider/pkg/systems"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SlidersPath 滑块定义文件，为空时使用内置的 data/sliders.yaml
	SlidersPath string
	// Seed 初始角度随机种子，0 表示按时间取种子
	Seed int64
	// Viewport 屏幕尺寸，为 0 时使用窗口尺寸
	Viewport geometry.Size
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	container *surface.Container
	sliders   []*slider.Slider
	input     *systems.InputSystem
	renderer  *systems.RenderSystem
	window    config.WindowConfig

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 加载滑块定义并创建应用
//
// 使用内置定义文件时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.SlidersPath
	if path == "" {
		path = config.DefaultSlidersPath
	}
	defs, err := config.LoadSlidersConfig(path)
	if err != nil {
		return nil, fmt.Errorf("滑块配置加载失败: %w", err)
	}
	return NewAppWithSliders(defs, cfg)
}

// NewAppWithSliders 用已加载的滑块定义创建应用
func NewAppWithSliders(defs *config.SlidersConfig, cfg Config) (*App, error) {
	c := scene.NewContainer(defs, cfg.Viewport)
	sliders, err := scene.BuildSliders(c, defs.Sliders, cfg.Seed)
	if err != nil {
		return nil, err
	}

	renderer, err := systems.NewRenderSystem(c)
	if err != nil {
		return nil, fmt.Errorf("渲染系统初始化失败: %w", err)
	}
	log.Printf("[App] 创建了 %d 个滑块 (容器 %gx%g)", len(sliders), c.Size().W, c.Size().H)

	return &App{
		container: c,
		sliders:   sliders,
		input:     systems.NewInputSystem(c),
		renderer:  renderer,
		window:    defs.Window,
	}, nil
}

// Update 处理一帧输入
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.window.Width, a.window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.window.Width, a.window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// Esc 退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.input.Update()
	return nil
}

// Draw 绘制白色背景和图元树
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	a.renderer.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（定义文件中的窗口尺寸）
// 指针坐标与容器坐标一一对应，Ebitengine 负责缩放到实际窗口
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.window.Width, a.window.Height
}

// Container 返回绘制容器
func (a *App) Container() *surface.Container {
	return a.container
}

// Sliders 返回所有滑块
func (a *App) Sliders() []*slider.Slider {
	return a.sliders
}

// Window 返回窗口配置
func (a *App) Window() config.WindowConfig {
	return a.window
}
