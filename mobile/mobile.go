//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.circularslider -o build/android/circularslider.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/CircularSlider.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/circularslider/pkg/app"
	"github.com/decker502/circularslider/pkg/config"
	"github.com/decker502/circularslider/pkg/embedded"
)

func init() {
	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有命令行，设置只来自环境变量和默认值
	settings, err := config.LoadSettings(nil)
	if err != nil {
		log.Fatalf("设置加载失败: %v", err)
	}

	sliderApp, err := app.NewApp(app.Config{
		Verbose:     true, // 移动端通过 logcat 查看日志
		SlidersPath: settings.SlidersPath,
		Seed:        settings.Seed,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(sliderApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
