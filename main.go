package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/decker502/circularslider/pkg/app"
	"github.com/decker502/circularslider/pkg/config"
	"github.com/decker502/circularslider/pkg/embedded"
	"github.com/decker502/circularslider/pkg/geometry"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "circularslider",
	Short: "Concentric circular sliders sharing one legend",
	Long: `Opens a window with the circular sliders defined in a YAML file
(the bundled data/sliders.yaml by default). Drag a handle around its ring
to change the value shown in the legend.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return run(settings)
	},
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Pick a slider definitions file and open it",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		path, err := zenity.SelectFile(
			zenity.Title("Open Slider Definitions"),
			zenity.FileFilters{{
				Name:     "YAML",
				Patterns: []string{"*.yaml", "*.yml"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				return nil
			}
			return err
		}
		settings.SlidersPath = path
		return run(settings)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("circularslider %s\n", version)
	},
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(versionCmd)
}

// run 创建窗口并进入主循环
// 启动失败时弹出原生错误对话框，再把错误返回给命令行
func run(settings *config.Settings) error {
	// 初始化嵌入资源（必须在任何资源加载之前调用）
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	mw, mh := ebiten.Monitor().Size()
	gameApp, err := app.NewApp(app.Config{
		Verbose:     settings.Verbose,
		SlidersPath: settings.SlidersPath,
		Seed:        settings.Seed,
		Viewport:    geometry.Size{W: float64(mw), H: float64(mh)},
	})
	if err != nil {
		showError(err)
		return err
	}

	window := gameApp.Window()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("[main] 启动窗口 %dx%d", window.Width, window.Height)
	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		showError(err)
		return err
	}
	return nil
}

func showError(err error) {
	if dlgErr := zenity.Error(err.Error(), zenity.Title("Circular Slider"), zenity.ErrorIcon); dlgErr != nil {
		log.Printf("[main] 无法显示错误对话框: %v", dlgErr)
	}
}
