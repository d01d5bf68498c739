// cmd/render_snapshot/main.go
// 离线渲染滑块快照 - 不打开窗口，把图元树导出为 SVG 或 PNG
//
// 可以用 -drag 模拟一次拖动：在手柄上按下鼠标，依次移动到环上的各个角度，再松开。
// 事件走的是与窗口相同的派发路径。
//
// 用法：
//
//	go run ./cmd/render_snapshot -out snapshot.png
//	go run ./cmd/render_snapshot -out snapshot.svg -seed 7 -drag 30,120,200
//	go run ./cmd/render_snapshot -sliders my.yaml -slider 0 -drag 350,10 -out lock.png
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/decker502/circularslider/pkg/config"
	"github.com/decker502/circularslider/pkg/embedded"
	"github.com/decker502/circularslider/pkg/events"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/render"
	"github.com/decker502/circularslider/pkg/scene"
	"github.com/decker502/circularslider/pkg/slider"
	"github.com/decker502/circularslider/pkg/surface"
)

func main() {
	slidersPath := flag.String("sliders", config.DefaultSlidersPath, "slider definitions file")
	out := flag.String("out", "snapshot.png", "output file (.svg or .png)")
	seed := flag.Int64("seed", 1, "random seed for start angles")
	scale := flag.Float64("scale", 1, "png output scale")
	viewportW := flag.Float64("viewport-width", 1920, "viewport width")
	viewportH := flag.Float64("viewport-height", 1080, "viewport height")
	target := flag.Int("slider", -1, "index of the slider to drag (-1 = last)")
	drag := flag.String("drag", "", "comma separated angles (degrees) to drag through")
	flag.Parse()

	// data/ 路径从工作目录读取
	embedded.Init(os.DirFS("."))

	defs, err := config.LoadSlidersConfig(*slidersPath)
	if err != nil {
		log.Fatalf("加载滑块定义失败: %v", err)
	}

	c := scene.NewContainer(defs, geometry.Size{W: *viewportW, H: *viewportH})
	sliders, err := scene.BuildSliders(c, defs.Sliders, *seed)
	if err != nil {
		log.Fatalf("创建滑块失败: %v", err)
	}

	if *drag != "" {
		angles, err := parseAngles(*drag)
		if err != nil {
			log.Fatalf("无效的 -drag 参数: %v", err)
		}
		idx := *target
		if idx < 0 {
			idx = len(sliders) - 1
		}
		if idx >= len(sliders) {
			log.Fatalf("-slider %d 超出范围（共 %d 个滑块）", idx, len(sliders))
		}
		simulateDrag(sliders[idx], angles)
	}

	for i, st := range slider.States(c) {
		fmt.Printf("slider %d %s: offset %.2f° value %g\n", i, st.Color, st.Offset, st.Value)
	}

	if err := write(*out, c, *scale); err != nil {
		log.Fatalf("写入 %s 失败: %v", *out, err)
	}
	fmt.Printf("✓ 快照已保存: %s\n", *out)
}

func parseAngles(s string) ([]float64, error) {
	var angles []float64
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		angles = append(angles, v)
	}
	return angles, nil
}

// simulateDrag 按下手柄，依次移动到各个角度，然后松开
func simulateDrag(s *slider.Slider, angles []float64) {
	c := s.Config().Container
	cx, _ := s.Handle().Float("cx")
	cy, _ := s.Handle().Float("cy")
	c.Dispatch(&events.Event{Type: events.MouseDown, ClientX: cx, ClientY: cy})
	if s.State() != slider.DragDragging {
		log.Printf("警告: 手柄 (%.1f, %.1f) 没有响应按下事件", cx, cy)
		return
	}

	last := geometry.Point{X: cx, Y: cy}
	for _, a := range angles {
		last = s.Ring().PointAt(a)
		c.Dispatch(&events.Event{Type: events.MouseMove, ClientX: last.X, ClientY: last.Y})
	}
	c.Dispatch(&events.Event{Type: events.MouseUp, ClientX: last.X, ClientY: last.Y})
}

// write 按扩展名输出 SVG 或 PNG
// 扩展名不支持时不创建文件
func write(path string, c *surface.Container, scale float64) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return encode(f, ext, c, scale)
}

func encode(w io.Writer, ext string, c *surface.Container, scale float64) error {
	if ext == ".svg" {
		return render.WriteSVG(w, c)
	}
	img, err := render.Rasterize(c, render.RasterOptions{Scale: scale, Background: color.White})
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
