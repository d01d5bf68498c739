package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/surface"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// svgOptions 导出选项
type svgOptions struct {
	skipText    bool // 不输出文本节点（栅格化时文本单独绘制）
	skipClasses bool
}

// WriteSVG 把容器图元树导出为 SVG 文档
// 根节点缺少 width/height/viewBox 时按容器尺寸补齐
func WriteSVG(w io.Writer, c *surface.Container) error {
	return writeSVG(w, c, svgOptions{})
}

func writeSVG(w io.Writer, c *surface.Container, opts svgOptions) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write svg header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := c.Root().Entity()
	var encErr error
	c.Walk(func(sh surface.Shape) bool {
		if encErr != nil {
			return false
		}
		if opts.skipText && sh.Kind() == components.ShapeText {
			return false
		}
		start := startElement(sh, !opts.skipClasses)
		if sh.Entity() == root {
			start = withRootAttrs(start, c)
		}
		if encErr = enc.EncodeToken(start); encErr != nil {
			return false
		}
		if sh.Kind() == components.ShapeText && sh.Text() != "" {
			encErr = enc.EncodeToken(xml.CharData(sh.Text()))
		}
		return encErr == nil
	}, func(sh surface.Shape) {
		if encErr != nil || (opts.skipText && sh.Kind() == components.ShapeText) {
			return
		}
		encErr = enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: string(sh.Kind())}})
	})
	if encErr != nil {
		return fmt.Errorf("failed to encode svg: %w", encErr)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("failed to flush svg: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func startElement(sh surface.Shape, withClasses bool) xml.StartElement {
	start := xml.StartElement{Name: xml.Name{Local: string(sh.Kind())}}
	for _, a := range sh.Attrs() {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if classes := sh.Classes(); withClasses && len(classes) > 0 {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "class"}, Value: strings.Join(classes, " ")})
	}
	return start
}

func withRootAttrs(start xml.StartElement, c *surface.Container) xml.StartElement {
	has := func(name string) bool {
		for _, a := range start.Attr {
			if a.Name.Local == name {
				return true
			}
		}
		return false
	}
	size := c.Size()
	var extra []xml.Attr
	if !has("xmlns") {
		extra = append(extra, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: svgNamespace})
	}
	if !has("width") {
		extra = append(extra, xml.Attr{Name: xml.Name{Local: "width"}, Value: surface.FormatNumber(size.W)})
	}
	if !has("height") {
		extra = append(extra, xml.Attr{Name: xml.Name{Local: "height"}, Value: surface.FormatNumber(size.H)})
	}
	if !has("viewBox") {
		extra = append(extra, xml.Attr{
			Name:  xml.Name{Local: "viewBox"},
			Value: "0 0 " + surface.FormatNumber(size.W) + " " + surface.FormatNumber(size.H),
		})
	}
	start.Attr = append(extra, start.Attr...)
	return start
}
