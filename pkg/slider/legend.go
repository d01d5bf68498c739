package slider

import (
	"log"

	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/surface"
)

// LegendPanelID 图例面板的固定 id
const LegendPanelID = "dataPlaceholder"

// 图例文本样式
const (
	legendTextColor  = "black"
	legendFontSize   = "16px"
	legendFontFamily = "Verdana"
)

// LegendPanel 容器内共享的图例面板
// 第一个滑块创建，后续滑块通过 id 找到同一个面板并追加一行
type LegendPanel struct {
	group surface.Shape
}

// GetOrCreateLegendPanel 获取容器中的图例面板，不存在时按 layout 创建
// 面板位置只由第一次创建时的 layout 决定
func GetOrCreateLegendPanel(c *surface.Container, layout geometry.Layout) *LegendPanel {
	if g, ok := c.GetElementByID(LegendPanelID); ok {
		return &LegendPanel{group: g}
	}

	var dx, dy float64
	if layout.Portrait() {
		dx, dy = 0, layout.DrawHeight
	} else {
		dx, dy = layout.DrawWidth, 0.1*layout.DataHeight
	}
	g := surface.NewShape(c, components.ShapeGroup,
		surface.Attr("id", LegendPanelID),
		surface.Attr("transform", surface.Translate(dx, dy)),
	)
	c.AppendChild(g)
	log.Printf("[Legend] 创建图例面板 (%s, 偏移 %.1f, %.1f)", layout.Orientation, dx, dy)
	return &LegendPanel{group: g}
}

// Shape 返回面板分组图元
func (p *LegendPanel) Shape() surface.Shape {
	return p.group
}

// Rows 返回面板中已有的分组数量（包括嵌套分组）
func (p *LegendPanel) Rows() int {
	return len(p.group.ElementsByKind(components.ShapeGroup))
}

// AddRow 追加一行图例：色块 + 文本
// 行号取自面板中已有的分组数量，间距随方向不同
func (p *LegendPanel) AddRow(color string, layout geometry.Layout) *LegendRow {
	index := p.Rows()
	c := p.group.Container()

	var dx, dy, side, textX, textY float64
	if layout.Portrait() {
		dx = 0.4 * layout.DataWidth
		dy = float64(index) * 0.15 * layout.DataHeight
		side = 0.05 * layout.DataWidth
		textX, textY = 0.1*layout.DataWidth, 0.04*layout.DataWidth
	} else {
		dx = 0.05 * layout.DataWidth
		dy = float64(index) * 0.1 * layout.DataHeight
		side = 0.05 * layout.DataHeight
		textX, textY = 0.1*layout.DataHeight, 0.04*layout.DataHeight
	}

	g := surface.NewShape(c, components.ShapeGroup,
		surface.Attr("transform", surface.Translate(dx, dy)),
	)
	p.group.AppendChild(g)

	swatch := surface.NewShape(c, components.ShapeRect,
		surface.Attr("width", side),
		surface.Attr("height", side),
		surface.Attr("fill", color),
	)
	g.AppendChild(swatch)

	text := surface.NewShape(c, components.ShapeText,
		surface.Attr("x", textX),
		surface.Attr("y", textY),
		surface.Attr("fill", legendTextColor),
		surface.Attr("font-size", legendFontSize),
		surface.Attr("font-family", legendFontFamily),
	)
	g.AppendChild(text)

	return &LegendRow{Index: index, group: g, swatch: swatch, text: text}
}

// LegendRow 图例中的一行
type LegendRow struct {
	Index int

	group  surface.Shape
	swatch surface.Shape
	text   surface.Shape
}

// SetText 设置显示文本
func (r *LegendRow) SetText(text string) {
	r.text.SetText(text)
}

// SetValue 显示数值
func (r *LegendRow) SetValue(v float64) {
	r.SetText(surface.FormatNumber(v))
}

// Text 返回当前显示的文本
func (r *LegendRow) Text() string {
	return r.text.Text()
}

// Group 返回行分组图元
func (r *LegendRow) Group() surface.Shape {
	return r.group
}

// Swatch 返回色块图元
func (r *LegendRow) Swatch() surface.Shape {
	return r.swatch
}

// TextShape 返回文本图元
func (r *LegendRow) TextShape() surface.Shape {
	return r.text
}
