package surface

import (
	"errors"
	"testing"

	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/events"
	"github.com/decker502/circularslider/pkg/geometry"
)

func newTestContainer() *Container {
	return NewContainer(ContainerOptions{Width: 400, Height: 300, Viewport: geometry.Size{W: 800, H: 600}})
}

// TestShapeAttributes 测试属性读写
func TestShapeAttributes(t *testing.T) {
	c := newTestContainer()
	s := NewShape(c, components.ShapeCircle, Attr("cx", 10.5), Attr("cy", 20), Attr("fill", "none"))

	if s.Kind() != components.ShapeCircle {
		t.Errorf("Kind() = %s", s.Kind())
	}
	if s.Get("cx") != "10.5" || s.Get("cy") != "20" || s.Get("fill") != "none" {
		t.Errorf("attrs = %v", s.Attrs())
	}
	if _, ok := s.Lookup("r"); ok {
		t.Error("Lookup(r) found missing attribute")
	}
	if s.Get("r") != "" {
		t.Error("Get(r) should be empty")
	}

	s.Set("cx", 42.0)
	s.Set("r", "5px")
	if v, ok := s.Float("cx"); !ok || v != 42 {
		t.Errorf("Float(cx) = %g, %v", v, ok)
	}
	if v, ok := s.Float("r"); !ok || v != 5 {
		t.Errorf("Float(r) = %g, %v", v, ok)
	}
	if _, ok := s.Float("fill"); ok {
		t.Error("Float(fill) should fail")
	}

	// 修改已有属性保持原有顺序
	attrs := s.Attrs()
	if attrs[0].Name != "cx" || attrs[len(attrs)-1].Name != "r" {
		t.Errorf("attribute order = %v", attrs)
	}

	s.SetBulk(Attr("stroke", "gray"), Attr("stroke-width", 2))
	if s.Get("stroke") != "gray" || s.Get("stroke-width") != "2" {
		t.Errorf("SetBulk attrs = %v", s.Attrs())
	}
}

// TestFormatNumber 测试数值格式化
func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "整数", in: 200, want: "200"},
		{name: "小数", in: 12.25, want: "12.25"},
		{name: "三角函数误差", in: 199.99999999999997, want: "200"},
		{name: "负零", in: -1e-12, want: "0"},
		{name: "负数", in: -3.5, want: "-3.5"},
		{name: "浮点加法", in: 0.1 + 0.2, want: "0.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	if FormatValue(3) != "3" || FormatValue(float32(1.5)) != "1.5" || FormatValue(true) != "true" {
		t.Error("FormatValue mismatch")
	}
	if FormatValue(components.ShapeRect) != "rect" {
		t.Errorf("FormatValue(ShapeKind) = %q", FormatValue(components.ShapeRect))
	}
}

// TestShapeClasses 测试 CSS 类操作
func TestShapeClasses(t *testing.T) {
	c := newTestContainer()
	s := NewShape(c, components.ShapeCircle)

	s.AddClass("handle")
	s.AddClass("handle")
	s.AddClass("dragging")
	if got := s.Classes(); len(got) != 2 {
		t.Fatalf("Classes() = %v, want 2 entries", got)
	}
	if !s.HasClass("dragging") {
		t.Error("HasClass(dragging) = false")
	}
	s.RemoveClass("dragging")
	s.RemoveClass("missing")
	if s.HasClass("dragging") || !s.HasClass("handle") {
		t.Errorf("Classes() after remove = %v", s.Classes())
	}
}

// TestShapeTree 测试子元素挂载与移除
func TestShapeTree(t *testing.T) {
	c := newTestContainer()
	g := NewShape(c, components.ShapeGroup)
	a := NewShape(c, components.ShapeRect)
	b := NewShape(c, components.ShapeText)
	c.AppendChild(g)
	g.AppendChild(a)
	g.AppendChild(b)

	children := g.Children()
	if len(children) != 2 || children[0].Entity() != a.Entity() || children[1].Entity() != b.Entity() {
		t.Fatalf("Children() = %v", children)
	}
	if p, ok := a.Parent(); !ok || p.Entity() != g.Entity() {
		t.Error("Parent() of a should be g")
	}

	if err := g.RemoveChild(a); err != nil {
		t.Fatalf("RemoveChild() unexpected error: %v", err)
	}
	if _, ok := a.Parent(); ok {
		t.Error("removed child still has a parent")
	}
	if err := g.RemoveChild(a); !errors.Is(err, ErrNotChild) {
		t.Errorf("RemoveChild() twice = %v, want ErrNotChild", err)
	}

	// 挂到新父元素时从原父元素摘下
	c.AppendChild(b)
	if len(g.Children()) != 0 {
		t.Errorf("g still has %d children after b moved", len(g.Children()))
	}
	if p, _ := b.Parent(); p.Entity() != c.Root().Entity() {
		t.Error("b should now be under the root")
	}
}

// TestElementsByKind 测试按类型查找后代
func TestElementsByKind(t *testing.T) {
	c := newTestContainer()
	outer := NewShape(c, components.ShapeGroup)
	inner := NewShape(c, components.ShapeGroup)
	c.AppendChild(outer)
	outer.AppendChild(inner)
	inner.AppendChild(NewShape(c, components.ShapeGroup))
	outer.AppendChild(NewShape(c, components.ShapeRect))

	if got := len(outer.ElementsByKind(components.ShapeGroup)); got != 2 {
		t.Errorf("outer has %d group descendants, want 2", got)
	}
	if got := len(c.Root().ElementsByKind(components.ShapeRect)); got != 1 {
		t.Errorf("root has %d rect descendants, want 1", got)
	}
}

// TestShapeText 测试文本节点
func TestShapeText(t *testing.T) {
	c := newTestContainer()
	s := NewShape(c, components.ShapeText)
	s.SetText("72")
	if s.Text() != "72" {
		t.Errorf("Text() = %q", s.Text())
	}
}

// TestShapeListeners 测试图元监听器注册与移除
func TestShapeListeners(t *testing.T) {
	c := newTestContainer()
	s := NewShape(c, components.ShapeCircle, Attr("cx", 50), Attr("cy", 50), Attr("r", 10), Attr("fill", "white"))
	c.AppendChild(s)

	calls := 0
	id := s.AddEventListener(events.MouseDown, func(*events.Event) { calls++ })
	if c.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d, want 1", c.ListenerCount())
	}

	c.Dispatch(&events.Event{Type: events.MouseDown, ClientX: 52, ClientY: 48})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	if !s.RemoveEventListener(events.MouseDown, id) {
		t.Error("RemoveEventListener() = false")
	}
	if s.RemoveEventListener(events.MouseDown, id) {
		t.Error("RemoveEventListener() twice = true")
	}
	c.Dispatch(&events.Event{Type: events.MouseDown, ClientX: 52, ClientY: 48})
	if calls != 1 {
		t.Errorf("listener called after removal")
	}
	if c.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", c.ListenerCount())
	}
}

// TestParseTranslate 测试平移变换解析
func TestParseTranslate(t *testing.T) {
	tests := []struct {
		in     string
		dx, dy float64
		ok     bool
	}{
		{in: "translate(10 20)", dx: 10, dy: 20, ok: true},
		{in: "translate(10,20.5)", dx: 10, dy: 20.5, ok: true},
		{in: " translate(7) ", dx: 7, ok: true},
		{in: "rotate(45)"},
		{in: ""},
		{in: "translate(1 2 3)"},
	}
	for _, tt := range tests {
		dx, dy, ok := ParseTranslate(tt.in)
		if ok != tt.ok || dx != tt.dx || dy != tt.dy {
			t.Errorf("ParseTranslate(%q) = %g, %g, %v", tt.in, dx, dy, ok)
		}
	}
	if got := Translate(400, 0.1*400); got != "translate(400 40)" {
		t.Errorf("Translate() = %q", got)
	}
	if v, ok := ParseLength(" 16px "); !ok || v != 16 {
		t.Errorf("ParseLength(16px) = %g, %v", v, ok)
	}
	if _, ok := ParseLength("auto"); ok {
		t.Error("ParseLength(auto) should fail")
	}
}
