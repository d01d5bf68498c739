package surface

import (
	"testing"

	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/events"
	"github.com/decker502/circularslider/pkg/geometry"
)

type stubSizer struct{ w, h float64 }

func (s stubSizer) ClientSize() (float64, float64) { return s.w, s.h }

// TestContainerSize 测试容器尺寸及父级委托
func TestContainerSize(t *testing.T) {
	tests := []struct {
		name string
		opts ContainerOptions
		want geometry.Size
	}{
		{name: "自身尺寸", opts: ContainerOptions{Width: 400, Height: 300, Parent: stubSizer{900, 900}}, want: geometry.Size{W: 400, H: 300}},
		{name: "宽高都委托父级", opts: ContainerOptions{Parent: stubSizer{800, 200}}, want: geometry.Size{W: 800, H: 200}},
		{name: "只有高度委托父级", opts: ContainerOptions{Width: 500, Parent: stubSizer{800, 200}}, want: geometry.Size{W: 500, H: 200}},
		{name: "没有父级", opts: ContainerOptions{Width: 500}, want: geometry.Size{W: 500, H: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainer(tt.opts)
			if got := c.Size(); got != tt.want {
				t.Errorf("Size() = %+v, want %+v", got, tt.want)
			}
		})
	}

	c := NewContainer(ContainerOptions{Viewport: geometry.Size{W: 1280, H: 720}})
	if c.Viewport() != (geometry.Size{W: 1280, H: 720}) {
		t.Errorf("Viewport() = %+v", c.Viewport())
	}
	if c.Root().Kind() != components.ShapeSVG {
		t.Errorf("root kind = %s", c.Root().Kind())
	}
}

// TestGetElementByID 测试按 id 查找已挂载的图元
func TestGetElementByID(t *testing.T) {
	c := newTestContainer()
	detached := NewShape(c, components.ShapeGroup, Attr("id", "panel"))

	if _, ok := c.GetElementByID("panel"); ok {
		t.Fatal("detached element should not be found")
	}

	g := NewShape(c, components.ShapeGroup)
	c.AppendChild(g)
	g.AppendChild(detached)

	found, ok := c.GetElementByID("panel")
	if !ok || found.Entity() != detached.Entity() {
		t.Fatalf("GetElementByID(panel) = %v, %v", found, ok)
	}
	if _, ok := c.GetElementByID("missing"); ok {
		t.Error("GetElementByID(missing) found something")
	}
}

// TestHitTest 测试命中规则
func TestHitTest(t *testing.T) {
	c := newTestContainer()
	ring := NewShape(c, components.ShapeCircle,
		Attr("cx", 100), Attr("cy", 100), Attr("r", 50),
		Attr("fill", "none"), Attr("stroke", "lightgray"), Attr("stroke-width", 10))
	disk := NewShape(c, components.ShapeCircle,
		Attr("cx", 150), Attr("cy", 100), Attr("r", 8),
		Attr("fill", "white"), Attr("stroke", "gray"), Attr("stroke-width", 2))
	group := NewShape(c, components.ShapeGroup, Attr("transform", Translate(200, 50)))
	rect := NewShape(c, components.ShapeRect, Attr("width", 20), Attr("height", 10))
	text := NewShape(c, components.ShapeText, Attr("x", 0), Attr("y", 0))
	c.AppendChild(ring)
	c.AppendChild(disk)
	c.AppendChild(group)
	group.AppendChild(rect)
	group.AppendChild(text)

	tests := []struct {
		name string
		x, y float64
		want Shape
	}{
		{name: "描边带内", x: 100, y: 54, want: ring},
		{name: "无填充圆的内部不命中", x: 100, y: 100, want: Shape{}},
		{name: "上层的实心圆优先", x: 152, y: 100, want: disk},
		{name: "实心圆含半个描边", x: 158.9, y: 100, want: disk},
		{name: "平移后的矩形", x: 210, y: 55, want: rect},
		{name: "矩形外", x: 199, y: 55, want: Shape{}},
		{name: "空白处", x: 390, y: 290, want: Shape{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.HitTest(tt.x, tt.y)
			if got.IsValid() != tt.want.IsValid() || (got.IsValid() && got.Entity() != tt.want.Entity()) {
				t.Errorf("HitTest(%g, %g) = entity %d, want %d", tt.x, tt.y, got.Entity(), tt.want.Entity())
			}
		})
	}
}

// TestDispatchBubbling 测试事件冒泡与窗口级监听器
func TestDispatchBubbling(t *testing.T) {
	c := newTestContainer()
	g := NewShape(c, components.ShapeGroup)
	r := NewShape(c, components.ShapeRect, Attr("width", 50), Attr("height", 50))
	c.AppendChild(g)
	g.AppendChild(r)

	var order []string
	r.AddEventListener(events.MouseDown, func(*events.Event) { order = append(order, "rect") })
	g.AddEventListener(events.MouseDown, func(*events.Event) { order = append(order, "group") })
	c.Root().AddEventListener(events.MouseDown, func(*events.Event) { order = append(order, "root") })
	c.AddWindowListener(events.MouseDown, func(*events.Event) { order = append(order, "window") })

	c.Dispatch(&events.Event{Type: events.MouseDown, ClientX: 10, ClientY: 10})
	want := []string{"rect", "group", "root", "window"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	// 未命中任何图元时只有窗口级监听器收到事件
	order = nil
	c.Dispatch(&events.Event{Type: events.MouseDown, ClientX: 300, ClientY: 200})
	if len(order) != 1 || order[0] != "window" {
		t.Errorf("order = %v, want [window]", order)
	}
}

// TestDispatchStopPropagation 测试阻止冒泡
func TestDispatchStopPropagation(t *testing.T) {
	c := newTestContainer()
	r := NewShape(c, components.ShapeRect, Attr("width", 50), Attr("height", 50))
	c.AppendChild(r)

	windowCalls := 0
	r.AddEventListener(events.MouseUp, func(e *events.Event) { e.StopPropagation() })
	c.AddWindowListener(events.MouseUp, func(*events.Event) { windowCalls++ })

	e := &events.Event{Type: events.MouseUp, ClientX: 5, ClientY: 5}
	c.Dispatch(e)
	if !e.PropagationStopped() || windowCalls != 0 {
		t.Errorf("window listener called %d times after StopPropagation", windowCalls)
	}
}

// TestWindowListenerRemovalDuringDispatch 测试派发过程中移除监听器
func TestWindowListenerRemovalDuringDispatch(t *testing.T) {
	c := newTestContainer()
	calls := 0
	var first, second events.ListenerID
	first = c.AddWindowListener(events.MouseUp, func(*events.Event) {
		calls++
		c.RemoveWindowListener(events.MouseUp, first)
		c.RemoveWindowListener(events.MouseUp, second)
	})
	second = c.AddWindowListener(events.MouseUp, func(*events.Event) { calls++ })

	c.Dispatch(&events.Event{Type: events.MouseUp})
	if calls != 2 {
		t.Errorf("calls = %d, want 2 (snapshot taken before dispatch)", calls)
	}
	if c.WindowListenerCount() != 0 {
		t.Errorf("WindowListenerCount() = %d, want 0", c.WindowListenerCount())
	}

	c.Dispatch(&events.Event{Type: events.MouseUp})
	if calls != 2 {
		t.Errorf("removed listeners still called")
	}
}

// TestBlurOnlyReachesWindow 测试失焦事件只派发给窗口
func TestBlurOnlyReachesWindow(t *testing.T) {
	c := newTestContainer()
	r := NewShape(c, components.ShapeRect, Attr("width", 500), Attr("height", 500))
	c.AppendChild(r)

	shapeCalls, windowCalls := 0, 0
	r.AddEventListener(events.Blur, func(*events.Event) { shapeCalls++ })
	c.AddWindowListener(events.Blur, func(*events.Event) { windowCalls++ })

	c.Dispatch(&events.Event{Type: events.Blur})
	if shapeCalls != 0 || windowCalls != 1 {
		t.Errorf("shape calls %d window calls %d, want 0 and 1", shapeCalls, windowCalls)
	}
}

// TestTouchPosition 测试触摸事件使用第一个触摸点命中
func TestTouchPosition(t *testing.T) {
	c := newTestContainer()
	r := NewShape(c, components.ShapeRect, Attr("width", 20), Attr("height", 20))
	c.AppendChild(r)

	hits := 0
	r.AddEventListener(events.TouchStart, func(*events.Event) { hits++ })

	c.Dispatch(&events.Event{Type: events.TouchStart, Touches: []events.Touch{{PageX: 5, PageY: 5}, {PageX: 300, PageY: 300}}})
	c.Dispatch(&events.Event{Type: events.TouchStart, Touches: []events.Touch{{PageX: 300, PageY: 300}, {PageX: 5, PageY: 5}}})
	c.Dispatch(&events.Event{Type: events.TouchStart})
	if hits != 1 {
		t.Errorf("hits = %d, want 1", hits)
	}
}
