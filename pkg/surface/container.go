// Package surface 提供承载滑块图元的绘制容器
//
// 容器是一棵保存在 ECS 中的图元树（svg → g/circle/path/rect/text），
// 负责：
//   - 报告自身像素尺寸（未知时委托给父级）
//   - 通过 id 属性查找已挂载的图元
//   - 命中测试并派发指针事件，事件沿父链冒泡后再交给窗口级监听器
//   - 暴露视口尺寸
//
// 渲染器（Ebitengine、SVG、PNG）只读取这棵树，不持有任何状态。
package surface

import (
	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/ecs"
	"github.com/decker502/circularslider/pkg/events"
	"github.com/decker502/circularslider/pkg/geometry"
)

// Sizer 能报告自身像素尺寸的宿主元素（例如容器所在的窗口区域）
type Sizer interface {
	ClientSize() (width, height float64)
}

// ContainerOptions 容器创建参数
type ContainerOptions struct {
	// Width/Height 容器自身尺寸，0 表示未知，此时向 Parent 委托
	Width, Height float64
	// Parent 可选的父级尺寸来源
	Parent Sizer
	// Viewport 视口尺寸（窗口或屏幕）
	Viewport geometry.Size
}

// Container 绘制容器
type Container struct {
	em       *ecs.EntityManager
	root     ecs.EntityID
	width    float64
	height   float64
	parent   Sizer
	viewport geometry.Size

	window         *components.ListenerComponent
	nextListenerID events.ListenerID
}

// NewContainer 创建容器及其 svg 根节点
func NewContainer(opts ContainerOptions) *Container {
	c := &Container{
		em:       ecs.NewEntityManager(),
		width:    opts.Width,
		height:   opts.Height,
		parent:   opts.Parent,
		viewport: opts.Viewport,
		window:   components.NewListenerComponent(),
	}
	c.root = c.createEntity(components.ShapeSVG)
	return c
}

// EntityManager 返回保存图元的实体管理器
func (c *Container) EntityManager() *ecs.EntityManager {
	return c.em
}

// Root 返回 svg 根节点
func (c *Container) Root() Shape {
	return Shape{c: c, id: c.root}
}

// ClientSize 返回容器自身尺寸（可能为 0）
func (c *Container) ClientSize() (float64, float64) {
	return c.width, c.height
}

// Size 返回容器的有效尺寸
// 宽、高分别判断：自身为 0 时使用父级的对应值
func (c *Container) Size() geometry.Size {
	w, h := c.width, c.height
	if (w == 0 || h == 0) && c.parent != nil {
		pw, ph := c.parent.ClientSize()
		if w == 0 {
			w = pw
		}
		if h == 0 {
			h = ph
		}
	}
	return geometry.Size{W: w, H: h}
}

// Viewport 返回视口尺寸
func (c *Container) Viewport() geometry.Size {
	return c.viewport
}

// AppendChild 把图元挂到根节点下
func (c *Container) AppendChild(child Shape) {
	c.Root().AppendChild(child)
}

// GetElementByID 查找已挂载到容器中、id 属性等于 id 的图元
func (c *Container) GetElementByID(id string) (Shape, bool) {
	var found Shape
	c.Walk(func(s Shape) bool {
		if found.IsValid() {
			return false
		}
		if v, ok := s.Lookup("id"); ok && v == id {
			found = s
			return false
		}
		return true
	}, nil)
	return found, found.IsValid()
}

// Walk 先序遍历图元树
// enter 返回 false 时跳过该节点的子树（leave 仍会被调用）；leave 可为 nil
func (c *Container) Walk(enter func(s Shape) bool, leave func(s Shape)) {
	c.walk(c.root, enter, leave)
}

func (c *Container) walk(id ecs.EntityID, enter func(s Shape) bool, leave func(s Shape)) {
	s := Shape{c: c, id: id}
	if enter(s) {
		if h, ok := ecs.GetComponent[*components.HierarchyComponent](c.em, id); ok {
			children := append([]ecs.EntityID(nil), h.Children...)
			for _, child := range children {
				c.walk(child, enter, leave)
			}
		}
	}
	if leave != nil {
		leave(s)
	}
}

// AddWindowListener 注册窗口级监听器
// 窗口级监听器接收所有事件，无论指针位于何处
func (c *Container) AddWindowListener(eventType events.EventType, handler events.Handler) events.ListenerID {
	id := c.allocListenerID()
	c.window.Add(eventType, id, handler)
	return id
}

// RemoveWindowListener 移除窗口级监听器，返回是否找到
func (c *Container) RemoveWindowListener(eventType events.EventType, id events.ListenerID) bool {
	return c.window.Remove(eventType, id)
}

// WindowListenerCount 返回当前窗口级监听器数量
func (c *Container) WindowListenerCount() int {
	return c.window.Count()
}

// ListenerCount 返回图元和窗口上的监听器总数
func (c *Container) ListenerCount() int {
	n := c.window.Count()
	for _, id := range ecs.GetEntitiesWith1[*components.ListenerComponent](c.em) {
		l, _ := ecs.GetComponent[*components.ListenerComponent](c.em, id)
		n += l.Count()
	}
	return n
}

// Dispatch 派发事件
//
// 带位置的事件先命中测试最上层的图元，从该图元沿父链冒泡，
// 最后交给窗口级监听器。Blur 只派发给窗口。
func (c *Container) Dispatch(e *events.Event) {
	if x, y, ok := e.Position(); ok {
		for target := c.HitTest(x, y); target.IsValid(); {
			c.invoke(target.id, e)
			if e.PropagationStopped() {
				return
			}
			parent, ok := target.Parent()
			if !ok {
				break
			}
			target = parent
		}
	}

	for _, l := range c.window.Snapshot(e.Type) {
		l.Handler(e)
		if e.PropagationStopped() {
			return
		}
	}
}

func (c *Container) invoke(id ecs.EntityID, e *events.Event) {
	l, ok := ecs.GetComponent[*components.ListenerComponent](c.em, id)
	if !ok {
		return
	}
	for _, entry := range l.Snapshot(e.Type) {
		entry.Handler(e)
	}
}

func (c *Container) allocListenerID() events.ListenerID {
	c.nextListenerID++
	return c.nextListenerID
}

func (c *Container) createEntity(kind components.ShapeKind) ecs.EntityID {
	id := c.em.CreateEntity()
	ecs.AddComponent(c.em, id, &components.ShapeComponent{Kind: kind})
	ecs.AddComponent(c.em, id, &components.HierarchyComponent{})
	return id
}
