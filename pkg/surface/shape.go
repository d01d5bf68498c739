package surface

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/ecs"
	"github.com/decker502/circularslider/pkg/events"
)

// ErrNotChild 表示 RemoveChild 的参数不是该图元的子元素
var ErrNotChild = errors.New("shape is not a child of this element")

// Shape 图元句柄
// 只保存容器引用和实体 ID，所有状态都在容器的组件中
type Shape struct {
	c  *Container
	id ecs.EntityID
}

// NewShape 创建指定类型的图元并设置初始属性
// 新图元尚未挂载，需要通过 AppendChild 加入树中
func NewShape(c *Container, kind components.ShapeKind, attrs ...components.Attr) Shape {
	s := Shape{c: c, id: c.createEntity(kind)}
	s.SetBulk(attrs...)
	return s
}

// Attr 构造属性，数值使用 FormatValue 格式化
func Attr(name string, value any) components.Attr {
	return components.Attr{Name: name, Value: FormatValue(value)}
}

// FormatValue 把属性值格式化为字符串
func FormatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return FormatNumber(v)
	case float32:
		return FormatNumber(float64(v))
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// FormatNumber 格式化坐标类数值
// 保留 6 位小数以内的精度，消除三角函数带来的 1e-15 级误差
func FormatNumber(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0 // 去掉 -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// IsValid 句柄是否指向存在的图元
func (s Shape) IsValid() bool {
	return s.c != nil && s.id != ecs.InvalidEntity && s.c.em.Exists(s.id)
}

// Entity 返回图元的实体 ID
func (s Shape) Entity() ecs.EntityID {
	return s.id
}

// Container 返回图元所属容器
func (s Shape) Container() *Container {
	return s.c
}

func (s Shape) shape() *components.ShapeComponent {
	comp, _ := ecs.GetComponent[*components.ShapeComponent](s.c.em, s.id)
	return comp
}

func (s Shape) hierarchy() *components.HierarchyComponent {
	comp, _ := ecs.GetComponent[*components.HierarchyComponent](s.c.em, s.id)
	return comp
}

// Kind 返回图元类型
func (s Shape) Kind() components.ShapeKind {
	return s.shape().Kind
}

// Get 返回属性值，不存在时返回空字符串
func (s Shape) Get(name string) string {
	v, _ := s.shape().Attr(name)
	return v
}

// Lookup 返回属性值及其是否存在
func (s Shape) Lookup(name string) (string, bool) {
	return s.shape().Attr(name)
}

// Float 把属性解析为浮点数（忽略 "px" 后缀）
func (s Shape) Float(name string) (float64, bool) {
	v, ok := s.shape().Attr(name)
	if !ok {
		return 0, false
	}
	return ParseLength(v)
}

// Set 设置属性
func (s Shape) Set(name string, value any) {
	s.shape().SetAttr(name, FormatValue(value))
}

// SetBulk 批量设置属性
func (s Shape) SetBulk(attrs ...components.Attr) {
	comp := s.shape()
	for _, a := range attrs {
		comp.SetAttr(a.Name, a.Value)
	}
}

// Attrs 返回属性的副本
func (s Shape) Attrs() []components.Attr {
	return append([]components.Attr(nil), s.shape().Attrs...)
}

// AddClass 添加 CSS 类（已存在则忽略）
func (s Shape) AddClass(class string) {
	if s.HasClass(class) {
		return
	}
	comp := s.shape()
	comp.Classes = append(comp.Classes, class)
}

// RemoveClass 移除 CSS 类
func (s Shape) RemoveClass(class string) {
	comp := s.shape()
	for i, c := range comp.Classes {
		if c == class {
			comp.Classes = append(comp.Classes[:i:i], comp.Classes[i+1:]...)
			return
		}
	}
}

// HasClass 是否拥有 CSS 类
func (s Shape) HasClass(class string) bool {
	for _, c := range s.shape().Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes 返回 CSS 类的副本
func (s Shape) Classes() []string {
	return append([]string(nil), s.shape().Classes...)
}

// SetText 设置文本节点内容
func (s Shape) SetText(text string) {
	s.shape().Text = text
}

// Text 返回文本节点内容
func (s Shape) Text() string {
	return s.shape().Text
}

// AddEventListener 在图元上注册监听器
func (s Shape) AddEventListener(eventType events.EventType, handler events.Handler) events.ListenerID {
	l, ok := ecs.GetComponent[*components.ListenerComponent](s.c.em, s.id)
	if !ok {
		l = components.NewListenerComponent()
		ecs.AddComponent(s.c.em, s.id, l)
	}
	id := s.c.allocListenerID()
	l.Add(eventType, id, handler)
	return id
}

// RemoveEventListener 移除图元上的监听器，返回是否找到
func (s Shape) RemoveEventListener(eventType events.EventType, id events.ListenerID) bool {
	l, ok := ecs.GetComponent[*components.ListenerComponent](s.c.em, s.id)
	if !ok {
		return false
	}
	return l.Remove(eventType, id)
}

// AppendChild 把 child 追加为最后一个子元素
// child 已挂载在其他位置时先从原父元素摘下
func (s Shape) AppendChild(child Shape) {
	if parent, ok := child.Parent(); ok {
		_ = parent.RemoveChild(child)
	}
	h := s.hierarchy()
	h.Children = append(h.Children, child.id)
	child.hierarchy().Parent = s.id
}

// RemoveChild 移除子元素
func (s Shape) RemoveChild(child Shape) error {
	h := s.hierarchy()
	idx := h.IndexOf(child.id)
	if idx < 0 {
		return ErrNotChild
	}
	h.Children = append(h.Children[:idx:idx], h.Children[idx+1:]...)
	child.hierarchy().Parent = ecs.InvalidEntity
	return nil
}

// Parent 返回父元素
func (s Shape) Parent() (Shape, bool) {
	h := s.hierarchy()
	if h == nil || h.Parent == ecs.InvalidEntity {
		return Shape{}, false
	}
	return Shape{c: s.c, id: h.Parent}, true
}

// Children 返回子元素（按绘制顺序）
func (s Shape) Children() []Shape {
	h := s.hierarchy()
	out := make([]Shape, 0, len(h.Children))
	for _, id := range h.Children {
		out = append(out, Shape{c: s.c, id: id})
	}
	return out
}

// ElementsByKind 返回所有指定类型的后代元素（不含自身），按文档顺序
func (s Shape) ElementsByKind(kind components.ShapeKind) []Shape {
	var out []Shape
	s.c.walk(s.id, func(d Shape) bool {
		if d.id != s.id && d.Kind() == kind {
			out = append(out, d)
		}
		return true
	}, nil)
	return out
}
