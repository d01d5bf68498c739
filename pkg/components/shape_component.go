package components

// ShapeKind 图元类型
type ShapeKind string

const (
	ShapeSVG    ShapeKind = "svg" // 容器根节点
	ShapeGroup  ShapeKind = "g"
	ShapeCircle ShapeKind = "circle"
	ShapePath   ShapeKind = "path"
	ShapeRect   ShapeKind = "rect"
	ShapeText   ShapeKind = "text"
)

// Attr 单个图元属性
type Attr struct {
	Name  string
	Value string
}

// ShapeComponent 图元组件
// 保存图元类型、按插入顺序排列的属性、CSS 类和文本内容
type ShapeComponent struct {
	Kind    ShapeKind
	Attrs   []Attr   // 属性（保持插入顺序，导出 SVG 时顺序稳定）
	Classes []string // CSS 类
	Text    string   // 文本节点内容（仅 text 图元使用）
}

// Attr 返回属性值
func (s *ShapeComponent) Attr(name string) (string, bool) {
	for _, a := range s.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr 设置属性；已存在的属性原地更新
func (s *ShapeComponent) SetAttr(name, value string) {
	for i := range s.Attrs {
		if s.Attrs[i].Name == name {
			s.Attrs[i].Value = value
			return
		}
	}
	s.Attrs = append(s.Attrs, Attr{Name: name, Value: value})
}
