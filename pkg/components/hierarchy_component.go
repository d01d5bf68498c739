package components

import "github.com/decker502/circularslider/pkg/ecs"

// HierarchyComponent 层级组件
// Children 的顺序即绘制顺序，后添加的子元素绘制在上层
type HierarchyComponent struct {
	Parent   ecs.EntityID // 父元素，ecs.InvalidEntity 表示未挂载
	Children []ecs.EntityID
}

// IndexOf 返回子元素的位置，不存在时返回 -1
func (h *HierarchyComponent) IndexOf(child ecs.EntityID) int {
	for i, c := range h.Children {
		if c == child {
			return i
		}
	}
	return -1
}
