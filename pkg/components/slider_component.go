package components

// SliderComponent 环形滑块状态组件
// 挂在滑块的手柄实体上，供渲染、快照工具等查询所有滑块的当前值
type SliderComponent struct {
	// 配置
	Color    string  // 显示颜色
	Min, Max float64 // 取值范围
	Step     float64 // 量化步长
	Radius   float64 // 缩放后的环半径

	// 当前状态
	Offset float64 // 手柄角度（度，顺时针，0 为正上方）
	Value  float64 // 量化后的值

	// 状态
	IsDragging bool // 是否正在拖动

	// 回调函数
	OnValueChange func(value float64) // 量化值改变时的回调
}
