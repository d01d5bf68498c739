// Package events 定义容器派发的指针事件
//
// 事件模型与浏览器 DOM 的鼠标/触摸事件保持一致，
// 输入系统把 Ebitengine 的轮询状态转换成这些事件。
package events

// EventType 事件类型
type EventType string

const (
	MouseDown   EventType = "mousedown"
	MouseMove   EventType = "mousemove"
	MouseUp     EventType = "mouseup"
	TouchStart  EventType = "touchstart"
	TouchMove   EventType = "touchmove"
	TouchEnd    EventType = "touchend"
	TouchCancel EventType = "touchcancel"
	// Blur 窗口失去焦点，只派发给窗口级监听器
	Blur EventType = "blur"
)

// Touch 单个触摸点
type Touch struct {
	ID           int
	PageX, PageY float64
}

// Event 指针事件
type Event struct {
	Type EventType

	// 鼠标事件的位置（容器坐标）
	ClientX, ClientY float64

	// 触摸事件当前所有活动触摸点，第一个元素为最早按下的触摸点
	Touches []Touch

	defaultPrevented bool
	propagationStop  bool
}

// PreventDefault 标记宿主不应执行默认行为（滚动、文字选择等）
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented 是否已调用 PreventDefault
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation 阻止事件继续冒泡到父元素和窗口
func (e *Event) StopPropagation() {
	e.propagationStop = true
}

// PropagationStopped 是否已调用 StopPropagation
func (e *Event) PropagationStopped() bool {
	return e.propagationStop
}

// Position 返回事件的主位置：鼠标事件为 ClientX/Y，触摸事件为第一个触摸点
// 没有触摸点的触摸事件返回 ok=false
func (e *Event) Position() (x, y float64, ok bool) {
	switch e.Type {
	case TouchStart, TouchMove, TouchEnd, TouchCancel:
		if len(e.Touches) == 0 {
			return 0, 0, false
		}
		return e.Touches[0].PageX, e.Touches[0].PageY, true
	case Blur:
		return 0, 0, false
	default:
		return e.ClientX, e.ClientY, true
	}
}

// Handler 事件处理函数
type Handler func(e *Event)

// ListenerID 注册监听器时返回的句柄，用于移除监听器
type ListenerID uint64
