package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/circularslider/pkg/events"
	"github.com/decker502/circularslider/pkg/surface"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsMouseButtonPressed(button ebiten.MouseButton) bool
	// Touches 返回活动触摸点，先按下的在前
	Touches() []TouchPoint
	IsFocused() bool
}

// ebitenPointerInput Ebitengine 默认实现
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (e *ebitenPointerInput) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (e *ebitenPointerInput) Touches() []TouchPoint {
	return ActiveTouches()
}

func (e *ebitenPointerInput) IsFocused() bool {
	return ebiten.IsFocused()
}

// defaultPointerInput 默认指针输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}

// InputSystem 指针输入系统
// 把每帧轮询到的鼠标、触摸和焦点状态转换为容器事件
//
// 职责：
//   - 鼠标：位置变化派发 mousemove，左键按下/松开派发 mousedown/mouseup
//   - 触摸：新触摸点派发 touchstart，位置变化派发 touchmove，抬起派发 touchend
//   - 窗口失去焦点时派发 blur
type InputSystem struct {
	container *surface.Container
	input     PointerInput

	mouseKnown   bool
	mouseX       int
	mouseY       int
	mousePressed bool

	touches map[int]TouchPoint
	focused bool
}

// NewInputSystem 创建指针输入系统
func NewInputSystem(c *surface.Container) *InputSystem {
	return NewInputSystemWithInput(c, defaultPointerInput)
}

// NewInputSystemWithInput 创建带自定义输入的指针输入系统（用于测试）
func NewInputSystemWithInput(c *surface.Container, input PointerInput) *InputSystem {
	return &InputSystem{
		container: c,
		input:     input,
		touches:   make(map[int]TouchPoint),
		focused:   true,
	}
}

// Update 轮询一次输入状态并派发事件
// 同一帧内的派发顺序：blur、鼠标事件、触摸事件
func (s *InputSystem) Update() {
	focused := s.input.IsFocused()
	if s.focused && !focused {
		log.Printf("[InputSystem] 窗口失去焦点")
		s.container.Dispatch(&events.Event{Type: events.Blur})
	}
	s.focused = focused

	s.updateMouse()
	s.updateTouches()
}

func (s *InputSystem) updateMouse() {
	x, y := s.input.CursorPosition()
	pressed := s.input.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// 第一帧只记录位置
	if s.mouseKnown && (x != s.mouseX || y != s.mouseY) {
		s.dispatchMouse(events.MouseMove, x, y)
	}
	s.mouseKnown = true
	s.mouseX, s.mouseY = x, y

	if pressed && !s.mousePressed {
		s.dispatchMouse(events.MouseDown, x, y)
	} else if !pressed && s.mousePressed {
		s.dispatchMouse(events.MouseUp, x, y)
	}
	s.mousePressed = pressed
}

func (s *InputSystem) dispatchMouse(t events.EventType, x, y int) {
	s.container.Dispatch(&events.Event{Type: t, ClientX: float64(x), ClientY: float64(y)})
}

func (s *InputSystem) updateTouches() {
	current := s.input.Touches()

	var started, moved bool
	next := make(map[int]TouchPoint, len(current))
	for _, tp := range current {
		next[tp.ID] = tp
		prev, ok := s.touches[tp.ID]
		switch {
		case !ok:
			started = true
		case prev.X != tp.X || prev.Y != tp.Y:
			moved = true
		}
	}
	ended := false
	for id := range s.touches {
		if _, ok := next[id]; !ok {
			ended = true
			break
		}
	}
	s.touches = next

	// 事件携带的是派发时仍然活动的全部触摸点
	if ended {
		s.dispatchTouch(events.TouchEnd, current)
	}
	if started {
		s.dispatchTouch(events.TouchStart, current)
	}
	if moved {
		s.dispatchTouch(events.TouchMove, current)
	}
}

func (s *InputSystem) dispatchTouch(t events.EventType, points []TouchPoint) {
	e := &events.Event{Type: t}
	for _, p := range points {
		e.Touches = append(e.Touches, events.Touch{ID: p.ID, PageX: float64(p.X), PageY: float64(p.Y)})
	}
	s.container.Dispatch(e)
}
