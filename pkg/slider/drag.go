package slider

import (
	"strings"

	"github.com/decker502/circularslider/pkg/events"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/surface"
)

// DragState 拖动状态
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// String 返回状态名称
func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// PointerKind 发起拖动的指针类型
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
)

// Tracking 拖动跟踪状态
// LastX 为最后一次未被吸附的投影 x 坐标，LastOffset 为最后提交的角度
type Tracking struct {
	LastX      float64
	LastOffset float64
}

// Ring 环的几何参数
type Ring struct {
	Center geometry.Point
	Radius float64
}

// PointAt 返回角度对应的环上坐标
func (r Ring) PointAt(deg float64) geometry.Point {
	return geometry.PolarToCartesian(deg, r.Center, r.Radius)
}

// Top 返回 12 点钟位置
func (r Ring) Top() geometry.Point {
	return geometry.Point{X: r.Center.X, Y: r.Center.Y - r.Radius}
}

// MoveOutcome 单次移动的处理结果
type MoveOutcome int

const (
	// MoveApplied 按指针角度移动
	MoveApplied MoveOutcome = iota
	// MoveSnappedMin 逆时针越过顶部，吸附到最小值
	MoveSnappedMin
	// MoveSnappedMax 顺时针越过顶部，吸附到最大值
	MoveSnappedMax
	// MoveLocked 停在边界且方向不允许离开，忽略
	MoveLocked
	// MoveDegenerate 指针与圆心重合，方向不确定，忽略
	MoveDegenerate
)

// String 返回结果名称
func (o MoveOutcome) String() string {
	switch o {
	case MoveApplied:
		return "applied"
	case MoveSnappedMin:
		return "snapped-min"
	case MoveSnappedMax:
		return "snapped-max"
	case MoveLocked:
		return "locked"
	default:
		return "degenerate"
	}
}

// MoveResult Step 的计算结果
type MoveResult struct {
	Outcome  MoveOutcome
	Position geometry.Point // 手柄新位置（仅 Changed 时有效）
	Offset   float64        // 新角度（仅 Changed 时有效）
	Tracking Tracking       // 更新后的跟踪状态
}

// Changed 手柄是否需要移动
func (r MoveResult) Changed() bool {
	return r.Outcome != MoveLocked && r.Outcome != MoveDegenerate
}

// Step 计算一次指针移动后的手柄位置
//
// 处理顺序：
//  1. 把指针投影到环上
//  2. 已停在最小值时，x 继续减小的移动被忽略；已停在最大值时，x 继续增大的移动被忽略
//  3. 上一次 x 在圆心右侧、本次落到左侧（含中线）且位于圆心上方：吸附到最小值；
//     反方向越过时吸附到最大值。吸附不更新 LastX
//  4. 其余情况按指针计算角度，并记录投影 x 为 LastX
func Step(t Tracking, pointer geometry.Point, ring Ring) MoveResult {
	proj, ok := geometry.ProjectOntoRing(pointer, ring.Center, ring.Radius)
	if !ok {
		return MoveResult{Outcome: MoveDegenerate, Tracking: t}
	}

	if (t.LastOffset == MinOffset && proj.X < t.LastX) ||
		(t.LastOffset == MaxOffset && proj.X > t.LastX) {
		return MoveResult{Outcome: MoveLocked, Tracking: t}
	}

	cx, cy := ring.Center.X, ring.Center.Y
	res := MoveResult{Tracking: t}
	switch {
	case t.LastX > cx && proj.X <= cx && proj.Y < cy:
		res.Outcome = MoveSnappedMin
		res.Position = ring.PointAt(MinOffset)
		res.Offset = MinOffset
	case t.LastX < cx && proj.X >= cx && proj.Y < cy:
		res.Outcome = MoveSnappedMax
		res.Position = ring.PointAt(MaxOffset)
		res.Offset = MaxOffset
	default:
		res.Outcome = MoveApplied
		res.Position = proj
		res.Offset = geometry.CartesianToAngle(pointer, ring.Center)
		res.Tracking.LastX = proj.X
	}
	res.Tracking.LastOffset = res.Offset
	return res
}

// ArcPath 生成从 12 点钟沿顺时针到 end 的圆弧路径
//
//	M cx cy-r A r r 0 <largeArc> 1 x y
func ArcPath(ring Ring, end geometry.Point, largeArc bool) string {
	flag := "0"
	if largeArc {
		flag = "1"
	}
	top := ring.Top()
	r := surface.FormatNumber(ring.Radius)
	return strings.Join([]string{
		"M", surface.FormatNumber(top.X), surface.FormatNumber(top.Y),
		"A", r, r, "0", flag, "1",
		surface.FormatNumber(end.X), surface.FormatNumber(end.Y),
	}, " ")
}

// windowListener 拖动期间注册在窗口上的监听器
type windowListener struct {
	eventType events.EventType
	id        events.ListenerID
}

// DragSession 一次拖动会话
// 按下手柄时从滑块的跟踪状态初始化，每次移动都写回滑块
type DragSession struct {
	Tracking
	Pointer PointerKind

	listeners []windowListener
}

// acquire 注册窗口级监听器并记录句柄
func (d *DragSession) acquire(c *surface.Container, eventType events.EventType, handler events.Handler) {
	id := c.AddWindowListener(eventType, handler)
	d.listeners = append(d.listeners, windowListener{eventType: eventType, id: id})
}

// release 移除本会话注册的全部监听器，可重复调用
func (d *DragSession) release(c *surface.Container) {
	for _, l := range d.listeners {
		c.RemoveWindowListener(l.eventType, l.id)
	}
	d.listeners = nil
}
