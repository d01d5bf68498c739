package slider

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/circularslider/pkg/components"
	"github.com/decker502/circularslider/pkg/ecs"
	"github.com/decker502/circularslider/pkg/events"
	"github.com/decker502/circularslider/pkg/geometry"
	"github.com/decker502/circularslider/pkg/surface"
)

// 图元样式（描边宽度和手柄半径会乘以布局缩放系数）
const (
	trackColor       = "lightgray"
	trackDashArray   = "8 1"
	ringStrokeWidth  = 25.0
	handleRadius     = 20.0
	handleFill       = "white"
	handleStroke     = "gray"
	handleStrokeWide = 2.0
)

// CSS 类名
const (
	ClassTrack    = "circular-slider-track"
	ClassArc      = "circular-slider-arc"
	ClassHandle   = "circular-slider-handle"
	ClassDragging = "dragging"
)

// Option 构造选项
type Option func(*options)

type options struct {
	startOffset *float64
	rng         *rand.Rand
	onChange    func(value float64)
}

// WithStartOffset 指定初始角度（默认随机）
func WithStartOffset(deg float64) Option {
	return func(o *options) {
		o.startOffset = &deg
	}
}

// WithRand 指定生成随机初始角度的随机源
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithOnChange 注册量化值改变时的回调
func WithOnChange(fn func(value float64)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// Slider 环形滑块
type Slider struct {
	cfg    Config
	layout geometry.Layout
	ring   Ring
	bins   Bins

	track  surface.Shape
	arc    surface.Shape
	handle surface.Shape
	row    *LegendRow
	state  *components.SliderComponent

	// tracking 跨拖动会话保留，初始为 (cx, startOffset)
	tracking Tracking
	session  *DragSession
}

// New 创建滑块并挂载到容器
//
// 配置和布局都在创建任何图元之前校验：
//   - 配置非法返回 *ConfigurationError
//   - 容器或视口没有可用面积返回包装后的 *geometry.LayoutError
func New(cfg Config, opts ...Option) (*Slider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bins, err := NewBins(cfg.Min, cfg.Max, cfg.Step)
	if err != nil {
		return nil, err
	}

	c := cfg.Container
	layout, err := geometry.ComputeLayout(c.Size(), c.Viewport(), cfg.Radius)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out slider %s: %w", cfg.Color, err)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	startOffset := randomOffset(o.rng)
	if o.startOffset != nil {
		if err := ValidateStartOffset(*o.startOffset); err != nil {
			return nil, err
		}
		startOffset = *o.startOffset
	}

	s := &Slider{
		cfg:    cfg,
		layout: layout,
		ring:   Ring{Center: layout.Center, Radius: layout.Radius},
		bins:   bins,
		tracking: Tracking{
			LastX:      layout.Center.X,
			LastOffset: startOffset,
		},
	}
	s.build(startOffset)

	s.state = &components.SliderComponent{
		Color:         cfg.Color,
		Min:           cfg.Min,
		Max:           cfg.Max,
		Step:          cfg.Step,
		Radius:        layout.Radius,
		Offset:        startOffset,
		Value:         bins.Quantize(startOffset),
		OnValueChange: o.onChange,
	}
	ecs.AddComponent(c.EntityManager(), s.handle.Entity(), s.state)
	s.row.SetValue(s.state.Value)

	s.handle.AddEventListener(events.MouseDown, s.onMouseDown)
	s.handle.AddEventListener(events.TouchStart, s.onTouchStart)

	log.Printf("[Slider] 创建滑块 %s: 范围 [%g, %g] 步长 %g, 半径 %.1f (缩放 %.1f), 初始角度 %.1f°",
		cfg.Color, cfg.Min, cfg.Max, cfg.Step, layout.Radius, layout.Scale, startOffset)
	return s, nil
}

func randomOffset(r *rand.Rand) float64 {
	if r != nil {
		return r.Float64() * 360
	}
	return rand.Float64() * 360
}

// build 创建底环、值弧、手柄和图例行
func (s *Slider) build(startOffset float64) {
	c := s.cfg.Container
	center := s.layout.Center
	radius := s.layout.Radius
	strokeWidth := ringStrokeWidth * s.layout.Scale

	s.track = surface.NewShape(c, components.ShapeCircle,
		surface.Attr("cx", center.X),
		surface.Attr("cy", center.Y),
		surface.Attr("r", radius),
		surface.Attr("fill", "none"),
		surface.Attr("stroke", trackColor),
		surface.Attr("stroke-width", strokeWidth),
		surface.Attr("stroke-dasharray", trackDashArray),
		surface.Attr("stroke-dashoffset", "0"),
	)
	s.track.AddClass(ClassTrack)
	c.AppendChild(s.track)

	startPos := s.ring.PointAt(startOffset)
	s.arc = surface.NewShape(c, components.ShapePath,
		surface.Attr("fill", "none"),
		surface.Attr("stroke", s.cfg.Color),
		surface.Attr("stroke-width", strokeWidth),
		surface.Attr("d", ArcPath(s.ring, startPos, startOffset > 180)),
	)
	s.arc.AddClass(ClassArc)
	c.AppendChild(s.arc)

	s.handle = surface.NewShape(c, components.ShapeCircle,
		surface.Attr("cx", startPos.X),
		surface.Attr("cy", startPos.Y),
		surface.Attr("r", handleRadius*s.layout.Scale),
		surface.Attr("fill", handleFill),
		surface.Attr("stroke", handleStroke),
		surface.Attr("stroke-width", handleStrokeWide),
	)
	s.handle.AddClass(ClassHandle)
	c.AppendChild(s.handle)

	panel := GetOrCreateLegendPanel(c, s.layout)
	s.row = panel.AddRow(s.cfg.Color, s.layout)
}

// Config 返回构造配置
func (s *Slider) Config() Config {
	return s.cfg
}

// Layout 返回构造时计算的布局
func (s *Slider) Layout() geometry.Layout {
	return s.layout
}

// Ring 返回环的几何参数
func (s *Slider) Ring() Ring {
	return s.ring
}

// Bins 返回分箱表
func (s *Slider) Bins() Bins {
	return s.bins
}

// Offset 返回当前角度
func (s *Slider) Offset() float64 {
	return s.state.Offset
}

// Value 返回当前量化值
func (s *Slider) Value() float64 {
	return s.state.Value
}

// State 返回拖动状态
func (s *Slider) State() DragState {
	if s.session != nil {
		return DragDragging
	}
	return DragIdle
}

// Tracking 返回拖动跟踪状态
func (s *Slider) Tracking() Tracking {
	return s.tracking
}

// Track 返回底环图元
func (s *Slider) Track() surface.Shape {
	return s.track
}

// Arc 返回值弧图元
func (s *Slider) Arc() surface.Shape {
	return s.arc
}

// Handle 返回手柄图元
func (s *Slider) Handle() surface.Shape {
	return s.handle
}

// LegendRow 返回图例行
func (s *Slider) LegendRow() *LegendRow {
	return s.row
}

// States 返回容器中所有滑块的状态组件，按创建顺序排列
func States(c *surface.Container) []*components.SliderComponent {
	em := c.EntityManager()
	var out []*components.SliderComponent
	for _, id := range ecs.GetEntitiesWith2[*components.SliderComponent, *components.ShapeComponent](em) {
		st, _ := ecs.GetComponent[*components.SliderComponent](em, id)
		out = append(out, st)
	}
	return out
}

func (s *Slider) onMouseDown(e *events.Event) {
	e.PreventDefault()
	session := s.beginDrag(PointerMouse)
	c := s.cfg.Container
	session.acquire(c, events.MouseMove, s.onMouseMove)
	session.acquire(c, events.MouseUp, s.onPointerUp)
	session.acquire(c, events.Blur, s.onPointerUp)
}

func (s *Slider) onTouchStart(e *events.Event) {
	e.PreventDefault()
	session := s.beginDrag(PointerTouch)
	c := s.cfg.Container
	session.acquire(c, events.TouchMove, s.onTouchMove)
	session.acquire(c, events.TouchEnd, s.onPointerUp)
	session.acquire(c, events.TouchCancel, s.onPointerUp)
	session.acquire(c, events.Blur, s.onPointerUp)
}

func (s *Slider) onMouseMove(e *events.Event) {
	e.PreventDefault()
	s.moveTo(geometry.Point{X: e.ClientX, Y: e.ClientY})
}

func (s *Slider) onTouchMove(e *events.Event) {
	e.PreventDefault()
	// 多点触摸不处理
	if len(e.Touches) != 1 {
		return
	}
	s.moveTo(geometry.Point{X: e.Touches[0].PageX, Y: e.Touches[0].PageY})
}

func (s *Slider) onPointerUp(e *events.Event) {
	e.PreventDefault()
	s.endDrag()
}

// beginDrag 进入拖动状态
// 上一次会话尚未结束时先释放它的监听器
func (s *Slider) beginDrag(kind PointerKind) *DragSession {
	if s.session != nil {
		s.endDrag()
	}
	s.session = &DragSession{Tracking: s.tracking, Pointer: kind}
	s.state.IsDragging = true
	s.handle.AddClass(ClassDragging)
	log.Printf("[Slider] %s 开始拖动 (角度 %.1f°)", s.cfg.Color, s.tracking.LastOffset)
	return s.session
}

// endDrag 退出拖动状态并释放窗口级监听器
func (s *Slider) endDrag() {
	if s.session == nil {
		return
	}
	s.session.release(s.cfg.Container)
	s.session = nil
	s.state.IsDragging = false
	s.handle.RemoveClass(ClassDragging)
	log.Printf("[Slider] %s 结束拖动 (值 %g)", s.cfg.Color, s.state.Value)
}

// moveTo 处理拖动中的一次指针移动
func (s *Slider) moveTo(pointer geometry.Point) {
	if s.session == nil {
		return
	}
	res := Step(s.session.Tracking, pointer, s.ring)
	s.session.Tracking = res.Tracking
	s.tracking = res.Tracking
	if !res.Changed() {
		return
	}
	s.apply(res.Position, res.Offset)
}

// apply 把新位置同步到手柄、值弧和图例
func (s *Slider) apply(pos geometry.Point, offset float64) {
	s.handle.Set("cx", pos.X)
	s.handle.Set("cy", pos.Y)
	s.arc.Set("d", ArcPath(s.ring, pos, pos.X < s.ring.Center.X))

	value := s.bins.Quantize(offset)
	s.row.SetValue(value)

	s.state.Offset = offset
	changed := value != s.state.Value
	s.state.Value = value
	if changed && s.state.OnValueChange != nil {
		s.state.OnValueChange(value)
	}
}
