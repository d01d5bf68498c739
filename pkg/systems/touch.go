package systems

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// TouchPoint 单个活动触摸点
type TouchPoint struct {
	ID   int
	X, Y int
}

// ActiveTouches 返回当前所有活动触摸点
// 按 ID 升序排列，先按下的触摸点在前
func ActiveTouches() []TouchPoint {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) == 0 {
		return nil
	}
	points := make([]TouchPoint, 0, len(ids))
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		points = append(points, TouchPoint{ID: int(id), X: x, Y: y})
	}
	SortTouchPoints(points)
	return points
}

// SortTouchPoints 按 ID 升序原地排序
func SortTouchPoints(points []TouchPoint) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].ID < points[j].ID
	})
}
