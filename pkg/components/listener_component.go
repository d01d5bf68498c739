package components

import "github.com/decker502/circularslider/pkg/events"

// Listener 已注册的事件监听器
type Listener struct {
	ID      events.ListenerID
	Handler events.Handler
}

// ListenerComponent 事件监听组件
// 只有注册过监听器的图元才拥有此组件
type ListenerComponent struct {
	Listeners map[events.EventType][]Listener
}

// NewListenerComponent 创建空的监听组件
func NewListenerComponent() *ListenerComponent {
	return &ListenerComponent{Listeners: make(map[events.EventType][]Listener)}
}

// Add 注册监听器
func (l *ListenerComponent) Add(eventType events.EventType, id events.ListenerID, handler events.Handler) {
	l.Listeners[eventType] = append(l.Listeners[eventType], Listener{ID: id, Handler: handler})
}

// Remove 移除监听器，返回是否找到
func (l *ListenerComponent) Remove(eventType events.EventType, id events.ListenerID) bool {
	list := l.Listeners[eventType]
	for i, entry := range list {
		if entry.ID == id {
			l.Listeners[eventType] = append(list[:i:i], list[i+1:]...)
			if len(l.Listeners[eventType]) == 0 {
				delete(l.Listeners, eventType)
			}
			return true
		}
	}
	return false
}

// Snapshot 返回某类事件监听器的副本
// 派发期间监听器可能被移除，遍历副本避免修改正在迭代的切片
func (l *ListenerComponent) Snapshot(eventType events.EventType) []Listener {
	list := l.Listeners[eventType]
	if len(list) == 0 {
		return nil
	}
	out := make([]Listener, len(list))
	copy(out, list)
	return out
}

// Count 返回监听器总数
func (l *ListenerComponent) Count() int {
	n := 0
	for _, list := range l.Listeners {
		n += len(list)
	}
	return n
}
