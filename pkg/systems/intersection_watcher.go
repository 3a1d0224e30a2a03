package systems

import (
	"github.com/decker502/showcase/pkg/game"
)

// IntersectionEntry 一次相交检查中某个目标的结果
type IntersectionEntry struct {
	ID           string
	Bounds       game.Rect
	Ratio        float64 // 可见面积 / 目标面积
	Intersecting bool    // Ratio >= 阈值
}

type watchTarget struct {
	id           string
	bounds       game.Rect
	reported     bool
	intersecting bool
}

// IntersectionWatcher 计算目标矩形与视口的相交比例
//
// 行为对齐浏览器的 IntersectionObserver：目标首次被检查时无条件上报一次，
// 之后只在相交状态翻转时上报。同一次 Check 的变化合并为一批交给回调。
type IntersectionWatcher struct {
	threshold  float64
	rootMargin float64
	callback   func(entries []IntersectionEntry)

	targets []*watchTarget
}

// NewIntersectionWatcher 创建观察器
// rootMargin 为正时把视口向外扩张，为负时向内收缩
func NewIntersectionWatcher(threshold, rootMargin float64, callback func(entries []IntersectionEntry)) *IntersectionWatcher {
	return &IntersectionWatcher{
		threshold:  threshold,
		rootMargin: rootMargin,
		callback:   callback,
	}
}

func (w *IntersectionWatcher) find(id string) (int, *watchTarget) {
	for i, t := range w.targets {
		if t.id == id {
			return i, t
		}
	}
	return -1, nil
}

// Observe 开始观察目标；目标已存在时只更新其矩形
func (w *IntersectionWatcher) Observe(id string, bounds game.Rect) {
	if _, t := w.find(id); t != nil {
		t.bounds = bounds
		return
	}
	w.targets = append(w.targets, &watchTarget{id: id, bounds: bounds})
}

// Unobserve 停止观察目标
func (w *IntersectionWatcher) Unobserve(id string) {
	if i, _ := w.find(id); i >= 0 {
		w.targets = append(w.targets[:i], w.targets[i+1:]...)
	}
}

// Disconnect 停止观察所有目标
func (w *IntersectionWatcher) Disconnect() {
	w.targets = nil
}

// Observed 返回正在观察的目标数量
func (w *IntersectionWatcher) Observed() int {
	return len(w.targets)
}

// Ratio 计算目标在视口中的可见比例
// 零面积目标在视口内（含边界）时视为完全可见
func (w *IntersectionWatcher) Ratio(target, view game.Rect) float64 {
	root := view.Inset(-w.rootMargin)
	area := target.Area()
	if area == 0 {
		if target.X >= root.X && target.X <= root.X+root.W &&
			target.Y >= root.Y && target.Y <= root.Y+root.H {
			return 1
		}
		return 0
	}
	return target.Intersect(root).Area() / area
}

// Check 对所有目标做一次相交检查，返回（并回调）发生变化的目标
func (w *IntersectionWatcher) Check(view game.Rect) []IntersectionEntry {
	var changed []IntersectionEntry
	for _, t := range w.targets {
		ratio := w.Ratio(t.bounds, view)
		intersecting := ratio > 0 && ratio >= w.threshold
		if t.reported && intersecting == t.intersecting {
			continue
		}
		t.reported = true
		t.intersecting = intersecting
		changed = append(changed, IntersectionEntry{
			ID:           t.id,
			Bounds:       t.bounds,
			Ratio:        ratio,
			Intersecting: intersecting,
		})
	}
	if len(changed) > 0 && w.callback != nil {
		w.callback(changed)
	}
	return changed
}
