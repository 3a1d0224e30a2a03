package systems

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/decker502/showcase/pkg/components"
	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/game"
	"github.com/decker502/showcase/pkg/utils"
)

// ErrDuplicateRevealID 表示同一个 id 被注册了两次
var ErrDuplicateRevealID = errors.New("duplicate reveal id")

// RevealSystem 滚动揭示控制器
//
// 每个注册的元素是一个带 RevealComponent 的实体。IntersectionWatcher 报告
// 相交状态变化后写入 Visible：latch 模式下只会从 false 变为 true，
// mirror 模式下跟随最新的相交状态。
type RevealSystem struct {
	entityManager *ecs.EntityManager
	watcher       *IntersectionWatcher
	mode          config.RevealMode
	hiddenOffset  float64

	entities map[string]ecs.EntityID
	clock    float64
	stopped  bool
}

// NewRevealSystem 创建揭示控制器
func NewRevealSystem(em *ecs.EntityManager, cfg *config.EffectsConfig, mode config.RevealMode) *RevealSystem {
	if cfg == nil {
		cfg = config.DefaultEffectsConfig()
	}
	if mode == "" {
		mode = config.RevealModeLatch
	}
	rs := &RevealSystem{
		entityManager: em,
		mode:          mode,
		hiddenOffset:  cfg.RevealHiddenOffset,
		entities:      make(map[string]ecs.EntityID),
	}
	rs.watcher = NewIntersectionWatcher(cfg.RevealThreshold, cfg.RevealRootMargin, rs.applyEntries)
	return rs
}

// StaggerDelay 返回列表中第 index 个元素的揭示延迟（秒）
func StaggerDelay(index, stepMs int) float64 {
	return float64(index*stepMs) / 1000
}

// Register 注册一个揭示目标，bounds 为页面坐标
func (rs *RevealSystem) Register(id string, bounds game.Rect, delay, duration float64) error {
	if _, ok := rs.entities[id]; ok {
		return fmt.Errorf("register %q: %w", id, ErrDuplicateRevealID)
	}
	entity := rs.entityManager.CreateEntity()
	ecs.AddComponent(rs.entityManager, entity, &components.RevealComponent{
		ID:       id,
		BoundsX:  bounds.X,
		BoundsY:  bounds.Y,
		BoundsW:  bounds.W,
		BoundsH:  bounds.H,
		Delay:    delay,
		Duration: duration,
	})
	rs.entities[id] = entity
	if !rs.stopped {
		rs.watcher.Observe(id, bounds)
	}
	return nil
}

// Has 返回 id 是否已注册
func (rs *RevealSystem) Has(id string) bool {
	_, ok := rs.entities[id]
	return ok
}

// Unregister 停止观察并移除目标；重新注册后从未揭示状态开始
func (rs *RevealSystem) Unregister(id string) bool {
	entity, ok := rs.entities[id]
	if !ok {
		return false
	}
	rs.watcher.Unobserve(id)
	rs.entityManager.DestroyEntity(entity)
	rs.entityManager.RemoveMarkedEntities()
	delete(rs.entities, id)
	return true
}

// SetBounds 在布局变化后更新目标矩形
func (rs *RevealSystem) SetBounds(id string, bounds game.Rect) {
	rc := rs.component(id)
	if rc == nil {
		return
	}
	rc.BoundsX, rc.BoundsY, rc.BoundsW, rc.BoundsH = bounds.X, bounds.Y, bounds.W, bounds.H
	if !rs.stopped {
		rs.watcher.Observe(id, bounds)
	}
}

func (rs *RevealSystem) component(id string) *components.RevealComponent {
	entity, ok := rs.entities[id]
	if !ok {
		return nil
	}
	rc, ok := ecs.GetComponent[*components.RevealComponent](rs.entityManager, entity)
	if !ok {
		return nil
	}
	return rc
}

// Update 推进揭示时钟并对视口做一次相交检查
func (rs *RevealSystem) Update(dt float64, view game.Rect) {
	rs.clock += dt
	if rs.stopped {
		return
	}
	rs.watcher.Check(view)
}

func (rs *RevealSystem) applyEntries(entries []IntersectionEntry) {
	for _, e := range entries {
		rc := rs.component(e.ID)
		if rc == nil {
			continue
		}
		switch rs.mode {
		case config.RevealModeMirror:
			if e.Intersecting && !rc.Visible {
				rc.RevealedAt = rs.clock
			}
			rc.Visible = e.Intersecting
		default:
			if e.Intersecting && !rc.Visible {
				rc.Visible = true
				rc.RevealedAt = rs.clock
				log.Printf("[Reveal] %s visible (ratio %.2f)", e.ID, e.Ratio)
			}
		}
	}
}

// Visible 返回元素是否已被标记为可见
func (rs *RevealSystem) Visible(id string) bool {
	rc := rs.component(id)
	return rc != nil && rc.Visible
}

// VisibilityMap 返回所有目标的可见性快照
func (rs *RevealSystem) VisibilityMap() map[string]bool {
	out := make(map[string]bool, len(rs.entities))
	for id := range rs.entities {
		out[id] = rs.Visible(id)
	}
	return out
}

// IDs 返回已注册的 id（排序后）
func (rs *RevealSystem) IDs() []string {
	ids := make([]string, 0, len(rs.entities))
	for id := range rs.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Progress 返回元素的过渡进度 0..1（ease-out），未揭示或未注册的元素为 0
func (rs *RevealSystem) Progress(id string) float64 {
	rc := rs.component(id)
	if rc == nil || !rc.Visible {
		return 0
	}
	elapsed := rs.clock - rc.RevealedAt - rc.Delay
	if elapsed <= 0 {
		return 0
	}
	if rc.Duration <= 0 || elapsed >= rc.Duration {
		return 1
	}
	return utils.EaseOutCubic(elapsed / rc.Duration)
}

// Style 返回元素当前的垂直偏移与不透明度
// 隐藏状态下向下偏移 hiddenOffset 且完全透明
func (rs *RevealSystem) Style(id string) (offsetY, alpha float64) {
	p := rs.Progress(id)
	return rs.hiddenOffset * (1 - p), p
}

// Mode 返回当前揭示模式
func (rs *RevealSystem) Mode() config.RevealMode {
	return rs.mode
}

// Observed 返回观察器中的目标数
func (rs *RevealSystem) Observed() int {
	return rs.watcher.Observed()
}

// Stop 断开观察器；已揭示的状态保留
func (rs *RevealSystem) Stop() {
	if rs.stopped {
		return
	}
	rs.stopped = true
	rs.watcher.Disconnect()
	log.Printf("[Reveal] Stopped, %d targets released", len(rs.entities))
}
