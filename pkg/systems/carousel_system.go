package systems

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/decker502/showcase/pkg/components"
	"github.com/decker502/showcase/pkg/ecs"
)

// ErrSlideOutOfRange 表示 Goto 的目标不是有效的幻灯片下标
var ErrSlideOutOfRange = errors.New("slide index out of range")

type slideChangeListener struct {
	id int
	fn func(index int)
}

// CarouselSystem 首页轮播控制器
//
// 状态只有当前下标；Next/Prev 取模环绕，Goto 直接跳转。
// 自动播放计时器只有一个：任何一次切换（包括自动播放自身触发的切换）都会把它
// 重置为完整的间隔，因此自动切换总是发生在最后一次切换的一个间隔之后。
type CarouselSystem struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID

	listeners      []slideChangeListener
	nextListenerID int
}

// NewCarouselSystem 创建轮播控制器
//
// slideCount 至少为 1；startIndex 会被取模到有效范围内。
func NewCarouselSystem(em *ecs.EntityManager, slideCount int, interval time.Duration, startIndex int) *CarouselSystem {
	if slideCount < 1 {
		slideCount = 1
	}
	start := wrapIndex(startIndex, slideCount)

	cs := &CarouselSystem{entityManager: em}
	cs.entity = em.CreateEntity()
	ecs.AddComponent(em, cs.entity, &components.CarouselComponent{
		CurrentIndex:  start,
		PreviousIndex: start,
		SlideCount:    slideCount,
		TransitionAge: interval.Seconds(),
	})
	ecs.AddComponent(em, cs.entity, &components.TimerComponent{
		Name:       "carousel_autoplay",
		TargetTime: interval.Seconds(),
	})

	log.Printf("[Carousel] %d slides, autoplay every %v, starting at %d", slideCount, interval, start)
	return cs
}

// wrapIndex 把任意整数映射到 [0, n)
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

func (cs *CarouselSystem) carousel() *components.CarouselComponent {
	c, _ := ecs.GetComponent[*components.CarouselComponent](cs.entityManager, cs.entity)
	return c
}

func (cs *CarouselSystem) timer() *components.TimerComponent {
	t, _ := ecs.GetComponent[*components.TimerComponent](cs.entityManager, cs.entity)
	return t
}

// Current 返回当前幻灯片下标
func (cs *CarouselSystem) Current() int {
	return cs.carousel().CurrentIndex
}

// Previous 返回上一次切换前的下标
func (cs *CarouselSystem) Previous() int {
	return cs.carousel().PreviousIndex
}

// SlideCount 返回幻灯片数量
func (cs *CarouselSystem) SlideCount() int {
	return cs.carousel().SlideCount
}

// TransitionProgress 返回当前幻灯片淡入进度 [0, 1]，duration 为过渡时长（秒）
func (cs *CarouselSystem) TransitionProgress(duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	p := cs.carousel().TransitionAge / duration
	if p > 1 {
		return 1
	}
	return p
}

// Next 切换到下一张，末尾环绕到第一张
func (cs *CarouselSystem) Next() {
	c := cs.carousel()
	cs.setIndex(wrapIndex(c.CurrentIndex+1, c.SlideCount))
}

// Prev 切换到上一张，第一张环绕到最后一张
func (cs *CarouselSystem) Prev() {
	c := cs.carousel()
	cs.setIndex(wrapIndex(c.CurrentIndex-1, c.SlideCount))
}

// Goto 跳转到指定幻灯片
func (cs *CarouselSystem) Goto(index int) error {
	c := cs.carousel()
	if index < 0 || index >= c.SlideCount {
		return fmt.Errorf("goto %d of %d slides: %w", index, c.SlideCount, ErrSlideOutOfRange)
	}
	cs.setIndex(index)
	return nil
}

// setIndex 执行一次切换：更新下标、重置自动播放计时器、通知监听器
func (cs *CarouselSystem) setIndex(index int) {
	c := cs.carousel()
	t := cs.timer()

	// 用户操作同样会重置计时器，即使目标就是当前幻灯片
	t.Reset()

	if index == c.CurrentIndex {
		return
	}

	c.PreviousIndex = c.CurrentIndex
	c.CurrentIndex = index
	c.TransitionAge = 0
	log.Printf("[Carousel] Slide %d -> %d", c.PreviousIndex, index)

	listeners := append([]slideChangeListener(nil), cs.listeners...)
	for _, l := range listeners {
		l.fn(index)
	}
}

// Update 推进自动播放计时器，到期时切换到下一张
func (cs *CarouselSystem) Update(dt float64) {
	c := cs.carousel()
	c.TransitionAge += dt

	t := cs.timer()
	if t.Paused {
		return
	}

	t.CurrentTime += dt
	if t.Expired() {
		t.IsReady = true
		cs.Next()
	}
}

// SetAutoplay 暂停或恢复自动播放，恢复时从完整间隔重新计时
func (cs *CarouselSystem) SetAutoplay(enabled bool) {
	t := cs.timer()
	if t.Paused == !enabled {
		return
	}
	t.Paused = !enabled
	if enabled {
		t.Reset()
	}
	log.Printf("[Carousel] Autoplay enabled=%v", enabled)
}

// Autoplay 返回是否正在自动播放
func (cs *CarouselSystem) Autoplay() bool {
	return !cs.timer().Paused
}

// TimeUntilAdvance 返回距离下一次自动切换的时间
func (cs *CarouselSystem) TimeUntilAdvance() time.Duration {
	return time.Duration(cs.timer().Remaining() * float64(time.Second))
}

// TimerGeneration 返回计时器被重置的次数，每次切换都会递增
func (cs *CarouselSystem) TimerGeneration() int {
	return cs.timer().Generation
}

// OnChange 注册下标变化监听器，返回注销函数
func (cs *CarouselSystem) OnChange(fn func(index int)) func() {
	cs.nextListenerID++
	id := cs.nextListenerID
	cs.listeners = append(cs.listeners, slideChangeListener{id: id, fn: fn})
	return func() {
		for i, l := range cs.listeners {
			if l.id == id {
				cs.listeners = append(cs.listeners[:i], cs.listeners[i+1:]...)
				return
			}
		}
	}
}
