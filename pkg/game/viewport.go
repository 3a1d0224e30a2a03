package game

import "log"

type resizeListener struct {
	id int
	fn func(width, height int)
}

type scrollListener struct {
	id int
	fn func(scrollY float64)
}

// Viewport 可见区域：窗口尺寸加上页面的垂直滚动偏移
//
// 相当于浏览器的 window：负责 resize/scroll 事件的分发。
// 监听器按注册顺序调用，注册函数返回的闭包用于注销（可重复调用）。
type Viewport struct {
	width         int
	height        int
	scrollY       float64
	contentHeight float64

	nextListenerID  int
	resizeListeners []resizeListener
	scrollListeners []scrollListener
}

// NewViewport 创建指定尺寸的视口
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// Size 返回视口尺寸
func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

// ScrollY 返回当前滚动偏移
func (v *Viewport) ScrollY() float64 {
	return v.scrollY
}

// Bounds 返回视口在页面坐标系中的矩形
func (v *Viewport) Bounds() Rect {
	return Rect{X: 0, Y: v.scrollY, W: float64(v.width), H: float64(v.height)}
}

// SetContentHeight 设置页面总高度，滚动偏移会被限制在新的范围内
func (v *Viewport) SetContentHeight(h float64) {
	v.contentHeight = h
	v.ScrollTo(v.scrollY)
}

// MaxScroll 返回最大滚动偏移
func (v *Viewport) MaxScroll() float64 {
	m := v.contentHeight - float64(v.height)
	if m < 0 {
		return 0
	}
	return m
}

// Resize 更新视口尺寸并通知 resize 监听器，尺寸未变化时不通知
func (v *Viewport) Resize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = width, height
	log.Printf("[Viewport] Resized to %dx%d", width, height)

	// 复制一份，监听器在回调中注销自己也不影响本轮分发
	listeners := append([]resizeListener(nil), v.resizeListeners...)
	for _, l := range listeners {
		l.fn(width, height)
	}

	v.ScrollTo(v.scrollY)
}

// ScrollTo 滚动到指定偏移（会被限制在 [0, MaxScroll]），偏移变化时通知 scroll 监听器
func (v *Viewport) ScrollTo(y float64) {
	if y > v.MaxScroll() {
		y = v.MaxScroll()
	}
	if y < 0 {
		y = 0
	}
	if y == v.scrollY {
		return
	}
	v.scrollY = y

	listeners := append([]scrollListener(nil), v.scrollListeners...)
	for _, l := range listeners {
		l.fn(y)
	}
}

// ScrollBy 相对滚动
func (v *Viewport) ScrollBy(dy float64) {
	v.ScrollTo(v.scrollY + dy)
}

// OnResize 注册 resize 监听器，返回注销函数
func (v *Viewport) OnResize(fn func(width, height int)) func() {
	v.nextListenerID++
	id := v.nextListenerID
	v.resizeListeners = append(v.resizeListeners, resizeListener{id: id, fn: fn})
	return func() {
		for i, l := range v.resizeListeners {
			if l.id == id {
				v.resizeListeners = append(v.resizeListeners[:i], v.resizeListeners[i+1:]...)
				return
			}
		}
	}
}

// OnScroll 注册 scroll 监听器，返回注销函数
func (v *Viewport) OnScroll(fn func(scrollY float64)) func() {
	v.nextListenerID++
	id := v.nextListenerID
	v.scrollListeners = append(v.scrollListeners, scrollListener{id: id, fn: fn})
	return func() {
		for i, l := range v.scrollListeners {
			if l.id == id {
				v.scrollListeners = append(v.scrollListeners[:i], v.scrollListeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount 返回当前注册的 resize 与 scroll 监听器数量
func (v *Viewport) ListenerCount() (resize, scroll int) {
	return len(v.resizeListeners), len(v.scrollListeners)
}
