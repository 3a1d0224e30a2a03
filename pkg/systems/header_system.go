package systems

import (
	"fmt"
	"log"

	"github.com/decker502/showcase/pkg/game"
)

// HeaderSystem 顶部导航栏
//
// 负责滚动后的半透明背景切换、移动端菜单开关，以及点击导航项后滚动到对应区块。
type HeaderSystem struct {
	viewport      *game.Viewport
	trigger       float64
	navBarHeight  float64
	scrolled      bool
	menuOpen      bool
	anchors       map[string]float64
	releaseScroll func()
}

// NewHeaderSystem 创建导航栏系统并订阅滚动事件
// 滚动偏移超过 trigger 像素时 Scrolled 为 true
func NewHeaderSystem(viewport *game.Viewport, trigger, navBarHeight float64) *HeaderSystem {
	hs := &HeaderSystem{
		viewport:     viewport,
		trigger:      trigger,
		navBarHeight: navBarHeight,
		anchors:      make(map[string]float64),
	}
	hs.scrolled = viewport.ScrollY() > trigger
	hs.releaseScroll = viewport.OnScroll(hs.onScroll)
	return hs
}

func (hs *HeaderSystem) onScroll(scrollY float64) {
	scrolled := scrollY > hs.trigger
	if scrolled != hs.scrolled {
		log.Printf("[Header] Scrolled=%v (y=%.0f)", scrolled, scrollY)
	}
	hs.scrolled = scrolled
}

// Scrolled 返回页面是否已离开顶部
func (hs *HeaderSystem) Scrolled() bool {
	return hs.scrolled
}

// MenuOpen 返回移动端菜单是否展开
func (hs *HeaderSystem) MenuOpen() bool {
	return hs.menuOpen
}

// ToggleMenu 切换移动端菜单
func (hs *HeaderSystem) ToggleMenu() {
	hs.menuOpen = !hs.menuOpen
}

// CloseMenu 收起移动端菜单
func (hs *HeaderSystem) CloseMenu() {
	hs.menuOpen = false
}

// SetAnchor 记录区块在页面坐标中的顶部位置
func (hs *HeaderSystem) SetAnchor(id string, y float64) {
	hs.anchors[id] = y
}

// Anchor 返回区块位置
func (hs *HeaderSystem) Anchor(id string) (float64, bool) {
	y, ok := hs.anchors[id]
	return y, ok
}

// ScrollToSection 滚动到区块（留出导航栏高度）并收起菜单
func (hs *HeaderSystem) ScrollToSection(id string) error {
	y, ok := hs.anchors[id]
	if !ok {
		return fmt.Errorf("unknown section %q", id)
	}
	hs.viewport.ScrollTo(y - hs.navBarHeight)
	hs.CloseMenu()
	return nil
}

// Stop 注销滚动监听
func (hs *HeaderSystem) Stop() {
	if hs.releaseScroll != nil {
		hs.releaseScroll()
		hs.releaseScroll = nil
	}
}
