// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// PrimaryTouch 返回第一个活动触摸点的位置
func PrimaryTouch() (active bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) == 0 {
		return false, 0, 0
	}
	x, y = ebiten.TouchPosition(touchIDs[0])
	return true, x, y
}

// DragScroller 把触摸拖拽转换为滚动距离
//
// 每帧调用 Track 传入触摸状态，返回本帧应滚动的距离（手指上移为正）。
// 移动距离累计不超过 slop 时视为点击，不产生滚动。
type DragScroller struct {
	slop     float64
	active   bool
	dragging bool
	startY   int
	lastY    int
}

// NewDragScroller 创建拖拽滚动器
func NewDragScroller(slop float64) *DragScroller {
	return &DragScroller{slop: slop}
}

// Track 更新拖拽状态并返回滚动增量
func (d *DragScroller) Track(active bool, y int) float64 {
	if !active {
		d.active = false
		d.dragging = false
		return 0
	}
	if !d.active {
		d.active = true
		d.startY, d.lastY = y, y
		return 0
	}

	if !d.dragging {
		moved := float64(y - d.startY)
		if moved < 0 {
			moved = -moved
		}
		if moved <= d.slop {
			return 0
		}
		d.dragging = true
	}

	delta := float64(d.lastY - y)
	d.lastY = y
	return delta
}

// Dragging 返回当前是否处于拖拽滚动中
func (d *DragScroller) Dragging() bool {
	return d.dragging
}
