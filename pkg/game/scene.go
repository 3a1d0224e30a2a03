package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a full-window screen of the showcase (e.g. the landing page).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在窗口尺寸变化时收到通知
type Resizable interface {
	// Resize 在逻辑屏幕尺寸变化时调用（首次布局也会调用）
	Resize(width, height int)
}

// Disposable 是一个可选接口，场景被替换或程序退出时释放计时器与监听器
type Disposable interface {
	Dispose()
}
