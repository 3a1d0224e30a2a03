package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager controls which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
//
// 旧场景如果实现了 Disposable 会先被释放；新场景如果实现了 Resizable，
// 会立即收到当前已知的屏幕尺寸。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil {
		if d, ok := sm.currentScene.(Disposable); ok {
			d.Dispose()
		}
	}
	sm.currentScene = scene
	log.Printf("[SceneManager] Switched scene (%T)", scene)

	if r, ok := scene.(Resizable); ok && sm.width > 0 && sm.height > 0 {
		r.Resize(sm.width, sm.height)
	}
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Resize 记录新的屏幕尺寸并通知当前场景
// 尺寸未变化时不会重复通知
func (sm *SceneManager) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.currentScene.(Resizable); ok {
		r.Resize(width, height)
	}
}

// Size 返回最近一次记录的屏幕尺寸
func (sm *SceneManager) Size() (int, int) {
	return sm.width, sm.height
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Dispose 释放当前场景
func (sm *SceneManager) Dispose() {
	if d, ok := sm.currentScene.(Disposable); ok {
		d.Dispose()
	}
	sm.currentScene = nil
}
