// Package app 提供展示应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/game"
	"github.com/decker502/showcase/pkg/scenes"
	"github.com/decker502/showcase/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StartSlide 初始幻灯片下标，非法时回退到 0
	StartSlide int
	// NoAutoplay 强制关闭自动播放（覆盖已保存的偏好）
	NoAutoplay bool
	// Fullscreen 以全屏启动（覆盖已保存的偏好）
	Fullscreen bool
	// ContentPath 非空时从磁盘读取页面内容，替代嵌入的 data/content.yaml
	ContentPath string
}

// App 是展示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化展示应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	effects, err := config.LoadEffectsConfig(config.EffectsConfigPath)
	if err != nil {
		return nil, fmt.Errorf("动效配置加载失败: %w", err)
	}

	content, err := loadContent(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("页面内容加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d slides, %d services, %d projects",
		len(content.Slides), len(content.Services), len(content.Projects))

	// 存储不可用时以降级模式运行
	storage, err := game.OpenStorage(config.StorageAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (preferences will not be saved)", err)
		storage = nil
	}
	settings := game.NewSettingsManager(storage)
	prefs := settings.GetSettings()

	autoplay := prefs.Autoplay && !cfg.NoAutoplay
	fullscreen := prefs.Fullscreen || cfg.Fullscreen
	if fullscreen {
		ebiten.SetFullscreen(true)
	}

	startSlide := cfg.StartSlide
	if startSlide < 0 || startSlide >= len(content.Slides) {
		log.Printf("[App] Start slide %d out of range, using 0", startSlide)
		startSlide = 0
	}

	scene, err := scenes.NewShowcaseScene(scenes.ShowcaseOptions{
		Content:    content,
		Effects:    effects,
		Settings:   settings,
		StartSlide: startSlide,
		Autoplay:   autoplay,
		RevealMode: prefs.RevealMode,
		Compact:    utils.IsMobile(),
		Width:      config.WindowWidth,
		Height:     config.WindowHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

func loadContent(path string) (*config.SiteContent, error) {
	if path == "" {
		return config.LoadSiteContent(config.ContentConfigPath)
	}
	log.Printf("[App] Loading content override from %s", path)
	return config.LoadSiteContentFile(path)
}

// Update 更新展示逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / 60.0
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 控制高 DPI 缩放时的滤波和边缘颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
//
// 页面随窗口自适应：逻辑尺寸等于窗口尺寸，尺寸变化会通知场景重新布局。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return config.WindowWidth, config.WindowHeight
	}
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Close 释放当前场景
func (a *App) Close() {
	a.sceneManager.Dispose()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
