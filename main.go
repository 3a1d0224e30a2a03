// Package main 是展示应用的桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose            Enable verbose logging
//	--slide <index>      Start at the given carousel slide (0-based)
//	--no-autoplay        Disable carousel autoplay for this session
//	--fullscreen         Start in fullscreen mode
//	--content <path>     Load page content from a YAML file instead of the embedded one
//
// Controls:
//
//	Left/Right Arrow  - Previous/next slide
//	1-9               - Jump to slide
//	Space             - Pause/resume autoplay
//	Wheel, Up/Down    - Scroll the page
//	PageUp/PageDown   - Scroll one screen
//	Home/End          - Jump to top/bottom
//	Tab               - Next technology tab
//	C                 - Next project category
//	M / Escape        - Open/close the navigation menu
//	F11               - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/showcase/pkg/app"
	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/embedded"
)

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	slideFlag      = flag.Int("slide", 0, "Initial carousel slide index")
	noAutoplayFlag = flag.Bool("no-autoplay", false, "Disable carousel autoplay")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
	contentFlag    = flag.String("content", "", "Path to a content YAML file overriding the embedded content")
)

func main() {
	flag.Parse()

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	showcase, err := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		StartSlide:  *slideFlag,
		NoAutoplay:  *noAutoplayFlag,
		Fullscreen:  *fullscreenFlag,
		ContentPath: *contentFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer showcase.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(showcase); err != nil {
		log.Fatalf("运行失败: %v", err)
	}
}
