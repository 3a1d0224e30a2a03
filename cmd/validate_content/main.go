// validate_content 校验页面内容与动效配置
//
// 用法：
//
//	go run ./cmd/validate_content [--data .] [--content path/to/content.yaml]
//
// 依次检查 data/effects.yaml、页面内容，并在常见窗口尺寸下计算布局，
// 确认所有揭示块 id 唯一。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/embedded"
	"github.com/decker502/showcase/pkg/scenes"
)

var (
	dataDirFlag = flag.String("data", ".", "Directory containing data/")
	contentFlag = flag.String("content", "", "Content YAML file to check instead of data/content.yaml")
)

// 检查布局时使用的窗口尺寸
var layoutSizes = [][2]int{{1280, 720}, {1920, 1080}, {800, 600}, {390, 844}}

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	embedded.InitFromDir(*dataDirFlag)

	effects, err := config.LoadEffectsConfig(config.EffectsConfigPath)
	if err != nil {
		fmt.Printf("❌ 动效配置无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 动效配置正确（粒子 %d 个，自动播放 %v）\n", effects.ParticleCount, effects.AutoplayInterval())

	var content *config.SiteContent
	if *contentFlag != "" {
		content, err = config.LoadSiteContentFile(*contentFlag)
	} else {
		content, err = config.LoadSiteContent(config.ContentConfigPath)
	}
	if err != nil {
		fmt.Printf("❌ 页面内容无效: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 页面内容正确: %d 张幻灯片, %d 项服务, %d 个流程步骤, %d 个项目\n",
		len(content.Slides), len(content.Services), len(content.Process), len(content.Projects))
	fmt.Printf("✅ 项目分类: %v\n", content.ProjectCategories())

	failed := 0
	for _, size := range layoutSizes {
		if n := checkLayout(content, effects, size[0], size[1]); n > 0 {
			failed += n
		}
	}
	if failed > 0 {
		fmt.Printf("❌ 共有 %d 个布局问题\n", failed)
		os.Exit(1)
	}
}

// checkLayout 返回发现的问题数量
func checkLayout(content *config.SiteContent, effects *config.EffectsConfig, w, h int) int {
	all := make([]int, len(content.Projects))
	for i := range all {
		all[i] = i
	}
	layout := scenes.ComputeLayout(scenes.LayoutInput{
		Content:  content,
		Effects:  effects,
		Projects: all,
		Width:    w,
		Height:   h,
	})

	problems := 0
	seen := make(map[string]bool)
	blocks := layout.Blocks()
	for _, b := range blocks {
		if seen[b.RevealID] {
			fmt.Printf("❌ %dx%d: 揭示块 id 重复: %s\n", w, h, b.RevealID)
			problems++
		}
		seen[b.RevealID] = true
		if b.Rect.W <= 0 || b.Rect.H <= 0 {
			fmt.Printf("❌ %dx%d: 揭示块 %s 尺寸无效\n", w, h, b.RevealID)
			problems++
		}
	}
	if problems == 0 {
		fmt.Printf("✅ %dx%d: %d 个揭示块，页面高度 %.0f，紧凑导航 %v\n", w, h, len(blocks), layout.ContentHeight, layout.Compact)
	}
	return problems
}
