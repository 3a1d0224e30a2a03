package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/showcase/pkg/config"
)

// ErrUnknownCategory 表示筛选分类不在分类列表中
var ErrUnknownCategory = errors.New("unknown project category")

// GallerySystem 作品集筛选与技术标签页
type GallerySystem struct {
	projects   []config.Project
	categories []string
	category   int

	tabs      []config.TechTab
	activeTab int
}

// NewGallerySystem 从页面内容创建，初始分类为 "All"，初始标签页为第一个
func NewGallerySystem(content *config.SiteContent) *GallerySystem {
	return &GallerySystem{
		projects:   content.Projects,
		categories: content.ProjectCategories(),
		tabs:       content.TechTabs,
	}
}

// Categories 返回所有分类
func (gs *GallerySystem) Categories() []string {
	return gs.categories
}

// Category 返回当前分类
func (gs *GallerySystem) Category() string {
	return gs.categories[gs.category]
}

// SetCategory 切换到指定分类
func (gs *GallerySystem) SetCategory(name string) error {
	for i, c := range gs.categories {
		if c == name {
			gs.category = i
			log.Printf("[Gallery] Category -> %s", name)
			return nil
		}
	}
	return fmt.Errorf("set category %q: %w", name, ErrUnknownCategory)
}

// NextCategory 循环切换到下一个分类
func (gs *GallerySystem) NextCategory() string {
	gs.category = (gs.category + 1) % len(gs.categories)
	return gs.Category()
}

// Filtered 返回当前分类下的项目（"All" 返回全部）
func (gs *GallerySystem) Filtered() []config.Project {
	indices := gs.FilteredIndices()
	out := make([]config.Project, 0, len(indices))
	for _, i := range indices {
		out = append(out, gs.projects[i])
	}
	return out
}

// FilteredIndices 返回当前分类下项目在内容列表中的下标
func (gs *GallerySystem) FilteredIndices() []int {
	current := gs.Category()
	var out []int
	for i, p := range gs.projects {
		if current == config.AllCategory || p.Category == current {
			out = append(out, i)
		}
	}
	return out
}

// Tabs 返回所有技术标签页
func (gs *GallerySystem) Tabs() []config.TechTab {
	return gs.tabs
}

// ActiveTab 返回当前标签页下标
func (gs *GallerySystem) ActiveTab() int {
	return gs.activeTab
}

// SetTab 切换标签页，下标环绕；没有标签页时无效果
func (gs *GallerySystem) SetTab(i int) {
	if len(gs.tabs) == 0 {
		return
	}
	gs.activeTab = wrapIndex(i, len(gs.tabs))
}

// NextTab 切换到下一个标签页
func (gs *GallerySystem) NextTab() int {
	gs.SetTab(gs.activeTab + 1)
	return gs.activeTab
}
