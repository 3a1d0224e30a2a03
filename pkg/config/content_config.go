package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/showcase/pkg/embedded"
)

// ContentConfigPath 是页面内容在资源文件系统中的路径
const ContentConfigPath = "data/content.yaml"

// RGB 是不带透明度的主题色，YAML 中写作 "#7c3aed"
type RGB struct {
	R, G, B uint8
}

// UnmarshalYAML 解析十六进制颜色字符串
func (c *RGB) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("line %d: color must be a string: %w", node.Line, err)
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML 输出十六进制颜色字符串
func (c RGB) MarshalYAML() (interface{}, error) {
	return c.Colorful().Hex(), nil
}

// Colorful 返回对应的 colorful.Color
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// WithAlpha 返回指定透明度（0-1）的非预乘颜色
func (c RGB) WithAlpha(alpha float64) color.NRGBA {
	r, g, b := c.Colorful().Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(clamp01(alpha) * 255)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseHexColor 解析 "#rrggbb"、"#rgb"，前导 "#" 可省略
func ParseHexColor(s string) (RGB, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return RGB{}, fmt.Errorf("invalid color %q: want #rrggbb or #rgb", s)
	}
	col, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// SlideConfig 首页轮播的一张幻灯片
type SlideConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`  // 图片引用，仅作展示标签
	Theme       RGB    `yaml:"theme"`  // 粒子颜色
	Accent      RGB    `yaml:"accent"` // 标题与按钮颜色
}

// ServiceConfig 服务卡片
type ServiceConfig struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Color       RGB      `yaml:"color"`
	Features    []string `yaml:"features"`
}

// ProcessStep 工作流程中的一步
type ProcessStep struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// TechTab 技术标签页
type TechTab struct {
	Name         string   `yaml:"name"`
	Technologies []string `yaml:"technologies"`
}

// Project 作品集条目
type Project struct {
	Title        string   `yaml:"title"`
	Category     string   `yaml:"category"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

// Testimonial 客户评价
type Testimonial struct {
	Quote    string `yaml:"quote"`
	Author   string `yaml:"author"`
	Position string `yaml:"position"`
}

// Stat 关于我们的统计数字
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Feature 关于我们的特性条目
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// ContactInfo 联系方式卡片
type ContactInfo struct {
	Title       string `yaml:"title"`
	Details     string `yaml:"details"`
	Description string `yaml:"description"`
}

// SiteContent 页面上所有静态内容，启动后只读
type SiteContent struct {
	Brand        string          `yaml:"brand"`
	Headline     string          `yaml:"headline"`
	Slides       []SlideConfig   `yaml:"slides"`
	Services     []ServiceConfig `yaml:"services"`
	Process      []ProcessStep   `yaml:"process"`
	TechTabs     []TechTab       `yaml:"techTabs"`
	Projects     []Project       `yaml:"projects"`
	Testimonials []Testimonial   `yaml:"testimonials"`
	Stats        []Stat          `yaml:"stats"`
	Features     []Feature       `yaml:"features"`
	Contact      []ContactInfo   `yaml:"contact"`
}

// ParseSiteContent 解析并校验内容 YAML
func ParseSiteContent(data []byte) (*SiteContent, error) {
	var content SiteContent
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse content YAML: %w", err)
	}
	if err := validateSiteContent(&content); err != nil {
		return nil, fmt.Errorf("invalid content config: %w", err)
	}
	return &content, nil
}

// LoadSiteContent 从资源文件系统加载页面内容
func LoadSiteContent(path string) (*SiteContent, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return ParseSiteContent(data)
}

// LoadSiteContentFile 从磁盘加载页面内容（--content 覆盖）
func LoadSiteContentFile(path string) (*SiteContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %s: %w", path, err)
	}
	return ParseSiteContent(data)
}

// validateSiteContent 验证内容的有效性
func validateSiteContent(c *SiteContent) error {
	if len(c.Slides) == 0 {
		return fmt.Errorf("slides cannot be empty")
	}
	for i, s := range c.Slides {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("slide %d: title cannot be empty", i)
		}
		if s.Theme == (RGB{}) {
			return fmt.Errorf("slide %d (%s): theme color is required", i, s.Title)
		}
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Category) == "" {
			return fmt.Errorf("project %d (%s): category cannot be empty", i, p.Title)
		}
		if p.Category == AllCategory {
			return fmt.Errorf("project %d (%s): category %q is reserved", i, p.Title, AllCategory)
		}
	}
	for i, tab := range c.TechTabs {
		if strings.TrimSpace(tab.Name) == "" {
			return fmt.Errorf("tech tab %d: name cannot be empty", i)
		}
	}
	return nil
}

// AllCategory 是作品集筛选中表示“全部”的分类名
const AllCategory = "All"

// ProjectCategories 返回筛选分类：先是 "All"，然后按首次出现顺序列出项目分类
func (c *SiteContent) ProjectCategories() []string {
	categories := []string{AllCategory}
	seen := map[string]bool{AllCategory: true}
	for _, p := range c.Projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
