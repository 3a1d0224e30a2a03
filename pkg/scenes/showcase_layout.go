package scenes

import (
	"fmt"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/game"
	"github.com/decker502/showcase/pkg/systems"
)

// 页面分区 id，同时也是导航锚点
const (
	SectionHero         = "home"
	SectionServices     = "services"
	SectionProcess      = "process"
	SectionTechnologies = "technologies"
	SectionProjects     = "projects"
	SectionTestimonials = "testimonials"
	SectionAbout        = "about"
	SectionCTA          = "cta"
	SectionContact      = "contact"
)

// compactWidth 以下导航栏折叠为菜单按钮
const compactWidth = 960

const (
	headerBlockHeight = 96.0
	headerGap         = 32.0
	buttonRowHeight   = 40.0
	buttonGap         = 12.0
	footerHeight      = 120.0
	heroMinHeight     = 480.0
	arrowRadius       = 24.0
	indicatorSize     = 16.0
	indicatorSpacing  = 28.0
	menuItemHeight    = 48.0
	menuButtonSize    = 40.0
)

// NavLink 导航栏链接
type NavLink struct {
	Label   string
	Section string
}

// NavLinks 导航栏上的链接（顺序即显示顺序）
var NavLinks = []NavLink{
	{"Services", SectionServices},
	{"Process", SectionProcess},
	{"Technologies", SectionTechnologies},
	{"Projects", SectionProjects},
	{"Testimonials", SectionTestimonials},
	{"About", SectionAbout},
	{"Contact", SectionContact},
}

type sectionHeading struct {
	title    string
	subtitle string
}

var sectionHeadings = map[string]sectionHeading{
	SectionServices:     {"Our Services", "We offer a wide range of digital services to help your business grow and succeed in the digital landscape."},
	SectionProcess:      {"Our Process", "We follow a structured approach to ensure successful project delivery and client satisfaction."},
	SectionTechnologies: {"Technologies We Use", "We leverage cutting-edge technologies to deliver exceptional digital solutions."},
	SectionProjects:     {"Our Projects", "Explore our portfolio of successful projects across various industries."},
	SectionTestimonials: {"What Our Clients Say", "Don't just take our word for it. Here's what our clients have to say about working with us."},
	SectionAbout:        {"About Us", "We are a team of passionate developers, designers, and digital marketers."},
	SectionCTA:          {"Ready to Start Your Project?", "Let's work together to bring your digital vision to life."},
	SectionContact:      {"Get In Touch", "Have a project in mind? Contact us today to discuss how we can help."},
}

// BlockKind 页面块的种类，决定绘制方式
type BlockKind int

const (
	BlockHeader BlockKind = iota
	BlockService
	BlockProcess
	BlockTechPanel
	BlockProject
	BlockTestimonial
	BlockStat
	BlockFeature
	BlockCTA
	BlockContact
	BlockContactForm
)

// Block 参与滚动揭示的页面块（页面坐标）
type Block struct {
	RevealID string
	Kind     BlockKind
	Index    int // 在对应内容列表中的下标
	Rect     game.Rect
	Delay    float64 // 秒
	Duration float64 // 秒
}

// HitKind 点击命中的目标种类
type HitKind int

const (
	HitNone HitKind = iota
	HitPrev
	HitNext
	HitIndicator
	HitBrand
	HitNavLink
	HitMenuButton
	HitMenuItem
	HitCategory
	HitTab
	HitCTA
)

// Button 可点击区域
type Button struct {
	Kind  HitKind
	Index int
	Label string
	Rect  game.Rect
}

// Hit 点击测试结果
type Hit struct {
	Kind  HitKind
	Index int
}

// Section 一个页面分区
type Section struct {
	ID       string
	Title    string
	Subtitle string
	Top      float64
	Height   float64
	Blocks   []Block  // Blocks[0] 是分区标题
	Buttons  []Button // 分类筛选、标签页等
}

// PageLayout 整个页面的布局结果
//
// 导航栏与菜单使用屏幕坐标（固定在顶部），其余全部为页面坐标。
type PageLayout struct {
	Width   float64
	Height  float64
	Compact bool

	Brand      game.Rect
	NavButtons []Button
	MenuButton game.Rect
	MenuItems  []Button

	Hero       game.Rect
	PrevArrow  game.Rect
	NextArrow  game.Rect
	Indicators []game.Rect
	HeroCTA    game.Rect

	Sections      []Section
	ContentHeight float64
}

// LayoutInput 计算布局所需的数据
type LayoutInput struct {
	Content  *config.SiteContent
	Effects  *config.EffectsConfig
	Projects []int // 当前筛选出的项目下标
	Width    int
	Height   int
	Compact  bool // 无论宽度都使用折叠导航
}

// estimateTextWidth 估算按钮文字宽度，布局阶段不依赖字体
func estimateTextWidth(s string) float64 {
	return float64(len(s)) * 8
}

// gridColumns 返回容纳 minCard 宽卡片的列数，限定在 [1, maxCols]
func gridColumns(inner, minCard float64, maxCols int) int {
	cols := int((inner + config.CardGap) / (minCard + config.CardGap))
	if cols < 1 {
		cols = 1
	}
	if cols > maxCols {
		cols = maxCols
	}
	return cols
}

// layoutGrid 把 n 张卡片排成网格，返回每张卡片矩形和网格总高度
func layoutGrid(x0, y0, inner float64, n, cols int, cardH float64) ([]game.Rect, float64) {
	if n == 0 {
		return nil, 0
	}
	cardW := (inner - float64(cols-1)*config.CardGap) / float64(cols)
	rects := make([]game.Rect, n)
	for i := 0; i < n; i++ {
		col, row := i%cols, i/cols
		rects[i] = game.Rect{
			X: x0 + float64(col)*(cardW+config.CardGap),
			Y: y0 + float64(row)*(cardH+config.CardGap),
			W: cardW,
			H: cardH,
		}
	}
	rows := (n + cols - 1) / cols
	return rects, float64(rows)*cardH + float64(rows-1)*config.CardGap
}

// layoutButtonRow 把按钮从左到右排列，超出宽度时换行
func layoutButtonRow(kind HitKind, labels []string, x0, y0, inner float64) ([]Button, float64) {
	if len(labels) == 0 {
		return nil, 0
	}
	buttons := make([]Button, len(labels))
	x, y := x0, y0
	for i, label := range labels {
		w := estimateTextWidth(label) + 48
		if x > x0 && x+w > x0+inner {
			x = x0
			y += buttonRowHeight + buttonGap
		}
		buttons[i] = Button{Kind: kind, Index: i, Label: label, Rect: game.Rect{X: x, Y: y, W: w, H: buttonRowHeight}}
		x += w + buttonGap
	}
	return buttons, y + buttonRowHeight - y0
}

type sectionBuilder struct {
	x0     float64
	inner  float64
	y      float64
	header float64
	card   float64
}

func (b *sectionBuilder) begin(id string) Section {
	h := sectionHeadings[id]
	sec := Section{ID: id, Title: h.title, Subtitle: h.subtitle, Top: b.y}
	b.y += config.SectionPaddingY
	sec.Blocks = append(sec.Blocks, Block{
		RevealID: id + "-header",
		Kind:     BlockHeader,
		Rect:     game.Rect{X: b.x0, Y: b.y, W: b.inner, H: headerBlockHeight},
		Duration: b.header,
	})
	b.y += headerBlockHeight + headerGap
	return sec
}

func (b *sectionBuilder) end(sec *Section) {
	b.y += config.SectionPaddingY
	sec.Height = b.y - sec.Top
}

// grid 追加一组卡片，indices 为卡片对应的内容下标
func (b *sectionBuilder) grid(sec *Section, kind BlockKind, prefix string, indices []int, minCard float64, maxCols int, cardH float64, staggerMs int) {
	cols := gridColumns(b.inner, minCard, maxCols)
	rects, h := layoutGrid(b.x0, b.y, b.inner, len(indices), cols, cardH)
	for pos, idx := range indices {
		sec.Blocks = append(sec.Blocks, Block{
			RevealID: fmt.Sprintf("%s-%d", prefix, idx),
			Kind:     kind,
			Index:    idx,
			Rect:     rects[pos],
			Delay:    systems.StaggerDelay(pos, staggerMs),
			Duration: b.card,
		})
	}
	if h > 0 {
		b.y += h + config.CardGap
	}
}

func (b *sectionBuilder) banner(sec *Section, kind BlockKind, id string, h float64) {
	sec.Blocks = append(sec.Blocks, Block{
		RevealID: id,
		Kind:     kind,
		Rect:     game.Rect{X: b.x0, Y: b.y, W: b.inner, H: h},
		Duration: b.card,
	})
	b.y += h + config.CardGap
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// ComputeLayout 根据视口尺寸与内容计算整个页面的布局
func ComputeLayout(in LayoutInput) *PageLayout {
	fx := in.Effects
	if fx == nil {
		fx = config.DefaultEffectsConfig()
	}
	w, h := float64(in.Width), float64(in.Height)
	l := &PageLayout{Width: w, Height: h, Compact: in.Compact || in.Width < compactWidth}

	l.layoutNav()
	l.layoutHero(len(in.Content.Slides))

	inner := w - 2*config.PageMarginX
	if inner < 200 {
		inner = 200
	}
	b := &sectionBuilder{
		x0:     config.PageMarginX,
		inner:  inner,
		y:      l.Hero.H,
		header: float64(fx.HeaderRevealMs) / 1000,
		card:   float64(fx.CardRevealMs) / 1000,
	}
	c := in.Content

	sec := b.begin(SectionServices)
	b.grid(&sec, BlockService, "services-card", seq(len(c.Services)), 260, 4, 300, fx.CardStaggerMs)
	b.end(&sec)
	l.Sections = append(l.Sections, sec)

	sec = b.begin(SectionProcess)
	b.grid(&sec, BlockProcess, "process-step", seq(len(c.Process)), 300, 3, 180, fx.SlowCardStaggerMs)
	b.end(&sec)
	l.Sections = append(l.Sections, sec)

	sec = b.begin(SectionTechnologies)
	tabLabels := make([]string, len(c.TechTabs))
	for i, tab := range c.TechTabs {
		tabLabels[i] = tab.Name
	}
	buttons, rowH := layoutButtonRow(HitTab, tabLabels, b.x0, b.y, b.inner)
	sec.Buttons = buttons
	if rowH > 0 {
		b.y += rowH + config.CardGap
		b.banner(&sec, BlockTechPanel, "technologies-panel", 200)
	}
	b.end(&sec)
	l.Sections = append(l.Sections, sec)

	sec = b.begin(SectionProjects)
	buttons, rowH = layoutButtonRow(HitCategory, c.ProjectCategories(), b.x0, b.y, b.inner)
	sec.Buttons = buttons
	b.y += rowH + config.CardGap
	b.grid(&sec, BlockProject, "projects-card", in.Projects, 300, 3, 260, fx.CardStaggerMs)
	b.end(&sec)
	l.Sections = append(l.Sections, sec)

	sec = b.begin(SectionTestimonials)
	b.grid(&sec, BlockTestimonial, "testimonials-card", seq(len(c.Testimonials)), 320, 3, 240, fx.SlowCardStaggerMs)
	b.end(&sec)
	l.Sections = append(l.Sections, sec)

	sec = b.begin(SectionAbout)
	b.grid(&sec, BlockStat, "about-stat", seq(len(c.Stats)), 200, 4, 120, fx.CardStaggerMs)
	b.grid(&sec, BlockFeature, "about-feature", seq(len(c.Features)), 300, 2, 110, fx.CardStaggerMs)
	b.end(&sec)
	l.Sections = append(l.Sections, sec)

	sec = b.begin(SectionCTA)
	b.banner(&sec, BlockCTA, "cta-banner", 160)
	banner := sec.Blocks[len(sec.Blocks)-1].Rect
	sec.Buttons = []Button{{
		Kind:  HitCTA,
		Label: "Contact Us Today",
		Rect:  game.Rect{X: banner.X + banner.W/2 - 110, Y: banner.Y + banner.H - 64, W: 220, H: buttonRowHeight},
	}}
	b.end(&sec)
	l.Sections = append(l.Sections, sec)

	sec = b.begin(SectionContact)
	b.grid(&sec, BlockContact, "contact-card", seq(len(c.Contact)), 260, 4, 150, fx.CardStaggerMs)
	b.banner(&sec, BlockContactForm, "contact-form", 360)
	b.end(&sec)
	l.Sections = append(l.Sections, sec)

	l.ContentHeight = b.y + footerHeight
	return l
}

func (l *PageLayout) layoutNav() {
	l.Brand = game.Rect{X: config.PageMarginX, Y: 0, W: 240, H: config.NavBarHeight}
	btnY := (config.NavBarHeight - menuButtonSize) / 2

	if l.Compact {
		l.MenuButton = game.Rect{X: l.Width - config.PageMarginX/2 - menuButtonSize, Y: btnY, W: menuButtonSize, H: menuButtonSize}
		for i, link := range NavLinks {
			l.MenuItems = append(l.MenuItems, Button{
				Kind:  HitMenuItem,
				Index: i,
				Label: link.Label,
				Rect:  game.Rect{X: 0, Y: config.NavBarHeight + float64(i)*menuItemHeight, W: l.Width, H: menuItemHeight},
			})
		}
		return
	}

	// 从右向左排列链接
	x := l.Width - config.PageMarginX
	buttons := make([]Button, len(NavLinks))
	for i := len(NavLinks) - 1; i >= 0; i-- {
		w := estimateTextWidth(NavLinks[i].Label) + 24
		x -= w
		buttons[i] = Button{Kind: HitNavLink, Index: i, Label: NavLinks[i].Label, Rect: game.Rect{X: x, Y: btnY, W: w, H: menuButtonSize}}
	}
	l.NavButtons = buttons
}

func (l *PageLayout) layoutHero(slides int) {
	h := l.Height
	if h < heroMinHeight {
		h = heroMinHeight
	}
	l.Hero = game.Rect{W: l.Width, H: h}

	cy := h / 2
	l.PrevArrow = game.Rect{X: 48 - arrowRadius, Y: cy - arrowRadius, W: 2 * arrowRadius, H: 2 * arrowRadius}
	l.NextArrow = game.Rect{X: l.Width - 48 - arrowRadius, Y: cy - arrowRadius, W: 2 * arrowRadius, H: 2 * arrowRadius}

	total := float64(slides-1) * indicatorSpacing
	startX := l.Width/2 - total/2
	for i := 0; i < slides; i++ {
		cx := startX + float64(i)*indicatorSpacing
		l.Indicators = append(l.Indicators, game.Rect{X: cx - indicatorSize/2, Y: h - 56 - indicatorSize/2, W: indicatorSize, H: indicatorSize})
	}

	l.HeroCTA = game.Rect{X: config.PageMarginX + 64, Y: cy + 96, W: 180, H: 48}
}

// Section 按 id 查找分区
func (l *PageLayout) Section(id string) (*Section, bool) {
	for i := range l.Sections {
		if l.Sections[i].ID == id {
			return &l.Sections[i], true
		}
	}
	return nil, false
}

// Anchors 返回各分区顶部位置（页面坐标），包括 home
func (l *PageLayout) Anchors() map[string]float64 {
	anchors := map[string]float64{SectionHero: 0}
	for _, s := range l.Sections {
		anchors[s.ID] = s.Top
	}
	return anchors
}

// Blocks 返回所有参与揭示的块
func (l *PageLayout) Blocks() []Block {
	var out []Block
	for _, s := range l.Sections {
		out = append(out, s.Blocks...)
	}
	return out
}

// HitTest 对屏幕坐标 (x, y) 做点击测试
func (l *PageLayout) HitTest(x, y, scrollY float64, menuOpen bool) Hit {
	if y < config.NavBarHeight {
		if l.Brand.Contains(x, y) {
			return Hit{Kind: HitBrand}
		}
		if l.Compact {
			if l.MenuButton.Contains(x, y) {
				return Hit{Kind: HitMenuButton}
			}
			return Hit{}
		}
		for _, b := range l.NavButtons {
			if b.Rect.Contains(x, y) {
				return Hit{Kind: b.Kind, Index: b.Index}
			}
		}
		return Hit{}
	}

	if l.Compact && menuOpen {
		for _, b := range l.MenuItems {
			if b.Rect.Contains(x, y) {
				return Hit{Kind: b.Kind, Index: b.Index}
			}
		}
	}

	px, py := x, y+scrollY
	if l.Hero.Contains(px, py) {
		switch {
		case l.PrevArrow.Contains(px, py):
			return Hit{Kind: HitPrev}
		case l.NextArrow.Contains(px, py):
			return Hit{Kind: HitNext}
		case l.HeroCTA.Contains(px, py):
			return Hit{Kind: HitCTA}
		}
		for i, r := range l.Indicators {
			if r.Contains(px, py) {
				return Hit{Kind: HitIndicator, Index: i}
			}
		}
		return Hit{}
	}

	for _, s := range l.Sections {
		if py < s.Top || py >= s.Top+s.Height {
			continue
		}
		for _, b := range s.Buttons {
			if b.Rect.Contains(px, py) {
				return Hit{Kind: b.Kind, Index: b.Index}
			}
		}
	}
	return Hit{}
}
