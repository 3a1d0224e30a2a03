package scenes

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/game"
	"github.com/decker502/showcase/pkg/systems"
	"github.com/decker502/showcase/pkg/utils"
)

// touchSlop 触摸移动超过该距离才视为拖拽滚动
const touchSlop = 8

// ShowcaseOptions 创建展示页场景的参数
type ShowcaseOptions struct {
	Content  *config.SiteContent
	Effects  *config.EffectsConfig
	Settings *game.SettingsManager // 可为 nil，此时偏好不持久化

	StartSlide int
	Autoplay   bool
	RevealMode config.RevealMode
	Compact    bool // 强制使用窄屏导航

	Width  int
	Height int
	Rand   *rand.Rand // 粒子随机源，nil 时按时间种子创建
}

// ShowcaseScene 单页展示场景
//
// 顶部是覆盖在粒子背景上的轮播，下面是可滚动的各个分区。
// 所有状态都由场景持有的系统管理：轮播是下标的唯一写入者，粒子场通过
// OnChange 订阅下标变化来切换主题色。
type ShowcaseScene struct {
	content  *config.SiteContent
	effects  *config.EffectsConfig
	settings *game.SettingsManager

	entityManager *ecs.EntityManager
	viewport      *game.Viewport
	scheduler     *game.FrameScheduler

	carousel  *systems.CarouselSystem
	particles *systems.ParticleFieldSystem
	reveal    *systems.RevealSystem
	header    *systems.HeaderSystem
	gallery   *systems.GallerySystem

	layout       *PageLayout
	fonts        *fontSet
	dragScroller *utils.DragScroller
	forceCompact bool

	releaseCarousel func()
	releaseResize   func()
	disposed        bool
}

// NewShowcaseScene 创建展示页场景并启动所有动效
func NewShowcaseScene(opts ShowcaseOptions) (*ShowcaseScene, error) {
	if opts.Content == nil || len(opts.Content.Slides) == 0 {
		return nil, fmt.Errorf("showcase scene requires at least one slide")
	}
	fx := opts.Effects
	if fx == nil {
		fx = config.DefaultEffectsConfig()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.WindowWidth, config.WindowHeight
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	s := &ShowcaseScene{
		content:       opts.Content,
		effects:       fx,
		settings:      opts.Settings,
		entityManager: ecs.NewEntityManager(),
		viewport:      game.NewViewport(opts.Width, opts.Height),
		scheduler:     game.NewFrameScheduler(),
		fonts:         fonts,
		dragScroller:  utils.NewDragScroller(touchSlop),
		forceCompact:  opts.Compact,
	}

	s.carousel = systems.NewCarouselSystem(s.entityManager, len(opts.Content.Slides), fx.AutoplayInterval(), opts.StartSlide)
	s.carousel.SetAutoplay(opts.Autoplay)

	s.particles = systems.NewParticleFieldSystem(s.entityManager, s.viewport, s.scheduler, fx, rng)
	s.particles.Start(s.slideTheme(s.carousel.Current()))
	s.releaseCarousel = s.carousel.OnChange(func(index int) {
		s.particles.SetTheme(s.slideTheme(index))
	})

	s.reveal = systems.NewRevealSystem(s.entityManager, fx, opts.RevealMode)
	s.header = systems.NewHeaderSystem(s.viewport, fx.HeaderScrollTrigger, config.NavBarHeight)
	s.gallery = systems.NewGallerySystem(opts.Content)

	s.relayout()
	s.releaseResize = s.viewport.OnResize(func(int, int) { s.relayout() })

	log.Printf("[ShowcaseScene] Ready: %d slides, start=%d, autoplay=%v, reveal=%s",
		len(opts.Content.Slides), s.carousel.Current(), opts.Autoplay, s.reveal.Mode())
	return s, nil
}

func (s *ShowcaseScene) slideTheme(index int) config.RGB {
	return s.content.Slides[index].Theme
}

// relayout 重新计算页面布局，同步导航锚点与揭示目标
func (s *ShowcaseScene) relayout() {
	w, h := s.viewport.Size()
	s.layout = ComputeLayout(LayoutInput{
		Content:  s.content,
		Effects:  s.effects,
		Projects: s.gallery.FilteredIndices(),
		Width:    w,
		Height:   h,
		Compact:  s.forceCompact,
	})
	s.viewport.SetContentHeight(s.layout.ContentHeight)

	for id, y := range s.layout.Anchors() {
		s.header.SetAnchor(id, y)
	}
	blocks := s.layout.Blocks()
	inLayout := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		inLayout[b.RevealID] = true
	}
	// 被筛选隐藏的项目卡片不再参与揭示，重新显示时再注册
	for _, id := range s.reveal.IDs() {
		if !inLayout[id] {
			s.reveal.Unregister(id)
		}
	}
	for _, b := range blocks {
		if s.reveal.Has(b.RevealID) {
			s.reveal.SetBounds(b.RevealID, b.Rect)
			continue
		}
		if err := s.reveal.Register(b.RevealID, b.Rect, b.Delay, b.Duration); err != nil {
			log.Printf("[ShowcaseScene] Warning: %v", err)
		}
	}
}

// Resize 实现 game.Resizable
func (s *ShowcaseScene) Resize(width, height int) {
	s.viewport.Resize(width, height)
}

// Update 读取输入并推进所有系统
func (s *ShowcaseScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	s.handleInput()
	s.Tick(deltaTime)
}

// Tick 推进帧回调、轮播计时器与滚动揭示
func (s *ShowcaseScene) Tick(deltaTime float64) {
	if s.disposed {
		return
	}
	s.scheduler.Run(deltaTime)
	s.carousel.Update(deltaTime)
	s.reveal.Update(deltaTime, s.viewport.Bounds())
}

func (s *ShowcaseScene) handleInput() {
	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		s.Click(float64(x), float64(y))
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		s.viewport.ScrollBy(-wy * config.ScrollStep)
	}
	active, _, ty := utils.PrimaryTouch()
	if delta := s.dragScroller.Track(active, ty); delta != 0 {
		s.viewport.ScrollBy(delta)
	}

	_, h := s.viewport.Size()
	page := float64(h) - config.NavBarHeight

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.carousel.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.carousel.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		s.viewport.ScrollBy(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.viewport.ScrollBy(-page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.viewport.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.viewport.ScrollTo(s.viewport.MaxScroll())
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.ToggleAutoplay()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		s.gallery.NextTab()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		s.gallery.NextCategory()
		s.relayout()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.header.ToggleMenu()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.header.CloseMenu()
	}

	// 方向键上下支持按住连续滚动
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.viewport.ScrollBy(config.ScrollStep / 4)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.viewport.ScrollBy(-config.ScrollStep / 4)
	}

	for i := 0; i < 9 && i < s.carousel.SlideCount(); i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			s.GotoSlide(i)
		}
	}
}

// Click 处理屏幕坐标 (x, y) 处的点击
func (s *ShowcaseScene) Click(x, y float64) {
	hit := s.layout.HitTest(x, y, s.viewport.ScrollY(), s.header.MenuOpen())
	switch hit.Kind {
	case HitPrev:
		s.carousel.Prev()
	case HitNext:
		s.carousel.Next()
	case HitIndicator:
		s.GotoSlide(hit.Index)
	case HitBrand:
		s.header.CloseMenu()
		s.viewport.ScrollTo(0)
	case HitNavLink, HitMenuItem:
		s.navigate(NavLinks[hit.Index].Section)
	case HitMenuButton:
		s.header.ToggleMenu()
	case HitCategory:
		s.SelectCategory(hit.Index)
	case HitTab:
		s.gallery.SetTab(hit.Index)
	case HitCTA:
		s.navigate(SectionContact)
	default:
		s.header.CloseMenu()
	}
}

func (s *ShowcaseScene) navigate(section string) {
	if err := s.header.ScrollToSection(section); err != nil {
		log.Printf("[ShowcaseScene] Warning: %v", err)
	}
}

// GotoSlide 跳转到指定幻灯片，非法下标只记录日志
func (s *ShowcaseScene) GotoSlide(index int) {
	if err := s.carousel.Goto(index); err != nil {
		log.Printf("[ShowcaseScene] Ignoring slide request: %v", err)
	}
}

// SelectCategory 按分类按钮下标切换作品集筛选，并重新布局
func (s *ShowcaseScene) SelectCategory(index int) {
	categories := s.gallery.Categories()
	if index < 0 || index >= len(categories) {
		return
	}
	if err := s.gallery.SetCategory(categories[index]); err != nil {
		log.Printf("[ShowcaseScene] Warning: %v", err)
		return
	}
	s.relayout()
}

// ToggleAutoplay 暂停/恢复自动播放，并保存偏好
func (s *ShowcaseScene) ToggleAutoplay() {
	enabled := !s.carousel.Autoplay()
	s.carousel.SetAutoplay(enabled)
	if s.settings == nil {
		return
	}
	s.settings.SetAutoplay(enabled)
	if err := s.settings.Save(); err != nil {
		log.Printf("[ShowcaseScene] Warning: failed to save settings: %v", err)
	}
}

// currentSection 返回导航栏下方的分区 id
func (s *ShowcaseScene) currentSection() string {
	y := s.viewport.ScrollY() + config.NavBarHeight
	current := SectionHero
	for _, sec := range s.layout.Sections {
		if sec.Top <= y {
			current = sec.ID
		}
	}
	return current
}

// Draw 绘制整个页面
func (s *ShowcaseScene) Draw(screen *ebiten.Image) {
	if screen == nil || s.disposed {
		return
	}
	s.drawBackground(screen)
	s.drawHero(screen)
	s.drawSections(screen)
	s.drawNavBar(screen)
}

// Dispose 实现 game.Disposable：停止帧循环、计时器与所有监听器
func (s *ShowcaseScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.particles.Stop()
	s.reveal.Stop()
	s.header.Stop()
	s.releaseCarousel()
	s.releaseResize()
	log.Printf("[ShowcaseScene] Disposed")
}

// Carousel 返回轮播控制器
func (s *ShowcaseScene) Carousel() *systems.CarouselSystem { return s.carousel }

// Particles 返回粒子场
func (s *ShowcaseScene) Particles() *systems.ParticleFieldSystem { return s.particles }

// Reveal 返回揭示控制器
func (s *ShowcaseScene) Reveal() *systems.RevealSystem { return s.reveal }

// Header 返回导航栏系统
func (s *ShowcaseScene) Header() *systems.HeaderSystem { return s.header }

// Gallery 返回作品集系统
func (s *ShowcaseScene) Gallery() *systems.GallerySystem { return s.gallery }

// Viewport 返回视口
func (s *ShowcaseScene) Viewport() *game.Viewport { return s.viewport }

// Scheduler 返回帧调度器
func (s *ShowcaseScene) Scheduler() *game.FrameScheduler { return s.scheduler }

// Layout 返回当前布局
func (s *ShowcaseScene) Layout() *PageLayout { return s.layout }
