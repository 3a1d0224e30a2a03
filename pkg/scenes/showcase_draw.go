package scenes

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/game"
	"github.com/decker502/showcase/pkg/utils"
)

var (
	colorBackground = color.NRGBA{0x0b, 0x0b, 0x14, 0xff}
	colorSurface    = color.NRGBA{0x16, 0x16, 0x24, 0xff}
	colorBorder     = color.NRGBA{0x2a, 0x2a, 0x3d, 0xff}
	colorText       = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	colorMuted      = color.NRGBA{0x9c, 0xa3, 0xaf, 0xff}
	colorAccent     = color.NRGBA{0x8b, 0x5c, 0xf6, 0xff}
)

// fade 按 alpha 缩放颜色的不透明度
func fade(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * utils.Clamp01(alpha))
	return c
}

func fillRect(dst *ebiten.Image, r game.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, true)
}

func strokeRect(dst *ebiten.Image, r game.Rect, width float32, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, true)
}

// drawText 在 (x, y) 绘制单行文本，y 为文本顶部
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.NRGBA, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

// drawParagraph 在矩形内绘制自动换行的段落，返回实际占用的高度
func drawParagraph(dst *ebiten.Image, s string, face *text.GoTextFace, r game.Rect, maxLines int, clr color.NRGBA, align text.Align) float64 {
	lineHeight := face.Size * 1.4
	lines := utils.FitLines(utils.WrapText(s, face, r.W), maxLines)
	x := r.X
	if align == text.AlignCenter {
		x = r.X + r.W/2
	}
	for i, line := range lines {
		drawText(dst, line, face, x, r.Y+float64(i)*lineHeight, clr, align)
	}
	return float64(len(lines)) * lineHeight
}

// drawCard 绘制卡片底板
func drawCard(dst *ebiten.Image, r game.Rect, alpha float64) {
	fillRect(dst, r, fade(colorSurface, alpha))
	strokeRect(dst, r, 1, fade(colorBorder, alpha))
}

func (s *ShowcaseScene) drawBackground(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s.particles.Draw(screen)
}

func (s *ShowcaseScene) drawHero(screen *ebiten.Image) {
	l := s.layout
	scrollY := s.viewport.ScrollY()
	hero := l.Hero.Translate(0, -scrollY)
	if hero.Y+hero.H <= 0 {
		return
	}

	slides := s.content.Slides
	progress := s.carousel.TransitionProgress(float64(s.effects.SlideTransitionMs) / 1000)
	if prev := s.carousel.Previous(); prev != s.carousel.Current() && progress < 1 {
		s.drawSlide(screen, slides[prev], hero, 1-progress)
	}
	s.drawSlide(screen, slides[s.carousel.Current()], hero, utils.EaseInOutCubic(progress))

	accent := slides[s.carousel.Current()].Accent.WithAlpha(1)
	for _, arrow := range []struct {
		r     game.Rect
		label string
	}{{l.PrevArrow, "<"}, {l.NextArrow, ">"}} {
		r := arrow.r.Translate(0, -scrollY)
		cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
		vector.DrawFilledCircle(screen, cx, cy, float32(arrowRadius), fade(colorSurface, 0.7), true)
		vector.StrokeCircle(screen, cx, cy, float32(arrowRadius), 1, colorBorder, true)
		drawText(screen, arrow.label, s.fonts.title, float64(cx), float64(cy)-s.fonts.title.Size*0.6, colorText, text.AlignCenter)
	}

	for i, ind := range l.Indicators {
		r := ind.Translate(0, -scrollY)
		cx, cy := float32(r.X+r.W/2), float32(r.Y+r.H/2)
		if i == s.carousel.Current() {
			vector.DrawFilledCircle(screen, cx, cy, float32(indicatorSize/2), accent, true)
		} else {
			vector.DrawFilledCircle(screen, cx, cy, float32(indicatorSize/2)-2, fade(colorText, 0.4), true)
		}
	}

	cta := l.HeroCTA.Translate(0, -scrollY)
	fillRect(screen, cta, accent)
	drawText(screen, "Get Started", s.fonts.title, cta.X+cta.W/2, cta.Y+12, colorText, text.AlignCenter)

	if !s.carousel.Autoplay() {
		drawText(screen, "autoplay paused (space to resume)", s.fonts.small, hero.X+hero.W-config.PageMarginX, hero.Y+hero.H-32, colorMuted, text.AlignEnd)
	}
}

func (s *ShowcaseScene) drawSlide(screen *ebiten.Image, slide config.SlideConfig, hero game.Rect, alpha float64) {
	if alpha <= 0 {
		return
	}
	textW := hero.W * 0.5
	if s.layout.Compact {
		textW = hero.W - 2*config.PageMarginX - 64
	}
	x := config.PageMarginX + 64
	y := hero.Y + hero.H/2 - 120

	drawText(screen, s.content.Headline, s.fonts.small, x, y-28, fade(slide.Accent.WithAlpha(1), alpha), text.AlignStart)
	h := drawParagraph(screen, slide.Title, s.fonts.hero, game.Rect{X: x, Y: y, W: textW}, 2, fade(colorText, alpha), text.AlignStart)
	drawParagraph(screen, slide.Description, s.fonts.body, game.Rect{X: x, Y: y + h + 16, W: textW}, 4, fade(colorMuted, alpha), text.AlignStart)

	if s.layout.Compact {
		return
	}
	// 图片占位框
	frame := game.Rect{X: hero.W*0.62 + 16, Y: hero.Y + hero.H/2 - 150, W: hero.W*0.38 - config.PageMarginX - 80, H: 300}
	fillRect(screen, frame, slide.Theme.WithAlpha(0.15*alpha))
	strokeRect(screen, frame, 2, slide.Accent.WithAlpha(alpha))
	drawText(screen, slide.Image, s.fonts.small, frame.X+frame.W/2, frame.Y+frame.H/2-8, fade(colorMuted, alpha), text.AlignCenter)
}

func (s *ShowcaseScene) drawSections(screen *ebiten.Image) {
	scrollY := s.viewport.ScrollY()
	view := s.viewport.Bounds()

	for _, sec := range s.layout.Sections {
		if sec.Top >= view.Y+view.H || sec.Top+sec.Height <= view.Y {
			continue
		}
		for _, b := range sec.Blocks {
			offsetY, alpha := s.reveal.Style(b.RevealID)
			r := b.Rect.Translate(0, offsetY-scrollY)
			if alpha <= 0 || r.Y >= view.H || r.Y+r.H <= 0 {
				continue
			}
			s.drawBlock(screen, sec, b, r, alpha)
		}
		for _, btn := range sec.Buttons {
			s.drawButton(screen, btn, btn.Rect.Translate(0, -scrollY))
		}
	}

	footer := game.Rect{X: 0, Y: s.layout.ContentHeight - footerHeight - scrollY, W: view.W, H: footerHeight}
	if footer.Y < view.H {
		fillRect(screen, footer, colorSurface)
		drawText(screen, "© "+s.content.Brand+". All rights reserved.", s.fonts.small, footer.W/2, footer.Y+footer.H/2-8, colorMuted, text.AlignCenter)
	}
}

func (s *ShowcaseScene) drawButton(screen *ebiten.Image, btn Button, r game.Rect) {
	active := false
	switch btn.Kind {
	case HitTab:
		active = btn.Index == s.gallery.ActiveTab()
	case HitCategory:
		active = btn.Label == s.gallery.Category()
	case HitCTA:
		active = true
	}
	if active {
		fillRect(screen, r, colorAccent)
	} else {
		fillRect(screen, r, colorSurface)
		strokeRect(screen, r, 1, colorBorder)
	}
	drawText(screen, btn.Label, s.fonts.body, r.X+r.W/2, r.Y+r.H/2-s.fonts.body.Size*0.65, colorText, text.AlignCenter)
}

func (s *ShowcaseScene) drawBlock(screen *ebiten.Image, sec Section, b Block, r game.Rect, alpha float64) {
	c := s.content
	pad := 20.0
	inner := game.Rect{X: r.X + pad, Y: r.Y + pad, W: r.W - 2*pad, H: r.H - 2*pad}
	textColor := fade(colorText, alpha)
	muted := fade(colorMuted, alpha)

	switch b.Kind {
	case BlockHeader:
		drawText(screen, sec.Title, s.fonts.heading, r.X+r.W/2, r.Y, textColor, text.AlignCenter)
		drawParagraph(screen, sec.Subtitle, s.fonts.body, game.Rect{X: r.X + r.W*0.15, Y: r.Y + 52, W: r.W * 0.7}, 2, muted, text.AlignCenter)

	case BlockService:
		svc := c.Services[b.Index]
		drawCard(screen, r, alpha)
		fillRect(screen, game.Rect{X: r.X, Y: r.Y, W: r.W, H: 4}, svc.Color.WithAlpha(alpha))
		drawText(screen, svc.Title, s.fonts.title, inner.X, inner.Y, textColor, text.AlignStart)
		h := drawParagraph(screen, svc.Description, s.fonts.small, game.Rect{X: inner.X, Y: inner.Y + 36, W: inner.W}, 4, muted, text.AlignStart)
		y := inner.Y + 36 + h + 12
		for _, f := range svc.Features {
			vector.DrawFilledCircle(screen, float32(inner.X+4), float32(y+8), 3, svc.Color.WithAlpha(alpha), true)
			drawText(screen, f, s.fonts.small, inner.X+16, y, textColor, text.AlignStart)
			y += 22
		}

	case BlockProcess:
		step := c.Process[b.Index]
		drawCard(screen, r, alpha)
		drawText(screen, step.Number, s.fonts.stat, inner.X, inner.Y-4, fade(colorAccent, alpha), text.AlignStart)
		drawText(screen, step.Title, s.fonts.title, inner.X, inner.Y+52, textColor, text.AlignStart)
		drawParagraph(screen, step.Description, s.fonts.small, game.Rect{X: inner.X, Y: inner.Y + 84, W: inner.W}, 3, muted, text.AlignStart)

	case BlockTechPanel:
		drawCard(screen, r, alpha)
		tabs := s.gallery.Tabs()
		if len(tabs) == 0 {
			return
		}
		x, y := inner.X, inner.Y
		for _, tech := range tabs[s.gallery.ActiveTab()].Technologies {
			w := utils.MeasureTextWidth(tech, s.fonts.body) + 32
			if x > inner.X && x+w > inner.X+inner.W {
				x = inner.X
				y += 52
			}
			chip := game.Rect{X: x, Y: y, W: w, H: 40}
			fillRect(screen, chip, fade(colorBorder, alpha))
			drawText(screen, tech, s.fonts.body, chip.X+chip.W/2, chip.Y+10, textColor, text.AlignCenter)
			x += w + 12
		}

	case BlockProject:
		p := c.Projects[b.Index]
		drawCard(screen, r, alpha)
		drawText(screen, strings.ToUpper(p.Category), s.fonts.small, inner.X, inner.Y, fade(colorAccent, alpha), text.AlignStart)
		drawText(screen, p.Title, s.fonts.title, inner.X, inner.Y+24, textColor, text.AlignStart)
		drawParagraph(screen, p.Description, s.fonts.small, game.Rect{X: inner.X, Y: inner.Y + 60, W: inner.W}, 4, muted, text.AlignStart)
		drawParagraph(screen, strings.Join(p.Technologies, " · "), s.fonts.small, game.Rect{X: inner.X, Y: inner.Y + inner.H - 36, W: inner.W}, 2, textColor, text.AlignStart)

	case BlockTestimonial:
		t := c.Testimonials[b.Index]
		drawCard(screen, r, alpha)
		drawParagraph(screen, "“"+t.Quote+"”", s.fonts.body, game.Rect{X: inner.X, Y: inner.Y, W: inner.W}, 6, textColor, text.AlignStart)
		drawText(screen, t.Author, s.fonts.title, inner.X, inner.Y+inner.H-40, textColor, text.AlignStart)
		drawText(screen, t.Position, s.fonts.small, inner.X, inner.Y+inner.H-14, muted, text.AlignStart)

	case BlockStat:
		st := c.Stats[b.Index]
		drawCard(screen, r, alpha)
		drawText(screen, st.Value, s.fonts.stat, r.X+r.W/2, inner.Y, fade(colorAccent, alpha), text.AlignCenter)
		drawText(screen, st.Label, s.fonts.body, r.X+r.W/2, inner.Y+52, muted, text.AlignCenter)

	case BlockFeature:
		f := c.Features[b.Index]
		drawCard(screen, r, alpha)
		drawText(screen, f.Title, s.fonts.title, inner.X, inner.Y, textColor, text.AlignStart)
		drawParagraph(screen, f.Description, s.fonts.small, game.Rect{X: inner.X, Y: inner.Y + 32, W: inner.W}, 2, muted, text.AlignStart)

	case BlockCTA:
		fillRect(screen, r, fade(colorAccent, alpha*0.25))
		strokeRect(screen, r, 1, fade(colorAccent, alpha))

	case BlockContact:
		info := c.Contact[b.Index]
		drawCard(screen, r, alpha)
		drawText(screen, info.Title, s.fonts.title, inner.X, inner.Y, textColor, text.AlignStart)
		drawText(screen, info.Details, s.fonts.body, inner.X, inner.Y+34, fade(colorAccent, alpha), text.AlignStart)
		drawParagraph(screen, info.Description, s.fonts.small, game.Rect{X: inner.X, Y: inner.Y + 64, W: inner.W}, 2, muted, text.AlignStart)

	case BlockContactForm:
		// 静态表单：只绘制字段，不处理提交
		drawCard(screen, r, alpha)
		fields := []string{"Your Name", "Email Address", "Subject"}
		fieldW := (inner.W - 2*config.CardGap) / 3
		for i, label := range fields {
			fr := game.Rect{X: inner.X + float64(i)*(fieldW+config.CardGap), Y: inner.Y + 22, W: fieldW, H: 40}
			drawText(screen, label, s.fonts.small, fr.X, inner.Y, muted, text.AlignStart)
			strokeRect(screen, fr, 1, fade(colorBorder, alpha))
		}
		drawText(screen, "Message", s.fonts.small, inner.X, inner.Y+82, muted, text.AlignStart)
		strokeRect(screen, game.Rect{X: inner.X, Y: inner.Y + 104, W: inner.W, H: 140}, 1, fade(colorBorder, alpha))
		btn := game.Rect{X: inner.X, Y: inner.Y + inner.H - 44, W: 180, H: 44}
		fillRect(screen, btn, fade(colorBorder, alpha))
		drawText(screen, "Send Message", s.fonts.body, btn.X+btn.W/2, btn.Y+12, muted, text.AlignCenter)
	}
}

func (s *ShowcaseScene) drawNavBar(screen *ebiten.Image) {
	l := s.layout
	bar := game.Rect{W: l.Width, H: config.NavBarHeight}
	if s.header.Scrolled() || s.header.MenuOpen() {
		fillRect(screen, bar, fade(colorSurface, 0.92))
		fillRect(screen, game.Rect{Y: bar.H - 1, W: bar.W, H: 1}, colorBorder)
	}
	drawText(screen, s.content.Brand, s.fonts.title, l.Brand.X, l.Brand.Y+20, colorText, text.AlignStart)

	if !l.Compact {
		for i, btn := range l.NavButtons {
			clr := colorMuted
			if s.currentSection() == NavLinks[i].Section {
				clr = colorText
			}
			drawText(screen, btn.Label, s.fonts.body, btn.Rect.X+btn.Rect.W/2, btn.Rect.Y+10, clr, text.AlignCenter)
		}
		return
	}

	// 汉堡菜单按钮
	mb := l.MenuButton
	for i := 0; i < 3; i++ {
		y := float32(mb.Y + 12 + float64(i)*8)
		vector.StrokeLine(screen, float32(mb.X+8), y, float32(mb.X+mb.W-8), y, 2, colorText, true)
	}
	if !s.header.MenuOpen() {
		return
	}
	for _, item := range l.MenuItems {
		fillRect(screen, item.Rect, colorSurface)
		fillRect(screen, game.Rect{X: item.Rect.X, Y: item.Rect.Y + item.Rect.H - 1, W: item.Rect.W, H: 1}, colorBorder)
		drawText(screen, item.Label, s.fonts.body, config.PageMarginX, item.Rect.Y+14, colorText, text.AlignStart)
	}
}
