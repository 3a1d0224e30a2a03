package scenes

import (
	"testing"

	"github.com/decker502/showcase/pkg/config"
)

func newTestContent() *config.SiteContent {
	rgb := func(s string) config.RGB {
		c, err := config.ParseHexColor(s)
		if err != nil {
			panic(err)
		}
		return c
	}
	return &config.SiteContent{
		Brand:    "Test Studio",
		Headline: "Test Headline",
		Slides: []config.SlideConfig{
			{Title: "Games", Theme: rgb("#7c3aed"), Accent: rgb("#c084fc")},
			{Title: "Web", Theme: rgb("#14b8a6"), Accent: rgb("#2dd4bf")},
			{Title: "Marketing", Theme: rgb("#10b981"), Accent: rgb("#4ade80")},
		},
		Services: make([]config.ServiceConfig, 4),
		Process:  make([]config.ProcessStep, 6),
		TechTabs: []config.TechTab{
			{Name: "Game Development", Technologies: []string{"Unity"}},
			{Name: "Web Development", Technologies: []string{"React"}},
		},
		Projects: []config.Project{
			{Title: "Shop", Category: "Websites"},
			{Title: "Inventory", Category: "Software"},
			{Title: "Shooter", Category: "Games"},
		},
		Testimonials: make([]config.Testimonial, 3),
		Stats:        make([]config.Stat, 4),
		Features:     make([]config.Feature, 2),
		Contact:      make([]config.ContactInfo, 3),
	}
}

func newTestLayout(w, h int) *PageLayout {
	return ComputeLayout(LayoutInput{
		Content:  newTestContent(),
		Projects: []int{0, 1, 2},
		Width:    w,
		Height:   h,
	})
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		inner, minCard float64
		maxCols        int
		want           int
	}{
		{1152, 260, 4, 4},
		{800, 260, 4, 2},
		{100, 260, 4, 1},
		{5000, 300, 3, 3},
	}
	for _, tt := range tests {
		if got := gridColumns(tt.inner, tt.minCard, tt.maxCols); got != tt.want {
			t.Errorf("gridColumns(%v, %v, %d) = %d, want %d", tt.inner, tt.minCard, tt.maxCols, got, tt.want)
		}
	}
}

func TestLayoutGrid(t *testing.T) {
	rects, h := layoutGrid(0, 100, 424, 3, 2, 50)
	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}
	if rects[0].W != 200 || rects[1].X != 224 || rects[2].Y != 174 {
		t.Errorf("unexpected grid rects: %+v", rects)
	}
	if h != 124 {
		t.Errorf("grid height = %v, want 124", h)
	}
	if r, h := layoutGrid(0, 0, 100, 0, 2, 50); r != nil || h != 0 {
		t.Error("empty grid should have no rects and zero height")
	}
}

func TestComputeLayout_Hero(t *testing.T) {
	l := newTestLayout(1280, 720)
	if l.Hero.H != 720 || l.Hero.W != 1280 {
		t.Errorf("Hero = %+v, want full viewport", l.Hero)
	}
	if len(l.Indicators) != 3 {
		t.Errorf("got %d indicators, want 3", len(l.Indicators))
	}

	short := newTestLayout(1280, 300)
	if short.Hero.H != heroMinHeight {
		t.Errorf("short viewport hero height = %v, want %v", short.Hero.H, heroMinHeight)
	}
}

func TestComputeLayout_SectionsAndAnchors(t *testing.T) {
	l := newTestLayout(1280, 720)
	anchors := l.Anchors()

	prev := -1.0
	for _, link := range NavLinks {
		y, ok := anchors[link.Section]
		if !ok {
			t.Fatalf("missing anchor for %q", link.Section)
		}
		if y <= prev {
			t.Errorf("anchor %q at %v not below previous %v", link.Section, y, prev)
		}
		prev = y
	}
	if anchors[SectionHero] != 0 {
		t.Errorf("home anchor = %v, want 0", anchors[SectionHero])
	}

	for _, sec := range l.Sections {
		if sec.Blocks[0].Kind != BlockHeader {
			t.Errorf("section %q first block is not its header", sec.ID)
		}
	}
	last := l.Sections[len(l.Sections)-1]
	if l.ContentHeight != last.Top+last.Height+footerHeight {
		t.Errorf("ContentHeight = %v, want %v", l.ContentHeight, last.Top+last.Height+footerHeight)
	}
}

func TestComputeLayout_BlocksUniqueAndInside(t *testing.T) {
	l := newTestLayout(1280, 720)
	seen := map[string]bool{}
	for _, b := range l.Blocks() {
		if seen[b.RevealID] {
			t.Errorf("duplicate reveal id %q", b.RevealID)
		}
		seen[b.RevealID] = true
		if b.Rect.Y < l.Hero.H || b.Rect.Y+b.Rect.H > l.ContentHeight {
			t.Errorf("block %q at %+v outside page", b.RevealID, b.Rect)
		}
		if b.Duration <= 0 {
			t.Errorf("block %q has no transition duration", b.RevealID)
		}
	}

	for _, id := range []string{"services-card-3", "process-step-5", "projects-card-2", "contact-form", "technologies-panel"} {
		if !seen[id] {
			t.Errorf("missing block %q", id)
		}
	}
}

func TestComputeLayout_Stagger(t *testing.T) {
	l := newTestLayout(1280, 720)
	sec, ok := l.Section(SectionProcess)
	if !ok {
		t.Fatal("process section missing")
	}
	// Blocks[0] 是标题，第 i 个步骤延迟 i*150ms
	for i, b := range sec.Blocks[1:] {
		want := float64(i) * 0.15
		if b.Delay < want-1e-9 || b.Delay > want+1e-9 {
			t.Errorf("step %d delay = %v, want %v", i, b.Delay, want)
		}
	}
}

func TestComputeLayout_ProjectFilter(t *testing.T) {
	l := ComputeLayout(LayoutInput{Content: newTestContent(), Projects: []int{2}, Width: 1280, Height: 720})
	sec, _ := l.Section(SectionProjects)

	var ids []string
	for _, b := range sec.Blocks {
		if b.Kind == BlockProject {
			ids = append(ids, b.RevealID)
		}
	}
	if len(ids) != 1 || ids[0] != "projects-card-2" {
		t.Errorf("project blocks = %v, want [projects-card-2]", ids)
	}
	if len(sec.Buttons) != 4 {
		t.Errorf("got %d category buttons, want 4", len(sec.Buttons))
	}
}

func TestComputeLayout_Compact(t *testing.T) {
	wide := newTestLayout(1280, 720)
	if wide.Compact || len(wide.NavButtons) != len(NavLinks) {
		t.Errorf("wide layout: Compact=%v nav=%d", wide.Compact, len(wide.NavButtons))
	}
	for i := 1; i < len(wide.NavButtons); i++ {
		if wide.NavButtons[i].Rect.X < wide.NavButtons[i-1].Rect.X+wide.NavButtons[i-1].Rect.W {
			t.Errorf("nav buttons %d and %d overlap", i-1, i)
		}
	}

	narrow := newTestLayout(600, 800)
	if !narrow.Compact || len(narrow.NavButtons) != 0 || len(narrow.MenuItems) != len(NavLinks) {
		t.Errorf("narrow layout: Compact=%v nav=%d menu=%d", narrow.Compact, len(narrow.NavButtons), len(narrow.MenuItems))
	}

	forced := ComputeLayout(LayoutInput{Content: newTestContent(), Width: 1280, Height: 720, Compact: true})
	if !forced.Compact {
		t.Error("Compact input not honoured")
	}
}

func center(l *PageLayout, kind HitKind) (float64, float64) {
	switch kind {
	case HitPrev:
		return l.PrevArrow.X + l.PrevArrow.W/2, l.PrevArrow.Y + l.PrevArrow.H/2
	case HitNext:
		return l.NextArrow.X + l.NextArrow.W/2, l.NextArrow.Y + l.NextArrow.H/2
	}
	return 0, 0
}

func TestHitTest_Hero(t *testing.T) {
	l := newTestLayout(1280, 720)

	x, y := center(l, HitPrev)
	if hit := l.HitTest(x, y, 0, false); hit.Kind != HitPrev {
		t.Errorf("prev arrow hit = %+v", hit)
	}
	x, y = center(l, HitNext)
	if hit := l.HitTest(x, y, 0, false); hit.Kind != HitNext {
		t.Errorf("next arrow hit = %+v", hit)
	}
	ind := l.Indicators[2]
	if hit := l.HitTest(ind.X+ind.W/2, ind.Y+ind.H/2, 0, false); hit.Kind != HitIndicator || hit.Index != 2 {
		t.Errorf("indicator hit = %+v, want indicator 2", hit)
	}

	// 滚动后同一屏幕位置不再是箭头
	x, y = center(l, HitNext)
	if hit := l.HitTest(x, y, 200, false); hit.Kind == HitNext {
		t.Error("next arrow still hit after scrolling 200px")
	}
	if hit := l.HitTest(x, y-200, 200, false); hit.Kind != HitNext {
		t.Errorf("next arrow at scrolled position hit = %+v", hit)
	}
}

func TestHitTest_NavAndMenu(t *testing.T) {
	wide := newTestLayout(1280, 720)
	b := wide.NavButtons[3]
	if hit := wide.HitTest(b.Rect.X+1, b.Rect.Y+1, 500, false); hit.Kind != HitNavLink || hit.Index != 3 {
		t.Errorf("nav link hit = %+v, want link 3", hit)
	}
	if hit := wide.HitTest(wide.Brand.X+5, 20, 500, false); hit.Kind != HitBrand {
		t.Errorf("brand hit = %+v", hit)
	}

	narrow := newTestLayout(600, 800)
	mb := narrow.MenuButton
	if hit := narrow.HitTest(mb.X+5, mb.Y+5, 0, false); hit.Kind != HitMenuButton {
		t.Errorf("menu button hit = %+v", hit)
	}
	item := narrow.MenuItems[1].Rect
	if hit := narrow.HitTest(item.X+10, item.Y+10, 0, true); hit.Kind != HitMenuItem || hit.Index != 1 {
		t.Errorf("open menu item hit = %+v", hit)
	}
	if hit := narrow.HitTest(item.X+10, item.Y+10, 0, false); hit.Kind == HitMenuItem {
		t.Error("closed menu should not be hit")
	}
}

func TestHitTest_SectionButtons(t *testing.T) {
	l := newTestLayout(1280, 720)
	sec, _ := l.Section(SectionProjects)
	btn := sec.Buttons[2]
	scrollY := btn.Rect.Y - 200

	hit := l.HitTest(btn.Rect.X+4, btn.Rect.Y-scrollY+4, scrollY, false)
	if hit.Kind != HitCategory || hit.Index != 2 {
		t.Errorf("category hit = %+v, want category 2", hit)
	}

	tech, _ := l.Section(SectionTechnologies)
	tab := tech.Buttons[1]
	scrollY = tab.Rect.Y - 300
	hit = l.HitTest(tab.Rect.X+4, tab.Rect.Y-scrollY+4, scrollY, false)
	if hit.Kind != HitTab || hit.Index != 1 {
		t.Errorf("tab hit = %+v, want tab 1", hit)
	}
}
