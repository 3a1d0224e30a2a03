// Package main provides a standalone particle field viewer for tuning the
// showcase background effect.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--theme <colors>      Comma separated theme colors (e.g., --theme=#7c3aed,#14b8a6)
//	--content <path>      Use the slide themes from a content YAML file instead
//	--count <n>           Particle count (default from effects config)
//	--auto-play           Automatically cycle themes every 6 seconds
//	--verbose             Enable verbose logging
//
// Controls:
//
//	Left/Right Arrow  - Switch to previous/next theme
//	R                 - Regenerate the particle batch
//	P                 - Pause/resume particle motion
//	Q/Escape          - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/game"
	"github.com/decker502/showcase/pkg/systems"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var errQuit = errors.New("quit requested")

var (
	themeFlag    = flag.String("theme", "#7c3aed,#14b8a6,#10b981", "Comma separated theme colors")
	contentFlag  = flag.String("content", "", "Content YAML file to read slide themes from")
	countFlag    = flag.Int("count", 0, "Particle count (0 = effects config default)")
	autoPlayFlag = flag.Bool("auto-play", false, "Auto cycle through themes")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// ParticleViewerGame implements ebiten.Game interface for the particle viewer
type ParticleViewerGame struct {
	viewport  *game.Viewport
	scheduler *game.FrameScheduler
	field     *systems.ParticleFieldSystem
	carousel  *systems.CarouselSystem

	themes []config.RGB
	paused bool
}

// NewParticleViewerGame creates the viewer with the given themes
func NewParticleViewerGame(themes []config.RGB, count int, autoPlay bool) (*ParticleViewerGame, error) {
	if len(themes) == 0 {
		return nil, fmt.Errorf("at least one theme color is required")
	}

	fx := config.DefaultEffectsConfig()
	if count > 0 {
		fx.ParticleCount = count
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}

	em := ecs.NewEntityManager()
	g := &ParticleViewerGame{
		viewport:  game.NewViewport(screenWidth, screenHeight),
		scheduler: game.NewFrameScheduler(),
		themes:    themes,
	}
	g.field = systems.NewParticleFieldSystem(em, g.viewport, g.scheduler, fx, rand.New(rand.NewSource(time.Now().UnixNano())))

	// 复用轮播控制器切换主题，和展示页保持同样的计时行为
	g.carousel = systems.NewCarouselSystem(em, len(themes), fx.AutoplayInterval(), 0)
	g.carousel.SetAutoplay(autoPlay)
	g.carousel.OnChange(func(index int) {
		g.field.SetTheme(g.themes[index])
		log.Printf("Theme %d/%d", index+1, len(g.themes))
	})

	g.field.Start(themes[0])
	return g, nil
}

func parseThemes(list string) ([]config.RGB, error) {
	var themes []config.RGB
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		c, err := config.ParseHexColor(s)
		if err != nil {
			return nil, err
		}
		themes = append(themes, c)
	}
	return themes, nil
}

func loadThemes() ([]config.RGB, error) {
	if *contentFlag == "" {
		return parseThemes(*themeFlag)
	}
	content, err := config.LoadSiteContentFile(*contentFlag)
	if err != nil {
		return nil, err
	}
	themes := make([]config.RGB, len(content.Slides))
	for i, slide := range content.Slides {
		themes[i] = slide.Theme
	}
	return themes, nil
}

func (g *ParticleViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.carousel.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.carousel.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.field.SetTheme(g.field.Theme())
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.paused = !g.paused
	}

	dt := 1.0 / 60.0
	g.carousel.Update(dt)
	if !g.paused {
		g.scheduler.Run(dt)
	}
	return nil
}

func (g *ParticleViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 17, G: 24, B: 39, A: 255})
	g.field.Draw(screen)

	theme := g.field.Theme()
	ebitenutil.DebugPrintAt(screen, "Particle Field Viewer", 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Theme %d/%d: #%02x%02x%02x",
		g.carousel.Current()+1, len(g.themes), theme.R, theme.G, theme.B), 10, 30)
	w, h := g.field.Bounds()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Particles: %d  Surface: %.0fx%.0f  Batch: %d",
		g.field.Count(), w, h, g.field.Batch()), 10, 50)
	if g.carousel.Autoplay() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Next theme in %.1fs", g.carousel.TimeUntilAdvance().Seconds()), 10, 70)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "[PAUSED]", screenWidth-100, 10)
	}
	ebitenutil.DebugPrintAt(screen, "Left/Right: theme  R: regenerate  P: pause  Q: quit", 10, 90)
}

func (g *ParticleViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return screenWidth, screenHeight
	}
	g.viewport.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	// 默认静音运行，如需详细调试，传入 --verbose
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	themes, err := loadThemes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load themes: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewParticleViewerGame(themes, *countFlag, *autoPlayFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize viewer: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Particle Field Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
	log.Println("Particle viewer closed")
}
