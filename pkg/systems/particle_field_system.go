package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/showcase/pkg/components"
	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/ecs"
	"github.com/decker502/showcase/pkg/game"
)

// ParticleFieldSystem 首页背景的粒子场
//
// 粒子批次在 Start、每次视口 resize 以及主题切换时整体重建。
// 动画通过 FrameScheduler 的自调度回调推进：每帧移动一次并重新请求下一帧。
// 任何时刻最多只有一个帧循环处于活动状态，Stop 会取消它并移除 resize 监听。
type ParticleFieldSystem struct {
	entityManager *ecs.EntityManager
	viewport      *game.Viewport
	scheduler     *game.FrameScheduler
	cfg           *config.EffectsConfig
	rng           *rand.Rand

	theme  config.RGB
	width  float64
	height float64

	running       bool
	loop          game.FrameHandle
	releaseResize func()
	batch         int
}

// NewParticleFieldSystem 创建粒子场系统（尚未启动）
//
// rng 为 nil 时使用以 1 为种子的随机源。
func NewParticleFieldSystem(em *ecs.EntityManager, viewport *game.Viewport, scheduler *game.FrameScheduler, cfg *config.EffectsConfig, rng *rand.Rand) *ParticleFieldSystem {
	if cfg == nil {
		cfg = config.DefaultEffectsConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &ParticleFieldSystem{
		entityManager: em,
		viewport:      viewport,
		scheduler:     scheduler,
		cfg:           cfg,
		rng:           rng,
	}
}

// Start 以指定主题色生成粒子批次并启动帧循环
// 已在运行时会先 Stop，保证帧循环唯一
func (ps *ParticleFieldSystem) Start(theme config.RGB) {
	if ps.running {
		ps.Stop()
	}

	ps.theme = theme
	w, h := ps.viewport.Size()
	ps.width, ps.height = float64(w), float64(h)

	ps.releaseResize = ps.viewport.OnResize(ps.onResize)
	ps.regenerate()

	ps.running = true
	ps.loop = ps.scheduler.Request(ps.frame)
}

// Stop 取消帧循环、移除 resize 监听并销毁当前批次
func (ps *ParticleFieldSystem) Stop() {
	if !ps.running {
		return
	}
	ps.running = false

	ps.scheduler.Cancel(ps.loop)
	ps.loop = 0

	if ps.releaseResize != nil {
		ps.releaseResize()
		ps.releaseResize = nil
	}

	ps.destroyBatch()
	ps.entityManager.RemoveMarkedEntities()
}

// SetTheme 切换主题色：整体重启，粒子批次按新主题重新生成
func (ps *ParticleFieldSystem) SetTheme(theme config.RGB) {
	log.Printf("[ParticleField] Theme -> #%02x%02x%02x", theme.R, theme.G, theme.B)
	ps.Stop()
	ps.Start(theme)
}

// Running 返回帧循环是否处于活动状态
func (ps *ParticleFieldSystem) Running() bool {
	return ps.running
}

// LoopHandle 返回当前帧循环的句柄，未运行时为 0
func (ps *ParticleFieldSystem) LoopHandle() game.FrameHandle {
	return ps.loop
}

// Bounds 返回当前绘制面尺寸
func (ps *ParticleFieldSystem) Bounds() (float64, float64) {
	return ps.width, ps.height
}

// Batch 返回当前批次序号，每次重建递增
func (ps *ParticleFieldSystem) Batch() int {
	return ps.batch
}

// Theme 返回当前主题色
func (ps *ParticleFieldSystem) Theme() config.RGB {
	return ps.theme
}

func (ps *ParticleFieldSystem) onResize(width, height int) {
	ps.width, ps.height = float64(width), float64(height)
	ps.regenerate()
}

func (ps *ParticleFieldSystem) destroyBatch() {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](ps.entityManager) {
		ps.entityManager.DestroyEntity(id)
	}
}

// regenerate 销毁旧批次并按当前尺寸和主题生成新批次
// 绘制面为空时不生成任何粒子
func (ps *ParticleFieldSystem) regenerate() {
	ps.destroyBatch()
	ps.entityManager.RemoveMarkedEntities()
	ps.batch++

	if ps.width <= 0 || ps.height <= 0 {
		log.Printf("[ParticleField] Empty surface %.0fx%.0f, field inert", ps.width, ps.height)
		return
	}

	cfg := ps.cfg
	for i := 0; i < cfg.ParticleCount; i++ {
		alpha := cfg.ParticleAlpha.Min + ps.rng.Float64()*cfg.ParticleAlpha.Span()
		id := ps.entityManager.CreateEntity()
		ecs.AddComponent(ps.entityManager, id, &components.ParticleComponent{
			X:      ps.rng.Float64() * ps.width,
			Y:      ps.rng.Float64() * ps.height,
			Radius: cfg.ParticleRadius.Min + ps.rng.Float64()*cfg.ParticleRadius.Span(),
			DX:     (ps.rng.Float64()*2 - 1) * cfg.ParticleMaxSpeed,
			DY:     (ps.rng.Float64()*2 - 1) * cfg.ParticleMaxSpeed,
			Alpha:  alpha,
			Color:  ps.theme.WithAlpha(alpha),
			Batch:  ps.batch,
		})
	}
	log.Printf("[ParticleField] Batch %d: %d particles in %.0fx%.0f", ps.batch, cfg.ParticleCount, ps.width, ps.height)
}

// frame 帧回调：推进所有粒子并请求下一帧
func (ps *ParticleFieldSystem) frame(dt float64) {
	if !ps.running {
		return
	}
	ps.Advance()
	ps.loop = ps.scheduler.Request(ps.frame)
}

// Advance 把每个粒子移动一帧，越界时环绕
// 速度按帧计算，与 dt 无关
func (ps *ParticleFieldSystem) Advance() {
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](ps.entityManager) {
		p, ok := ecs.GetComponent[*components.ParticleComponent](ps.entityManager, id)
		if !ok {
			continue
		}
		p.X = wrapCoord(p.X+p.DX, ps.width)
		p.Y = wrapCoord(p.Y+p.DY, ps.height)
	}
}

// wrapCoord 超过上界回到 0，低于 0 回到紧贴上界内侧，结果始终在 [0, bound)
func wrapCoord(v, bound float64) float64 {
	if bound <= 0 {
		return 0
	}
	if v >= bound {
		return 0
	}
	if v < 0 {
		return math.Nextafter(bound, 0)
	}
	return v
}

// Particles 返回当前批次的快照（按创建顺序）
func (ps *ParticleFieldSystem) Particles() []components.ParticleComponent {
	ids := ecs.GetEntitiesWith1[*components.ParticleComponent](ps.entityManager)
	out := make([]components.ParticleComponent, 0, len(ids))
	for _, id := range ids {
		if p, ok := ecs.GetComponent[*components.ParticleComponent](ps.entityManager, id); ok {
			out = append(out, *p)
		}
	}
	return out
}

// Count 返回当前粒子数量
func (ps *ParticleFieldSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](ps.entityManager))
}

// Draw 绘制所有粒子；screen 为 nil 时不做任何事
func (ps *ParticleFieldSystem) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ParticleComponent](ps.entityManager) {
		p, ok := ecs.GetComponent[*components.ParticleComponent](ps.entityManager, id)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
	}
}
