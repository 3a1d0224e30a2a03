package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/showcase/pkg/embedded"
)

// EffectsConfigPath 是动效配置在资源文件系统中的路径
const EffectsConfigPath = "data/effects.yaml"

// Range 表示半开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Span 返回区间宽度
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains 判断 v 是否位于 [Min, Max)
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// EffectsConfig 视觉动效参数
//
// 默认值见 DefaultEffectsConfig()，data/effects.yaml 可以覆盖其中任意字段。
type EffectsConfig struct {
	// 粒子背景
	ParticleCount    int     `yaml:"particleCount"`    // 每批粒子数量
	ParticleRadius   Range   `yaml:"particleRadius"`   // 半径范围（像素）
	ParticleMaxSpeed float64 `yaml:"particleMaxSpeed"` // 每轴速度绝对值上限（像素/帧）
	ParticleAlpha    Range   `yaml:"particleAlpha"`    // 透明度范围

	// 轮播
	AutoplayIntervalMs int `yaml:"autoplayIntervalMs"` // 自动切换间隔（毫秒）

	// 滚动揭示
	RevealThreshold     float64 `yaml:"revealThreshold"`     // 可见比例阈值
	RevealRootMargin    float64 `yaml:"revealRootMargin"`    // 视口外扩（像素）
	RevealHiddenOffset  float64 `yaml:"revealHiddenOffset"`  // 隐藏时向下偏移（像素）
	HeaderRevealMs      int     `yaml:"headerRevealMs"`      // 标题过渡时长
	CardRevealMs        int     `yaml:"cardRevealMs"`        // 卡片过渡时长
	CardStaggerMs       int     `yaml:"cardStaggerMs"`       // 卡片依次延迟
	SlowCardStaggerMs   int     `yaml:"slowCardStaggerMs"`   // 流程/评价卡片依次延迟
	HeaderScrollTrigger float64 `yaml:"headerScrollTrigger"` // 导航栏变为不透明的滚动距离
	SlideTransitionMs   int     `yaml:"slideTransitionMs"`   // 幻灯片淡入淡出时长（纯装饰）
}

// DefaultEffectsConfig 返回默认动效参数
func DefaultEffectsConfig() *EffectsConfig {
	return &EffectsConfig{
		ParticleCount:       100,
		ParticleRadius:      Range{Min: 1, Max: 4},
		ParticleMaxSpeed:    0.25,
		ParticleAlpha:       Range{Min: 0.1, Max: 0.6},
		AutoplayIntervalMs:  6000,
		RevealThreshold:     0.1,
		RevealRootMargin:    0,
		RevealHiddenOffset:  40,
		HeaderRevealMs:      1000,
		CardRevealMs:        700,
		CardStaggerMs:       100,
		SlowCardStaggerMs:   150,
		HeaderScrollTrigger: 10,
		SlideTransitionMs:   1000,
	}
}

// AutoplayInterval 返回自动播放间隔
func (c *EffectsConfig) AutoplayInterval() time.Duration {
	return time.Duration(c.AutoplayIntervalMs) * time.Millisecond
}

// ParseEffectsConfig 解析 YAML，未出现的字段保留默认值
func ParseEffectsConfig(data []byte) (*EffectsConfig, error) {
	cfg := DefaultEffectsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse effects YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid effects config: %w", err)
	}
	return cfg, nil
}

// LoadEffectsConfig 从资源文件系统加载动效配置
func LoadEffectsConfig(path string) (*EffectsConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects file %s: %w", path, err)
	}
	return ParseEffectsConfig(data)
}

// Validate 验证配置的有效性
func (c *EffectsConfig) Validate() error {
	if c.ParticleCount < 0 {
		return fmt.Errorf("particleCount must be >= 0, got %d", c.ParticleCount)
	}
	if c.ParticleRadius.Min <= 0 || c.ParticleRadius.Max <= c.ParticleRadius.Min {
		return fmt.Errorf("particleRadius must satisfy 0 < min < max, got [%v, %v)", c.ParticleRadius.Min, c.ParticleRadius.Max)
	}
	if c.ParticleMaxSpeed < 0 {
		return fmt.Errorf("particleMaxSpeed must be >= 0, got %v", c.ParticleMaxSpeed)
	}
	if c.ParticleAlpha.Min < 0 || c.ParticleAlpha.Max > 1 || c.ParticleAlpha.Max <= c.ParticleAlpha.Min {
		return fmt.Errorf("particleAlpha must satisfy 0 <= min < max <= 1, got [%v, %v)", c.ParticleAlpha.Min, c.ParticleAlpha.Max)
	}
	if c.AutoplayIntervalMs <= 0 {
		return fmt.Errorf("autoplayIntervalMs must be > 0, got %d", c.AutoplayIntervalMs)
	}
	if c.RevealThreshold < 0 || c.RevealThreshold > 1 {
		return fmt.Errorf("revealThreshold must be within [0, 1], got %v", c.RevealThreshold)
	}
	if c.HeaderRevealMs < 0 || c.CardRevealMs < 0 || c.CardStaggerMs < 0 || c.SlowCardStaggerMs < 0 {
		return fmt.Errorf("reveal durations must be >= 0")
	}
	return nil
}
