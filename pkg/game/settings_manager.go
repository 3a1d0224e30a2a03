package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/showcase/pkg/config"
	"github.com/decker502/showcase/pkg/utils"
)

// ViewerSettings 观看偏好设置
// 只保存展示相关的偏好，不包含任何联系表单数据
type ViewerSettings struct {
	Fullscreen bool              `yaml:"fullscreen"` // 启动时是否全屏
	Autoplay   bool              `yaml:"autoplay"`   // 轮播是否自动播放
	RevealMode config.RevealMode `yaml:"revealMode"` // 滚动揭示模式
}

// DefaultSettings 返回默认设置
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		Fullscreen: false,
		Autoplay:   true,
		RevealMode: config.RevealModeLatch,
	}
}

// SettingsManager 设置管理器
// 负责观看偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// OpenStorage 打开 gdata 存储
//
// 失败时返回 nil 和错误，调用方可以继续以降级模式运行。
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare storage directory: %w", err)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return manager, nil
}

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，会记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 先填充默认值，旧版本存档缺失的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	mode, err := config.ParseRevealMode(string(loaded.RevealMode))
	if err != nil {
		log.Printf("[SettingsManager] Warning: %v, falling back to %s", err, config.RevealModeLatch)
		mode = config.RevealModeLatch
	}
	loaded.RevealMode = mode

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetAutoplay 设置轮播自动播放
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetAutoplay(enabled bool) {
	sm.settings.Autoplay = enabled
}

// SetRevealMode 设置滚动揭示模式
func (sm *SettingsManager) SetRevealMode(mode config.RevealMode) error {
	parsed, err := config.ParseRevealMode(string(mode))
	if err != nil {
		return err
	}
	sm.settings.RevealMode = parsed
	return nil
}
