package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/showcase/pkg/config"
)

// openTestStorage 在临时 HOME 下创建 gdata manager
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if !settings.Autoplay {
		t.Error("Autoplay: got false, want true")
	}
	if settings.RevealMode != config.RevealModeLatch {
		t.Errorf("RevealMode: got %q, want %q", settings.RevealMode, config.RevealModeLatch)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings() == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	manager := openTestStorage(t, "test_viewer_settings")

	sm1 := NewSettingsManager(manager)
	sm1.SetFullscreen(true)
	sm1.SetAutoplay(false)
	if err := sm1.SetRevealMode(config.RevealModeMirror); err != nil {
		t.Fatalf("SetRevealMode() error: %v", err)
	}

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(manager)
	settings := sm2.GetSettings()

	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.Autoplay {
		t.Error("Loaded Autoplay: got true, want false")
	}
	if settings.RevealMode != config.RevealModeMirror {
		t.Errorf("Loaded RevealMode: got %q, want mirror", settings.RevealMode)
	}
}

// TestSettingsLoadInvalidRevealMode 测试存档中的未知模式回退到 latch
func TestSettingsLoadInvalidRevealMode(t *testing.T) {
	manager := openTestStorage(t, "test_viewer_settings_invalid")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("autoplay: false\nrevealMode: sparkle\n")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(manager)
	settings := sm.GetSettings()

	if settings.RevealMode != config.RevealModeLatch {
		t.Errorf("RevealMode: got %q, want latch", settings.RevealMode)
	}
	if settings.Autoplay {
		t.Error("Autoplay from storage should be preserved")
	}
}

// TestSettingsLoadCorrupted 测试损坏数据回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	manager := openTestStorage(t, "test_viewer_settings_corrupted")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("autoplay: [not a bool")); err != nil {
		t.Fatalf("SaveObjectProp error: %v", err)
	}

	sm := NewSettingsManager(manager)
	if !sm.GetSettings().Autoplay {
		t.Error("corrupted settings should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report unmarshal error")
	}
}

func TestSetRevealModeRejectsUnknown(t *testing.T) {
	sm := NewSettingsManager(nil)
	if err := sm.SetRevealMode("sometimes"); err == nil {
		t.Error("SetRevealMode should reject unknown mode")
	}
	if sm.GetSettings().RevealMode != config.RevealModeLatch {
		t.Error("rejected mode must not change settings")
	}
}
