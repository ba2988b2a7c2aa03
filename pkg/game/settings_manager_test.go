package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时目录创建 gdata manager
func newTestGdataManager(t *testing.T, appName string) *gdata.Manager {
	t.Helper()

	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}

	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}

	if !settings.ShowHUD {
		t.Error("ShowHUD: got false, want true")
	}

	if settings.StartScene != SceneMenu {
		t.Errorf("StartScene: got %q, want %q", settings.StartScene, SceneMenu)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}

	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	// 验证使用默认设置
	settings := sm.GetSettings()
	if settings == nil {
		t.Fatal("GetSettings() returned nil in degraded mode")
	}

	if settings.StartScene != SceneMenu {
		t.Errorf("Degraded mode StartScene: got %q, want %q", settings.StartScene, SceneMenu)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := newTestGdataManager(t, "test_settings_load_save")

	// 创建设置管理器并修改设置
	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetFullscreen(true)
	sm1.SetShowHUD(false)
	sm1.SetStartScene(SceneClicker)

	// 保存设置
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// 创建新的设置管理器，验证加载
	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()

	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}

	if settings.ShowHUD {
		t.Error("Loaded ShowHUD: got true, want false")
	}

	if settings.StartScene != SceneClicker {
		t.Errorf("Loaded StartScene: got %q, want %q", settings.StartScene, SceneClicker)
	}
}

// TestSetStartSceneInvalid 测试 SetStartScene 拒绝无效场景 ID
func TestSetStartSceneInvalid(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetStartScene(SceneLine)
	if sm.GetSettings().StartScene != SceneLine {
		t.Errorf("SetStartScene(%q): got %q", SceneLine, sm.GetSettings().StartScene)
	}

	// 无效 ID 应被忽略，保持原值
	sm.SetStartScene("does-not-exist")
	if sm.GetSettings().StartScene != SceneLine {
		t.Errorf("SetStartScene(invalid) should keep %q, got %q",
			SceneLine, sm.GetSettings().StartScene)
	}
}

// TestLoadInvalidStartScene 测试加载旧版设置时修正无效的启动场景
func TestLoadInvalidStartScene(t *testing.T) {
	gdataManager := newTestGdataManager(t, "test_settings_old_version")

	// 手工写入缺少 startScene 字段的旧版设置
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty,
		[]byte("fullscreen: true\nshowHUD: true\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	settings := sm.GetSettings()
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.StartScene != SceneMenu {
		t.Errorf("Missing startScene should default to %q, got %q", SceneMenu, settings.StartScene)
	}
}

// TestSaveNilGdataManager 测试降级模式下 Save() 不报错
func TestSaveNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	err := sm.Save()
	if err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestLoadNilGdataManager 测试降级模式下 Load() 使用默认设置
func TestLoadNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	// 修改设置
	sm.SetShowHUD(false)

	// 重新 Load()
	err := sm.Load()
	if err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}

	// 应该恢复为默认值
	if !sm.GetSettings().ShowHUD {
		t.Error("After Load() in degraded mode, ShowHUD: got false, want true")
	}
}

// TestGetSettings 测试 GetSettings() 返回正确实例
func TestGetSettings(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	settings1 := sm.GetSettings()
	settings2 := sm.GetSettings()

	// 应该返回相同的实例
	if settings1 != settings2 {
		t.Error("GetSettings() should return the same instance")
	}
}
