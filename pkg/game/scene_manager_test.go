package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.currentScene != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.currentScene != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerUpdateNoScene verifies that Update handles nil scene gracefully.
func TestSceneManagerUpdateNoScene(t *testing.T) {
	sm := NewSceneManager()
	// Don't set any scene, currentScene should be nil
	sm.Update(0.016) // Should not panic
}

// TestSceneManagerLoadScene verifies that LoadScene uses the factory.
func TestSceneManagerLoadScene(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	var requestedID string
	sm.SetSceneFactory(func(sceneID string) Scene {
		requestedID = sceneID
		return mockScene
	})

	sm.LoadScene(SceneClicker)

	if requestedID != SceneClicker {
		t.Errorf("Factory received sceneID %q, want %q", requestedID, SceneClicker)
	}
	if sm.GetCurrentScene() != mockScene {
		t.Error("LoadScene did not switch to the factory-created scene")
	}
}

// TestSceneManagerLoadSceneNoFactory verifies LoadScene without a factory does not panic.
func TestSceneManagerLoadSceneNoFactory(t *testing.T) {
	sm := NewSceneManager()
	sm.LoadScene(SceneMenu) // Should log an error, not panic

	if sm.GetCurrentScene() != nil {
		t.Error("LoadScene without factory should not set a scene")
	}
}

// TestSceneManagerLoadSceneFactoryNil verifies LoadScene keeps the old scene
// when the factory returns nil.
func TestSceneManagerLoadSceneFactoryNil(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.SetSceneFactory(func(sceneID string) Scene {
		return nil
	})
	sm.LoadScene("bogus")

	if sm.GetCurrentScene() != mockScene {
		t.Error("LoadScene with nil factory result should keep the current scene")
	}
}

// TestValidSceneID verifies the scene ID whitelist.
func TestValidSceneID(t *testing.T) {
	valid := []string{SceneMenu, SceneShapes, SceneLine, SceneClicker}
	for _, id := range valid {
		if !ValidSceneID(id) {
			t.Errorf("ValidSceneID(%q) = false, want true", id)
		}
	}

	invalid := []string{"", "game", "MENU", "clicker "}
	for _, id := range invalid {
		if ValidSceneID(id) {
			t.Errorf("ValidSceneID(%q) = true, want false", id)
		}
	}
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	// Switch to scene1
	sm.SwitchTo(scene1)
	sm.Update(0.016)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	// Switch to scene2
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}
