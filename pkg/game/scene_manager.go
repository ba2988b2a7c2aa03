package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// 可用场景 ID
const (
	SceneMenu    = "menu"    // 主菜单
	SceneShapes  = "shapes"  // 静态图形演示
	SceneLine    = "line"    // Bresenham 直线演示
	SceneClicker = "clicker" // 点击保楼玩法
)

// ValidSceneID 检查场景 ID 是否有效
func ValidSceneID(id string) bool {
	switch id {
	case SceneMenu, SceneShapes, SceneLine, SceneClicker:
		return true
	}
	return false
}

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的场景，避免循环依赖
type SceneFactory func(sceneID string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadScene to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
		sceneFactory: nil,
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadScene 加载指定ID的场景
// sceneID: 场景ID，如 "menu", "clicker"
func (sm *SceneManager) LoadScene(sceneID string) {
	log.Printf("[SceneManager] 加载场景: %s", sceneID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	// 使用工厂函数创建新场景
	newScene := sm.sceneFactory(sceneID)
	if newScene != nil {
		sm.SwitchTo(newScene)
		log.Printf("[SceneManager] 成功切换到场景: %s", sceneID)
	} else {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", sceneID)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
